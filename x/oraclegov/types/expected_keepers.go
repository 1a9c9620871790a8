package types

import (
	"context"
)

// OracleKeeper is the narrow surface of the oracle source registry consumed by
// the execution dispatcher. The oracle module owns the membership list, the
// per-source reputation records, the runtime parameters and the pause flag;
// this module only writes them through approved proposals.
type OracleKeeper interface {
	// HasSource reports whether an oracle source is registered
	HasSource(ctx context.Context, addr string) bool

	// AddSource registers a new oracle source and initializes its reputation record
	AddSource(ctx context.Context, addr string) error

	// RemoveSource removes an oracle source from the membership list
	RemoveSource(ctx context.Context, addr string) error

	// SourceCount returns the number of registered oracle sources
	SourceCount(ctx context.Context) uint32

	// SetMinSources updates the minimum oracle source count parameter
	SetMinSources(ctx context.Context, v uint32) error

	// SetPriceTTL updates the price staleness TTL parameter (seconds)
	SetPriceTTL(ctx context.Context, v uint64) error

	// SetMaxDeviationBps updates the maximum allowed deviation before slash
	SetMaxDeviationBps(ctx context.Context, v int64) error

	// SetPaused toggles the emergency pause flag on the submission path
	SetPaused(ctx context.Context, paused bool) error
}
