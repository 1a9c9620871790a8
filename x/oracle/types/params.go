package types

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

const (
	// DefaultMinSources is the minimum number of price sources required
	// before aggregation is trusted.
	DefaultMinSources = uint32(2)

	// DefaultPriceTTLSeconds is the age at which a price is considered stale
	// (5 minutes).
	DefaultPriceTTLSeconds = uint64(5 * 60)

	// DefaultMaxDeviationBps is the maximum allowed deviation from the
	// aggregate before a submission is rejected, in basis points (10%).
	DefaultMaxDeviationBps = int64(1_000)

	bpsDenominator = int64(10_000)
)

// Params defines the runtime parameters of the oracle module. All three are
// adjustable at runtime through governance parameter-update proposals.
type Params struct {
	// MinSources is the minimum registered source count
	MinSources uint32 `json:"min_sources" yaml:"min_sources"`
	// PriceTTLSeconds is the price staleness TTL in seconds
	PriceTTLSeconds uint64 `json:"price_ttl_seconds" yaml:"price_ttl_seconds"`
	// MaxDeviationBps is the maximum tolerated deviation in basis points
	MaxDeviationBps int64 `json:"max_deviation_bps" yaml:"max_deviation_bps"`
}

// DefaultParams returns the default oracle parameters
func DefaultParams() Params {
	return Params{
		MinSources:      DefaultMinSources,
		PriceTTLSeconds: DefaultPriceTTLSeconds,
		MaxDeviationBps: DefaultMaxDeviationBps,
	}
}

// Validate ensures all parameter values are within acceptable bounds
func (p Params) Validate() error {
	if p.MinSources == 0 {
		return fmt.Errorf("minimum source count must be positive")
	}
	if p.PriceTTLSeconds == 0 {
		return fmt.Errorf("price TTL must be positive")
	}
	if p.MaxDeviationBps <= 0 || p.MaxDeviationBps > bpsDenominator {
		return fmt.Errorf("max deviation bps must be in (0, %d], got %d", bpsDenominator, p.MaxDeviationBps)
	}
	return nil
}

// String implements the Stringer interface
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}
