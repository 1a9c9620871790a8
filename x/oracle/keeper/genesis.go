package keeper

import (
	"context"
	"fmt"
	"sort"

	"github.com/swipe-chain/swipe/x/oracle/types"
)

// InitGenesis initializes the oracle module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid genesis state: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	for _, addr := range genState.Sources {
		if err := k.AddSource(ctx, addr); err != nil {
			return fmt.Errorf("failed to add source %s: %w", addr, err)
		}
	}

	if genState.Paused {
		if err := k.SetPaused(ctx, true); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the oracle module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)
	genesis.Paused = k.IsPaused(ctx)

	k.IterateSources(ctx, func(addr string) bool {
		genesis.Sources = append(genesis.Sources, addr)
		return false
	})
	sort.Strings(genesis.Sources)

	return genesis
}
