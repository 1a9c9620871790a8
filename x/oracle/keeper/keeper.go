package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swipe-chain/swipe/x/oracle/types"
)

// Keeper owns the oracle source registry: the membership list, per-source
// reputation records, the runtime parameters and the emergency pause flag.
// Mutations arrive only through approved governance proposals.
type Keeper struct {
	storeKey storetypes.StoreKey
}

// NewKeeper creates a new oracle Keeper instance
func NewKeeper(storeKey storetypes.StoreKey) Keeper {
	return Keeper{storeKey: storeKey}
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// getStore returns the KVStore for the oracle module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetParams gets the oracle parameters from the store
func (k Keeper) GetParams(ctx context.Context) types.Params {
	bz := k.getStore(ctx).Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}
	return params
}

// SetParams sets the oracle parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return types.ErrInvalidParams.Wrap(err.Error())
	}

	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}

// SetMinSources updates the minimum source count parameter
func (k Keeper) SetMinSources(ctx context.Context, v uint32) error {
	params := k.GetParams(ctx)
	params.MinSources = v
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}
	k.emitParamsUpdated(ctx, "min_sources", fmt.Sprintf("%d", v))
	return nil
}

// SetPriceTTL updates the price staleness TTL parameter (seconds)
func (k Keeper) SetPriceTTL(ctx context.Context, v uint64) error {
	params := k.GetParams(ctx)
	params.PriceTTLSeconds = v
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}
	k.emitParamsUpdated(ctx, "price_ttl_seconds", fmt.Sprintf("%d", v))
	return nil
}

// SetMaxDeviationBps updates the maximum allowed deviation parameter
func (k Keeper) SetMaxDeviationBps(ctx context.Context, v int64) error {
	params := k.GetParams(ctx)
	params.MaxDeviationBps = v
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}
	k.emitParamsUpdated(ctx, "max_deviation_bps", fmt.Sprintf("%d", v))
	return nil
}

func (k Keeper) emitParamsUpdated(ctx context.Context, param, value string) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyParam, param),
			sdk.NewAttribute(types.AttributeKeyValue, value),
		),
	)
}
