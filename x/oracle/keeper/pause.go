package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swipe-chain/swipe/x/oracle/types"
)

// IsPaused reports whether the submission path is paused
func (k Keeper) IsPaused(ctx context.Context) bool {
	return k.getStore(ctx).Has(types.PausedKey)
}

// SetPaused toggles the emergency pause flag. Setting an already-set flag is
// a no-op so repeated emergency proposals settle cleanly.
func (k Keeper) SetPaused(ctx context.Context, paused bool) error {
	store := k.getStore(ctx)
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if paused {
		if store.Has(types.PausedKey) {
			return nil
		}
		store.Set(types.PausedKey, []byte{1})
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypePaused,
				sdk.NewAttribute("height", fmt.Sprintf("%d", sdkCtx.BlockHeight())),
			),
		)
		k.Logger(ctx).Info("oracle submissions paused")
		return nil
	}

	if !store.Has(types.PausedKey) {
		return nil
	}
	store.Delete(types.PausedKey)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeResumed,
			sdk.NewAttribute("height", fmt.Sprintf("%d", sdkCtx.BlockHeight())),
		),
	)
	k.Logger(ctx).Info("oracle submissions resumed")
	return nil
}
