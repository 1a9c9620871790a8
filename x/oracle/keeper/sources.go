package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swipe-chain/swipe/x/oracle/types"
)

// HasSource reports whether an oracle source is registered
func (k Keeper) HasSource(ctx context.Context, addr string) bool {
	return k.getStore(ctx).Has(types.GetSourceKey(addr))
}

// SourceCount returns the number of registered oracle sources
func (k Keeper) SourceCount(ctx context.Context) uint32 {
	bz := k.getStore(ctx).Get(types.SourceCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint32(bz)
}

func (k Keeper) setSourceCount(ctx context.Context, count uint32) {
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, count)
	k.getStore(ctx).Set(types.SourceCountKey, bz)
}

// AddSource registers a new oracle source and seeds its reputation record at
// the neutral bootstrap values.
func (k Keeper) AddSource(ctx context.Context, addr string) error {
	if addr == "" {
		return types.ErrSourceNotFound.Wrap("source address cannot be empty")
	}

	store := k.getStore(ctx)
	if store.Has(types.GetSourceKey(addr)) {
		return types.ErrSourceExists.Wrapf("source %s", addr)
	}
	store.Set(types.GetSourceKey(addr), []byte{1})

	rep := types.NewSourceReputation()
	bz, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to marshal reputation: %w", err)
	}
	store.Set(types.GetReputationKey(addr), bz)

	count := k.SourceCount(ctx) + 1
	k.setSourceCount(ctx, count)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSourceAdded,
			sdk.NewAttribute(types.AttributeKeySource, addr),
			sdk.NewAttribute(types.AttributeKeySourceCount, fmt.Sprintf("%d", count)),
		),
	)

	k.Logger(ctx).Info("oracle source added", "source", addr, "count", count)
	return nil
}

// RemoveSource removes an oracle source from the membership list. The
// reputation record is removed with it; a re-added source starts fresh.
func (k Keeper) RemoveSource(ctx context.Context, addr string) error {
	store := k.getStore(ctx)
	if !store.Has(types.GetSourceKey(addr)) {
		return types.ErrSourceNotFound.Wrapf("source %s", addr)
	}
	store.Delete(types.GetSourceKey(addr))
	store.Delete(types.GetReputationKey(addr))

	count := k.SourceCount(ctx)
	if count > 0 {
		count--
	}
	k.setSourceCount(ctx, count)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSourceRemoved,
			sdk.NewAttribute(types.AttributeKeySource, addr),
			sdk.NewAttribute(types.AttributeKeySourceCount, fmt.Sprintf("%d", count)),
		),
	)

	k.Logger(ctx).Info("oracle source removed", "source", addr, "count", count)
	return nil
}

// GetReputation returns a source's reputation record
func (k Keeper) GetReputation(ctx context.Context, addr string) (types.SourceReputation, error) {
	bz := k.getStore(ctx).Get(types.GetReputationKey(addr))
	if bz == nil {
		return types.SourceReputation{}, types.ErrSourceNotFound.Wrapf("no reputation for %s", addr)
	}

	var rep types.SourceReputation
	if err := json.Unmarshal(bz, &rep); err != nil {
		return types.SourceReputation{}, fmt.Errorf("corrupt reputation for %s: %w", addr, err)
	}
	return rep, nil
}

// IterateSources walks every registered source address. The callback returns
// true to stop.
func (k Keeper) IterateSources(ctx context.Context, cb func(addr string) bool) {
	store := k.getStore(ctx)
	iter := storetypes.KVStorePrefixIterator(store, types.SourceKeyPrefix)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		addr := string(iter.Key()[len(types.SourceKeyPrefix):])
		if cb(addr) {
			break
		}
	}
}
