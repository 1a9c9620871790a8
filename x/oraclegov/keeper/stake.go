package keeper

import (
	"context"
	"math/big"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

// The stake ledger is pure bookkeeping: the token transfer itself is handled
// by the surrounding transaction, this module records balances and the running
// total that quorum is measured against.

// GetStake returns the staked balance of an address (zero if never staked)
func (k Keeper) GetStake(ctx context.Context, staker string) math.Int {
	bz := k.getStore(ctx).Get(types.GetStakeKey(staker))
	if bz == nil {
		return math.ZeroInt()
	}
	amount, ok := math.NewIntFromString(string(bz))
	if !ok {
		return math.ZeroInt()
	}
	return amount
}

// setStake writes an address's staked balance
func (k Keeper) setStake(ctx context.Context, staker string, amount math.Int) {
	k.getStore(ctx).Set(types.GetStakeKey(staker), []byte(amount.String()))
}

// GetTotalStaked returns the system-wide staked total
func (k Keeper) GetTotalStaked(ctx context.Context) math.Int {
	bz := k.getStore(ctx).Get(types.TotalStakedKey)
	if bz == nil {
		return math.ZeroInt()
	}
	total, ok := math.NewIntFromString(string(bz))
	if !ok {
		return math.ZeroInt()
	}
	return total
}

// setTotalStaked writes the system-wide staked total
func (k Keeper) setTotalStaked(ctx context.Context, total math.Int) {
	k.getStore(ctx).Set(types.TotalStakedKey, []byte(total.String()))
}

// GetBurnedDeposits returns the cumulative total of burned proposal deposits
func (k Keeper) GetBurnedDeposits(ctx context.Context) math.Int {
	bz := k.getStore(ctx).Get(types.BurnedDepositsKey)
	if bz == nil {
		return math.ZeroInt()
	}
	burned, ok := math.NewIntFromString(string(bz))
	if !ok {
		return math.ZeroInt()
	}
	return burned
}

// addBurnedDeposits accumulates a burned deposit amount
func (k Keeper) addBurnedDeposits(ctx context.Context, amount math.Int) {
	burned := k.GetBurnedDeposits(ctx).Add(amount)
	k.getStore(ctx).Set(types.BurnedDepositsKey, []byte(burned.String()))
}

// IterateStakes walks every stake balance. The callback returns true to stop.
func (k Keeper) IterateStakes(ctx context.Context, cb func(staker string, amount math.Int) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.StakeKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		staker := string(iterator.Key()[len(types.StakeKeyPrefix):])
		amount, ok := math.NewIntFromString(string(iterator.Value()))
		if !ok {
			continue
		}
		if cb(staker, amount) {
			break
		}
	}
}

// DepositStake adds stake that confers voting weight. Returns the new
// system-wide total.
func (k Keeper) DepositStake(ctx context.Context, staker string, amount math.Int) (math.Int, error) {
	if staker == "" {
		return math.Int{}, types.ErrUnauthorized.Wrap("staker address cannot be empty")
	}
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("deposit amount must be positive")
	}

	newStake := k.GetStake(ctx, staker).Add(amount)
	k.setStake(ctx, staker, newStake)

	total := k.GetTotalStaked(ctx).Add(amount)
	k.setTotalStaked(ctx, total)

	k.emitStakeChanged(ctx, staker, amount, total)
	return total, nil
}

// WithdrawStake removes previously deposited stake. The amount must not
// exceed the current balance; stake locked as a proposal deposit is already
// excluded from the balance and therefore cannot be withdrawn.
func (k Keeper) WithdrawStake(ctx context.Context, staker string, amount math.Int) (math.Int, error) {
	if staker == "" {
		return math.Int{}, types.ErrUnauthorized.Wrap("staker address cannot be empty")
	}

	current := k.GetStake(ctx, staker)
	if amount.IsNil() || !amount.IsPositive() || amount.GT(current) {
		return math.Int{}, types.ErrInvalidAmount.Wrapf(
			"withdrawal of %s exceeds balance %s or is non-positive", amount, current)
	}

	k.setStake(ctx, staker, current.Sub(amount))

	// Floor at zero to absorb any accounting drift.
	total := k.GetTotalStaked(ctx).Sub(amount)
	if total.IsNegative() {
		total = math.ZeroInt()
	}
	k.setTotalStaked(ctx, total)

	k.emitStakeChanged(ctx, staker, amount.Neg(), total)
	return total, nil
}

func (k Keeper) emitStakeChanged(ctx context.Context, staker string, delta, total math.Int) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeStakeChanged,
			sdk.NewAttribute(types.AttributeKeyStaker, staker),
			sdk.NewAttribute(types.AttributeKeyAmount, delta.String()),
			sdk.NewAttribute(types.AttributeKeyTotalStaked, total.String()),
		),
	)

	f, _ := new(big.Float).SetInt(total.BigInt()).Float64()
	GetGovMetrics().TotalStaked.Set(f)
}
