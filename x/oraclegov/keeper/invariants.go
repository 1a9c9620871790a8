package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

// RegisterInvariants registers all oracle governance invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "stake-accounting", StakeAccountingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "proposal-states", ProposalStatesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "proposal-counter", ProposalCounterInvariant(k))
}

// AllInvariants runs all invariants of the oracle governance module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := StakeAccountingInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = ProposalStatesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return ProposalCounterInvariant(k)(ctx)
	}
}

// StakeAccountingInvariant checks that the recorded total equals the sum of
// balances, deposits still locked by live proposals, and burned deposits.
// Burned deposits stay inside the total: burning removes the proposer's claim
// without shrinking the quorum base.
func StakeAccountingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		sum := math.ZeroInt()
		k.IterateStakes(ctx, func(staker string, amount math.Int) bool {
			sum = sum.Add(amount)
			return false
		})

		locked := math.ZeroInt()
		k.IterateProposals(ctx, func(p types.Proposal) bool {
			if p.Status == types.ProposalStatusActive || p.Status == types.ProposalStatusExecutionFailed {
				locked = locked.Add(p.Deposit)
			}
			return false
		})

		burned := k.GetBurnedDeposits(ctx)
		total := k.GetTotalStaked(ctx)
		expected := sum.Add(locked).Add(burned)

		broken := !total.Equal(expected)
		return sdk.FormatInvariant(types.ModuleName, "stake-accounting",
			fmt.Sprintf("total staked %s, balances %s + locked %s + burned %s = %s\n",
				total, sum, locked, burned, expected)), broken
	}
}

// ProposalStatesInvariant checks per-proposal consistency: tallies are
// non-negative, terminal proposals stay terminal (no ballots, since voting
// writes only to active proposals this checks ballot/proposal linkage), and
// every ballot references a stored proposal.
func ProposalStatesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		known := make(map[uint64]struct{})
		k.IterateProposals(ctx, func(p types.Proposal) bool {
			known[p.ID] = struct{}{}
			if p.VotesFor.IsNil() || p.VotesFor.IsNegative() ||
				p.VotesAgainst.IsNil() || p.VotesAgainst.IsNegative() {
				count++
				msg += fmt.Sprintf("proposal %d: negative or nil tally\n", p.ID)
			}
			if p.Deposit.IsNil() || p.Deposit.IsNegative() {
				count++
				msg += fmt.Sprintf("proposal %d: invalid deposit\n", p.ID)
			}
			return false
		})

		k.IterateBallots(ctx, func(proposalID uint64, voter string) bool {
			if _, ok := known[proposalID]; !ok {
				count++
				msg += fmt.Sprintf("ballot by %s references unknown proposal %d\n", voter, proposalID)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "proposal-states",
			fmt.Sprintf("%d inconsistent proposal records\n%s", count, msg)), broken
	}
}

// ProposalCounterInvariant checks that no stored proposal has an identifier
// above the allocation counter.
func ProposalCounterInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		counter := k.ProposalCount(ctx)

		var (
			msg   string
			count int
		)
		k.IterateProposals(ctx, func(p types.Proposal) bool {
			if p.ID > counter || p.ID == 0 {
				count++
				msg += fmt.Sprintf("proposal %d outside counter bound %d\n", p.ID, counter)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "proposal-counter",
			fmt.Sprintf("%d proposals outside counter bound\n%s", count, msg)), broken
	}
}
