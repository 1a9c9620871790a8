package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"pgregory.net/rapid"

	keepertest "github.com/swipe-chain/swipe/testutil/keeper"
	"github.com/swipe-chain/swipe/x/oraclegov/keeper"
	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

// TestStakeConservationProperties checks that any sequence of deposits and
// withdrawals keeps the system total equal to the sum of account balances.
func TestStakeConservationProperties(t *testing.T) {
	accounts := []string{"swipe1alpha", "swipe1bravo", "swipe1charlie", "swipe1delta"}

	rapid.Check(t, func(rt *rapid.T) {
		k, _, ctx := keepertest.OracleGovKeeper(t)
		model := make(map[string]math.Int, len(accounts))
		for _, acct := range accounts {
			model[acct] = math.ZeroInt()
		}

		numOps := rapid.IntRange(1, 50).Draw(rt, "numOps")
		for i := 0; i < numOps; i++ {
			acct := rapid.SampledFrom(accounts).Draw(rt, "acct")
			amount := math.NewInt(rapid.Int64Range(1, 1_000_000_000).Draw(rt, "amount"))

			if rapid.Bool().Draw(rt, "isDeposit") {
				if _, err := k.DepositStake(ctx, acct, amount); err != nil {
					rt.Fatalf("deposit %s to %s: %v", amount, acct, err)
				}
				model[acct] = model[acct].Add(amount)
				continue
			}

			_, err := k.WithdrawStake(ctx, acct, amount)
			if amount.GT(model[acct]) {
				if err == nil {
					rt.Fatalf("withdrew %s from %s holding only %s", amount, acct, model[acct])
				}
				continue
			}
			if err != nil {
				rt.Fatalf("withdraw %s from %s: %v", amount, acct, err)
			}
			model[acct] = model[acct].Sub(amount)
		}

		expectedTotal := math.ZeroInt()
		for _, acct := range accounts {
			if got := k.GetStake(ctx, acct); !got.Equal(model[acct]) {
				rt.Fatalf("balance of %s: got %s, want %s", acct, got, model[acct])
			}
			expectedTotal = expectedTotal.Add(model[acct])
		}
		if got := k.GetTotalStaked(ctx); !got.Equal(expectedTotal) {
			rt.Fatalf("total staked: got %s, want %s", got, expectedTotal)
		}

		if msg, broken := keeper.AllInvariants(k)(ctx); broken {
			rt.Fatalf("invariant broken: %s", msg)
		}
	})
}

// TestDepositSettlementProperties drives a proposal to a random terminal
// state and checks the deposit is settled exactly once: the system total
// never moves, and balances plus locked deposits plus burned deposits always
// reconcile against it.
func TestDepositSettlementProperties(t *testing.T) {
	const (
		outcomeExecuted = iota
		outcomeExpired
		outcomeCancelled
		outcomeRetried
	)

	rapid.Check(t, func(rt *rapid.T) {
		k, ok, ctx := keepertest.OracleGovKeeper(t)
		params := k.GetParams(ctx)

		extra := math.NewInt(rapid.Int64Range(0, 5_000_000_000).Draw(rt, "extra"))
		// Large enough that a lone yes vote always clears the 10% quorum.
		voterStake := math.NewInt(rapid.Int64Range(2_000_000_000, 100_000_000_000).Draw(rt, "voterStake"))

		if _, err := k.DepositStake(ctx, proposer, params.ProposalDeposit.Add(extra)); err != nil {
			rt.Fatalf("proposer deposit: %v", err)
		}
		if _, err := k.DepositStake(ctx, voter1, voterStake); err != nil {
			rt.Fatalf("voter deposit: %v", err)
		}
		total := k.GetTotalStaked(ctx)

		outcome := rapid.IntRange(outcomeExecuted, outcomeRetried).Draw(rt, "outcome")
		if outcome == outcomeRetried {
			// Pre-registering the target makes the add fail at execution.
			if err := ok.AddSource(ctx, source1); err != nil {
				rt.Fatalf("add source: %v", err)
			}
		}

		id, err := k.CreateProposal(ctx, proposer, types.ProposalKindAddOracle, "add source",
			types.ProposalPayload{OracleAddress: source1})
		if err != nil {
			rt.Fatalf("create proposal: %v", err)
		}

		var wantStatus types.ProposalStatus
		var wantBurned math.Int
		switch outcome {
		case outcomeExecuted:
			if _, err := k.VoteOnProposal(ctx, id, voter1, true); err != nil {
				rt.Fatalf("vote: %v", err)
			}
			wantStatus, wantBurned = types.ProposalStatusExecuted, math.ZeroInt()

		case outcomeExpired:
			expired := ctx.WithBlockTime(ctx.BlockTime().Add(8 * 24 * time.Hour))
			if _, err := k.FinalizeProposal(expired, id); err != nil {
				rt.Fatalf("finalize: %v", err)
			}
			wantStatus, wantBurned = types.ProposalStatusFailed, params.ProposalDeposit

		case outcomeCancelled:
			if err := k.InitializeAdmin(ctx, admin); err != nil {
				rt.Fatalf("initialize admin: %v", err)
			}
			if err := k.CancelProposal(ctx, admin, id); err != nil {
				rt.Fatalf("cancel: %v", err)
			}
			wantStatus, wantBurned = types.ProposalStatusCancelled, math.ZeroInt()

		case outcomeRetried:
			if _, err := k.VoteOnProposal(ctx, id, voter1, true); err != nil {
				rt.Fatalf("vote: %v", err)
			}
			proposal, err := k.GetProposal(ctx, id)
			if err != nil {
				rt.Fatalf("get proposal: %v", err)
			}
			if proposal.Status != types.ProposalStatusExecutionFailed {
				rt.Fatalf("status after failing execution: %s", proposal.Status)
			}
			// The deposit stays locked until a retry lands.
			if got := k.GetStake(ctx, proposer); !got.Equal(extra) {
				rt.Fatalf("proposer balance with deposit locked: got %s, want %s", got, extra)
			}
			if err := ok.RemoveSource(ctx, source1); err != nil {
				rt.Fatalf("remove source: %v", err)
			}
			if _, err := k.RetryExecution(ctx, id); err != nil {
				rt.Fatalf("retry: %v", err)
			}
			wantStatus, wantBurned = types.ProposalStatusExecuted, math.ZeroInt()
		}

		proposal, err := k.GetProposal(ctx, id)
		if err != nil {
			rt.Fatalf("get proposal: %v", err)
		}
		if proposal.Status != wantStatus {
			rt.Fatalf("terminal status: got %s, want %s", proposal.Status, wantStatus)
		}

		// Settling a deposit never moves the system total.
		if got := k.GetTotalStaked(ctx); !got.Equal(total) {
			rt.Fatalf("total staked moved: got %s, want %s", got, total)
		}
		if got := k.GetBurnedDeposits(ctx); !got.Equal(wantBurned) {
			rt.Fatalf("burned deposits: got %s, want %s", got, wantBurned)
		}

		wantProposer := params.ProposalDeposit.Add(extra)
		if wantBurned.IsPositive() {
			wantProposer = extra
		}
		if got := k.GetStake(ctx, proposer); !got.Equal(wantProposer) {
			rt.Fatalf("proposer balance after settlement: got %s, want %s", got, wantProposer)
		}

		if msg, broken := keeper.AllInvariants(k)(ctx); broken {
			rt.Fatalf("invariant broken: %s", msg)
		}
	})
}
