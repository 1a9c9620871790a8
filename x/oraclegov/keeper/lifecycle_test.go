package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/swipe-chain/swipe/testutil/keeper"
	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

func TestCreateProposal(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindAddOracle, "add backup source",
		types.ProposalPayload{OracleAddress: "swipe1newsource"})
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	p, err := k.GetProposal(ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusActive, p.Status)
	require.Equal(t, proposer, p.Proposer)
	require.True(t, p.VotesFor.IsZero())
	require.True(t, p.VotesAgainst.IsZero())

	params := k.GetParams(ctx)
	wantEnds := uint64(ctx.BlockTime().Unix()) + params.VotingPeriodSeconds
	require.Equal(t, wantEnds, p.VotingEnds)
	require.Equal(t, params.ProposalDeposit, p.Deposit)

	// IDs are sequential.
	id2, err := k.CreateProposal(ctx, voter1, types.ProposalKindEmergencyPause, "halt", types.ProposalPayload{})
	require.NoError(t, err)
	require.Equal(t, uint64(2), id2)
	require.Equal(t, uint64(2), k.ProposalCount(ctx))
}

func TestCreateProposalEmergencyWindow(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindEmergencyPause, "halt", types.ProposalPayload{})
	require.NoError(t, err)

	p, err := k.GetProposal(ctx, id)
	require.NoError(t, err)

	params := k.GetParams(ctx)
	wantEnds := uint64(ctx.BlockTime().Unix()) + params.EmergencyVotingPeriodSeconds
	require.Equal(t, wantEnds, p.VotingEnds)
}

func TestCreateProposalRejected(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	tests := []struct {
		name     string
		proposer string
		kind     types.ProposalKind
		desc     string
		payload  types.ProposalPayload
		wantErr  error
	}{
		{
			name:     "insufficient stake for deposit",
			proposer: "swipe1pauper",
			kind:     types.ProposalKindEmergencyPause,
			desc:     "halt",
			wantErr:  types.ErrInsufficientStake,
		},
		{
			name:     "empty description",
			proposer: proposer,
			kind:     types.ProposalKindEmergencyPause,
			desc:     "   ",
			wantErr:  types.ErrInvalidPayload,
		},
		{
			name:     "malformed payload",
			proposer: proposer,
			kind:     types.ProposalKindAddOracle,
			desc:     "add source",
			wantErr:  types.ErrInvalidPayload,
		},
		{
			name:    "empty proposer",
			kind:    types.ProposalKindEmergencyPause,
			desc:    "halt",
			wantErr: types.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := k.CreateProposal(ctx, tt.proposer, tt.kind, tt.desc, tt.payload)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Nothing was created and no deposit moved.
	require.Equal(t, uint64(0), k.ProposalCount(ctx))
	require.Equal(t, math.NewInt(20_000_000_000), k.GetStake(ctx, proposer))
}

func TestVoteTalliesWeight(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindAddOracle, "add source",
		types.ProposalPayload{OracleAddress: "swipe1newsource"})
	require.NoError(t, err)

	// voter2 against: 30e9 of 100e9 cast, nothing executes.
	status, err := k.VoteOnProposal(ctx, id, voter2, false)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusActive, status)

	p, err := k.GetProposal(ctx, id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(30_000_000_000), p.VotesAgainst)
	require.True(t, p.VotesFor.IsZero())
	require.True(t, k.HasVoted(ctx, id, voter2))
	require.False(t, k.HasVoted(ctx, id, voter1))
}

func TestVoteEagerExecution(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	stakeBefore := k.GetStake(ctx, proposer)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindAddOracle, "add source",
		types.ProposalPayload{OracleAddress: "swipe1newsource"})
	require.NoError(t, err)

	// voter1 alone is 50% participation and 100% approval: executes mid-window.
	status, err := k.VoteOnProposal(ctx, id, voter1, true)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusExecuted, status)

	require.True(t, ok.HasSource(ctx, "swipe1newsource"))
	require.Equal(t, uint32(4), ok.SourceCount(ctx))

	// Deposit came back to the proposer.
	require.Equal(t, stakeBefore, k.GetStake(ctx, proposer))

	// Terminal: further votes are rejected.
	_, err = k.VoteOnProposal(ctx, id, voter2, true)
	require.ErrorIs(t, err, types.ErrProposalNotActive)
}

func TestVoteBelowApprovalStaysActive(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindAddOracle, "add source",
		types.ProposalPayload{OracleAddress: "swipe1newsource"})
	require.NoError(t, err)

	// 30e9 against first so the yes vote lands at 62.5%, short of 66%.
	_, err = k.VoteOnProposal(ctx, id, voter2, false)
	require.NoError(t, err)

	status, err := k.VoteOnProposal(ctx, id, voter1, true)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusActive, status)
	require.False(t, ok.HasSource(ctx, "swipe1newsource"))
}

func TestVoteGuards(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindAddOracle, "add source",
		types.ProposalPayload{OracleAddress: "swipe1newsource"})
	require.NoError(t, err)

	// Unknown proposal.
	_, err = k.VoteOnProposal(ctx, 99, voter1, true)
	require.ErrorIs(t, err, types.ErrProposalNotFound)

	// No stake, no voice.
	_, err = k.VoteOnProposal(ctx, id, "swipe1nobody", true)
	require.ErrorIs(t, err, types.ErrNoVotingWeight)

	// One ballot per address.
	_, err = k.VoteOnProposal(ctx, id, voter2, false)
	require.NoError(t, err)
	_, err = k.VoteOnProposal(ctx, id, voter2, true)
	require.ErrorIs(t, err, types.ErrAlreadyVoted)

	// The rejected second ballot did not change the tally.
	p, err := k.GetProposal(ctx, id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(30_000_000_000), p.VotesAgainst)
	require.True(t, p.VotesFor.IsZero())
}

func TestLateVoteFinalizesAndBurns(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindAddOracle, "add source",
		types.ProposalPayload{OracleAddress: "swipe1newsource"})
	require.NoError(t, err)

	ctx = warp(ctx, 7*24*time.Hour)

	_, err = k.VoteOnProposal(ctx, id, voter1, true)
	require.ErrorIs(t, err, types.ErrVotingWindowClosed)

	// Lazy expiry settled the proposal as failed and burned the deposit.
	p, err := k.GetProposal(ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusFailed, p.Status)
	require.Equal(t, p.Deposit, k.GetBurnedDeposits(ctx))
	require.Equal(t, math.NewInt(10_000_000_000), k.GetStake(ctx, proposer))

	// A second late vote sees the terminal state, not the window error.
	_, err = k.VoteOnProposal(ctx, id, voter2, true)
	require.ErrorIs(t, err, types.ErrProposalNotActive)
}

func TestFinalizeProposal(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindAddOracle, "add source",
		types.ProposalPayload{OracleAddress: "swipe1newsource"})
	require.NoError(t, err)

	// Inside the window finalize is a no-op.
	status, err := k.FinalizeProposal(ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusActive, status)

	// Past the window without votes: failed, deposit burned.
	expired := warp(ctx, 7*24*time.Hour)
	status, err = k.FinalizeProposal(expired, id)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusFailed, status)

	// Finalizing a settled proposal reports its status without error.
	status, err = k.FinalizeProposal(expired, id)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusFailed, status)
}

func TestFinalizeExecutesWhenTotalShrinks(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	small := "swipe1small"
	_, err := k.DepositStake(ctx, small, math.NewInt(5_000_000_000))
	require.NoError(t, err)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindAddOracle, "add source",
		types.ProposalPayload{OracleAddress: "swipe1newsource"})
	require.NoError(t, err)

	// 5e9 of 105e9: under the 10% quorum, no eager execution.
	status, err := k.VoteOnProposal(ctx, id, small, true)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusActive, status)

	// Large stakers exit; the quorum base is evaluated live.
	_, err = k.WithdrawStake(ctx, voter1, math.NewInt(50_000_000_000))
	require.NoError(t, err)
	_, err = k.WithdrawStake(ctx, voter2, math.NewInt(30_000_000_000))
	require.NoError(t, err)

	status, err = k.FinalizeProposal(warp(ctx, 7*24*time.Hour), id)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusExecuted, status)
	require.True(t, ok.HasSource(ctx, "swipe1newsource"))
}

func TestCancelProposal(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)
	require.NoError(t, k.InitializeAdmin(ctx, admin))

	stakeBefore := k.GetStake(ctx, proposer)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindAddOracle, "add source",
		types.ProposalPayload{OracleAddress: "swipe1newsource"})
	require.NoError(t, err)

	// Only the admin may cancel.
	err = k.CancelProposal(ctx, voter1, id)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	require.NoError(t, k.CancelProposal(ctx, admin, id))

	p, err := k.GetProposal(ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusCancelled, p.Status)

	// Deposit returned in full.
	require.Equal(t, stakeBefore, k.GetStake(ctx, proposer))

	// Cancelled is terminal.
	err = k.CancelProposal(ctx, admin, id)
	require.ErrorIs(t, err, types.ErrProposalNotActive)
	_, err = k.VoteOnProposal(ctx, id, voter1, true)
	require.ErrorIs(t, err, types.ErrProposalNotActive)
}

func TestCancelRequiresAdminSet(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindEmergencyPause, "halt", types.ProposalPayload{})
	require.NoError(t, err)

	err = k.CancelProposal(ctx, admin, id)
	require.ErrorIs(t, err, types.ErrAdminNotSet)
}

func TestRetryExecution(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	// Proposing to add an already-registered source: approval succeeds but
	// dispatch fails.
	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindAddOracle, "re-add source",
		types.ProposalPayload{OracleAddress: source1})
	require.NoError(t, err)

	status, err := k.VoteOnProposal(ctx, id, voter1, true)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusExecutionFailed, status)

	// The deposit stays locked while retry is possible.
	require.Equal(t, math.NewInt(10_000_000_000), k.GetStake(ctx, proposer))

	// Retrying with the conflict still present fails again.
	status, err = k.RetryExecution(ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusExecutionFailed, status)

	// Clear the conflict, then retry settles the proposal.
	require.NoError(t, ok.RemoveSource(ctx, source1))
	status, err = k.RetryExecution(ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusExecuted, status)
	require.True(t, ok.HasSource(ctx, source1))
	require.Equal(t, math.NewInt(20_000_000_000), k.GetStake(ctx, proposer))
}

func TestRetryRequiresExecutionFailed(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindAddOracle, "add source",
		types.ProposalPayload{OracleAddress: "swipe1newsource"})
	require.NoError(t, err)

	_, err = k.RetryExecution(ctx, id)
	require.ErrorIs(t, err, types.ErrNotRetryable)

	_, err = k.RetryExecution(ctx, 99)
	require.ErrorIs(t, err, types.ErrProposalNotFound)
}

func TestEmergencyPauseLifecycle(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindEmergencyPause, "halt submissions",
		types.ProposalPayload{})
	require.NoError(t, err)

	// 50e9 yes of 100e9 is only 62.5% once voter2 dissents; emergency needs 80%.
	_, err = k.VoteOnProposal(ctx, id, voter2, false)
	require.NoError(t, err)
	status, err := k.VoteOnProposal(ctx, id, voter1, true)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusActive, status)
	require.False(t, ok.IsPaused(ctx))

	// The emergency window is one day, not seven.
	status, err = k.FinalizeProposal(warp(ctx, 24*time.Hour), id)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusFailed, status)
}

func TestEmergencyPauseExecutes(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindEmergencyPause, "halt submissions",
		types.ProposalPayload{})
	require.NoError(t, err)

	// 10e9 against of 100e9 clears quorum but not the 80% bar.
	status, err := k.VoteOnProposal(ctx, id, proposer, false)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusActive, status)
	require.False(t, ok.IsPaused(ctx))

	// voter1's 50e9 yes brings approval to 50/60 = 83.3%, past 80%.
	status, err = k.VoteOnProposal(ctx, id, voter1, true)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusExecuted, status)
	require.True(t, ok.IsPaused(ctx))

	_, err = k.VoteOnProposal(ctx, id, voter2, true)
	require.ErrorIs(t, err, types.ErrProposalNotActive)
}
