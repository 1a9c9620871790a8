package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/swipe-chain/swipe/testutil/keeper"
	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

func TestEndBlockerSweepsExpired(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	// Standard proposal with a winning tally that never crossed quorum
	// mid-window, an emergency proposal, and one that stays in-window.
	id1, err := k.CreateProposal(ctx, proposer, types.ProposalKindEmergencyPause, "halt", types.ProposalPayload{})
	require.NoError(t, err)

	id2, err := k.CreateProposal(ctx, voter2, types.ProposalKindAddOracle, "add source",
		types.ProposalPayload{OracleAddress: "swipe1newsource"})
	require.NoError(t, err)

	// A day later only the emergency window has closed.
	ctx = warp(ctx, 24*time.Hour)
	require.NoError(t, k.EndBlocker(ctx))

	p1, err := k.GetProposal(ctx, id1)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusFailed, p1.Status)

	p2, err := k.GetProposal(ctx, id2)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusActive, p2.Status)

	// Six more days close the standard window too.
	ctx = warp(ctx, 6*24*time.Hour)
	require.NoError(t, k.EndBlocker(ctx))

	p2, err = k.GetProposal(ctx, id2)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusFailed, p2.Status)
}

func TestEndBlockerExecutesApprovedExpired(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	small := "swipe1small"
	_, err := k.DepositStake(ctx, small, math.NewInt(5_000_000_000))
	require.NoError(t, err)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindAddOracle, "add source",
		types.ProposalPayload{OracleAddress: "swipe1newsource"})
	require.NoError(t, err)

	// Under quorum while the big stakers are in.
	_, err = k.VoteOnProposal(ctx, id, small, true)
	require.NoError(t, err)

	_, err = k.WithdrawStake(ctx, voter1, math.NewInt(50_000_000_000))
	require.NoError(t, err)
	_, err = k.WithdrawStake(ctx, voter2, math.NewInt(30_000_000_000))
	require.NoError(t, err)

	require.NoError(t, k.EndBlocker(warp(ctx, 7*24*time.Hour)))

	p, err := k.GetProposal(ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusExecuted, p.Status)
	require.True(t, ok.HasSource(ctx, "swipe1newsource"))
}

func TestEndBlockerIgnoresSettled(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)

	id, err := k.CreateProposal(ctx, proposer, types.ProposalKindAddOracle, "add source",
		types.ProposalPayload{OracleAddress: "swipe1newsource"})
	require.NoError(t, err)
	_, err = k.VoteOnProposal(ctx, id, voter1, true)
	require.NoError(t, err)

	burnedBefore := k.GetBurnedDeposits(ctx)

	require.NoError(t, k.EndBlocker(warp(ctx, 30*24*time.Hour)))

	p, err := k.GetProposal(ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusExecuted, p.Status)
	require.Equal(t, burnedBefore, k.GetBurnedDeposits(ctx))
}
