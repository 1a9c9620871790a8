package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/swipe-chain/swipe/testutil/keeper"
	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	setupProposalEnv(t, k, ok, ctx)
	require.NoError(t, k.InitializeAdmin(ctx, admin))

	// Build a state with every record type populated: an executed proposal,
	// an active one with ballots, and a burned deposit.
	id1, err := k.CreateProposal(ctx, proposer, types.ProposalKindAddOracle, "add source",
		types.ProposalPayload{OracleAddress: "swipe1newsource"})
	require.NoError(t, err)
	_, err = k.VoteOnProposal(ctx, id1, voter1, true)
	require.NoError(t, err)

	id2, err := k.CreateProposal(ctx, voter2, types.ProposalKindUpdateParameter, "tune ttl",
		types.ProposalPayload{ParamKey: types.ParamKeyPriceTTL, ParamValue: math.NewInt(600)})
	require.NoError(t, err)
	_, err = k.VoteOnProposal(ctx, id2, proposer, false)
	require.NoError(t, err)

	id3, err := k.CreateProposal(ctx, voter1, types.ProposalKindEmergencyPause, "halt", types.ProposalPayload{})
	require.NoError(t, err)
	_, err = k.FinalizeProposal(warp(ctx, 24*time.Hour), id3)
	require.NoError(t, err)

	exported := k.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())
	require.Equal(t, admin, exported.Admin)
	require.Equal(t, uint64(3), exported.ProposalCounter)
	require.Len(t, exported.Proposals, 3)
	require.Len(t, exported.Ballots, 2)
	require.False(t, exported.BurnedDeposits.IsZero())

	// Import into a fresh keeper and compare observable state.
	k2, _, ctx2 := keepertest.OracleGovKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	require.Equal(t, k.GetParams(ctx), k2.GetParams(ctx2))
	require.Equal(t, k.GetTotalStaked(ctx), k2.GetTotalStaked(ctx2))
	require.Equal(t, k.GetBurnedDeposits(ctx), k2.GetBurnedDeposits(ctx2))
	require.Equal(t, k.ProposalCount(ctx), k2.ProposalCount(ctx2))

	admin2, err := k2.GetAdmin(ctx2)
	require.NoError(t, err)
	require.Equal(t, admin, admin2)

	for _, id := range []uint64{id1, id2, id3} {
		want, err := k.GetProposal(ctx, id)
		require.NoError(t, err)
		got, err := k2.GetProposal(ctx2, id)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	require.True(t, k2.HasVoted(ctx2, id1, voter1))
	require.True(t, k2.HasVoted(ctx2, id2, proposer))
	require.False(t, k2.HasVoted(ctx2, id1, voter2))

	require.Equal(t, k.GetStake(ctx, proposer), k2.GetStake(ctx2, proposer))
	require.Equal(t, k.GetStake(ctx, voter1), k2.GetStake(ctx2, voter1))
	require.Equal(t, k.GetStake(ctx, voter2), k2.GetStake(ctx2, voter2))

	// Re-exporting yields the same state.
	require.Equal(t, exported, k2.ExportGenesis(ctx2))
}

func TestInitGenesisRecomputesTotal(t *testing.T) {
	k, _, ctx := keepertest.OracleGovKeeper(t)

	active := types.NewProposal(1, proposer, types.ProposalKindEmergencyPause, "halt",
		types.ProposalPayload{}, 9_999_999_999, math.NewInt(100))

	gs := types.DefaultGenesis()
	gs.ProposalCounter = 1
	gs.Proposals = []types.Proposal{active}
	gs.Stakes = []types.StakeEntry{
		{Address: voter1, Amount: math.NewInt(700)},
		{Address: voter2, Amount: math.NewInt(200)},
	}
	gs.BurnedDeposits = math.NewInt(50)

	require.NoError(t, k.InitGenesis(ctx, *gs))

	// balances 900 + locked 100 + burned 50
	require.Equal(t, math.NewInt(1050), k.GetTotalStaked(ctx))
}

func TestInitGenesisRejectsInvalid(t *testing.T) {
	k, _, ctx := keepertest.OracleGovKeeper(t)

	gs := types.DefaultGenesis()
	gs.Params.QuorumBps = -1

	require.Error(t, k.InitGenesis(ctx, *gs))
}
