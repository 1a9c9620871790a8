package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/swipe-chain/swipe/testutil/keeper"
	"github.com/swipe-chain/swipe/x/oraclegov/keeper"
	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

// bech32Addr derives a deterministic bech32 account address from a seed. The
// msg server runs ValidateBasic, so unlike direct keeper calls these tests
// need well-formed addresses.
func bech32Addr(seed string) string {
	return sdk.AccAddress([]byte(seed + "____________________")[:20]).String()
}

func TestMsgServerStakeFlow(t *testing.T) {
	k, _, ctx := keepertest.OracleGovKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	staker := bech32Addr("staker")

	resp, err := srv.DepositStake(ctx, types.NewMsgDepositStake(staker, math.NewInt(1000)))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), resp.TotalStaked)

	wResp, err := srv.WithdrawStake(ctx, types.NewMsgWithdrawStake(staker, math.NewInt(400)))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600), wResp.TotalStaked)

	// ValidateBasic runs before the keeper is touched.
	_, err = srv.DepositStake(ctx, types.NewMsgDepositStake("not-an-address", math.NewInt(1)))
	require.Error(t, err)
	_, err = srv.WithdrawStake(ctx, types.NewMsgWithdrawStake(staker, math.ZeroInt()))
	require.Error(t, err)
}

func TestMsgServerProposalFlow(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	proposerAddr := bech32Addr("proposer")
	voterAddr := bech32Addr("voter")

	_, err := srv.DepositStake(ctx, types.NewMsgDepositStake(proposerAddr, math.NewInt(20_000_000_000)))
	require.NoError(t, err)
	_, err = srv.DepositStake(ctx, types.NewMsgDepositStake(voterAddr, math.NewInt(80_000_000_000)))
	require.NoError(t, err)

	created, err := srv.CreateProposal(ctx, types.NewMsgCreateProposal(
		proposerAddr, types.ProposalKindAddOracle, "add source",
		types.ProposalPayload{OracleAddress: "swipe1newsource"}))
	require.NoError(t, err)
	require.Equal(t, uint64(1), created.ProposalId)

	voted, err := srv.Vote(ctx, types.NewMsgVote(created.ProposalId, voterAddr, true))
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusExecuted, voted.Status)
	require.True(t, ok.HasSource(ctx, "swipe1newsource"))
}

func TestMsgServerInitializeAndCancel(t *testing.T) {
	k, _, ctx := keepertest.OracleGovKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	adminAddr := bech32Addr("admin")
	proposerAddr := bech32Addr("proposer")

	_, err := srv.Initialize(ctx, types.NewMsgInitialize(adminAddr))
	require.NoError(t, err)
	_, err = srv.Initialize(ctx, types.NewMsgInitialize(adminAddr))
	require.ErrorIs(t, err, types.ErrAlreadyInitialized)

	_, err = srv.DepositStake(ctx, types.NewMsgDepositStake(proposerAddr, math.NewInt(20_000_000_000)))
	require.NoError(t, err)

	created, err := srv.CreateProposal(ctx, types.NewMsgCreateProposal(
		proposerAddr, types.ProposalKindEmergencyPause, "halt", types.ProposalPayload{}))
	require.NoError(t, err)

	_, err = srv.CancelProposal(ctx, types.NewMsgCancelProposal(proposerAddr, created.ProposalId))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = srv.CancelProposal(ctx, types.NewMsgCancelProposal(adminAddr, created.ProposalId))
	require.NoError(t, err)

	p, err := k.GetProposal(ctx, created.ProposalId)
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusCancelled, p.Status)
}

func TestMsgServerFinalizeAndRetry(t *testing.T) {
	k, ok, ctx := keepertest.OracleGovKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	proposerAddr := bech32Addr("proposer")
	senderAddr := bech32Addr("sender")

	_, err := srv.DepositStake(ctx, types.NewMsgDepositStake(proposerAddr, math.NewInt(20_000_000_000)))
	require.NoError(t, err)

	// Removing a source that was never registered: approved then stuck.
	created, err := srv.CreateProposal(ctx, types.NewMsgCreateProposal(
		proposerAddr, types.ProposalKindRemoveOracle, "drop source",
		types.ProposalPayload{OracleAddress: "swipe1ghost"}))
	require.NoError(t, err)

	voted, err := srv.Vote(ctx, types.NewMsgVote(created.ProposalId, proposerAddr, true))
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusExecutionFailed, voted.Status)

	// Retry is permissionless but the conflict persists.
	retried, err := srv.RetryExecution(ctx, types.NewMsgRetryExecution(senderAddr, created.ProposalId))
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusExecutionFailed, retried.Status)

	// Finalize on a non-active proposal reports status without error.
	finalized, err := srv.FinalizeProposal(ctx, types.NewMsgFinalizeProposal(senderAddr, created.ProposalId))
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusExecutionFailed, finalized.Status)

	// With exactly two sources the removal floor still blocks execution.
	for _, src := range []string{"swipe1ghost", source1} {
		require.NoError(t, ok.AddSource(ctx, src))
	}
	retried, err = srv.RetryExecution(ctx, types.NewMsgRetryExecution(senderAddr, created.ProposalId))
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusExecutionFailed, retried.Status)

	// A third source puts the count above the floor.
	require.NoError(t, ok.AddSource(ctx, source2))
	retried, err = srv.RetryExecution(ctx, types.NewMsgRetryExecution(senderAddr, created.ProposalId))
	require.NoError(t, err)
	require.Equal(t, types.ProposalStatusExecuted, retried.Status)
	require.False(t, ok.HasSource(ctx, "swipe1ghost"))
}
