package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/swipe-chain/swipe/testutil/keeper"
	oraclekeeper "github.com/swipe-chain/swipe/x/oracle/keeper"
	"github.com/swipe-chain/swipe/x/oraclegov/keeper"
	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

const (
	admin    = "swipe1admin"
	proposer = "swipe1proposer"
	voter1   = "swipe1voter1"
	voter2   = "swipe1voter2"
	source1  = "swipe1source1"
	source2  = "swipe1source2"
	source3  = "swipe1source3"
)

type KeeperTestSuite struct {
	suite.Suite
	keeper keeper.Keeper
	oracle oraclekeeper.Keeper
	ctx    sdk.Context
}

func (suite *KeeperTestSuite) SetupTest() {
	suite.keeper, suite.oracle, suite.ctx = keepertest.OracleGovKeeper(suite.T())
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) TestInitializeAdminOnce() {
	require.NoError(suite.T(), suite.keeper.InitializeAdmin(suite.ctx, admin))

	got, err := suite.keeper.GetAdmin(suite.ctx)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), admin, got)

	err = suite.keeper.InitializeAdmin(suite.ctx, "swipe1other")
	require.ErrorIs(suite.T(), err, types.ErrAlreadyInitialized)

	// Admin unchanged after the rejected second initialize.
	got, err = suite.keeper.GetAdmin(suite.ctx)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), admin, got)
}

func (suite *KeeperTestSuite) TestAdminNotSet() {
	_, err := suite.keeper.GetAdmin(suite.ctx)
	require.ErrorIs(suite.T(), err, types.ErrAdminNotSet)
}

func (suite *KeeperTestSuite) TestParamsRoundTrip() {
	params := suite.keeper.GetParams(suite.ctx)
	require.NoError(suite.T(), params.Validate())

	params.QuorumBps = 2000
	require.NoError(suite.T(), suite.keeper.SetParams(suite.ctx, params))
	require.Equal(suite.T(), int64(2000), suite.keeper.GetParams(suite.ctx).QuorumBps)

	params.QuorumBps = 0
	require.Error(suite.T(), suite.keeper.SetParams(suite.ctx, params))
}

// warp advances block time by d and returns the updated context.
func warp(ctx sdk.Context, d time.Duration) sdk.Context {
	return ctx.WithBlockTime(ctx.BlockTime().Add(d))
}

// setupProposalEnv seeds stake for the standard test actors and registers the
// baseline oracle sources. Total staked afterwards: proposer 20000e6,
// voter1 50000e6, voter2 30000e6.
func setupProposalEnv(t *testing.T, k keeper.Keeper, ok oraclekeeper.Keeper, ctx sdk.Context) {
	t.Helper()

	for addr, amount := range map[string]math.Int{
		proposer: math.NewInt(20_000_000_000),
		voter1:   math.NewInt(50_000_000_000),
		voter2:   math.NewInt(30_000_000_000),
	} {
		_, err := k.DepositStake(ctx, addr, amount)
		require.NoError(t, err)
	}

	for _, src := range []string{source1, source2, source3} {
		require.NoError(t, ok.AddSource(ctx, src))
	}
}
