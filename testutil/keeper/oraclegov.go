package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	oraclekeeper "github.com/swipe-chain/swipe/x/oracle/keeper"
	oracletypes "github.com/swipe-chain/swipe/x/oracle/types"
	"github.com/swipe-chain/swipe/x/oraclegov/keeper"
	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

// OracleGovKeeper creates a test keeper for the governance module wired to a
// real oracle keeper sharing the same multistore. Block time starts at a
// fixed instant so tests can warp past voting windows deterministically.
func OracleGovKeeper(t testing.TB) (keeper.Keeper, oraclekeeper.Keeper, sdk.Context) {
	govStoreKey := storetypes.NewKVStoreKey(types.StoreKey)
	oracleStoreKey := storetypes.NewKVStoreKey(oracletypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(govStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(oracleStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	oracleKeeper := oraclekeeper.NewKeeper(oracleStoreKey)
	k := keeper.NewKeeper(govStoreKey, oracleKeeper)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger()).
		WithBlockTime(time.Unix(1_700_000_000, 0))

	require.NoError(t, oracleKeeper.InitGenesis(ctx, *oracletypes.DefaultGenesis()))
	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, oracleKeeper, ctx
}
