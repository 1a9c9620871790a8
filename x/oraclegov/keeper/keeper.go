package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

// Keeper maintains the state of the oracle governance module: the stake
// ledger, the proposal store and the deposit escrow accounting. It is the sole
// writer of that state; execution side effects go through the oracle keeper.
type Keeper struct {
	storeKey     storetypes.StoreKey
	oracleKeeper types.OracleKeeper
}

// NewKeeper creates a new oraclegov Keeper instance
func NewKeeper(storeKey storetypes.StoreKey, oracleKeeper types.OracleKeeper) Keeper {
	return Keeper{
		storeKey:     storeKey,
		oracleKeeper: oracleKeeper,
	}
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// getStore returns the KVStore for the oraclegov module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetParams gets the module parameters from the store
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}
	return params
}

// SetParams sets the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}

// InitializeAdmin installs the governance admin. It fails if an admin has
// already been set; the admin can never be replaced through this path.
func (k Keeper) InitializeAdmin(ctx context.Context, admin string) error {
	if admin == "" {
		return types.ErrUnauthorized.Wrap("admin address cannot be empty")
	}

	store := k.getStore(ctx)
	if store.Has(types.AdminKey) {
		return types.ErrAlreadyInitialized
	}
	store.Set(types.AdminKey, []byte(admin))

	k.Logger(ctx).Info("governance admin initialized", "admin", admin)
	return nil
}

// GetAdmin returns the governance admin address
func (k Keeper) GetAdmin(ctx context.Context) (string, error) {
	bz := k.getStore(ctx).Get(types.AdminKey)
	if bz == nil {
		return "", types.ErrAdminNotSet
	}
	return string(bz), nil
}

// requireAdmin checks that the caller is the configured governance admin
func (k Keeper) requireAdmin(ctx context.Context, caller string) error {
	admin, err := k.GetAdmin(ctx)
	if err != nil {
		return err
	}
	if caller != admin {
		return types.ErrUnauthorized.Wrapf("caller %s is not the governance admin", caller)
	}
	return nil
}
