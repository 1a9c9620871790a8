package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/oracle module sentinel errors
var (
	ErrSourceExists   = sdkerrors.Register(ModuleName, 2, "oracle source already registered")
	ErrSourceNotFound = sdkerrors.Register(ModuleName, 3, "oracle source not found")
	ErrPaused         = sdkerrors.Register(ModuleName, 4, "oracle submissions are paused")
	ErrNotPaused      = sdkerrors.Register(ModuleName, 5, "oracle submissions are not paused")
	ErrInvalidParams  = sdkerrors.Register(ModuleName, 6, "invalid oracle parameters")
)
