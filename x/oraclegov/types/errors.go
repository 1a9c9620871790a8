package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Oraclegov module sentinel errors
var (
	// Authorization errors
	ErrUnauthorized       = sdkerrors.Register(ModuleName, 2, "unauthorized")
	ErrAdminNotSet        = sdkerrors.Register(ModuleName, 3, "governance admin not set")
	ErrAlreadyInitialized = sdkerrors.Register(ModuleName, 4, "governance already initialized")

	// Stake errors
	ErrInvalidAmount     = sdkerrors.Register(ModuleName, 10, "invalid stake amount")
	ErrInsufficientStake = sdkerrors.Register(ModuleName, 11, "insufficient stake")
	ErrNoVotingWeight    = sdkerrors.Register(ModuleName, 12, "no voting weight")

	// Proposal errors
	ErrProposalNotFound   = sdkerrors.Register(ModuleName, 20, "proposal not found")
	ErrProposalNotActive  = sdkerrors.Register(ModuleName, 21, "proposal not active")
	ErrVotingWindowClosed = sdkerrors.Register(ModuleName, 22, "voting window closed")
	ErrAlreadyVoted       = sdkerrors.Register(ModuleName, 23, "already voted on proposal")
	ErrInvalidPayload     = sdkerrors.Register(ModuleName, 24, "invalid proposal payload")
	ErrNotRetryable       = sdkerrors.Register(ModuleName, 25, "proposal not in execution-failed state")

	// Execution errors
	ErrOracleExists        = sdkerrors.Register(ModuleName, 30, "oracle source already registered")
	ErrOracleNotFound      = sdkerrors.Register(ModuleName, 31, "oracle source not registered")
	ErrMinOracles          = sdkerrors.Register(ModuleName, 32, "removal would breach minimum oracle count")
	ErrUnknownParameterKey = sdkerrors.Register(ModuleName, 33, "unknown parameter key")
)
