package types

import "context"

// MsgServer is the server API for the oraclegov Msg service.
type MsgServer interface {
	Initialize(context.Context, *MsgInitialize) (*MsgInitializeResponse, error)
	DepositStake(context.Context, *MsgDepositStake) (*MsgDepositStakeResponse, error)
	WithdrawStake(context.Context, *MsgWithdrawStake) (*MsgWithdrawStakeResponse, error)
	CreateProposal(context.Context, *MsgCreateProposal) (*MsgCreateProposalResponse, error)
	Vote(context.Context, *MsgVote) (*MsgVoteResponse, error)
	FinalizeProposal(context.Context, *MsgFinalizeProposal) (*MsgFinalizeProposalResponse, error)
	RetryExecution(context.Context, *MsgRetryExecution) (*MsgRetryExecutionResponse, error)
	CancelProposal(context.Context, *MsgCancelProposal) (*MsgCancelProposalResponse, error)
}
