package keeper

import (
	"context"

	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Initialize installs the governance admin. It can be called exactly once.
func (ms msgServer) Initialize(goCtx context.Context, msg *types.MsgInitialize) (*types.MsgInitializeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.InitializeAdmin(goCtx, msg.Admin); err != nil {
		return nil, err
	}
	return &types.MsgInitializeResponse{}, nil
}

// DepositStake handles a stake deposit
func (ms msgServer) DepositStake(goCtx context.Context, msg *types.MsgDepositStake) (*types.MsgDepositStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	total, err := ms.Keeper.DepositStake(goCtx, msg.Staker, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgDepositStakeResponse{TotalStaked: total}, nil
}

// WithdrawStake handles a stake withdrawal
func (ms msgServer) WithdrawStake(goCtx context.Context, msg *types.MsgWithdrawStake) (*types.MsgWithdrawStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	total, err := ms.Keeper.WithdrawStake(goCtx, msg.Staker, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawStakeResponse{TotalStaked: total}, nil
}

// CreateProposal opens a new proposal and locks the proposer's deposit
func (ms msgServer) CreateProposal(goCtx context.Context, msg *types.MsgCreateProposal) (*types.MsgCreateProposalResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	id, err := ms.Keeper.CreateProposal(goCtx, msg.Proposer, msg.Kind, msg.Description, msg.Payload)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateProposalResponse{ProposalId: id}, nil
}

// Vote casts a stake-weighted ballot
func (ms msgServer) Vote(goCtx context.Context, msg *types.MsgVote) (*types.MsgVoteResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	status, err := ms.VoteOnProposal(goCtx, msg.ProposalId, msg.Voter, msg.Support)
	if err != nil {
		return nil, err
	}
	return &types.MsgVoteResponse{Status: status}, nil
}

// FinalizeProposal sweeps an expired proposal
func (ms msgServer) FinalizeProposal(goCtx context.Context, msg *types.MsgFinalizeProposal) (*types.MsgFinalizeProposalResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	status, err := ms.Keeper.FinalizeProposal(goCtx, msg.ProposalId)
	if err != nil {
		return nil, err
	}
	return &types.MsgFinalizeProposalResponse{Status: status}, nil
}

// RetryExecution re-runs the dispatcher for a proposal stuck in ExecutionFailed
func (ms msgServer) RetryExecution(goCtx context.Context, msg *types.MsgRetryExecution) (*types.MsgRetryExecutionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	status, err := ms.Keeper.RetryExecution(goCtx, msg.ProposalId)
	if err != nil {
		return nil, err
	}
	return &types.MsgRetryExecutionResponse{Status: status}, nil
}

// CancelProposal cancels an active proposal (admin only)
func (ms msgServer) CancelProposal(goCtx context.Context, msg *types.MsgCancelProposal) (*types.MsgCancelProposalResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.CancelProposal(goCtx, msg.Admin, msg.ProposalId); err != nil {
		return nil, err
	}
	return &types.MsgCancelProposalResponse{}, nil
}
