package types

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgInitialize       = "initialize"
	TypeMsgDepositStake     = "deposit_stake"
	TypeMsgWithdrawStake    = "withdraw_stake"
	TypeMsgCreateProposal   = "create_proposal"
	TypeMsgVote             = "vote"
	TypeMsgFinalizeProposal = "finalize_proposal"
	TypeMsgRetryExecution   = "retry_execution"
	TypeMsgCancelProposal   = "cancel_proposal"
)

var (
	_ sdk.Msg = &MsgInitialize{}
	_ sdk.Msg = &MsgDepositStake{}
	_ sdk.Msg = &MsgWithdrawStake{}
	_ sdk.Msg = &MsgCreateProposal{}
	_ sdk.Msg = &MsgVote{}
	_ sdk.Msg = &MsgFinalizeProposal{}
	_ sdk.Msg = &MsgRetryExecution{}
	_ sdk.Msg = &MsgCancelProposal{}
)

// MsgInitialize sets the governance admin. It may succeed only once.
type MsgInitialize struct {
	// Admin is the governance admin address being installed
	Admin string `json:"admin"`
}

// MsgInitializeResponse is the response for MsgInitialize
type MsgInitializeResponse struct{}

// NewMsgInitialize creates a new MsgInitialize instance
func NewMsgInitialize(admin string) *MsgInitialize {
	return &MsgInitialize{Admin: admin}
}

// Route implements sdk.Msg
func (msg *MsgInitialize) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgInitialize) Type() string { return TypeMsgInitialize }

// GetSigners implements sdk.Msg
func (msg *MsgInitialize) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgInitialize) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgInitialize) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return ErrUnauthorized.Wrapf("invalid admin address: %s", err)
	}
	return nil
}

// MsgDepositStake adds stake that confers voting weight.
type MsgDepositStake struct {
	// Staker is the address depositing stake
	Staker string `json:"staker"`
	// Amount is the stake amount to add
	Amount math.Int `json:"amount"`
}

// MsgDepositStakeResponse is the response for MsgDepositStake
type MsgDepositStakeResponse struct {
	// TotalStaked is the system-wide staked total after the deposit
	TotalStaked math.Int `json:"total_staked"`
}

// NewMsgDepositStake creates a new MsgDepositStake instance
func NewMsgDepositStake(staker string, amount math.Int) *MsgDepositStake {
	return &MsgDepositStake{Staker: staker, Amount: amount}
}

// Route implements sdk.Msg
func (msg *MsgDepositStake) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgDepositStake) Type() string { return TypeMsgDepositStake }

// GetSigners implements sdk.Msg
func (msg *MsgDepositStake) GetSigners() []sdk.AccAddress {
	staker, _ := sdk.AccAddressFromBech32(msg.Staker)
	return []sdk.AccAddress{staker}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgDepositStake) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgDepositStake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Staker); err != nil {
		return ErrUnauthorized.Wrapf("invalid staker address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("deposit amount must be positive")
	}
	return nil
}

// MsgWithdrawStake removes previously deposited stake.
type MsgWithdrawStake struct {
	// Staker is the address withdrawing stake
	Staker string `json:"staker"`
	// Amount is the stake amount to remove
	Amount math.Int `json:"amount"`
}

// MsgWithdrawStakeResponse is the response for MsgWithdrawStake
type MsgWithdrawStakeResponse struct {
	// TotalStaked is the system-wide staked total after the withdrawal
	TotalStaked math.Int `json:"total_staked"`
}

// NewMsgWithdrawStake creates a new MsgWithdrawStake instance
func NewMsgWithdrawStake(staker string, amount math.Int) *MsgWithdrawStake {
	return &MsgWithdrawStake{Staker: staker, Amount: amount}
}

// Route implements sdk.Msg
func (msg *MsgWithdrawStake) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgWithdrawStake) Type() string { return TypeMsgWithdrawStake }

// GetSigners implements sdk.Msg
func (msg *MsgWithdrawStake) GetSigners() []sdk.AccAddress {
	staker, _ := sdk.AccAddressFromBech32(msg.Staker)
	return []sdk.AccAddress{staker}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgWithdrawStake) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgWithdrawStake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Staker); err != nil {
		return ErrUnauthorized.Wrapf("invalid staker address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("withdrawal amount must be positive")
	}
	return nil
}

// MsgCreateProposal opens a new governance proposal against a stake deposit.
type MsgCreateProposal struct {
	// Proposer is the address creating the proposal
	Proposer string `json:"proposer"`
	// Kind is the category of change being requested
	Kind ProposalKind `json:"kind"`
	// Description is the human-readable rationale
	Description string `json:"description"`
	// Payload is the typed execution payload
	Payload ProposalPayload `json:"payload"`
}

// MsgCreateProposalResponse is the response for MsgCreateProposal
type MsgCreateProposalResponse struct {
	// ProposalId is the identifier assigned to the new proposal
	ProposalId uint64 `json:"proposal_id"`
}

// NewMsgCreateProposal creates a new MsgCreateProposal instance
func NewMsgCreateProposal(proposer string, kind ProposalKind, description string, payload ProposalPayload) *MsgCreateProposal {
	return &MsgCreateProposal{
		Proposer:    proposer,
		Kind:        kind,
		Description: description,
		Payload:     payload,
	}
}

// Route implements sdk.Msg
func (msg *MsgCreateProposal) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgCreateProposal) Type() string { return TypeMsgCreateProposal }

// GetSigners implements sdk.Msg
func (msg *MsgCreateProposal) GetSigners() []sdk.AccAddress {
	proposer, _ := sdk.AccAddressFromBech32(msg.Proposer)
	return []sdk.AccAddress{proposer}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgCreateProposal) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgCreateProposal) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Proposer); err != nil {
		return ErrUnauthorized.Wrapf("invalid proposer address: %s", err)
	}
	if strings.TrimSpace(msg.Description) == "" {
		return ErrInvalidPayload.Wrap("description cannot be empty")
	}
	if err := msg.Payload.Validate(msg.Kind); err != nil {
		return ErrInvalidPayload.Wrap(err.Error())
	}
	return nil
}

// MsgVote casts a stake-weighted ballot on an active proposal.
type MsgVote struct {
	// ProposalId identifies the proposal being voted on
	ProposalId uint64 `json:"proposal_id"`
	// Voter is the address casting the ballot
	Voter string `json:"voter"`
	// Support is true for a vote in favour
	Support bool `json:"support"`
}

// MsgVoteResponse is the response for MsgVote
type MsgVoteResponse struct {
	// Status is the proposal status after the vote (execution may have run)
	Status ProposalStatus `json:"status"`
}

// NewMsgVote creates a new MsgVote instance
func NewMsgVote(proposalID uint64, voter string, support bool) *MsgVote {
	return &MsgVote{ProposalId: proposalID, Voter: voter, Support: support}
}

// Route implements sdk.Msg
func (msg *MsgVote) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgVote) Type() string { return TypeMsgVote }

// GetSigners implements sdk.Msg
func (msg *MsgVote) GetSigners() []sdk.AccAddress {
	voter, _ := sdk.AccAddressFromBech32(msg.Voter)
	return []sdk.AccAddress{voter}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgVote) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgVote) ValidateBasic() error {
	if msg.ProposalId == 0 {
		return ErrProposalNotFound.Wrap("proposal id must be positive")
	}
	if _, err := sdk.AccAddressFromBech32(msg.Voter); err != nil {
		return ErrUnauthorized.Wrapf("invalid voter address: %s", err)
	}
	return nil
}

// MsgFinalizeProposal sweeps an expired proposal into a terminal state.
// Callable by anyone.
type MsgFinalizeProposal struct {
	// Sender is the address requesting finalization
	Sender string `json:"sender"`
	// ProposalId identifies the proposal to finalize
	ProposalId uint64 `json:"proposal_id"`
}

// MsgFinalizeProposalResponse is the response for MsgFinalizeProposal
type MsgFinalizeProposalResponse struct {
	// Status is the proposal status after finalization
	Status ProposalStatus `json:"status"`
}

// NewMsgFinalizeProposal creates a new MsgFinalizeProposal instance
func NewMsgFinalizeProposal(sender string, proposalID uint64) *MsgFinalizeProposal {
	return &MsgFinalizeProposal{Sender: sender, ProposalId: proposalID}
}

// Route implements sdk.Msg
func (msg *MsgFinalizeProposal) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgFinalizeProposal) Type() string { return TypeMsgFinalizeProposal }

// GetSigners implements sdk.Msg
func (msg *MsgFinalizeProposal) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgFinalizeProposal) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgFinalizeProposal) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized.Wrapf("invalid sender address: %s", err)
	}
	if msg.ProposalId == 0 {
		return ErrProposalNotFound.Wrap("proposal id must be positive")
	}
	return nil
}

// MsgRetryExecution re-runs the dispatcher for a proposal stuck in
// ExecutionFailed. Deliberately permissionless.
type MsgRetryExecution struct {
	// Sender is the address requesting the retry
	Sender string `json:"sender"`
	// ProposalId identifies the proposal to retry
	ProposalId uint64 `json:"proposal_id"`
}

// MsgRetryExecutionResponse is the response for MsgRetryExecution
type MsgRetryExecutionResponse struct {
	// Status is the proposal status after the retry attempt
	Status ProposalStatus `json:"status"`
}

// NewMsgRetryExecution creates a new MsgRetryExecution instance
func NewMsgRetryExecution(sender string, proposalID uint64) *MsgRetryExecution {
	return &MsgRetryExecution{Sender: sender, ProposalId: proposalID}
}

// Route implements sdk.Msg
func (msg *MsgRetryExecution) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgRetryExecution) Type() string { return TypeMsgRetryExecution }

// GetSigners implements sdk.Msg
func (msg *MsgRetryExecution) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgRetryExecution) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgRetryExecution) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrUnauthorized.Wrapf("invalid sender address: %s", err)
	}
	if msg.ProposalId == 0 {
		return ErrProposalNotFound.Wrap("proposal id must be positive")
	}
	return nil
}

// MsgCancelProposal cancels an active proposal and returns its deposit.
// Admin only.
type MsgCancelProposal struct {
	// Admin is the governance admin address
	Admin string `json:"admin"`
	// ProposalId identifies the proposal to cancel
	ProposalId uint64 `json:"proposal_id"`
}

// MsgCancelProposalResponse is the response for MsgCancelProposal
type MsgCancelProposalResponse struct{}

// NewMsgCancelProposal creates a new MsgCancelProposal instance
func NewMsgCancelProposal(admin string, proposalID uint64) *MsgCancelProposal {
	return &MsgCancelProposal{Admin: admin, ProposalId: proposalID}
}

// Route implements sdk.Msg
func (msg *MsgCancelProposal) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgCancelProposal) Type() string { return TypeMsgCancelProposal }

// GetSigners implements sdk.Msg
func (msg *MsgCancelProposal) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgCancelProposal) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgCancelProposal) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return ErrUnauthorized.Wrapf("invalid admin address: %s", err)
	}
	if msg.ProposalId == 0 {
		return ErrProposalNotFound.Wrap("proposal id must be positive")
	}
	return nil
}

// Hand-written proto.Message surface for the message types. The module uses
// JSON record encoding in its own store; these methods exist to satisfy the
// sdk.Msg contract for routing and signing.

func (msg *MsgInitialize) Reset()         { *msg = MsgInitialize{} }
func (msg *MsgInitialize) String() string { return fmt.Sprintf("MsgInitialize{%s}", msg.Admin) }
func (msg *MsgInitialize) ProtoMessage()  {}

func (msg *MsgInitializeResponse) Reset()         { *msg = MsgInitializeResponse{} }
func (msg *MsgInitializeResponse) String() string { return "MsgInitializeResponse{}" }
func (msg *MsgInitializeResponse) ProtoMessage()  {}

func (msg *MsgDepositStake) Reset() { *msg = MsgDepositStake{} }
func (msg *MsgDepositStake) String() string {
	return fmt.Sprintf("MsgDepositStake{%s, %s}", msg.Staker, msg.Amount)
}
func (msg *MsgDepositStake) ProtoMessage() {}

func (msg *MsgDepositStakeResponse) Reset()         { *msg = MsgDepositStakeResponse{} }
func (msg *MsgDepositStakeResponse) String() string { return "MsgDepositStakeResponse{}" }
func (msg *MsgDepositStakeResponse) ProtoMessage()  {}

func (msg *MsgWithdrawStake) Reset() { *msg = MsgWithdrawStake{} }
func (msg *MsgWithdrawStake) String() string {
	return fmt.Sprintf("MsgWithdrawStake{%s, %s}", msg.Staker, msg.Amount)
}
func (msg *MsgWithdrawStake) ProtoMessage() {}

func (msg *MsgWithdrawStakeResponse) Reset()         { *msg = MsgWithdrawStakeResponse{} }
func (msg *MsgWithdrawStakeResponse) String() string { return "MsgWithdrawStakeResponse{}" }
func (msg *MsgWithdrawStakeResponse) ProtoMessage()  {}

func (msg *MsgCreateProposal) Reset() { *msg = MsgCreateProposal{} }
func (msg *MsgCreateProposal) String() string {
	return fmt.Sprintf("MsgCreateProposal{%s, %s}", msg.Proposer, msg.Kind)
}
func (msg *MsgCreateProposal) ProtoMessage() {}

func (msg *MsgCreateProposalResponse) Reset()         { *msg = MsgCreateProposalResponse{} }
func (msg *MsgCreateProposalResponse) String() string { return "MsgCreateProposalResponse{}" }
func (msg *MsgCreateProposalResponse) ProtoMessage()  {}

func (msg *MsgVote) Reset() { *msg = MsgVote{} }
func (msg *MsgVote) String() string {
	return fmt.Sprintf("MsgVote{%d, %s, %t}", msg.ProposalId, msg.Voter, msg.Support)
}
func (msg *MsgVote) ProtoMessage() {}

func (msg *MsgVoteResponse) Reset()         { *msg = MsgVoteResponse{} }
func (msg *MsgVoteResponse) String() string { return "MsgVoteResponse{}" }
func (msg *MsgVoteResponse) ProtoMessage()  {}

func (msg *MsgFinalizeProposal) Reset() { *msg = MsgFinalizeProposal{} }
func (msg *MsgFinalizeProposal) String() string {
	return fmt.Sprintf("MsgFinalizeProposal{%d}", msg.ProposalId)
}
func (msg *MsgFinalizeProposal) ProtoMessage() {}

func (msg *MsgFinalizeProposalResponse) Reset()         { *msg = MsgFinalizeProposalResponse{} }
func (msg *MsgFinalizeProposalResponse) String() string { return "MsgFinalizeProposalResponse{}" }
func (msg *MsgFinalizeProposalResponse) ProtoMessage()  {}

func (msg *MsgRetryExecution) Reset() { *msg = MsgRetryExecution{} }
func (msg *MsgRetryExecution) String() string {
	return fmt.Sprintf("MsgRetryExecution{%d}", msg.ProposalId)
}
func (msg *MsgRetryExecution) ProtoMessage() {}

func (msg *MsgRetryExecutionResponse) Reset()         { *msg = MsgRetryExecutionResponse{} }
func (msg *MsgRetryExecutionResponse) String() string { return "MsgRetryExecutionResponse{}" }
func (msg *MsgRetryExecutionResponse) ProtoMessage()  {}

func (msg *MsgCancelProposal) Reset() { *msg = MsgCancelProposal{} }
func (msg *MsgCancelProposal) String() string {
	return fmt.Sprintf("MsgCancelProposal{%d, %s}", msg.ProposalId, msg.Admin)
}
func (msg *MsgCancelProposal) ProtoMessage() {}

func (msg *MsgCancelProposalResponse) Reset()         { *msg = MsgCancelProposalResponse{} }
func (msg *MsgCancelProposalResponse) String() string { return "MsgCancelProposalResponse{}" }
func (msg *MsgCancelProposalResponse) ProtoMessage()  {}
