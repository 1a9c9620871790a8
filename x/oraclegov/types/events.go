package types

// Event types for the oraclegov module
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeProposalCreated   = "gov_proposal_created"
	EventTypeVoteCast          = "gov_vote_cast"
	EventTypeProposalExecuted  = "gov_proposal_executed"
	EventTypeProposalFailed    = "gov_proposal_failed"
	EventTypeProposalCancelled = "gov_proposal_cancelled"
	EventTypeStakeChanged      = "gov_stake_changed"
	EventTypeDepositSettled    = "gov_deposit_settled"
)

// Event attribute keys for the oraclegov module
const (
	AttributeKeyProposalID  = "proposal_id"
	AttributeKeyProposer    = "proposer"
	AttributeKeyKind        = "kind"
	AttributeKeyVoter       = "voter"
	AttributeKeySupport     = "support"
	AttributeKeyWeight      = "weight"
	AttributeKeyStaker      = "staker"
	AttributeKeyAmount      = "amount"
	AttributeKeyTotalStaked = "total_staked"
	AttributeKeyReason      = "reason"
	AttributeKeyOutcome     = "outcome"
	AttributeKeyRecipient   = "recipient"

	// Deposit settlement outcomes
	AttributeOutcomeReturned = "returned"
	AttributeOutcomeBurned   = "burned"
)
