package types

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
)

// ProposalKind selects the voting window, the approval threshold and the
// execution handler for a proposal.
type ProposalKind uint8

const (
	// ProposalKindAddOracle requests adding a new oracle source.
	ProposalKindAddOracle ProposalKind = 1

	// ProposalKindRemoveOracle requests removing an existing oracle source.
	ProposalKindRemoveOracle ProposalKind = 2

	// ProposalKindUpdateParameter requests updating a runtime oracle parameter.
	ProposalKindUpdateParameter ProposalKind = 3

	// ProposalKindEmergencyPause requests halting all oracle submissions
	// (shorter window, higher threshold).
	ProposalKindEmergencyPause ProposalKind = 4
)

// String implements the Stringer interface
func (k ProposalKind) String() string {
	switch k {
	case ProposalKindAddOracle:
		return "add_oracle"
	case ProposalKindRemoveOracle:
		return "remove_oracle"
	case ProposalKindUpdateParameter:
		return "update_parameter"
	case ProposalKindEmergencyPause:
		return "emergency_pause"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// ProposalKindFromString parses a proposal kind name as used by the CLI.
func ProposalKindFromString(s string) (ProposalKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add_oracle", "add-oracle":
		return ProposalKindAddOracle, nil
	case "remove_oracle", "remove-oracle":
		return ProposalKindRemoveOracle, nil
	case "update_parameter", "update-parameter":
		return ProposalKindUpdateParameter, nil
	case "emergency_pause", "emergency-pause":
		return ProposalKindEmergencyPause, nil
	default:
		return 0, fmt.Errorf("unknown proposal kind: %q", s)
	}
}

// ProposalStatus represents the lifecycle state of a proposal.
//
// Lifecycle:
//
//	Active → Executed        (quorum + approval reached, execution succeeded)
//	Active → ExecutionFailed (quorum + approval reached, execution errored; retryable)
//	Active → Failed          (window closed without quorum/approval; deposit burned)
//	Active → Cancelled       (admin cancel; deposit returned)
//	ExecutionFailed → Executed (via retry)
//
// Executed, Failed and Cancelled are terminal.
type ProposalStatus uint8

const (
	// ProposalStatusActive indicates the proposal is accepting votes.
	ProposalStatusActive ProposalStatus = 1

	// ProposalStatusExecuted indicates the proposal was approved and applied.
	ProposalStatusExecuted ProposalStatus = 2

	// ProposalStatusFailed indicates voting ended without quorum or approval.
	ProposalStatusFailed ProposalStatus = 3

	// ProposalStatusExecutionFailed indicates the proposal was approved but the
	// requested change could not be applied; retry is possible.
	ProposalStatusExecutionFailed ProposalStatus = 4

	// ProposalStatusCancelled indicates the proposal was cancelled by the admin.
	ProposalStatusCancelled ProposalStatus = 5
)

// String implements the Stringer interface
func (s ProposalStatus) String() string {
	switch s {
	case ProposalStatusActive:
		return "active"
	case ProposalStatusExecuted:
		return "executed"
	case ProposalStatusFailed:
		return "failed"
	case ProposalStatusExecutionFailed:
		return "execution_failed"
	case ProposalStatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// IsTerminal reports whether no further transition is possible from s.
func (s ProposalStatus) IsTerminal() bool {
	return s == ProposalStatusExecuted || s == ProposalStatusFailed || s == ProposalStatusCancelled
}

// Oracle parameter keys accepted by UpdateParameter proposals.
const (
	// ParamKeyMinOracles updates the minimum oracle source count.
	ParamKeyMinOracles = uint64(0)

	// ParamKeyPriceTTL updates the price staleness TTL in seconds.
	ParamKeyPriceTTL = uint64(1)

	// ParamKeyMaxDeviationBps updates the maximum allowed price deviation.
	ParamKeyMaxDeviationBps = uint64(2)
)

// ProposalPayload carries the typed execution payload of a proposal. The kind
// decides which fields are meaningful:
//
//   - AddOracle / RemoveOracle → OracleAddress
//   - UpdateParameter          → ParamKey, ParamValue
//   - EmergencyPause           → empty
type ProposalPayload struct {
	// OracleAddress is the oracle source to add or remove
	OracleAddress string `json:"oracle_address,omitempty"`
	// ParamKey identifies the parameter to update
	ParamKey uint64 `json:"param_key,omitempty"`
	// ParamValue is the new parameter value
	ParamValue math.Int `json:"param_value"`
}

// Validate checks the payload against the proposal kind. Payloads are
// validated at creation time so malformed payloads can never reach execution.
func (p ProposalPayload) Validate(kind ProposalKind) error {
	switch kind {
	case ProposalKindAddOracle, ProposalKindRemoveOracle:
		if strings.TrimSpace(p.OracleAddress) == "" {
			return fmt.Errorf("%s payload requires an oracle address", kind)
		}
	case ProposalKindUpdateParameter:
		switch p.ParamKey {
		case ParamKeyMinOracles, ParamKeyPriceTTL, ParamKeyMaxDeviationBps:
		default:
			return fmt.Errorf("unknown parameter key %d", p.ParamKey)
		}
		if p.ParamValue.IsNil() || p.ParamValue.IsNegative() {
			return fmt.Errorf("parameter value must be non-negative")
		}
	case ProposalKindEmergencyPause:
		// no payload
	default:
		return fmt.Errorf("unknown proposal kind %d", kind)
	}
	return nil
}

// Proposal is the full governance record for one requested oracle change.
type Proposal struct {
	// ID is the unique, monotonically increasing identifier (starts at 1)
	ID uint64 `json:"id"`
	// Proposer is the address that created the proposal and paid the deposit
	Proposer string `json:"proposer"`
	// Kind is the category of change being requested
	Kind ProposalKind `json:"kind"`
	// Description is the human-readable rationale
	Description string `json:"description"`
	// VotesFor is the stake-weighted tally in favour
	VotesFor math.Int `json:"votes_for"`
	// VotesAgainst is the stake-weighted tally against
	VotesAgainst math.Int `json:"votes_against"`
	// VotingEnds is the unix timestamp after which no more votes are accepted
	VotingEnds uint64 `json:"voting_ends"`
	// Status is the current lifecycle state
	Status ProposalStatus `json:"status"`
	// Payload is the typed execution payload, fixed at creation
	Payload ProposalPayload `json:"payload"`
	// Deposit is the stake locked at creation, returned or burned on resolution
	Deposit math.Int `json:"deposit"`
}

// NewProposal creates an Active proposal with zeroed tallies.
func NewProposal(id uint64, proposer string, kind ProposalKind, description string, payload ProposalPayload, votingEnds uint64, deposit math.Int) Proposal {
	return Proposal{
		ID:           id,
		Proposer:     proposer,
		Kind:         kind,
		Description:  description,
		VotesFor:     math.ZeroInt(),
		VotesAgainst: math.ZeroInt(),
		VotingEnds:   votingEnds,
		Status:       ProposalStatusActive,
		Payload:      payload,
		Deposit:      deposit,
	}
}

// TotalVotes returns the combined weight of all cast votes.
func (p Proposal) TotalVotes() math.Int {
	return p.VotesFor.Add(p.VotesAgainst)
}

// Validate checks structural consistency of a stored proposal record.
func (p Proposal) Validate() error {
	if p.ID == 0 {
		return fmt.Errorf("proposal id must be positive")
	}
	if strings.TrimSpace(p.Proposer) == "" {
		return fmt.Errorf("proposer cannot be empty")
	}
	if p.VotesFor.IsNil() || p.VotesFor.IsNegative() {
		return fmt.Errorf("votes_for must be non-negative")
	}
	if p.VotesAgainst.IsNil() || p.VotesAgainst.IsNegative() {
		return fmt.Errorf("votes_against must be non-negative")
	}
	if p.Deposit.IsNil() || p.Deposit.IsNegative() {
		return fmt.Errorf("deposit must be non-negative")
	}
	if err := p.Payload.Validate(p.Kind); err != nil {
		return err
	}
	switch p.Status {
	case ProposalStatusActive, ProposalStatusExecuted, ProposalStatusFailed,
		ProposalStatusExecutionFailed, ProposalStatusCancelled:
	default:
		return fmt.Errorf("unknown proposal status %d", p.Status)
	}
	return nil
}
