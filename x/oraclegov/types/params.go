package types

import (
	"fmt"

	"cosmossdk.io/math"
	"gopkg.in/yaml.v2"
)

const (
	// DefaultVotingPeriodSeconds is the standard voting window (7 days).
	DefaultVotingPeriodSeconds = uint64(7 * 24 * 60 * 60)

	// DefaultEmergencyVotingPeriodSeconds is the shortened window for
	// emergency-pause proposals (1 day).
	DefaultEmergencyVotingPeriodSeconds = uint64(24 * 60 * 60)

	// DefaultQuorumBps is the minimum fraction of total staked tokens that must
	// vote, in basis points (10%).
	DefaultQuorumBps = int64(1_000)

	// DefaultApprovalThresholdBps is the standard approval threshold (66%).
	DefaultApprovalThresholdBps = int64(6_600)

	// DefaultEmergencyThresholdBps is the approval threshold for
	// emergency-pause proposals (80%).
	DefaultEmergencyThresholdBps = int64(8_000)

	// DefaultMinOracles is the minimum number of oracle sources that must
	// remain after a removal proposal executes.
	DefaultMinOracles = uint32(2)
)

// DefaultProposalDeposit is the stake locked when creating a proposal
// (1,000 tokens at 7 decimal places).
func DefaultProposalDeposit() math.Int {
	return math.NewInt(1_000 * 10_000_000)
}

// Params defines the governance parameters for the oraclegov module.
type Params struct {
	// VotingPeriodSeconds is the voting window for standard proposals
	VotingPeriodSeconds uint64 `json:"voting_period_seconds" yaml:"voting_period_seconds"`
	// EmergencyVotingPeriodSeconds is the voting window for emergency proposals
	EmergencyVotingPeriodSeconds uint64 `json:"emergency_voting_period_seconds" yaml:"emergency_voting_period_seconds"`
	// QuorumBps is the quorum requirement in basis points of total stake
	QuorumBps int64 `json:"quorum_bps" yaml:"quorum_bps"`
	// ApprovalThresholdBps is the standard approval threshold in basis points of cast votes
	ApprovalThresholdBps int64 `json:"approval_threshold_bps" yaml:"approval_threshold_bps"`
	// EmergencyThresholdBps is the approval threshold for emergency proposals
	EmergencyThresholdBps int64 `json:"emergency_threshold_bps" yaml:"emergency_threshold_bps"`
	// ProposalDeposit is the stake locked at proposal creation
	ProposalDeposit math.Int `json:"proposal_deposit" yaml:"proposal_deposit"`
	// MinOracles is the floor on oracle membership enforced at removal execution
	MinOracles uint32 `json:"min_oracles" yaml:"min_oracles"`
}

// DefaultParams returns the default oraclegov parameters
func DefaultParams() Params {
	return Params{
		VotingPeriodSeconds:          DefaultVotingPeriodSeconds,
		EmergencyVotingPeriodSeconds: DefaultEmergencyVotingPeriodSeconds,
		QuorumBps:                    DefaultQuorumBps,
		ApprovalThresholdBps:         DefaultApprovalThresholdBps,
		EmergencyThresholdBps:        DefaultEmergencyThresholdBps,
		ProposalDeposit:              DefaultProposalDeposit(),
		MinOracles:                   DefaultMinOracles,
	}
}

// Validate ensures all parameter values are within acceptable bounds
func (p Params) Validate() error {
	if p.VotingPeriodSeconds == 0 {
		return fmt.Errorf("voting period must be positive")
	}
	if p.EmergencyVotingPeriodSeconds == 0 {
		return fmt.Errorf("emergency voting period must be positive")
	}
	if p.EmergencyVotingPeriodSeconds > p.VotingPeriodSeconds {
		return fmt.Errorf("emergency voting period cannot exceed the standard voting period")
	}
	if p.QuorumBps <= 0 || p.QuorumBps > BpsDenominator {
		return fmt.Errorf("quorum bps must be in (0, %d], got %d", BpsDenominator, p.QuorumBps)
	}
	if p.ApprovalThresholdBps <= 0 || p.ApprovalThresholdBps > BpsDenominator {
		return fmt.Errorf("approval threshold bps must be in (0, %d], got %d", BpsDenominator, p.ApprovalThresholdBps)
	}
	if p.EmergencyThresholdBps < p.ApprovalThresholdBps || p.EmergencyThresholdBps > BpsDenominator {
		return fmt.Errorf("emergency threshold bps must be in [%d, %d], got %d",
			p.ApprovalThresholdBps, BpsDenominator, p.EmergencyThresholdBps)
	}
	if p.ProposalDeposit.IsNil() || !p.ProposalDeposit.IsPositive() {
		return fmt.Errorf("proposal deposit must be positive")
	}
	if p.MinOracles == 0 {
		return fmt.Errorf("minimum oracle count must be positive")
	}
	return nil
}

// String implements the Stringer interface
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

// VotingPeriodFor returns the voting window length in seconds for a proposal kind.
func (p Params) VotingPeriodFor(kind ProposalKind) uint64 {
	if kind == ProposalKindEmergencyPause {
		return p.EmergencyVotingPeriodSeconds
	}
	return p.VotingPeriodSeconds
}

// ThresholdFor returns the approval threshold in basis points for a proposal kind.
func (p Params) ThresholdFor(kind ProposalKind) int64 {
	if kind == ProposalKindEmergencyPause {
		return p.EmergencyThresholdBps
	}
	return p.ApprovalThresholdBps
}
