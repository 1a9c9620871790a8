package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// StakeEntry is one address's staked balance in genesis state.
type StakeEntry struct {
	// Address is the staker address
	Address string `json:"address"`
	// Amount is the staked balance
	Amount math.Int `json:"amount"`
}

// BallotEntry records that a voter has cast a ballot on a proposal.
type BallotEntry struct {
	// ProposalId identifies the proposal
	ProposalId uint64 `json:"proposal_id"`
	// Voter is the address that voted
	Voter string `json:"voter"`
}

// GenesisState defines the oraclegov module's genesis state.
type GenesisState struct {
	// Params are the governance parameters
	Params Params `json:"params"`
	// Admin is the governance admin address (empty if not yet initialized)
	Admin string `json:"admin,omitempty"`
	// ProposalCounter is the last assigned proposal ID
	ProposalCounter uint64 `json:"proposal_counter"`
	// Proposals are all stored proposals
	Proposals []Proposal `json:"proposals"`
	// Ballots are all recorded (proposal, voter) markers
	Ballots []BallotEntry `json:"ballots"`
	// Stakes are all staked balances
	Stakes []StakeEntry `json:"stakes"`
	// BurnedDeposits is the cumulative total of burned proposal deposits
	BurnedDeposits math.Int `json:"burned_deposits"`
}

// DefaultGenesis returns the default genesis state for the oraclegov module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:          DefaultParams(),
		ProposalCounter: 0,
		Proposals:       []Proposal{},
		Ballots:         []BallotEntry{},
		Stakes:          []StakeEntry{},
		BurnedDeposits:  math.ZeroInt(),
	}
}

// Validate ensures the genesis state is well-formed: params in bounds, no
// duplicate proposals or ballots, non-negative balances, and proposal IDs not
// exceeding the counter.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seenProposals := make(map[uint64]bool, len(gs.Proposals))
	for _, p := range gs.Proposals {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid proposal %d: %w", p.ID, err)
		}
		if p.ID > gs.ProposalCounter {
			return fmt.Errorf("proposal %d exceeds proposal counter %d", p.ID, gs.ProposalCounter)
		}
		if seenProposals[p.ID] {
			return fmt.Errorf("duplicate proposal id %d", p.ID)
		}
		seenProposals[p.ID] = true
	}

	seenBallots := make(map[string]bool, len(gs.Ballots))
	for _, b := range gs.Ballots {
		if !seenProposals[b.ProposalId] {
			return fmt.Errorf("ballot references unknown proposal %d", b.ProposalId)
		}
		if b.Voter == "" {
			return fmt.Errorf("ballot voter cannot be empty")
		}
		key := fmt.Sprintf("%d/%s", b.ProposalId, b.Voter)
		if seenBallots[key] {
			return fmt.Errorf("duplicate ballot for proposal %d voter %s", b.ProposalId, b.Voter)
		}
		seenBallots[key] = true
	}

	seenStakers := make(map[string]bool, len(gs.Stakes))
	for _, s := range gs.Stakes {
		if s.Address == "" {
			return fmt.Errorf("stake address cannot be empty")
		}
		if s.Amount.IsNil() || s.Amount.IsNegative() {
			return fmt.Errorf("stake amount for %s must be non-negative", s.Address)
		}
		if seenStakers[s.Address] {
			return fmt.Errorf("duplicate stake entry for %s", s.Address)
		}
		seenStakers[s.Address] = true
	}

	if gs.BurnedDeposits.IsNil() || gs.BurnedDeposits.IsNegative() {
		return fmt.Errorf("burned deposits must be non-negative")
	}

	return nil
}
