package types

import (
	"encoding/binary"
)

var (
	// ModuleNamespace is the namespace byte for the oraclegov module (0x05)
	// All store keys are prefixed with this byte to prevent collisions with other modules
	ModuleNamespace = byte(0x05)

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x05, 0x01}

	// AdminKey is the key for the governance admin address (set once at initialization)
	AdminKey = []byte{0x05, 0x02}

	// ProposalCounterKey is the key for the monotonic proposal ID counter
	ProposalCounterKey = []byte{0x05, 0x03}

	// ProposalKeyPrefix is the prefix for proposal storage (key: proposal ID)
	ProposalKeyPrefix = []byte{0x05, 0x04}

	// BallotKeyPrefix is the prefix for per-(proposal, voter) ballot markers
	BallotKeyPrefix = []byte{0x05, 0x05}

	// StakeKeyPrefix is the prefix for per-address stake balances
	StakeKeyPrefix = []byte{0x05, 0x06}

	// TotalStakedKey is the key for the running total of staked tokens
	TotalStakedKey = []byte{0x05, 0x07}

	// BurnedDepositsKey is the key for the cumulative total of burned proposal deposits
	BurnedDepositsKey = []byte{0x05, 0x08}
)

// GetProposalKey returns the store key for a proposal by ID
func GetProposalKey(proposalID uint64) []byte {
	idBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(idBytes, proposalID)
	return append(ProposalKeyPrefix, idBytes...)
}

// GetBallotKey returns the store key for a (proposal, voter) ballot marker
func GetBallotKey(proposalID uint64, voter string) []byte {
	idBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(idBytes, proposalID)
	key := append(BallotKeyPrefix, idBytes...)
	return append(key, []byte(voter)...)
}

// GetStakeKey returns the store key for an address's stake balance
func GetStakeKey(staker string) []byte {
	return append(StakeKeyPrefix, []byte(staker)...)
}
