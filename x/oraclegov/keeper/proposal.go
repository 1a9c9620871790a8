package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"

	storetypes "cosmossdk.io/store/types"

	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

// Proposal store plumbing. All writes are full-record overwrites, so every
// lifecycle transition re-saves the complete proposal.

// nextProposalID increments the proposal counter and returns the new value.
// IDs start at 1 and are never reissued, even for cancelled or failed
// proposals.
func (k Keeper) nextProposalID(ctx context.Context) uint64 {
	store := k.getStore(ctx)

	var last uint64
	if bz := store.Get(types.ProposalCounterKey); bz != nil {
		last = binary.BigEndian.Uint64(bz)
	}

	next := last + 1
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, next)
	store.Set(types.ProposalCounterKey, bz)

	return next
}

// ProposalCount returns the number of proposals created so far
func (k Keeper) ProposalCount(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.ProposalCounterKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// SetProposal stores a proposal record
func (k Keeper) SetProposal(ctx context.Context, proposal types.Proposal) error {
	bz, err := json.Marshal(proposal)
	if err != nil {
		return types.ErrInvalidPayload.Wrapf("failed to marshal proposal: %v", err)
	}
	k.getStore(ctx).Set(types.GetProposalKey(proposal.ID), bz)
	return nil
}

// GetProposal retrieves a proposal by ID
func (k Keeper) GetProposal(ctx context.Context, proposalID uint64) (types.Proposal, error) {
	bz := k.getStore(ctx).Get(types.GetProposalKey(proposalID))
	if bz == nil {
		return types.Proposal{}, types.ErrProposalNotFound.Wrapf("proposal %d", proposalID)
	}

	var proposal types.Proposal
	if err := json.Unmarshal(bz, &proposal); err != nil {
		return types.Proposal{}, types.ErrProposalNotFound.Wrapf("corrupt proposal %d: %v", proposalID, err)
	}
	return proposal, nil
}

// IterateProposals calls cb for every stored proposal in ascending ID order
// until cb returns true.
func (k Keeper) IterateProposals(ctx context.Context, cb func(types.Proposal) bool) {
	store := k.getStore(ctx)
	iter := storetypes.KVStorePrefixIterator(store, types.ProposalKeyPrefix)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		var proposal types.Proposal
		if err := json.Unmarshal(iter.Value(), &proposal); err != nil {
			continue
		}
		if cb(proposal) {
			break
		}
	}
}

// markVoted records that a voter has cast a ballot on a proposal. Markers are
// never removed.
func (k Keeper) markVoted(ctx context.Context, proposalID uint64, voter string) {
	k.getStore(ctx).Set(types.GetBallotKey(proposalID, voter), []byte{1})
}

// HasVoted reports whether an address has already voted on a proposal
func (k Keeper) HasVoted(ctx context.Context, proposalID uint64, voter string) bool {
	return k.getStore(ctx).Has(types.GetBallotKey(proposalID, voter))
}

// IterateBallots calls cb for every recorded (proposal, voter) marker until
// cb returns true.
func (k Keeper) IterateBallots(ctx context.Context, cb func(proposalID uint64, voter string) bool) {
	store := k.getStore(ctx)
	iter := storetypes.KVStorePrefixIterator(store, types.BallotKeyPrefix)
	defer iter.Close()

	prefixLen := len(types.BallotKeyPrefix)
	for ; iter.Valid(); iter.Next() {
		key := iter.Key()
		if len(key) < prefixLen+8 {
			continue
		}
		proposalID := binary.BigEndian.Uint64(key[prefixLen : prefixLen+8])
		voter := string(key[prefixLen+8:])
		if cb(proposalID, voter) {
			break
		}
	}
}
