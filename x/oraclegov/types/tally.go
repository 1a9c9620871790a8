package types

import (
	"cosmossdk.io/math"
)

// BpsDenominator is the basis-point scale (10000 = 100%).
const BpsDenominator = int64(10_000)

// QuorumReached reports whether the cast votes meet the quorum requirement.
//
// Quorum is met iff total_staked > 0 and
//
//	(votes_for + votes_against) * 10000 >= quorum_bps * total_staked
//
// All arithmetic is integer basis-point math; ties round toward rejection.
func QuorumReached(votesFor, votesAgainst, totalStaked math.Int, quorumBps int64) bool {
	if !totalStaked.IsPositive() {
		return false
	}
	totalVotes := votesFor.Add(votesAgainst)
	return totalVotes.MulRaw(BpsDenominator).GTE(totalStaked.MulRaw(quorumBps))
}

// Approved reports whether the cast votes meet the approval threshold.
//
// Approval is met iff votes were cast and
//
//	votes_for * 10000 >= threshold_bps * (votes_for + votes_against)
func Approved(votesFor, votesAgainst math.Int, thresholdBps int64) bool {
	totalVotes := votesFor.Add(votesAgainst)
	if !totalVotes.IsPositive() {
		return false
	}
	return votesFor.MulRaw(BpsDenominator).GTE(totalVotes.MulRaw(thresholdBps))
}

// Executable reports whether a proposal's current tallies clear both the
// quorum and the kind-specific approval threshold.
func Executable(p Proposal, totalStaked math.Int, params Params) bool {
	return QuorumReached(p.VotesFor, p.VotesAgainst, totalStaked, params.QuorumBps) &&
		Approved(p.VotesFor, p.VotesAgainst, params.ThresholdFor(p.Kind))
}
