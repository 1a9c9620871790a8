package keeper

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

// Proposal lifecycle controller. Each exported method is one atomic unit of
// work: all guards run before the first write, and execution (when triggered)
// completes within the same call.

// blockNow returns the block timestamp as unix seconds. Time only advances
// between calls; within one call every read observes the same instant.
func blockNow(ctx context.Context) uint64 {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	t := sdkCtx.BlockTime().Unix()
	if t < 0 {
		return 0
	}
	return uint64(t)
}

// CreateProposal opens a new proposal. The proposer must hold at least the
// configured proposal deposit in stake; the deposit is locked by reducing
// their stake balance. The total staked is left unchanged, locked deposits
// still count toward quorum.
func (k Keeper) CreateProposal(ctx context.Context, proposer string, kind types.ProposalKind, description string, payload types.ProposalPayload) (uint64, error) {
	if proposer == "" {
		return 0, types.ErrUnauthorized.Wrap("proposer address cannot be empty")
	}
	if strings.TrimSpace(description) == "" {
		return 0, types.ErrInvalidPayload.Wrap("description cannot be empty")
	}
	if err := payload.Validate(kind); err != nil {
		return 0, types.ErrInvalidPayload.Wrap(err.Error())
	}

	params := k.GetParams(ctx)
	deposit := params.ProposalDeposit

	stake := k.GetStake(ctx, proposer)
	if stake.LT(deposit) {
		return 0, types.ErrInsufficientStake.Wrapf(
			"proposal deposit requires %s staked, have %s", deposit, stake)
	}

	// Lock the deposit by reducing available stake.
	k.setStake(ctx, proposer, stake.Sub(deposit))

	now := blockNow(ctx)
	id := k.nextProposalID(ctx)
	proposal := types.NewProposal(id, proposer, kind, description, payload, now+params.VotingPeriodFor(kind), deposit)

	if err := k.SetProposal(ctx, proposal); err != nil {
		return 0, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProposalCreated,
			sdk.NewAttribute(types.AttributeKeyProposalID, fmt.Sprintf("%d", id)),
			sdk.NewAttribute(types.AttributeKeyProposer, proposer),
			sdk.NewAttribute(types.AttributeKeyKind, kind.String()),
		),
	)
	GetGovMetrics().ProposalsCreated.WithLabelValues(kind.String()).Inc()

	k.Logger(ctx).Info("proposal created",
		"proposal_id", id, "kind", kind.String(), "voting_ends", proposal.VotingEnds)

	return id, nil
}

// VoteOnProposal casts a stake-weighted ballot. Voting weight equals the
// voter's stake balance at call time. If this vote pushes the proposal past
// quorum and the approval threshold, execution runs immediately within the
// same call; the returned status reflects any such transition.
//
// A vote arriving after the window closed finalizes the proposal as Failed
// (burning its deposit) and then rejects the vote, so repeated late votes are
// idempotent.
func (k Keeper) VoteOnProposal(ctx context.Context, proposalID uint64, voter string, support bool) (types.ProposalStatus, error) {
	if voter == "" {
		return 0, types.ErrUnauthorized.Wrap("voter address cannot be empty")
	}

	proposal, err := k.GetProposal(ctx, proposalID)
	if err != nil {
		return 0, err
	}

	if proposal.Status != types.ProposalStatusActive {
		return proposal.Status, types.ErrProposalNotActive.Wrapf(
			"proposal %d is %s", proposalID, proposal.Status)
	}

	if now := blockNow(ctx); now >= proposal.VotingEnds {
		// Lazy expiry: settle the proposal before rejecting the vote.
		if err := k.failExpiredProposal(ctx, &proposal); err != nil {
			return proposal.Status, err
		}
		return proposal.Status, types.ErrVotingWindowClosed.Wrapf(
			"proposal %d voting ended at %d", proposalID, proposal.VotingEnds)
	}

	if k.HasVoted(ctx, proposalID, voter) {
		return proposal.Status, types.ErrAlreadyVoted.Wrapf(
			"%s already voted on proposal %d", voter, proposalID)
	}

	weight := k.GetStake(ctx, voter)
	if !weight.IsPositive() {
		return proposal.Status, types.ErrNoVotingWeight.Wrapf("%s has no stake", voter)
	}

	if support {
		proposal.VotesFor = proposal.VotesFor.Add(weight)
	} else {
		proposal.VotesAgainst = proposal.VotesAgainst.Add(weight)
	}

	k.markVoted(ctx, proposalID, voter)
	if err := k.SetProposal(ctx, proposal); err != nil {
		return proposal.Status, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeVoteCast,
			sdk.NewAttribute(types.AttributeKeyProposalID, fmt.Sprintf("%d", proposalID)),
			sdk.NewAttribute(types.AttributeKeyVoter, voter),
			sdk.NewAttribute(types.AttributeKeySupport, fmt.Sprintf("%t", support)),
			sdk.NewAttribute(types.AttributeKeyWeight, weight.String()),
		),
	)
	GetGovMetrics().VotesCast.WithLabelValues(fmt.Sprintf("%t", support)).Inc()

	// Eager execution: as soon as quorum and approval both hold, apply the
	// proposal mid-window.
	params := k.GetParams(ctx)
	if types.Executable(proposal, k.GetTotalStaked(ctx), params) {
		if err := k.executeProposal(ctx, &proposal); err != nil {
			return proposal.Status, err
		}
	}

	return proposal.Status, nil
}

// FinalizeProposal sweeps a proposal whose voting window has closed. It is a
// no-op (returning the current status) for non-active proposals and for
// proposals still inside their window. Callable by anyone.
func (k Keeper) FinalizeProposal(ctx context.Context, proposalID uint64) (types.ProposalStatus, error) {
	proposal, err := k.GetProposal(ctx, proposalID)
	if err != nil {
		return 0, err
	}

	if proposal.Status != types.ProposalStatusActive {
		return proposal.Status, nil
	}
	if blockNow(ctx) < proposal.VotingEnds {
		return proposal.Status, nil
	}

	params := k.GetParams(ctx)
	if types.Executable(proposal, k.GetTotalStaked(ctx), params) {
		if err := k.executeProposal(ctx, &proposal); err != nil {
			return proposal.Status, err
		}
		return proposal.Status, nil
	}

	if err := k.failExpiredProposal(ctx, &proposal); err != nil {
		return proposal.Status, err
	}
	return proposal.Status, nil
}

// RetryExecution re-runs the dispatcher for a proposal in ExecutionFailed.
// No authorization beyond existence in that state: retry only re-applies an
// already-approved change, so permissionless nudging is safe.
func (k Keeper) RetryExecution(ctx context.Context, proposalID uint64) (types.ProposalStatus, error) {
	proposal, err := k.GetProposal(ctx, proposalID)
	if err != nil {
		return 0, err
	}

	if proposal.Status != types.ProposalStatusExecutionFailed {
		return proposal.Status, types.ErrNotRetryable.Wrapf(
			"proposal %d is %s", proposalID, proposal.Status)
	}

	if err := k.executeProposal(ctx, &proposal); err != nil {
		return proposal.Status, err
	}
	return proposal.Status, nil
}

// CancelProposal cancels an active proposal and returns the deposit to the
// proposer. Admin only; the vote tally is not examined.
func (k Keeper) CancelProposal(ctx context.Context, admin string, proposalID uint64) error {
	if err := k.requireAdmin(ctx, admin); err != nil {
		return err
	}

	proposal, err := k.GetProposal(ctx, proposalID)
	if err != nil {
		return err
	}

	if proposal.Status != types.ProposalStatusActive {
		return types.ErrProposalNotActive.Wrapf(
			"proposal %d is %s", proposalID, proposal.Status)
	}

	k.returnDeposit(ctx, &proposal)
	proposal.Status = types.ProposalStatusCancelled
	if err := k.SetProposal(ctx, proposal); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProposalCancelled,
			sdk.NewAttribute(types.AttributeKeyProposalID, fmt.Sprintf("%d", proposalID)),
		),
	)

	k.Logger(ctx).Info("proposal cancelled", "proposal_id", proposalID)
	return nil
}
