package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

// applyProposal dispatches an approved proposal to the oracle keeper. A nil
// return means the target state change took effect; any error moves the
// proposal to ExecutionFailed with its deposit still locked.
func (k Keeper) applyProposal(ctx context.Context, proposal types.Proposal) error {
	switch proposal.Kind {
	case types.ProposalKindAddOracle:
		if k.oracleKeeper.HasSource(ctx, proposal.Payload.OracleAddress) {
			return types.ErrOracleExists.Wrapf("source %s already registered", proposal.Payload.OracleAddress)
		}
		return k.oracleKeeper.AddSource(ctx, proposal.Payload.OracleAddress)

	case types.ProposalKindRemoveOracle:
		if !k.oracleKeeper.HasSource(ctx, proposal.Payload.OracleAddress) {
			return types.ErrOracleNotFound.Wrapf("source %s not registered", proposal.Payload.OracleAddress)
		}
		count := k.oracleKeeper.SourceCount(ctx)
		params := k.GetParams(ctx)
		if count <= params.MinOracles {
			return types.ErrMinOracles.Wrapf(
				"removing %s would leave %d sources, minimum is %d",
				proposal.Payload.OracleAddress, count-1, params.MinOracles)
		}
		return k.oracleKeeper.RemoveSource(ctx, proposal.Payload.OracleAddress)

	case types.ProposalKindUpdateParameter:
		switch proposal.Payload.ParamKey {
		case types.ParamKeyMinOracles:
			return k.oracleKeeper.SetMinSources(ctx, uint32(proposal.Payload.ParamValue.Uint64()))
		case types.ParamKeyPriceTTL:
			return k.oracleKeeper.SetPriceTTL(ctx, proposal.Payload.ParamValue.Uint64())
		case types.ParamKeyMaxDeviationBps:
			return k.oracleKeeper.SetMaxDeviationBps(ctx, proposal.Payload.ParamValue.Int64())
		default:
			return types.ErrUnknownParameterKey.Wrapf("parameter key %d", proposal.Payload.ParamKey)
		}

	case types.ProposalKindEmergencyPause:
		return k.oracleKeeper.SetPaused(ctx, true)

	default:
		return types.ErrInvalidPayload.Wrapf("unknown proposal kind %d", proposal.Kind)
	}
}

// executeProposal runs the dispatcher for an approved proposal and settles
// the outcome. On success the proposal becomes Executed and the deposit is
// returned; on dispatch failure it becomes ExecutionFailed and the deposit
// stays locked so a later RetryExecution can still settle it.
func (k Keeper) executeProposal(ctx context.Context, proposal *types.Proposal) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := k.applyProposal(ctx, *proposal); err != nil {
		proposal.Status = types.ProposalStatusExecutionFailed
		if setErr := k.SetProposal(ctx, *proposal); setErr != nil {
			return setErr
		}

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeProposalFailed,
				sdk.NewAttribute(types.AttributeKeyProposalID, fmt.Sprintf("%d", proposal.ID)),
				sdk.NewAttribute(types.AttributeKeyReason, err.Error()),
			),
		)
		GetGovMetrics().ExecutionFailures.WithLabelValues(proposal.Kind.String()).Inc()

		k.Logger(ctx).Error("proposal execution failed",
			"proposal_id", proposal.ID, "kind", proposal.Kind.String(), "err", err)
		return nil
	}

	k.returnDeposit(ctx, proposal)
	proposal.Status = types.ProposalStatusExecuted
	if err := k.SetProposal(ctx, *proposal); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProposalExecuted,
			sdk.NewAttribute(types.AttributeKeyProposalID, fmt.Sprintf("%d", proposal.ID)),
			sdk.NewAttribute(types.AttributeKeyKind, proposal.Kind.String()),
		),
	)
	GetGovMetrics().ProposalsExecuted.WithLabelValues(proposal.Kind.String()).Inc()

	k.Logger(ctx).Info("proposal executed",
		"proposal_id", proposal.ID, "kind", proposal.Kind.String())
	return nil
}

// failExpiredProposal settles an active proposal whose window closed without
// reaching quorum and approval. The deposit is burned: it leaves the
// proposer's reach without being credited anywhere, and the burned total is
// tracked so stake accounting remains checkable.
func (k Keeper) failExpiredProposal(ctx context.Context, proposal *types.Proposal) error {
	k.burnDeposit(ctx, proposal)
	proposal.Status = types.ProposalStatusFailed
	if err := k.SetProposal(ctx, *proposal); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProposalFailed,
			sdk.NewAttribute(types.AttributeKeyProposalID, fmt.Sprintf("%d", proposal.ID)),
			sdk.NewAttribute(types.AttributeKeyReason, "voting window closed without approval"),
		),
	)
	GetGovMetrics().ProposalsFailed.WithLabelValues(proposal.Kind.String()).Inc()

	k.Logger(ctx).Info("proposal failed",
		"proposal_id", proposal.ID, "votes_for", proposal.VotesFor.String(),
		"votes_against", proposal.VotesAgainst.String())
	return nil
}

// returnDeposit credits a locked deposit back to the proposer's stake
// balance. Total staked is untouched: locked deposits never left it.
func (k Keeper) returnDeposit(ctx context.Context, proposal *types.Proposal) {
	balance := k.GetStake(ctx, proposal.Proposer)
	k.setStake(ctx, proposal.Proposer, balance.Add(proposal.Deposit))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDepositSettled,
			sdk.NewAttribute(types.AttributeKeyProposalID, fmt.Sprintf("%d", proposal.ID)),
			sdk.NewAttribute(types.AttributeKeyOutcome, types.AttributeOutcomeReturned),
			sdk.NewAttribute(types.AttributeKeyRecipient, proposal.Proposer),
			sdk.NewAttribute(types.AttributeKeyAmount, proposal.Deposit.String()),
		),
	)
	GetGovMetrics().DepositsSettled.WithLabelValues(types.AttributeOutcomeReturned).Inc()
}

// burnDeposit destroys a locked deposit. Nothing is credited back; the
// burned accumulator absorbs the amount so the stake invariant still holds.
func (k Keeper) burnDeposit(ctx context.Context, proposal *types.Proposal) {
	k.addBurnedDeposits(ctx, proposal.Deposit)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDepositSettled,
			sdk.NewAttribute(types.AttributeKeyProposalID, fmt.Sprintf("%d", proposal.ID)),
			sdk.NewAttribute(types.AttributeKeyOutcome, types.AttributeOutcomeBurned),
			sdk.NewAttribute(types.AttributeKeyAmount, proposal.Deposit.String()),
		),
	)
	GetGovMetrics().DepositsSettled.WithLabelValues(types.AttributeOutcomeBurned).Inc()
}
