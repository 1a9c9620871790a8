package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

// EndBlocker is called at the end of every block
// It sweeps active proposals whose voting window has closed, settling them
// through the same paths as an explicit finalize call
func (k Keeper) EndBlocker(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := blockNow(ctx)

	var expired []uint64
	k.IterateProposals(ctx, func(p types.Proposal) bool {
		if p.Status == types.ProposalStatusActive && now >= p.VotingEnds {
			expired = append(expired, p.ID)
		}
		return false
	})

	for _, id := range expired {
		if _, err := k.FinalizeProposal(ctx, id); err != nil {
			// Log and continue to prevent block production halt
			sdkCtx.Logger().Error("failed to finalize expired proposal",
				"proposal_id", id, "error", err)
			continue
		}
		GetGovMetrics().ExpiredSwept.Inc()
	}

	return nil
}
