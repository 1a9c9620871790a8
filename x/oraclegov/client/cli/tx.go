package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/swipe-chain/swipe/x/oraclegov/types"
)

// GetTxCmd returns the transaction commands for the oraclegov module
func GetTxCmd() *cobra.Command {
	govTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Oracle governance transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	govTxCmd.AddCommand(
		CmdInitialize(),
		CmdDepositStake(),
		CmdWithdrawStake(),
		CmdCreateProposal(),
		CmdVote(),
		CmdFinalizeProposal(),
		CmdRetryExecution(),
		CmdCancelProposal(),
	)

	return govTxCmd
}

// CmdInitialize returns a CLI command handler for installing the governance admin
func CmdInitialize() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initialize [admin]",
		Short: "Install the governance admin (one time only)",
		Long: `Install the governance admin address. This can be done exactly once;
the admin can never be replaced afterwards.

Example:
  $ swiped tx oraclegov initialize swipe1admin... --from admin-key`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgInitialize(args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDepositStake returns a CLI command handler for depositing stake
func CmdDepositStake() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit-stake [amount]",
		Short: "Deposit stake that confers voting weight",
		Long: `Deposit stake into the governance ledger. Staked balance is the
voting weight applied when casting ballots.

Example:
  $ swiped tx oraclegov deposit-stake 10000000 --from my-key`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount %s", args[0])
			}

			msg := types.NewMsgDepositStake(clientCtx.GetFromAddress().String(), amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawStake returns a CLI command handler for withdrawing stake
func CmdWithdrawStake() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-stake [amount]",
		Short: "Withdraw previously deposited stake",
		Long: `Withdraw stake from the governance ledger. Stake locked as a proposal
deposit cannot be withdrawn until the proposal settles.

Example:
  $ swiped tx oraclegov withdraw-stake 5000000 --from my-key`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount %s", args[0])
			}

			msg := types.NewMsgWithdrawStake(clientCtx.GetFromAddress().String(), amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateProposal returns a CLI command handler for creating a proposal
func CmdCreateProposal() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-proposal [kind]",
		Short: "Create a governance proposal",
		Long: `Create a governance proposal. The kind is one of add_oracle,
remove_oracle, update_parameter or emergency_pause; the payload flags required
depend on the kind. Creating a proposal locks the configured deposit from your
staked balance.

Examples:
  $ swiped tx oraclegov create-proposal add_oracle \
      --oracle swipe1newsource... \
      --description "add backup price source" --from my-key

  $ swiped tx oraclegov create-proposal update_parameter \
      --param-key 1 --param-value 600 \
      --description "raise price TTL to 10 minutes" --from my-key`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			kind, err := types.ProposalKindFromString(args[0])
			if err != nil {
				return err
			}

			description, err := cmd.Flags().GetString(FlagDescription)
			if err != nil {
				return err
			}

			var payload types.ProposalPayload
			switch kind {
			case types.ProposalKindAddOracle, types.ProposalKindRemoveOracle:
				payload.OracleAddress, err = cmd.Flags().GetString(FlagOracle)
				if err != nil {
					return err
				}
			case types.ProposalKindUpdateParameter:
				key, err := cmd.Flags().GetUint32(FlagParamKey)
				if err != nil {
					return err
				}
				valueStr, err := cmd.Flags().GetString(FlagParamValue)
				if err != nil {
					return err
				}
				value, ok := math.NewIntFromString(valueStr)
				if !ok {
					return fmt.Errorf("invalid parameter value %s", valueStr)
				}
				payload.ParamKey = uint64(key)
				payload.ParamValue = value
			}

			msg := types.NewMsgCreateProposal(clientCtx.GetFromAddress().String(), kind, description, payload)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagDescription, "", "Human-readable rationale for the proposal")
	cmd.Flags().String(FlagOracle, "", "Oracle source address (add_oracle / remove_oracle)")
	cmd.Flags().Uint32(FlagParamKey, 0, "Parameter key (update_parameter): 0=min_oracles 1=price_ttl 2=max_deviation_bps")
	cmd.Flags().String(FlagParamValue, "0", "Parameter value (update_parameter)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdVote returns a CLI command handler for casting a ballot
func CmdVote() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote [proposal-id] [yes|no]",
		Short: "Cast a stake-weighted ballot on a proposal",
		Long: `Vote on an active proposal. Voting weight equals your staked balance
at the time of the vote. A proposal that reaches quorum and its approval
threshold executes immediately.

Example:
  $ swiped tx oraclegov vote 3 yes --from my-key`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			proposalID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid proposal id %s: %w", args[0], err)
			}

			var support bool
			switch args[1] {
			case "yes":
				support = true
			case "no":
				support = false
			default:
				return fmt.Errorf("vote must be yes or no, got %s", args[1])
			}

			msg := types.NewMsgVote(proposalID, clientCtx.GetFromAddress().String(), support)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdFinalizeProposal returns a CLI command handler for finalizing an expired proposal
func CmdFinalizeProposal() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finalize [proposal-id]",
		Short: "Finalize a proposal whose voting window has closed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			proposalID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid proposal id %s: %w", args[0], err)
			}

			msg := types.NewMsgFinalizeProposal(clientCtx.GetFromAddress().String(), proposalID)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRetryExecution returns a CLI command handler for retrying a failed execution
func CmdRetryExecution() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retry [proposal-id]",
		Short: "Retry execution of an approved proposal whose dispatch failed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			proposalID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid proposal id %s: %w", args[0], err)
			}

			msg := types.NewMsgRetryExecution(clientCtx.GetFromAddress().String(), proposalID)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelProposal returns a CLI command handler for cancelling a proposal
func CmdCancelProposal() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel [proposal-id]",
		Short: "Cancel an active proposal (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			proposalID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid proposal id %s: %w", args[0], err)
			}

			msg := types.NewMsgCancelProposal(clientCtx.GetFromAddress().String(), proposalID)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
