package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the necessary x/oraclegov concrete types
// on the provided LegacyAmino codec. These types are used for Amino JSON
// serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitialize{}, "swipe/oraclegov/MsgInitialize", nil)
	cdc.RegisterConcrete(&MsgDepositStake{}, "swipe/oraclegov/MsgDepositStake", nil)
	cdc.RegisterConcrete(&MsgWithdrawStake{}, "swipe/oraclegov/MsgWithdrawStake", nil)
	cdc.RegisterConcrete(&MsgCreateProposal{}, "swipe/oraclegov/MsgCreateProposal", nil)
	cdc.RegisterConcrete(&MsgVote{}, "swipe/oraclegov/MsgVote", nil)
	cdc.RegisterConcrete(&MsgFinalizeProposal{}, "swipe/oraclegov/MsgFinalizeProposal", nil)
	cdc.RegisterConcrete(&MsgRetryExecution{}, "swipe/oraclegov/MsgRetryExecution", nil)
	cdc.RegisterConcrete(&MsgCancelProposal{}, "swipe/oraclegov/MsgCancelProposal", nil)
}

// RegisterInterfaces registers the x/oraclegov message types with the
// interface registry
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitialize{},
		&MsgDepositStake{},
		&MsgWithdrawStake{},
		&MsgCreateProposal{},
		&MsgVote{},
		&MsgFinalizeProposal{},
		&MsgRetryExecution{},
		&MsgCancelProposal{},
	)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
