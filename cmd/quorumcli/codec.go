package main

import (
	"github.com/iov-one/quorum"
	amino "github.com/tendermint/go-amino"
)

// cdc knows how to serialize a verification request. Operation is an
// interface, so every concrete operation must be registered under a stable
// name for the serialized form to name the type it carries.
var cdc = amino.NewCodec()

func init() {
	cdc.RegisterInterface((*quorum.Operation)(nil), nil)
	cdc.RegisterConcrete(&quorum.CreateAccountOp{}, "quorum/CreateAccountOp", nil)
	cdc.RegisterConcrete(&quorum.PaymentOp{}, "quorum/PaymentOp", nil)
	cdc.RegisterConcrete(&quorum.ManageDataOp{}, "quorum/ManageDataOp", nil)
	cdc.RegisterConcrete(&quorum.AllowTrustOp{}, "quorum/AllowTrustOp", nil)
	cdc.RegisterConcrete(&quorum.BumpSequenceOp{}, "quorum/BumpSequenceOp", nil)
	cdc.RegisterConcrete(&quorum.InflationOp{}, "quorum/InflationOp", nil)
	cdc.RegisterConcrete(&quorum.SetOptionsOp{}, "quorum/SetOptionsOp", nil)
}
