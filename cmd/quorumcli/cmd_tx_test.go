package main

import (
	"bytes"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/keys"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestCmdNewTxHappyPath(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-source", "alice",
		"-sequence", "42",
		"-memo", "a memo",
		"-network", quorumtest.NetworkID,
	}
	if err := cmdNewTx(nil, &output, args); err != nil {
		t.Fatalf("cannot create a new transaction: %s", err)
	}

	req, err := readRequest(&output)
	if err != nil {
		t.Fatalf("cannot read created request: %s", err)
	}
	assert.Equal(t, quorumtest.NetworkID, req.NetworkID)
	assert.Equal(t, "alice", req.Tx.Source)
	assert.Equal(t, uint64(42), req.Tx.SequenceID)
	assert.Equal(t, "a memo", req.Tx.Memo)
	assert.Equal(t, 0, len(req.Tx.Operations))
}

func TestCmdNewTxRequiresSource(t *testing.T) {
	var output bytes.Buffer
	if err := cmdNewTx(nil, &output, nil); err == nil {
		t.Fatal("a transaction without a source must be refused")
	}
}

func TestCmdWithPaymentHappyPath(t *testing.T) {
	var pipe bytes.Buffer
	args := []string{"-source", "alice", "-network", quorumtest.NetworkID}
	if err := cmdNewTx(nil, &pipe, args); err != nil {
		t.Fatalf("cannot create a new transaction: %s", err)
	}

	var output bytes.Buffer
	args = []string{"-dst", "bob", "-amount", "5"}
	if err := cmdWithPayment(&pipe, &output, args); err != nil {
		t.Fatalf("cannot attach payment: %s", err)
	}

	req, err := readRequest(&output)
	if err != nil {
		t.Fatalf("cannot read created request: %s", err)
	}
	if n := len(req.Tx.Operations); n != 1 {
		t.Fatalf("want one operation, got %d", n)
	}
	op := req.Tx.Operations[0].(*quorum.PaymentOp)
	assert.Equal(t, "bob", op.Destination)
	assert.Equal(t, int64(5), op.Amount)
	assert.Equal(t, "", op.Source)
}

func TestCmdWithSetOptionsPartialFields(t *testing.T) {
	pub, _ := quorumtest.Keypair(1)

	var pipe bytes.Buffer
	args := []string{"-source", "alice", "-network", quorumtest.NetworkID}
	if err := cmdNewTx(nil, &pipe, args); err != nil {
		t.Fatalf("cannot create a new transaction: %s", err)
	}

	var output bytes.Buffer
	args = []string{
		"-medium", "3",
		"-signer", pub,
		"-signer-weight", "2",
	}
	if err := cmdWithSetOptions(&pipe, &output, args); err != nil {
		t.Fatalf("cannot attach set options: %s", err)
	}

	req, err := readRequest(&output)
	if err != nil {
		t.Fatalf("cannot read created request: %s", err)
	}
	op := req.Tx.Operations[0].(*quorum.SetOptionsOp)
	assert.Nil(t, op.MasterWeight)
	assert.Nil(t, op.LowThreshold)
	assert.Nil(t, op.HighThreshold)
	assert.Nil(t, op.HomeDomain)
	assert.Equal(t, quorumtest.WeightPtr(3), op.MediumThreshold)
	assert.Equal(t, &quorum.Signer{Key: pub, Weight: 2, Kind: keys.Ed25519}, op.Signer)
}

func TestCmdWithSetOptionsRejectsBogusSigner(t *testing.T) {
	var pipe bytes.Buffer
	args := []string{"-source", "alice", "-network", quorumtest.NetworkID}
	if err := cmdNewTx(nil, &pipe, args); err != nil {
		t.Fatalf("cannot create a new transaction: %s", err)
	}

	var output bytes.Buffer
	err := cmdWithSetOptions(&pipe, &output, []string{"-signer", "bogus"})
	if err == nil {
		t.Fatal("a signer that is not a key must be refused")
	}
}
