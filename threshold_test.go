package quorum

import (
	"testing"

	"github.com/iov-one/quorum/keys"
	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestResolveThresholds(t *testing.T) {
	cases := map[string]struct {
		tx       Tx
		accounts func() []*Account
		want     Weights
	}{
		"zero thresholds still require one signature": {
			tx: &Transaction{Source: "alice"},
			accounts: func() []*Account {
				return []*Account{{ID: "alice"}}
			},
			want: Weights{"alice": 1},
		},
		"the envelope source clears its low threshold": {
			tx: &Transaction{Source: "alice"},
			accounts: func() []*Account {
				return []*Account{
					{ID: "alice", Thresholds: Thresholds{Low: 3, Medium: 5, High: 7}},
				}
			},
			want: Weights{"alice": 3},
		},
		"a medium operation raises the bar": {
			tx: &Transaction{
				Source: "alice",
				Operations: []Operation{
					&PaymentOp{Destination: "bob", Amount: 1},
				},
			},
			accounts: func() []*Account {
				return []*Account{
					{ID: "alice", Thresholds: Thresholds{Low: 1, Medium: 2, High: 3}},
				}
			},
			want: Weights{"alice": 2},
		},
		"low category operations": {
			tx: &Transaction{
				Source: "alice",
				Operations: []Operation{
					&AllowTrustOp{Trustor: "bob", Asset: "USD"},
					&BumpSequenceOp{BumpTo: 10},
					&InflationOp{},
				},
			},
			accounts: func() []*Account {
				return []*Account{
					{ID: "alice", Thresholds: Thresholds{Low: 2, Medium: 4, High: 6}},
				}
			},
			want: Weights{"alice": 2},
		},
		"set options touching policy is high category": {
			tx: &Transaction{
				Source: "alice",
				Operations: []Operation{
					&SetOptionsOp{MasterWeight: wp(0)},
				},
			},
			accounts: func() []*Account {
				return []*Account{
					{ID: "alice", Thresholds: Thresholds{Low: 1, Medium: 2, High: 3}},
				}
			},
			want: Weights{"alice": 3},
		},
		"set options touching nothing is medium category": {
			tx: &Transaction{
				Source: "alice",
				Operations: []Operation{
					&SetOptionsOp{},
				},
			},
			accounts: func() []*Account {
				return []*Account{
					{ID: "alice", Thresholds: Thresholds{Low: 1, Medium: 2, High: 3}},
				}
			},
			want: Weights{"alice": 2},
		},
		"an unrecognized operation type is medium category": {
			tx: &Transaction{
				Source:     "alice",
				Operations: []Operation{bogusOp{}},
			},
			accounts: func() []*Account {
				return []*Account{
					{ID: "alice", Thresholds: Thresholds{Low: 1, Medium: 2, High: 3}},
				}
			},
			want: Weights{"alice": 2},
		},
		"every referenced account is resolved": {
			tx: &Transaction{
				Source: "alice",
				Operations: []Operation{
					&PaymentOp{Source: "bob", Destination: "x", Amount: 1},
				},
			},
			accounts: func() []*Account {
				return []*Account{
					{ID: "alice", Thresholds: Thresholds{Low: 2}},
					{ID: "bob", Thresholds: Thresholds{Medium: 5}},
				}
			},
			want: Weights{"alice": 2, "bob": 5},
		},
		"a threshold raise compounds onto later operations": {
			tx: &Transaction{
				Source: "alice",
				Operations: []Operation{
					&PaymentOp{Destination: "x", Amount: 1},
					&SetOptionsOp{MediumThreshold: wp(5)},
					&PaymentOp{Destination: "x", Amount: 1},
				},
			},
			accounts: func() []*Account {
				return []*Account{
					{ID: "alice", Thresholds: Thresholds{Low: 1, Medium: 2, High: 3}},
				}
			},
			// payment 2, set options 3, final payment sees medium 5
			want: Weights{"alice": 5},
		},
		"a threshold drop lowers the bar only for later operations": {
			tx: &Transaction{
				Source: "alice",
				Operations: []Operation{
					&PaymentOp{Destination: "x", Amount: 1},
					&SetOptionsOp{MediumThreshold: wp(1), HighThreshold: wp(1)},
					&PaymentOp{Destination: "x", Amount: 1},
				},
			},
			accounts: func() []*Account {
				return []*Account{
					{ID: "alice", Thresholds: Thresholds{Low: 1, Medium: 4, High: 6}},
				}
			},
			// requirements only ever raise: payment 4, set options 6
			want: Weights{"alice": 6},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ResolveThresholds(tc.tx, tc.accounts())
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveThresholdsUnknownAccount(t *testing.T) {
	t.Run("unknown envelope source", func(t *testing.T) {
		tx := &Transaction{Source: "ghost"}
		_, err := ResolveThresholds(tx, []*Account{{ID: "alice"}})
		assert.IsErr(t, ErrUnknownAccount, err)
	})

	t.Run("unknown operation source", func(t *testing.T) {
		tx := &Transaction{
			Source: "alice",
			Operations: []Operation{
				&PaymentOp{Source: "ghost", Destination: "x", Amount: 1},
			},
		}
		_, err := ResolveThresholds(tx, []*Account{{ID: "alice"}})
		assert.IsErr(t, ErrUnknownAccount, err)
	})
}

func TestResolveThresholdsMutatesSnapshots(t *testing.T) {
	acc := &Account{ID: "alice", Thresholds: Thresholds{Low: 1, Medium: 2, High: 3}}
	// A copy taken beforehand is the way to keep a pristine snapshot.
	pristine := acc.Copy()

	tx := &Transaction{
		Source: "alice",
		Operations: []Operation{
			&SetOptionsOp{MediumThreshold: wp(9)},
		},
	}

	_, err := ResolveThresholds(tx, []*Account{acc})
	assert.Nil(t, err)
	assert.Equal(t, Weight(9), acc.Thresholds.Medium)
	assert.Equal(t, Weight(2), pristine.Thresholds.Medium)
}

func TestRejectionThresholds(t *testing.T) {
	pub1, _ := keypair(t, 1)
	pub2, _ := keypair(t, 2)
	pub3, _ := keypair(t, 3)

	accounts := []*Account{
		{
			ID: "alice",
			Signers: []Signer{
				{Key: pub1, Weight: 1, Kind: keys.Ed25519},
				{Key: pub2, Weight: 1, Kind: keys.Ed25519},
				{Key: pub3, Weight: 1, Kind: keys.Ed25519},
			},
		},
		{
			ID: "bob",
			Signers: []Signer{
				{Key: pub1, Weight: 10, Kind: keys.Ed25519},
			},
		},
	}

	got, err := RejectionThresholds(accounts, Weights{"alice": 2, "bob": 4})
	assert.Nil(t, err)
	assert.Equal(t, Weights{"alice": 1, "bob": 6}, got)

	_, err = RejectionThresholds(accounts, Weights{"ghost": 1})
	assert.IsErr(t, ErrUnknownAccount, err)
}

func TestHasEnoughApprovals(t *testing.T) {
	cases := map[string]struct {
		weights    Weights
		thresholds Weights
		want       bool
	}{
		"no thresholds to clear": {
			weights:    Weights{},
			thresholds: Weights{},
			want:       true,
		},
		"exactly met": {
			weights:    Weights{"a": 2},
			thresholds: Weights{"a": 2},
			want:       true,
		},
		"above the bar": {
			weights:    Weights{"a": 5},
			thresholds: Weights{"a": 2},
			want:       true,
		},
		"below the bar": {
			weights:    Weights{"a": 1},
			thresholds: Weights{"a": 2},
			want:       false,
		},
		"missing accounts count as zero": {
			weights:    Weights{},
			thresholds: Weights{"a": 1},
			want:       false,
		},
		"every account must clear": {
			weights:    Weights{"a": 2, "b": 1},
			thresholds: Weights{"a": 2, "b": 2},
			want:       false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, HasEnoughApprovals(tc.weights, tc.thresholds))
		})
	}
}

func TestHasEnoughRejections(t *testing.T) {
	cases := map[string]struct {
		weights    Weights
		rejections Weights
		want       bool
	}{
		"equality is not enough": {
			weights:    Weights{"a": 1},
			rejections: Weights{"a": 1},
			want:       false,
		},
		"strictly above": {
			weights:    Weights{"a": 2},
			rejections: Weights{"a": 1},
			want:       true,
		},
		"every account must exceed": {
			weights:    Weights{"a": 2, "b": 1},
			rejections: Weights{"a": 1, "b": 1},
			want:       false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, HasEnoughRejections(tc.weights, tc.rejections))
		})
	}
}
