package quorum

import (
	"bytes"
	"testing"

	"github.com/iov-one/quorum/keys"
	"golang.org/x/crypto/ed25519"
)

// testNetworkID scopes every transaction hash produced by the tests.
const testNetworkID = "Test SDF Network ; September 2015"

// keypair returns a deterministic ed25519 keypair. The same seed byte always
// produces the same pair.
func keypair(t testing.TB, seed byte) (string, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := keys.FromSeed(bytes.Repeat([]byte{seed}, 32))
	if err != nil {
		t.Fatalf("cannot derive keypair: %+v", err)
	}
	return pub, priv
}

func wp(w Weight) *Weight {
	return &w
}

// mustSign produces the decorated signature of the transaction hash.
func mustSign(t testing.TB, tx Tx, pub string, priv ed25519.PrivateKey) Signature {
	t.Helper()
	sig, err := SignTx(tx, testNetworkID, pub, priv)
	if err != nil {
		t.Fatalf("cannot sign transaction: %+v", err)
	}
	return sig
}
