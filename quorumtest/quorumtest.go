// Package quorumtest provides deterministic fixtures for tests exercising
// the authorization engine.
package quorumtest

import (
	"bytes"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/keys"
	"github.com/stellar/go/network"
	"golang.org/x/crypto/ed25519"
)

// NetworkID is the network identifier used throughout tests.
const NetworkID = network.TestNetworkPassphrase

// Keypair returns a deterministic ed25519 keypair. The same seed byte always
// produces the same pair.
func Keypair(seed byte) (string, ed25519.PrivateKey) {
	pub, priv, err := keys.FromSeed(bytes.Repeat([]byte{seed}, 32))
	if err != nil {
		panic(err)
	}
	return pub, priv
}

// NewKeypair returns a random ed25519 keypair.
func NewKeypair() (string, ed25519.PrivateKey) {
	pub, priv, err := keys.Generate()
	if err != nil {
		panic(err)
	}
	return pub, priv
}

// WeightPtr is a helper to write setOptions literals.
func WeightPtr(w quorum.Weight) *quorum.Weight {
	return &w
}
