package keys

import (
	"crypto/sha256"

	"github.com/iov-one/quorum/errors"
	"github.com/stellar/go/strkey"
	"golang.org/x/crypto/ed25519"
)

// Verify reports whether sig is a valid ed25519 signature of message by the
// given signer key. It is false for any key that is not an Ed25519 key.
func Verify(key string, message, sig []byte) bool {
	pub, err := DecodeKind(Ed25519, key)
	if err != nil {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), message, sig)
}

// PreimageKey builds the preimage signer key unlocked by the given secret:
// the key payload is the sha256 hash of the preimage.
func PreimageKey(preimage []byte) string {
	hash := sha256.Sum256(preimage)
	return strkey.MustEncode(strkey.VersionByteHashX, hash[:])
}

// PreAuthTxKey encodes a transaction hash as a pre-authorized transaction
// signer key.
func PreAuthTxKey(txhash []byte) (string, error) {
	return Encode(PreAuthTx, txhash)
}

// Generate creates a new random keypair. The public part is returned as an
// encoded Ed25519 signer key.
func Generate() (string, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return "", nil, errors.Wrap(err, "generate ed25519 key")
	}
	key, err := Encode(Ed25519, pub)
	if err != nil {
		return "", nil, err
	}
	return key, priv, nil
}

// FromSeed deterministically derives a keypair from a 32 byte seed. Use for
// strong external randomness or deterministic keys in tests.
func FromSeed(seed []byte) (string, ed25519.PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return "", nil, errors.Wrapf(errors.ErrInput, "seed is %d bytes, want %d", len(seed), ed25519.SeedSize)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	key, err := Encode(Ed25519, priv.Public().(ed25519.PublicKey))
	if err != nil {
		return "", nil, err
	}
	return key, priv, nil
}

// Sign signs the message with an ed25519 private key.
func Sign(priv ed25519.PrivateKey, message []byte) []byte {
	return ed25519.Sign(priv, message)
}

// EncodeSeed encodes an ed25519 seed in its textual form. Seed encoding is
// disjoint from every signer key kind.
func EncodeSeed(seed []byte) (string, error) {
	if len(seed) != ed25519.SeedSize {
		return "", errors.Wrapf(errors.ErrInput, "seed is %d bytes, want %d", len(seed), ed25519.SeedSize)
	}
	return strkey.MustEncode(strkey.VersionByteSeed, seed), nil
}

// DecodeSeed decodes a textual ed25519 seed.
func DecodeSeed(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.Wrap(ErrMalformedKey, "empty seed")
	}
	seed, err := strkey.Decode(strkey.VersionByteSeed, s)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedKey, err.Error())
	}
	if len(seed) != ed25519.SeedSize {
		return nil, errors.Wrapf(ErrMalformedKey, "seed is %d bytes, want %d", len(seed), ed25519.SeedSize)
	}
	return seed, nil
}
