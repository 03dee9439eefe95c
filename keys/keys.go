package keys

import (
	"github.com/iov-one/quorum/errors"
	"github.com/stellar/go/strkey"
)

// Error codes
// keys reserves 1100 ~ 1109.

// ErrMalformedKey is returned when a key cannot be decoded or does not
// represent a signer key.
var ErrMalformedKey = errors.Register(1100, "malformed key")

// Kind tags the signer key variants. The value of each kind is the strkey
// version byte of its encoding, which makes the kinds disjoint by
// construction.
type Kind byte

const (
	// Ed25519 keys hold an ed25519 public key and match signatures via
	// asymmetric verification.
	Ed25519 Kind = Kind(strkey.VersionByteAccountID)

	// Preimage keys hold the sha256 hash of a secret. They match a
	// signature whose payload hashes to the key.
	Preimage Kind = Kind(strkey.VersionByteHashX)

	// PreAuthTx keys hold a transaction hash. They authorize that single
	// transaction without any attached signature and can never match one.
	PreAuthTx Kind = Kind(strkey.VersionByteHashTx)
)

func (k Kind) String() string {
	switch k {
	case Ed25519:
		return "ed25519"
	case Preimage:
		return "preimage"
	case PreAuthTx:
		return "preauth-tx"
	default:
		return "unknown"
	}
}

// Validate returns an error if this is not a known signer key kind.
func (k Kind) Validate() error {
	switch k {
	case Ed25519, Preimage, PreAuthTx:
		return nil
	default:
		return errors.Wrapf(errors.ErrInput, "unknown key kind %d", byte(k))
	}
}

// payloadSize is the decoded payload length shared by all signer key kinds:
// an ed25519 public key, a sha256 digest and a transaction hash are all 32
// bytes long.
const payloadSize = 32

// Decode classifies a signer key and returns its kind together with the
// decoded payload. Any input that does not parse to a known kind fails with
// ErrMalformedKey.
func Decode(key string) (Kind, []byte, error) {
	if key == "" {
		return 0, nil, errors.Wrap(ErrMalformedKey, "empty key")
	}
	version, err := strkey.Version(key)
	if err != nil {
		return 0, nil, errors.Wrap(ErrMalformedKey, err.Error())
	}
	kind := Kind(version)
	switch kind {
	case Ed25519, Preimage, PreAuthTx:
		// a signer key kind
	default:
		return 0, nil, errors.Wrapf(ErrMalformedKey, "version byte %d is not a signer key", version)
	}
	payload, err := strkey.Decode(version, key)
	if err != nil {
		return 0, nil, errors.Wrap(ErrMalformedKey, err.Error())
	}
	if len(payload) != payloadSize {
		return 0, nil, errors.Wrapf(ErrMalformedKey, "payload is %d bytes, want %d", len(payload), payloadSize)
	}
	return kind, payload, nil
}

// DecodeKind decodes a key that must be of the given kind.
func DecodeKind(kind Kind, key string) ([]byte, error) {
	if err := kind.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrHuman, err.Error())
	}
	if key == "" {
		return nil, errors.Wrap(ErrMalformedKey, "empty key")
	}
	payload, err := strkey.Decode(strkey.VersionByte(kind), key)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedKey, err.Error())
	}
	if len(payload) != payloadSize {
		return nil, errors.Wrapf(ErrMalformedKey, "payload is %d bytes, want %d", len(payload), payloadSize)
	}
	return payload, nil
}

// Encode builds the textual representation of a signer key from its kind and
// raw payload.
func Encode(kind Kind, payload []byte) (string, error) {
	if err := kind.Validate(); err != nil {
		return "", errors.Wrap(errors.ErrHuman, err.Error())
	}
	if len(payload) != payloadSize {
		return "", errors.Wrapf(errors.ErrInput, "payload is %d bytes, want %d", len(payload), payloadSize)
	}
	key, err := strkey.Encode(strkey.VersionByte(kind), payload)
	if err != nil {
		return "", errors.Wrap(errors.ErrInput, err.Error())
	}
	return key, nil
}

// KindOf classifies a signer key by its encoding.
func KindOf(key string) (Kind, error) {
	kind, _, err := Decode(key)
	return kind, err
}

// HintSize is the length of a signature hint in bytes.
const HintSize = 4

// Hint is a short, non-unique identifier of a signer key. It is the last
// four bytes of the decoded key payload and is carried by signatures to
// narrow the candidate signers before verification.
type Hint [HintSize]byte

// HintOf computes the hint of an encoded signer key.
func HintOf(key string) (Hint, error) {
	_, payload, err := Decode(key)
	if err != nil {
		return Hint{}, err
	}
	var h Hint
	copy(h[:], payload[payloadSize-HintSize:])
	return h, nil
}
