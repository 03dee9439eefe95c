package quorum

import (
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/keys"
	"golang.org/x/crypto/ed25519"
)

// Signature is a raw signature decorated with the hint of the signer key
// that produced it. For an ed25519 signer Sig holds the signature over the
// transaction hash; for a preimage signer Sig holds the preimage itself.
type Signature struct {
	Hint keys.Hint
	Sig  []byte
}

func (s Signature) Validate() error {
	if len(s.Sig) == 0 {
		return errors.Wrap(errors.ErrEmpty, "signature bytes")
	}
	return nil
}

// SignTx signs the network scoped hash of the transaction and returns the
// decorated signature.
func SignTx(tx Tx, networkID string, pub string, priv ed25519.PrivateKey) (Signature, error) {
	txhash, err := TxHash(tx, networkID)
	if err != nil {
		return Signature{}, err
	}
	hint, err := keys.HintOf(pub)
	if err != nil {
		return Signature{}, err
	}
	return Signature{Hint: hint, Sig: keys.Sign(priv, txhash)}, nil
}

// PreimageSignature decorates a preimage so that it matches the preimage
// signer key derived from it.
func PreimageSignature(preimage []byte) (Signature, error) {
	if len(preimage) == 0 {
		return Signature{}, errors.Wrap(errors.ErrEmpty, "preimage")
	}
	hint, err := keys.HintOf(keys.PreimageKey(preimage))
	if err != nil {
		return Signature{}, err
	}
	return Signature{Hint: hint, Sig: preimage}, nil
}
