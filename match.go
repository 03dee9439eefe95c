package quorum

import (
	"github.com/iov-one/quorum/keys"
)

// MatchSignature finds the cataloged signer that produced the signature.
// Candidates sharing the signature's hint are confirmed cryptographically
// in registration order: an ed25519 key must verify the signature against
// the transaction hash, a preimage key must equal the re-encoded sha256
// hash of the signature payload. The first confirmed candidate wins; a
// hint collision is not an ambiguity failure.
func MatchSignature(txhash []byte, reg *SignerRegistry, sig Signature) (string, bool) {
	for _, key := range reg.Candidates(sig.Hint) {
		kind, err := keys.KindOf(key)
		if err != nil {
			// cataloged keys always decode
			continue
		}
		switch kind {
		case keys.Ed25519:
			if keys.Verify(key, txhash, sig.Sig) {
				return key, true
			}
		case keys.Preimage:
			if keys.PreimageKey(sig.Sig) == key {
				return key, true
			}
		}
	}
	return "", false
}
