package quorum

import (
	"crypto/sha256"
	"regexp"

	"github.com/iov-one/quorum/errors"
)

// signCodeV1 is the current way to prefix the bytes we use to build a
// transaction hash.
var signCodeV1 = []byte{0x51, 0x4d, 0, 1}

// IsValidNetworkID ensures the network identifier is printable ASCII of
// sane length. Network passphrases contain spaces and punctuation.
var IsValidNetworkID = regexp.MustCompile(`^[ -~]{6,64}$`).MatchString

/*
SignBytes combines all info on the actual tx before hashing

We use the following format:

	version | len(networkID) | networkID    | raw
	4bytes  | uint8          | ascii string | serialized transaction

The result is hashed with sha256 for a constant length output that can
double as the payload of a pre-authorized transaction key. The networkID
must satisfy IsValidNetworkID; TxHash enforces it.
*/
func SignBytes(raw []byte, networkID string) []byte {
	output := make([]byte, 0, len(signCodeV1)+1+len(networkID)+len(raw))
	output = append(output, signCodeV1...)
	output = append(output, uint8(len(networkID)))
	output = append(output, networkID...)
	output = append(output, raw...)

	hashed := sha256.Sum256(output)
	return hashed[:]
}

// TxHash computes the canonical transaction hash: the deterministic
// serialization of the transaction, domain separated by the network
// identifier. Signatures sign and verify this hash. A transaction hashed
// for one network never verifies on another.
func TxHash(tx Tx, networkID string) ([]byte, error) {
	if !IsValidNetworkID(networkID) {
		return nil, errors.Wrapf(errors.ErrInput, "network id: %q", networkID)
	}
	raw, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	return SignBytes(raw, networkID), nil
}
