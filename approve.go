package quorum

import (
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/keys"
)

// IsApproved decides whether the attached signatures, together with the
// pre-authorized keys, clear every threshold the transaction requires.
//
// The evaluation is one synchronous pass: hash the transaction, catalog the
// signers, resolve the thresholds, credit pre-authorized keys, then match
// the attached signatures first against preimage signers and then against
// ed25519 signers. Matching stops as soon as every threshold is met.
//
// Every attached signature must be consumed by a match and no signer key
// may be spent twice; any leftover signature fails the call with
// ErrTooManySignatures, even when the thresholds were already met. The
// verdict is then true iff every account collected its required weight.
//
// Account snapshots are mutated during threshold resolution; reuse them
// across evaluations only through Account.Copy.
func IsApproved(tx Tx, networkID string, accounts []*Account, sigs []Signature, preauth []string) (bool, error) {
	txhash, err := TxHash(tx, networkID)
	if err != nil {
		return false, err
	}

	preimageReg, err := BuildRegistry(tx, accounts, keys.Preimage)
	if err != nil {
		return false, errors.Wrap(err, "preimage registry")
	}
	edReg, err := BuildRegistry(tx, accounts, keys.Ed25519)
	if err != nil {
		return false, errors.Wrap(err, "ed25519 registry")
	}

	thresholds, err := ResolveThresholds(tx, accounts)
	if err != nil {
		return false, err
	}

	var (
		collected = make(Weights)
		consumed  = make(map[string]struct{})
		done      bool
	)

	// Pre-authorized keys are trusted as verified by the caller. They
	// credit weight without an attached signature, each at most once.
	for _, key := range preauth {
		if done {
			break
		}
		if _, ok := consumed[key]; ok {
			continue
		}
		consumed[key] = struct{}{}
		for id, w := range edReg.WeightsOf(key) {
			collected[id] += w
		}
		done = HasEnoughApprovals(collected, thresholds)
	}

	used := make(map[int]struct{}, len(sigs))

	credit := func(reg *SignerRegistry) {
		if reg.IsEmpty() {
			return
		}
		for i, sig := range sigs {
			if done {
				return
			}
			if _, ok := used[i]; ok {
				continue
			}
			key, ok := MatchSignature(txhash, reg, sig)
			if !ok {
				continue
			}
			if _, ok := consumed[key]; ok {
				// A duplicate signature stays unconsumed and
				// surfaces below.
				continue
			}
			consumed[key] = struct{}{}
			used[i] = struct{}{}
			for id, w := range reg.WeightsOf(key) {
				collected[id] += w
			}
			done = HasEnoughApprovals(collected, thresholds)
		}
	}

	if !done {
		credit(preimageReg)
	}
	if !done {
		credit(edReg)
	}

	// Every attached signature must be attributable to a known signer.
	if len(used) != len(sigs) {
		return false, errors.Wrapf(ErrTooManySignatures,
			"%d of %d signatures consumed", len(used), len(sigs))
	}

	return HasEnoughApprovals(collected, thresholds), nil
}
