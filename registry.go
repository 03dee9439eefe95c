package quorum

import (
	"sort"

	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/keys"
)

// SignerRegistry is the catalog of the candidate signers of one key kind,
// indexed by signature hint. Candidate order is registration order, so
// matching is deterministic.
type SignerRegistry struct {
	hints   map[keys.Hint][]string
	weights map[string]Weights
}

// BuildRegistry catalogs every signer of the given kind declared by the
// supplied accounts. Pre-authorized transaction signers can never match an
// attached signature and are excluded outright; requesting a registry for
// them is a programmer error.
//
// For an Ed25519 registry the transaction itself is scanned as well: a
// setOptions operation installing a signer with non-zero weight and a kind
// other than PreAuthTx registers that signer for the operation's source
// account, as if it already were an account signer. A transaction can this
// way authorize itself partly through a signer it is installing.
func BuildRegistry(tx Tx, accounts []*Account, kind keys.Kind) (*SignerRegistry, error) {
	switch kind {
	case keys.Ed25519, keys.Preimage:
	case keys.PreAuthTx:
		return nil, errors.Wrap(errors.ErrHuman, "preauth tx signers cannot be cataloged")
	default:
		return nil, errors.Wrapf(errors.ErrHuman, "unknown signer kind %d", byte(kind))
	}

	reg := &SignerRegistry{
		hints:   make(map[keys.Hint][]string),
		weights: make(map[string]Weights),
	}

	for _, acc := range accounts {
		for _, signer := range acc.Signers {
			if signer.Kind != kind {
				continue
			}
			if err := reg.add(acc.ID, signer); err != nil {
				return nil, errors.Wrapf(err, "account %q", acc.ID)
			}
		}
	}

	if kind == keys.Ed25519 {
		for i, op := range tx.GetOperations() {
			set, ok := op.(*SetOptionsOp)
			if !ok || set.Signer == nil {
				continue
			}
			s := *set.Signer
			if s.Weight == 0 || s.Kind == keys.PreAuthTx {
				continue
			}
			if err := reg.add(opSource(tx, op), s); err != nil {
				return nil, errors.Wrapf(err, "operation %d", i)
			}
		}
	}

	return reg, nil
}

// add registers the signer's weight for the account. The hint entry is
// created on first sight of the key; registering the same key again only
// updates weights, so a later setOptions operation overwrites an earlier
// one.
func (r *SignerRegistry) add(accountID string, s Signer) error {
	if err := s.Weight.Validate(); err != nil {
		return errors.Wrapf(err, "signer %q", s.Key)
	}
	hint, err := keys.HintOf(s.Key)
	if err != nil {
		return err
	}
	if _, ok := r.weights[s.Key]; !ok {
		r.hints[hint] = append(r.hints[hint], s.Key)
		r.weights[s.Key] = make(Weights)
	}
	r.weights[s.Key][accountID] = s.Weight
	return nil
}

// Candidates returns the keys that could have produced a signature carrying
// the given hint, in registration order.
func (r *SignerRegistry) Candidates(hint keys.Hint) []string {
	return r.hints[hint]
}

// WeightsOf returns the per account weights of a registered key, or nil for
// an unregistered one.
func (r *SignerRegistry) WeightsOf(key string) Weights {
	return r.weights[key]
}

// Keys returns every cataloged signer key in lexicographical order.
func (r *SignerRegistry) Keys() []string {
	all := make([]string, 0, len(r.weights))
	for key := range r.weights {
		all = append(all, key)
	}
	sort.Strings(all)
	return all
}

// IsEmpty reports whether not a single signer was cataloged. Matching
// against an empty registry is pointless and skipped by the engine.
func (r *SignerRegistry) IsEmpty() bool {
	return len(r.weights) == 0
}
