package quorum

import (
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/keys"
)

// Maximum value a weight can be set to. The ledger stores weights in a
// single byte; we represent them as int32 and must force the limit manually.
const maxWeightValue = 255

// Weight represents the authorization power of a signer, or the bar an
// account sets for a threshold category.
type Weight int32

func (w Weight) Validate() error {
	if w < 0 {
		return errors.Wrap(errors.ErrInput, "weight must not be negative")
	}
	if w > maxWeightValue {
		return errors.Wrapf(errors.ErrInput,
			"weight is %d and must not be greater than %d", w, maxWeightValue)
	}
	return nil
}

// Weights maps an account ID to a weight. The same mapping carries resolved
// thresholds, weight collected during an evaluation and rejection
// thresholds.
type Weights map[string]Weight

// raise lifts the weight registered for the account to at least min.
func (w Weights) raise(id string, min Weight) {
	if w[id] < min {
		w[id] = min
	}
}

// Category selects which of the three account thresholds applies to an
// operation.
type Category byte

const (
	CategoryLow Category = iota
	CategoryMedium
	CategoryHigh
)

func (c Category) String() string {
	switch c {
	case CategoryLow:
		return "low"
	case CategoryMedium:
		return "medium"
	case CategoryHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Thresholds is the triple of authorization bars an account declares. A
// zero threshold still requires a single signature (see ResolveThresholds).
type Thresholds struct {
	Low    Weight
	Medium Weight
	High   Weight
}

// ForCategory returns the threshold applying to the given operation
// category. Anything that is not low or high is medium.
func (t Thresholds) ForCategory(c Category) Weight {
	switch c {
	case CategoryLow:
		return t.Low
	case CategoryHigh:
		return t.High
	default:
		return t.Medium
	}
}

func (t Thresholds) Validate() error {
	if err := t.Low.Validate(); err != nil {
		return errors.Wrap(err, "low")
	}
	if err := t.Medium.Validate(); err != nil {
		return errors.Wrap(err, "medium")
	}
	if err := t.High.Validate(); err != nil {
		return errors.Wrap(err, "high")
	}
	return nil
}

// Signer is a key authorized to contribute weight toward the thresholds of
// the account that declares it.
type Signer struct {
	Key    string
	Weight Weight
	Kind   keys.Kind
}

// Validate ensures the key parses and agrees with the declared kind.
func (s Signer) Validate() error {
	kind, err := keys.KindOf(s.Key)
	if err != nil {
		return errors.Wrap(err, "key")
	}
	if kind != s.Kind {
		return errors.Wrapf(errors.ErrInput,
			"key kind is %s, declared kind is %s", kind, s.Kind)
	}
	return s.Weight.Validate()
}

// Account is a caller supplied snapshot of a ledger account: its identity,
// its declared thresholds and its ordered signer list. An evaluation mutates
// the snapshot thresholds in place (ResolveThresholds), so keep a pristine
// version via Copy when a snapshot is evaluated more than once.
type Account struct {
	ID         string
	Thresholds Thresholds
	Signers    []Signer
}

func (a *Account) Validate() error {
	if a.ID == "" {
		return errors.Wrap(errors.ErrEmpty, "id")
	}
	if err := a.Thresholds.Validate(); err != nil {
		return errors.Wrap(err, "thresholds")
	}
	for i, s := range a.Signers {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "signer %d", i)
		}
	}
	return nil
}

// Copy returns a deep copy of the account snapshot.
func (a *Account) Copy() *Account {
	signers := make([]Signer, len(a.Signers))
	copy(signers, a.Signers)
	return &Account{
		ID:         a.ID,
		Thresholds: a.Thresholds,
		Signers:    signers,
	}
}

type accountLookup map[string]*Account

func newAccountLookup(accounts []*Account) accountLookup {
	lookup := make(accountLookup, len(accounts))
	for _, a := range accounts {
		lookup[a.ID] = a
	}
	return lookup
}

func (l accountLookup) get(id string) (*Account, error) {
	acc, ok := l[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAccount, "%q", id)
	}
	return acc, nil
}
