package quorum

import (
	"encoding/binary"

	"github.com/iov-one/quorum/errors"
)

// Validater is any struct that can be validated.
type Validater interface {
	Validate() error
}

// Operation is a single instruction of a transaction. The concrete type
// decides the threshold category and GetSource names the account the
// instruction acts for. An empty source means the transaction source
// applies.
type Operation interface {
	GetSource() string
}

// Tx is the transaction the engine authorizes. Hosts plug in their own
// implementation; Transaction is the reference one.
type Tx interface {
	GetSource() string
	GetOperations() []Operation

	// GetSignBytes returns the canonical byte representation of the
	// transaction, before any network scoping. Helpful to store original,
	// unparsed bytes here, just in case.
	GetSignBytes() ([]byte, error)
}

// opSource resolves the account an operation acts for, falling back to the
// transaction source.
func opSource(tx Tx, op Operation) string {
	if src := op.GetSource(); src != "" {
		return src
	}
	return tx.GetSource()
}

// SourceAccounts returns the distinct accounts the transaction touches, in
// first appearance order: the envelope source, then every operation's
// explicit or inherited source.
func SourceAccounts(tx Tx) []string {
	source := tx.GetSource()
	sources := []string{source}
	seen := map[string]struct{}{source: {}}
	for _, op := range tx.GetOperations() {
		id := opSource(tx, op)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		sources = append(sources, id)
	}
	return sources
}

// SetOptionsOp adjusts the source account authorization policy: the master
// key weight, the three thresholds and the signer list. Nil fields stay
// untouched. Touching any policy field makes the operation high category.
type SetOptionsOp struct {
	Source          string
	MasterWeight    *Weight
	LowThreshold    *Weight
	MediumThreshold *Weight
	HighThreshold   *Weight
	Signer          *Signer
	HomeDomain      *string
}

var _ Operation = (*SetOptionsOp)(nil)

func (op *SetOptionsOp) GetSource() string { return op.Source }

// touchesAuth reports whether the operation modifies the authorization
// policy of its account.
func (op *SetOptionsOp) touchesAuth() bool {
	return op.MasterWeight != nil ||
		op.LowThreshold != nil ||
		op.MediumThreshold != nil ||
		op.HighThreshold != nil ||
		op.Signer != nil
}

func (op *SetOptionsOp) Validate() error {
	for _, w := range []*Weight{op.MasterWeight, op.LowThreshold, op.MediumThreshold, op.HighThreshold} {
		if w == nil {
			continue
		}
		if err := w.Validate(); err != nil {
			return err
		}
	}
	if op.Signer != nil {
		if err := op.Signer.Validate(); err != nil {
			return errors.Wrap(err, "signer")
		}
	}
	return nil
}

// CreateAccountOp funds a new account on the ledger.
type CreateAccountOp struct {
	Source          string
	Destination     string
	StartingBalance int64
}

var _ Operation = (*CreateAccountOp)(nil)

func (op *CreateAccountOp) GetSource() string { return op.Source }

// PaymentOp moves funds from the source account to the destination.
type PaymentOp struct {
	Source      string
	Destination string
	Amount      int64
}

var _ Operation = (*PaymentOp)(nil)

func (op *PaymentOp) GetSource() string { return op.Source }

// ManageDataOp attaches a named value to the source account. A nil value
// deletes the entry.
type ManageDataOp struct {
	Source string
	Name   string
	Value  []byte
}

var _ Operation = (*ManageDataOp)(nil)

func (op *ManageDataOp) GetSource() string { return op.Source }

// AllowTrustOp updates the authorization of a trustline the trustor holds.
type AllowTrustOp struct {
	Source    string
	Trustor   string
	Asset     string
	Authorize bool
}

var _ Operation = (*AllowTrustOp)(nil)

func (op *AllowTrustOp) GetSource() string { return op.Source }

// BumpSequenceOp lifts the source account sequence number.
type BumpSequenceOp struct {
	Source string
	BumpTo int64
}

var _ Operation = (*BumpSequenceOp)(nil)

func (op *BumpSequenceOp) GetSource() string { return op.Source }

// InflationOp runs the ledger inflation cycle.
type InflationOp struct {
	Source string
}

var _ Operation = (*InflationOp)(nil)

func (op *InflationOp) GetSource() string { return op.Source }

// maxMemoLength is the ledger cap on memo text.
const maxMemoLength = 28

// Transaction is the reference Tx implementation carried by the CLI and the
// tests. Its sign bytes are a deterministic binary serialization: length
// prefixed strings and presence byte optionals, operations in order.
type Transaction struct {
	Source     string
	SequenceID uint64
	Memo       string
	Operations []Operation
}

var _ Tx = (*Transaction)(nil)

func (tx *Transaction) GetSource() string { return tx.Source }

func (tx *Transaction) GetOperations() []Operation { return tx.Operations }

func (tx *Transaction) Validate() error {
	if tx.Source == "" {
		return errors.Wrap(errors.ErrEmpty, "source")
	}
	if len(tx.Memo) > maxMemoLength {
		return errors.Wrapf(errors.ErrInput,
			"memo is %d bytes and must not be longer than %d", len(tx.Memo), maxMemoLength)
	}
	for i, op := range tx.Operations {
		if v, ok := op.(Validater); ok {
			if err := v.Validate(); err != nil {
				return errors.Wrapf(err, "operation %d", i)
			}
		}
	}
	return nil
}

func (tx *Transaction) GetSignBytes() ([]byte, error) {
	b := make([]byte, 0, 128)
	b = appendString(b, tx.Source)
	b = appendUint64(b, tx.SequenceID)
	b = appendString(b, tx.Memo)
	b = appendUint32(b, uint32(len(tx.Operations)))
	for i, op := range tx.Operations {
		var err error
		if b, err = appendOperation(b, op); err != nil {
			return nil, errors.Wrapf(err, "operation %d", i)
		}
	}
	return b, nil
}

// Operation codes of the reference serialization.
const (
	opCodeCreateAccount byte = iota + 1
	opCodePayment
	opCodeManageData
	opCodeAllowTrust
	opCodeBumpSequence
	opCodeInflation
	opCodeSetOptions
)

func appendOperation(b []byte, op Operation) ([]byte, error) {
	switch op := op.(type) {
	case *CreateAccountOp:
		b = append(b, opCodeCreateAccount)
		b = appendString(b, op.Source)
		b = appendString(b, op.Destination)
		b = appendUint64(b, uint64(op.StartingBalance))
	case *PaymentOp:
		b = append(b, opCodePayment)
		b = appendString(b, op.Source)
		b = appendString(b, op.Destination)
		b = appendUint64(b, uint64(op.Amount))
	case *ManageDataOp:
		b = append(b, opCodeManageData)
		b = appendString(b, op.Source)
		b = appendString(b, op.Name)
		b = appendBytes(b, op.Value)
	case *AllowTrustOp:
		b = append(b, opCodeAllowTrust)
		b = appendString(b, op.Source)
		b = appendString(b, op.Trustor)
		b = appendString(b, op.Asset)
		b = appendBool(b, op.Authorize)
	case *BumpSequenceOp:
		b = append(b, opCodeBumpSequence)
		b = appendString(b, op.Source)
		b = appendUint64(b, uint64(op.BumpTo))
	case *InflationOp:
		b = append(b, opCodeInflation)
		b = appendString(b, op.Source)
	case *SetOptionsOp:
		b = append(b, opCodeSetOptions)
		b = appendString(b, op.Source)
		b = appendWeightPtr(b, op.MasterWeight)
		b = appendWeightPtr(b, op.LowThreshold)
		b = appendWeightPtr(b, op.MediumThreshold)
		b = appendWeightPtr(b, op.HighThreshold)
		b = appendSignerPtr(b, op.Signer)
		b = appendStringPtr(b, op.HomeDomain)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unsupported operation type %T", op)
	}
	return b, nil
}

func appendUint16(b []byte, v uint16) []byte {
	var raw [2]byte
	binary.BigEndian.PutUint16(raw[:], v)
	return append(b, raw[:]...)
}

func appendUint32(b []byte, v uint32) []byte {
	var raw [4]byte
	binary.BigEndian.PutUint32(raw[:], v)
	return append(b, raw[:]...)
}

func appendUint64(b []byte, v uint64) []byte {
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], v)
	return append(b, raw[:]...)
}

func appendString(b []byte, s string) []byte {
	b = appendUint16(b, uint16(len(s)))
	return append(b, s...)
}

func appendBytes(b, raw []byte) []byte {
	b = appendUint16(b, uint16(len(raw)))
	return append(b, raw...)
}

func appendBool(b []byte, v bool) []byte {
	if v {
		return append(b, 1)
	}
	return append(b, 0)
}

func appendStringPtr(b []byte, s *string) []byte {
	if s == nil {
		return append(b, 0)
	}
	b = append(b, 1)
	return appendString(b, *s)
}

func appendWeightPtr(b []byte, w *Weight) []byte {
	if w == nil {
		return append(b, 0)
	}
	b = append(b, 1)
	return appendUint32(b, uint32(*w))
}

func appendSignerPtr(b []byte, s *Signer) []byte {
	if s == nil {
		return append(b, 0)
	}
	b = append(b, 1)
	b = appendString(b, s.Key)
	b = appendUint32(b, uint32(s.Weight))
	return append(b, byte(s.Kind))
}
