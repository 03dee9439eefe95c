package quorum

import (
	"github.com/iov-one/quorum/errors"
)

// categorize classifies an operation into the threshold category it must
// clear on its source account.
func categorize(op Operation) Category {
	switch op := op.(type) {
	case *SetOptionsOp:
		if op.touchesAuth() {
			return CategoryHigh
		}
		return CategoryMedium
	case *AllowTrustOp, *BumpSequenceOp, *InflationOp:
		return CategoryLow
	default:
		return CategoryMedium
	}
}

// ResolveThresholds computes the minimum aggregate signer weight every
// account touched by the transaction must collect before the transaction is
// authorized.
//
// Operations are folded in transaction order. A setOptions operation that
// modifies thresholds updates the account snapshot immediately, so a later
// operation of the same account inside the same transaction sees the changed
// bar. The supplied snapshots are mutated; keep a pristine version via
// Account.Copy when reusing them.
func ResolveThresholds(tx Tx, accounts []*Account) (Weights, error) {
	lookup := newAccountLookup(accounts)

	source := tx.GetSource()
	src, err := lookup.get(source)
	if err != nil {
		return nil, err
	}

	// At least one signature is required, even for a zero threshold.
	required := Weights{source: 1}
	required.raise(source, src.Thresholds.Low)

	for i, op := range tx.GetOperations() {
		id := opSource(tx, op)
		acc, err := lookup.get(id)
		if err != nil {
			return nil, errors.Wrapf(err, "operation %d", i)
		}
		if _, ok := required[id]; !ok {
			required[id] = 1
		}
		required.raise(id, acc.Thresholds.ForCategory(categorize(op)))

		if set, ok := op.(*SetOptionsOp); ok {
			applyThresholds(acc, set)
		}
	}
	return required, nil
}

// applyThresholds folds the threshold changes of a setOptions operation into
// the account snapshot.
func applyThresholds(acc *Account, op *SetOptionsOp) {
	if op.LowThreshold != nil {
		acc.Thresholds.Low = *op.LowThreshold
	}
	if op.MediumThreshold != nil {
		acc.Thresholds.Medium = *op.MediumThreshold
	}
	if op.HighThreshold != nil {
		acc.Thresholds.High = *op.HighThreshold
	}
}

// RejectionThresholds computes, for every account present in thresholds,
// the spare weight beyond its approval bar: the sum of all its signer
// weights minus the required threshold. Once strictly more than this weight
// votes against, approval is structurally impossible. The engine never
// consults it; callers tracking explicit rejection votes compare them via
// HasEnoughRejections.
func RejectionThresholds(accounts []*Account, thresholds Weights) (Weights, error) {
	lookup := newAccountLookup(accounts)
	rejections := make(Weights, len(thresholds))
	for id, threshold := range thresholds {
		acc, err := lookup.get(id)
		if err != nil {
			return nil, err
		}
		var total Weight
		for _, s := range acc.Signers {
			total += s.Weight
		}
		rejections[id] = total - threshold
	}
	return rejections, nil
}

// HasEnoughApprovals reports whether every account in thresholds collected
// at least its required weight. Accounts absent from weights count as zero.
func HasEnoughApprovals(weights, thresholds Weights) bool {
	for id, threshold := range thresholds {
		if weights[id] < threshold {
			return false
		}
	}
	return true
}

// HasEnoughRejections reports whether every account in rejections collected
// strictly more rejection weight than its rejection threshold.
func HasEnoughRejections(weights, rejections Weights) bool {
	for id, rejection := range rejections {
		if weights[id] <= rejection {
			return false
		}
	}
	return true
}
