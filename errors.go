package quorum

import (
	"github.com/iov-one/quorum/errors"
)

// Error codes
// quorum reserves 1000 ~ 1019.

var (
	// ErrTooManySignatures is returned when at least one attached
	// signature cannot be attributed to a known signer of any account the
	// transaction touches. Every presented signature must be explainable,
	// even when the thresholds are already met without it.
	ErrTooManySignatures = errors.Register(1000, "too many signatures")

	// ErrUnknownAccount is returned when the transaction references an
	// account that is missing from the supplied snapshot list.
	ErrUnknownAccount = errors.Register(1001, "unknown account")
)
