/*
Package errors implements the error handling used across quorum.

Errors are organized around root error kinds. A root error carries a unique
numeric code and a short description and is created once, during program
startup, using Register. Every error returned at runtime wraps one of the
root errors, so that a caller can classify a failure with a single
`ErrXyz.Is(err)` call regardless of how many layers of context were added on
the way up.

Create errors with `ErrXyz.New("...")` or by wrapping a cause with
`errors.Wrap(err, "...")` at the point of failure, so that a stack trace is
attached at the lowest frame. Wrapping an already wrapped error records
context only; the original stack trace is kept.

Formatting directives:

	%s  the error message
	%v  the message plus a compressed [file:line] of the creation point
	%+v the message plus the full stack trace
*/
package errors
