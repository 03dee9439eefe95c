package errors

import "reflect"

const (
	// SuccessCode signals that the processing was successful and no error
	// is to be reported.
	SuccessCode uint32 = 0

	// InternalCode clubs together all unclassified errors that do not
	// carry a code of a registered root error.
	InternalCode uint32 = 1
)

type coder interface {
	Code() uint32
}

// Code tests if given error carries the code of a registered root error and
// returns the value of it if available. This function is testing for the
// causer interface as well and unwraps the error. An error that provides no
// code is classified as internal. A nil error reports success.
func Code(err error) uint32 {
	if errIsNil(err) {
		return SuccessCode
	}

	for {
		if c, ok := err.(coder); ok {
			return c.Code()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return InternalCode
		}
	}
}

// errIsNil returns true if value represented by the given error is nil.
//
// Most of the time a simple == check is enough. There is a very narrowed
// spectrum of cases (mostly in tests) where a more sophisticated check is
// required.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	if val := reflect.ValueOf(err); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}
