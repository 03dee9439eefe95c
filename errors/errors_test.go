package errors

import (
	stdlib "errors"
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestCause(t *testing.T) {
	std := stdlib.New("this is a stdlib error")

	cases := map[string]struct {
		err  error
		root error
	}{
		"Errors are self-causing": {
			err:  ErrInput,
			root: ErrInput,
		},
		"Wrap reveals root cause": {
			err:  Wrap(ErrInput, "foo"),
			root: ErrInput,
		},
		"Cause works for stderr as root": {
			err:  Wrap(std, "Some helpful text"),
			root: std,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := errors.Cause(tc.err); got != tc.root {
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrEmpty,
			b:      ErrEmpty,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrEmpty,
			b:      ErrHuman,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrEmpty,
			b:      errors.Wrap(ErrEmpty, "gone"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrEmpty,
			b:      errors.Wrap(ErrDuplicate, "again"),
			wantIs: false,
		},
		"not equal to stdlib error": {
			a:      ErrEmpty,
			b:      fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"not equal to a wrapped stdlib error": {
			a:      ErrEmpty,
			b:      errors.Wrap(fmt.Errorf("stdlib error"), "wrapped"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is any error nil": {
			a:      nil,
			b:      (*customError)(nil),
			wantIs: true,
		},
		"nil is not not-nil": {
			a:      nil,
			b:      ErrEmpty,
			wantIs: false,
		},
		"not-nil is not nil": {
			a:      ErrEmpty,
			b:      nil,
			wantIs: false,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result - got:%v want: %v", got, tc.wantIs)
			}
		})
	}
}

type customError struct {
}

func (customError) Error() string {
	return "custom error"
}

func TestWrapEmpty(t *testing.T) {
	if err := Wrap(nil, "wrapping <nil>"); err != nil {
		t.Fatal(err)
	}
}

func TestWrappedIs(t *testing.T) {
	err := Wrap(ErrDuplicate, "available")
	if !ErrDuplicate.Is(err) {
		t.Fatal("expected error to be ErrDuplicate")
	}

	err = Wrap(err, "outer")
	if !ErrDuplicate.Is(err) {
		t.Fatal("expected wrapped error to be ErrDuplicate")
	}
}

func TestRegisterUniqueCodes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on code reuse")
		}
	}()
	// Code 2 is taken by ErrInput.
	Register(2, "must panic")
}

func TestRecover(t *testing.T) {
	fail := func() (err error) {
		defer Recover(&err)
		panic("kaboom")
	}
	err := fail()
	if !ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
	if got, want := err.Error(), "kaboom: panic"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
