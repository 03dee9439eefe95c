package main

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/iov-one/quorum"
)

// VerificationRequest is the document that flows through a quorumcli
// pipeline: a transaction together with everything needed to decide its
// authorization. Commands read it from standard input, extend it and write
// it back to standard output.
type VerificationRequest struct {
	NetworkID  string
	Tx         *quorum.Transaction
	Accounts   []*quorum.Account
	Signatures []quorum.Signature
	Preauth    []string
}

// account returns the account snapshot registered under the given ID.
func (req *VerificationRequest) account(id string) (*quorum.Account, error) {
	for _, a := range req.Accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("account %q not present in the request", id)
}

// readRequest deserializes a verification request, consuming the whole
// input. readRequest is the opposite of the writeRequest function.
func readRequest(r io.Reader) (*VerificationRequest, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read input: %s", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("no input data")
	}
	var req VerificationRequest
	if err := cdc.UnmarshalJSON(raw, &req); err != nil {
		return nil, fmt.Errorf("cannot deserialize request: %s", err)
	}
	if req.Tx == nil {
		return nil, errors.New("request carries no transaction")
	}
	return &req, nil
}

// writeRequest serializes the verification request as indented JSON so that
// a pipeline step output can be read by both the next step and a human.
func writeRequest(w io.Writer, req *VerificationRequest) error {
	raw, err := cdc.MarshalJSONIndent(req, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot serialize request: %s", err)
	}
	if _, err := w.Write(raw); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
