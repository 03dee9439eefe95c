package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/keys"
)

func cmdWithAccount(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Attach an account snapshot to the verification request. Every account the
transaction touches must be attached before the request can be verified.
Use with-signer to declare the account signers.
`)
		fl.PrintDefaults()
	}
	var (
		idFl     = fl.String("id", "", "Account ID.")
		lowFl    = fl.Int("low", 0, "Low threshold of the account.")
		mediumFl = fl.Int("medium", 0, "Medium threshold of the account.")
		highFl   = fl.Int("high", 0, "High threshold of the account.")
	)
	fl.Parse(args)

	if *idFl == "" {
		return errors.New("account ID is required")
	}

	req, err := readRequest(input)
	if err != nil {
		return err
	}
	if _, err := req.account(*idFl); err == nil {
		return fmt.Errorf("account %q already attached", *idFl)
	}

	acc := &quorum.Account{
		ID: *idFl,
		Thresholds: quorum.Thresholds{
			Low:    quorum.Weight(*lowFl),
			Medium: quorum.Weight(*mediumFl),
			High:   quorum.Weight(*highFl),
		},
	}
	if err := acc.Validate(); err != nil {
		return fmt.Errorf("invalid account: %s", err)
	}
	req.Accounts = append(req.Accounts, acc)
	return writeRequest(output, req)
}

func cmdWithSigner(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Declare a signer on an account attached to the verification request. The
signer kind is derived from the key encoding.
`)
		fl.PrintDefaults()
	}
	var (
		accountFl = fl.String("account", "", "ID of the account the signer belongs to.")
		keyFl     = fl.String("key", "", "Signer key.")
		weightFl  = fl.Int("weight", 1, "Weight of the signer.")
	)
	fl.Parse(args)

	if *accountFl == "" {
		return errors.New("account ID is required")
	}
	if *keyFl == "" {
		return errors.New("signer key is required")
	}

	req, err := readRequest(input)
	if err != nil {
		return err
	}
	acc, err := req.account(*accountFl)
	if err != nil {
		return err
	}

	kind, err := keys.KindOf(*keyFl)
	if err != nil {
		return fmt.Errorf("invalid signer key: %s", err)
	}
	signer := quorum.Signer{
		Key:    *keyFl,
		Weight: quorum.Weight(*weightFl),
		Kind:   kind,
	}
	if err := signer.Validate(); err != nil {
		return fmt.Errorf("invalid signer: %s", err)
	}
	acc.Signers = append(acc.Signers, signer)
	return writeRequest(output, req)
}

func cmdWithPreauth(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Name a signer key as pre-authorized. A pre-authorized key credits its weight
during verification without an attached signature. It is the caller's
responsibility to only name keys that were verified through another channel.
`)
		fl.PrintDefaults()
	}
	var (
		keyFl = fl.String("key", "", "Pre-authorized signer key.")
	)
	fl.Parse(args)

	if *keyFl == "" {
		return errors.New("signer key is required")
	}
	if _, err := keys.KindOf(*keyFl); err != nil {
		return fmt.Errorf("invalid signer key: %s", err)
	}

	req, err := readRequest(input)
	if err != nil {
		return err
	}
	req.Preauth = append(req.Preauth, *keyFl)
	return writeRequest(output, req)
}
