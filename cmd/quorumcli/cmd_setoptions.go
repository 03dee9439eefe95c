package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/keys"
)

func cmdWithSetOptions(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Extend the transaction with an operation adjusting the authorization policy
of its source account. Flags that are not provided leave the corresponding
policy field untouched. Touching the master weight, a threshold or the
signer list makes the operation high category.

An installed signer with a zero weight removes the signer from the account.
`)
		fl.PrintDefaults()
	}
	var (
		srcFl    = fl.String("src", "", "Operation source account ID. Transaction source is used if not provided.")
		masterFl = flWeight(fl, "master", "New weight of the account master key.")
		lowFl    = flWeight(fl, "low", "New low threshold.")
		mediumFl = flWeight(fl, "medium", "New medium threshold.")
		highFl   = flWeight(fl, "high", "New high threshold.")
		homeFl   = fl.String("home", "", "New home domain of the account.")
		signerFl = fl.String("signer", "", "Signer key to install on the account.")
		weightFl = fl.Int("signer-weight", 0, "Weight of the installed signer. Zero removes the signer.")
	)
	fl.Parse(args)

	op := &quorum.SetOptionsOp{
		Source:          *srcFl,
		MasterWeight:    masterFl.Weight(),
		LowThreshold:    lowFl.Weight(),
		MediumThreshold: mediumFl.Weight(),
		HighThreshold:   highFl.Weight(),
	}
	if *homeFl != "" {
		op.HomeDomain = homeFl
	}
	if *signerFl != "" {
		kind, err := keys.KindOf(*signerFl)
		if err != nil {
			return fmt.Errorf("invalid signer key: %s", err)
		}
		op.Signer = &quorum.Signer{
			Key:    *signerFl,
			Weight: quorum.Weight(*weightFl),
			Kind:   kind,
		}
	}
	return withOperation(input, output, op)
}
