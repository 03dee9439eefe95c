package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/quorum"
	"github.com/stellar/go/network"
)

func cmdNewTx(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a new verification request carrying an empty transaction. The request
is written to standard output and is meant to be extended by piping it
through the with-* commands before being signed and verified.
`)
		fl.PrintDefaults()
	}
	var (
		sourceFl = fl.String("source", "", "Transaction source account ID.")
		seqFl    = fl.Uint64("sequence", 0, "Transaction sequence number.")
		memoFl   = fl.String("memo", "", "Short text attached to the transaction.")
		netFl = fl.String("network", env("QUORUMCLI_NETWORK", network.TestNetworkPassphrase),
			"Network passphrase scoping every produced hash. You can use QUORUMCLI_NETWORK environment variable to set it.")
	)
	fl.Parse(args)

	if *sourceFl == "" {
		return errors.New("transaction source is required")
	}

	req := &VerificationRequest{
		NetworkID: *netFl,
		Tx: &quorum.Transaction{
			Source:     *sourceFl,
			SequenceID: *seqFl,
			Memo:       *memoFl,
		},
	}
	if err := req.Tx.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %s", err)
	}
	return writeRequest(output, req)
}

// withOperation reads a request from input, appends the operation to its
// transaction and writes the request to output. All with-* operation
// commands share this flow.
func withOperation(input io.Reader, output io.Writer, op quorum.Operation) error {
	req, err := readRequest(input)
	if err != nil {
		return err
	}
	req.Tx.Operations = append(req.Tx.Operations, op)
	if err := req.Tx.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %s", err)
	}
	return writeRequest(output, req)
}

func cmdWithPayment(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Extend the transaction with a payment operation.
`)
		fl.PrintDefaults()
	}
	var (
		srcFl    = fl.String("src", "", "Operation source account ID. Transaction source is used if not provided.")
		dstFl    = fl.String("dst", "", "Destination account ID.")
		amountFl = fl.Int64("amount", 0, "Amount to transfer.")
	)
	fl.Parse(args)

	if *dstFl == "" {
		return errors.New("payment destination is required")
	}
	return withOperation(input, output, &quorum.PaymentOp{
		Source:      *srcFl,
		Destination: *dstFl,
		Amount:      *amountFl,
	})
}

func cmdWithCreateAccount(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Extend the transaction with an operation funding a new account.
`)
		fl.PrintDefaults()
	}
	var (
		srcFl     = fl.String("src", "", "Operation source account ID. Transaction source is used if not provided.")
		dstFl     = fl.String("dst", "", "New account ID.")
		balanceFl = fl.Int64("balance", 0, "Starting balance of the new account.")
	)
	fl.Parse(args)

	if *dstFl == "" {
		return errors.New("new account ID is required")
	}
	return withOperation(input, output, &quorum.CreateAccountOp{
		Source:          *srcFl,
		Destination:     *dstFl,
		StartingBalance: *balanceFl,
	})
}

func cmdWithManageData(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Extend the transaction with an operation attaching a named value to the
source account. Provide no value to delete the entry.
`)
		fl.PrintDefaults()
	}
	var (
		srcFl   = fl.String("src", "", "Operation source account ID. Transaction source is used if not provided.")
		nameFl  = fl.String("name", "", "Name of the data entry.")
		valueFl = fl.String("value", "", "Value of the data entry.")
	)
	fl.Parse(args)

	if *nameFl == "" {
		return errors.New("data entry name is required")
	}
	var value []byte
	if *valueFl != "" {
		value = []byte(*valueFl)
	}
	return withOperation(input, output, &quorum.ManageDataOp{
		Source: *srcFl,
		Name:   *nameFl,
		Value:  value,
	})
}

func cmdWithAllowTrust(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Extend the transaction with an operation updating a trustline authorization.
`)
		fl.PrintDefaults()
	}
	var (
		srcFl       = fl.String("src", "", "Operation source account ID. Transaction source is used if not provided.")
		trustorFl   = fl.String("trustor", "", "Account holding the trustline.")
		assetFl     = fl.String("asset", "", "Asset code of the trustline.")
		authorizeFl = fl.Bool("authorize", false, "Authorize the trustline.")
	)
	fl.Parse(args)

	if *trustorFl == "" {
		return errors.New("trustor is required")
	}
	if *assetFl == "" {
		return errors.New("asset code is required")
	}
	return withOperation(input, output, &quorum.AllowTrustOp{
		Source:    *srcFl,
		Trustor:   *trustorFl,
		Asset:     *assetFl,
		Authorize: *authorizeFl,
	})
}

func cmdWithBumpSequence(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Extend the transaction with an operation lifting the source account sequence
number.
`)
		fl.PrintDefaults()
	}
	var (
		srcFl = fl.String("src", "", "Operation source account ID. Transaction source is used if not provided.")
		toFl  = fl.Int64("to", 0, "Sequence number to bump to.")
	)
	fl.Parse(args)

	return withOperation(input, output, &quorum.BumpSequenceOp{
		Source: *srcFl,
		BumpTo: *toFl,
	})
}

func cmdWithInflation(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Extend the transaction with an inflation operation.
`)
		fl.PrintDefaults()
	}
	var (
		srcFl = fl.String("src", "", "Operation source account ID. Transaction source is used if not provided.")
	)
	fl.Parse(args)

	return withOperation(input, output, &quorum.InflationOp{
		Source: *srcFl,
	})
}
