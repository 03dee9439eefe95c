package main

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/keys"
)

func cmdTransactionHash(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the network scoped hash of the request transaction. This is the value
every attached ed25519 signature must sign.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	req, err := readRequest(input)
	if err != nil {
		return err
	}
	txhash, err := quorum.TxHash(req.Tx, req.NetworkID)
	if err != nil {
		return fmt.Errorf("cannot hash transaction: %s", err)
	}
	_, err = fmt.Fprintf(output, "%x\n", txhash)
	return err
}

func cmdSources(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the accounts the request transaction touches, one per line, in first
appearance order. Each of them must clear its threshold for the transaction
to be authorized.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	req, err := readRequest(input)
	if err != nil {
		return err
	}
	for _, id := range quorum.SourceAccounts(req.Tx) {
		if _, err := fmt.Fprintln(output, id); err != nil {
			return err
		}
	}
	return nil
}

func cmdThresholds(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the weight every account must collect for the request transaction to
be authorized, one account per line.
`)
		fl.PrintDefaults()
	}
	var (
		rejectionFl = fl.Bool("rejection", false, "Print in addition the weight that makes a rejection final.")
	)
	fl.Parse(args)

	req, err := readRequest(input)
	if err != nil {
		return err
	}
	thresholds, err := quorum.ResolveThresholds(req.Tx, req.Accounts)
	if err != nil {
		return fmt.Errorf("cannot resolve thresholds: %s", err)
	}

	var rejections quorum.Weights
	if *rejectionFl {
		if rejections, err = quorum.RejectionThresholds(req.Accounts, thresholds); err != nil {
			return fmt.Errorf("cannot resolve rejection thresholds: %s", err)
		}
	}

	ids := make([]string, 0, len(thresholds))
	for id := range thresholds {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if *rejectionFl {
			_, err = fmt.Fprintf(output, "%s\t%d\t%d\n", id, thresholds[id], rejections[id])
		} else {
			_, err = fmt.Fprintf(output, "%s\t%d\n", id, thresholds[id])
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func cmdRegistry(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the signer catalog the verification of the request transaction would
match signatures against. Each line holds the signature hint, the signer key
and its weight per account.
`)
		fl.PrintDefaults()
	}
	var (
		kindFl = fl.String("kind", "ed25519", "Catalog to print, either \"ed25519\" or \"preimage\".")
	)
	fl.Parse(args)

	var kind keys.Kind
	switch *kindFl {
	case "ed25519":
		kind = keys.Ed25519
	case "preimage":
		kind = keys.Preimage
	default:
		return fmt.Errorf("unknown signer kind %q", *kindFl)
	}

	req, err := readRequest(input)
	if err != nil {
		return err
	}
	reg, err := quorum.BuildRegistry(req.Tx, req.Accounts, kind)
	if err != nil {
		return fmt.Errorf("cannot build registry: %s", err)
	}

	for _, key := range reg.Keys() {
		hint, err := keys.HintOf(key)
		if err != nil {
			return fmt.Errorf("cannot compute hint: %s", err)
		}
		weights := reg.WeightsOf(key)
		ids := make([]string, 0, len(weights))
		for id := range weights {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		pairs := make([]string, 0, len(ids))
		for _, id := range ids {
			pairs = append(pairs, fmt.Sprintf("%s=%d", id, weights[id]))
		}
		if _, err := fmt.Fprintf(output, "%x\t%s\t%s\n", hint, key, strings.Join(pairs, ",")); err != nil {
			return err
		}
	}
	return nil
}
