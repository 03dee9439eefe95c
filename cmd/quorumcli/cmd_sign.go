package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/quorum"
)

func cmdSignTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign the transaction of a verification request. This is decoding a request
from standard input, attaches a signature of the network scoped transaction
hash and writes the extended request back to standard output.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", env("QUORUMCLI_PRIV_KEY", os.Getenv("HOME")+"/.quorum.priv.key"),
			"Path to the private key file that transaction should be signed with. You can use QUORUMCLI_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	if *keyPathFl == "" {
		return errors.New("private key is required")
	}
	pub, priv, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}

	req, err := readRequest(input)
	if err != nil {
		return err
	}
	sig, err := quorum.SignTx(req.Tx, req.NetworkID, pub, priv)
	if err != nil {
		return fmt.Errorf("cannot sign transaction: %s", err)
	}
	req.Signatures = append(req.Signatures, sig)
	return writeRequest(output, req)
}

func cmdWithPreimage(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Attach a preimage signature to the verification request. The preimage
unlocks the signer key holding its sha256 hash, regardless of the
transaction content.
`)
		fl.PrintDefaults()
	}
	var (
		preimageFl = fl.String("preimage", "", "The secret unlocking a preimage signer.")
	)
	fl.Parse(args)

	if *preimageFl == "" {
		return errors.New("preimage is required")
	}

	req, err := readRequest(input)
	if err != nil {
		return err
	}
	sig, err := quorum.PreimageSignature([]byte(*preimageFl))
	if err != nil {
		return fmt.Errorf("cannot build preimage signature: %s", err)
	}
	req.Signatures = append(req.Signatures, sig)
	return writeRequest(output, req)
}
