package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/iov-one/quorum/keys"
	"golang.org/x/crypto/ed25519"
)

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new signing key.

When successful a new file containing the encoded ed25519 seed is created
and the derived public signer key is printed. This command fails if the
key file already exists.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", env("QUORUMCLI_PRIV_KEY", os.Getenv("HOME")+"/.quorum.priv.key"),
			"Path to the file the seed is written to. You can use QUORUMCLI_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	if _, err := os.Stat(*keyPathFl); !os.IsNotExist(err) {
		// Do not allow to overwrite already existing private key. User
		// must manually delete it first to ensure we do not delete
		// such crucial data by an accident (bad command usage).
		return fmt.Errorf("private key file %q already exists, delete this file and try again", *keyPathFl)
	}

	seed := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return fmt.Errorf("cannot read random data: %s", err)
	}
	enc, err := keys.EncodeSeed(seed)
	if err != nil {
		return fmt.Errorf("cannot encode seed: %s", err)
	}
	pub, _, err := keys.FromSeed(seed)
	if err != nil {
		return fmt.Errorf("cannot derive keypair: %s", err)
	}

	fd, err := os.OpenFile(*keyPathFl, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("cannot create private key file: %s", err)
	}
	defer fd.Close()

	if _, err := io.WriteString(fd, enc+"\n"); err != nil {
		return fmt.Errorf("cannot write private key: %s", err)
	}
	if err := fd.Close(); err != nil {
		return fmt.Errorf("cannot close private key file: %s", err)
	}

	_, err = fmt.Fprintln(output, pub)
	return err
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the signer key derived from your private key, together with its
signature hint.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", env("QUORUMCLI_PRIV_KEY", os.Getenv("HOME")+"/.quorum.priv.key"),
			"Path to the private key file. You can use QUORUMCLI_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	pub, _, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return err
	}
	hint, err := keys.HintOf(pub)
	if err != nil {
		return fmt.Errorf("cannot compute hint: %s", err)
	}
	_, err = fmt.Fprintf(output, "%s\t%x\n", pub, hint)
	return err
}

// decodePrivateKey loads an encoded seed file and derives the keypair from
// it.
func decodePrivateKey(filepath string) (string, ed25519.PrivateKey, error) {
	data, err := ioutil.ReadFile(filepath)
	if err != nil {
		return "", nil, fmt.Errorf("cannot read %q file: %s", filepath, err)
	}
	seed, err := keys.DecodeSeed(strings.TrimSpace(string(data)))
	if err != nil {
		return "", nil, fmt.Errorf("cannot decode seed: %s", err)
	}
	pub, priv, err := keys.FromSeed(seed)
	if err != nil {
		return "", nil, fmt.Errorf("cannot derive keypair: %s", err)
	}
	return pub, priv, nil
}
