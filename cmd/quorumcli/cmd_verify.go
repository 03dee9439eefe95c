package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/keys"
	"github.com/tendermint/tendermint/libs/log"
)

func cmdVerify(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Decide a verification request. The transaction is authorized only when the
attached signatures and pre-authorized keys together clear the threshold of
every account the transaction touches and every attached signature was
consumed.

The command prints "authorized" and exits with 0 when the transaction is
authorized. Any other outcome is reported as an error.
`)
		fl.PrintDefaults()
	}
	var (
		verboseFl = fl.Bool("v", false, "Log the evaluation steps to standard error.")
	)
	fl.Parse(args)

	logger := log.NewNopLogger()
	if *verboseFl {
		logger = log.NewTMLogger(log.NewSyncWriter(os.Stderr)).With("module", "quorumcli")
	}

	req, err := readRequest(input)
	if err != nil {
		return err
	}
	logger.Info("verifying request",
		"network", req.NetworkID,
		"operations", len(req.Tx.Operations),
		"accounts", len(req.Accounts),
		"signatures", len(req.Signatures),
		"preauth", len(req.Preauth))

	if *verboseFl {
		if txhash, err := quorum.TxHash(req.Tx, req.NetworkID); err == nil {
			logger.Info("transaction hash", "hash", fmt.Sprintf("%x", txhash))
		}
		for _, kind := range []keys.Kind{keys.Ed25519, keys.Preimage} {
			reg, err := quorum.BuildRegistry(req.Tx, req.Accounts, kind)
			if err != nil {
				continue
			}
			for _, key := range reg.Keys() {
				logger.Info("cataloged signer", "kind", kind, "key", key)
			}
		}
		// Resolve on copies, the snapshots must reach the decision
		// pristine.
		copies := make([]*quorum.Account, len(req.Accounts))
		for i, a := range req.Accounts {
			copies[i] = a.Copy()
		}
		if thresholds, err := quorum.ResolveThresholds(req.Tx, copies); err == nil {
			for id, w := range thresholds {
				logger.Info("required weight", "account", id, "weight", int32(w))
			}
		}
	}

	approved, err := quorum.IsApproved(req.Tx, req.NetworkID, req.Accounts, req.Signatures, req.Preauth)
	if err != nil {
		logger.Error("verification failed", "err", err)
		return fmt.Errorf("cannot verify request: %s", err)
	}
	logger.Info("verdict", "authorized", approved)

	if !approved {
		return errors.New("transaction is not authorized")
	}
	_, err = fmt.Fprintln(output, "authorized")
	return err
}
