package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// commands is a register of all availables commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// When a cmd function is callend it is given stdin, stdout and command line
// arguments except the program name and this command name. It is the
// responsibility of the command function to parse the arguments. Use os.Stderr
// to write error messages.
//
// A command function is an independent runable that is taking input and output
// being stdin and stdout. Given args are the command line arguments, without
// the program name, that should be parsed using the flag package.
// A command function is expected to read and write only to provided input and
// output. In a special case of an invalid argument a message to os.Stderr and
// os.Exit(2) call are allowed.
//
// When implementing a command function, keep it simple. A command function
// should provide a single functionality. A unix pipe can be used to construct
// a pipeline. For example, there are separate functions for building a
// verification request, signing it and deciding it. They can be combined into
// a single pipeline:
//
//   $ quorumcli new-tx -source alice \
//       | quorumcli with-payment -dst bob -amount 5 \
//       | quorumcli with-account -id alice -medium 1 \
//       | quorumcli with-signer -account alice -key $(quorumcli keyaddr | cut -f1) \
//       | quorumcli sign \
//       | quorumcli verify
//
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"hash":                cmdTransactionHash,
	"keyaddr":             cmdKeyaddr,
	"keygen":              cmdKeygen,
	"new-tx":              cmdNewTx,
	"registry":            cmdRegistry,
	"sign":                cmdSignTransaction,
	"sources":             cmdSources,
	"thresholds":          cmdThresholds,
	"verify":              cmdVerify,
	"version":             cmdVersion,
	"with-account":        cmdWithAccount,
	"with-allow-trust":    cmdWithAllowTrust,
	"with-bump-sequence":  cmdWithBumpSequence,
	"with-create-account": cmdWithCreateAccount,
	"with-inflation":      cmdWithInflation,
	"with-manage-data":    cmdWithManageData,
	"with-payment":        cmdWithPayment,
	"with-preauth":        cmdWithPreauth,
	"with-preimage":       cmdWithPreimage,
	"with-set-options":    cmdWithSetOptions,
	"with-signer":         cmdWithSigner,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for the quorum authorization engine.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	fmt.Fprintln(out, gitHash)
	return nil
}

// gitHash is set during the compilation time.
var gitHash string = "dev"
