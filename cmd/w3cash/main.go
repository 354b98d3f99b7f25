// Command w3cash is the workflow CLI: key management, instruction
// encoding and signing, and remote execution against a w3cashd daemon.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "key":
		return cmdKey(args[1:], out, errOut)
	case "encode":
		return cmdEncode(args[1:], out, errOut)
	case "sign":
		return cmdSign(args[1:], out, errOut)
	case "execute":
		return cmdExecute(args[1:], out, errOut)
	case "estimate-fee":
		return cmdEstimateFee(args[1:], out, errOut)
	case "admin":
		return cmdAdmin(args[1:], out, errOut)
	case "endpoint":
		return cmdEndpoint(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "w3cash: workflow signing and execution CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  w3cash key init --name <name> [--seed-hex <64hex>] [--force]")
	fmt.Fprintln(w, "  w3cash key derive --from <name> --role <role> [--force]")
	fmt.Fprintln(w, "  w3cash key list")
	fmt.Fprintln(w, "  w3cash key export --name <name> [--role <role>]")
	fmt.Fprintln(w, "  w3cash encode --workflow <file.toml> [--cursor <n>]")
	fmt.Fprintln(w, "  w3cash sign --workflow <file.toml> --signer <name> [--role <role>] [--cursor <n>] [--out <file>]")
	fmt.Fprintln(w, "  w3cash execute --addr <host:port> --in <signed.hex>")
	fmt.Fprintln(w, "  w3cash estimate-fee --addr <host:port> --transport <id> --domain-index <i> [--value <v>] [--gas <g>]")
	fmt.Fprintln(w, "  w3cash admin <set-provider|freeze-provider|set-domain|freeze-domain|get-provider|get-domain|owner|transfer-ownership> [flags]")
	fmt.Fprintln(w, "  w3cash endpoint --addr <host:port> --caller <addr> --endpoint <hash> [--allow=false]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - --seed-hex must be 32 bytes (64 hex chars) ed25519 seed")
	fmt.Fprintln(w, "  - keys are stored under ~/.w3cash/keys/<name> (0600 private key files)")
	fmt.Fprintln(w, "  - the signature covers the workflow payload only; the cursor is caller-chosen")
}
