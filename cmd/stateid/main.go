// Command stateid checks state identifiers against the jurisdiction catalog
// and serves the verify HTTP module.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code:
// 0 on success, 1 when the command ran but failed, 2 on usage errors.
func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "check":
		return cmdCheck(args[1:], out, errOut)
	case "list":
		return cmdList(args[1:], out, errOut)
	case "serve":
		return cmdServe(args[1:], out, errOut)
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
	fmt.Fprintln(w, "stateid: state identifier format checks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  stateid check [-json] <jurisdiction> <id>")
	fmt.Fprintln(w, "  stateid list [-format text|json|yaml]")
	fmt.Fprintln(w, "  stateid serve [-addr <host:port>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - check exits 0 for a valid id and 1 otherwise")
	fmt.Fprintln(w, "  - an empty jurisdiction (\"\") accepts any non-blank id")
	fmt.Fprintln(w, "  - serve reads APP_ENV, APP_NAME, LOG_LEVEL, LOG_FORMAT and HTTP_* from the environment or .env")
}
