package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrymomot/stateid/pkg/stateid"
)

type checkOutput struct {
	Valid        bool         `json:"valid"`
	Kind         stateid.Kind `json:"kind"`
	Jurisdiction string       `json:"jurisdiction"`
	Synopsis     string       `json:"synopsis,omitempty"`
	Message      string       `json:"message,omitempty"`
}

func cmdCheck(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(errOut)
	asJSON := fs.Bool("json", false, "print the verdict as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(errOut, "check requires <jurisdiction> <id>")
		return 2
	}

	v := stateid.Validate(fs.Arg(0), fs.Arg(1))

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(checkOutput{
			Valid:        v.Valid(),
			Kind:         v.Kind,
			Jurisdiction: v.Code,
			Synopsis:     v.Synopsis,
			Message:      v.Message,
		}); err != nil {
			fmt.Fprintf(errOut, "encode verdict: %v\n", err)
			return 1
		}
	} else if v.Valid() {
		fmt.Fprintln(out, "valid")
	} else {
		fmt.Fprintln(out, v.Message)
	}

	if !v.Valid() {
		return 1
	}
	return 0
}
