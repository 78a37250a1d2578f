package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/stateid/pkg/stateid"
)

type listEntry struct {
	Code     string   `json:"code" yaml:"code"`
	Synopsis string   `json:"synopsis" yaml:"synopsis"`
	Patterns []string `json:"patterns" yaml:"patterns"`
}

func catalogEntries(c *stateid.Catalog) []listEntry {
	codes := c.Codes()
	entries := make([]listEntry, 0, len(codes))
	for _, code := range codes {
		f, _ := c.Lookup(code)
		patterns := make([]string, 0, len(f.Rules))
		for _, p := range f.Rules {
			patterns = append(patterns, p.String())
		}
		entries = append(entries, listEntry{Code: code, Synopsis: f.Synopsis, Patterns: patterns})
	}
	return entries
}

func cmdList(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(errOut)
	format := fs.String("format", "text", "output format: text, json or yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(errOut, "list takes no arguments")
		return 2
	}

	entries := catalogEntries(stateid.Default)

	switch *format {
	case "text":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\n", e.Code, e.Synopsis)
		}
		if err := tw.Flush(); err != nil {
			fmt.Fprintf(errOut, "write list: %v\n", err)
			return 1
		}
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			fmt.Fprintf(errOut, "encode list: %v\n", err)
			return 1
		}
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			fmt.Fprintf(errOut, "encode list: %v\n", err)
			return 1
		}
		if err := enc.Close(); err != nil {
			fmt.Fprintf(errOut, "encode list: %v\n", err)
			return 1
		}
	default:
		fmt.Fprintf(errOut, "unknown format %q: must be text, json or yaml\n", *format)
		return 2
	}
	return 0
}
