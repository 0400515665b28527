// Command schemaast loads a JSON Schema document and dumps the AST the
// root package's Translate produces for it. It is a thin driver over
// loader+Translate; it does not resolve $ref and does not emit
// target-language source — both remain out of scope (see the root
// package's doc comment).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"

	"github.com/corebridge/schemaast"
	"github.com/corebridge/schemaast/loader"
	"github.com/corebridge/schemaast/schema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "translate":
		translateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `schemaast CLI

Usage:
  schemaast translate -in schema.json|schema.yaml [-unknown-any] [-unreachable-defs] [-out out.json]

Notes:
  - Does not resolve $ref; an unresolved $ref in the input is a fatal
    translation error, not a CLI error.
  - Does not emit target-language source; the output is the AST itself.`)
}

func translateCmd(args []string) {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	var (
		in              string
		out             string
		unknownAny      bool
		unreachableDefs bool
	)
	fs.StringVar(&in, "in", "", "input schema file (.json or .yaml/.yml)")
	fs.StringVar(&out, "out", "", "output file for the dumped AST (default: stdout)")
	fs.BoolVar(&unknownAny, "unknown-any", false, "replace the ANY sentinel with UNKNOWN throughout")
	fs.BoolVar(&unreachableDefs, "unreachable-defs", false, "turn each definitions entry into an interface param")
	_ = fs.Parse(args)

	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(in)
	if err != nil {
		fatalf("reading %s: %v", in, err)
	}

	root, diag, err := loadByExtension(in, data)
	if err != nil {
		fatalf("loading %s: %v", in, err)
	}
	for _, w := range diag.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	tree, err := schemaast.Translate(root, schemaast.Options{
		UnknownAny:             unknownAny,
		UnreachableDefinitions: unreachableDefs,
	})
	if err != nil {
		if iss, ok := schemaast.AsIssues(err); ok {
			for _, it := range iss {
				fmt.Fprintf(os.Stderr, "error: %s at %s: %s\n", it.Code, it.Path, it.Message)
			}
		}
		os.Exit(1)
	}

	encoded, err := j.MarshalIndent(dump(tree), "", "  ")
	if err != nil {
		fatalf("encoding AST: %v", err)
	}

	if out == "" {
		os.Stdout.Write(encoded)
		os.Stdout.Write([]byte("\n"))
		return
	}
	if err := os.WriteFile(out, append(encoded, '\n'), 0o644); err != nil {
		fatalf("writing %s: %v", out, err)
	}
}

// loadByExtension dispatches on the input file's extension, falling back
// to loader.Load's content-sniffing for an unrecognized one.
func loadByExtension(path string, data []byte) (*schema.Schema, loader.Diag, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loader.LoadYAML(data)
	case ".json":
		return loader.LoadJSON(data)
	default:
		return loader.Load(data)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
