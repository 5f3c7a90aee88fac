// Package main provides the vibex symbolic algebra engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/dschwen/vibex/term"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("vibex %s\n", version)
	case "canon":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: vibex canon <expr-file>")
			os.Exit(1)
		}
		if err := runCanon(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "vibex: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
	}
}

func usage() {
	fmt.Println("vibex - symbolic algebra and autodiff engine")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version              Show version")
	fmt.Println("  canon <expr-file>    Print the normalized canonical string for an s-expression")
}

func runCanon(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	g, err := term.ParseSExpr(string(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	normalized := term.Normalize(g)
	fmt.Println(normalized.Canonical(normalized.Root()))
	return nil
}
