// Command surfacectl inspects, validates and converts Surface documents.
//
// Usage:
//
//	surfacectl components
//	surfacectl schema [Component]
//	surfacectl validate [file|-]
//	surfacectl ensure [file|-]
//	surfacectl fmt --to yaml [file|-]
//	surfacectl query '$..props.label' [file|-]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
