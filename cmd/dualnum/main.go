// Package main provides the dualnum CLI: evaluate the reference expression
// with exact derivatives and cross-check the engine against finite
// differences.
package main

import (
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
