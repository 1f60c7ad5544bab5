// Copyright (c) 2026 townsend2010
// sshpki - SSH public key infrastructure
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for sshpki.
//
// Usage:
//
//	go run . [flags]
//	./sshpki [flags]
//
// This launches the sshpki CLI. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/townsend2010/sshpki/internal/cli"
)

// main is the entrypoint for the sshpki CLI.
func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("sshpki CLI error: %v", err)
		os.Exit(1)
	}
}
