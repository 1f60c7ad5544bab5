// Copyright (c) 2026 townsend2010
// sshpki - SSH public key infrastructure
// This source code is licensed under the MIT license found in the LICENSE file.

// Package main builds the sshpki binary from cmd/, mirroring the root
// entrypoint for installs via go install ./cmd/sshpki.
package main

import (
	"log"
	"os"

	"github.com/townsend2010/sshpki/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("sshpki CLI error: %v", err)
		os.Exit(1)
	}
}
