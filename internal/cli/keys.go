// Copyright (c) 2026 townsend2010
// sshpki - SSH public key infrastructure
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/townsend2010/sshpki/internal/crypto/provider"
	"github.com/townsend2010/sshpki/internal/i18n"
	"github.com/townsend2010/sshpki/internal/pki"
	"github.com/townsend2010/sshpki/internal/security"
)

// newPubkeyCmd derives the public half of a private key file and writes it
// as an OpenSSH one-line public key file.
func newPubkeyCmd() *cobra.Command {
	var identity string
	var output string
	var passphrase string

	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Derive and export the public key of a private key file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ident := identity
			if ident == "" {
				ident = appConfig.Identity
			}
			if ident == "" {
				return fmt.Errorf("no private key file given (use --identity)")
			}

			prov := provider.New()
			pass := security.FromString(passphrase)
			defer pass.Zero()

			var key *pki.Key
			err := pass.Use(func(b []byte) error {
				var ierr error
				key, ierr = pki.ImportPrivateKeyFile(prov, ident, b, promptPassphrase)
				return ierr
			})
			if err != nil {
				return fmt.Errorf("%s: %w", i18n.T("cli.error_import_private"), err)
			}
			defer key.Release()

			pub, err := pki.PublicKeyFromPrivate(key)
			if err != nil {
				return fmt.Errorf("%s: %w", i18n.T("cli.error_export_public"), err)
			}
			defer pub.Release()

			out := output
			if out == "" {
				out = ident + ".pub"
			}
			if err := pki.ExportPublicKeyFile(pub, out, nil); err != nil {
				return fmt.Errorf("%s: %w", i18n.T("cli.error_export_public"), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", i18n.T("cli.pubkey_written"), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&identity, "identity", "i", "", "private key file to read")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <identity>.pub)")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "passphrase for an encrypted private key")

	return cmd
}

// newInspectCmd reads an OpenSSH one-line public key file and prints its
// type and base64 payload.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <pubkey-file>",
		Short: "Show the type and payload of a public key file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prov := provider.New()
			key, err := pki.ImportPublicKeyFile(prov, args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", i18n.T("cli.error_import_public"), err)
			}
			defer key.Release()

			b64, err := pki.ExportPublicKeyBase64(key)
			if err != nil {
				return fmt.Errorf("%s: %w", i18n.T("cli.error_export_public"), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", i18n.T("cli.inspect_type"), key.TypeName())
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", i18n.T("cli.inspect_blob"), b64)
			return nil
		},
	}
}

// promptPassphrase is the interactive AuthCallback used when an encrypted
// key is imported without a passphrase flag.
func promptPassphrase(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)
	return term.ReadPassword(int(os.Stdin.Fd()))
}
