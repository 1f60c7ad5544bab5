// Copyright (c) 2026 townsend2010
// sshpki - SSH public key infrastructure
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for sshpki using the Cobra
// library. It defines the root command, subcommands, flags, and the entry
// point for execution.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/townsend2010/sshpki/internal/config"
	"github.com/townsend2010/sshpki/internal/i18n"
	"github.com/townsend2010/sshpki/internal/logging"
)

var version = "dev" // this will be set by the linker
var cfgFile string

var appConfig config.Config

// Execute runs the sshpki CLI.
func Execute() error {
	return newRootCmd().Execute()
}

// newRootCmd creates and configures a new root cobra command. Used for the
// real entry point and for fresh instances in isolated tests.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sshpki",
		Short: "sshpki manages SSH public key material.",
		Long: `sshpki imports, inspects and exports SSH keys in the RFC 4253
wire format and the OpenSSH one-line public key file format.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var explicit *string
			if cfgFile != "" {
				explicit = &cfgFile
			}
			defaults := map[string]any{
				"language": "en",
				"debug":    false,
				"identity": "",
			}
			c, err := config.LoadConfig[config.Config](cmd, defaults, explicit)
			if err != nil {
				return err
			}
			appConfig = c
			i18n.Init(appConfig.Language)
			logging.SetDebug(appConfig.Debug)
			return nil
		},
	}

	cmd.AddCommand(newPubkeyCmd())
	cmd.AddCommand(newInspectCmd())

	cmd.Version = version

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is sshpki.yaml in the user config dir)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("language", "en", `CLI language ("en", "de")`)

	return cmd
}
