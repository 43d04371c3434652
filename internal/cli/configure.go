package cli

import (
	"os"
	"path/filepath"

	"github.com/ksyq12/makessl/internal/config"
	"github.com/ksyq12/makessl/internal/errors"
	"github.com/ksyq12/makessl/internal/output"
	"github.com/ksyq12/makessl/internal/template"
	"github.com/spf13/cobra"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Print the SSL configuration for your nginx server blocks",
	Long: `Check that the certificate artifacts exist and print the TLS
configuration block to add to each server listening on port 443.
nginx configuration is never edited automatically.

The artifact check is skipped with --yes.

Examples:
  makessl configure
  makessl configure --yes`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	env, err := newCmdEnv()
	if err != nil {
		return err
	}
	return reportSSLConfig(env, yesFlag)
}

// reportSSLConfig verifies the expected certificate artifacts exist
// (unless skipped) and prints the TLS block referencing them.
func reportSSLConfig(env *cmdEnv, skipCheck bool) error {
	if !skipCheck {
		for _, name := range []string{config.FullchainFile, config.KeyFile} {
			path := filepath.Join(env.paths.CertsDir, name)
			if _, err := os.Stat(path); err != nil {
				return errors.Precondition(
					"certificate artifacts not found; run `makessl issue` first (or follow the interactive guide in the main command)",
					path)
			}
		}
	}

	block, err := template.SSLBlock(env.paths.CertsDir)
	if err != nil {
		return err
	}

	output.Print("Now that you have obtained the certificates, update each server configuration with the following section:")
	output.Block(block)
	return nil
}
