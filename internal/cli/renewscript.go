package cli

import (
	"os"

	"github.com/ksyq12/makessl/internal/errors"
	"github.com/ksyq12/makessl/internal/output"
	"github.com/ksyq12/makessl/internal/script"
	"github.com/spf13/cobra"
)

var (
	renewDomains []string
	renewSaveTo  string
	renewDryRun  bool
)

var renewScriptCmd = &cobra.Command{
	Use:   "renew-script",
	Short: "Generate the certificate renewal script",
	Long: `Generate a shell script that re-runs the issuance command and stores
the certificates under the Let's Encrypt certs directory. Add it e.g.
as a monthly cronjob.

The script is saved to ~/renew_script.sh by default. An existing
script is only overwritten after confirmation (or with --yes).

Examples:
  makessl renew-script -d example.com -e admin@example.com
  makessl renew-script -d example.com -s /opt/cron/renew.sh --yes
  makessl renew-script -d example.com --dry-run`,
	RunE: runRenewScript,
}

func init() {
	renewScriptCmd.Flags().StringArrayVarP(&renewDomains, "domain", "d", nil, "Domain names to include (required)")
	renewScriptCmd.Flags().StringVarP(&renewSaveTo, "save-to", "s", "", "Where to save the renewal script (default: ~/renew_script.sh)")
	renewScriptCmd.Flags().BoolVar(&renewDryRun, "dry-run", false, "Print the script instead of writing it")

	rootCmd.AddCommand(renewScriptCmd)
}

func runRenewScript(cmd *cobra.Command, args []string) error {
	if len(renewDomains) == 0 {
		return errors.Validation("at least one --domain is required", "")
	}

	env, err := newCmdEnv()
	if err != nil {
		return err
	}
	env.promptEmail()

	return generateRenewScript(env, renewDomains, renewSaveTo, renewDryRun)
}

// generateRenewScript renders the renewal script for the given domains
// and writes it to saveTo (prompting for the location when empty). An
// existing file is preserved unless the operator confirms the
// overwrite.
func generateRenewScript(env *cmdEnv, domains []string, saveTo string, dryRun bool) error {
	if saveTo == "" {
		saveTo = env.prompter.Line("Save renewal script to", env.paths.ScriptPath)
	}

	args := script.Args(env.email, domains, env.paths.ChallengeDir)
	content := script.Render(env.cfg.Tool, env.paths.CertsDir, args)

	if dryRun {
		output.Block(content)
		return nil
	}

	overwrite := false
	if _, err := os.Stat(saveTo); err == nil {
		output.Warn("Renewal script already exists at %s", saveTo)
		if env.prompter.Yes {
			output.Info("Overwriting script without prompt... (--yes)")
			overwrite = true
		} else if env.prompter.Confirm("Do you want to overwrite?", false) {
			overwrite = true
		} else {
			return errors.Conflict(saveTo)
		}
	}

	if err := script.Write(saveTo, content, overwrite); err != nil {
		return err
	}

	return outputResult(map[string]interface{}{
		"success": true,
		"path":    saveTo,
		"domains": domains,
	}, "Generated renewal script at %s", saveTo)
}
