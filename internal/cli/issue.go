package cli

import (
	"github.com/ksyq12/makessl/internal/issuer"
	"github.com/ksyq12/makessl/internal/output"
	"github.com/ksyq12/makessl/internal/script"
	"github.com/spf13/cobra"
)

var (
	issueDomains []string
	issueDebug   bool
)

var issueCmd = &cobra.Command{
	Use:   "issue [-- tool-args...]",
	Short: "Run the certificate issuance tool",
	Long: `Run the external issuance tool to obtain the certificates. The certs
directory is created if needed and the tool runs inside it, since it
writes keys to its working directory.

With --domain flags the argument list is built the same way the
renewal script does it. Arguments after -- are passed to the tool
verbatim instead.

Examples:
  makessl issue -d example.com -e admin@example.com
  makessl issue --debug -- -f fullchain.pem -f key.pem -d example.com:/home/op/letsencrypt/challenge`,
	Args: cobra.ArbitraryArgs,
	RunE: runIssue,
}

func init() {
	issueCmd.Flags().StringArrayVarP(&issueDomains, "domain", "d", nil, "Domain names to obtain certificates for")
	issueCmd.Flags().BoolVar(&issueDebug, "debug", false, "Pass -vv to the issuance tool")

	rootCmd.AddCommand(issueCmd)
}

func runIssue(cmd *cobra.Command, args []string) error {
	env, err := newCmdEnv()
	if err != nil {
		return err
	}

	// Verbatim passthrough takes precedence over built arguments.
	if len(args) > 0 {
		iss := issuer.New(env.cfg.Tool, env.paths.CertsDir, deps.Executor)
		return iss.Run(args, issueDebug)
	}

	env.promptEmail()
	return runIssuance(env, issueDomains, issueDebug)
}

// runIssuance builds the issuance argument list for the given domains
// and runs the tool in the certs directory.
func runIssuance(env *cmdEnv, domains []string, debug bool) error {
	args := script.Args(env.email, domains, env.paths.ChallengeDir)

	iss := issuer.New(env.cfg.Tool, env.paths.CertsDir, deps.Executor)
	output.Info("Running %s in %s...", env.cfg.Tool, env.paths.CertsDir)
	if err := iss.Run(args, debug); err != nil {
		return err
	}

	return outputResult(map[string]interface{}{
		"success": true,
		"domains": domains,
		"certs":   env.paths.CertsDir,
	}, "Certificates obtained in %s", env.paths.CertsDir)
}
