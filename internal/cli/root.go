package cli

import (
	"os"

	"github.com/ksyq12/makessl/internal/logger"
	"github.com/ksyq12/makessl/internal/output"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool
	yesFlag    bool
	nginxDir   string
	email      string
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "makessl",
	Short: "Interactive Let's Encrypt SSL setup for nginx",
	Long: `makessl walks you through obtaining and installing a Let's Encrypt TLS
certificate for the domains served by your nginx configuration.

It finds your nginx configuration files, extracts the domains they
serve, verifies the ACME challenge paths are not yet claimed, generates
a renewal script and runs the external issuance tool. nginx
configuration is never edited: the required snippets are printed for
you to paste in yourself.

Run without a subcommand for the step-by-step interactive guide, or
invoke individual stages directly for scripted use.`,
	SilenceUsage: true,
	RunE:         runPipeline,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "Confirm all prompts with the default action")
	rootCmd.PersistentFlags().StringVar(&nginxDir, "nginx-dir", "", "Location of nginx configuration (default: $NGINX_CONF or /etc/nginx/conf.d)")
	rootCmd.PersistentFlags().StringVarP(&email, "email", "e", "", "Let's Encrypt account email")
}

// pipelineState carries each stage's output to the next one.
type pipelineState struct {
	env     *cmdEnv
	files   []string // configuration files carrying the challenge marker
	domains []string
	debug   bool
}

// stage is one fallible step of the interactive guide.
type stage struct {
	name string
	run  func(*pipelineState) error
}

// runPipeline executes the full interactive guide: discover files,
// confirm domains, generate the renewal script, run the issuance tool
// and print the final TLS configuration. The first failing stage stops
// the run; an operator abort at any prompt exits the same way.
func runPipeline(cmd *cobra.Command, args []string) error {
	env, err := newCmdEnv()
	if err != nil {
		return err
	}
	state := &pipelineState{env: env, debug: verbose}

	stages := []stage{
		{"Modify nginx configuration", stageFiles},
		{"Confirm domains", stageDomains},
		{"Generate renewal script", stageRenewScript},
		{"Obtain certificates", stageIssue},
		{"Configure SSL", stageConfigure},
	}

	for i, s := range stages {
		output.Step(i+1, "%s", s.name)
		if err := s.run(state); err != nil {
			return err
		}
	}

	env.saveConfig()
	return nil
}

func stageFiles(s *pipelineState) error {
	files, err := discoverFiles(s.env)
	if err != nil {
		return err
	}
	s.files = files
	return nil
}

func stageDomains(s *pipelineState) error {
	domains, err := confirmDomains(s.env, s.files, nil, false)
	if err != nil {
		return err
	}
	s.domains = domains
	return nil
}

func stageRenewScript(s *pipelineState) error {
	s.env.promptEmail()
	return generateRenewScript(s.env, s.domains, "", false)
}

func stageIssue(s *pipelineState) error {
	return runIssuance(s.env, s.domains, s.debug)
}

func stageConfigure(s *pipelineState) error {
	return reportSSLConfig(s.env, false)
}
