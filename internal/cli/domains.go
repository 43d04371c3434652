package cli

import (
	"github.com/ksyq12/makessl/internal/errors"
	"github.com/ksyq12/makessl/internal/nginx"
	"github.com/ksyq12/makessl/internal/output"
	"github.com/spf13/cobra"
)

var (
	domainFiles  []string
	domainList   []string
	alwaysVerify bool
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "Confirm the domains to secure and verify their challenge paths",
	Long: `Extract the server_name values from nginx configuration files, confirm
the resulting domain list and optionally verify that the challenge URL
of each domain returns 404 (the signal that the path is reachable but
not yet claimed).

Examples:
  makessl domains -f /etc/nginx/conf.d/site.conf
  makessl domains -d example.com -d www.example.com --verify
  makessl domains -f site.conf --yes --json`,
	RunE: runDomains,
}

func init() {
	domainsCmd.Flags().StringArrayVarP(&domainFiles, "file", "f", nil, "nginx configuration files to extract domains from")
	domainsCmd.Flags().StringArrayVarP(&domainList, "domain", "d", nil, "Explicit domain names (skips extraction)")
	domainsCmd.Flags().BoolVar(&alwaysVerify, "verify", false, "Verify challenge paths without prompting")

	rootCmd.AddCommand(domainsCmd)
}

func runDomains(cmd *cobra.Command, args []string) error {
	if len(domainFiles) == 0 && len(domainList) == 0 {
		return errors.Validation("either --file or --domain is required", "")
	}

	env, err := newCmdEnv()
	if err != nil {
		return err
	}

	domains, err := confirmDomains(env, domainFiles, domainList, alwaysVerify)
	if err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"success": true,
			"domains": domains,
		})
	}
	return nil
}

// confirmDomains merges explicit domains with the ones extracted from
// the given configuration files, asks the operator to confirm the list
// and, on request, verifies every domain's challenge path answers 404.
func confirmDomains(env *cmdEnv, files, explicit []string, forceVerify bool) ([]string, error) {
	domains := append([]string{}, explicit...)
	if len(files) > 0 {
		extracted, err := nginx.Domains(files)
		if err != nil {
			return nil, err
		}
		domains = append(domains, extracted...)
	}
	if len(domains) == 0 {
		return nil, errors.Validation("no domains found in the given configuration files", "")
	}

	output.Print("These are the domains we're securing today:")
	output.List(domains)

	choice := "verify"
	switch {
	case env.prompter.Yes:
		choice = "yes"
	case forceVerify:
		choice = "verify"
	default:
		choice = env.prompter.Choose("Is that correct?", []string{"yes", "no", "verify"}, "verify")
	}

	switch choice {
	case "no":
		output.Print("Go over your config and come run again (tip: run with `--domain` for specific domains)")
		return nil, errors.ErrAborted
	case "verify":
		output.Info("Verifying the domains are accessible...")
		if _, err := env.checker().Check(domains); err != nil {
			return nil, err
		}
		output.Success("Great!")
	}

	return domains, nil
}

// checker returns the configured reachability checker.
func (e *cmdEnv) checker() DomainChecker {
	return deps.Checker
}
