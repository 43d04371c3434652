package cli

import (
	"github.com/ksyq12/makessl/internal/errors"
	"github.com/ksyq12/makessl/internal/nginx"
	"github.com/ksyq12/makessl/internal/output"
	"github.com/ksyq12/makessl/internal/template"
	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Find nginx configuration files needing the challenge section",
	Long: `Find nginx configuration files and guide you through adding the ACME
challenge location to them. Files already containing the challenge
section are reported as done.

Examples:
  makessl files
  makessl files --nginx-dir /opt/nginx/conf.d
  makessl files --yes --json`,
	RunE: runFiles,
}

func init() {
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	env, err := newCmdEnv()
	if err != nil {
		return err
	}

	files, err := discoverFiles(env)
	if err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"success": true,
			"files":   files,
		})
	}
	return nil
}

// discoverFiles walks the operator through modifying nginx config
// files: it lists the candidates, prints the challenge snippet to add,
// and rescans until every file carries the marker or the operator
// skips the rest. Returns the files that do carry the marker.
func discoverFiles(env *cmdEnv) ([]string, error) {
	scanner := nginx.NewScanner(env.paths.NginxDir)

	all, err := scanner.Scan()
	if err != nil {
		return nil, err
	}

	block, err := template.ChallengeBlock(env.paths.ChallengeDir)
	if err != nil {
		return nil, err
	}

	output.Print("First, you need to modify some/all of these nginx config files:\n")
	output.List(all)
	output.Print("\nAdd the next part to a file's `server` section:\n")
	output.Block(block)
	env.prompter.Pause("Press Enter when done...")

	var pending []string
	for {
		pending, err = scanner.Unmodified()
		if err != nil {
			return nil, err
		}
		if len(pending) == 0 {
			output.Success("All configuration files contain the challenge section")
			break
		}

		output.Warn("You have yet to modify the following files:")
		output.List(pending)

		choice := env.prompter.Choose("Do you want to skip these files?",
			[]string{"yes", "rescan", "quit"}, "yes")
		if choice == "yes" {
			break
		}
		if choice == "quit" {
			output.Print("Please run me again to start over")
			return nil, errors.ErrAborted
		}
		// rescan
	}

	output.Print("You should now restart/reload your nginx server.")
	env.prompter.Pause("Press Enter when done...")

	return difference(all, pending), nil
}
