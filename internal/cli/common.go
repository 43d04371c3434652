package cli

import (
	"github.com/ksyq12/makessl/internal/config"
	"github.com/ksyq12/makessl/internal/errors"
	"github.com/ksyq12/makessl/internal/input"
	"github.com/ksyq12/makessl/internal/output"
)

// cmdEnv bundles the resolved configuration, paths and prompter every
// command works with. Built once per invocation from flags, the saved
// config and the environment.
type cmdEnv struct {
	cfg      *config.Config
	paths    *config.Paths
	prompter *input.Prompter
	email    string
}

// newCmdEnv loads the saved configuration and resolves all paths.
// Flag values take precedence over the environment and the saved
// config.
func newCmdEnv() (*cmdEnv, error) {
	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, "failed to load config", err)
	}

	paths, err := deps.PathsProvider.DefaultPaths()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, "failed to resolve paths", err)
	}

	if nginxDir != "" {
		paths.NginxDir = nginxDir
	} else {
		paths.NginxDir = cfg.ResolveNginxDir()
	}

	resolvedEmail := email
	if resolvedEmail == "" {
		resolvedEmail = cfg.Email
	}

	return &cmdEnv{
		cfg:      cfg,
		paths:    paths,
		prompter: input.NewPrompter(deps.StdinReader, yesFlag),
		email:    resolvedEmail,
	}, nil
}

// promptEmail asks for the account email when neither the flag nor the
// saved config provided one. An empty answer keeps issuance
// unregistered, which the external tool accepts.
func (e *cmdEnv) promptEmail() {
	if e.email != "" {
		return
	}
	e.email = e.prompter.Line("Let's Encrypt account email (empty to skip)", "")
}

// saveConfig remembers the resolved email and nginx dir for the next
// run. Failures only warn: losing the convenience defaults must not
// fail a completed setup.
func (e *cmdEnv) saveConfig() {
	e.cfg.Email = e.email
	e.cfg.NginxDir = e.paths.NginxDir
	if err := deps.ConfigLoader.Save(e.cfg); err != nil {
		output.Warn("Failed to save config: %v", err)
	}
}

// outputResult handles JSON or human-readable output
func outputResult(data interface{}, successMsg string, args ...interface{}) error {
	if jsonOutput {
		return output.JSON(data)
	}
	output.Success(successMsg, args...)
	return nil
}

// difference returns the elements of all that are not in exclude,
// preserving the order of all.
func difference(all, exclude []string) []string {
	excluded := make(map[string]struct{}, len(exclude))
	for _, e := range exclude {
		excluded[e] = struct{}{}
	}

	var result []string
	for _, a := range all {
		if _, ok := excluded[a]; !ok {
			result = append(result, a)
		}
	}
	return result
}
