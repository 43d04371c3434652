package cli

import (
	"github.com/ksyq12/makessl/internal/config"
	"github.com/ksyq12/makessl/internal/executor"
	"github.com/ksyq12/makessl/internal/input"
	"github.com/ksyq12/makessl/internal/verify"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	ConfigLoader  ConfigLoader
	PathsProvider PathsProvider
	Executor      executor.CommandExecutor
	StdinReader   input.Reader
	Checker       DomainChecker
}

// ConfigLoader handles configuration loading and saving
type ConfigLoader interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
}

// PathsProvider resolves the home-derived filesystem locations
type PathsProvider interface {
	DefaultPaths() (*config.Paths, error)
}

// DomainChecker verifies challenge-path reachability for domains
type DomainChecker interface {
	Check(domains []string) ([]verify.Failure, error)
}

// Package-level dependencies (can be overridden for testing)
var deps = defaultDeps()

func defaultDeps() *Dependencies {
	return &Dependencies{
		ConfigLoader:  &realConfigLoader{},
		PathsProvider: &realPathsProvider{},
		Executor:      executor.NewSystemExecutor(),
		StdinReader:   input.NewStdinReader(),
		Checker:       verify.NewChecker(verify.DefaultTimeout),
	}
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// ResetDeps restores the default dependencies (for testing)
func ResetDeps() {
	deps = defaultDeps()
}

// Real implementations that delegate to existing functions

type realConfigLoader struct{}

func (r *realConfigLoader) Load() (*config.Config, error) {
	return config.Load()
}

func (r *realConfigLoader) Save(cfg *config.Config) error {
	return cfg.Save()
}

type realPathsProvider struct{}

func (r *realPathsProvider) DefaultPaths() (*config.Paths, error) {
	return config.DefaultPaths()
}
