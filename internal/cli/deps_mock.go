package cli

import (
	"github.com/ksyq12/makessl/internal/config"
	"github.com/ksyq12/makessl/internal/verify"
)

// MockConfigLoader is a test double for ConfigLoader
type MockConfigLoader struct {
	Cfg       *config.Config
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func (m *MockConfigLoader) Load() (*config.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg == nil {
		m.Cfg = config.New()
	}
	return m.Cfg, nil
}

func (m *MockConfigLoader) Save(cfg *config.Config) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Cfg = cfg
	return nil
}

// MockPathsProvider is a test double for PathsProvider
type MockPathsProvider struct {
	Paths *config.Paths
	Err   error
}

func (m *MockPathsProvider) DefaultPaths() (*config.Paths, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Paths != nil {
		// Copy so command-level overrides don't leak between tests.
		paths := *m.Paths
		return &paths, nil
	}
	return config.PathsIn("/home/op"), nil
}

// MockChecker is a test double for DomainChecker
type MockChecker struct {
	Failures []verify.Failure
	Err      error
	Checked  [][]string
}

func (m *MockChecker) Check(domains []string) ([]verify.Failure, error) {
	m.Checked = append(m.Checked, domains)
	return m.Failures, m.Err
}
