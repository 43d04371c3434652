package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvNginxConf is the environment variable overriding the nginx
// configuration directory.
const EnvNginxConf = "NGINX_CONF"

// DefaultNginxDir is the built-in nginx configuration directory.
const DefaultNginxDir = "/etc/nginx/conf.d"

// DefaultTool is the external certificate issuance tool.
const DefaultTool = "simp_le"

// Certificate artifact names produced by the issuance tool.
const (
	FullchainFile = "fullchain.pem"
	KeyFile       = "key.pem"
)

// configDir is the default config directory
const configDir = ".config/makessl"
const configFile = "config.yaml"

// Paths collects every filesystem location the setup pipeline works
// with. Constructed once at startup and passed into components, so
// tests can point everything at a temporary directory.
type Paths struct {
	NginxDir     string // nginx configuration directory to scan
	CertsDir     string // where the issuance tool writes certificates
	ChallengeDir string // webroot served under the ACME challenge path
	ScriptPath   string // default renewal script location
}

// DefaultPaths returns the home-derived default paths.
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return PathsIn(home), nil
}

// PathsIn returns the default paths rooted at the given home
// directory. Split out from DefaultPaths for testing.
func PathsIn(home string) *Paths {
	base := filepath.Join(home, "letsencrypt")
	return &Paths{
		NginxDir:     DefaultNginxDir,
		CertsDir:     filepath.Join(base, "certs"),
		ChallengeDir: filepath.Join(base, "challenge"),
		ScriptPath:   filepath.Join(home, "renew_script.sh"),
	}
}

// Config represents the persisted application configuration.
type Config struct {
	Email    string `yaml:"email,omitempty"`
	NginxDir string `yaml:"nginx_dir,omitempty"`
	Tool     string `yaml:"tool,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Tool: DefaultTool,
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// ConfigPath returns the config file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the config from disk.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from the given path. A missing file yields
// the default config.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Tool == "" {
		cfg.Tool = DefaultTool
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to the given path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ResolveNginxDir returns the nginx configuration directory in
// precedence order: NGINX_CONF environment variable, saved
// configuration, built-in default. Flags override all of these at the
// CLI layer.
func (c *Config) ResolveNginxDir() string {
	if dir := os.Getenv(EnvNginxConf); dir != "" {
		return dir
	}
	if c.NginxDir != "" {
		return c.NginxDir
	}
	return DefaultNginxDir
}
