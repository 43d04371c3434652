package nginx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ksyq12/makessl/internal/config"
	"github.com/ksyq12/makessl/internal/errors"
	"github.com/ksyq12/makessl/internal/logger"
)

// ChallengeMarker is the substring whose presence in a configuration
// file means the ACME challenge location has already been added.
const ChallengeMarker = "/.well-known/acme-challenge"

// Scanner lists nginx configuration files in a single directory.
type Scanner struct {
	ConfDir string
}

// NewScanner creates a Scanner for the given configuration directory.
func NewScanner(confDir string) *Scanner {
	return &Scanner{ConfDir: confDir}
}

// Scan returns the paths of all regular files in the configuration
// directory. The directory must exist; the error message points at the
// NGINX_CONF override since a wrong default is the usual cause.
func (s *Scanner) Scan() ([]string, error) {
	entries, err := os.ReadDir(s.ConfDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(
				fmt.Sprintf("could not locate nginx conf dir (provide the correct location or set %s=<dir>)", config.EnvNginxConf),
				s.ConfDir)
		}
		return nil, fmt.Errorf("failed to read nginx conf dir %s: %w", s.ConfDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(s.ConfDir, entry.Name()))
	}

	logger.Debug("found %d configuration files in %s", len(files), s.ConfDir)
	return files, nil
}

// Unmodified returns the configuration files that do not yet contain
// the challenge marker and therefore still require modification.
func (s *Scanner) Unmodified() ([]string, error) {
	files, err := s.Scan()
	if err != nil {
		return nil, err
	}

	var pending []string
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if strings.Contains(string(data), ChallengeMarker) {
			logger.Debug("already found acme-challenge in %s, skipping", filepath.Base(path))
			continue
		}
		pending = append(pending, path)
	}
	return pending, nil
}
