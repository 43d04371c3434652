package nginx

import (
	"bufio"
	"os"
	"sort"
	"strings"

	"github.com/ksyq12/makessl/internal/errors"
	"github.com/ksyq12/makessl/internal/logger"
)

// serverNameDirective declares the hostnames a server block answers to.
const serverNameDirective = "server_name"

// Domains extracts the hostnames declared by server_name directives in
// the given configuration files. The result is the sorted set of
// unique hostnames with trailing statement terminators trimmed,
// independent of file order. A directive line with no hostname is a
// validation error naming the offending file.
func Domains(files []string) ([]string, error) {
	seen := make(map[string]struct{})

	for _, path := range files {
		if err := collectDomains(path, seen); err != nil {
			return nil, err
		}
	}

	domains := make([]string, 0, len(seen))
	for d := range seen {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	logger.DebugFields("domains extracted", map[string]interface{}{
		"files":   len(files),
		"domains": len(domains),
	})
	return domains, nil
}

func collectDomains(path string, seen map[string]struct{}) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.NotFound("failed to open configuration file", path)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, serverNameDirective) {
			continue
		}

		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) < 2 {
			return errors.Validation("invalid server_name directive", path)
		}
		for _, name := range parts[1:] {
			name = strings.Trim(name, ";")
			if name == "" {
				continue
			}
			seen[name] = struct{}{}
		}
	}
	return scanner.Err()
}
