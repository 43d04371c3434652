// Package script builds the issuance tool's argument list and
// generates the renewal shell script that re-runs it.
package script

import (
	"fmt"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/ksyq12/makessl/internal/config"
	"github.com/ksyq12/makessl/internal/errors"
	"github.com/ksyq12/makessl/internal/logger"
)

// Args builds the issuance tool argument list: optional --email, the
// fixed output-file flags, then one challenge-directory argument per
// domain in input order.
func Args(email string, domains []string, challengeDir string) []string {
	var args []string
	if email != "" {
		args = append(args, "--email", email)
	}
	args = append(args, "-f", config.FullchainFile, "-f", config.KeyFile)
	for _, domain := range domains {
		args = append(args, "-d", fmt.Sprintf("%s:%s", strings.TrimSpace(domain), challengeDir))
	}
	return args
}

// Render produces the renewal script: a bash script that enters the
// certificate directory and re-runs the issuance command. Arguments
// are shell-quoted and continued across lines for readability.
func Render(tool, certsDir string, args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = shellquote.Join(arg)
	}

	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	fmt.Fprintf(&b, "cd %s\n", shellquote.Join(certsDir))
	fmt.Fprintf(&b, "%s %s\n", tool, strings.Join(quoted, " \\\n  "))
	return b.String()
}

// Write saves the script at path with execute permissions. When the
// target exists and overwrite is false, the existing file is left
// byte-for-byte untouched and a conflict error is returned.
func Write(path, content string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return errors.Conflict(path)
		}
		logger.Info("overwriting existing renewal script at %s", path)
	}

	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		return fmt.Errorf("failed to write renewal script: %w", err)
	}
	return nil
}
