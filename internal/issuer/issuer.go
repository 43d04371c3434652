// Package issuer invokes the external certificate issuance tool. All
// ACME protocol handling (negotiation, retries, rate limits) belongs
// to the tool; this package only prepares the certificate directory
// and the argument list.
package issuer

import (
	"fmt"
	"os"

	"github.com/ksyq12/makessl/internal/errors"
	"github.com/ksyq12/makessl/internal/executor"
	"github.com/ksyq12/makessl/internal/logger"
)

// Issuer runs the issuance tool inside the certificate directory.
type Issuer struct {
	Tool     string
	CertsDir string
	exec     executor.CommandExecutor
}

// New creates an Issuer for the given tool and certificate directory.
func New(tool, certsDir string, exec executor.CommandExecutor) *Issuer {
	return &Issuer{Tool: tool, CertsDir: certsDir, exec: exec}
}

// IsInstalled reports whether the issuance tool is on PATH.
func (i *Issuer) IsInstalled() bool {
	_, err := i.exec.LookPath(i.Tool)
	return err == nil
}

// Run ensures the certificate directory exists and invokes the tool
// there with the given arguments. The tool writes keys to its working
// directory, which is why the directory changes before invocation.
// With debug set, -vv is appended.
func (i *Issuer) Run(args []string, debug bool) error {
	if !i.IsInstalled() {
		return errors.NotFound(
			fmt.Sprintf("issuance tool %s is not installed (pip install %s)", i.Tool, i.Tool),
			i.Tool)
	}

	if err := os.MkdirAll(i.CertsDir, 0755); err != nil {
		return fmt.Errorf("failed to create certs dir %s: %w", i.CertsDir, err)
	}

	if debug {
		args = append(args, "-vv")
	}
	logger.DebugFields("running issuance tool", map[string]interface{}{
		"tool": i.Tool,
		"dir":  i.CertsDir,
		"args": fmt.Sprintf("%v", args),
	})

	if err := i.exec.ExecuteInteractive(i.CertsDir, i.Tool, args...); err != nil {
		return errors.Wrap(errors.ErrCodeExec, fmt.Sprintf("%s failed", i.Tool), err)
	}
	return nil
}
