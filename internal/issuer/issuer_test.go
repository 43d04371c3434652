package issuer

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ksyq12/makessl/internal/errors"
	"github.com/ksyq12/makessl/internal/executor"
)

func TestIsInstalled(t *testing.T) {
	t.Run("tool on path", func(t *testing.T) {
		mock := &executor.MockExecutor{}
		if !New("simp_le", t.TempDir(), mock).IsInstalled() {
			t.Error("IsInstalled should return true")
		}
	})

	t.Run("tool missing", func(t *testing.T) {
		mock := &executor.MockExecutor{
			LookPathFunc: func(file string) (string, error) {
				return "", stderrors.New("not found")
			},
		}
		if New("simp_le", t.TempDir(), mock).IsInstalled() {
			t.Error("IsInstalled should return false")
		}
	})
}

func TestRun(t *testing.T) {
	t.Run("creates certs dir and runs tool there", func(t *testing.T) {
		certsDir := filepath.Join(t.TempDir(), "letsencrypt", "certs")
		mock := &executor.MockExecutor{}

		iss := New("simp_le", certsDir, mock)
		if err := iss.Run([]string{"-f", "fullchain.pem"}, false); err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		if _, err := os.Stat(certsDir); err != nil {
			t.Errorf("certs dir should exist: %v", err)
		}
		if len(mock.Calls) != 1 {
			t.Fatalf("expected 1 call, got %d", len(mock.Calls))
		}
		call := mock.Calls[0]
		if call.Dir != certsDir || call.Name != "simp_le" {
			t.Errorf("unexpected call: %+v", call)
		}
	})

	t.Run("existing certs dir is fine", func(t *testing.T) {
		certsDir := t.TempDir()
		iss := New("simp_le", certsDir, &executor.MockExecutor{})
		if err := iss.Run(nil, false); err != nil {
			t.Fatalf("Run failed on existing dir: %v", err)
		}
	})

	t.Run("debug appends -vv", func(t *testing.T) {
		mock := &executor.MockExecutor{}
		iss := New("simp_le", t.TempDir(), mock)
		if err := iss.Run([]string{"-f", "key.pem"}, true); err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		args := mock.Calls[0].Args
		if args[len(args)-1] != "-vv" {
			t.Errorf("expected -vv appended, got %v", args)
		}
	})

	t.Run("missing tool is a not-found error", func(t *testing.T) {
		mock := &executor.MockExecutor{
			LookPathFunc: func(file string) (string, error) {
				return "", stderrors.New("not found")
			},
		}
		err := New("simp_le", t.TempDir(), mock).Run(nil, false)
		if !errors.Is(err, &errors.SetupError{Code: errors.ErrCodeNotFound}) {
			t.Errorf("expected NOT_FOUND error, got %v", err)
		}
	})

	t.Run("tool failure wraps as exec error", func(t *testing.T) {
		cause := stderrors.New("exit status 1")
		mock := &executor.MockExecutor{
			InteractiveFunc: func(dir, name string, args ...string) error {
				return cause
			},
		}

		err := New("simp_le", t.TempDir(), mock).Run(nil, false)
		if !errors.Is(err, &errors.SetupError{Code: errors.ErrCodeExec}) {
			t.Errorf("expected EXEC error, got %v", err)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should remain in the chain")
		}
	})
}
