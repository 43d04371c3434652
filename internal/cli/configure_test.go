package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ksyq12/makessl/internal/errors"
)

func writeCerts(t *testing.T, home string, names ...string) string {
	t.Helper()
	certsDir := filepath.Join(home, "letsencrypt", "certs")
	if err := os.MkdirAll(certsDir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(certsDir, name), []byte("pem"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return certsDir
}

func TestReportSSLConfig(t *testing.T) {
	t.Run("succeeds when artifacts exist", func(t *testing.T) {
		home := t.TempDir()
		writeCerts(t, home, "fullchain.pem", "key.pem")
		testSetup(t, home)

		if err := reportSSLConfig(newTestEnv(t), false); err != nil {
			t.Fatalf("reportSSLConfig failed: %v", err)
		}
	})

	t.Run("missing artifacts is a precondition error", func(t *testing.T) {
		home := t.TempDir()
		testSetup(t, home)

		err := reportSSLConfig(newTestEnv(t), false)
		if !errors.Is(err, errors.ErrCertsMissing) {
			t.Errorf("expected PRECONDITION error, got %v", err)
		}
	})

	t.Run("one artifact is not enough", func(t *testing.T) {
		home := t.TempDir()
		writeCerts(t, home, "fullchain.pem")
		testSetup(t, home)

		err := reportSSLConfig(newTestEnv(t), false)
		if !errors.Is(err, errors.ErrCertsMissing) {
			t.Errorf("expected PRECONDITION error, got %v", err)
		}
	})

	t.Run("skip check succeeds on empty dir", func(t *testing.T) {
		home := t.TempDir()
		testSetup(t, home)

		if err := reportSSLConfig(newTestEnv(t), true); err != nil {
			t.Fatalf("reportSSLConfig with skip failed: %v", err)
		}
	})
}
