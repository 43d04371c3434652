package script

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ksyq12/makessl/internal/errors"
)

func TestArgs(t *testing.T) {
	t.Run("email and domains in order", func(t *testing.T) {
		got := Args("admin@example.com", []string{"a", "b"}, "/home/op/letsencrypt/challenge")
		want := []string{
			"--email", "admin@example.com",
			"-f", "fullchain.pem",
			"-f", "key.pem",
			"-d", "a:/home/op/letsencrypt/challenge",
			"-d", "b:/home/op/letsencrypt/challenge",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Args = %v, want %v", got, want)
		}
	})

	t.Run("empty email omits flag", func(t *testing.T) {
		got := Args("", []string{"example.com"}, "/c")
		if got[0] != "-f" {
			t.Errorf("expected output flags first without email, got %v", got)
		}
		for _, arg := range got {
			if arg == "--email" {
				t.Error("--email must be omitted when email is empty")
			}
		}
	})

	t.Run("no domains yields fixed flags only", func(t *testing.T) {
		got := Args("", nil, "/c")
		want := []string{"-f", "fullchain.pem", "-f", "key.pem"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Args = %v, want %v", got, want)
		}
	})
}

func TestRender(t *testing.T) {
	content := Render("simp_le", "/home/op/letsencrypt/certs",
		Args("admin@example.com", []string{"example.com"}, "/home/op/letsencrypt/challenge"))

	if !strings.HasPrefix(content, "#!/bin/bash\n") {
		t.Errorf("script must start with a shebang, got %q", content)
	}
	if !strings.Contains(content, "cd /home/op/letsencrypt/certs\n") {
		t.Errorf("script must enter the certs dir, got %q", content)
	}
	if !strings.Contains(content, "simp_le ") {
		t.Errorf("script must invoke the tool, got %q", content)
	}
	if !strings.Contains(content, "-d \\\n  example.com:/home/op/letsencrypt/challenge") {
		t.Errorf("arguments should continue across lines, got %q", content)
	}
}

func TestRenderQuotesArguments(t *testing.T) {
	content := Render("simp_le", "/home/op/my certs", Args("a b@example.com", nil, "/c"))

	if !strings.Contains(content, "cd '/home/op/my certs'") {
		t.Errorf("certs dir with spaces must be quoted, got %q", content)
	}
	if !strings.Contains(content, "'a b@example.com'") {
		t.Errorf("email with spaces must be quoted, got %q", content)
	}
}

func TestWrite(t *testing.T) {
	t.Run("writes executable script", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "renew_script.sh")

		if err := Write(path, "#!/bin/bash\n", false); err != nil {
			t.Fatalf("Write failed: %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm()&0100 == 0 {
			t.Errorf("script should be executable, mode %v", info.Mode())
		}
	})

	t.Run("declined overwrite leaves file untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "renew_script.sh")
		original := "#!/bin/bash\necho original\n"
		if err := os.WriteFile(path, []byte(original), 0755); err != nil {
			t.Fatal(err)
		}

		err := Write(path, "#!/bin/bash\necho replacement\n", false)
		if !errors.Is(err, errors.ErrScriptExists) {
			t.Fatalf("expected CONFLICT error, got %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != original {
			t.Error("existing script must remain byte-for-byte unchanged")
		}
	})

	t.Run("overwrite replaces content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "renew_script.sh")
		if err := os.WriteFile(path, []byte("old"), 0755); err != nil {
			t.Fatal(err)
		}

		if err := Write(path, "new", true); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		data, _ := os.ReadFile(path)
		if string(data) != "new" {
			t.Errorf("expected replaced content, got %q", string(data))
		}
	})
}
