package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestSetupErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *SetupError
		want string
	}{
		{
			name: "message only",
			err:  &SetupError{Code: ErrCodeValidation, Message: "invalid directive"},
			want: "invalid directive",
		},
		{
			name: "with path",
			err:  &SetupError{Code: ErrCodeNotFound, Message: "nginx conf dir not found", Path: "/etc/nginx/conf.d"},
			want: "nginx conf dir not found: /etc/nginx/conf.d",
		},
		{
			name: "with domain",
			err:  &SetupError{Code: ErrCodeVerification, Message: "unexpected status 200", Domain: "example.com"},
			want: "example.com: unexpected status 200",
		},
		{
			name: "with wrapped error",
			err:  &SetupError{Code: ErrCodeExec, Message: "issuance tool failed", Err: fmt.Errorf("exit status 1")},
			want: "issuance tool failed: exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetupErrorIs(t *testing.T) {
	t.Run("matches sentinel by code", func(t *testing.T) {
		err := Conflict("/home/op/renew_script.sh")
		if !Is(err, ErrScriptExists) {
			t.Error("Conflict error should match ErrScriptExists")
		}
	})

	t.Run("different codes do not match", func(t *testing.T) {
		err := NotFound("nginx conf dir not found", "/etc/nginx/conf.d")
		if Is(err, ErrScriptExists) {
			t.Error("NotFound error should not match ErrScriptExists")
		}
	})

	t.Run("non-setup error does not match", func(t *testing.T) {
		err := fmt.Errorf("plain error")
		if Is(err, ErrCertsMissing) {
			t.Error("plain error should not match a sentinel")
		}
	})
}

func TestSetupErrorAs(t *testing.T) {
	err := Validation("invalid server_name directive", "/etc/nginx/conf.d/site.conf")

	var setupErr *SetupError
	if !As(err, &setupErr) {
		t.Fatal("As should extract *SetupError")
	}
	if setupErr.Code != ErrCodeValidation {
		t.Errorf("expected code %s, got %s", ErrCodeValidation, setupErr.Code)
	}
	if setupErr.Path != "/etc/nginx/conf.d/site.conf" {
		t.Errorf("unexpected path: %s", setupErr.Path)
	}
}

func TestWrapPreservesChain(t *testing.T) {
	cause := fmt.Errorf("exec format error")
	err := Wrap(ErrCodeExec, "issuance tool failed", cause)

	var setupErr *SetupError
	if !As(err, &setupErr) {
		t.Fatal("As should extract *SetupError")
	}
	if setupErr.Unwrap() != cause {
		t.Error("Unwrap should return the wrapped cause")
	}
	if !Is(err, cause) {
		t.Error("Is should find the cause in the chain")
	}
}

func TestVerificationMessage(t *testing.T) {
	msg := strings.Join([]string{
		"http://a.example.com/letsencrypt/challenge/ returned 200",
		"http://b.example.com/letsencrypt/challenge/ returned 301",
	}, "\n")
	err := Verification(msg)

	if !strings.Contains(err.Error(), "a.example.com") || !strings.Contains(err.Error(), "301") {
		t.Errorf("aggregated message should list every offending pair, got %q", err.Error())
	}
}
