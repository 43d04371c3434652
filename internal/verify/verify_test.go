package verify

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ksyq12/makessl/internal/errors"
)

// serve starts a test server answering every request with status and
// returns its host:port, which doubles as the "domain" under check.
func serve(t *testing.T, status int) string {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD request, got %s", r.Method)
		}
		if r.URL.Path != ChallengePath {
			t.Errorf("expected path %s, got %s", ChallengePath, r.URL.Path)
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(ts.Close)
	return strings.TrimPrefix(ts.URL, "http://")
}

func TestCheckAllNotFound(t *testing.T) {
	domains := []string{serve(t, 404), serve(t, 404)}

	checker := NewCheckerWithClient(&http.Client{Timeout: time.Second})
	failures, err := checker.Check(domains)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if len(failures) != 0 {
		t.Errorf("expected zero failures, got %v", failures)
	}
}

func TestCheckAggregatesFailures(t *testing.T) {
	ok := serve(t, 404)
	claimed := serve(t, 200)
	redirected := serve(t, 301)

	failures, err := NewChecker(time.Second).Check([]string{ok, claimed, redirected})
	if err == nil {
		t.Fatal("expected aggregated verification error")
	}
	if !errors.Is(err, &errors.SetupError{Code: errors.ErrCodeVerification}) {
		t.Errorf("expected VERIFICATION error, got %v", err)
	}

	if len(failures) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(failures))
	}
	// Failures are sorted by domain.
	if failures[0].Domain > failures[1].Domain {
		t.Errorf("failures not sorted: %v", failures)
	}

	msg := err.Error()
	if !strings.Contains(msg, claimed) || !strings.Contains(msg, "returned 200") {
		t.Errorf("message should name the claimed domain and status, got %q", msg)
	}
	if !strings.Contains(msg, redirected) || !strings.Contains(msg, "returned 301") {
		t.Errorf("message should name the redirected domain and status, got %q", msg)
	}
	if strings.Contains(msg, ok+ChallengePath+" returned 404") {
		t.Errorf("healthy domain must not appear in the failure message: %q", msg)
	}
}

func TestCheckUnreachable(t *testing.T) {
	// Reserved TEST-NET address, nothing listens there.
	failures, err := NewChecker(50 * time.Millisecond).Check([]string{"192.0.2.1"})
	if err == nil {
		t.Fatal("expected error for unreachable domain")
	}
	if len(failures) != 1 || failures[0].Domain != "192.0.2.1" {
		t.Errorf("unexpected failures: %v", failures)
	}
	if !strings.Contains(failures[0].Detail, "unreachable") {
		t.Errorf("detail should mark transport failure, got %q", failures[0].Detail)
	}
}

func TestCheckEmptyDomainList(t *testing.T) {
	failures, err := NewChecker(time.Second).Check(nil)
	if err != nil || failures != nil {
		t.Errorf("empty list should verify trivially, got %v, %v", failures, err)
	}
}

func TestURL(t *testing.T) {
	if got := URL("example.com"); got != "http://example.com/letsencrypt/challenge/" {
		t.Errorf("URL = %q", got)
	}
}
