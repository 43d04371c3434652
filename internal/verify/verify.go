// Package verify performs best-effort reachability checks on domains
// before certificate issuance. Each domain's challenge URL must return
// 404 over plain HTTP, the signal that the path resolves to the right
// server but is not yet claimed.
package verify

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ksyq12/makessl/internal/errors"
	"github.com/ksyq12/makessl/internal/logger"
)

// ChallengePath is the URL path checked on every domain.
const ChallengePath = "/letsencrypt/challenge/"

// DefaultTimeout bounds each reachability request. Checks are a
// convenience, not a correctness gate, so the timeout is short.
const DefaultTimeout = 200 * time.Millisecond

// Failure records one domain that did not answer 404.
type Failure struct {
	Domain string `json:"domain"`
	Detail string `json:"detail"`
}

// Checker verifies that domains serve 404 on the challenge path.
type Checker struct {
	client *http.Client
}

// NewChecker creates a Checker with the given per-request timeout.
// Redirects are not followed: a redirect to HTTPS is itself a non-404
// answer worth reporting.
func NewChecker(timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Checker{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// NewCheckerWithClient creates a Checker over a caller-supplied HTTP
// client. Used by tests.
func NewCheckerWithClient(client *http.Client) *Checker {
	return &Checker{client: client}
}

// URL returns the challenge check URL for a domain.
func URL(domain string) string {
	return "http://" + domain + ChallengePath
}

// Check verifies every domain concurrently and aggregates failures.
// A nil error means all domains returned 404. Otherwise the returned
// failures list one entry per offending domain, sorted by domain, and
// the error message contains the same pairs verbatim.
func (c *Checker) Check(domains []string) ([]Failure, error) {
	var (
		mu       sync.Mutex
		failures []Failure
		wg       sync.WaitGroup
	)

	for _, domain := range domains {
		wg.Add(1)
		go func(domain string) {
			defer wg.Done()
			if detail := c.check(domain); detail != "" {
				mu.Lock()
				failures = append(failures, Failure{Domain: domain, Detail: detail})
				mu.Unlock()
			}
		}(domain)
	}
	wg.Wait()

	if len(failures) == 0 {
		return nil, nil
	}

	sort.Slice(failures, func(i, j int) bool {
		return failures[i].Domain < failures[j].Domain
	})

	lines := make([]string, len(failures))
	for i, f := range failures {
		lines[i] = fmt.Sprintf("%s %s", URL(f.Domain), f.Detail)
	}
	return failures, errors.Verification("errors found:\n" + strings.Join(lines, "\n"))
}

// check returns an empty string when the domain answers 404, otherwise
// a description of what went wrong.
func (c *Checker) check(domain string) string {
	resp, err := c.client.Head(URL(domain))
	if err != nil {
		logger.Debug("check %s: %v", domain, err)
		return fmt.Sprintf("unreachable (%v)", err)
	}
	defer resp.Body.Close()

	logger.Debug("check %s: %d", domain, resp.StatusCode)
	if resp.StatusCode != http.StatusNotFound {
		return fmt.Sprintf("returned %d", resp.StatusCode)
	}
	return ""
}
