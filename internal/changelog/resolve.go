package changelog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/danielolaszy/jira-changelog/internal/logging"
)

// LookupError reports that the summary of a single issue could not be
// resolved: the issue does not exist, JIRA was unreachable, or the response
// could not be decoded.
type LookupError struct {
	Key IssueKey
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("failed to look up issue %s: %v", e.Key, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// IssueLookup fetches the summary of a JIRA issue.
type IssueLookup interface {
	GetIssueSummary(ctx context.Context, key string) (string, error)
}

// IssueLookupFunc adapts a function to the IssueLookup interface.
type IssueLookupFunc func(ctx context.Context, key string) (string, error)

// GetIssueSummary calls f(ctx, key).
func (f IssueLookupFunc) GetIssueSummary(ctx context.Context, key string) (string, error) {
	return f(ctx, key)
}

// Resolver turns issue keys into changelog lines.
type Resolver struct {
	// Lookup fetches issue summaries
	Lookup IssueLookup

	// Host is the JIRA host used to build browse links, e.g. "acme.atlassian.net"
	Host string

	// Fallback returns locally known text for a key whose lookup failed. May be nil.
	Fallback func(IssueKey) string
}

// Resolve looks up every distinct key concurrently and returns one line per
// key, in first-seen order. It waits for all lookups to finish. A failed
// lookup degrades its own line to "KEY: <fallback>" and never affects the
// other keys.
func (r *Resolver) Resolve(ctx context.Context, keys []IssueKey) []string {
	distinct := NewOrderedSet[IssueKey]()
	for _, key := range keys {
		distinct.Add(key)
	}

	lines := make([]string, distinct.Len())
	var g errgroup.Group
	for i, key := range distinct.Items() {
		i, key := i, key
		g.Go(func() error {
			lines[i] = r.resolveOne(ctx, key)
			return nil
		})
	}
	// Failed lookups are absorbed into their own line; Wait is only the join.
	_ = g.Wait()

	return lines
}

func (r *Resolver) resolveOne(ctx context.Context, key IssueKey) string {
	summary, err := r.Lookup.GetIssueSummary(ctx, string(key))
	if err != nil {
		var lookupErr *LookupError
		if !errors.As(err, &lookupErr) {
			lookupErr = &LookupError{Key: key, Err: err}
		}
		logging.Warn("falling back to commit messages for issue",
			"issue_key", key,
			"error", lookupErr)
		return r.degradedLine(key)
	}

	logging.Debug("resolved issue summary", "issue_key", key)
	return fmt.Sprintf(`<a href="%s">%s</a>: %s`, BrowseURL(r.Host, key), key, strings.TrimSpace(summary))
}

func (r *Resolver) degradedLine(key IssueKey) string {
	if r.Fallback == nil {
		return string(key)
	}
	text := strings.TrimSpace(r.Fallback(key))
	if text == "" {
		return string(key)
	}
	return fmt.Sprintf("%s: %s", key, text)
}

// HostURL normalizes a JIRA host into a base URL without a trailing slash.
// A host without a scheme is assumed to be served over https.
func HostURL(host string) string {
	base := strings.TrimRight(host, "/")
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	return base
}

// BrowseURL returns the JIRA page of an issue.
func BrowseURL(host string, key IssueKey) string {
	return fmt.Sprintf("%s/browse/%s", HostURL(host), key)
}
