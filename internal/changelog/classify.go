package changelog

import (
	"strings"

	"github.com/danielolaszy/jira-changelog/internal/logging"
	"github.com/danielolaszy/jira-changelog/pkg/models"
)

// ClassifiedCommits holds the commits of a pull request split into three
// buckets. Every bucket keeps commit order and contains no duplicates.
type ClassifiedCommits struct {
	// IssueKeys are the distinct JIRA keys, in order of first appearance
	IssueKeys []IssueKey

	// MergeMessages are messages without a key that mention "merge"
	MergeMessages []string

	// OtherMessages are all remaining messages
	OtherMessages []string

	// KeyMessages lists, per key, the distinct messages that referenced it
	KeyMessages map[IssueKey][]string
}

// Classify splits commits into issue keys, merge messages and other messages.
// A commit lands in at most one bucket: the first issue key in its message
// wins, otherwise a case-insensitive "merge" sends it to the merge bucket.
// A message is listed in KeyMessages under every key it mentions.
func Classify(commits []models.CommitRecord) ClassifiedCommits {
	keys := NewOrderedSet[IssueKey]()
	merges := NewOrderedSet[string]()
	others := NewOrderedSet[string]()
	keyMessages := make(map[IssueKey]*OrderedSet[string])

	for _, commit := range commits {
		message := commit.Message

		if mentioned := ExtractIssueKeys(message); len(mentioned) > 0 {
			keys.Add(mentioned[0])
			for _, key := range mentioned {
				if keyMessages[key] == nil {
					keyMessages[key] = NewOrderedSet[string]()
				}
				keyMessages[key].Add(message)
			}
			continue
		}

		if strings.Contains(strings.ToLower(message), "merge") {
			merges.Add(message)
			continue
		}

		others.Add(message)
	}

	result := ClassifiedCommits{
		IssueKeys:     keys.Items(),
		MergeMessages: merges.Items(),
		OtherMessages: others.Items(),
		KeyMessages:   make(map[IssueKey][]string, len(keyMessages)),
	}
	for key, set := range keyMessages {
		// Keys only ever mentioned after another key get no line of their own.
		if keys.Contains(key) {
			result.KeyMessages[key] = set.Items()
		}
	}

	logging.Debug("classified commits",
		"commit_count", len(commits),
		"issue_keys", len(result.IssueKeys),
		"merge_messages", len(result.MergeMessages),
		"other_messages", len(result.OtherMessages))

	return result
}

// FallbackText returns the text used for a key whose summary could not be
// fetched: the first line of every commit message that referenced it, joined
// with "; ".
func (c ClassifiedCommits) FallbackText(key IssueKey) string {
	messages := c.KeyMessages[key]
	lines := make([]string, 0, len(messages))
	for _, message := range messages {
		line, _, _ := strings.Cut(strings.ReplaceAll(message, "\r\n", "\n"), "\n")
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "; ")
}
