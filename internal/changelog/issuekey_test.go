package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractIssueKey(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected IssueKey
		found    bool
	}{
		{
			name:     "Key after a verb",
			text:     "Fixes ABC-123: update login",
			expected: "ABC-123",
			found:    true,
		},
		{
			name:     "Key with digits in the project part",
			text:     "AB12-345 add retries",
			expected: "AB12-345",
			found:    true,
		},
		{
			name:     "Key at the very end",
			text:     "update login for PROJ-7",
			expected: "PROJ-7",
			found:    true,
		},
		{
			name:     "First key wins",
			text:     "CD-2 follow up on AB-1",
			expected: "CD-2",
			found:    true,
		},
		{
			name:     "Key in a branch name",
			text:     "Merge branch 'feature/OPS-99-cleanup'",
			expected: "OPS-99",
			found:    true,
		},
		{
			name:  "Version suffix",
			text:  "bump version to v2-1",
			found: false,
		},
		{
			name:  "Lowercase key",
			text:  "abc-123 lowercase is not a key",
			found: false,
		},
		{
			name:  "Single letter project",
			text:  "A-1 is too short",
			found: false,
		},
		{
			name:  "Leading zero",
			text:  "ABC-0123",
			found: false,
		},
		{
			name:  "Trailing hyphen",
			text:  "release ABC-",
			found: false,
		},
		{
			name:  "Empty text",
			text:  "",
			found: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, ok := ExtractIssueKey(tc.text)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, key)
		})
	}
}

func TestExtractIssueKeys(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected []IssueKey
	}{
		{
			name:     "No keys",
			text:     "bump version to v2-1",
			expected: []IssueKey{},
		},
		{
			name:     "Several keys in reading order",
			text:     "CD-2 follow up on AB-1 and AB12-345",
			expected: []IssueKey{"CD-2", "AB-1", "AB12-345"},
		},
		{
			name:     "Repeated key",
			text:     "AB-1 revert AB-1",
			expected: []IssueKey{"AB-1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractIssueKeys(tc.text))
		})
	}
}
