// Package changelog builds the generated changelog section of a pull request
// description: it classifies commits by JIRA issue key, resolves issue
// summaries, renders the section and merges it into an existing description.
package changelog

import "regexp"

// IssueKey is a JIRA issue identifier such as "PROJ-123". Keys are compared
// by exact, case-sensitive string equality.
type IssueKey string

var (
	// issueKeyPattern is one uppercase letter, one or more uppercase letters or
	// digits, a hyphen and a number without a leading zero.
	issueKeyPattern = regexp.MustCompile(`[A-Z][A-Z0-9]+-[1-9][0-9]*`)

	// trailingTokenPattern matches a short alphanumeric run that reaches the
	// end of the text, optionally followed by a single hyphen.
	trailingTokenPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,10}-?$`)
)

// ExtractIssueKey returns the first JIRA issue key found anywhere in text.
// The second return value is false when the text holds no key, which is an
// ordinary outcome rather than an error.
//
// A candidate is skipped when everything from its first character to the end
// of the text is a short token with an optional trailing hyphen, so version
// suffixes at the end of a message are never taken for keys. Scanning then
// resumes one character after the rejected start.
func ExtractIssueKey(text string) (IssueKey, bool) {
	key, _, ok := nextIssueKey(text, 0)
	return key, ok
}

// ExtractIssueKeys returns every key in text, in reading order, without
// duplicates.
func ExtractIssueKeys(text string) []IssueKey {
	keys := NewOrderedSet[IssueKey]()
	for offset := 0; ; {
		key, next, ok := nextIssueKey(text, offset)
		if !ok {
			break
		}
		keys.Add(key)
		offset = next
	}
	return keys.Items()
}

// nextIssueKey finds the first accepted key at or after offset and returns
// it with the index just past it.
func nextIssueKey(text string, offset int) (IssueKey, int, bool) {
	for offset < len(text) {
		loc := issueKeyPattern.FindStringIndex(text[offset:])
		if loc == nil {
			return "", 0, false
		}
		start, end := offset+loc[0], offset+loc[1]
		if !trailingTokenPattern.MatchString(text[start:]) {
			return IssueKey(text[start:end]), end, true
		}
		offset = start + 1
	}
	return "", 0, false
}
