package changelog

import "strings"

const (
	// StartMarker opens the generated region of a pull request description.
	StartMarker = "<!-- generated changes start -->"
	// EndMarker closes the generated region of a pull request description.
	EndMarker = "<!-- generated changes end -->"
)

const (
	changelogHeading = "### Changelog"
	issuesHeading    = "#### Issues"
	otherHeading     = "#### Other changes"
	mergesHeading    = "#### Merges"
)

// Render formats the changelog block, markers included. Sections always
// appear in the same order (issues, other changes, merges) and keep their
// heading when empty so the block has a stable shape across runs.
func Render(summaryLines, mergeMessages, otherMessages []string) string {
	var b strings.Builder

	b.WriteString(StartMarker + "\n")
	b.WriteString(changelogHeading + "\n")
	writeSection(&b, issuesHeading, summaryLines)
	writeSection(&b, otherHeading, otherMessages)
	writeSection(&b, mergesHeading, mergeMessages)
	b.WriteString(EndMarker)

	return b.String()
}

func writeSection(b *strings.Builder, heading string, entries []string) {
	b.WriteString(heading + "\n")
	for _, entry := range entries {
		line := bulletText(entry)
		if line == "" {
			continue
		}
		b.WriteString("- " + line + "\n")
	}
}

// bulletText flattens paragraph breaks so an entry stays on one bullet and
// escapes comment openers so entries can never form a marker.
func bulletText(entry string) string {
	text := strings.ReplaceAll(entry, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\n\n", " ")
	text = strings.ReplaceAll(text, "<!--", "&lt;!--")
	return strings.TrimSpace(text)
}
