package changelog

import "strings"

// generatedRegion returns the bounds of the first complete marker pair: the
// first end marker that follows a start marker, together with the nearest
// start marker before it. A stray start marker without an end never widens
// the region. ok is false when no pair exists.
func generatedRegion(description string) (start, end int, ok bool) {
	first := strings.Index(description, StartMarker)
	if first < 0 {
		return 0, 0, false
	}
	rel := strings.Index(description[first+len(StartMarker):], EndMarker)
	if rel < 0 {
		return 0, 0, false
	}
	endAt := first + len(StartMarker) + rel
	start = strings.LastIndex(description[:endAt], StartMarker)
	return start, endAt + len(EndMarker), true
}

// Merge places block into description. An existing generated region is
// replaced in place, markers included; everything outside it is kept as is.
// Without a region the block is appended after a line break, even to an
// empty description. Merging the same block twice gives the
// same result as merging it once.
func Merge(description, block string) string {
	if start, end, ok := generatedRegion(description); ok {
		return description[:start] + block + description[end:]
	}
	return description + "\n" + block
}

// HasGeneratedRegion reports whether description already holds a marker pair.
func HasGeneratedRegion(description string) bool {
	_, _, ok := generatedRegion(description)
	return ok
}
