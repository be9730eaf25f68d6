package protocol

import (
	"sort"
	"strings"
)

// BoundaryKind classifies a speech-start boundary.
type BoundaryKind int

const (
	// BoundaryMember is an ordinary member speaker line: "Name (Party):".
	BoundaryMember BoundaryKind = iota
	// BoundaryPresiding is a presiding officer line. Presiding boundaries
	// delimit spans but never produce a speech of their own.
	BoundaryPresiding
	// BoundaryOfficial is a government official line: "Name, Role:".
	BoundaryOfficial
)

// String returns a human-readable label for the boundary kind.
func (k BoundaryKind) String() string {
	switch k {
	case BoundaryMember:
		return "member"
	case BoundaryPresiding:
		return "presiding"
	case BoundaryOfficial:
		return "official"
	default:
		return "unknown"
	}
}

// Boundary is a textual marker introducing a speaker turn. Immutable once
// scanned. Position and End are byte offsets into the normalized text;
// the speech span of a boundary runs from End to the next boundary's
// Position.
type Boundary struct {
	// Position is the offset where the boundary match starts.
	Position int

	// End is the offset just past the boundary match.
	End int

	// Kind tags the boundary variant.
	Kind BoundaryKind

	// Speaker is the raw speaker name.
	Speaker string

	// RawParty is the captured party string. Member boundaries only.
	RawParty string

	// Role is the government role. Official boundaries only.
	Role string
}

// ScanBoundaries finds every candidate speech-start boundary in the
// normalized text and returns them sorted by position. The three matchers
// run independently; the scan does not deduplicate overlapping matches of
// different kinds.
//
// The patterns anchor on the newline before the speaker line, so the scan
// runs over a padded copy and shifts the offsets back. A speaker line at
// the very start of the document is found that way too.
func ScanBoundaries(text string) []Boundary {
	var boundaries []Boundary
	padded := "\n" + text

	for _, m := range memberPattern.FindAllStringSubmatchIndex(padded, -1) {
		name := strings.TrimSpace(padded[m[2]:m[3]])
		if isQuestionHeader(name) {
			continue
		}
		boundaries = append(boundaries, Boundary{
			Position: textOffset(m[0] - 1),
			End:      m[1] - 1,
			Kind:     BoundaryMember,
			Speaker:  name,
			RawParty: strings.TrimSpace(padded[m[4]:m[5]]),
		})
	}

	for _, m := range presidingPattern.FindAllStringSubmatchIndex(padded, -1) {
		title := padded[m[2]:m[3]]
		name := strings.TrimSpace(padded[m[4]:m[5]])
		boundaries = append(boundaries, Boundary{
			Position: textOffset(m[0] - 1),
			End:      m[1] - 1,
			Kind:     BoundaryPresiding,
			Speaker:  title + " " + name,
		})
	}

	for _, m := range officialPattern.FindAllStringSubmatchIndex(padded, -1) {
		boundaries = append(boundaries, Boundary{
			Position: textOffset(m[0] - 1),
			End:      m[1] - 1,
			Kind:     BoundaryOfficial,
			Speaker:  strings.TrimSpace(padded[m[2]:m[3]]),
			Role:     strings.TrimSpace(padded[m[4]:m[5]]),
		})
	}

	sort.SliceStable(boundaries, func(i, j int) bool {
		return boundaries[i].Position < boundaries[j].Position
	})

	return boundaries
}

// textOffset maps a match offset in the padded scan text back into the
// document. A match on the padding itself maps to the document start.
func textOffset(i int) int {
	if i < 0 {
		return 0
	}
	return i
}

// isQuestionHeader reports whether a candidate member name is a
// table-of-contents question header rather than a speaker.
func isQuestionHeader(name string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range questionHeaderPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
