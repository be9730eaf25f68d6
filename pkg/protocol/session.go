package protocol

import (
	"regexp"
	"sort"
)

// SessionKind distinguishes the two kinds of structured Q&A sessions.
type SessionKind int

const (
	// SessionBefragung is a Befragung der Bundesregierung /
	// Regierungsbefragung: government officials answer questions.
	SessionBefragung SessionKind = iota
	// SessionFragestunde is the general question time open to all members.
	SessionFragestunde
)

// String returns a human-readable label for the session kind.
func (k SessionKind) String() string {
	switch k {
	case SessionBefragung:
		return "befragung"
	case SessionFragestunde:
		return "fragestunde"
	default:
		return "unknown"
	}
}

// SessionRange is the text range occupied by one Q&A session.
type SessionRange struct {
	// Start is the offset of the session start marker.
	Start int

	// End is the offset just past the session end marker, or the document
	// length when no end marker exists.
	End int

	// Kind is the session kind.
	Kind SessionKind
}

var (
	befragungStartPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Befragung der Bundesregierung`),
		regexp.MustCompile(`(?i)Regierungsbefragung`),
	}

	// fragestundeStartPattern matches a standalone "Fragestunde" heading.
	fragestundeStartPattern = regexp.MustCompile(`(?m)^Fragestunde[ \t]*$`)

	// sessionEndPattern matches the closing formula shared by all session
	// kinds ("schließe ich die Fragestunde", "Ende der Befragung", ...).
	sessionEndPattern = regexp.MustCompile(
		`(?i)(?:schließe ich die|beende ich die|Ende der)\s+` +
			`(?:Befragung|Fragestunde|Regierungsbefragung)`)
)

// FindSessionRanges locates every Q&A session in the normalized text. For
// each start marker the end is the first end marker strictly after it, or
// the document end when none exists. Ranges are sorted by start but never
// merged or deduplicated; overlapping ranges are possible.
func FindSessionRanges(text string) []SessionRange {
	var ranges []SessionRange

	for _, pattern := range befragungStartPatterns {
		for _, m := range pattern.FindAllStringIndex(text, -1) {
			ranges = append(ranges, SessionRange{
				Start: m[0],
				End:   sessionEnd(text, m[0]),
				Kind:  SessionBefragung,
			})
		}
	}

	for _, m := range fragestundeStartPattern.FindAllStringIndex(text, -1) {
		ranges = append(ranges, SessionRange{
			Start: m[0],
			End:   sessionEnd(text, m[0]),
			Kind:  SessionFragestunde,
		})
	}

	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].Start < ranges[j].Start
	})

	return ranges
}

// sessionEnd finds the end offset for a session starting at start.
func sessionEnd(text string, start int) int {
	if start+1 < len(text) {
		if m := sessionEndPattern.FindStringIndex(text[start+1:]); m != nil {
			return start + 1 + m[1]
		}
	}
	return len(text)
}

// SessionAt reports whether pos falls inside any of the given ranges,
// returning the kind of the first containing range.
func SessionAt(pos int, ranges []SessionRange) (SessionKind, bool) {
	for _, r := range ranges {
		if r.Start <= pos && pos < r.End {
			return r.Kind, true
		}
	}
	return 0, false
}
