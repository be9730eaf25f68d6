package protocol

import (
	"regexp"
	"strings"
)

var (
	// exoticSpacePattern matches non-breaking and other space-like code points
	// that appear in OCR-era protocol text (NBSP, figure space, narrow
	// no-break space, word joiner).
	exoticSpacePattern = regexp.MustCompile(`[\x{00A0}\x{2007}\x{202F}\x{2060}]`)

	// tabRunPattern matches one or more horizontal tabs.
	tabRunPattern = regexp.MustCompile(`\t+`)

	// multiSpacePattern matches runs of two or more plain spaces.
	multiSpacePattern = regexp.MustCompile(`  +`)

	// parentheticalPattern matches a balanced, non-nested parenthesis run.
	// Nested parentheses are not specially handled; the inner run wins.
	parentheticalPattern = regexp.MustCompile(`\([^)]+\)`)

	// whitespaceRunPattern matches any whitespace run.
	whitespaceRunPattern = regexp.MustCompile(`\s+`)

	// nameNoisePattern matches characters that are not part of a personal
	// name: everything except Latin letters (including umlauts and common
	// accented characters), hyphen, and whitespace.
	nameNoisePattern = regexp.MustCompile("[^a-zA-ZÀ-ÿğşçıİ\\-\\s]")
)

// academicTitles are tokens stripped from speaker names when decomposing
// them into first and last name. Includes nobility particles and the
// pieces of "h.c." (honoris causa).
var academicTitles = map[string]bool{
	"Dr": true, "Prof": true, "Frau": true, "D": true, "-Ing": true,
	"von": true, "und": true, "zu": true, "van": true, "de": true,
	"Baron": true, "Freiherr": true, "Freifrau": true, "Prinz": true, "Graf": true,
	"h": true, "c": true,
}

// CleanText canonicalizes raw protocol text before any pattern matching:
// non-breaking and exotic spaces become plain spaces, tab runs and runs of
// two or more spaces collapse to one space, and em/en dashes become
// hyphen-minus. The function is pure and idempotent.
func CleanText(text string) string {
	text = exoticSpacePattern.ReplaceAllString(text, " ")

	text = strings.ReplaceAll(text, "—", "-") // em dash
	text = strings.ReplaceAll(text, "–", "-") // en dash

	text = tabRunPattern.ReplaceAllString(text, " ")
	text = multiSpacePattern.ReplaceAllString(text, " ")

	return text
}

// NameParts holds the decomposition of a raw speaker name.
type NameParts struct {
	// FirstName is everything before the last name token, titles removed.
	FirstName string `json:"first_name"`

	// LastName is the final name token.
	LastName string `json:"last_name"`

	// AcademicTitle is the space-joined title tokens, empty if none.
	AcademicTitle string `json:"acad_title,omitempty"`

	// FullName is the raw name as it appeared in the protocol.
	FullName string `json:"full_name"`
}

// ExtractNameParts splits a raw speaker name into academic titles, first
// name, and last name. A single remaining token is treated as the last name.
func ExtractNameParts(raw string) NameParts {
	cleaned := nameNoisePattern.ReplaceAllString(raw, " ")
	cleaned = multiSpacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	var titles, names []string
	for _, token := range strings.Fields(cleaned) {
		if academicTitles[token] {
			titles = append(titles, token)
		} else {
			names = append(names, token)
		}
	}

	parts := NameParts{
		AcademicTitle: strings.Join(titles, " "),
		FullName:      strings.TrimSpace(raw),
	}

	switch len(names) {
	case 0:
	case 1:
		parts.LastName = names[0]
	default:
		parts.FirstName = strings.Join(names[:len(names)-1], " ")
		parts.LastName = names[len(names)-1]
	}

	return parts
}

// StripParenthetical removes parenthetical annotation content (Zwischenrufe,
// Beifall, Heiterkeit, ...) from speech text. These are not the speaker's own
// words. Matching is non-nested; see parentheticalPattern.
func StripParenthetical(text string) string {
	cleaned := parentheticalPattern.ReplaceAllString(text, "")
	cleaned = whitespaceRunPattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
