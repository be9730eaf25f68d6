// Package faction normalizes free-form party and faction strings from
// Bundestag protocols to a closed set of canonical identifiers. The
// patterns tolerate the spelling variants and OCR damage found in
// historical protocols.
package faction

import (
	"regexp"
	"strings"
)

// Mapping pairs a canonical party identifier with its tolerant matcher.
type Mapping struct {
	// ID is the canonical party identifier, e.g. "CDU/CSU".
	ID string

	// Pattern matches the raw spellings that normalize to ID.
	Pattern *regexp.Regexp
}

// Registry resolves raw party strings against an ordered mapping list.
// The first matching pattern wins. A Registry is built once and read-only
// afterwards, so it is safe for concurrent use.
type Registry struct {
	mappings []Mapping
}

// NewRegistry creates a Registry with the default faction patterns.
// Ordering matters: more specific historical patterns sit behind the
// current factions they could shadow.
func NewRegistry() *Registry {
	return &Registry{mappings: []Mapping{
		{"CDU/CSU", regexp.MustCompile(`(?i)(?:Gast|-)?(?:\s*C\s*[DSMU]\s*S?[DU]\s*(?:\s*[/,':!.-]?)*\s*(?:\s*C+\s*[DSs]?\s*[UÙ]?\s*)?)(?:-?Hosp\.|-Gast|1)?`)},
		{"SPD", regexp.MustCompile(`(?i)\s*'?S(?:PD|DP)(?:\.|-Gast)?`)},
		{"GRÜNE", regexp.MustCompile(`(?i)(?:BÜNDNIS\s*(?:90)?/?(?:\s*D[1I]E)?|Bündnis\s*90/(?:\s*D[1I]E)?)?\s*[GC]R[UÜ].?\s*[ÑN]EN?(?:/Bündnis 90)?|BÜNDNISSES?\s*90/\s*DIE\s*GRÜNEN|Grünen`)},
		{"FDP", regexp.MustCompile(`(?i)\s*F\.?\s*[PDO][.']?[DP]\.?`)},
		{"AfD", regexp.MustCompile(`(?i)^AfD$|Alternative für Deutschland`)},
		{"DIE LINKE", regexp.MustCompile(`(?i)DIE\s*LIN\s?KEN?|LIN\s?KEN|Die Linke`)},
		{"BSW", regexp.MustCompile(`(?i)^BSW$|Bündnis Sahra Wagenknecht`)},
		{"fraktionslos", regexp.MustCompile(`(?i)(?:fraktionslos|Parteilos|parteilos)`)},
		{"SSW", regexp.MustCompile(`(?i)^SSW$`)},
		// Historical factions, for older protocols.
		{"PDS", regexp.MustCompile(`(?i)(?:Gruppe\s*der\s*)?PDS(?:/(?:LL|Linke Liste))?`)},
		{"GB/BHE", regexp.MustCompile(`(?i)(?:GB[/-]\s*)?BHE(?:-DG)?`)},
		{"DP", regexp.MustCompile(`(?i)^DP$`)},
		{"KPD", regexp.MustCompile(`(?i)^KPD$`)},
		{"FVP", regexp.MustCompile(`(?i)^FVP$`)},
	}}
}

// Normalize resolves a raw party string to its canonical identifier.
// The second return is false when no pattern matches.
func (r *Registry) Normalize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)

	for _, m := range r.mappings {
		if m.Pattern.MatchString(raw) {
			return m.ID, true
		}
	}

	return "", false
}

// Mappings returns the ordered mapping list.
func (r *Registry) Mappings() []Mapping {
	return r.mappings
}
