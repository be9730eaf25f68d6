package faction

import (
	"regexp"
	"strings"
)

var (
	// heckleContentPattern matches the quoted content after a colon inside
	// an annotation ("Zuruf von der AfD: Oh!").
	heckleContentPattern = regexp.MustCompile(`:\s*[^,)]+`)

	// connectivePattern splits an annotation into per-faction segments
	// ("bei der CDU/CSU sowie bei Abgeordneten der SPD").
	connectivePattern = regexp.MustCompile(`\s+(?:sowie|und|–|-|,)\s+`)

	// bracketPattern extracts the faction from a named interjection
	// ("des Abg. Dr. Ralf Stegner [SPD]").
	bracketPattern = regexp.MustCompile(`\[([^\]]+)\]`)

	// articlePattern extracts the token after a German article or "bei"
	// ("bei Abgeordneten der SPD").
	articlePattern = regexp.MustCompile(`(?:der|dem|des|bei)\s+(\S+)`)
)

// ExtractFromAnnotation extracts every faction mentioned in an applause or
// heckle annotation's inner text (without the parentheses). Each segment is
// tried against direct normalization first, then bracket extraction, then
// the article-phrase fallback. Order is preserved and duplicates are
// allowed.
func (r *Registry) ExtractFromAnnotation(text string) []string {
	text = heckleContentPattern.ReplaceAllString(text, "")

	var factions []string
	for _, part := range connectivePattern.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if id, ok := r.Normalize(part); ok {
			factions = append(factions, id)
			continue
		}

		if m := bracketPattern.FindStringSubmatch(part); m != nil {
			if id, ok := r.Normalize(m[1]); ok {
				factions = append(factions, id)
				continue
			}
		}

		if m := articlePattern.FindStringSubmatch(part); m != nil {
			if id, ok := r.Normalize(m[1]); ok {
				factions = append(factions, id)
			}
		}
	}

	return factions
}
