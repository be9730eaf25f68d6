package evaluate

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nameTitlePattern matches academic titles embedded in a speaker name.
var nameTitlePattern = regexp.MustCompile(`\b(?:Dr\.?|Prof\.?)\s*`)

// defaultNameDistance is the edit-distance tolerance for fuzzy name equality.
const defaultNameDistance = 3

// NormalizeName canonicalizes a speaker name for comparison: academic
// titles removed, diacritics folded, whitespace collapsed, lowercased.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}
	name = nameTitlePattern.ReplaceAllString(name, "")
	name = foldDiacritics(name)
	name = strings.Join(strings.Fields(name), " ")
	return strings.ToLower(strings.TrimSpace(name))
}

// FuzzyNameMatch reports whether two speaker names refer to the same
// person: normalized exact equality, edit distance within the threshold,
// or an identical final name token.
func FuzzyNameMatch(a, b string) bool {
	na, nb := NormalizeName(a), NormalizeName(b)

	if na == nb {
		return true
	}

	if Levenshtein(na, nb) <= defaultNameDistance {
		return true
	}

	partsA, partsB := strings.Fields(na), strings.Fields(nb)
	if len(partsA) > 0 && len(partsB) > 0 && partsA[len(partsA)-1] == partsB[len(partsB)-1] {
		return true
	}

	return false
}

// foldDiacritics removes combining marks so that "Müller" and "Mueller"-era
// OCR spellings like "Muller" compare equal.
func foldDiacritics(s string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, s)
	if err != nil {
		return s
	}
	return folded
}

// normalizePartyForCompare canonicalizes party strings from the two
// extractions before comparison.
func normalizePartyForCompare(party string) string {
	if party == "" {
		return ""
	}
	party = strings.ToUpper(strings.TrimSpace(party))
	if strings.Contains(party, "GRÜNE") || strings.Contains(party, "BÜNDNIS") {
		return "GRÜNE"
	}
	if strings.Contains(party, "LINKE") {
		return "LINKE"
	}
	return party
}
