package evaluate

import (
	"fmt"
	"strings"

	"github.com/coolbeans/plenum/pkg/protocol"
)

// MatchKind classifies the outcome of aligning one reference speech with
// one candidate speech.
type MatchKind string

const (
	// MatchExact means speaker and party matched.
	MatchExact MatchKind = "exact"
	// MatchFuzzy means the pair was aligned by text similarity only.
	MatchFuzzy MatchKind = "fuzzy"
	// MatchReferenceOnly means the reference speech has no candidate
	// (a recall miss).
	MatchReferenceOnly MatchKind = "reference_only"
	// MatchCandidateOnly means the candidate has no reference
	// (a precision miss, possibly a false positive).
	MatchCandidateOnly MatchKind = "candidate_only"
)

// ReferenceSpeech is one speech from the independent reference extraction.
type ReferenceSpeech struct {
	// Speaker is the full speaker name.
	Speaker string `json:"speaker"`

	// Party is the party, empty for government officials.
	Party string `json:"party,omitempty"`

	// Role is the government role, if any.
	Role string `json:"role,omitempty"`

	// TextPreview is the first ~150 characters of the speech.
	TextPreview string `json:"text_preview"`

	// SpeechType is the reference extraction's type label.
	SpeechType string `json:"speech_type,omitempty"`
}

// SpeechMatch is one alignment outcome. A reference or candidate appears in
// at most one SpeechMatch.
type SpeechMatch struct {
	// Reference is the reference side, nil for candidate-only outcomes.
	Reference *ReferenceSpeech `json:"reference,omitempty"`

	// Candidate is the extracted side, nil for reference-only outcomes.
	Candidate *protocol.Speech `json:"candidate,omitempty"`

	// Kind is the alignment outcome.
	Kind MatchKind `json:"kind"`

	// Notes holds free-text observations about this pair.
	Notes []string `json:"notes,omitempty"`
}

// DuplicatePair reports two candidates that appear to be the same speech
// extracted twice.
type DuplicatePair struct {
	First      *protocol.Speech `json:"first"`
	Second     *protocol.Speech `json:"second"`
	Similarity float64          `json:"similarity"`
}

// Matcher aligns reference speeches with extracted candidates. The zero
// value is not usable; construct with NewMatcher.
type Matcher struct {
	// Similarity is the text similarity strategy.
	Similarity Similarity

	// TextThreshold is the minimum similarity for a fuzzy alignment.
	TextThreshold float64

	// DuplicateThreshold is the minimum similarity for a duplicate report.
	DuplicateThreshold float64
}

// Window sizes for text comparison.
const (
	alignmentWindow = 200
	duplicateWindow = 500
)

// NewMatcher creates a Matcher with the default similarity strategy and
// thresholds.
func NewMatcher() *Matcher {
	return &Matcher{
		Similarity:         SequenceRatio{},
		TextThreshold:      0.5,
		DuplicateThreshold: 0.85,
	}
}

// MatchSpeeches aligns reference speeches with candidates in two passes.
//
// Pass 1 pairs each unmatched reference with the first unmatched candidate
// whose name matches fuzzily and whose party matches (an official with a
// role but no party passes the party check). Pass 2 pairs the remainder by
// best text similarity over the opening window, accepting scores above the
// threshold. Whatever is left becomes reference-only or candidate-only.
func (m *Matcher) MatchSpeeches(references []ReferenceSpeech, candidates []protocol.Speech) []SpeechMatch {
	var matches []SpeechMatch
	usedReference := make(map[int]bool)
	usedCandidate := make(map[int]bool)

	// Pass 1: fuzzy name + party.
	for ri := range references {
		ref := &references[ri]
		for ci := range candidates {
			if usedCandidate[ci] {
				continue
			}
			cand := &candidates[ci]
			if !FuzzyNameMatch(ref.Speaker, cand.Speaker) {
				continue
			}
			refParty := normalizePartyForCompare(ref.Party)
			candParty := normalizePartyForCompare(cand.Party)
			if refParty != candParty && !(ref.Role != "" && ref.Party == "") {
				continue
			}

			var notes []string
			if refParty != candParty && refParty != "" && candParty != "" {
				notes = append(notes, fmt.Sprintf("party mismatch: %s vs %s", ref.Party, cand.Party))
			}
			matches = append(matches, SpeechMatch{
				Reference: ref,
				Candidate: cand,
				Kind:      MatchExact,
				Notes:     notes,
			})
			usedReference[ri] = true
			usedCandidate[ci] = true
			break
		}
	}

	// Pass 2: text similarity for the remainder.
	for ri := range references {
		if usedReference[ri] {
			continue
		}
		ref := &references[ri]

		bestIndex := -1
		bestScore := 0.0
		for ci := range candidates {
			if usedCandidate[ci] {
				continue
			}
			score := m.textSimilarity(ref.TextPreview, candidates[ci].Text)
			if score > m.TextThreshold && score > bestScore {
				bestScore = score
				bestIndex = ci
			}
		}

		if bestIndex >= 0 {
			cand := &candidates[bestIndex]
			notes := []string{fmt.Sprintf("matched by text similarity (%.0f%%)", bestScore*100)}
			if !FuzzyNameMatch(ref.Speaker, cand.Speaker) {
				notes = append(notes, fmt.Sprintf("speaker mismatch: %s vs %s", ref.Speaker, cand.Speaker))
			}
			matches = append(matches, SpeechMatch{
				Reference: ref,
				Candidate: cand,
				Kind:      MatchFuzzy,
				Notes:     notes,
			})
			usedReference[ri] = true
			usedCandidate[bestIndex] = true
		}
	}

	// Unmatched references: missed by the extraction.
	for ri := range references {
		if usedReference[ri] {
			continue
		}
		ref := &references[ri]
		label := ref.Party
		if label == "" {
			label = ref.Role
		}
		matches = append(matches, SpeechMatch{
			Reference: ref,
			Kind:      MatchReferenceOnly,
			Notes:     []string{fmt.Sprintf("MISSED: %s (%s)", ref.Speaker, label)},
		})
	}

	// Unmatched candidates: possible false positives.
	for ci := range candidates {
		if usedCandidate[ci] {
			continue
		}
		cand := &candidates[ci]
		matches = append(matches, SpeechMatch{
			Candidate: cand,
			Kind:      MatchCandidateOnly,
			Notes:     []string{fmt.Sprintf("REGEX ONLY: %s (%s)", cand.Speaker, cand.Party)},
		})
	}

	return matches
}

// textSimilarity scores two texts over their lowercased opening window.
func (m *Matcher) textSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return m.Similarity.Ratio(
		strings.ToLower(prefix(a, alignmentWindow)),
		strings.ToLower(prefix(b, alignmentWindow)))
}

// DetectDuplicates finds candidate pairs with fuzzy-matching speaker names
// whose opening text is nearly identical, independent of alignment.
func (m *Matcher) DetectDuplicates(candidates []protocol.Speech) []DuplicatePair {
	var duplicates []DuplicatePair

	for i := range candidates {
		for j := i + 1; j < len(candidates); j++ {
			if !FuzzyNameMatch(candidates[i].Speaker, candidates[j].Speaker) {
				continue
			}
			score := m.Similarity.Ratio(
				prefix(candidates[i].Text, duplicateWindow),
				prefix(candidates[j].Text, duplicateWindow))
			if score > m.DuplicateThreshold {
				duplicates = append(duplicates, DuplicatePair{
					First:      &candidates[i],
					Second:     &candidates[j],
					Similarity: score,
				})
			}
		}
	}

	return duplicates
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
