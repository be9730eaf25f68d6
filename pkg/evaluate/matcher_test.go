package evaluate

import (
	"strings"
	"testing"

	"github.com/coolbeans/plenum/pkg/protocol"
)

func TestMatchSpeeches_ExactByNameAndParty(t *testing.T) {
	references := []ReferenceSpeech{
		{Speaker: "Dr. Gregor Gysi", Party: "DIE LINKE", TextPreview: "Meine Damen und Herren, die Rente muss sicher sein."},
	}
	candidates := []protocol.Speech{
		{Speaker: "Gregor Gysi", Party: "DIE LINKE", Text: "Meine Damen und Herren, die Rente muss sicher sein. Und zwar für alle."},
	}

	matches := NewMatcher().MatchSpeeches(references, candidates)

	if len(matches) != 1 {
		t.Fatalf("match count: got %d, want 1", len(matches))
	}
	if matches[0].Kind != MatchExact {
		t.Errorf("kind: got %s, want exact", matches[0].Kind)
	}
	if len(matches[0].Notes) != 0 {
		t.Errorf("notes: expected none, got %v", matches[0].Notes)
	}
}

func TestMatchSpeeches_OfficialWithoutParty(t *testing.T) {
	references := []ReferenceSpeech{
		{Speaker: "Friedrich Merz", Role: "Bundeskanzler", TextPreview: "Die Bundesregierung wird handeln."},
	}
	candidates := []protocol.Speech{
		{Speaker: "Friedrich Merz", Party: "CDU/CSU", Text: "Die Bundesregierung wird handeln, und zwar entschlossen."},
	}

	matches := NewMatcher().MatchSpeeches(references, candidates)

	if len(matches) != 1 {
		t.Fatalf("match count: got %d, want 1", len(matches))
	}
	if matches[0].Kind != MatchExact {
		t.Errorf("kind: got %s, want exact (role stands in for the party)", matches[0].Kind)
	}
}

func TestMatchSpeeches_FuzzyByText(t *testing.T) {
	sharedText := "Wir investieren in die Zukunft unseres Landes und stärken den gesellschaftlichen Zusammenhalt in allen Regionen."

	references := []ReferenceSpeech{
		{Speaker: "Unbekannt", Party: "SPD", TextPreview: sharedText},
	}
	candidates := []protocol.Speech{
		{Speaker: "Lars Klingbeil", Party: "SPD", Text: sharedText + " Vielen Dank."},
	}

	matches := NewMatcher().MatchSpeeches(references, candidates)

	if len(matches) != 1 {
		t.Fatalf("match count: got %d, want 1", len(matches))
	}
	if matches[0].Kind != MatchFuzzy {
		t.Fatalf("kind: got %s, want fuzzy", matches[0].Kind)
	}

	foundMismatchNote := false
	for _, note := range matches[0].Notes {
		if strings.Contains(note, "speaker mismatch") {
			foundMismatchNote = true
		}
	}
	if !foundMismatchNote {
		t.Errorf("expected a speaker mismatch note, got %v", matches[0].Notes)
	}
}

func TestMatchSpeeches_MissedAndFalsePositive(t *testing.T) {
	longCandidateText := strings.Repeat("Die Zuwanderung muss nach klaren Regeln gesteuert und begrenzt werden. ", 4)

	references := []ReferenceSpeech{
		{Speaker: "Petra Pau", Party: "DIE LINKE", TextPreview: "Innere Sicherheit und Bürgerrechte."},
	}
	candidates := []protocol.Speech{
		{Speaker: "Max Mustermann", Party: "AfD", Text: longCandidateText},
	}

	matches := NewMatcher().MatchSpeeches(references, candidates)

	if len(matches) != 2 {
		t.Fatalf("match count: got %d, want 2", len(matches))
	}

	var missed, regexOnly int
	for _, match := range matches {
		switch match.Kind {
		case MatchReferenceOnly:
			missed++
			if len(match.Notes) == 0 || !strings.HasPrefix(match.Notes[0], "MISSED:") {
				t.Errorf("reference-only notes: got %v", match.Notes)
			}
		case MatchCandidateOnly:
			regexOnly++
			if len(match.Notes) == 0 || !strings.HasPrefix(match.Notes[0], "REGEX ONLY:") {
				t.Errorf("candidate-only notes: got %v", match.Notes)
			}
		}
	}
	if missed != 1 || regexOnly != 1 {
		t.Errorf("got %d missed and %d regex-only, want 1 and 1", missed, regexOnly)
	}
}

func TestMatchSpeeches_PartyVariantNormalization(t *testing.T) {
	references := []ReferenceSpeech{
		{Speaker: "Katharina Dröge", Party: "BÜNDNIS 90/DIE GRÜNEN", TextPreview: "Ein Beitrag."},
	}
	candidates := []protocol.Speech{
		{Speaker: "Katharina Dröge", Party: "GRÜNE", Text: "Ein Beitrag zur Sache."},
	}

	matches := NewMatcher().MatchSpeeches(references, candidates)
	if len(matches) != 1 || matches[0].Kind != MatchExact {
		t.Fatalf("expected one exact match across party spelling variants, got %v", matches)
	}
	if len(matches[0].Notes) != 0 {
		t.Errorf("notes: expected none for equivalent party labels, got %v", matches[0].Notes)
	}
}

func TestDetectDuplicates(t *testing.T) {
	duplicatedText := "Sehr geehrte Frau Präsidentin! Ich möchte zu diesem Gesetzentwurf Stellung nehmen und unsere Position ausführlich begründen."

	candidates := []protocol.Speech{
		{Speaker: "Heidi Reichinnek", Party: "DIE LINKE", Text: duplicatedText},
		{Speaker: "Heidi Reichinnek", Party: "DIE LINKE", Text: duplicatedText},
		{Speaker: "Friedrich Merz", Party: "CDU/CSU", Text: "Ein völlig anderer Redebeitrag über die Haushaltslage des Bundes."},
	}

	duplicates := NewMatcher().DetectDuplicates(candidates)

	if len(duplicates) != 1 {
		t.Fatalf("duplicate count: got %d, want 1", len(duplicates))
	}
	if duplicates[0].First.Speaker != "Heidi Reichinnek" {
		t.Errorf("First speaker: got %q", duplicates[0].First.Speaker)
	}
	if duplicates[0].Similarity <= 0.85 {
		t.Errorf("Similarity: got %f, want > 0.85", duplicates[0].Similarity)
	}
}

func TestDetectDuplicates_DifferentSpeakers(t *testing.T) {
	sharedText := "Wortgleicher Text, aber von verschiedenen Abgeordneten gesprochen."

	candidates := []protocol.Speech{
		{Speaker: "Friedrich Merz", Text: sharedText},
		{Speaker: "Heidi Reichinnek", Text: sharedText},
	}

	duplicates := NewMatcher().DetectDuplicates(candidates)
	if len(duplicates) != 0 {
		t.Errorf("Expected no duplicates across different speakers, got %d", len(duplicates))
	}
}
