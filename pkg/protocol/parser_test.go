package protocol

import (
	"strings"
	"testing"
)

// sampleDebate is a condensed debate excerpt: a chancellor speech introduced
// by the president, followed by a member speech.
const sampleDebate = `Deutscher Bundestag - 21. Wahlperiode - 6. Sitzung. Berlin, Mittwoch, den 14. Mai 2025

Präsidentin Julia Klöckner:
Ich erteile das Wort dem Bundeskanzler.

Friedrich Merz, Bundeskanzler:
Frau Präsidentin! Meine sehr geehrten Damen und Herren! Die Bundesregierung wird die großen Aufgaben unseres Landes entschlossen angehen und Deutschland wieder auf einen stabilen Wachstumskurs führen.

(Beifall bei der CDU/CSU und der SPD)

Vizepräsident Wolfgang Kubicki:
Vielen Dank. Das Wort hat nun der Kollege Lars Klingbeil.

Lars Klingbeil (SPD):
Sehr geehrter Herr Präsident! Liebe Kolleginnen und Kollegen! Wir stehen vor großen Herausforderungen, und diese Koalition wird sie gemeinsam angehen, mit Investitionen in Infrastruktur und Bildung.

(Beifall bei der SPD)
`

// sampleFragestunde is a condensed question time excerpt: an official
// answer, then a follow-up question by a member.
const sampleFragestunde = `Deutscher Bundestag - 21. Wahlperiode - 12. Sitzung

Fragestunde

Vizepräsidentin Katrin Göring-Eckardt:
Die Frage wird vom zuständigen Staatssekretär beantwortet. Herr Staatssekretär, Sie haben das Wort.

Johann Saathoff, Parl. Staatssekretär beim Bundesminister des Innern:
Vielen Dank. Die Bundesregierung hat die Lage eingehend geprüft und kommt zu einer klaren Einschätzung, die ich gern im Einzelnen erläutere.

Vizepräsidentin Katrin Göring-Eckardt:
Eine Nachfrage gibt es vom Kollegen Brandner.

Stephan Brandner (AfD):
Herr Staatssekretär, wie begründet die Bundesregierung diese Einschätzung angesichts der aktuellen Entwicklung im Einzelnen?

Vizepräsidentin Katrin Göring-Eckardt:
Damit schließe ich die Fragestunde.
`

func TestParseSpeeches_ChancellorSpeech(t *testing.T) {
	parser := NewParser()
	speeches := parser.ParseSpeeches(sampleDebate)

	if len(speeches) != 2 {
		t.Fatalf("speech count: got %d, want 2", len(speeches))
	}

	chancellor := speeches[0]
	if chancellor.Speaker != "Friedrich Merz" {
		t.Errorf("Speaker: got %q, want %q", chancellor.Speaker, "Friedrich Merz")
	}
	if chancellor.Party != "CDU/CSU" {
		t.Errorf("Party: got %q, want CDU/CSU", chancellor.Party)
	}
	if chancellor.Role != "Bundeskanzler" {
		t.Errorf("Role: got %q, want Bundeskanzler", chancellor.Role)
	}
	if !chancellor.IsGovernment {
		t.Error("Expected IsGovernment to be true for the chancellor")
	}
	if chancellor.Type != SpeechRede {
		t.Errorf("Type: got %q, want %q", chancellor.Type, SpeechRede)
	}
	if chancellor.Category != CategoryRede {
		t.Errorf("Category: got %q, want %q", chancellor.Category, CategoryRede)
	}
	if chancellor.LastName != "Merz" {
		t.Errorf("LastName: got %q, want Merz", chancellor.LastName)
	}
}

func TestParseSpeeches_MemberSpeech(t *testing.T) {
	parser := NewParser()
	speeches := parser.ParseSpeeches(sampleDebate)

	if len(speeches) != 2 {
		t.Fatalf("speech count: got %d, want 2", len(speeches))
	}

	member := speeches[1]
	if member.Speaker != "Lars Klingbeil" {
		t.Errorf("Speaker: got %q, want %q", member.Speaker, "Lars Klingbeil")
	}
	if member.Party != "SPD" {
		t.Errorf("Party: got %q, want SPD", member.Party)
	}
	if member.IsGovernment {
		t.Error("Expected IsGovernment to be false for a member speaker line")
	}
	if member.Type != SpeechRede {
		t.Errorf("Type: got %q, want %q", member.Type, SpeechRede)
	}
	if member.Role != "" {
		t.Errorf("Role: expected empty, got %q", member.Role)
	}
}

func TestParseSpeeches_StripsAnnotations(t *testing.T) {
	parser := NewParser()
	speeches := parser.ParseSpeeches(sampleDebate)

	for _, speech := range speeches {
		if strings.Contains(speech.Text, "Beifall") {
			t.Errorf("speech text for %s still contains an applause annotation", speech.Speaker)
		}
		if strings.Contains(speech.Text, "(") {
			t.Errorf("speech text for %s still contains parentheses", speech.Speaker)
		}
	}
}

func TestParseSpeeches_QuestionTime(t *testing.T) {
	parser := NewParser()
	speeches := parser.ParseSpeeches(sampleFragestunde)

	if len(speeches) != 2 {
		t.Fatalf("speech count: got %d, want 2", len(speeches))
	}

	answer := speeches[0]
	if answer.Speaker != "Johann Saathoff" {
		t.Errorf("Speaker: got %q, want Johann Saathoff", answer.Speaker)
	}
	if answer.Type != SpeechFragestundeAntwort {
		t.Errorf("Type: got %q, want %q", answer.Type, SpeechFragestundeAntwort)
	}
	if answer.Party != "SPD" {
		t.Errorf("Party: got %q, want SPD (from the roster)", answer.Party)
	}
	if !answer.IsGovernment {
		t.Error("Expected IsGovernment to be true for a Staatssekretär")
	}

	question := speeches[1]
	if question.Speaker != "Stephan Brandner" {
		t.Errorf("Speaker: got %q, want Stephan Brandner", question.Speaker)
	}
	if question.Type != SpeechFragestunde {
		t.Errorf("Type: got %q, want %q", question.Type, SpeechFragestunde)
	}
	if question.Party != "AfD" {
		t.Errorf("Party: got %q, want AfD", question.Party)
	}
	if question.Category != CategoryWortbeitrag {
		t.Errorf("Category: got %q, want %q", question.Category, CategoryWortbeitrag)
	}
}

func TestParseSpeeches_DropsShortFragments(t *testing.T) {
	text := `Sitzungsbeginn

Präsidentin Julia Klöckner:
Ich eröffne die Sitzung.

Lars Klingbeil (SPD):
Einverstanden.

Vizepräsident Wolfgang Kubicki:
Danke.
`
	parser := NewParser()
	speeches := parser.ParseSpeeches(text)

	if len(speeches) != 0 {
		t.Errorf("Expected short fragments to be dropped, got %d speeches", len(speeches))
	}
}

func TestParseSpeeches_DropsUnknownParty(t *testing.T) {
	text := `Sitzungsbeginn

Präsidentin Julia Klöckner:
Das Wort hat Herr Mustermann.

Max Mustermann (Piraten):
Sehr geehrte Frau Präsidentin! Liebe Kolleginnen und Kollegen! Ich möchte heute ausführlich zu diesem wichtigen Gesetzentwurf Stellung nehmen.
`
	parser := NewParser()
	speeches := parser.ParseSpeeches(text)

	if len(speeches) != 0 {
		t.Errorf("Expected speech with unresolvable party to be dropped, got %d speeches", len(speeches))
	}
}

func TestParseSpeeches_OfficialWithoutRosterEntry(t *testing.T) {
	text := `Sitzungsbeginn

Präsidentin Julia Klöckner:
Das Wort hat die Staatsministerin.

Erika Beispiel, Staatsministerin für Kultur und Medien:
Sehr geehrte Frau Präsidentin! Meine Damen und Herren! Die Kulturpolitik des Bundes steht vor großen Aufgaben, denen wir uns mit voller Kraft widmen werden.
`
	parser := NewParser()
	speeches := parser.ParseSpeeches(text)

	if len(speeches) != 1 {
		t.Fatalf("speech count: got %d, want 1", len(speeches))
	}
	if speeches[0].Party != "" {
		t.Errorf("Party: expected empty for unknown official, got %q", speeches[0].Party)
	}
	if !speeches[0].IsGovernment {
		t.Error("Expected IsGovernment to be true")
	}
	if speeches[0].Type != SpeechRede {
		t.Errorf("Type: got %q, want %q", speeches[0].Type, SpeechRede)
	}
}

func TestParseSpeeches_SpeakerLineAtDocumentStart(t *testing.T) {
	// A protocol fragment can begin directly with a speaker line.
	text := "Friedrich Merz, Bundeskanzler:\n" +
		strings.Repeat("Die Bundesregierung handelt entschlossen und setzt die vereinbarten Vorhaben zügig um. ", 30)

	parser := NewParser()
	speeches := parser.ParseSpeeches(text)

	if len(speeches) != 1 {
		t.Fatalf("speech count: got %d, want 1", len(speeches))
	}
	if speeches[0].Speaker != "Friedrich Merz" {
		t.Errorf("Speaker: got %q, want Friedrich Merz", speeches[0].Speaker)
	}
	if speeches[0].Type != SpeechRede {
		t.Errorf("Type: got %q, want %q", speeches[0].Type, SpeechRede)
	}
	if !speeches[0].IsGovernment {
		t.Error("Expected IsGovernment to be true for the chancellor")
	}
}

func TestParseSpeeches_PraesidiumAddress(t *testing.T) {
	text := "Tagesordnungspunkt 3\n\n" +
		"Heidi Reichinnek (DIE LINKE):\n" +
		"Sehr geehrtes Präsidium! Liebe Kolleginnen und Kollegen! " +
		strings.Repeat("Wir beraten heute über die Zukunft der sozialen Sicherungssysteme in unserem Land. ", 45)

	parser := NewParser()
	speeches := parser.ParseSpeeches(text)

	if len(speeches) != 1 {
		t.Fatalf("speech count: got %d, want 1", len(speeches))
	}
	if speeches[0].Type != SpeechRede {
		t.Errorf("Type: got %q, want %q", speeches[0].Type, SpeechRede)
	}
	if speeches[0].Category != CategoryRede {
		t.Errorf("Category: got %q, want %q", speeches[0].Category, CategoryRede)
	}
}

func TestParseSpeeches_SpanOrdering(t *testing.T) {
	parser := NewParser()
	speeches := parser.ParseSpeeches(sampleDebate + sampleFragestunde)

	for i := 1; i < len(speeches); i++ {
		if speeches[i].SpanStart < speeches[i-1].SpanEnd {
			t.Errorf("speech %d starts at %d before previous span ends at %d",
				i, speeches[i].SpanStart, speeches[i-1].SpanEnd)
		}
	}

	t.Logf("Parsed %d speeches from the combined sample", len(speeches))
}

func TestParseSpeeches_WordCount(t *testing.T) {
	parser := NewParser()
	speeches := parser.ParseSpeeches(sampleDebate)

	for _, speech := range speeches {
		want := len(strings.Fields(speech.Text))
		if speech.Words != want {
			t.Errorf("Words for %s: got %d, want %d", speech.Speaker, speech.Words, want)
		}
	}
}
