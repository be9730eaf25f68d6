package protocol

import (
	"strings"
	"testing"
)

func TestClassifyOpening(t *testing.T) {
	tests := []struct {
		name string
		text string
		want SpeechType
	}{
		{
			name: "question indicator",
			text: "Ich habe eine Frage an die Bundesregierung zur geplanten Reform.",
			want: SpeechFragestunde,
		},
		{
			name: "zusatzfrage",
			text: "Eine Zusatzfrage dazu: Wie viele Fälle sind bekannt?",
			want: SpeechFragestunde,
		},
		{
			name: "permitted interjection",
			text: "Vielen Dank, Frau Präsidentin, dass Sie die Zwischenfrage zulassen.",
			want: SpeechZwischenfrage,
		},
		{
			name: "continuation after interruption",
			text: "- Ich komme zum Schluss, Frau Präsidentin. Wir werden diesem Entwurf zustimmen.",
			want: SpeechContinuation,
		},
		{
			name: "formal president address",
			text: "Sehr geehrte Frau Präsidentin! Sehr geehrter Herr Bundesminister! Liebe Kolleginnen und Kollegen!",
			want: SpeechRede,
		},
		{
			name: "minister address is a question",
			text: "Herr Minister, wie stehen Sie zu den aktuellen Vorwürfen?",
			want: SpeechFragestunde,
		},
		{
			name: "praesidium address",
			text: "Sehr geehrtes Präsidium! Liebe Gäste auf den Tribünen!",
			want: SpeechPraesidium,
		},
		{
			name: "colleague address is an interjection",
			text: "Herr Kollege Schmidt, Sie irren sich in einem zentralen Punkt.",
			want: SpeechZwischenfrage,
		},
		{
			name: "yes-no opener is an interjection",
			text: "Nein, das sehe ich ganz anders, und das will ich begründen.",
			want: SpeechZwischenfrage,
		},
		{
			name: "thanks for the question is an answer",
			text: "Vielen Dank für Ihre Frage. Die Bundesregierung hat dazu eine klare Position.",
			want: SpeechFragestundeAntwort,
		},
		{
			name: "thanks to the president is a speech",
			text: "Vielen Dank, Frau Präsidentin. Wir beraten heute ein wichtiges Gesetz.",
			want: SpeechRede,
		},
		{
			name: "ladies and gentlemen",
			text: "Meine Damen und Herren! Die Lage ist ernst.",
			want: SpeechRede,
		},
		{
			name: "vote explanation",
			text: "Ich stimme dem Gesetzentwurf nicht zu, weil er die falschen Anreize setzt.",
			want: SpeechAbstimmung,
		},
		{
			name: "protocol contribution",
			text: "Wir benötigen dringend eine Modernisierung unserer Verwaltung.",
			want: SpeechProtokoll,
		},
		{
			name: "written question naming a ministry",
			text: "Welche Maßnahmen plant das Bundesministerium für Gesundheit in dieser Sache?",
			want: SpeechFragestunde,
		},
		{
			name: "no signal",
			text: "Das Wetter war in diesem Sommer ungewöhnlich trocken.",
			want: SpeechOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyOpening(tt.text)
			if got != tt.want {
				t.Errorf("ClassifyOpening(%q): got %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyContext(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		want     SpeechType
		decisive bool
	}{
		{
			name:     "question call-up",
			context:  "Ich rufe die Frage 5 des Abgeordneten Brandner auf.\n",
			want:     SpeechFragestunde,
			decisive: true,
		},
		{
			name:     "next question",
			context:  "Die nächste Frage stellt der Kollege Schmidt.\n",
			want:     SpeechFragestunde,
			decisive: true,
		},
		{
			name:     "follow-up invitation",
			context:  "Eine Nachfrage gibt es von der Kollegin Meyer.\n",
			want:     SpeechFragestunde,
			decisive: true,
		},
		{
			name:     "answer invitation",
			context:  "Herr Staatssekretär, Sie haben das Wort.\n",
			want:     SpeechFragestundeAntwort,
			decisive: true,
		},
		{
			name:     "neutral text",
			context:  "Die Sitzung wird fortgesetzt.\n",
			decisive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyContext(tt.context, len(tt.context))
			if ok != tt.decisive {
				t.Fatalf("decisive: got %v, want %v", ok, tt.decisive)
			}
			if tt.decisive && got != tt.want {
				t.Errorf("ClassifyContext: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyContext_WindowLimit(t *testing.T) {
	// A marker further back than the window must not influence the result.
	padding := make([]byte, contextWindow+100)
	for i := range padding {
		padding[i] = 'x'
	}
	text := "Ich rufe die Frage 1 auf. " + string(padding)

	if _, ok := ClassifyContext(text, len(text)); ok {
		t.Error("Expected marker outside the context window to be ignored")
	}
}

func TestClassifyContext_MultibyteWindow(t *testing.T) {
	// The window is measured in runes; with two-byte umlauts the marker
	// here lies beyond 600 bytes but within 600 runes of the boundary.
	text := "Eine Nachfrage gibt es vom Kollegen Brandner. " + strings.Repeat("ä", 550)

	got, ok := ClassifyContext(text, len(text))
	if !ok {
		t.Fatal("Expected the marker inside the window to be found")
	}
	if got != SpeechFragestunde {
		t.Errorf("got %q, want %q", got, SpeechFragestunde)
	}
}
