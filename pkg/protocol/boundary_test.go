package protocol

import "testing"

const boundarySample = `Tagesordnungspunkt 1

Präsidentin Julia Klöckner:
Ich eröffne die Aussprache.

Friedrich Merz, Bundeskanzler:
Frau Präsidentin! Meine Damen und Herren!

Heidi Reichinnek (DIE LINKE):
Sehr geehrte Frau Präsidentin!

Frage des Abgeordneten Stephan Brandner (AfD):
Wie bewertet die Bundesregierung die Lage?
`

func TestScanBoundaries(t *testing.T) {
	boundaries := ScanBoundaries(boundarySample)

	if len(boundaries) != 3 {
		t.Fatalf("boundary count: got %d, want 3", len(boundaries))
	}

	if boundaries[0].Kind != BoundaryPresiding {
		t.Errorf("boundary 0 kind: got %s, want presiding", boundaries[0].Kind)
	}
	if boundaries[0].Speaker != "Präsidentin Julia Klöckner" {
		t.Errorf("boundary 0 speaker: got %q", boundaries[0].Speaker)
	}

	if boundaries[1].Kind != BoundaryOfficial {
		t.Errorf("boundary 1 kind: got %s, want official", boundaries[1].Kind)
	}
	if boundaries[1].Speaker != "Friedrich Merz" {
		t.Errorf("boundary 1 speaker: got %q", boundaries[1].Speaker)
	}
	if boundaries[1].Role != "Bundeskanzler" {
		t.Errorf("boundary 1 role: got %q", boundaries[1].Role)
	}

	if boundaries[2].Kind != BoundaryMember {
		t.Errorf("boundary 2 kind: got %s, want member", boundaries[2].Kind)
	}
	if boundaries[2].Speaker != "Heidi Reichinnek" {
		t.Errorf("boundary 2 speaker: got %q", boundaries[2].Speaker)
	}
	if boundaries[2].RawParty != "DIE LINKE" {
		t.Errorf("boundary 2 raw party: got %q", boundaries[2].RawParty)
	}
}

func TestScanBoundaries_SortedByPosition(t *testing.T) {
	boundaries := ScanBoundaries(boundarySample)

	for i := 1; i < len(boundaries); i++ {
		if boundaries[i].Position < boundaries[i-1].Position {
			t.Errorf("boundary %d at %d precedes boundary %d at %d",
				i, boundaries[i].Position, i-1, boundaries[i-1].Position)
		}
	}
}

func TestScanBoundaries_SkipsQuestionHeaders(t *testing.T) {
	boundaries := ScanBoundaries(boundarySample)

	for _, b := range boundaries {
		if b.Speaker == "Frage des Abgeordneten Stephan Brandner" {
			t.Error("Question header misread as a member boundary")
		}
	}
}

func TestScanBoundaries_DocumentStart(t *testing.T) {
	text := `Friedrich Merz, Bundeskanzler:
Frau Präsidentin! Meine Damen und Herren!
`
	boundaries := ScanBoundaries(text)

	if len(boundaries) != 1 {
		t.Fatalf("boundary count: got %d, want 1", len(boundaries))
	}
	if boundaries[0].Kind != BoundaryOfficial {
		t.Errorf("kind: got %s, want official", boundaries[0].Kind)
	}
	if boundaries[0].Position != 0 {
		t.Errorf("Position: got %d, want 0", boundaries[0].Position)
	}
	if want := len("Friedrich Merz, Bundeskanzler:\n"); boundaries[0].End != want {
		t.Errorf("End: got %d, want %d", boundaries[0].End, want)
	}
}

func TestScanBoundaries_RoleWithQualifier(t *testing.T) {
	text := `Einleitung

Johann Saathoff, Parl. Staatssekretär beim Bundesminister des Innern:
Vielen Dank für die Frage.
`
	boundaries := ScanBoundaries(text)

	if len(boundaries) != 1 {
		t.Fatalf("boundary count: got %d, want 1", len(boundaries))
	}
	if boundaries[0].Kind != BoundaryOfficial {
		t.Errorf("kind: got %s, want official", boundaries[0].Kind)
	}
	if boundaries[0].Role != "Parl. Staatssekretär beim Bundesminister des Innern" {
		t.Errorf("role: got %q", boundaries[0].Role)
	}
}
