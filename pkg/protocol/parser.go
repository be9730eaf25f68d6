package protocol

import (
	"strings"

	"github.com/coolbeans/plenum/pkg/faction"
	"github.com/coolbeans/plenum/pkg/government"
)

// MinSpeechLength is the character floor below which a stripped span is
// treated as a procedural fragment and dropped.
const MinSpeechLength = 50

// substantialWordCount is the word count above which an otherwise
// unclassified span is still recorded.
const substantialWordCount = 500

// Parser extracts speeches from Plenarprotokoll full text. The registries
// are built once and read-only afterwards, so a Parser is safe for
// concurrent use across documents.
type Parser struct {
	factions *faction.Registry
	roster   *government.Roster
}

// NewParser creates a Parser with the default faction registry and
// government roster.
func NewParser() *Parser {
	return &Parser{
		factions: faction.NewRegistry(),
		roster:   government.DefaultRoster(),
	}
}

// NewParserWithRoster creates a Parser with a custom government roster,
// e.g. one extended from a YAML overlay.
func NewParserWithRoster(roster *government.Roster) *Parser {
	return &Parser{
		factions: faction.NewRegistry(),
		roster:   roster,
	}
}

// ParseSpeeches extracts the ordered list of speeches from a protocol.
//
// The text is normalized first. Member, presiding, and official boundaries
// delimit speaker turns; presiding boundaries only delimit, they never
// produce a speech. Each span is stripped of parenthetical annotations,
// attributed, and classified. Spans are dropped without a record when they
// are shorter than MinSpeechLength, when a member's party cannot be
// resolved, when they are the continuation of an interrupted speech, or
// when they are short and fit no formal type.
func (p *Parser) ParseSpeeches(text string) []Speech {
	text = CleanText(text)

	sessions := FindSessionRanges(text)
	boundaries := ScanBoundaries(text)

	var speeches []Speech

	for i, boundary := range boundaries {
		if boundary.Kind == BoundaryPresiding {
			continue
		}

		spanStart := boundary.End
		spanEnd := len(text)
		if i+1 < len(boundaries) {
			spanEnd = boundaries[i+1].Position
		}

		speechText := StripParenthetical(strings.TrimSpace(text[spanStart:spanEnd]))
		if len(speechText) < MinSpeechLength {
			continue
		}

		var party string
		isGovernment := boundary.Kind == BoundaryOfficial
		if isGovernment {
			// Roster miss is tolerated; the record keeps an empty party.
			party, _ = p.roster.PartyFor(boundary.Speaker)
		} else {
			resolved, ok := p.factions.Normalize(boundary.RawParty)
			if !ok {
				// Unresolvable member party: the primary precision lever.
				continue
			}
			party = resolved
		}

		words := len(strings.Fields(speechText))

		presidingPreceded := i > 0 && boundaries[i-1].Kind == BoundaryPresiding
		opening := ClassifyOpening(speechText)
		sessionKind, inSession := SessionAt(boundary.Position, sessions)

		speechType, keep := resolveType(
			text, boundary, opening, sessionKind, inSession,
			presidingPreceded, isGovernment, words)
		if !keep {
			continue
		}

		category := CategoryWortbeitrag
		if speechType == SpeechRede {
			category = CategoryRede
		}

		name := ExtractNameParts(boundary.Speaker)

		speeches = append(speeches, Speech{
			Speaker:       boundary.Speaker,
			Party:         party,
			Text:          speechText,
			Type:          speechType,
			Category:      category,
			Words:         words,
			FirstName:     name.FirstName,
			LastName:      name.LastName,
			AcademicTitle: name.AcademicTitle,
			Role:          boundary.Role,
			IsGovernment:  isGovernment,
			SpanStart:     spanStart,
			SpanEnd:       spanEnd,
		})
	}

	return speeches
}

// resolveType fuses the context classification, session membership, opening
// classification, boundary adjacency, and word count into the final speech
// type. The second return is false when the span must be dropped.
func resolveType(text string, boundary Boundary, opening SpeechType,
	sessionKind SessionKind, inSession, presidingPreceded, isGovernment bool,
	words int) (SpeechType, bool) {

	// Priority 1: structural markers before the boundary.
	if contextType, ok := ClassifyContext(text, boundary.Position); ok {
		return contextType, true
	}

	// Priority 2: government officials answer in sessions, otherwise they
	// are giving a formal speech (Regierungserklärung, debate).
	if isGovernment {
		if inSession {
			if sessionKind == SessionBefragung {
				return SpeechBefragung, true
			}
			return SpeechFragestundeAntwort, true
		}
		return SpeechRede, true
	}

	// Priority 3: continuations are the tail of an interrupted speech.
	if opening == SpeechContinuation {
		return "", false
	}

	// Priority 4: opening shape combined with a presiding introduction.
	if presidingPreceded && opening == SpeechFragestunde {
		return SpeechFragestunde, true
	}
	if presidingPreceded && (opening == SpeechRede || opening == SpeechPraesidium) {
		return SpeechRede, true
	}

	// Substantial spans keep their opening classification. The Präsidium
	// address is a formal-speech opener, so it is recorded as a Rede here
	// just as it is after a presiding introduction.
	if words >= substantialWordCount {
		switch opening {
		case SpeechOther:
			return SpeechSonstiges, true
		case SpeechPraesidium:
			return SpeechRede, true
		}
		return opening, true
	}

	// Short, non-formal, unclassifiable remainder.
	return "", false
}
