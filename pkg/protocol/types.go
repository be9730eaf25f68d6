// Package protocol extracts structured speech records from raw transcripts
// of Bundestag plenary sessions. It segments a protocol into speaker turns,
// attributes each turn to a speaker and party, and classifies the kind of
// contribution using a deterministic rule cascade.
package protocol

// SpeechType labels the kind of a parliamentary contribution.
type SpeechType string

const (
	// SpeechRede is a formal floor speech, usually opened with a formal
	// address to the presiding officer.
	SpeechRede SpeechType = "rede"
	// SpeechPraesidium is a formal speech opened with an address to the
	// Präsidium rather than the president. Treated as formal downstream.
	SpeechPraesidium SpeechType = "praesidium"
	// SpeechBefragung is a government answer during a Befragung der
	// Bundesregierung.
	SpeechBefragung SpeechType = "befragung"
	// SpeechFragestunde is a member question during question time.
	SpeechFragestunde SpeechType = "fragestunde"
	// SpeechFragestundeAntwort is a government answer during question time.
	SpeechFragestundeAntwort SpeechType = "fragestunde_antwort"
	// SpeechZwischenfrage is an intermediate question or a reply to one.
	SpeechZwischenfrage SpeechType = "zwischenfrage"
	// SpeechAbstimmung is a declaration explaining a vote.
	SpeechAbstimmung SpeechType = "abstimmung"
	// SpeechStatement is a prepared policy statement.
	SpeechStatement SpeechType = "statement"
	// SpeechProtokoll is a statement given to the record.
	SpeechProtokoll SpeechType = "protokoll"
	// SpeechOrtskraefte is the coordinated Ortskräfte statement.
	SpeechOrtskraefte SpeechType = "ortskraefte"
	// SpeechContinuation marks the tail of an interrupted earlier speech.
	// Continuations never produce a record.
	SpeechContinuation SpeechType = "continuation"
	// SpeechSonstiges is a substantial contribution that fits no other type.
	SpeechSonstiges SpeechType = "sonstiges"
	// SpeechOther means the opening could not be classified.
	SpeechOther SpeechType = "other"
)

// Category is the high-level split between formal speeches and everything
// else.
type Category string

const (
	// CategoryRede covers formal floor speeches.
	CategoryRede Category = "rede"
	// CategoryWortbeitrag covers all other recorded contributions.
	CategoryWortbeitrag Category = "wortbeitrag"
)

// Speech is one attributed, classified speaker turn. Records are immutable
// once emitted.
type Speech struct {
	// Speaker is the full speaker name as written in the protocol.
	Speaker string `json:"speaker"`

	// Party is the canonical party identifier. Empty only for government
	// officials whose roster lookup failed.
	Party string `json:"party,omitempty"`

	// Text is the speech text with parenthetical annotations stripped.
	Text string `json:"text"`

	// Type is the classified speech type.
	Type SpeechType `json:"type"`

	// Category is CategoryRede iff Type is SpeechRede.
	Category Category `json:"category"`

	// Words is the word count of Text.
	Words int `json:"words"`

	// FirstName, LastName, and AcademicTitle are the decomposed name parts.
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	AcademicTitle string `json:"acad_title,omitempty"`

	// Role is the government role for official speakers, empty otherwise.
	Role string `json:"role,omitempty"`

	// IsGovernment reports whether the speaker spoke in official capacity.
	IsGovernment bool `json:"is_government"`

	// SpanStart and SpanEnd delimit the raw span in the normalized text.
	SpanStart int `json:"span_start"`
	SpanEnd   int `json:"span_end"`
}
