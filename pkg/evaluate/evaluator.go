package evaluate

import (
	"context"
	"fmt"

	"github.com/coolbeans/plenum/pkg/protocol"
)

// Result is the complete evaluation outcome for one protocol.
type Result struct {
	// ProtocolID identifies the evaluated protocol.
	ProtocolID string `json:"protocol_id"`

	// DocumentNumber is the official document number, e.g. "21/6".
	DocumentNumber string `json:"document_number,omitempty"`

	// TotalReference is the number of reference speeches.
	TotalReference int `json:"total_reference"`

	// TotalCandidates is the number of extracted speeches.
	TotalCandidates int `json:"total_candidates"`

	// ExactMatches counts pass-1 alignments.
	ExactMatches int `json:"exact_matches"`

	// FuzzyMatches counts pass-2 alignments.
	FuzzyMatches int `json:"fuzzy_matches"`

	// Missed counts reference-only outcomes (recall misses).
	Missed int `json:"missed"`

	// FalsePositives counts candidate-only outcomes.
	FalsePositives int `json:"false_positives"`

	// DuplicatesDetected counts reported duplicate pairs.
	DuplicatesDetected int `json:"duplicates_detected"`

	// Matches is every alignment outcome.
	Matches []SpeechMatch `json:"matches"`

	// Issues collects the tagged free-text notes across all outcomes.
	Issues []string `json:"issues,omitempty"`
}

// Precision is the share of extracted speeches confirmed by the reference:
// (exact+fuzzy) / total candidates. Zero when there are no candidates.
func (r *Result) Precision() float64 {
	if r.TotalCandidates == 0 {
		return 0
	}
	return float64(r.ExactMatches+r.FuzzyMatches) / float64(r.TotalCandidates)
}

// Recall is the share of reference speeches the extraction found:
// (exact+fuzzy) / total references. Zero when there are no references.
func (r *Result) Recall() float64 {
	if r.TotalReference == 0 {
		return 0
	}
	return float64(r.ExactMatches+r.FuzzyMatches) / float64(r.TotalReference)
}

// F1 is the harmonic mean of precision and recall, zero when both are zero.
func (r *Result) F1() float64 {
	p, rec := r.Precision(), r.Recall()
	if p+rec == 0 {
		return 0
	}
	return 2 * p * rec / (p + rec)
}

// ProtocolDocument is one protocol under evaluation.
type ProtocolDocument struct {
	// ID identifies the protocol with the reference provider.
	ID string

	// DocumentNumber is the official document number.
	DocumentNumber string

	// FullText is the raw protocol text.
	FullText string
}

// Evaluator runs the extraction engine and the reference provider against
// the same protocols and scores the results.
type Evaluator struct {
	// Provider supplies the reference extraction per protocol.
	Provider ReferenceProvider

	// Matcher performs the alignment.
	Matcher *Matcher

	// Parser is the extraction engine under evaluation.
	Parser *protocol.Parser
}

// NewEvaluator creates an Evaluator with the default matcher and parser.
func NewEvaluator(provider ReferenceProvider) *Evaluator {
	return &Evaluator{
		Provider: provider,
		Matcher:  NewMatcher(),
		Parser:   protocol.NewParser(),
	}
}

// EvaluateProtocol scores the extraction of a single protocol against the
// reference extraction. A provider failure is returned as a hard error for
// the document; the evaluator does not retry.
func (e *Evaluator) EvaluateProtocol(ctx context.Context, doc ProtocolDocument) (*Result, error) {
	candidates := e.Parser.ParseSpeeches(doc.FullText)

	references, err := e.Provider.References(ctx, doc.ID, doc.FullText)
	if err != nil {
		return nil, fmt.Errorf("reference extraction failed for protocol %s: %w", doc.ID, err)
	}

	matches := e.Matcher.MatchSpeeches(references, candidates)
	duplicates := e.Matcher.DetectDuplicates(candidates)

	result := &Result{
		ProtocolID:         doc.ID,
		DocumentNumber:     doc.DocumentNumber,
		TotalReference:     len(references),
		TotalCandidates:    len(candidates),
		DuplicatesDetected: len(duplicates),
		Matches:            matches,
	}

	for _, match := range matches {
		switch match.Kind {
		case MatchExact:
			result.ExactMatches++
		case MatchFuzzy:
			result.FuzzyMatches++
		case MatchReferenceOnly:
			result.Missed++
		case MatchCandidateOnly:
			result.FalsePositives++
		}
		result.Issues = append(result.Issues, match.Notes...)
	}

	for _, dup := range duplicates {
		result.Issues = append(result.Issues, fmt.Sprintf(
			"DUPLICATE (%.0f%%): %s appears multiple times",
			dup.Similarity*100, dup.First.Speaker))
	}

	return result, nil
}

// EvaluateProtocols evaluates a batch of protocols. An empty batch is a
// configuration error and fails immediately.
func (e *Evaluator) EvaluateProtocols(ctx context.Context, docs []ProtocolDocument) ([]*Result, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("no protocols to evaluate")
	}

	results := make([]*Result, 0, len(docs))
	for _, doc := range docs {
		result, err := e.EvaluateProtocol(ctx, doc)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}
