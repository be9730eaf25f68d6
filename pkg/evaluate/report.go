package evaluate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ToJSON serializes the evaluation result to JSON.
func (r *Result) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// String returns a human-readable string representation.
func (r *Result) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Evaluation Results for Protocol %s", r.ProtocolID))
	if r.DocumentNumber != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", r.DocumentNumber))
	}
	sb.WriteString("\n")
	sb.WriteString("=" + strings.Repeat("=", 50) + "\n\n")

	sb.WriteString("Summary:\n")
	sb.WriteString(fmt.Sprintf("  Reference speeches: %d\n", r.TotalReference))
	sb.WriteString(fmt.Sprintf("  Extracted speeches: %d\n", r.TotalCandidates))
	sb.WriteString(fmt.Sprintf("  Exact matches: %d\n", r.ExactMatches))
	sb.WriteString(fmt.Sprintf("  Fuzzy matches: %d\n", r.FuzzyMatches))
	sb.WriteString(fmt.Sprintf("  Missed: %d\n", r.Missed))
	sb.WriteString(fmt.Sprintf("  False positives: %d\n", r.FalsePositives))
	sb.WriteString(fmt.Sprintf("  Duplicates detected: %d\n\n", r.DuplicatesDetected))

	sb.WriteString("Metrics:\n")
	sb.WriteString(fmt.Sprintf("  Precision: %.3f\n", r.Precision()))
	sb.WriteString(fmt.Sprintf("  Recall: %.3f\n", r.Recall()))
	sb.WriteString(fmt.Sprintf("  F1: %.3f\n", r.F1()))

	if len(r.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		for _, issue := range r.Issues {
			sb.WriteString(fmt.Sprintf("  - %s\n", issue))
		}
	}

	return sb.String()
}

// FormatTable formats the batch summary as a table, one row per protocol.
func FormatTable(results []*Result) string {
	var sb strings.Builder

	sb.WriteString("+------------+------+------+-------+-------+--------+------+-----------+--------+------+\n")
	sb.WriteString("| Protocol   | Ref  | Cand | Exact | Fuzzy | Missed | FP   | Precision | Recall | F1   |\n")
	sb.WriteString("+------------+------+------+-------+-------+--------+------+-----------+--------+------+\n")

	for _, r := range results {
		label := r.DocumentNumber
		if label == "" {
			label = r.ProtocolID
		}
		if len(label) > 10 {
			label = label[:10]
		}
		sb.WriteString(fmt.Sprintf("| %-10s | %4d | %4d | %5d | %5d | %6d | %4d | %9.3f | %6.3f | %.2f |\n",
			label, r.TotalReference, r.TotalCandidates, r.ExactMatches, r.FuzzyMatches,
			r.Missed, r.FalsePositives, r.Precision(), r.Recall(), r.F1()))
	}

	sb.WriteString("+------------+------+------+-------+-------+--------+------+-----------+--------+------+\n")

	return sb.String()
}
