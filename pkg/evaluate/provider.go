package evaluate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// ReferenceProvider produces the independent reference extraction for a
// protocol. Implementations may be slow or rate-limited; retry and backoff
// policy belongs to them, not to the evaluator.
type ReferenceProvider interface {
	References(ctx context.Context, protocolID, fullText string) ([]ReferenceSpeech, error)
}

// fencedJSONPattern extracts the body of a markdown code fence.
var fencedJSONPattern = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")

// bareArrayPattern finds the outermost JSON array in a reply.
var bareArrayPattern = regexp.MustCompile(`\[[\s\S]*\]`)

// DecodeReferenceList decodes a reference extraction reply tolerantly:
// direct JSON first, then a fenced code block, then the outermost bare
// array. Individual malformed entries are skipped rather than failing the
// document; an undecodable reply yields an empty list.
func DecodeReferenceList(raw string) []ReferenceSpeech {
	if speeches, ok := decodeSpeechArray([]byte(raw)); ok {
		return speeches
	}

	if m := fencedJSONPattern.FindStringSubmatch(raw); m != nil {
		if speeches, ok := decodeSpeechArray([]byte(m[1])); ok {
			return speeches
		}
	}

	if m := bareArrayPattern.FindString(raw); m != "" {
		if speeches, ok := decodeSpeechArray([]byte(m)); ok {
			return speeches
		}
	}

	return nil
}

// decodeSpeechArray decodes a JSON array entry by entry, skipping entries
// that do not decode.
func decodeSpeechArray(data []byte) ([]ReferenceSpeech, bool) {
	var rawEntries []json.RawMessage
	if err := json.Unmarshal(data, &rawEntries); err != nil {
		return nil, false
	}

	speeches := make([]ReferenceSpeech, 0, len(rawEntries))
	for _, entry := range rawEntries {
		var speech ReferenceSpeech
		if err := json.Unmarshal(entry, &speech); err != nil {
			continue
		}
		if speech.Speaker == "" {
			speech.Speaker = "Unknown"
		}
		speeches = append(speeches, speech)
	}

	return speeches, true
}

// FileProvider serves reference extractions from JSON files on disk, one
// file per protocol named <id>.json. Useful for cached replies and tests.
type FileProvider struct {
	// Dir is the directory holding the reference files.
	Dir string
}

// References loads the reference list for a protocol from disk.
func (p *FileProvider) References(ctx context.Context, protocolID, fullText string) ([]ReferenceSpeech, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(p.Dir, protocolID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference file: %w", err)
	}

	return DecodeReferenceList(string(data)), nil
}
