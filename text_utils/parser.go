package text_utils

import (
	"encoding/json"
	"generate-persona-audio/domain"
	"strings"
)

// ExtractObject locates the first '{' and the last '}' in raw model
// output and decodes the enclosed substring as a JSON object. Prose
// around the object is ignored.
func ExtractObject(raw string) (map[string]any, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &domain.ParseError{Reason: "no JSON object found in response"}
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &fields); err != nil {
		return nil, &domain.ParseError{Reason: "malformed JSON object in response", Err: err}
	}

	return fields, nil
}

// SplitSegments splits raw model output on delimiter, trims whitespace
// from every segment and drops segments shorter than minLength
// characters. Order is preserved; there is no guarantee on how many
// segments survive.
func SplitSegments(raw string, delimiter string, minLength int) []string {
	parts := strings.Split(raw, delimiter)
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		cleaned := strings.TrimSpace(part)
		if len(cleaned) > minLength {
			segments = append(segments, cleaned)
		}
	}
	return segments
}
