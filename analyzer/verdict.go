package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseVerdict decodes the model's JSON answer. Models occasionally wrap
// the object in prose or a code fence, so on a direct unmarshal failure
// the outermost braces are extracted and retried.
func parseVerdict(text string, out any) error {
	if err := json.Unmarshal([]byte(text), out); err == nil {
		return nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return fmt.Errorf("no JSON object in response")
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), out); err != nil {
		return fmt.Errorf("decode response object: %w", err)
	}
	return nil
}
