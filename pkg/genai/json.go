package genai

import (
	"strings"
)

// StripFences removes a surrounding markdown code fence from model output.
// Models regularly wrap JSON replies in ```json blocks despite being asked
// not to.
func StripFences(text string) string {
	content := strings.TrimSpace(text)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	parts := strings.SplitN(content, "```", 3)
	if len(parts) < 2 {
		return content
	}
	content = parts[1]
	content = strings.TrimPrefix(content, "json")
	return strings.TrimSpace(content)
}

// ExtractArray returns the first top-level JSON array in the text, or the
// cleaned text unchanged when no brackets are found.
func ExtractArray(text string) string {
	content := StripFences(text)
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return content
	}
	return content[start : end+1]
}
