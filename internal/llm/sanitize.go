package llm

import "strings"

// SanitizeJSON isolates a JSON object from a raw model reply. Models routinely wrap
// their output in markdown code fences or surround it with prose; this strips the
// fences and cuts the text down to the first '{' through the last '}'. If no object
// boundaries are found the trimmed input is returned as-is, which may well be
// unparseable. The caller owns that failure.
func SanitizeJSON(raw string) string {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start != -1 && end != -1 && start <= end {
		return clean[start : end+1]
	}

	return strings.TrimSpace(clean)
}
