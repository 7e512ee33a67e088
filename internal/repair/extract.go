// Package repair turns free-form language model output into well-formed values.
// Every exported function is total: malformed input yields a default, never an error.
package repair

import (
	"encoding/json"
	"regexp"
	"strings"
)

var thinkBlock = regexp.MustCompile(`(?s)<think>.*?</think>`)

// Status reports how a value was obtained from model output.
type Status string

const (
	StatusParsed   Status = "parsed"
	StatusRepaired Status = "repaired"
	StatusFallback Status = "fallback"
)

// ExtractJSONArray returns the substring from the first '[' to the last ']'.
func ExtractJSONArray(raw string) (string, bool) {
	return extract(raw, '[', ']')
}

// ExtractJSONObject returns the substring from the first '{' to the last '}'.
func ExtractJSONObject(raw string) (string, bool) {
	return extract(raw, '{', '}')
}

func extract(raw string, open, close byte) (string, bool) {
	cleaned := thinkBlock.ReplaceAllString(raw, "")
	start := strings.IndexByte(cleaned, open)
	end := strings.LastIndexByte(cleaned, close)
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return cleaned[start : end+1], true
}

// decode unmarshals the greedy candidate and, when that fails because of
// trailing commentary that contains a closing bracket, retries with the
// first balanced group.
func decode(raw string, open, close byte, v any) bool {
	candidate, ok := extract(raw, open, close)
	if !ok {
		return false
	}
	if json.Unmarshal([]byte(candidate), v) == nil {
		return true
	}
	balanced, ok := firstBalanced(candidate, open, close)
	if !ok || balanced == candidate {
		return false
	}
	return json.Unmarshal([]byte(balanced), v) == nil
}

// firstBalanced scans from s[0] (an opener) to its matching closer,
// skipping brackets inside JSON strings.
func firstBalanced(s string, open, close byte) (string, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}
