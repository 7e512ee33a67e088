package repair

import (
	"regexp"
	"strings"
)

// DefaultQuestions is returned when model output holds no usable question array.
var DefaultQuestions = []string{
	"Tell me about yourself and your experience.",
	"What are your strengths and weaknesses?",
	"Describe a challenging project you've worked on.",
	"How do you handle stress and pressure?",
	"Why are you interested in this position?",
}

const (
	minParsedQuestions = 3
	maxHeuristic       = 5
	minHeuristicLength = 20
)

var (
	numberedLine  = regexp.MustCompile(`^\d+[).]?\s*[A-Z]`)
	numericMarker = regexp.MustCompile(`^\d+[).]?\s*`)
	questionWords = []string{"how", "what", "describe"}
)

// QuestionResult is the outcome of ParseQuestions.
type QuestionResult struct {
	Status    Status
	Questions []string
}

// ParseQuestions extracts a list of question strings from model output.
// Entries may be plain strings or objects carrying a "question" field.
func ParseQuestions(raw string) QuestionResult {
	var items []any
	if !decode(raw, '[', ']', &items) {
		return QuestionResult{Status: StatusFallback, Questions: cloneStrings(DefaultQuestions)}
	}

	questions := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if q := strings.TrimSpace(v); q != "" {
				questions = append(questions, q)
			}
		case map[string]any:
			if s, ok := v["question"].(string); ok {
				if q := strings.TrimSpace(s); q != "" {
					questions = append(questions, q)
				}
			}
		}
	}
	return QuestionResult{Status: StatusParsed, Questions: questions}
}

// HeuristicQuestions pulls numbered question-like lines out of a document.
func HeuristicQuestions(document string) []string {
	var out []string
	for _, line := range strings.Split(document, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= minHeuristicLength || !numberedLine.MatchString(line) {
			continue
		}
		lower := strings.ToLower(line)
		matched := false
		for _, w := range questionWords {
			if strings.Contains(lower, w) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		out = append(out, strings.TrimSpace(numericMarker.ReplaceAllString(line, "")))
		if len(out) == maxHeuristic {
			break
		}
	}
	return out
}

// SupplementQuestions replaces a short parsed list with questions found
// directly in the document, when there are any.
func SupplementQuestions(parsed []string, document string) []string {
	if len(parsed) >= minParsedQuestions {
		return parsed
	}
	if heuristic := HeuristicQuestions(document); len(heuristic) > 0 {
		return heuristic
	}
	return parsed
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
