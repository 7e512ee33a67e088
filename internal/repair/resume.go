package repair

import (
	"encoding/json"
	"strings"
)

// ResumeReview is the structured critique of an uploaded resume.
type ResumeReview struct {
	Feedback    string   `json:"feedback"`
	KeyFindings []string `json:"keyFindings"`
	Suggestions []string `json:"suggestions"`
}

// ResumeOutcome is the result of RepairResumeReview. A StatusFallback
// outcome carries an empty review and should be treated as unavailable.
type ResumeOutcome struct {
	Review ResumeReview
	Status Status
}

// RepairResumeReview parses a resume critique object. The free-text feedback
// is required; the two lists default to empty.
func RepairResumeReview(raw string) ResumeOutcome {
	var doc map[string]json.RawMessage
	if !decode(raw, '{', '}', &doc) {
		return ResumeOutcome{Status: StatusFallback}
	}
	feedback, ok := text(doc["feedback"])
	if !ok {
		return ResumeOutcome{Status: StatusFallback}
	}

	review := ResumeReview{
		Feedback:    strings.TrimSpace(feedback),
		KeyFindings: stringList(doc["keyFindings"]),
		Suggestions: stringList(doc["suggestions"]),
	}
	status := StatusParsed
	if review.KeyFindings == nil {
		review.KeyFindings = []string{}
		status = StatusRepaired
	}
	if review.Suggestions == nil {
		review.Suggestions = []string{}
		status = StatusRepaired
	}
	return ResumeOutcome{Review: review, Status: status}
}
