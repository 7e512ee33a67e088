package repair

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/lshigami/auriter/internal/model"
)

const (
	// DefaultFeedbackText fills any feedback field the model left out.
	DefaultFeedbackText = "Unable to generate detailed feedback"
	// DefaultScore replaces missing, zero or non-numeric scores.
	DefaultScore = 5

	minScore = 1
	maxScore = 10
)

// DefaultFocusAreas replaces a missing or empty focus area list.
var DefaultFocusAreas = []string{
	"Improve communication clarity and structure",
	"Enhance technical explanation skills",
	"Work on presentation of self-introduction",
}

// AnalysisOutcome carries the repaired analysis and the dotted paths of
// every field that had to be filled in.
type AnalysisOutcome struct {
	Result   model.AnalysisResult
	Status   Status
	Repaired []string
}

// DefaultAnalysis is the analysis returned when nothing could be parsed.
func DefaultAnalysis() model.AnalysisResult {
	var result model.AnalysisResult
	fb := model.CategoryFeedback{Strengths: DefaultFeedbackText, AreasOfImprovement: DefaultFeedbackText}
	for _, c := range model.AnalysisCategories {
		result.OverallScores.SetScore(c, DefaultScore)
		result.Feedback.SetFeedback(c, fb)
	}
	result.FocusAreas = cloneStrings(DefaultFocusAreas)
	return result
}

// RepairAnalysis parses an interview analysis object out of model output and
// back-fills every score, feedback entry and the focus areas.
func RepairAnalysis(raw string) AnalysisOutcome {
	var doc map[string]json.RawMessage
	if !decode(raw, '{', '}', &doc) {
		return AnalysisOutcome{Result: DefaultAnalysis(), Status: StatusFallback}
	}

	var (
		result   model.AnalysisResult
		repaired []string
	)
	scores := section(doc["overallScores"])
	feedback := section(doc["feedback"])

	for _, c := range model.AnalysisCategories {
		score, ok := parseScore(scores[c])
		if !ok {
			repaired = append(repaired, "overallScores."+c)
		}
		result.OverallScores.SetScore(c, score)

		entry := feedback[c]
		if entry == nil {
			repaired = append(repaired, "feedback."+c)
			result.Feedback.SetFeedback(c, model.CategoryFeedback{
				Strengths:          DefaultFeedbackText,
				AreasOfImprovement: DefaultFeedbackText,
			})
			continue
		}
		fields := section(entry)
		strengths, ok := text(fields["strengths"])
		if !ok {
			strengths = DefaultFeedbackText
			repaired = append(repaired, "feedback."+c+".strengths")
		}
		areas, ok := text(fields["areasOfImprovement"])
		if !ok {
			areas = DefaultFeedbackText
			repaired = append(repaired, "feedback."+c+".areasOfImprovement")
		}
		result.Feedback.SetFeedback(c, model.CategoryFeedback{Strengths: strengths, AreasOfImprovement: areas})
	}

	result.FocusAreas = stringList(doc["focusAreas"])
	if len(result.FocusAreas) == 0 {
		result.FocusAreas = cloneStrings(DefaultFocusAreas)
		repaired = append(repaired, "focusAreas")
	}

	status := StatusParsed
	if len(repaired) > 0 {
		status = StatusRepaired
	}
	return AnalysisOutcome{Result: result, Status: status, Repaired: repaired}
}

// section decodes a JSON object into its raw members; anything else is empty.
func section(raw json.RawMessage) map[string]json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

// parseScore accepts JSON numbers and numeric strings. It reports false when
// the default had to be used or the value was adjusted into range.
func parseScore(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return DefaultScore, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return DefaultScore, false
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return DefaultScore, false
		}
		f = parsed
	}
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return DefaultScore, false
	}
	score := int(math.Round(f))
	clamped := min(max(score, minScore), maxScore)
	return clamped, clamped == score && float64(score) == f
}

func text(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

func stringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
