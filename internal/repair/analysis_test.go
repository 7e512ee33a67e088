package repair

import (
	"encoding/json"
	"testing"

	"github.com/lshigami/auriter/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAnalysis() model.AnalysisResult {
	return model.AnalysisResult{
		OverallScores: model.CategoryScores{SelfIntroduction: 7, ProjectExplanation: 6, EnglishCommunication: 8},
		Feedback: model.FeedbackSet{
			SelfIntroduction:     model.CategoryFeedback{Strengths: "Confident", AreasOfImprovement: "Shorter"},
			ProjectExplanation:   model.CategoryFeedback{Strengths: "Detailed", AreasOfImprovement: "Structure"},
			EnglishCommunication: model.CategoryFeedback{Strengths: "Fluent", AreasOfImprovement: "Pace"},
		},
		FocusAreas: []string{"Use STAR", "Quantify impact", "Slow down"},
	}
}

func TestRepairAnalysisRoundTrip(t *testing.T) {
	want := validAnalysis()
	raw, err := json.Marshal(want)
	require.NoError(t, err)

	got := RepairAnalysis("Sure! " + string(raw) + " Hope this helps.")
	assert.Equal(t, StatusParsed, got.Status)
	assert.Empty(t, got.Repaired)
	assert.Equal(t, want, got.Result)

	again, err := json.Marshal(got.Result)
	require.NoError(t, err)
	assert.Equal(t, want, RepairAnalysis(string(again)).Result)
}

func TestRepairAnalysisMissingScoreKeepsFeedback(t *testing.T) {
	raw := `{
	  "overallScores": {"selfIntroduction": 7, "projectExplanation": 6},
	  "feedback": {
	    "selfIntroduction": {"strengths": "a", "areasOfImprovement": "b"},
	    "projectExplanation": {"strengths": "c", "areasOfImprovement": "d"},
	    "englishCommunication": {"strengths": "clear", "areasOfImprovement": "grammar"}
	  },
	  "focusAreas": ["x"]
	}`

	got := RepairAnalysis(raw)
	assert.Equal(t, StatusRepaired, got.Status)
	assert.Equal(t, []string{"overallScores.englishCommunication"}, got.Repaired)
	assert.Equal(t, DefaultScore, got.Result.OverallScores.EnglishCommunication)
	assert.Equal(t, model.CategoryFeedback{Strengths: "clear", AreasOfImprovement: "grammar"}, got.Result.Feedback.EnglishCommunication)
	assert.Equal(t, []string{"x"}, got.Result.FocusAreas)
}

func TestRepairAnalysisPatchesFields(t *testing.T) {
	raw := `{
	  "overallScores": {"selfIntroduction": "8", "projectExplanation": 0, "englishCommunication": 14},
	  "feedback": {
	    "selfIntroduction": {"strengths": "good"},
	    "projectExplanation": "not an object"
	  },
	  "focusAreas": []
	}`

	got := RepairAnalysis(raw)
	assert.Equal(t, StatusRepaired, got.Status)

	scores := got.Result.OverallScores
	assert.Equal(t, 8, scores.SelfIntroduction)
	assert.Equal(t, DefaultScore, scores.ProjectExplanation)
	assert.Equal(t, 10, scores.EnglishCommunication)

	fb := got.Result.Feedback
	assert.Equal(t, "good", fb.SelfIntroduction.Strengths)
	assert.Equal(t, DefaultFeedbackText, fb.SelfIntroduction.AreasOfImprovement)
	assert.Equal(t, DefaultFeedbackText, fb.ProjectExplanation.Strengths)
	assert.Equal(t, DefaultFeedbackText, fb.ProjectExplanation.AreasOfImprovement)
	assert.Equal(t, DefaultFeedbackText, fb.EnglishCommunication.Strengths)

	assert.Equal(t, DefaultFocusAreas, got.Result.FocusAreas)
	assert.Contains(t, got.Repaired, "focusAreas")
	assert.Contains(t, got.Repaired, "feedback.englishCommunication")
	assert.Contains(t, got.Repaired, "feedback.selfIntroduction.areasOfImprovement")
}

func TestRepairAnalysisFallback(t *testing.T) {
	inputs := []string{
		"I cannot help with that.",
		"",
		"{not json}",
		"}{",
		`{"overallScores": {"selfIntroduction": 7}`,
	}
	for _, raw := range inputs {
		got := RepairAnalysis(raw)
		assert.Equal(t, StatusFallback, got.Status, raw)
		assert.Equal(t, DefaultAnalysis(), got.Result, raw)
	}
	def := DefaultAnalysis()
	assert.Equal(t, model.CategoryScores{SelfIntroduction: 5, ProjectExplanation: 5, EnglishCommunication: 5}, def.OverallScores)
}

func TestRepairAnalysisAlwaysComplete(t *testing.T) {
	inputs := []string{
		`{}`,
		`{"overallScores": null, "feedback": [], "focusAreas": "x"}`,
		`{"overallScores": {"selfIntroduction": -3}}`,
		`[1,2,3] {"focusAreas": [1, "", "ok"]}`,
		"\x00\xff{\"feedback\":{\"selfIntroduction\":{\"strengths\":\"\"}}}",
	}
	for _, raw := range inputs {
		got := RepairAnalysis(raw).Result
		for _, c := range []int{got.OverallScores.SelfIntroduction, got.OverallScores.ProjectExplanation, got.OverallScores.EnglishCommunication} {
			assert.GreaterOrEqual(t, c, 1, raw)
			assert.LessOrEqual(t, c, 10, raw)
		}
		for _, fb := range []model.CategoryFeedback{got.Feedback.SelfIntroduction, got.Feedback.ProjectExplanation, got.Feedback.EnglishCommunication} {
			assert.NotEmpty(t, fb.Strengths, raw)
			assert.NotEmpty(t, fb.AreasOfImprovement, raw)
		}
		assert.NotEmpty(t, got.FocusAreas, raw)
	}
}

func TestRepairResumeReview(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		got := RepairResumeReview("```json\n{\"feedback\":\"Solid\",\"keyFindings\":[\"Go\"],\"suggestions\":[\"Add metrics\"]}\n```")
		assert.Equal(t, StatusParsed, got.Status)
		assert.Equal(t, ResumeReview{Feedback: "Solid", KeyFindings: []string{"Go"}, Suggestions: []string{"Add metrics"}}, got.Review)
	})
	t.Run("lists defaulted", func(t *testing.T) {
		got := RepairResumeReview(`{"feedback":"Solid"}`)
		assert.Equal(t, StatusRepaired, got.Status)
		assert.Empty(t, got.Review.KeyFindings)
		assert.NotNil(t, got.Review.Suggestions)
	})
	t.Run("missing feedback", func(t *testing.T) {
		assert.Equal(t, StatusFallback, RepairResumeReview(`{"keyFindings":["x"]}`).Status)
		assert.Equal(t, StatusFallback, RepairResumeReview("no json").Status)
	})
}
