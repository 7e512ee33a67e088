package model

// Analysis categories scored for every interview.
const (
	CategorySelfIntroduction     = "selfIntroduction"
	CategoryProjectExplanation   = "projectExplanation"
	CategoryEnglishCommunication = "englishCommunication"
)

// AnalysisCategories lists the scored categories in report order.
var AnalysisCategories = []string{
	CategorySelfIntroduction,
	CategoryProjectExplanation,
	CategoryEnglishCommunication,
}

type CategoryScores struct {
	SelfIntroduction     int `json:"selfIntroduction"`
	ProjectExplanation   int `json:"projectExplanation"`
	EnglishCommunication int `json:"englishCommunication"`
}

type CategoryFeedback struct {
	Strengths          string `json:"strengths"`
	AreasOfImprovement string `json:"areasOfImprovement"`
}

type FeedbackSet struct {
	SelfIntroduction     CategoryFeedback `json:"selfIntroduction"`
	ProjectExplanation   CategoryFeedback `json:"projectExplanation"`
	EnglishCommunication CategoryFeedback `json:"englishCommunication"`
}

// AnalysisResult is the scored feedback for a whole interview. It is not persisted.
type AnalysisResult struct {
	OverallScores CategoryScores `json:"overallScores"`
	Feedback      FeedbackSet    `json:"feedback"`
	FocusAreas    []string       `json:"focusAreas"`
}

// SetScore assigns the score of a named category. Unknown names are ignored.
func (s *CategoryScores) SetScore(category string, score int) {
	switch category {
	case CategorySelfIntroduction:
		s.SelfIntroduction = score
	case CategoryProjectExplanation:
		s.ProjectExplanation = score
	case CategoryEnglishCommunication:
		s.EnglishCommunication = score
	}
}

// SetFeedback assigns the feedback of a named category. Unknown names are ignored.
func (f *FeedbackSet) SetFeedback(category string, fb CategoryFeedback) {
	switch category {
	case CategorySelfIntroduction:
		f.SelfIntroduction = fb
	case CategoryProjectExplanation:
		f.ProjectExplanation = fb
	case CategoryEnglishCommunication:
		f.EnglishCommunication = fb
	}
}
