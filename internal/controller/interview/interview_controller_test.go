package interview

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/model"
	"github.com/lshigami/auriter/internal/repair"
	"github.com/lshigami/auriter/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInterviewService answers with canned values; unset funcs report not found.
type stubInterviewService struct {
	details   func(roomID string) (*dto.InterviewDetailsResponse, error)
	questions func(roomID string) (*dto.InterviewQuestionsResponse, error)
	analyze   func(req dto.AnalyzeResponsesRequest) (*dto.AnalyzeResponsesResponse, error)
}

var errInterviewNotFound = &service.Error{Kind: service.ErrNotFound, Message: "Interview not found"}

func (s *stubInterviewService) Schedule(context.Context, *model.User, dto.ScheduleInterviewRequest) (*dto.ScheduleInterviewResponse, error) {
	return nil, errInterviewNotFound
}

func (s *stubInterviewService) GetDetails(_ context.Context, roomID string) (*dto.InterviewDetailsResponse, error) {
	if s.details == nil {
		return nil, errInterviewNotFound
	}
	return s.details(roomID)
}

func (s *stubInterviewService) GetQuestions(_ context.Context, roomID string) (*dto.InterviewQuestionsResponse, error) {
	if s.questions == nil {
		return nil, errInterviewNotFound
	}
	return s.questions(roomID)
}

func (s *stubInterviewService) SubmitResponse(context.Context, string, dto.SubmitResponseRequest) (*dto.InterviewResponseDTO, error) {
	return nil, errInterviewNotFound
}

func (s *stubInterviewService) ListResponses(context.Context, string) ([]dto.InterviewResponseDTO, error) {
	return nil, errInterviewNotFound
}

func (s *stubInterviewService) Analyze(_ context.Context, req dto.AnalyzeResponsesRequest) (*dto.AnalyzeResponsesResponse, error) {
	return s.analyze(req)
}

func (s *stubInterviewService) RoomToken(context.Context, string, string) (*dto.RoomTokenResponse, error) {
	return nil, errInterviewNotFound
}

func newTestRouter(svc service.InterviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := NewInterviewController(svc)
	r.GET("/interviews/:roomId", c.GetInterviewDetails)
	r.GET("/interviews/:roomId/questions", c.GetInterviewQuestions)
	r.POST("/interviews/:roomId/responses", c.SubmitResponse)
	r.POST("/interviews/analyze", c.AnalyzeResponses)
	return r
}

func TestGetInterviewDetails(t *testing.T) {
	svc := &stubInterviewService{details: func(roomID string) (*dto.InterviewDetailsResponse, error) {
		if roomID != "room-1" {
			return nil, errInterviewNotFound
		}
		return &dto.InterviewDetailsResponse{Date: "2026-11-02", Time: "10:00", JobTitle: "Go Developer"}, nil
	}}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/interviews/room-1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var details dto.InterviewDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	assert.Equal(t, "Go Developer", details.JobTitle)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/interviews/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Interview not found", body.Message)
}

func TestGetInterviewQuestionsMissingRoom(t *testing.T) {
	r := newTestRouter(&stubInterviewService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/interviews/unknown/questions", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitResponseValidation(t *testing.T) {
	r := newTestRouter(&stubInterviewService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interviews/room-1/responses", bytes.NewBufferString(`{"question":"Q1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeResponses(t *testing.T) {
	svc := &stubInterviewService{analyze: func(dto.AnalyzeResponsesRequest) (*dto.AnalyzeResponsesResponse, error) {
		return &dto.AnalyzeResponsesResponse{
			Success:  true,
			Analysis: repair.DefaultAnalysis(),
			Status:   string(repair.StatusFallback),
			Warning:  "Analysis output could not be read; default analysis returned",
		}, nil
	}}
	r := newTestRouter(svc)

	t.Run("fallback analysis is still a success", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/interviews/analyze",
			bytes.NewBufferString(`{"roomId":"room-1","questions":["Q1"],"answers":["A1"]}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.AnalyzeResponsesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, repair.DefaultScore, resp.Analysis.OverallScores.SelfIntroduction)
		assert.Len(t, resp.Analysis.FocusAreas, len(repair.DefaultFocusAreas))
		assert.NotEmpty(t, resp.Warning)
	})

	t.Run("missing answers", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/interviews/analyze", bytes.NewBufferString(`{"questions":["Q1"]}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
