package dto

import (
	"time"

	"github.com/lshigami/auriter/internal/model"
)

type ScheduleInterviewRequest struct {
	ApplicationID uint     `json:"applicationId" binding:"required"`
	Date          string   `json:"date" binding:"required"`
	Time          string   `json:"time" binding:"required"`
	Document      string   `json:"document"`  // Optional: defaults to the job description
	Questions     []string `json:"questions"` // Optional: skips generation when non-empty
}

type ScheduleInterviewResponse struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	InterviewLink string   `json:"interviewLink"`
	RoomID        string   `json:"roomId"`
	Questions     []string `json:"questions"`
	Warning       string   `json:"warning,omitempty"`
}

type InterviewDetailsResponse struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	JobTitle string `json:"jobTitle"`
	Document string `json:"document"`
}

type InterviewQuestionsResponse struct {
	Success   bool     `json:"success"`
	Questions []string `json:"questions"`
	Source    string   `json:"source"`
	Warning   string   `json:"warning,omitempty"`
}

type SubmitResponseRequest struct {
	Question string `json:"question" binding:"required"`
	Response string `json:"response" binding:"required"`
}

type InterviewResponseDTO struct {
	ID        uint      `json:"id"`
	RoomID    string    `json:"roomId"`
	Question  string    `json:"question"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"createdAt"`
}

type AnalyzeResponsesRequest struct {
	RoomID    string   `json:"roomId"`
	Questions []string `json:"questions" binding:"required,min=1"`
	Answers   []string `json:"answers" binding:"required,min=1"`
}

type AnalyzeResponsesResponse struct {
	Success  bool                 `json:"success"`
	Analysis model.AnalysisResult `json:"analysis"`
	Status   string               `json:"status"` // parsed, repaired or fallback
	Warning  string               `json:"warning,omitempty"`
}

type RoomTokenRequest struct {
	Role string `json:"role" binding:"required,oneof=host guest"`
}

type RoomTokenResponse struct {
	Token     string    `json:"token"`
	RoomID    string    `json:"roomId"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}
