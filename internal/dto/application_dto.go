package dto

import (
	"time"

	"github.com/lshigami/auriter/internal/model"
)

type ResumeAnalysisResponse struct {
	Feedback    string   `json:"feedback"`
	KeyFindings []string `json:"keyFindings"`
	Suggestions []string `json:"suggestions"`
}

type ApplicationResponse struct {
	ID              uint                    `json:"id"`
	JobID           uint                    `json:"jobId"`
	Job             *JobResponse            `json:"job,omitempty"`
	ApplicantID     uint                    `json:"applicantId"`
	ApplicantName   string                  `json:"applicantName,omitempty"`
	ApplicantEmail  string                  `json:"applicantEmail,omitempty"`
	ResumePath      string                  `json:"resumePath"`
	CoverLetter     string                  `json:"coverLetter,omitempty"`
	AdditionalNotes string                  `json:"additionalNotes,omitempty"`
	Status          string                  `json:"status"`
	ResumeAnalysis  *ResumeAnalysisResponse `json:"resumeAnalysis,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

type SubmitApplicationResponse struct {
	Success     bool                `json:"success"`
	Application ApplicationResponse `json:"application"`
	Warning     string              `json:"warning,omitempty"`
}

type ApplicationSearchQuery struct {
	SearchTerm string `form:"searchTerm"`
	Status     string `form:"status"`
	JobType    string `form:"jobType"`
	DateRange  string `form:"dateRange"` // "start,end" as YYYY-MM-DD
}

type ApplicationListResponse struct {
	Success      bool                   `json:"success"`
	Applications []ApplicationResponse  `json:"applications"`
	Stats        model.ApplicationStats `json:"stats"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateApplicationStatusResponse struct {
	Success     bool                   `json:"success"`
	Application ApplicationResponse    `json:"application"`
	Stats       model.ApplicationStats `json:"stats"`
}
