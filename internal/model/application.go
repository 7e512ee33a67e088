package model

import "time"

const (
	ApplicationPending     = "pending"
	ApplicationReviewed    = "reviewed"
	ApplicationShortlisted = "shortlisted"
	ApplicationRejected    = "rejected"
)

// ApplicationStatuses lists every status a recruiter may set.
var ApplicationStatuses = []string{
	ApplicationPending,
	ApplicationReviewed,
	ApplicationShortlisted,
	ApplicationRejected,
}

type JobApplication struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	JobID           uint            `json:"job_id" gorm:"not null;uniqueIndex:idx_job_applicant"`
	Job             *Job            `json:"job,omitempty" gorm:"foreignKey:JobID"`
	ApplicantID     uint            `json:"applicant_id" gorm:"not null;uniqueIndex:idx_job_applicant"`
	Applicant       *User           `json:"applicant,omitempty" gorm:"foreignKey:ApplicantID"`
	ResumePath      string          `json:"resume_path" gorm:"not null"`
	CoverLetter     string          `json:"cover_letter,omitempty" gorm:"type:text"`
	AdditionalNotes string          `json:"additional_notes,omitempty" gorm:"type:text"`
	Status          string          `json:"status" gorm:"not null;default:pending;index"`
	ResumeAnalysis  *ResumeAnalysis `json:"resume_analysis,omitempty" gorm:"foreignKey:ApplicationID"`
	CreatedAt       time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ResumeAnalysis is the AI critique stored for an application's resume.
type ResumeAnalysis struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ApplicationID uint      `json:"application_id" gorm:"not null;uniqueIndex"`
	Feedback      string    `json:"feedback" gorm:"type:text;not null"`
	KeyFindings   []string  `json:"key_findings" gorm:"type:jsonb;serializer:json"`
	Suggestions   []string  `json:"suggestions" gorm:"type:jsonb;serializer:json"`
	CreatedAt     time.Time `json:"created_at"`
}

// ApplicationStats counts applications by status.
type ApplicationStats struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	Reviewed    int64 `json:"reviewed"`
	Shortlisted int64 `json:"shortlisted"`
	Rejected    int64 `json:"rejected"`
}
