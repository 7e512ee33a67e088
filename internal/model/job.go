package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

type Job struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	RecruiterID    uint           `json:"recruiter_id" gorm:"not null;index"`
	Title          string         `json:"title" gorm:"not null"`
	Company        string         `json:"company" gorm:"not null"`
	Location       string         `json:"location" gorm:"index"`
	Type           string         `json:"type" gorm:"index"` // full-time, part-time, contract, internship, remote
	Description    string         `json:"description" gorm:"type:text;not null"`
	Requirements   []string       `json:"requirements" gorm:"type:jsonb;serializer:json"`
	Skills         []string       `json:"skills" gorm:"type:jsonb;serializer:json"`
	ExperienceMin  int            `json:"experience_min"`
	ExperienceMax  int            `json:"experience_max"`
	SalaryMin      int            `json:"salary_min"`
	SalaryMax      int            `json:"salary_max"`
	SalaryCurrency string         `json:"salary_currency" gorm:"default:USD"`
	Status         string         `json:"status" gorm:"not null;default:active;index"`
	CreatedAt      time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (j *Job) IsActive() bool {
	return j.Status == JobStatusActive
}
