package dto

import "time"

type CreateJobRequest struct {
	Title          string   `json:"title" binding:"required"`
	Company        string   `json:"company" binding:"required"`
	Location       string   `json:"location"`
	Type           string   `json:"type" binding:"omitempty,oneof=full-time part-time contract internship remote"`
	Description    string   `json:"description" binding:"required"`
	Requirements   []string `json:"requirements"`
	Skills         []string `json:"skills"`
	ExperienceMin  int      `json:"experienceMin" binding:"min=0"`
	ExperienceMax  int      `json:"experienceMax" binding:"min=0"`
	SalaryMin      int      `json:"salaryMin" binding:"min=0"`
	SalaryMax      int      `json:"salaryMax" binding:"min=0"`
	SalaryCurrency string   `json:"salaryCurrency"`
	Status         string   `json:"status" binding:"omitempty,oneof=active closed"`
}

// UpdateJobRequest only touches fields that are present.
type UpdateJobRequest struct {
	Title          *string   `json:"title"`
	Company        *string   `json:"company"`
	Location       *string   `json:"location"`
	Type           *string   `json:"type" binding:"omitempty,oneof=full-time part-time contract internship remote"`
	Description    *string   `json:"description"`
	Requirements   *[]string `json:"requirements"`
	Skills         *[]string `json:"skills"`
	ExperienceMin  *int      `json:"experienceMin" binding:"omitempty,min=0"`
	ExperienceMax  *int      `json:"experienceMax" binding:"omitempty,min=0"`
	SalaryMin      *int      `json:"salaryMin" binding:"omitempty,min=0"`
	SalaryMax      *int      `json:"salaryMax" binding:"omitempty,min=0"`
	SalaryCurrency *string   `json:"salaryCurrency"`
	Status         *string   `json:"status" binding:"omitempty,oneof=active closed"`
}

type JobSearchQuery struct {
	Search        string `form:"search"`
	Location      string `form:"location"`
	Type          string `form:"type"`
	Status        string `form:"status"`
	ExperienceMin int    `form:"experienceMin"`
	ExperienceMax int    `form:"experienceMax"`
	SalaryMin     int    `form:"salaryMin"`
	SalaryMax     int    `form:"salaryMax"`
	Skills        string `form:"skills"` // comma separated, all required
}

type JobResponse struct {
	ID             uint      `json:"id"`
	RecruiterID    uint      `json:"recruiterId"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Type           string    `json:"type"`
	Description    string    `json:"description"`
	Requirements   []string  `json:"requirements"`
	Skills         []string  `json:"skills"`
	ExperienceMin  int       `json:"experienceMin"`
	ExperienceMax  int       `json:"experienceMax"`
	SalaryMin      int       `json:"salaryMin"`
	SalaryMax      int       `json:"salaryMax"`
	SalaryCurrency string    `json:"salaryCurrency"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
