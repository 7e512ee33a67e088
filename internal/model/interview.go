package model

import "time"

// Interview is a scheduled mock interview identified by its room token.
// Questions holds only the technical list; the behavioral set is added on read.
type Interview struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	RoomID         string    `json:"room_id" gorm:"not null;uniqueIndex"`
	ApplicationID  uint      `json:"application_id" gorm:"index"`
	RecruiterID    uint      `json:"recruiter_id" gorm:"index"`
	Date           string    `json:"date" gorm:"not null"`
	Time           string    `json:"time" gorm:"not null"`
	JobTitle       string    `json:"job_title"`
	Document       string    `json:"document" gorm:"type:text"`
	CandidateEmail string    `json:"candidate_email"`
	Questions      []string  `json:"questions" gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (i *Interview) HasQuestions() bool {
	return len(i.Questions) > 0
}

// InterviewResponse is one submitted answer. Rows are never updated.
type InterviewResponse struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	RoomID    string    `json:"room_id" gorm:"not null;index"`
	Question  string    `json:"question" gorm:"type:text;not null"`
	Response  string    `json:"response" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}
