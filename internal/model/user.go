package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleJobSeeker = "jobSeeker"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	Name               string         `json:"name" gorm:"not null"`
	Email              string         `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash       string         `json:"-" gorm:"not null"`
	Role               string         `json:"role" gorm:"not null;default:jobSeeker"`
	RoleSelected       bool           `json:"role_selected" gorm:"not null;default:false"`
	CompanyName        string         `json:"company_name,omitempty"`
	CompanyWebsite     string         `json:"company_website,omitempty"`
	CompanyDescription string         `json:"company_description,omitempty" gorm:"type:text"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsRecruiter() bool {
	return u.Role == RoleRecruiter
}
