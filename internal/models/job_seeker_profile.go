package models

import (
	"gorm.io/datatypes"
)

type JobSeekerProfile struct {
	BaseModel
	UserID     string         `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FullName   string         `gorm:"not null" json:"full_name"`
	Phone      string         `json:"phone"`
	Skills     datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Education  string         `json:"education"`
	Experience string         `json:"experience"`
	ResumeURL  string         `json:"resume_url"`
}
