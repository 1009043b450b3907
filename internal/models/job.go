package models

import (
	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"not null" json:"description"`
	Location    string         `gorm:"not null" json:"location"`
	JobType     JobType        `gorm:"type:varchar(20);not null" json:"job_type"`
	SalaryMin   float64        `json:"salary_min"`
	SalaryMax   float64        `json:"salary_max"`
	Currency    string         `gorm:"type:varchar(10);default:'USD'" json:"currency"`
	Skills      datatypes.JSON `gorm:"type:jsonb" json:"skills"`

	// Company fields are snapshotted from the employer profile at creation
	// time so listings never need a profile join. Profile edits do not
	// propagate to existing jobs.
	CompanyName      string `json:"company_name"`
	CompanyLogo      string `json:"company_logo"`
	CompanyProfileID string `json:"company_profile_id"`

	EmployerID string    `gorm:"type:uuid;not null;index" json:"employer_id"`
	Status     JobStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
}
