package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

// --- Application requests ---

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
}

// --- Application responses ---

// JobSnapshot is the read-only job slice attached to an applicant's listing.
type JobSnapshot struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	CompanyName string           `json:"company_name"`
	Location    string           `json:"location"`
	Status      models.JobStatus `json:"status"`
}

// ApplicantSnapshot is the display slice attached to an employer's listing.
type ApplicantSnapshot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	ResumeURL string `json:"resume_url,omitempty"`
}

type ApplicationForApplicant struct {
	ID        string                   `json:"id"`
	Status    models.ApplicationStatus `json:"status"`
	AppliedAt time.Time                `json:"applied_at"`
	Job       JobSnapshot              `json:"job"`
}

type ApplicationForEmployer struct {
	ID        string                   `json:"id"`
	Status    models.ApplicationStatus `json:"status"`
	AppliedAt time.Time                `json:"applied_at"`
	JobID     string                   `json:"job_id"`
	JobTitle  string                   `json:"job_title"`
	Applicant ApplicantSnapshot        `json:"applicant"`
}
