package models

import "time"

// Application links a job seeker to a job. The composite unique index on
// (job_id, applicant_id) is the authoritative one-application-per-job
// invariant; service-level existence checks are only a fast path for a
// better error message.
type Application struct {
	ID          string            `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"job_id"`
	ApplicantID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"applicant_id"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	AppliedAt   time.Time         `gorm:"default:now()" json:"applied_at"`
}
