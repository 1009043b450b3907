package dto

import (
	"jobportal_backend/internal/models"
)

// --- Job requests ---

type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"required,max=10000"`
	Location    string   `json:"location" validate:"required,max=200"`
	JobType     string   `json:"job_type" validate:"required,is-job-type"`
	SalaryMin   float64  `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax   float64  `json:"salary_max" validate:"omitempty,min=0,gtefield=SalaryMin"`
	Currency    string   `json:"currency" validate:"omitempty,max=10"`
	Skills      []string `json:"skills" validate:"omitempty,dive,min=1,max=60"`
}

type UpdateJobRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=10000"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	JobType     *string  `json:"job_type,omitempty" validate:"omitempty,is-job-type"`
	SalaryMin   *float64 `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax   *float64 `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	Currency    *string  `json:"currency,omitempty" validate:"omitempty,max=10"`
	Skills      []string `json:"skills,omitempty" validate:"omitempty,dive,min=1,max=60"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,is-job-status"`
}

type SearchJobsRequest struct {
	Keyword  string `form:"keyword" json:"keyword"`
	Location string `form:"location" json:"location"`
	JobType  string `form:"jobType" json:"job_type" validate:"omitempty"`
	Page     int    `form:"page" json:"page"`
	PageSize int    `form:"limit" json:"limit"`
}

// --- Job responses ---

type JobResponse struct {
	models.Job
	Skills []string `json:"skills"`
}

type JobListResponse struct {
	Jobs        []JobResponse `json:"jobs"`
	TotalJobs   int64         `json:"totalJobs"`
	TotalPages  int64         `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}
