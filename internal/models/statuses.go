package models

type UserRole string
type JobStatus string
type JobType string
type ApplicationStatus string

const (
	UserRoleJobSeeker UserRole = "job_seeker"
	UserRoleEmployer  UserRole = "employer"
	UserRoleAdmin     UserRole = "admin"

	JobStatusActive  JobStatus = "active"
	JobStatusClosed  JobStatus = "closed"
	JobStatusExpired JobStatus = "expired"

	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"
	JobTypeRemote     JobType = "remote"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
)

// ValidJobTypes lists every accepted job type, in display order.
var ValidJobTypes = []JobType{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeContract,
	JobTypeInternship,
	JobTypeFreelance,
	JobTypeRemote,
}

// ValidApplicationStatuses lists every accepted application status. The
// workflow allows any status to move to any other, so this is the whole
// transition table.
var ValidApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusReviewed,
	ApplicationStatusShortlisted,
	ApplicationStatusRejected,
	ApplicationStatusAccepted,
}

func (t JobType) Valid() bool {
	for _, v := range ValidJobTypes {
		if t == v {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) Valid() bool {
	for _, v := range ValidApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusActive, JobStatusClosed, JobStatusExpired:
		return true
	default:
		return false
	}
}
