package services

import (
	"context"
	"errors"
	"fmt"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
	profileRepo     repositories.ProfileRepository
	emailSender     email.Sender
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	emailSender email.Sender,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		emailSender:     emailSender,
	}
}

// Apply creates a pending application for the caller. The existence check
// feeding the policy table is advisory; the unique index on
// (job_id, applicant_id) is what actually closes the race between two
// identical requests, and its violation surfaces as the same
// already-applied error.
func (s *ApplicationService) Apply(ctx context.Context, jobID string, principal auth.Principal) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	exists := false
	if principal.Authenticated() {
		exists, err = s.applicationRepo.ExistsForJobAndApplicant(ctx, jobID, principal.ID)
		if err != nil {
			return nil, err
		}
	}

	decision := auth.Authorize(principal, auth.ActionApplyToJob, auth.Resource{
		OwnerID:                job.EmployerID,
		JobStatus:              job.Status,
		HasExistingApplication: exists,
	})
	if !decision.Allowed {
		return nil, denyToError(decision)
	}

	application := &models.Application{
		JobID:       jobID,
		ApplicantID: principal.ID,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrApplicationAlreadyExists
		}
		return nil, err
	}

	go s.notifyEmployerOfApplication(job)

	return application, nil
}

// ListForApplicant returns the caller's applications, newest first, each
// with a read-only job snapshot.
func (s *ApplicationService) ListForApplicant(ctx context.Context, principal auth.Principal) ([]dto.ApplicationForApplicant, error) {
	decision := auth.Authorize(principal, auth.ActionListOwnApplications, auth.Resource{})
	if !decision.Allowed {
		return nil, denyToError(decision)
	}

	applications, err := s.applicationRepo.FindByApplicant(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	jobIDs := make([]string, 0, len(applications))
	for _, a := range applications {
		jobIDs = append(jobIDs, a.JobID)
	}
	jobs, err := s.jobRepo.FindByIDs(ctx, jobIDs)
	if err != nil {
		return nil, err
	}
	jobByID := make(map[string]models.Job, len(jobs))
	for _, j := range jobs {
		jobByID[j.ID] = j
	}

	out := make([]dto.ApplicationForApplicant, 0, len(applications))
	for _, a := range applications {
		job := jobByID[a.JobID]
		out = append(out, dto.ApplicationForApplicant{
			ID:        a.ID,
			Status:    a.Status,
			AppliedAt: a.AppliedAt,
			Job: dto.JobSnapshot{
				ID:          job.ID,
				Title:       job.Title,
				CompanyName: job.CompanyName,
				Location:    job.Location,
				Status:      job.Status,
			},
		})
	}
	return out, nil
}

// ListForEmployer returns every application across the caller's jobs,
// newest first, each with applicant display fields.
func (s *ApplicationService) ListForEmployer(ctx context.Context, principal auth.Principal) ([]dto.ApplicationForEmployer, error) {
	decision := auth.Authorize(principal, auth.ActionListReceivedApplications, auth.Resource{})
	if !decision.Allowed {
		return nil, denyToError(decision)
	}

	jobs, err := s.jobRepo.FindByEmployer(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	jobIDs := make([]string, 0, len(jobs))
	jobByID := make(map[string]models.Job, len(jobs))
	for _, j := range jobs {
		jobIDs = append(jobIDs, j.ID)
		jobByID[j.ID] = j
	}

	applications, err := s.applicationRepo.FindByJobIDs(ctx, jobIDs)
	if err != nil {
		return nil, err
	}

	applicantIDs := make([]string, 0, len(applications))
	seen := make(map[string]bool, len(applications))
	for _, a := range applications {
		if !seen[a.ApplicantID] {
			seen[a.ApplicantID] = true
			applicantIDs = append(applicantIDs, a.ApplicantID)
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, applicantIDs)
	if err != nil {
		return nil, err
	}
	userByID := make(map[string]models.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	profiles, err := s.profileRepo.FindJobSeekerProfilesByUserIDs(ctx, applicantIDs)
	if err != nil {
		return nil, err
	}
	profileByUserID := make(map[string]models.JobSeekerProfile, len(profiles))
	for _, p := range profiles {
		profileByUserID[p.UserID] = p
	}

	out := make([]dto.ApplicationForEmployer, 0, len(applications))
	for _, a := range applications {
		user := userByID[a.ApplicantID]
		snapshot := dto.ApplicantSnapshot{
			ID:    a.ApplicantID,
			Name:  user.Name,
			Email: user.Email,
		}
		if profile, ok := profileByUserID[a.ApplicantID]; ok {
			snapshot.Phone = profile.Phone
			snapshot.ResumeURL = profile.ResumeURL
		}
		out = append(out, dto.ApplicationForEmployer{
			ID:        a.ID,
			Status:    a.Status,
			AppliedAt: a.AppliedAt,
			JobID:     a.JobID,
			JobTitle:  jobByID[a.JobID].Title,
			Applicant: snapshot,
		})
	}
	return out, nil
}

// UpdateStatus moves an application to any of the enumerated statuses. The
// workflow deliberately places no ordering restriction on transitions.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID string, principal auth.Principal, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}

	job, err := s.jobRepo.FindByID(ctx, application.JobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	decision := auth.Authorize(principal, auth.ActionUpdateApplicationStatus, auth.Resource{
		OwnerID: job.EmployerID,
	})
	if !decision.Allowed {
		return nil, denyToError(decision)
	}

	oldStatus := application.Status
	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}
	application.Status = status

	if oldStatus != status {
		go s.notifyApplicantOfStatus(application.ApplicantID, job.Title, status)
	}

	return application, nil
}

func (s *ApplicationService) notifyEmployerOfApplication(job *models.Job) {
	employer, err := s.userRepo.FindByID(context.Background(), job.EmployerID)
	if err != nil {
		logger.Warn("failed to load employer for application notification", "error", err, "job_id", job.ID)
		return
	}
	subject := fmt.Sprintf("New application for %q", job.Title)
	body := fmt.Sprintf("<p>Your job posting <b>%s</b> received a new application.</p>", job.Title)
	if err := s.emailSender.Send(employer.Email, subject, body); err != nil {
		logger.Warn("failed to send application notification", "error", err, "job_id", job.ID)
	}
}

func (s *ApplicationService) notifyApplicantOfStatus(applicantID, jobTitle string, status models.ApplicationStatus) {
	applicant, err := s.userRepo.FindByID(context.Background(), applicantID)
	if err != nil {
		logger.Warn("failed to load applicant for status notification", "error", err, "applicant_id", applicantID)
		return
	}
	subject := fmt.Sprintf("Application update for %q", jobTitle)
	body := fmt.Sprintf("<p>Your application for <b>%s</b> is now <b>%s</b>.</p>", jobTitle, status)
	if err := s.emailSender.Send(applicant.Email, subject, body); err != nil {
		logger.Warn("failed to send status notification", "error", err, "applicant_id", applicantID)
	}
}
