package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

type JobService struct {
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
}

func NewJobService(jobRepo repositories.JobRepository, profileRepo repositories.ProfileRepository) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
	}
}

func (s *JobService) CreateJob(ctx context.Context, principal auth.Principal, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	profile, err := s.profileRepo.FindEmployerProfileByUserID(ctx, principal.ID)
	if err != nil && !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, err
	}

	decision := auth.Authorize(principal, auth.ActionCreateJob, auth.Resource{
		HasEmployerProfile: profile != nil,
	})
	if !decision.Allowed {
		return nil, denyToError(decision)
	}

	if req.SalaryMax != 0 && req.SalaryMax < req.SalaryMin {
		return nil, apperrors.ValidationError(map[string]string{
			"salary_max": "Maximum salary cannot be less than minimum salary",
		})
	}

	skills, err := marshalSkills(req.Skills)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		JobType:     models.JobType(req.JobType),
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		Currency:    currency,
		Skills:      skills,
		// Company details are copied from the profile here and never
		// refreshed afterwards.
		CompanyName:      profile.CompanyName,
		CompanyLogo:      profile.Logo,
		CompanyProfileID: profile.ID,
		EmployerID:       principal.ID,
		Status:           models.JobStatusActive,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	return buildJobResponse(job), nil
}

func (s *JobService) GetJob(ctx context.Context, jobID string, principal auth.Principal) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	decision := auth.Authorize(principal, auth.ActionViewJob, auth.Resource{
		OwnerID:   job.EmployerID,
		JobStatus: job.Status,
	})
	if !decision.Allowed {
		// A non-active job is invisible to everyone but its owner.
		return nil, apperrors.ErrJobNotFound
	}

	return buildJobResponse(job), nil
}

func (s *JobService) UpdateJob(ctx context.Context, jobID string, principal auth.Principal, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	decision := auth.Authorize(principal, auth.ActionUpdateJob, auth.Resource{
		OwnerID:   job.EmployerID,
		JobStatus: job.Status,
	})
	if !decision.Allowed {
		return nil, denyToError(decision)
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		job.JobType = models.JobType(*req.JobType)
	}
	if req.SalaryMin != nil {
		job.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = *req.SalaryMax
	}
	if req.Currency != nil {
		job.Currency = *req.Currency
	}
	if req.Skills != nil {
		skills, err := marshalSkills(req.Skills)
		if err != nil {
			return nil, err
		}
		job.Skills = skills
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}

	// Re-validate constrained fields on the merged document; the request
	// DTO cannot cross-check a patched min against a stored max.
	if job.SalaryMax != 0 && job.SalaryMax < job.SalaryMin {
		return nil, apperrors.ValidationError(map[string]string{
			"salary_max": "Maximum salary cannot be less than minimum salary",
		})
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return buildJobResponse(job), nil
}

func (s *JobService) DeleteJob(ctx context.Context, jobID string, principal auth.Principal) error {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return err
	}

	decision := auth.Authorize(principal, auth.ActionDeleteJob, auth.Resource{
		OwnerID:   job.EmployerID,
		JobStatus: job.Status,
	})
	if !decision.Allowed {
		return denyToError(decision)
	}

	// Applications go with the job, in the same transaction.
	return s.jobRepo.Delete(ctx, jobID)
}

// SearchJobs runs the public listing query. Only active jobs are ever
// returned; pagination metadata is computed from the filtered count.
func (s *JobService) SearchJobs(ctx context.Context, req dto.SearchJobsRequest) (*dto.JobListResponse, error) {
	page := req.Page
	if page <= 0 {
		page = defaultPage
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	jobs, total, err := s.jobRepo.Search(ctx, repositories.JobSearchCriteria{
		Keyword:  req.Keyword,
		Location: req.Location,
		JobType:  req.JobType,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.JobListResponse{
		Jobs:        make([]dto.JobResponse, 0, len(jobs)),
		TotalJobs:   total,
		TotalPages:  int64(math.Ceil(float64(total) / float64(pageSize))),
		CurrentPage: page,
	}
	for i := range jobs {
		resp.Jobs = append(resp.Jobs, *buildJobResponse(&jobs[i]))
	}
	return resp, nil
}

// GetEmployerJobs returns the caller's own postings, any status.
func (s *JobService) GetEmployerJobs(ctx context.Context, principal auth.Principal) ([]dto.JobResponse, error) {
	if !principal.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}
	if principal.Role != models.UserRoleEmployer {
		return nil, apperrors.ErrWrongRole
	}

	jobs, err := s.jobRepo.FindByEmployer(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, *buildJobResponse(&jobs[i]))
	}
	return out, nil
}

func marshalSkills(skills []string) (datatypes.JSON, error) {
	if skills == nil {
		skills = []string{}
	}
	raw, err := json.Marshal(skills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return datatypes.JSON(raw), nil
}

func unmarshalSkills(raw datatypes.JSON) []string {
	var skills []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &skills)
	}
	if skills == nil {
		skills = []string{}
	}
	return skills
}

func buildJobResponse(job *models.Job) *dto.JobResponse {
	return &dto.JobResponse{
		Job:    *job,
		Skills: unmarshalSkills(job.Skills),
	}
}
