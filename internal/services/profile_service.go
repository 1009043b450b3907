package services

import (
	"context"
	"errors"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// UpsertEmployerProfile creates or replaces the caller's employer profile.
// Edits do not flow into job postings already created from the profile;
// those keep the company fields captured at posting time.
func (s *ProfileService) UpsertEmployerProfile(ctx context.Context, principal auth.Principal, req dto.UpsertEmployerProfileRequest) (*models.EmployerProfile, error) {
	if !principal.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}
	if principal.Role != models.UserRoleEmployer {
		return nil, apperrors.ErrWrongRole
	}

	existing, err := s.profileRepo.FindEmployerProfileByUserID(ctx, principal.ID)
	if err != nil && !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, err
	}

	if existing == nil {
		profile := &models.EmployerProfile{
			UserID:      principal.ID,
			CompanyName: req.CompanyName,
			Logo:        req.Logo,
			Description: req.Description,
			Website:     req.Website,
			Phone:       req.Phone,
			Location:    req.Location,
		}
		if err := s.profileRepo.CreateEmployerProfile(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	existing.CompanyName = req.CompanyName
	existing.Logo = req.Logo
	existing.Description = req.Description
	existing.Website = req.Website
	existing.Phone = req.Phone
	existing.Location = req.Location
	if err := s.profileRepo.UpdateEmployerProfile(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ProfileService) GetEmployerProfile(ctx context.Context, principal auth.Principal) (*models.EmployerProfile, error) {
	if !principal.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	profile, err := s.profileRepo.FindEmployerProfileByUserID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) UpsertJobSeekerProfile(ctx context.Context, principal auth.Principal, req dto.UpsertJobSeekerProfileRequest) (*models.JobSeekerProfile, error) {
	if !principal.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}
	if principal.Role != models.UserRoleJobSeeker {
		return nil, apperrors.ErrWrongRole
	}

	skills, err := marshalSkills(req.Skills)
	if err != nil {
		return nil, err
	}

	existing, err := s.profileRepo.FindJobSeekerProfileByUserID(ctx, principal.ID)
	if err != nil && !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, err
	}

	if existing == nil {
		profile := &models.JobSeekerProfile{
			UserID:     principal.ID,
			FullName:   req.FullName,
			Phone:      req.Phone,
			Skills:     skills,
			Education:  req.Education,
			Experience: req.Experience,
			ResumeURL:  req.ResumeURL,
		}
		if err := s.profileRepo.CreateJobSeekerProfile(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	existing.FullName = req.FullName
	existing.Phone = req.Phone
	existing.Skills = skills
	existing.Education = req.Education
	existing.Experience = req.Experience
	existing.ResumeURL = req.ResumeURL
	if err := s.profileRepo.UpdateJobSeekerProfile(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ProfileService) GetJobSeekerProfile(ctx context.Context, principal auth.Principal) (*models.JobSeekerProfile, error) {
	if !principal.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	profile, err := s.profileRepo.FindJobSeekerProfileByUserID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}
