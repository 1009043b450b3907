package repositories

import (
	"context"
	"errors"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	// EmployerProfile operations
	CreateEmployerProfile(ctx context.Context, profile *models.EmployerProfile) error
	FindEmployerProfileByUserID(ctx context.Context, userID string) (*models.EmployerProfile, error)
	UpdateEmployerProfile(ctx context.Context, profile *models.EmployerProfile) error

	// JobSeekerProfile operations
	CreateJobSeekerProfile(ctx context.Context, profile *models.JobSeekerProfile) error
	FindJobSeekerProfileByUserID(ctx context.Context, userID string) (*models.JobSeekerProfile, error)
	FindJobSeekerProfilesByUserIDs(ctx context.Context, userIDs []string) ([]models.JobSeekerProfile, error)
	UpdateJobSeekerProfile(ctx context.Context, profile *models.JobSeekerProfile) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) CreateEmployerProfile(ctx context.Context, profile *models.EmployerProfile) error {
	err := r.db.WithContext(ctx).Create(profile).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrProfileAlreadyExists
	}
	return err
}

func (r *ProfileRepositoryImpl) FindEmployerProfileByUserID(ctx context.Context, userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateEmployerProfile(ctx context.Context, profile *models.EmployerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *ProfileRepositoryImpl) CreateJobSeekerProfile(ctx context.Context, profile *models.JobSeekerProfile) error {
	err := r.db.WithContext(ctx).Create(profile).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrProfileAlreadyExists
	}
	return err
}

func (r *ProfileRepositoryImpl) FindJobSeekerProfileByUserID(ctx context.Context, userID string) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindJobSeekerProfilesByUserIDs(ctx context.Context, userIDs []string) ([]models.JobSeekerProfile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var profiles []models.JobSeekerProfile
	err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) UpdateJobSeekerProfile(ctx context.Context, profile *models.JobSeekerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
