package repositories

import (
	"context"
	"errors"
	"time"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobSearchCriteria mirrors the public listing query parameters. An empty or
// "all" JobType means no type filter.
type JobSearchCriteria struct {
	Keyword  string
	Location string
	JobType  string
	Page     int
	PageSize int
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id string) (*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	// Delete removes a job and all of its applications in one transaction.
	Delete(ctx context.Context, id string) error
	FindByEmployer(ctx context.Context, employerID string) ([]models.Job, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Job, error)
	// Search returns one page of active jobs plus the total count under the
	// same predicate.
	Search(ctx context.Context, criteria JobSearchCriteria) ([]models.Job, int64, error)
	// ExpireOlderThan marks active jobs created before the cutoff as
	// expired and reports how many rows changed.
	ExpireOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *JobRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Job{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

func (r *JobRepositoryImpl) FindByEmployer(ctx context.Context, employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByIDs(ctx context.Context, ids []string) ([]models.Job, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var jobs []models.Job
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Search(ctx context.Context, criteria JobSearchCriteria) ([]models.Job, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Job{})

	// Non-active jobs never appear in public listings.
	query = query.Where("status = ?", models.JobStatusActive)

	if criteria.Keyword != "" {
		search := "%" + criteria.Keyword + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR skills::text ILIKE ?", search, search, search)
	}

	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}

	if criteria.JobType != "" && criteria.JobType != "all" {
		query = query.Where("job_type = ?", criteria.JobType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := query.
		Order("created_at DESC").
		Offset((criteria.Page - 1) * criteria.PageSize).
		Limit(criteria.PageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *JobRepositoryImpl) ExpireOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("status = ? AND created_at < ?", models.JobStatusActive, cutoff).
		Update("status", models.JobStatusExpired)
	return result.RowsAffected, result.Error
}
