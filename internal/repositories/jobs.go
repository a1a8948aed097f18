package repositories

import (
	"context"
	"time"

	"github.com/talentgrid/matcher/internal/domain/models"
	"gorm.io/gorm"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) Add(ctx context.Context, job *models.JobPosting) error {
	return repo.db.WithContext(ctx).Create(job).Error
}

func (repo *Jobs) GetByID(ctx context.Context, id int64) (*models.JobPosting, error) {

	var job models.JobPosting
	if err := repo.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// FindOpen returns open postings matching every supplied hard filter,
// most recent first. A filter's zero value means no constraint. The rate
// bounds are band conditions: MinRate requires the job's band to reach at
// least that high, MaxRate requires it to start at most that low.
func (repo *Jobs) FindOpen(ctx context.Context, filters models.JobFilters) ([]models.JobPosting, error) {

	query := repo.db.WithContext(ctx).Where("status = ?", models.JobOpen)

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.ContractType != "" {
		query = query.Where("contract_type = ?", filters.ContractType)
	}
	if filters.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", filters.ExperienceLevel)
	}
	if filters.MinRate != nil {
		query = query.Where("hourly_rate_max IS NULL OR hourly_rate_max >= ?", *filters.MinRate)
	}
	if filters.MaxRate != nil {
		query = query.Where("hourly_rate_min IS NULL OR hourly_rate_min <= ?", *filters.MaxRate)
	}

	var jobs []models.JobPosting
	if err := query.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// CloseExpired marks open postings created before the cutoff as closed.
func (repo *Jobs) CloseExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Model(&models.JobPosting{}).
		Where("status = ? AND created_at < ?", models.JobOpen, cutoff).
		Update("status", models.JobClosed)
	return res.RowsAffected, res.Error
}

// RemoveOldClosed deletes closed postings created before the cutoff.
func (repo *Jobs) RemoveOldClosed(ctx context.Context, cutoff time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).
		Delete(&models.JobPosting{}, "status = ? AND created_at < ?", models.JobClosed, cutoff)
	return res.RowsAffected, res.Error
}
