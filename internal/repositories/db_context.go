package repositories

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/talentgrid/matcher/internal/domain/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(models.Talent{})
	if err != nil {
		return fmt.Errorf("failed to migrate Talent entity: %w", err)
	}

	err = c.DB.AutoMigrate(models.JobPosting{})
	if err != nil {
		return fmt.Errorf("failed to migrate JobPosting entity: %w", err)
	}

	if err = c.DB.Exec("CREATE INDEX IF NOT EXISTS idx_job_status_created_at ON job_postings (status, created_at)").
		Error; err != nil {
		return fmt.Errorf("failed to create job posting index: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
