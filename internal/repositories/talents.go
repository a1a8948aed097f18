package repositories

import (
	"context"
	"errors"

	"github.com/talentgrid/matcher/internal/domain/models"
	"gorm.io/gorm"
)

type Talents struct {
	db *gorm.DB
}

func NewTalentsRepository(db *gorm.DB) *Talents {
	return &Talents{db: db}
}

func (repo *Talents) Add(ctx context.Context, talent *models.Talent) error {
	return repo.db.WithContext(ctx).Create(talent).Error
}

func (repo *Talents) GetByID(ctx context.Context, id int64) (*models.Talent, error) {

	var talent models.Talent
	if err := repo.db.WithContext(ctx).First(&talent, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &talent, nil
}

// GetSkills returns the talent's stored skill names. An unknown talent is not
// an error: it yields an empty set so matching can fall back to cold start.
func (repo *Talents) GetSkills(ctx context.Context, id int64) ([]string, error) {

	talent, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if talent == nil {
		return nil, nil
	}
	return talent.SkillsAsArray(), nil
}

// GetProfile is best-effort: an unknown talent yields nil without an error.
func (repo *Talents) GetProfile(ctx context.Context, id int64) (*models.TalentProfile, error) {

	talent, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if talent == nil {
		return nil, nil
	}
	return talent.Profile(), nil
}

func (repo *Talents) UpdateSkills(ctx context.Context, id int64, skills []string) error {
	talent := models.NewTalent("", skills, nil, "")
	return repo.db.WithContext(ctx).Model(&models.Talent{}).Where("id = ?", id).
		Update("skills", talent.Skills).Error
}
