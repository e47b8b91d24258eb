package repositoryImp

import (
	"gorm.io/gorm"

	"agrisense/entities"
	"agrisense/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) Create(f *entities.FarmProfile) error { return r.db.Create(f).Error }

func (r *farmRepo) List() ([]entities.FarmProfile, error) {
	var out []entities.FarmProfile
	if err := r.db.Preload("Plots").Order("farm_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
