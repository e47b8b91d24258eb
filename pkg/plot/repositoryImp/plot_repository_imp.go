package repositoryImp

import (
	"gorm.io/gorm"

	"agrisense/entities"
	"agrisense/pkg/plot/repository"
)

type plotRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlotRepository { return &plotRepo{db} }

func (r *plotRepo) Create(p *entities.FieldPlot) error { return r.db.Create(p).Error }

func (r *plotRepo) FindByID(id uint) (*entities.FieldPlot, error) {
	var p entities.FieldPlot
	if err := r.db.Where("plot_id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plotRepo) List() ([]entities.FieldPlot, error) {
	var out []entities.FieldPlot
	if err := r.db.Order("plot_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
