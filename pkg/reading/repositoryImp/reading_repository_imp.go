package repositoryImp

import (
	"gorm.io/gorm"

	"agrisense/entities"
	"agrisense/pkg/reading/repository"
)

type readingRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReadingRepository { return &readingRepo{db} }

func (r *readingRepo) Create(m *entities.SensorReading) error { return r.db.Create(m).Error }

func (r *readingRepo) FindByID(id uint) (*entities.SensorReading, error) {
	var m entities.SensorReading
	if err := r.db.Where("reading_id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *readingRepo) List(plotID uint) ([]entities.SensorReading, error) {
	var out []entities.SensorReading
	q := r.db.Order("created_at DESC, reading_id DESC")
	if plotID != 0 {
		q = q.Where("plot_id = ?", plotID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *readingRepo) All() ([]entities.SensorReading, error) {
	var out []entities.SensorReading
	if err := r.db.Order("reading_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
