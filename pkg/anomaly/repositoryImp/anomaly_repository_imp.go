package repositoryImp

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agrisense/entities"
	"agrisense/pkg/anomaly/repository"
)

type anomalyRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AnomalyRepository { return &anomalyRepo{db} }

func (r *anomalyRepo) ByReading(readingID uint) ([]entities.AnomalyEvent, error) {
	var out []entities.AnomalyEvent
	if err := r.db.Where("reading_id = ?", readingID).
		Order("created_at DESC, event_id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *anomalyRepo) Create(ev *entities.AnomalyEvent) error {
	if err := r.db.Create(ev).Error; err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *anomalyRepo) UpdateFields(eventID uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&entities.AnomalyEvent{}).Where("event_id = ?", eventID).Updates(fields).Error
}

func (r *anomalyRepo) MissingDerived() ([]entities.AnomalyEvent, error) {
	var out []entities.AnomalyEvent
	if err := r.db.
		Where("message = '' OR recommendation = '' OR plot_id IS NULL").
		Order("event_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *anomalyRepo) List() ([]entities.AnomalyEvent, error) {
	var out []entities.AnomalyEvent
	if err := r.db.Preload("Reading").Preload("AgentRecommendation").
		Order("created_at DESC, event_id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *anomalyRepo) LatestByPlot(plotID uint) (*entities.AnomalyEvent, error) {
	var ev entities.AnomalyEvent
	if err := r.db.Where("plot_id = ?", plotID).
		Order("created_at DESC, event_id DESC").First(&ev).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *anomalyRepo) UpsertRecommendation(rec *entities.AgentRecommendation) (bool, error) {
	var existing entities.AgentRecommendation
	err := r.db.Where("event_id = ?", rec.EventID).First(&existing).Error
	if err == nil {
		rec.RecID = existing.RecID
		return false, r.db.Model(&existing).Updates(map[string]any{
			"recommended_action": rec.RecommendedAction,
			"explanation_text":   rec.ExplanationText,
			"generated_at":       rec.GeneratedAt,
		}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	// conflict clause covers a concurrent first insert
	err = r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"recommended_action", "explanation_text", "generated_at",
		}),
	}).Create(rec).Error
	return err == nil, err
}

func (r *anomalyRepo) RecommendationByEvent(eventID uint) (*entities.AgentRecommendation, error) {
	var rec entities.AgentRecommendation
	if err := r.db.Where("event_id = ?", eventID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *anomalyRepo) ListRecommendations() ([]entities.AgentRecommendation, error) {
	var out []entities.AgentRecommendation
	if err := r.db.Order("generated_at DESC, rec_id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
