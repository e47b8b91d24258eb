package repository

import (
	"errors"

	"agrisense/entities"
)

// ErrDuplicate reports that the unique anomaly-per-reading constraint
// rejected a create. Callers re-select the winning row instead of failing.
var ErrDuplicate = errors.New("anomaly already exists for reading")

type AnomalyRepository interface {
	// ByReading returns every anomaly for a reading ordered by the canonical
	// policy: created_at DESC, event_id DESC. Index 0 is the canonical row.
	ByReading(readingID uint) ([]entities.AnomalyEvent, error)

	// Create inserts a new event; returns ErrDuplicate if the unique
	// constraint on reading_id rejects it.
	Create(ev *entities.AnomalyEvent) error

	// UpdateFields persists only the given columns on one event.
	UpdateFields(eventID uint, fields map[string]any) error

	// MissingDerived lists events with an empty message, empty recommendation
	// or no plot back-reference, for the reconciliation sweep.
	MissingDerived() ([]entities.AnomalyEvent, error)

	List() ([]entities.AnomalyEvent, error)
	LatestByPlot(plotID uint) (*entities.AnomalyEvent, error)

	// UpsertRecommendation creates or replaces the one-to-one recommendation
	// keyed on event_id. Returns true when a new row was created.
	UpsertRecommendation(rec *entities.AgentRecommendation) (bool, error)
	RecommendationByEvent(eventID uint) (*entities.AgentRecommendation, error)
	ListRecommendations() ([]entities.AgentRecommendation, error)
}
