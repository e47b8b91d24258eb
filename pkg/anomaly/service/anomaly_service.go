package service

import "agrisense/entities"

// BatchStats accumulates one batch run. Returned by value; the runner keeps
// no state between runs.
type BatchStats struct {
	TotalProcessed    int `json:"total_processed"`
	AnomaliesDetected int `json:"anomalies_detected"`
	EventsCreated     int `json:"events_created"`
}

type ReconcileStats struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

type AnomalyService interface {
	// Materialize classifies the reading and, when anomalous, performs the
	// idempotent create-or-update of its anomaly event, always finishing with
	// the recommendation upsert. Returns (isAnomaly, event, created).
	Materialize(r *entities.SensorReading) (bool, *entities.AnomalyEvent, bool, error)

	// UpsertRecommendation regenerates and stores the one-to-one
	// recommendation for an event. The newest classification always wins.
	UpsertRecommendation(ev *entities.AnomalyEvent, r *entities.SensorReading) (*entities.AgentRecommendation, bool, error)

	// RunBatch materializes each reading in order, accumulating counters.
	RunBatch(readings []entities.SensorReading) (BatchStats, error)

	// Reconcile repairs historical events missing derived fields. Events
	// whose reading is gone get placeholder text and count as skipped.
	Reconcile() (ReconcileStats, error)
}
