package entities

import "time"

// Category is the closed set of anomaly tags. Stored as text.
type Category string

const (
	CategoryTemperature Category = "temperature"
	CategorySoilLow     Category = "soil_low"
	CategorySoilHigh    Category = "soil_high"
	CategoryHumidity    Category = "humidity"
	CategoryUnknown     Category = "unknown"
)

// Severity is ordered: low < medium < high.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	}
	return 0
}

// AnomalyEvent is derived from exactly one reading; the unique index on
// ReadingID is the arbiter under concurrent materialization. PlotID is
// denormalized from the owning reading and always recomputed from it.
type AnomalyEvent struct {
	EventID   uint     `gorm:"primaryKey" json:"event_id"`
	ReadingID uint     `gorm:"uniqueIndex:uniq_anomaly_per_reading" json:"reading_id"`
	PlotID    *uint    `gorm:"index" json:"plot_id"`
	Category  Category `json:"category"`
	Severity  Severity `json:"severity"`

	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`

	// Belongs-to; tag-free so gorm resolves the FK from ReadingID above
	// rather than mistaking this for a has-one.
	Reading *SensorReading `json:"-"`

	AgentRecommendation *AgentRecommendation `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"agent_recommendation,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AgentRecommendation is one-to-one with its anomaly; the upserter overwrites
// action/explanation on every run and refreshes GeneratedAt.
type AgentRecommendation struct {
	RecID             uint      `gorm:"primaryKey" json:"rec_id"`
	EventID           uint      `gorm:"uniqueIndex:uniq_rec_per_anomaly" json:"event_id"`
	RecommendedAction string    `json:"recommended_action"`
	ExplanationText   string    `json:"explanation_text"`
	GeneratedAt       time.Time `json:"generated_at"`
}
