package entities

import "time"

// SensorReading is immutable once created; CreatedAt is server-assigned and
// orders readings within a plot.
type SensorReading struct {
	ReadingID uint `gorm:"primaryKey" json:"reading_id"`
	PlotID    uint `gorm:"index" json:"plot_id"`

	SoilMoisture   *float64 `json:"soil_moisture"`   // %
	AirTemperature *float64 `json:"air_temperature"` // °C
	Humidity       *float64 `json:"humidity"`        // %

	Anomalies []AnomalyEvent `gorm:"foreignKey:ReadingID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
