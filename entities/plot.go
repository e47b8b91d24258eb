package entities

import "time"

type FieldPlot struct {
	PlotID       uint    `gorm:"primaryKey" json:"plot_id"`
	FarmID       uint    `gorm:"index" json:"farm_id"`
	Name         string  `json:"name"`
	SizeHectares float64 `json:"size_hectares"`

	Readings []SensorReading `gorm:"foreignKey:PlotID;constraint:OnDelete:CASCADE" json:"readings,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
