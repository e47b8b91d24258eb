package entities

import "time"

type FarmProfile struct {
	FarmID   uint   `gorm:"primaryKey" json:"farm_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Role     string `json:"role"` // admin|farmer

	Plots []FieldPlot `gorm:"foreignKey:FarmID;constraint:OnDelete:CASCADE" json:"plots,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
