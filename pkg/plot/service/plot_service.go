package service

import "agrisense/entities"

// PlotStatus is the roll-up of a plot's most recent anomaly.
type PlotStatus struct {
	PlotID   uint    `json:"plot_id"`
	Name     string  `json:"name"`
	Size     float64 `json:"size_hectares"`
	Status   string  `json:"status"` // OK|WARNING|CRITICAL
	LastSeen *uint   `json:"last_event_id,omitempty"`
}

type PlotService interface {
	Create(p *entities.FieldPlot) (*entities.FieldPlot, error)
	Get(id uint) (*entities.FieldPlot, error)
	List() ([]entities.FieldPlot, error)
	// Status maps each plot to OK/WARNING/CRITICAL from the severity of its
	// newest anomaly event.
	Status() ([]PlotStatus, error)
}
