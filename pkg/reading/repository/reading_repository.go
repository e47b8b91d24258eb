package repository

import "agrisense/entities"

type ReadingRepository interface {
	Create(r *entities.SensorReading) error
	FindByID(id uint) (*entities.SensorReading, error)
	// List returns readings newest first; plotID 0 means all plots.
	List(plotID uint) ([]entities.SensorReading, error)
	All() ([]entities.SensorReading, error)
}
