package service

import "agrisense/entities"

type ReadingService interface {
	// Create persists the reading and runs anomaly inference on it, the way
	// a creation hook would.
	Create(r *entities.SensorReading) (*entities.SensorReading, error)
	List(plotID uint) ([]entities.SensorReading, error)
}
