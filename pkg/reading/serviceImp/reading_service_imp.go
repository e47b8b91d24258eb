package serviceImp

import (
	"agrisense/entities"
	anomalySvc "agrisense/pkg/anomaly/service"
	repo "agrisense/pkg/reading/repository"
	"agrisense/pkg/reading/service"
)

type readingSvc struct {
	r         repo.ReadingRepository
	anomalies anomalySvc.AnomalyService
}

func New(r repo.ReadingRepository, a anomalySvc.AnomalyService) service.ReadingService {
	return &readingSvc{r: r, anomalies: a}
}

func (s *readingSvc) Create(m *entities.SensorReading) (*entities.SensorReading, error) {
	if err := s.r.Create(m); err != nil {
		return nil, err
	}
	if _, _, _, err := s.anomalies.Materialize(m); err != nil {
		// The reading row stays; a retry or the reconciliation sweep
		// completes materialization.
		return nil, err
	}
	return m, nil
}

func (s *readingSvc) List(plotID uint) ([]entities.SensorReading, error) {
	return s.r.List(plotID)
}
