package serviceImp

import (
	"errors"

	"gorm.io/gorm"

	"agrisense/entities"
	anomalyRepo "agrisense/pkg/anomaly/repository"
	repo "agrisense/pkg/plot/repository"
	"agrisense/pkg/plot/service"
)

type plotSvc struct {
	r         repo.PlotRepository
	anomalies anomalyRepo.AnomalyRepository
}

func New(r repo.PlotRepository, a anomalyRepo.AnomalyRepository) service.PlotService {
	return &plotSvc{r: r, anomalies: a}
}

func (s *plotSvc) Create(p *entities.FieldPlot) (*entities.FieldPlot, error) {
	if err := s.r.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *plotSvc) Get(id uint) (*entities.FieldPlot, error) { return s.r.FindByID(id) }

func (s *plotSvc) List() ([]entities.FieldPlot, error) { return s.r.List() }

func (s *plotSvc) Status() ([]service.PlotStatus, error) {
	plots, err := s.r.List()
	if err != nil {
		return nil, err
	}
	out := make([]service.PlotStatus, 0, len(plots))
	for _, p := range plots {
		st := service.PlotStatus{PlotID: p.PlotID, Name: p.Name, Size: p.SizeHectares, Status: "OK"}
		ev, err := s.anomalies.LatestByPlot(p.PlotID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		} else {
			switch rank := ev.Severity.Rank(); {
			case rank >= entities.SeverityHigh.Rank():
				st.Status = "CRITICAL"
			case rank >= entities.SeverityMedium.Rank():
				st.Status = "WARNING"
			}
			id := ev.EventID
			st.LastSeen = &id
		}
		out = append(out, st)
	}
	return out, nil
}
