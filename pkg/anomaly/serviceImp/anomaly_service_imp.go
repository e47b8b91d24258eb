package serviceImp

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"agrisense/entities"
	"agrisense/pkg/anomaly/classifier"
	"agrisense/pkg/anomaly/recommend"
	anomalyRepo "agrisense/pkg/anomaly/repository"
	"agrisense/pkg/anomaly/service"
	readingRepo "agrisense/pkg/reading/repository"
	"agrisense/pkg/thresholds"
)

const (
	placeholderMessage        = "No message generated."
	placeholderRecommendation = "No recommendation generated."
)

type anomalySvc struct {
	anomalies anomalyRepo.AnomalyRepository
	readings  readingRepo.ReadingRepository
	th        thresholds.Thresholds
}

func New(a anomalyRepo.AnomalyRepository, r readingRepo.ReadingRepository, th thresholds.Thresholds) service.AnomalyService {
	return &anomalySvc{anomalies: a, readings: r, th: th}
}

func (s *anomalySvc) Materialize(reading *entities.SensorReading) (bool, *entities.AnomalyEvent, bool, error) {
	verdict, err := classifier.ClassifyWith(s.th, reading)
	if err != nil {
		return false, nil, false, err
	}
	if !verdict.IsAnomaly {
		return false, nil, false, nil
	}

	// Pre-compute the recommendation so a freshly created event is never
	// persisted with empty message/recommendation.
	action, explanation := recommend.GenerateWith(s.th, verdict.Category, verdict.Severity, recommend.FromReading(reading))
	defaultMessage := explanation
	if defaultMessage == "" {
		defaultMessage = placeholderMessage
	}
	defaultRecommendation := action
	if defaultRecommendation == "" {
		defaultRecommendation = placeholderRecommendation
	}

	event, created, err := s.resolveEvent(reading, verdict, defaultMessage, defaultRecommendation)
	if err != nil {
		return false, nil, false, err
	}

	updates := map[string]any{}
	if event.Category != verdict.Category {
		event.Category = verdict.Category
		updates["category"] = verdict.Category
	}
	if event.Severity != verdict.Severity {
		event.Severity = verdict.Severity
		updates["severity"] = verdict.Severity
	}
	// The plot back-reference is always recomputed from the owning reading;
	// a stale value is never trusted.
	if event.PlotID == nil || *event.PlotID != reading.PlotID {
		plotID := reading.PlotID
		event.PlotID = &plotID
		updates["plot_id"] = plotID
	}
	if event.Message == "" {
		event.Message = defaultMessage
		updates["message"] = defaultMessage
	}
	if event.Recommendation == "" {
		event.Recommendation = defaultRecommendation
		updates["recommendation"] = defaultRecommendation
	}
	if len(updates) > 0 {
		if err := s.anomalies.UpdateFields(event.EventID, updates); err != nil {
			return true, event, created, fmt.Errorf("reconcile anomaly %d: %w", event.EventID, err)
		}
	}

	if _, _, err := s.UpsertRecommendation(event, reading); err != nil {
		return true, event, created, err
	}
	return true, event, created, nil
}

// resolveEvent performs the atomic create-if-absent and absorbs both race
// outcomes: a concurrent creator winning the unique constraint, and
// pre-existing duplicate rows (tolerated, canonical = newest).
func (s *anomalySvc) resolveEvent(reading *entities.SensorReading, verdict classifier.Verdict, msg, rec string) (*entities.AnomalyEvent, bool, error) {
	events, err := s.anomalies.ByReading(reading.ReadingID)
	if err != nil {
		return nil, false, err
	}

	if len(events) > 1 {
		log.Printf("[infer] data integrity: %d anomalies for reading %d, keeping newest", len(events), reading.ReadingID)
	}
	if len(events) > 0 {
		return &events[0], false, nil
	}

	plotID := reading.PlotID
	cand := &entities.AnomalyEvent{
		ReadingID:      reading.ReadingID,
		PlotID:         &plotID,
		Category:       verdict.Category,
		Severity:       verdict.Severity,
		Message:        msg,
		Recommendation: rec,
	}
	err = s.anomalies.Create(cand)
	if err == nil {
		return cand, true, nil
	}
	if !errors.Is(err, anomalyRepo.ErrDuplicate) {
		return nil, false, err
	}

	// Lost the create race; the constraint decided who created it first.
	events, err = s.anomalies.ByReading(reading.ReadingID)
	if err != nil {
		return nil, false, err
	}
	if len(events) == 0 {
		return nil, false, fmt.Errorf("anomaly for reading %d vanished after duplicate create", reading.ReadingID)
	}
	return &events[0], false, nil
}

func (s *anomalySvc) UpsertRecommendation(ev *entities.AnomalyEvent, reading *entities.SensorReading) (*entities.AgentRecommendation, bool, error) {
	action, explanation := recommend.GenerateWith(s.th, ev.Category, ev.Severity, recommend.FromReading(reading))
	rec := &entities.AgentRecommendation{
		EventID:           ev.EventID,
		RecommendedAction: action,
		ExplanationText:   explanation,
		GeneratedAt:       time.Now(),
	}
	created, err := s.anomalies.UpsertRecommendation(rec)
	if err != nil {
		return nil, false, fmt.Errorf("upsert recommendation for anomaly %d: %w", ev.EventID, err)
	}
	return rec, created, nil
}

func (s *anomalySvc) RunBatch(readings []entities.SensorReading) (service.BatchStats, error) {
	stats := service.BatchStats{}
	for i := range readings {
		stats.TotalProcessed++
		isAnomaly, _, created, err := s.Materialize(&readings[i])
		if err != nil {
			return stats, err
		}
		if isAnomaly {
			stats.AnomaliesDetected++
		}
		if created {
			stats.EventsCreated++
		}
	}
	return stats, nil
}

func (s *anomalySvc) Reconcile() (service.ReconcileStats, error) {
	stats := service.ReconcileStats{}
	events, err := s.anomalies.MissingDerived()
	if err != nil {
		return stats, err
	}
	stats.Scanned = len(events)

	for i := range events {
		ev := &events[i]
		reading, err := s.readings.FindByID(ev.ReadingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := s.fillOrphan(ev); err != nil {
					return stats, err
				}
				stats.Skipped++
				continue
			}
			return stats, err
		}

		updates := map[string]any{}

		// Refresh category/severity only if absent.
		if ev.Category == "" || ev.Severity == "" {
			if v, cerr := classifier.ClassifyWith(s.th, reading); cerr == nil && v.IsAnomaly {
				if v.Category != "" {
					ev.Category = v.Category
					updates["category"] = v.Category
				}
				if v.Severity != "" {
					ev.Severity = v.Severity
					updates["severity"] = v.Severity
				}
			}
		}

		if ev.PlotID == nil || *ev.PlotID != reading.PlotID {
			plotID := reading.PlotID
			ev.PlotID = &plotID
			updates["plot_id"] = plotID
		}

		action, explanation := recommend.GenerateWith(s.th, ev.Category, ev.Severity, recommend.FromReading(reading))
		if ev.Message == "" {
			msg := explanation
			if msg == "" {
				msg = placeholderMessage
			}
			ev.Message = msg
			updates["message"] = msg
		}
		if ev.Recommendation == "" {
			rec := action
			if rec == "" {
				rec = placeholderRecommendation
			}
			ev.Recommendation = rec
			updates["recommendation"] = rec
		}

		if err := s.anomalies.UpdateFields(ev.EventID, updates); err != nil {
			return stats, err
		}
		if _, _, err := s.UpsertRecommendation(ev, reading); err != nil {
			return stats, err
		}
		stats.Updated++
	}

	log.Printf("[reconcile] scanned=%d updated=%d skipped=%d", stats.Scanned, stats.Updated, stats.Skipped)
	return stats, nil
}

// fillOrphan gives an event whose reading was deleted placeholder text
// instead of dropping it.
func (s *anomalySvc) fillOrphan(ev *entities.AnomalyEvent) error {
	updates := map[string]any{}
	if ev.Message == "" {
		updates["message"] = placeholderMessage
	}
	if ev.Recommendation == "" {
		updates["recommendation"] = placeholderRecommendation
	}
	return s.anomalies.UpdateFields(ev.EventID, updates)
}
