package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"agrisense/entities"
	"agrisense/pkg/anomaly/classifier"
	"agrisense/pkg/anomaly/recommend"
	anomalyRepo "agrisense/pkg/anomaly/repository"
	"agrisense/pkg/anomaly/service"
	readingRepo "agrisense/pkg/reading/repository"
	"agrisense/pkg/thresholds"
)

type AnomalyCtrl struct {
	svc      service.AnomalyService
	events   anomalyRepo.AnomalyRepository
	readings readingRepo.ReadingRepository
	th       thresholds.Thresholds
}

func New(svc service.AnomalyService, events anomalyRepo.AnomalyRepository, readings readingRepo.ReadingRepository, th thresholds.Thresholds) *AnomalyCtrl {
	return &AnomalyCtrl{svc: svc, events: events, readings: readings, th: th}
}

// anomalyResp mirrors the stored event plus the derived metric/value pair
// pointing at the sensor number that tripped the rule.
type anomalyResp struct {
	EventID        uint              `json:"event_id"`
	ReadingID      uint              `json:"reading_id"`
	PlotID         *uint             `json:"plot_id"`
	Category       entities.Category `json:"category"`
	Severity       entities.Severity `json:"severity"`
	Message        string            `json:"message"`
	Recommendation string            `json:"recommendation"`
	CreatedAt      string            `json:"created_at"`
	Metric         string            `json:"metric"`
	Value          *float64          `json:"value"`
}

func toResp(ev *entities.AnomalyEvent) anomalyResp {
	out := anomalyResp{
		EventID:        ev.EventID,
		ReadingID:      ev.ReadingID,
		PlotID:         ev.PlotID,
		Category:       ev.Category,
		Severity:       ev.Severity,
		Message:        ev.Message,
		Recommendation: ev.Recommendation,
		CreatedAt:      ev.CreatedAt.Format(time.RFC3339),
	}
	switch ev.Category {
	case entities.CategoryTemperature:
		out.Metric = "temperature"
		if ev.Reading != nil {
			out.Value = ev.Reading.AirTemperature
		}
	case entities.CategoryHumidity:
		out.Metric = "humidity"
		if ev.Reading != nil {
			out.Value = ev.Reading.Humidity
		}
	default:
		out.Metric = "soil_moisture"
		if ev.Reading != nil {
			out.Value = ev.Reading.SoilMoisture
		}
	}
	return out
}

func (h *AnomalyCtrl) List(c echo.Context) error {
	events, err := h.events.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	out := make([]anomalyResp, 0, len(events))
	for i := range events {
		out = append(out, toResp(&events[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnomalyCtrl) ListRecommendations(c echo.Context) error {
	out, err := h.events.ListRecommendations()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// Recommendation returns the one-to-one recommendation for an event.
func (h *AnomalyCtrl) Recommendation(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	rec, err := h.events.RecommendationByEvent(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "recommendation not found"})
	}
	return c.JSON(http.StatusOK, rec)
}

// RunOne materializes a single reading by id.
func (h *AnomalyCtrl) RunOne(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	reading, err := h.readings.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "reading not found"})
	}
	isAnomaly, event, created, err := h.svc.Materialize(reading)
	if err != nil {
		var miss classifier.ErrMissingValue
		if errors.As(err, &miss) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	resp := map[string]any{"is_anomaly": isAnomaly, "created": created}
	if event != nil {
		event.Reading = reading
		resp["event"] = toResp(event)
	}
	return c.JSON(http.StatusOK, resp)
}

// RunBatch runs inference over every stored reading. Safe to re-run: the
// second pass reports events_created = 0.
func (h *AnomalyCtrl) RunBatch(c echo.Context) error {
	readings, err := h.readings.All()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	stats, err := h.svc.RunBatch(readings)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error(), "stats": stats})
	}
	return c.JSON(http.StatusOK, stats)
}

type previewReq struct {
	SoilMoisture   *float64 `json:"soil_moisture"`
	AirTemperature *float64 `json:"air_temperature"`
	Humidity       *float64 `json:"humidity"`
}

// Preview classifies and recommends without touching storage.
func (h *AnomalyCtrl) Preview(c echo.Context) error {
	var req previewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	r := &entities.SensorReading{
		SoilMoisture:   req.SoilMoisture,
		AirTemperature: req.AirTemperature,
		Humidity:       req.Humidity,
	}
	verdict, err := classifier.ClassifyWith(h.th, r)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	resp := map[string]any{"is_anomaly": verdict.IsAnomaly}
	if verdict.IsAnomaly {
		action, explanation := recommend.GenerateWith(h.th, verdict.Category, verdict.Severity, recommend.FromReading(r))
		resp["category"] = verdict.Category
		resp["severity"] = verdict.Severity
		resp["recommended_action"] = action
		resp["explanation_text"] = explanation
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AnomalyCtrl) Reconcile(c echo.Context) error {
	stats, err := h.svc.Reconcile()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error(), "stats": stats})
	}
	return c.JSON(http.StatusOK, stats)
}
