package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrisense/entities"
	"agrisense/pkg/anomaly/classifier"
	"agrisense/pkg/reading/service"
)

type ReadingCtrl struct{ svc service.ReadingService }

func New(svc service.ReadingService) *ReadingCtrl { return &ReadingCtrl{svc} }

type readingReq struct {
	PlotID         uint     `json:"plot_id"`
	SoilMoisture   *float64 `json:"soil_moisture"`
	AirTemperature *float64 `json:"air_temperature"`
	Humidity       *float64 `json:"humidity"`
}

func (h *ReadingCtrl) Create(c echo.Context) error {
	var req readingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.PlotID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "plot_id required"})
	}
	m := &entities.SensorReading{
		PlotID:         req.PlotID,
		SoilMoisture:   req.SoilMoisture,
		AirTemperature: req.AirTemperature,
		Humidity:       req.Humidity,
	}
	if _, err := h.svc.Create(m); err != nil {
		var miss classifier.ErrMissingValue
		if errors.As(err, &miss) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *ReadingCtrl) List(c echo.Context) error {
	plotID := 0
	if v := c.QueryParam("plot"); v != "" {
		plotID, _ = strconv.Atoi(v)
	}
	out, err := h.svc.List(uint(plotID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
