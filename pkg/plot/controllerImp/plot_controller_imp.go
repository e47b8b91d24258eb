package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrisense/entities"
	"agrisense/pkg/plot/service"
)

type PlotCtrl struct{ svc service.PlotService }

func New(svc service.PlotService) *PlotCtrl { return &PlotCtrl{svc} }

type plotReq struct {
	FarmID       uint    `json:"farm_id"`
	Name         string  `json:"name"`
	SizeHectares float64 `json:"size_hectares"`
}

func (h *PlotCtrl) Create(c echo.Context) error {
	var req plotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.SizeHectares <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "size_hectares must be positive"})
	}
	p := &entities.FieldPlot{FarmID: req.FarmID, Name: req.Name, SizeHectares: req.SizeHectares}
	if _, err := h.svc.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlotCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.svc.Get(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlotCtrl) List(c echo.Context) error {
	out, err := h.svc.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlotCtrl) Status(c echo.Context) error {
	out, err := h.svc.Status()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
