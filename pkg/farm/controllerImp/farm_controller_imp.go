package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrisense/entities"
	"agrisense/pkg/farm/repository"
)

type FarmCtrl struct{ repo repository.FarmRepository }

func New(repo repository.FarmRepository) *FarmCtrl { return &FarmCtrl{repo} }

type farmReq struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Role     string `json:"role"`
}

func (h *FarmCtrl) Create(c echo.Context) error {
	var req farmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Role == "" {
		req.Role = "farmer"
	}
	f := &entities.FarmProfile{Name: req.Name, Location: req.Location, Role: req.Role}
	if err := h.repo.Create(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FarmCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
