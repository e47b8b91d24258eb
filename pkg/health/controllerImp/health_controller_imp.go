package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var started = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

type checkResult struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbCheck := checkResult{OK: true}
	if h.db == nil {
		dbCheck = checkResult{Err: "gorm db is nil"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		dbCheck = checkResult{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbCheck = checkResult{Err: "ping: " + err.Error()}
	}

	status, code := "ok", http.StatusOK
	if !dbCheck.OK {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	return c.JSON(code, map[string]any{
		"service":    "agrisense",
		"status":     status,
		"uptime_sec": int(time.Since(started).Seconds()),
		"time":       time.Now().Format(time.RFC3339),
		"checks":     map[string]any{"database": dbCheck},
	})
}
