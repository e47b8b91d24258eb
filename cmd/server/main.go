package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agrisense/config"
	"agrisense/database"
	"agrisense/router"

	// Auth
	authCtrlImp "agrisense/pkg/auth/controllerImp"

	// Farm / Plot
	farmCtrlImp "agrisense/pkg/farm/controllerImp"
	farmRepoImp "agrisense/pkg/farm/repositoryImp"
	plotCtrlImp "agrisense/pkg/plot/controllerImp"
	plotRepoImp "agrisense/pkg/plot/repositoryImp"
	plotSvcImp "agrisense/pkg/plot/serviceImp"

	// Readings
	readCtrlImp "agrisense/pkg/reading/controllerImp"
	readRepoImp "agrisense/pkg/reading/repositoryImp"
	readSvcImp "agrisense/pkg/reading/serviceImp"

	// Anomaly pipeline
	anomCtrlImp "agrisense/pkg/anomaly/controllerImp"
	anomRepoImp "agrisense/pkg/anomaly/repositoryImp"
	anomSvcImp "agrisense/pkg/anomaly/serviceImp"

	// Thresholds
	"agrisense/pkg/thresholds"

	// Health
	healthCtrlImp "agrisense/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Threshold set (defaults unless override files are configured)
	th := thresholds.LoadFromFiles(cfg.ThresholdsCSV, cfg.ThresholdsXLSX)

	// 4) Repos
	farmRepo := farmRepoImp.New(db)
	plotRepo := plotRepoImp.New(db)
	readRepo := readRepoImp.New(db)
	anomRepo := anomRepoImp.New(db)

	// 5) Services
	anomSvc := anomSvcImp.New(anomRepo, readRepo, th)
	readSvc := readSvcImp.New(readRepo, anomSvc)
	plotSvc := plotSvcImp.New(plotRepo, anomRepo)

	// 6) Controllers
	authCtrl := authCtrlImp.New(cfg)
	farmCtrl := farmCtrlImp.New(farmRepo)
	plotCtrl := plotCtrlImp.New(plotSvc)
	readCtrl := readCtrlImp.New(readSvc)
	anomCtrl := anomCtrlImp.New(anomSvc, anomRepo, readRepo, th)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Echo + routes
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	r := router.New(e, cfg.JWTSecret, authCtrl, farmCtrl, plotCtrl, readCtrl, anomCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
