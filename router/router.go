package router

import (
	"github.com/labstack/echo/v4"

	"agrisense/pkg/middleware"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	authCtrl interface {
		Token(echo.Context) error
		Refresh(echo.Context) error
		WhoAmI(echo.Context) error
	},
	farmCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	plotCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		Status(echo.Context) error
	},
	readingCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	anomalyCtrl interface {
		List(echo.Context) error
		ListRecommendations(echo.Context) error
		Recommendation(echo.Context) error
		RunOne(echo.Context) error
		RunBatch(echo.Context) error
		Preview(echo.Context) error
		Reconcile(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	e.POST("/api/token", authCtrl.Token)
	e.POST("/api/token/refresh", authCtrl.Refresh)

	api := e.Group("/api", middleware.JWT(jwtSecret))
	api.GET("/whoami", authCtrl.WhoAmI)

	api.POST("/farms", farmCtrl.Create)
	api.GET("/farms", farmCtrl.List)

	api.POST("/plots", plotCtrl.Create)
	api.GET("/plots", plotCtrl.List)
	api.GET("/plots/status", plotCtrl.Status)
	api.GET("/plots/:id", plotCtrl.Get)

	api.POST("/sensor-readings", readingCtrl.Create)
	api.GET("/sensor-readings", readingCtrl.List)

	api.POST("/inference/preview", anomalyCtrl.Preview)
	api.POST("/inference/readings/:id", anomalyCtrl.RunOne)

	admin := api.Group("", middleware.AdminOnly())
	admin.GET("/anomalies", anomalyCtrl.List)
	admin.GET("/anomalies/:id/recommendation", anomalyCtrl.Recommendation)
	admin.GET("/recommendations", anomalyCtrl.ListRecommendations)
	admin.POST("/inference/run", anomalyCtrl.RunBatch)
	admin.POST("/anomalies/reconcile", anomalyCtrl.Reconcile)

	return e
}
