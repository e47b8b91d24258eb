package controller

import "github.com/labstack/echo/v4"

type AnomalyController interface {
	List(c echo.Context) error
	ListRecommendations(c echo.Context) error
	Recommendation(c echo.Context) error
	RunOne(c echo.Context) error
	RunBatch(c echo.Context) error
	Preview(c echo.Context) error
	Reconcile(c echo.Context) error
}
