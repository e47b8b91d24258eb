package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	Token(c echo.Context) error
	Refresh(c echo.Context) error
	WhoAmI(c echo.Context) error
}
