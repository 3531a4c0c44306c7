package controller

import "github.com/labstack/echo/v4"

type GuideController interface {
	List(c echo.Context) error
	Select(c echo.Context) error
	View(c echo.Context) error
	Toggle(c echo.Context) error
	Reset(c echo.Context) error
}
