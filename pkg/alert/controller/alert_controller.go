package controller

import "github.com/labstack/echo/v4"

type AlertController interface {
	Search(c echo.Context) error
	Get(c echo.Context) error
}
