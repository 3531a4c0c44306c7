package router

import (
	"github.com/labstack/echo/v4"

	alertCtrl "fasal/pkg/alert/controller"
	guideCtrl "fasal/pkg/guide/controller"
	"fasal/pkg/middleware"
)

func New(
	e *echo.Echo,
	alerts alertCtrl.AlertController,
	guides guideCtrl.GuideController,
	waCtrl interface {
		Get(echo.Context) error
		Connect(echo.Context) error
		Acknowledge(echo.Context) error
		Disconnect(echo.Context) error
	},
	healthCtrl interface{ Status(echo.Context) error },
	gatewayToken string,
) *echo.Echo {
	e.GET("/status", healthCtrl.Status)

	// messaging-gateway callbacks
	e.POST("/whatsapp/ack", waCtrl.Acknowledge, middleware.GatewayToken(gatewayToken))

	api := e.Group("", middleware.Session())

	api.GET("/alerts/search", alerts.Search)
	api.GET("/alerts/:id", alerts.Get)

	api.GET("/guides", guides.List)
	api.GET("/guides/current", guides.View)
	api.POST("/guides/current/select", guides.Select)
	api.POST("/guides/current/steps/:step_id/toggle", guides.Toggle)
	api.DELETE("/guides/current", guides.Reset)

	api.GET("/whatsapp", waCtrl.Get)
	api.POST("/whatsapp/connect", waCtrl.Connect)
	api.POST("/whatsapp/disconnect", waCtrl.Disconnect)
	return e
}
