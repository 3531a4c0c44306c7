package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fasal/pkg/guide"
	"fasal/pkg/guide/service"
	"fasal/pkg/middleware"
)

type GuideCtrl struct {
	s   service.GuideService
	log *zap.Logger
}

func New(s service.GuideService, log *zap.Logger) *GuideCtrl { return &GuideCtrl{s: s, log: log} }

// List serves GET /guides?crop=&region=&soil=
func (h *GuideCtrl) List(c echo.Context) error {
	var sel guide.Selector
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &sel); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid query"})
	}
	out, err := h.s.List(c.Request().Context(), sel)
	if err != nil {
		h.log.Error("guide list failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"guides": out})
}

// Select serves POST /guides/current/select with a guide id or crop/region/soil.
func (h *GuideCtrl) Select(c echo.Context) error {
	var sel guide.Selector
	if err := c.Bind(&sel); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.s.Select(c.Request().Context(), middleware.SessionID(c), sel)
	if err != nil {
		if errors.Is(err, guide.ErrNoMatch) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		h.log.Error("guide select failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GuideCtrl) View(c echo.Context) error {
	out, err := h.s.View(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		h.log.Error("guide view failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GuideCtrl) Toggle(c echo.Context) error {
	stepID := c.Param("step_id")
	out, err := h.s.Toggle(c.Request().Context(), middleware.SessionID(c), stepID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownStep) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		h.log.Error("guide toggle failed", zap.String("step", stepID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GuideCtrl) Reset(c echo.Context) error {
	out, err := h.s.Reset(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		h.log.Error("guide reset failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
