package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fasal/pkg/alert"
	repo "fasal/pkg/alert/repository"
	"fasal/pkg/alert/service"
)

type AlertCtrl struct {
	s   service.AlertService
	log *zap.Logger
}

func New(s service.AlertService, log *zap.Logger) *AlertCtrl { return &AlertCtrl{s: s, log: log} }

// Search serves GET /alerts/search?severity=&variable=&range=
func (h *AlertCtrl) Search(c echo.Context) error {
	crit, err := alert.ParseCriteria(c.QueryParam("severity"), c.QueryParam("variable"), c.QueryParam("range"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	out, err := h.s.Search(c.Request().Context(), crit)
	if err != nil {
		h.log.Error("alert search failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AlertCtrl) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	out, err := h.s.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		}
		h.log.Error("alert get failed", zap.Int("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
