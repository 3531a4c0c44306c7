package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fasal/pkg/middleware"
	"fasal/pkg/whatsapp"
	"fasal/pkg/whatsapp/service"
)

type ConnCtrl struct {
	s   service.ConnectionService
	log *zap.Logger
}

func New(s service.ConnectionService, log *zap.Logger) *ConnCtrl { return &ConnCtrl{s: s, log: log} }

type phoneReq struct {
	Phone string `json:"phone"`
}

func (h *ConnCtrl) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, whatsapp.ErrInvalidPhone):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, whatsapp.ErrInvalidTransition), errors.Is(err, whatsapp.ErrPhoneMismatch):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	}
	h.log.Error("whatsapp request failed", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

func (h *ConnCtrl) Get(c echo.Context) error {
	out, err := h.s.Get(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ConnCtrl) Connect(c echo.Context) error {
	var req phoneReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.s.Connect(c.Request().Context(), middleware.SessionID(c), req.Phone)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusAccepted, out)
}

type ackReq struct {
	SessionID string `json:"session_id"`
	Phone     string `json:"phone"`
}

// Acknowledge is the messaging gateway's handshake callback that completes a
// pending connection. It is not reachable with a browser session; the gateway
// names the session it is confirming.
func (h *ConnCtrl) Acknowledge(c echo.Context) error {
	var req ackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if req.SessionID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "session_id is required"})
	}
	out, err := h.s.Acknowledge(c.Request().Context(), req.SessionID, req.Phone)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ConnCtrl) Disconnect(c echo.Context) error {
	out, err := h.s.Disconnect(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
