package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	alertrepo "fasal/pkg/alert/repository"
)

type HealthCtrl struct {
	db      *gorm.DB
	alerts  alertrepo.AlertRepository
	guideID string
	started time.Time
	now     func() time.Time
}

func NewHealthCtrl(db *gorm.DB, alerts alertrepo.AlertRepository, guideID string, started time.Time) *HealthCtrl {
	return &HealthCtrl{db: db, alerts: alerts, guideID: guideID, started: started, now: time.Now}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Status serves GET /status.
func (h *HealthCtrl) Status(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	alertsChk := sub{OK: true}
	var alertCount int64
	if dbOK && h.alerts != nil {
		n, err := h.alerts.Count(ctx)
		if err != nil {
			alertsChk = sub{OK: false, Err: "count: " + err.Error()}
		}
		alertCount = n
	}

	allOK := dbOK && alertsChk.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	now := h.now()
	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(now.Sub(h.started).Seconds()),
		"guide_id":   h.guideID,
		"alerts":     alertCount,
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
			"alerts":   alertsChk,
		},
		"time": now.Format(time.RFC3339),
	}
	return c.JSON(status, resp)
}
