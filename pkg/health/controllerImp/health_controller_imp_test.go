package controllerImp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fasal/database"
	"fasal/pkg/alert"
	"fasal/pkg/alert/repositoryImp"
)

func serve(t *testing.T, h *HealthCtrl) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	e.GET("/status", h.Status)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestStatus_OK(t *testing.T) {
	db, err := database.OpenSQLite(database.MemoryDSN)
	require.NoError(t, err)
	r := repositoryImp.New(db, zap.NewNop())
	_, err = r.Seed(context.Background(), alert.SampleRecords())
	require.NoError(t, err)

	started := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	h := NewHealthCtrl(db, r, "wheat-punjab-alluvial", started)
	h.now = func() time.Time { return started.Add(90 * time.Second) }

	code, out := serve(t, h)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 90.0, out["uptime_sec"])
	assert.Equal(t, 4.0, out["alerts"])
	assert.Equal(t, "2024-01-15T10:01:30Z", out["time"])
	checks := out["checks"].(map[string]any)
	assert.Equal(t, map[string]any{"ok": true}, checks["database"])
}

func TestStatus_NoDB(t *testing.T) {
	code, out := serve(t, NewHealthCtrl(nil, nil, "g", time.Now()))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, map[string]any{"ok": false}, out["status"])
	checks := out["checks"].(map[string]any)
	assert.Equal(t, "gorm db is nil", checks["database"].(map[string]any)["err"])
}
