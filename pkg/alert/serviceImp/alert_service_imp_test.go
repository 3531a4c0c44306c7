package serviceImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fasal/database"
	"fasal/entities"
	"fasal/pkg/alert"
	"fasal/pkg/alert/repositoryImp"
	"fasal/pkg/alert/service"
)

func newSvc(t *testing.T) (service.AlertService, func(entities.Alert)) {
	t.Helper()
	db, err := database.OpenSQLite(database.MemoryDSN)
	require.NoError(t, err)
	r := repositoryImp.New(db, zap.NewNop())
	_, err = r.Seed(context.Background(), alert.SampleRecords())
	require.NoError(t, err)
	insert := func(a entities.Alert) { require.NoError(t, db.Create(&a).Error) }
	return NewAlertService(r, zap.NewNop()), insert
}

func TestSearch(t *testing.T) {
	s, _ := newSvc(t)
	out, err := s.Search(context.Background(), alert.Criteria{Severity: "high", Variable: alert.All, DateRange: alert.Range7d})
	require.NoError(t, err)

	require.Len(t, out.Alerts, 2)
	assert.Equal(t, 1, out.Alerts[0].ID)
	assert.Equal(t, 4, out.Alerts[1].ID)
	assert.Equal(t, alert.Summary{High: 2}, out.Summary)
	assert.Equal(t, 4, out.Total)
	assert.Equal(t, "destructive", out.Alerts[0].Badge)
	assert.Equal(t, 100.0, out.Alerts[1].Bars[0])
}

func TestSearch_CorruptRowDoesNotPanic(t *testing.T) {
	s, insert := newSvc(t)
	insert(entities.Alert{AlertID: 9, Severity: "critical", Variable: "soil", Sparkline: []float64{1}})

	assert.NotPanics(t, func() {
		out, err := s.Search(context.Background(), alert.DefaultCriteria())
		require.NoError(t, err)
		assert.Equal(t, alert.Summary{High: 2, Medium: 1, Low: 1}, out.Summary)
		assert.Len(t, out.Alerts, 4)
	})

	_, err := s.Get(context.Background(), 9)
	assert.ErrorIs(t, err, alert.ErrInvalidRecord)
}
