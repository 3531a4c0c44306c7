package repositoryImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fasal/database"
	"fasal/entities"
	"fasal/pkg/guide/repository"
)

func TestSave_KeepsCreatedAt(t *testing.T) {
	db, err := database.OpenSQLite(database.MemoryDSN)
	require.NoError(t, err)
	r := New(db)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, &entities.GuideSession{SessionID: "a", GuideID: "g", OpenSteps: []string{"variety"}}))
	first, err := r.Find(ctx, "a")
	require.NoError(t, err)
	require.False(t, first.CreatedAt.IsZero())

	// a fresh struct, as the service builds one per write
	require.NoError(t, r.Save(ctx, &entities.GuideSession{SessionID: "a", GuideID: "g", OpenSteps: []string{"prep", "harvest"}}))
	second, err := r.Find(ctx, "a")
	require.NoError(t, err)

	assert.True(t, first.CreatedAt.Equal(second.CreatedAt), "created_at %v -> %v", first.CreatedAt, second.CreatedAt)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
	assert.Equal(t, []string{"prep", "harvest"}, second.OpenSteps)

	var n int64
	require.NoError(t, db.Model(&entities.GuideSession{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestDelete(t *testing.T) {
	db, err := database.OpenSQLite(database.MemoryDSN)
	require.NoError(t, err)
	r := New(db)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, &entities.GuideSession{SessionID: "a", GuideID: "g"}))
	require.NoError(t, r.Delete(ctx, "a"))
	_, err = r.Find(ctx, "a")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
