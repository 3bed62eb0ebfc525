package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	authModel "rentbook_backend/internals/features/users/auth/model"
	"rentbook_backend/internals/features/users/auth/service"
	"rentbook_backend/internals/databases/dbtest"
	"rentbook_backend/internals/helpers/dbtime"
)

func TestRunBlacklistCleanup(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	clock := dbtime.FixedClock{At: now}
	db := dbtest.New(t, clock)
	store := service.NewGormBlacklist(db)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "a", now.Add(-time.Minute)))
	require.NoError(t, store.Revoke(ctx, "b", now.Add(time.Minute)))

	RunBlacklistCleanup(ctx, store, clock, zap.NewNop())

	var n int64
	require.NoError(t, db.Unscoped().Model(&authModel.TokenBlacklist{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestStartBlacklistCleanupScheduler(t *testing.T) {
	clock := dbtime.FixedClock{At: time.Now()}
	store := service.NewGormBlacklist(dbtest.New(t, clock))

	_, err := StartBlacklistCleanupScheduler("not a cron", store, clock, zap.NewNop())
	require.Error(t, err)

	c, err := StartBlacklistCleanupScheduler("", store, clock, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, c.Entries(), 1)
	c.Stop()
}
