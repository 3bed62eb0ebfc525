package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModel "rentbook_backend/internals/features/users/auth/model"
	"rentbook_backend/internals/databases/dbtest"
	"rentbook_backend/internals/helpers/dbtime"
)

var blNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func TestRedisBlacklist(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	store, closeFn, err := NewBlacklistStore(ctx, nil, "redis://"+mr.Addr()+"/0", dbtime.FixedClock{At: blNow})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })
	require.IsType(t, &RedisBlacklist{}, store)

	require.NoError(t, store.Revoke(ctx, "jti-1", blNow.Add(time.Hour)))
	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Equal(t, time.Hour, mr.TTL(redisBlacklistPrefix+"jti-1"))

	// token yang sudah kedaluwarsa tidak perlu disimpan
	require.NoError(t, store.Revoke(ctx, "jti-2", blNow.Add(-time.Minute)))
	revoked, err = store.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	mr.FastForward(2 * time.Hour)
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	n, err := store.Purge(ctx, blNow)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisBlacklistUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, _, err := NewBlacklistStore(context.Background(), nil, "redis://"+addr+"/0", dbtime.FixedClock{At: blNow})
	require.Error(t, err)

	_, _, err = NewBlacklistStore(context.Background(), nil, "not a url", dbtime.FixedClock{At: blNow})
	require.Error(t, err)
}

func TestGormBlacklistPurge(t *testing.T) {
	clock := dbtime.FixedClock{At: blNow}
	db := dbtest.New(t, clock)
	ctx := context.Background()

	store, closeFn, err := NewBlacklistStore(ctx, db, "", clock)
	require.NoError(t, err)
	require.NoError(t, closeFn())
	require.IsType(t, &GormBlacklist{}, store)

	require.NoError(t, store.Revoke(ctx, "old", blNow.Add(-time.Hour)))
	require.NoError(t, store.Revoke(ctx, "fresh", blNow.Add(time.Hour)))
	// idempotent
	require.NoError(t, store.Revoke(ctx, "fresh", blNow.Add(time.Hour)))

	n, err := store.Purge(ctx, blNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var rows []authModel.TokenBlacklist
	require.NoError(t, db.Unscoped().Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "fresh", rows[0].Token)

	revoked, err := store.IsRevoked(ctx, "old")
	require.NoError(t, err)
	assert.False(t, revoked)
}
