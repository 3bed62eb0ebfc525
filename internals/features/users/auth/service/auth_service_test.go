package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authModel "rentbook_backend/internals/features/users/auth/model"
	"rentbook_backend/internals/databases/dbtest"
	helper "rentbook_backend/internals/helpers"
	"rentbook_backend/internals/helpers/dbtime"
)

type movableClock struct{ at time.Time }

func (c *movableClock) Now() time.Time { return c.at }

func newAuth(t *testing.T) (*AuthService, *gorm.DB, *movableClock) {
	t.Helper()
	clock := &movableClock{at: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}
	db := dbtest.New(t, clock)

	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&authModel.AdminModel{AdminName: "admin", PasswordHash: hash}).Error)

	tokens := NewTokenService("test-secret", time.Hour, clock)
	return NewAuthService(db, tokens, NewGormBlacklist(db), clock, zap.NewNop()), db, clock
}

func TestLoginMessages(t *testing.T) {
	svc, _, _ := newAuth(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "  ", "x")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Login(ctx, "nobody", "secret123")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Login(ctx, "admin", "wrong-pass")
	assert.ErrorIs(t, err, ErrBadCredentials)

	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "用户名或密码错误", appErr.Message)
	assert.Equal(t, helper.CodeInvalidCredentials, appErr.Code)
}

func TestLoginStampsLastLogin(t *testing.T) {
	svc, db, clock := newAuth(t)

	res, err := svc.Login(context.Background(), " admin ", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.True(t, res.Claims.ExpiresAtTime().Equal(clock.at.Add(time.Hour)))

	var admin authModel.AdminModel
	require.NoError(t, db.First(&admin, res.Claims.AdminID).Error)
	require.NotNil(t, admin.LastLogin)
	assert.True(t, admin.LastLogin.Equal(clock.at))
}

func TestAuthenticateAndLogout(t *testing.T) {
	svc, _, _ := newAuth(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "admin", "secret123")
	require.NoError(t, err)

	id, err := svc.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", id.AdminName)
	assert.Equal(t, res.Claims.ID, id.TokenID)

	require.NoError(t, svc.Logout(ctx, res.Token))
	_, err = svc.Authenticate(ctx, res.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// logout kedua tetap sukses
	require.NoError(t, svc.Logout(ctx, res.Token))
	// token rusak diabaikan
	require.NoError(t, svc.Logout(ctx, "garbage"))
}

func TestAuthenticateRejectsExpiredAndForeignTokens(t *testing.T) {
	svc, _, clock := newAuth(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "admin", "secret123")
	require.NoError(t, err)

	other := NewTokenService("other-secret", time.Hour, clock)
	forged, _, err := other.Issue(authModel.AdminModel{ID: res.Claims.AdminID, AdminName: "admin"})
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, forged)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	clock.at = clock.at.Add(time.Hour)
	_, err = svc.Authenticate(ctx, res.Token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenServiceDefaultTTL(t *testing.T) {
	tokens := NewTokenService("s", 0, dbtime.FixedClock{At: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)})
	assert.Equal(t, 24*time.Hour, tokens.TTL)

	raw, claims, err := tokens.Issue(authModel.AdminModel{ID: 7, AdminName: "a"})
	require.NoError(t, err)
	parsed, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, claims.ID, parsed.ID)
	assert.Equal(t, uint(7), parsed.AdminID)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "secret124"))
}
