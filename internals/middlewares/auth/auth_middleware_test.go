package auth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	authModel "rentbook_backend/internals/features/users/auth/model"
	authService "rentbook_backend/internals/features/users/auth/service"
	helper "rentbook_backend/internals/helpers"
	helperAuth "rentbook_backend/internals/helpers/auth"
	"rentbook_backend/internals/helpers/dbtime"
)

// memStore cukup untuk menguji middleware tanpa database.
type memStore struct {
	revoked map[string]bool
	err     error
}

func (m *memStore) Revoke(_ context.Context, jti string, _ time.Time) error {
	m.revoked[jti] = true
	return nil
}

func (m *memStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	return m.revoked[jti], m.err
}

func (m *memStore) Purge(context.Context, time.Time) (int64, error) { return 0, nil }

func setup(t *testing.T) (*authService.AuthService, *memStore, string) {
	t.Helper()
	clock := dbtime.FixedClock{At: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}
	tokens := authService.NewTokenService("mw-secret", time.Hour, clock)
	store := &memStore{revoked: map[string]bool{}}
	svc := authService.NewAuthService(nil, tokens, store, clock, zap.NewNop())

	raw, _, err := tokens.Issue(authModel.AdminModel{ID: 3, AdminName: "boss"})
	require.NoError(t, err)
	return svc, store, raw
}

func newApp(svc *authService.AuthService, mode Mode) *fiber.App {
	app := fiber.New()
	app.Get("/p", AuthJWT(AuthJWTOpts{Svc: svc, Mode: mode, Log: zap.NewNop()}), func(c *fiber.Ctx) error {
		id, ok := helperAuth.FromContext(c.UserContext())
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.SendString(id.AdminName)
	})
	return app
}

func get(t *testing.T, app *fiber.App, bearer, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: helper.AccessTokenCookie, Value: cookie})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthJWTModeAPI(t *testing.T) {
	svc, store, raw := setup(t)
	app := newApp(svc, ModeAPI)

	assert.Equal(t, http.StatusUnauthorized, get(t, app, "", "").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "not-a-token", "").StatusCode)
	assert.Equal(t, http.StatusOK, get(t, app, raw, "").StatusCode)
	assert.Equal(t, http.StatusOK, get(t, app, "", raw).StatusCode)

	store.err = errors.New("redis down")
	assert.Equal(t, http.StatusUnauthorized, get(t, app, raw, "").StatusCode)
	store.err = nil

	require.NoError(t, svc.Logout(context.Background(), raw))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, raw, "").StatusCode)
}

func TestAuthJWTModePage(t *testing.T) {
	svc, _, raw := setup(t)
	app := newApp(svc, ModePage)

	resp := get(t, app, "", "")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	assert.Equal(t, http.StatusOK, get(t, app, "", raw).StatusCode)
}

func TestHasSession(t *testing.T) {
	svc, _, raw := setup(t)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if HasSession(c, svc) {
			return c.SendString("yes")
		}
		return c.SendString("no")
	})

	check := func(cookie, want string) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: helper.AccessTokenCookie, Value: cookie})
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, want, string(b))
	}
	check("", "no")
	check("expired-or-garbage", "no")
	check(raw, "yes")
}
