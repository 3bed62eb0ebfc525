// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	authService "rentbook_backend/internals/features/users/auth/service"
	helper "rentbook_backend/internals/helpers"
	helperAuth "rentbook_backend/internals/helpers/auth"
)

type Mode int

const (
	// ModeAPI: gagal → 401 JSON
	ModeAPI Mode = iota
	// ModePage: gagal → redirect ke LoginPath
	ModePage
)

type AuthJWTOpts struct {
	Svc       *authService.AuthService
	Mode      Mode
	LoginPath string
	Log       *zap.Logger
}

// AuthJWT membaca Bearer/cookie, verifikasi token + blacklist, lalu
// menaruh Identity ke Locals dan ke context request.
func AuthJWT(opts AuthJWTOpts) fiber.Handler {
	if opts.LoginPath == "" {
		opts.LoginPath = "/login"
	}
	if opts.Log == nil {
		opts.Log = zap.L()
	}

	reject := func(c *fiber.Ctx) error {
		if opts.Mode == ModePage {
			return c.Redirect(opts.LoginPath, fiber.StatusFound)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "请先登录")
	}

	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return reject(c)
		}

		id, err := opts.Svc.Authenticate(c.UserContext(), raw)
		if err != nil {
			if !errors.Is(err, authService.ErrUnauthenticated) &&
				!errors.Is(err, authService.ErrTokenInvalid) &&
				!errors.Is(err, authService.ErrTokenExpired) {
				// blacklist tidak terbaca: tolak, tapi catat
				opts.Log.Error("auth: blacklist lookup failed",
					zap.String("request_id", helper.RequestID(c)),
					zap.Error(err),
				)
			}
			return reject(c)
		}

		helper.SetRawAccessToken(c, raw)
		helperAuth.Attach(c, id)
		return c.Next()
	}
}

// HasSession dipakai route "/" untuk memilih tujuan redirect.
func HasSession(c *fiber.Ctx, svc *authService.AuthService) bool {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return false
	}
	_, err := svc.Authenticate(c.UserContext(), raw)
	return err == nil
}
