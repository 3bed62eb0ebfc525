// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "rentbook_backend/internals/features/users/auth/controller"
	rateLimiter "rentbook_backend/internals/middlewares"
)

// AuthRoutes
//   public:    POST /api/auth/login (rate limited), POST /api/auth/logout, GET /logout
//   protected: GET  /api/auth/me
func AuthRoutes(app *fiber.App, ctl *controller.AuthController, gate fiber.Handler) {
	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), ctl.Login)
	baseAuth.Post("/logout", ctl.Logout)
	baseAuth.Get("/me", gate, ctl.Me)

	app.Get("/logout", ctl.LogoutPage)
}
