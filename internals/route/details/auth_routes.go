package details

import (
	"github.com/gofiber/fiber/v2"

	authController "rentbook_backend/internals/features/users/auth/controller"
	authRoute "rentbook_backend/internals/features/users/auth/route"
	dashboardRoute "rentbook_backend/internals/features/property/reports/route"
)

// AuthRoutes: login/logout/me plus halaman /dashboard yang butuh sesi.
func AuthRoutes(app *fiber.App, d Deps, apiGate, pageGate fiber.Handler) {
	ctl := authController.NewAuthController(d.DB, d.Auth, !d.Config.IsDevelopment())
	authRoute.AuthRoutes(app, ctl, apiGate)

	dashboardRoute.DashboardPageRoutes(app, d.DB, d.Clock, pageGate)
}
