package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "rentbook_backend/internals/features/property/reports/controller"
	"rentbook_backend/internals/features/property/reports/service"
	"rentbook_backend/internals/helpers/dbtime"
)

// Per lantai: /api/{floor}/dashboard
func DashboardRoutes(r fiber.Router, db *gorm.DB, clock dbtime.Clock) {
	ctl := dashboardController.NewDashboardController(service.NewDashboardService(db, clock))
	r.Get("/dashboard", ctl.Floor)
}

// Halaman gabungan dua lantai: /dashboard. gate = AuthJWT mode page.
func DashboardPageRoutes(app *fiber.App, db *gorm.DB, clock dbtime.Clock, gate fiber.Handler) {
	ctl := dashboardController.NewDashboardController(service.NewDashboardService(db, clock))
	app.Get("/dashboard", gate, ctl.Overview)
}
