package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "rentbook_backend/internals/features/users/admins/controller"
	"rentbook_backend/internals/features/users/admins/service"
)

// AdminRoutes: /api/admins; mw biasanya gate login.
func AdminRoutes(r fiber.Router, db *gorm.DB, mw ...fiber.Handler) {
	ctl := adminController.NewAdminController(service.NewAdminService(db))

	g := r.Group("/admins", mw...)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
