package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactController "rentbook_backend/internals/features/property/contacts/controller"
	"rentbook_backend/internals/features/property/contacts/service"
)

// Hasil endpoint (per lantai): /api/{floor}/contacts
func ContactRoutes(r fiber.Router, db *gorm.DB, perPage, cardPerPage int) {
	ctl := contactController.NewContactController(service.NewContactService(db), perPage, cardPerPage)

	g := r.Group("/contacts")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
