package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rentalInfoController "rentbook_backend/internals/features/property/rental_infos/controller"
	"rentbook_backend/internals/features/property/rental_infos/service"
	"rentbook_backend/internals/helpers/dbtime"
)

// Hasil endpoint (per lantai):
//   /api/{floor}/rental-infos
//   /api/{floor}/rental-infos/search
//   /api/{floor}/rental-infos/:id/checkout
func RentalInfoRoutes(r fiber.Router, db *gorm.DB, clock dbtime.Clock, perPage int) {
	ctl := rentalInfoController.NewRentalInfoController(service.NewOccupancyService(db, clock), perPage)

	g := r.Group("/rental-infos")
	g.Get("/", ctl.List)
	g.Get("/search", ctl.Search)
	g.Get("/:id", ctl.Get)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
	g.Post("/:id/checkout", ctl.Checkout)
}
