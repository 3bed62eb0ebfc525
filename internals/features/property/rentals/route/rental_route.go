package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rentalController "rentbook_backend/internals/features/property/rentals/controller"
	"rentbook_backend/internals/features/property/rentals/service"
	"rentbook_backend/internals/helpers/dbtime"
)

// Panggil dengan: route.RentalRoutes(floorGroup, db, rates, clock, perPage)
// Hasil endpoint (per lantai):
//   /api/{floor}/rentals
//   /api/{floor}/rentals/:id/mark-paid
func RentalRoutes(r fiber.Router, db *gorm.DB, rates service.Rates, clock dbtime.Clock, perPage int) {
	ctl := rentalController.NewRentalController(service.NewBillingService(db, rates, clock), perPage)

	g := r.Group("/rentals")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Post("/:id/mark-paid", ctl.MarkPaid)
	g.Delete("/:id", ctl.Delete)
}
