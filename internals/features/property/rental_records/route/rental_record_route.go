package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordController "rentbook_backend/internals/features/property/rental_records/controller"
	"rentbook_backend/internals/features/property/rental_records/service"
)

// Read-only: /api/{floor}/rental-records
func RentalRecordRoutes(r fiber.Router, db *gorm.DB, perPage int) {
	ctl := recordController.NewRentalRecordController(service.NewRecordService(db), perPage)

	g := r.Group("/rental-records")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
}
