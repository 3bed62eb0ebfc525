package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	exportController "rentbook_backend/internals/features/property/exports/controller"
	"rentbook_backend/internals/features/property/exports/service"
	rentalService "rentbook_backend/internals/features/property/rentals/service"
	"rentbook_backend/internals/helpers/dbtime"
)

// /api/{floor}/exports/rentals.xlsx & /api/{floor}/exports/rental-records.xlsx
func ExportRoutes(r fiber.Router, db *gorm.DB, rates rentalService.Rates, clock dbtime.Clock) {
	ctl := exportController.NewExportController(service.NewExportService(db, rates, clock))

	g := r.Group("/exports")
	g.Get("/rentals.xlsx", ctl.Rentals)
	g.Get("/rental-records.xlsx", ctl.Records)
}
