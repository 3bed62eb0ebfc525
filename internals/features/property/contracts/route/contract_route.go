package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contractController "rentbook_backend/internals/features/property/contracts/controller"
	"rentbook_backend/internals/features/property/contracts/service"
	"rentbook_backend/internals/features/property/contracts/service/pdf"
	"rentbook_backend/internals/helpers/dbtime"
)

// Hasil endpoint (per lantai):
//   /api/{floor}/contracts
//   /api/{floor}/contracts/stats
//   /api/{floor}/contracts/:id/download
func ContractRoutes(r fiber.Router, db *gorm.DB, renderer *pdf.Renderer, clock dbtime.Clock, perPage int) {
	ctl := contractController.NewContractController(service.NewContractService(db, clock), renderer, perPage)

	g := r.Group("/contracts")
	g.Get("/", ctl.List)
	g.Get("/stats", ctl.Stats)
	g.Get("/:id", ctl.Get)
	g.Get("/:id/download", ctl.Download)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
