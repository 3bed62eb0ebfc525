package details

import (
	"github.com/gofiber/fiber/v2"

	"rentbook_backend/internals/constants"
	contactRoute "rentbook_backend/internals/features/property/contacts/route"
	contractRoute "rentbook_backend/internals/features/property/contracts/route"
	exportRoute "rentbook_backend/internals/features/property/exports/route"
	rentalInfoRoute "rentbook_backend/internals/features/property/rental_infos/route"
	rentalRecordRoute "rentbook_backend/internals/features/property/rental_records/route"
	rentalRoute "rentbook_backend/internals/features/property/rentals/route"
	dashboardRoute "rentbook_backend/internals/features/property/reports/route"
	roomRoute "rentbook_backend/internals/features/property/rooms/route"
	"rentbook_backend/internals/middlewares"
)

// PropertyRoutes memasang satu grup /api/{floor} per lantai. Handler tidak
// pernah membaca nama lantai dari URL; lantai dibawa oleh WithFloor.
func PropertyRoutes(api fiber.Router, d Deps, gate fiber.Handler) {
	for _, floor := range constants.AllFloors {
		g := api.Group("/"+floor.String(), gate, middlewares.WithFloor(floor))
		FloorRoutes(g, d)
	}
}

// FloorRoutes berisi route satu lantai; dipisah supaya bisa dites tanpa gate.
func FloorRoutes(g fiber.Router, d Deps) {
	perPage := d.Config.PerPage

	roomRoute.RoomRoutes(g, d.DB, perPage)
	contactRoute.ContactRoutes(g, d.DB, perPage, d.Config.CardPerPage)
	rentalInfoRoute.RentalInfoRoutes(g, d.DB, d.Clock, perPage)
	rentalRoute.RentalRoutes(g, d.DB, d.Rates, d.Clock, perPage)
	rentalRecordRoute.RentalRecordRoutes(g, d.DB, perPage)
	contractRoute.ContractRoutes(g, d.DB, d.Renderer, d.Clock, perPage)
	dashboardRoute.DashboardRoutes(g, d.DB, d.Clock)
	exportRoute.ExportRoutes(g, d.DB, d.Rates, d.Clock)
}

// UnknownFloorRoutes wajib dipasang paling akhir.
func UnknownFloorRoutes(api fiber.Router, gate fiber.Handler) {
	api.All("/:floor/*", gate, middlewares.UnknownFloor("floor"))
}
