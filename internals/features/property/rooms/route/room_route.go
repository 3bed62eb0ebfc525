package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomController "rentbook_backend/internals/features/property/rooms/controller"
	"rentbook_backend/internals/features/property/rooms/service"
)

// Hasil endpoint (per lantai):
//   /api/{floor}/rooms
//   /api/{floor}/rooms/stats | available | rented
func RoomRoutes(r fiber.Router, db *gorm.DB, perPage int) {
	ctl := roomController.NewRoomController(service.NewRoomService(db), perPage)

	g := r.Group("/rooms")
	g.Get("/", ctl.List)
	g.Get("/stats", ctl.Stats)
	g.Get("/available", ctl.Available)
	g.Get("/rented", ctl.Rented)
	g.Get("/:id", ctl.Get)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
