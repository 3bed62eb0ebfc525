package details

import (
	"github.com/gofiber/fiber/v2"

	adminRoute "rentbook_backend/internals/features/users/admins/route"
)

// UserRoutes: kelola akun admin di /api/admins (wajib login).
func UserRoutes(api fiber.Router, d Deps, gate fiber.Handler) {
	adminRoute.AdminRoutes(api, d.DB, gate)
}
