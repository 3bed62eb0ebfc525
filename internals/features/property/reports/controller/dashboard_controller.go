package controller

import (
	"github.com/gofiber/fiber/v2"

	"rentbook_backend/internals/features/property/reports/service"
	helper "rentbook_backend/internals/helpers"
	helperAuth "rentbook_backend/internals/helpers/auth"
)

type DashboardController struct {
	Svc *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

// GET /api/:floor/dashboard
func (ctl *DashboardController) Floor(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	d, err := ctl.Svc.Dashboard(c.UserContext(), floor)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	return helper.JsonOK(c, "ok", d)
}

// GET /dashboard (halaman; gate mode page)
func (ctl *DashboardController) Overview(c *fiber.Ctx) error {
	floors, err := ctl.Svc.Overview(c.UserContext())
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	data := fiber.Map{"floors": floors}
	if id, ok := helperAuth.FromFiber(c); ok {
		data["admin_name"] = id.AdminName
	}
	return helper.JsonOK(c, "ok", data)
}
