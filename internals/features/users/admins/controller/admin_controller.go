package controller

import (
	"github.com/gofiber/fiber/v2"

	"rentbook_backend/internals/features/users/admins/dto"
	"rentbook_backend/internals/features/users/admins/service"
	helper "rentbook_backend/internals/helpers"
)

type AdminController struct {
	Svc *service.AdminService
}

func NewAdminController(svc *service.AdminService) *AdminController {
	return &AdminController{Svc: svc}
}

// GET /api/admins
func (ctl *AdminController) List(c *fiber.Ctx) error {
	rows, err := ctl.Svc.List(c.UserContext())
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	return helper.JsonList(c, "ok", dto.ToAdminResponses(rows), nil)
}

// GET /api/admins/:id
func (ctl *AdminController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "获取失败", err)
	}
	row, err := ctl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonFail(c, "获取失败", err)
	}
	return helper.JsonOK(c, "ok", dto.ToAdminResponse(*row))
}

// POST /api/admins
func (ctl *AdminController) Create(c *fiber.Ctx) error {
	var in dto.AdminCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonFail(c, "创建失败", service.ErrEmptyAdmin)
	}
	row, err := ctl.Svc.Create(c.UserContext(), in)
	if err != nil {
		return helper.JsonFail(c, "创建失败", err)
	}
	return helper.JsonCreated(c, "管理员创建成功", dto.ToAdminResponse(*row))
}

// PUT /api/admins/:id
func (ctl *AdminController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	var in dto.AdminUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonFail(c, "更新失败", helper.InvalidInput("请求数据格式错误"))
	}
	row, err := ctl.Svc.Update(c.UserContext(), id, in)
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	return helper.JsonUpdated(c, "管理员信息更新成功", dto.ToAdminResponse(*row))
}

// DELETE /api/admins/:id
func (ctl *AdminController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "删除失败", err)
	}
	if err := ctl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.JsonFail(c, "删除失败", err)
	}
	return helper.JsonDeleted(c, "管理员删除成功", fiber.Map{"id": id})
}
