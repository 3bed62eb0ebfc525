// file: internals/features/property/contacts/controller/contact_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"rentbook_backend/internals/features/property/contacts/dto"
	"rentbook_backend/internals/features/property/contacts/service"
	helper "rentbook_backend/internals/helpers"
)

type ContactController struct {
	Svc         *service.ContactService
	PerPage     int
	CardPerPage int
}

func NewContactController(svc *service.ContactService, perPage, cardPerPage int) *ContactController {
	if perPage <= 0 {
		perPage = 10
	}
	if cardPerPage <= 0 {
		cardPerPage = 12
	}
	return &ContactController{Svc: svc, PerPage: perPage, CardPerPage: cardPerPage}
}

// GET /api/:floor/contacts?view=card|table&q=&page=
func (ctl *ContactController) List(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	var q dto.ContactListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonFail(c, "查询失败", helper.InvalidInput("查询参数无效"))
	}

	perPage := ctl.PerPage
	if q.IsCard() {
		perPage = ctl.CardPerPage
	}
	p := helper.ResolvePaging(c, perPage, 100)

	rows, total, err := ctl.Svc.List(c.UserContext(), floor, q.Q, p.Offset, p.Limit)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows))
	return helper.JsonList(c, "ok", dto.ToContactResponses(rows), &pg)
}

// GET /api/:floor/contacts/:id
func (ctl *ContactController) Get(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "获取联系人信息失败", err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "获取联系人信息失败", err)
	}
	row, err := ctl.Svc.Get(c.UserContext(), floor, id)
	if err != nil {
		return helper.JsonFail(c, "获取联系人信息失败", err)
	}
	return helper.JsonOK(c, "ok", dto.ToContactResponse(*row))
}

// POST /api/:floor/contacts
func (ctl *ContactController) Create(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "添加失败", err)
	}
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonFail(c, "添加失败", helper.InvalidInput("请求数据格式错误"))
	}
	row, err := ctl.Svc.Create(c.UserContext(), floor, in)
	if err != nil {
		return helper.JsonFail(c, "添加失败", err)
	}
	return helper.JsonCreated(c, "联系人添加成功", dto.ToContactResponse(*row))
}

// PUT /api/:floor/contacts/:id
func (ctl *ContactController) Update(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonFail(c, "更新失败", helper.InvalidInput("请求数据格式错误"))
	}
	row, err := ctl.Svc.Update(c.UserContext(), floor, id, in)
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	return helper.JsonUpdated(c, "联系人更新成功", dto.ToContactResponse(*row))
}

// DELETE /api/:floor/contacts/:id
func (ctl *ContactController) Delete(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "删除失败", err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "删除失败", err)
	}
	row, err := ctl.Svc.Delete(c.UserContext(), floor, id)
	if err != nil {
		return helper.JsonFail(c, "删除失败", err)
	}
	return helper.JsonDeleted(c, "联系人删除成功", fiber.Map{"id": row.ID})
}
