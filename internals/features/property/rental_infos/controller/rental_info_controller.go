// file: internals/features/property/rental_infos/controller/rental_info_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"rentbook_backend/internals/features/property/rental_infos/dto"
	"rentbook_backend/internals/features/property/rental_infos/service"
	helper "rentbook_backend/internals/helpers"
)

type RentalInfoController struct {
	Svc     *service.OccupancyService
	PerPage int
}

func NewRentalInfoController(svc *service.OccupancyService, perPage int) *RentalInfoController {
	if perPage <= 0 {
		perPage = 10
	}
	return &RentalInfoController{Svc: svc, PerPage: perPage}
}

// GET /api/:floor/rental-infos
func (ctl *RentalInfoController) List(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	p := helper.ResolvePaging(c, ctl.PerPage, 100)
	rows, total, err := ctl.Svc.List(c.UserContext(), floor, p.Offset, p.Limit)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows))
	return helper.JsonList(c, "ok", dto.ToRentalInfoResponses(rows), &pg)
}

// GET /api/:floor/rental-infos/search?q=&status=all|paid|unpaid
func (ctl *RentalInfoController) Search(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "搜索失败", err)
	}
	var q dto.SearchQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonFail(c, "搜索失败", helper.InvalidInput("查询参数无效"))
	}
	rows, err := ctl.Svc.Search(c.UserContext(), floor, q)
	if err != nil {
		return helper.JsonFail(c, "搜索失败", err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "ok",
		"data":    dto.ToRentalInfoResponses(rows),
		"total":   len(rows),
	})
}

// GET /api/:floor/rental-infos/:id
func (ctl *RentalInfoController) Get(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	row, err := ctl.Svc.Get(c.UserContext(), floor, id)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	return helper.JsonOK(c, "ok", dto.ToRentalInfoResponse(*row))
}

// POST /api/:floor/rental-infos
func (ctl *RentalInfoController) Create(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "添加失败", err)
	}
	var in dto.RentalInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonFail(c, "添加失败", helper.InvalidInput("请求数据格式错误"))
	}
	row, err := ctl.Svc.Create(c.UserContext(), floor, in)
	if err != nil {
		return helper.JsonFail(c, "添加失败", err)
	}
	return helper.JsonCreated(c, "租房信息添加成功，房间状态已更新", dto.ToRentalInfoResponse(*row))
}

// PUT /api/:floor/rental-infos/:id
func (ctl *RentalInfoController) Update(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	var in dto.RentalInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonFail(c, "更新失败", helper.InvalidInput("请求数据格式错误"))
	}
	row, err := ctl.Svc.Update(c.UserContext(), floor, id, in)
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	return helper.JsonUpdated(c, "租房信息更新成功", dto.ToRentalInfoResponse(*row))
}

// DELETE /api/:floor/rental-infos/:id
func (ctl *RentalInfoController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "租房信息删除成功", fiber.Map{"id": row.ID})
}

// POST /api/:floor/rental-infos/:id/checkout
func (ctl *RentalInfoController) Checkout(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "退房失败", err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "退房失败", err)
	}
	row, err := ctl.Svc.Checkout(c.UserContext(), floor, id)
	if err != nil {
		return helper.JsonFail(c, "退房失败", err)
	}
	return helper.JsonOK(c, "退房成功，房间已恢复空闲", fiber.Map{
		"id":          row.ID,
		"room_number": row.RoomNumber,
	})
}
