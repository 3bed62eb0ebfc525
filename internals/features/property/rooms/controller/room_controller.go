// file: internals/features/property/rooms/controller/room_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/features/property/rooms/dto"
	"rentbook_backend/internals/features/property/rooms/service"
	helper "rentbook_backend/internals/helpers"
)

type RoomController struct {
	Svc     *service.RoomService
	PerPage int
}

func NewRoomController(svc *service.RoomService, perPage int) *RoomController {
	if perPage <= 0 {
		perPage = 10
	}
	return &RoomController{Svc: svc, PerPage: perPage}
}

// GET /api/:floor/rooms?status=&page=&per_page=
func (ctl *RoomController) List(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	var q dto.RoomListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonFail(c, "查询失败", helper.InvalidInput("查询参数无效"))
	}
	p := helper.ResolvePaging(c, ctl.PerPage, 100)

	rows, total, err := ctl.Svc.List(c.UserContext(), floor, constants.RoomStatus(q.Status), p.Offset, p.Limit)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows))
	return helper.JsonList(c, "ok", dto.ToRoomResponses(rows), &pg)
}

// GET /api/:floor/rooms/stats
func (ctl *RoomController) Stats(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	stats, err := ctl.Svc.Stats(c.UserContext(), floor)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	return helper.JsonOK(c, "ok", stats)
}

// GET /api/:floor/rooms/available
func (ctl *RoomController) Available(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	rows, err := ctl.Svc.Available(c.UserContext(), floor)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	return helper.JsonList(c, "ok", dto.ToRoomResponses(rows), nil)
}

// GET /api/:floor/rooms/rented
func (ctl *RoomController) Rented(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "获取已出租房间失败", err)
	}
	rows, err := ctl.Svc.Rented(c.UserContext(), floor)
	if err != nil {
		return helper.JsonFail(c, "获取已出租房间失败", err)
	}
	return helper.JsonList(c, "ok", dto.ToRentedRoomResponses(rows), nil)
}

// GET /api/:floor/rooms/:id
func (ctl *RoomController) Get(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "ok", dto.ToRoomResponse(*row))
}

// POST /api/:floor/rooms
func (ctl *RoomController) Create(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "添加失败", err)
	}
	var in dto.RoomRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonFail(c, "添加失败", helper.InvalidInput("请求数据格式错误"))
	}
	row, err := ctl.Svc.Create(c.UserContext(), floor, in)
	if err != nil {
		return helper.JsonFail(c, "添加失败", err)
	}
	return helper.JsonCreated(c, "房间添加成功", dto.ToRoomResponse(*row))
}

// PUT /api/:floor/rooms/:id
func (ctl *RoomController) Update(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	var in dto.RoomRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonFail(c, "更新失败", helper.InvalidInput("请求数据格式错误"))
	}
	row, err := ctl.Svc.Update(c.UserContext(), floor, id, in)
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	return helper.JsonUpdated(c, "房间更新成功", dto.ToRoomResponse(*row))
}

// DELETE /api/:floor/rooms/:id
func (ctl *RoomController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "房间删除成功", fiber.Map{"id": row.ID})
}
