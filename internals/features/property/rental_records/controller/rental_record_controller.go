package controller

import (
	"github.com/gofiber/fiber/v2"

	"rentbook_backend/internals/features/property/rental_records/dto"
	"rentbook_backend/internals/features/property/rental_records/service"
	helper "rentbook_backend/internals/helpers"
)

type RentalRecordController struct {
	Svc     *service.RecordService
	PerPage int
}

func NewRentalRecordController(svc *service.RecordService, perPage int) *RentalRecordController {
	if perPage <= 0 {
		perPage = 10
	}
	return &RentalRecordController{Svc: svc, PerPage: perPage}
}

// GET /api/:floor/rental-records?year=&month=&page=
func (ctl *RentalRecordController) List(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	var q dto.RecordListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonFail(c, "查询失败", helper.InvalidInput("查询参数无效"))
	}
	p := helper.ResolvePaging(c, ctl.PerPage, 100)

	res, err := ctl.Svc.List(c.UserContext(), floor, q, p.Offset, p.Limit)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	pg := helper.BuildPaginationFromPage(res.Total, p.Page, p.PerPage, len(res.Rows))
	return helper.JsonList(c, "ok", dto.ToRentalRecordResponses(res.Rows), &pg)
}

// GET /api/:floor/rental-records/:id
func (ctl *RentalRecordController) Get(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "ok", dto.ToRentalRecordResponse(*row))
}
