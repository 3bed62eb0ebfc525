// file: internals/features/property/rentals/controller/rental_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"rentbook_backend/internals/features/property/rentals/dto"
	"rentbook_backend/internals/features/property/rentals/service"
	helper "rentbook_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type RentalController struct {
	Svc     *service.BillingService
	PerPage int
}

func NewRentalController(svc *service.BillingService, perPage int) *RentalController {
	if perPage <= 0 {
		perPage = 10
	}
	return &RentalController{Svc: svc, PerPage: perPage}
}

// GET /api/:floor/rentals?year=&month=&page=
func (ctl *RentalController) List(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}

	var q dto.RentalListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonFail(c, "查询失败", helper.InvalidInput("查询参数无效"))
	}
	p := helper.ResolvePaging(c, ctl.PerPage, 100)

	res, err := ctl.Svc.List(c.UserContext(), floor, q, p.Offset, p.Limit)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}

	pg := helper.BuildPaginationFromPage(res.Total, p.Page, p.PerPage, len(res.Rows))
	return c.JSON(fiber.Map{
		"success":       true,
		"message":       "ok",
		"data":          dto.ToRentalResponses(res.Rows),
		"pagination":    pg,
		"earliest_date": res.EarliestDate.Format(helper.DateLayout),
		"filter":        q,
	})
}

// GET /api/:floor/rentals/:id
func (ctl *RentalController) Get(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "ok", dto.ToRentalResponse(*row))
}

// POST /api/:floor/rentals
func (ctl *RentalController) Create(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "添加失败", err)
	}
	var in dto.RentalRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonFail(c, "添加失败", helper.InvalidInput("请求数据格式错误"))
	}
	row, err := ctl.Svc.Create(c.UserContext(), floor, in)
	if err != nil {
		return helper.JsonFail(c, "添加失败", err)
	}
	return helper.JsonCreated(c, "添加成功", dto.ToRentalResponse(*row))
}

// PUT /api/:floor/rentals/:id
func (ctl *RentalController) Update(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	var in dto.RentalRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonFail(c, "更新失败", helper.InvalidInput("请求数据格式错误"))
	}
	row, err := ctl.Svc.Update(c.UserContext(), floor, id, in)
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	return helper.JsonUpdated(c, "更新成功", dto.ToRentalResponse(*row))
}

// POST /api/:floor/rentals/:id/mark-paid
func (ctl *RentalController) MarkPaid(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "标记失败", err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "标记失败", err)
	}
	res, err := ctl.Svc.MarkPaid(c.UserContext(), floor, id)
	if err != nil {
		return helper.JsonFail(c, "标记失败", err)
	}
	return helper.JsonOK(c, "已成功标记为已缴费并记录缴费信息", fiber.Map{
		"rental":         dto.ToRentalResponse(res.Rental),
		"record_id":      res.Record.ID,
		"payment_date":   helper.FormatDate(&res.Record.PaymentDate),
		"occupancy_paid": res.OccupancyPaid,
	})
}

// DELETE /api/:floor/rentals/:id
func (ctl *RentalController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "删除成功", fiber.Map{"id": row.ID})
}
