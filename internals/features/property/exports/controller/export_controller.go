package controller

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"rentbook_backend/internals/features/property/exports/service"
	recordDto "rentbook_backend/internals/features/property/rental_records/dto"
	rentalDto "rentbook_backend/internals/features/property/rentals/dto"
	helper "rentbook_backend/internals/helpers"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportController struct {
	Svc *service.ExportService
}

func NewExportController(svc *service.ExportService) *ExportController {
	return &ExportController{Svc: svc}
}

func sendXLSX(c *fiber.Ctx, name string, body []byte) error {
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, name, url.PathEscape(name)))
	return c.Send(body)
}

// GET /api/:floor/exports/rentals.xlsx?year=&month=
func (ctl *ExportController) Rentals(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "导出失败", err)
	}
	var q rentalDto.RentalListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonFail(c, "导出失败", helper.InvalidInput("查询参数无效"))
	}
	body, err := ctl.Svc.RentalsXLSX(c.UserContext(), floor, q)
	if err != nil {
		return helper.JsonFail(c, "导出失败", err)
	}
	return sendXLSX(c, fmt.Sprintf("rentals-%s.xlsx", floor), body)
}

// GET /api/:floor/exports/rental-records.xlsx?year=&month=
func (ctl *ExportController) Records(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "导出失败", err)
	}
	var q recordDto.RecordListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonFail(c, "导出失败", helper.InvalidInput("查询参数无效"))
	}
	body, err := ctl.Svc.RecordsXLSX(c.UserContext(), floor, q)
	if err != nil {
		return helper.JsonFail(c, "导出失败", err)
	}
	return sendXLSX(c, fmt.Sprintf("rental-records-%s.xlsx", floor), body)
}
