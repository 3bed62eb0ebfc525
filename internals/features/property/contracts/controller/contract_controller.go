// file: internals/features/property/contracts/controller/contract_controller.go
package controller

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"rentbook_backend/internals/features/property/contracts/dto"
	"rentbook_backend/internals/features/property/contracts/service"
	"rentbook_backend/internals/features/property/contracts/service/pdf"
	helper "rentbook_backend/internals/helpers"
)

type ContractController struct {
	Svc      *service.ContractService
	Renderer *pdf.Renderer
	PerPage  int
}

func NewContractController(svc *service.ContractService, renderer *pdf.Renderer, perPage int) *ContractController {
	if perPage <= 0 {
		perPage = 10
	}
	return &ContractController{Svc: svc, Renderer: renderer, PerPage: perPage}
}

// GET /api/:floor/contracts
func (ctl *ContractController) List(c *fiber.Ctx) error {
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
	return helper.JsonList(c, "ok", dto.ToContractResponses(rows), &pg)
}

// GET /api/:floor/contracts/stats
func (ctl *ContractController) Stats(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	st, err := ctl.Svc.Stats(c.UserContext(), floor)
	if err != nil {
		return helper.JsonFail(c, "查询失败", err)
	}
	return helper.JsonOK(c, "ok", st)
}

// GET /api/:floor/contracts/:id
func (ctl *ContractController) Get(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "获取合同信息失败", err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "获取合同信息失败", err)
	}
	row, err := ctl.Svc.Get(c.UserContext(), floor, id)
	if err != nil {
		return helper.JsonFail(c, "获取合同信息失败", err)
	}
	return helper.JsonOK(c, "ok", dto.ToContractResponse(*row))
}

// POST /api/:floor/contracts
func (ctl *ContractController) Create(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "创建失败", err)
	}
	var in dto.ContractCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonFail(c, "创建失败", helper.InvalidInput("请求数据格式错误"))
	}
	row, err := ctl.Svc.Create(c.UserContext(), floor, in)
	if err != nil {
		return helper.JsonFail(c, "创建失败", err)
	}
	return helper.JsonCreated(c, "合同创建成功", dto.ToContractResponse(*row))
}

// PUT /api/:floor/contracts/:id
func (ctl *ContractController) Update(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	var in dto.ContractUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonFail(c, "更新失败", helper.InvalidInput("请求数据格式错误"))
	}
	row, err := ctl.Svc.Update(c.UserContext(), floor, id, in)
	if err != nil {
		return helper.JsonFail(c, "更新失败", err)
	}
	return helper.JsonUpdated(c, "合同更新成功", dto.ToContractResponse(*row))
}

// DELETE /api/:floor/contracts/:id
func (ctl *ContractController) Delete(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "删除失败", err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "删除失败", err)
	}
	if err := ctl.Svc.Delete(c.UserContext(), floor, id); err != nil {
		return helper.JsonFail(c, "删除失败", err)
	}
	return helper.JsonDeleted(c, "合同删除成功", fiber.Map{"id": id})
}

// GET /api/:floor/contracts/:id/download
func (ctl *ContractController) Download(c *fiber.Ctx) error {
	floor, err := helper.Floor(c)
	if err != nil {
		return helper.JsonFail(c, "下载失败", err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonFail(c, "下载失败", err)
	}
	row, err := ctl.Svc.Get(c.UserContext(), floor, id)
	if err != nil {
		return helper.JsonFail(c, "下载失败", err)
	}

	var buf bytes.Buffer
	if err := ctl.Renderer.Render(&buf, *row); err != nil {
		return helper.JsonFail(c, "下载失败", helper.Storage("下载失败", err))
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, pdf.ContentDisposition(pdf.FileName(*row)))
	return c.Send(buf.Bytes())
}
