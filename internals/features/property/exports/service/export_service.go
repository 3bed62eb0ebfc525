// file: internals/features/property/exports/service/export_service.go
package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"rentbook_backend/internals/constants"
	recordDto "rentbook_backend/internals/features/property/rental_records/dto"
	recordService "rentbook_backend/internals/features/property/rental_records/service"
	rentalDto "rentbook_backend/internals/features/property/rentals/dto"
	rentalService "rentbook_backend/internals/features/property/rentals/service"
	helper "rentbook_backend/internals/helpers"
	"rentbook_backend/internals/helpers/dbtime"
)

const (
	RentalsSheet = "租房管理"
	RecordsSheet = "缴费记录"
)

var rentalHeader = []string{
	"房号", "租客姓名", "押金", "月租金", "水费", "电费", "用水量", "用电量",
	"水电费", "应缴总额", "缴费状态", "入住日期", "退房日期", "合同开始日期", "合同结束日期", "备注", "创建时间",
}

var recordHeader = []string{"房号", "租客姓名", "缴费金额", "缴费日期", "记录时间"}

type ExportService struct {
	Rentals *rentalService.BillingService
	Records *recordService.RecordService
}

func NewExportService(db *gorm.DB, rates rentalService.Rates, clock dbtime.Clock) *ExportService {
	return &ExportService{
		Rentals: rentalService.NewBillingService(db, rates, clock),
		Records: recordService.NewRecordService(db),
	}
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// RentalsXLSX: satu baris per Rental, filter sama dengan list.
func (s *ExportService) RentalsXLSX(ctx context.Context, floor constants.Floor, q rentalDto.RentalListQuery) ([]byte, error) {
	res, err := s.Rentals.List(ctx, floor, q, 0, 0)
	if err != nil {
		return nil, err
	}
	rows := make([][]any, 0, len(res.Rows))
	for _, r := range res.Rows {
		rows = append(rows, []any{
			r.RoomNumber, r.TenantName, money(r.Deposit), money(r.MonthlyRent),
			money(r.WaterFee), money(r.ElectricityFee), money(r.WaterUsage), money(r.ElectricityUsage),
			money(r.UtilitiesFee), money(r.TotalDue), r.PaymentStatus.Text(),
			helper.FormatDate(r.CheckInDate), helper.FormatDate(r.CheckOutDate),
			helper.FormatDate(r.ContractStartDate), helper.FormatDate(r.ContractEndDate),
			r.Remarks, r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return Workbook(RentalsSheet, rentalHeader, rows)
}

func (s *ExportService) RecordsXLSX(ctx context.Context, floor constants.Floor, q recordDto.RecordListQuery) ([]byte, error) {
	res, err := s.Records.List(ctx, floor, q, 0, 0)
	if err != nil {
		return nil, err
	}
	rows := make([][]any, 0, len(res.Rows))
	for _, r := range res.Rows {
		rows = append(rows, []any{
			r.RoomNumber, r.TenantName, money(r.TotalRent),
			helper.FormatDate(&r.PaymentDate), r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return Workbook(RecordsSheet, recordHeader, rows)
}

// Workbook membuat satu sheet: header tebal + beku, lalu baris data.
func Workbook(sheet string, header []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 14); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
