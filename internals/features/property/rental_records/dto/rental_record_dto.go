package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/features/property/rental_records/model"
	helper "rentbook_backend/internals/helpers"
)

type RentalRecordResponse struct {
	ID          uint            `json:"id"`
	Floor       constants.Floor `json:"floor"`
	RoomNumber  string          `json:"room_number"`
	TenantName  string          `json:"tenant_name"`
	TotalRent   decimal.Decimal `json:"total_rent"`
	PaymentDate string          `json:"payment_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

func ToRentalRecordResponse(m model.RentalRecordModel) RentalRecordResponse {
	return RentalRecordResponse{
		ID:          m.ID,
		Floor:       m.Floor,
		RoomNumber:  m.RoomNumber,
		TenantName:  m.TenantName,
		TotalRent:   m.TotalRent,
		PaymentDate: helper.FormatDate(&m.PaymentDate),
		CreatedAt:   m.CreatedAt,
	}
}

func ToRentalRecordResponses(rows []model.RentalRecordModel) []RentalRecordResponse {
	out := make([]RentalRecordResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToRentalRecordResponse(r))
	}
	return out
}

// Filter bulan pada payment_date; year & month diisi bersamaan.
type RecordListQuery struct {
	Year  int `query:"year"`
	Month int `query:"month"`
}

func (q RecordListQuery) HasMonth() bool {
	return q.Year > 0 && q.Month >= 1 && q.Month <= 12
}
