package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/features/property/rental_infos/model"
	helper "rentbook_backend/internals/helpers"
)

// RentalInfoRequest: create & update (overwrite penuh).
type RentalInfoRequest struct {
	RoomNumber    string          `json:"room_number" validate:"required,max=20"`
	TenantName    string          `json:"tenant_name" validate:"required,max=50"`
	Phone         string          `json:"phone" validate:"max=20"`
	Deposit       decimal.Decimal `json:"deposit"`
	OccupantCount int             `json:"occupant_count" validate:"gte=0"`
	CheckInDate   string          `json:"check_in_date"`
	Status        *int            `json:"rental_status,omitempty"`
	Remarks       string          `json:"remarks"`
}

type RentalInfoResponse struct {
	ID            uint                    `json:"id"`
	Floor         constants.Floor         `json:"floor"`
	RoomNumber    string                  `json:"room_number"`
	TenantName    string                  `json:"tenant_name"`
	Phone         string                  `json:"phone"`
	Deposit       decimal.Decimal         `json:"deposit"`
	OccupantCount int                     `json:"occupant_count"`
	CheckInDate   string                  `json:"check_in_date"`
	Status        constants.PaymentStatus `json:"rental_status"`
	StatusText    string                  `json:"rental_status_text"`
	Remarks       string                  `json:"remarks"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

func ToRentalInfoResponse(m model.RentalInfoModel) RentalInfoResponse {
	return RentalInfoResponse{
		ID:            m.ID,
		Floor:         m.Floor,
		RoomNumber:    m.RoomNumber,
		TenantName:    m.TenantName,
		Phone:         m.Phone,
		Deposit:       m.Deposit,
		OccupantCount: m.OccupantCount,
		CheckInDate:   helper.FormatDate(m.CheckInDate),
		Status:        m.Status,
		StatusText:    m.Status.Text(),
		Remarks:       m.Remarks,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToRentalInfoResponses(rows []model.RentalInfoModel) []RentalInfoResponse {
	out := make([]RentalInfoResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToRentalInfoResponse(r))
	}
	return out
}

// SearchQuery: q cocok ke room_number / tenant_name / phone; status all|paid|unpaid.
type SearchQuery struct {
	Q      string `query:"q"`
	Status string `query:"status"`
}

func (q *SearchQuery) Normalize() {
	q.Q = strings.TrimSpace(q.Q)
	q.Status = strings.ToLower(strings.TrimSpace(q.Status))
	if q.Status == "" {
		q.Status = "all"
	}
}

// PaymentFilter → 0 berarti tanpa filter status.
func (q SearchQuery) PaymentFilter() constants.PaymentStatus {
	switch q.Status {
	case "paid":
		return constants.PaymentPaid
	case "unpaid":
		return constants.PaymentUnpaid
	default:
		return 0
	}
}
