package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/features/property/rentals/model"
	helper "rentbook_backend/internals/helpers"
)

////////////////////////////////////////////////////////////////////////////////
// RENTALS - DTO
////////////////////////////////////////////////////////////////////////////////

// RentalRequest dipakai untuk create dan update (update = overwrite penuh).
// Tanggal format YYYY-MM-DD; string kosong = tidak diisi.
type RentalRequest struct {
	RoomNumber string          `json:"room_number" validate:"required,max=20"`
	TenantName string          `json:"tenant_name" validate:"required,max=50"`
	Deposit    decimal.Decimal `json:"deposit"`

	MonthlyRent    decimal.Decimal `json:"monthly_rent"`
	WaterFee       decimal.Decimal `json:"water_fee"`
	ElectricityFee decimal.Decimal `json:"electricity_fee"`
	UtilitiesFee   decimal.Decimal `json:"utilities_fee"` // diisi pemanggil, tidak diturunkan dari water+electricity

	// hanya dibaca saat create; default 2 (未缴费)
	PaymentStatus *int `json:"payment_status,omitempty"`

	CheckInDate       string `json:"check_in_date"`
	CheckOutDate      string `json:"check_out_date"`
	ContractStartDate string `json:"contract_start_date"`
	ContractEndDate   string `json:"contract_end_date"`

	Remarks string `json:"remarks"`
}

// Amounts untuk validasi nominal negatif.
func (r RentalRequest) Amounts() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"deposit":         r.Deposit,
		"monthly_rent":    r.MonthlyRent,
		"water_fee":       r.WaterFee,
		"electricity_fee": r.ElectricityFee,
		"utilities_fee":   r.UtilitiesFee,
	}
}

type RentalResponse struct {
	ID         uint            `json:"id"`
	Floor      constants.Floor `json:"floor"`
	RoomNumber string          `json:"room_number"`
	TenantName string          `json:"tenant_name"`
	Deposit    decimal.Decimal `json:"deposit"`

	MonthlyRent      decimal.Decimal `json:"monthly_rent"`
	WaterFee         decimal.Decimal `json:"water_fee"`
	ElectricityFee   decimal.Decimal `json:"electricity_fee"`
	WaterUsage       decimal.Decimal `json:"water_usage"`
	ElectricityUsage decimal.Decimal `json:"electricity_usage"`
	UtilitiesFee     decimal.Decimal `json:"utilities_fee"`
	TotalDue         decimal.Decimal `json:"total_due"`

	PaymentStatus     constants.PaymentStatus `json:"payment_status"`
	PaymentStatusText string                  `json:"payment_status_text"`

	CheckInDate       string `json:"check_in_date"`
	CheckOutDate      string `json:"check_out_date"`
	ContractStartDate string `json:"contract_start_date"`
	ContractEndDate   string `json:"contract_end_date"`

	Remarks   string    `json:"remarks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToRentalResponse(m model.RentalModel) RentalResponse {
	return RentalResponse{
		ID:                m.ID,
		Floor:             m.Floor,
		RoomNumber:        m.RoomNumber,
		TenantName:        m.TenantName,
		Deposit:           m.Deposit,
		MonthlyRent:       m.MonthlyRent,
		WaterFee:          m.WaterFee,
		ElectricityFee:    m.ElectricityFee,
		WaterUsage:        m.WaterUsage,
		ElectricityUsage:  m.ElectricityUsage,
		UtilitiesFee:      m.UtilitiesFee,
		TotalDue:          m.TotalDue,
		PaymentStatus:     m.PaymentStatus,
		PaymentStatusText: m.PaymentStatus.Text(),
		CheckInDate:       helper.FormatDate(m.CheckInDate),
		CheckOutDate:      helper.FormatDate(m.CheckOutDate),
		ContractStartDate: helper.FormatDate(m.ContractStartDate),
		ContractEndDate:   helper.FormatDate(m.ContractEndDate),
		Remarks:           m.Remarks,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ToRentalResponses(rows []model.RentalModel) []RentalResponse {
	out := make([]RentalResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToRentalResponse(r))
	}
	return out
}

// Query list: year & month harus diisi bersamaan.
type RentalListQuery struct {
	Year  int `query:"year"`
	Month int `query:"month"`
}

func (q RentalListQuery) HasMonth() bool {
	return q.Year > 0 && q.Month >= 1 && q.Month <= 12
}
