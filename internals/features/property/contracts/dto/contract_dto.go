package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/features/property/contracts/model"
	helper "rentbook_backend/internals/helpers"
)

////////////////////////////////////////////////////////////////////////////////
// CONTRACTS - DTO
////////////////////////////////////////////////////////////////////////////////

// ContractCreateRequest: form "kontrak baru". Nama field mengikuti form
// (sign_date, start_date, end_date, payment_cycle, include_utilities, notes).
type ContractCreateRequest struct {
	ContractNumber string `json:"contract_number" validate:"required,max=50"`
	RoomNumber     string `json:"room_number" validate:"max=20"`

	TenantName    string `json:"tenant_name" validate:"required,max=50"`
	TenantPhone   string `json:"tenant_phone" validate:"max=20"`
	TenantIDCard  string `json:"tenant_id_card" validate:"max=18"`
	LandlordName  string `json:"landlord_name" validate:"max=50"`
	LandlordPhone string `json:"landlord_phone" validate:"max=20"`

	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	Deposit     decimal.Decimal `json:"deposit"`

	SignDate  string `json:"sign_date"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	ContractDuration *int   `json:"contract_duration,omitempty"` // default 12
	PaymentCycle     string `json:"payment_cycle"`               // default 按月付款
	IncludeUtilities *int   `json:"include_utilities,omitempty"` // default 2

	WaterRate       decimal.Decimal `json:"water_rate"`
	ElectricityRate decimal.Decimal `json:"electricity_rate"`

	Notes string `json:"notes"`
}

func (r ContractCreateRequest) Amounts() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"monthly_rent":     r.MonthlyRent,
		"deposit":          r.Deposit,
		"water_rate":       r.WaterRate,
		"electricity_rate": r.ElectricityRate,
	}
}

// ContractUpdateRequest: overwrite penuh, nama field = kolom.
type ContractUpdateRequest struct {
	ContractNumber string `json:"contract_number" validate:"required,max=50"`
	RoomNumber     string `json:"room_number" validate:"max=20"`

	TenantName    string `json:"tenant_name" validate:"required,max=50"`
	TenantPhone   string `json:"tenant_phone" validate:"max=20"`
	TenantIDCard  string `json:"tenant_id_card" validate:"max=18"`
	LandlordName  string `json:"landlord_name" validate:"max=50"`
	LandlordPhone string `json:"landlord_phone" validate:"max=20"`

	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	Deposit     decimal.Decimal `json:"deposit"`

	ContractStartDate string `json:"contract_start_date"`
	ContractEndDate   string `json:"contract_end_date"`
	RentDueDate       string `json:"rent_due_date"`
	ContractDuration  int    `json:"contract_duration" validate:"gte=0"`
	PaymentMethod     string `json:"payment_method" validate:"max=20"`

	Status            int `json:"contract_status"`
	UtilitiesIncluded int `json:"utilities_included"`

	WaterRate       decimal.Decimal `json:"water_rate"`
	ElectricityRate decimal.Decimal `json:"electricity_rate"`

	ContractTerms    string `json:"contract_terms"`
	SpecialAgreement string `json:"special_agreement"`
	Remarks          string `json:"remarks"`
}

func (r ContractUpdateRequest) Amounts() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"monthly_rent":     r.MonthlyRent,
		"deposit":          r.Deposit,
		"water_rate":       r.WaterRate,
		"electricity_rate": r.ElectricityRate,
	}
}

type ContractResponse struct {
	ID             uint            `json:"id"`
	Floor          constants.Floor `json:"floor"`
	ContractNumber string          `json:"contract_number"`
	RoomNumber     string          `json:"room_number"`

	TenantName    string `json:"tenant_name"`
	TenantPhone   string `json:"tenant_phone"`
	TenantIDCard  string `json:"tenant_id_card"`
	LandlordName  string `json:"landlord_name"`
	LandlordPhone string `json:"landlord_phone"`

	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	Deposit     decimal.Decimal `json:"deposit"`

	ContractStartDate string `json:"contract_start_date"`
	ContractEndDate   string `json:"contract_end_date"`
	ContractDuration  int    `json:"contract_duration"`
	PaymentMethod     string `json:"payment_method"`
	RentDueDate       string `json:"rent_due_date"`

	Status                constants.ContractStatus    `json:"contract_status"`
	StatusText            string                      `json:"contract_status_text"`
	UtilitiesIncluded     constants.UtilitiesIncluded `json:"utilities_included"`
	UtilitiesIncludedText string                      `json:"utilities_included_text"`

	WaterRate       decimal.Decimal `json:"water_rate"`
	ElectricityRate decimal.Decimal `json:"electricity_rate"`

	ContractTerms    string `json:"contract_terms"`
	SpecialAgreement string `json:"special_agreement"`
	Remarks          string `json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToContractResponse(m model.ContractModel) ContractResponse {
	return ContractResponse{
		ID:                    m.ID,
		Floor:                 m.Floor,
		ContractNumber:        m.ContractNumber,
		RoomNumber:            m.RoomNumber,
		TenantName:            m.TenantName,
		TenantPhone:           m.TenantPhone,
		TenantIDCard:          m.TenantIDCard,
		LandlordName:          m.LandlordName,
		LandlordPhone:         m.LandlordPhone,
		MonthlyRent:           m.MonthlyRent,
		Deposit:               m.Deposit,
		ContractStartDate:     helper.FormatDate(m.ContractStartDate),
		ContractEndDate:       helper.FormatDate(m.ContractEndDate),
		ContractDuration:      m.ContractDuration,
		PaymentMethod:         m.PaymentMethod,
		RentDueDate:           helper.FormatDate(m.RentDueDate),
		Status:                m.Status,
		StatusText:            m.Status.Text(),
		UtilitiesIncluded:     m.UtilitiesIncluded,
		UtilitiesIncludedText: m.UtilitiesIncluded.Text(),
		WaterRate:             m.WaterRate,
		ElectricityRate:       m.ElectricityRate,
		ContractTerms:         m.ContractTerms,
		SpecialAgreement:      m.SpecialAgreement,
		Remarks:               m.Remarks,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func ToContractResponses(rows []model.ContractModel) []ContractResponse {
	out := make([]ContractResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToContractResponse(r))
	}
	return out
}

type ContractStats struct {
	Total    int `json:"total_contracts"`
	Active   int `json:"active_contracts"`
	Expiring int `json:"expiring_contracts"`
	Expired  int `json:"expired_contracts"`
}
