package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/features/property/rooms/model"
	helper "rentbook_backend/internals/helpers"
)

type RoomRequest struct {
	RoomNumber string          `json:"room_number" validate:"required,max=20"`
	RoomType   string          `json:"room_type" validate:"max=50"`
	Deposit    decimal.Decimal `json:"deposit"`
	BaseRent   decimal.Decimal `json:"base_rent"`

	// create: default 1 (空闲); update: nil = tidak diubah
	Status *int `json:"room_status,omitempty"`

	WaterMeterNumber       string `json:"water_meter_number" validate:"max=50"`
	ElectricityMeterNumber string `json:"electricity_meter_number" validate:"max=50"`
}

func (r RoomRequest) Amounts() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"deposit":   r.Deposit,
		"base_rent": r.BaseRent,
	}
}

type RoomResponse struct {
	ID         uint                 `json:"id"`
	Floor      constants.Floor      `json:"floor"`
	RoomNumber string               `json:"room_number"`
	RoomType   string               `json:"room_type"`
	Deposit    decimal.Decimal      `json:"deposit"`
	BaseRent   decimal.Decimal      `json:"base_rent"`
	Status     constants.RoomStatus `json:"room_status"`
	StatusText string               `json:"status_text"`

	WaterMeterNumber       string `json:"water_meter_number"`
	ElectricityMeterNumber string `json:"electricity_meter_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToRoomResponse(m model.RoomModel) RoomResponse {
	return RoomResponse{
		ID:                     m.ID,
		Floor:                  m.Floor,
		RoomNumber:             m.RoomNumber,
		RoomType:               m.RoomType,
		Deposit:                m.Deposit,
		BaseRent:               m.BaseRent,
		Status:                 m.Status,
		StatusText:             m.Status.Text(),
		WaterMeterNumber:       m.WaterMeterNumber,
		ElectricityMeterNumber: m.ElectricityMeterNumber,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

func ToRoomResponses(rows []model.RoomModel) []RoomResponse {
	out := make([]RoomResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToRoomResponse(r))
	}
	return out
}

type RoomListQuery struct {
	Status int `query:"status"`
}

// RoomStats: jumlah kamar per status.
type RoomStats struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"available"`
	Occupied    int64 `json:"occupied"`
	Maintenance int64 `json:"maintenance"`
	Disabled    int64 `json:"disabled"`
}

// RentedRoomRow hasil join rooms × rental_infos (status 已出租).
type RentedRoomRow struct {
	ID            uint            `gorm:"column:id"`
	RoomNumber    string          `gorm:"column:room_number"`
	RoomType      string          `gorm:"column:room_type"`
	BaseRent      decimal.Decimal `gorm:"column:base_rent"`
	Deposit       decimal.Decimal `gorm:"column:deposit"`
	TenantName    string          `gorm:"column:tenant_name"`
	TenantPhone   string          `gorm:"column:tenant_phone"`
	RentalDeposit decimal.Decimal `gorm:"column:rental_deposit"`
	CheckInDate   *datatypes.Date `gorm:"column:check_in_date"`
}

type RentedRoomResponse struct {
	ID            uint            `json:"id"`
	RoomNumber    string          `json:"room_number"`
	RoomType      string          `json:"room_type"`
	BaseRent      decimal.Decimal `json:"base_rent"`
	Deposit       decimal.Decimal `json:"deposit"`
	TenantName    string          `json:"tenant_name"`
	TenantPhone   string          `json:"tenant_phone"`
	RentalDeposit decimal.Decimal `json:"rental_deposit"`
	CheckInDate   string          `json:"check_in_date"`
}

func ToRentedRoomResponses(rows []RentedRoomRow) []RentedRoomResponse {
	out := make([]RentedRoomResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, RentedRoomResponse{
			ID:            r.ID,
			RoomNumber:    r.RoomNumber,
			RoomType:      r.RoomType,
			BaseRent:      r.BaseRent,
			Deposit:       r.Deposit,
			TenantName:    r.TenantName,
			TenantPhone:   r.TenantPhone,
			RentalDeposit: r.RentalDeposit,
			CheckInDate:   helper.FormatDate(r.CheckInDate),
		})
	}
	return out
}
