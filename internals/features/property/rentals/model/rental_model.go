package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"rentbook_backend/internals/constants"
)

// RentalModel = satu siklus tagihan kamar.
// total_due selalu dihitung ulang oleh service: monthly_rent + utilities_fee.
type RentalModel struct {
	ID    uint            `gorm:"column:id;primaryKey" json:"id"`
	Floor constants.Floor `gorm:"column:floor;type:varchar(8);not null;index:ix_rentals_floor_room,priority:1;index:ix_rentals_floor_status,priority:1" json:"floor"`

	RoomNumber string          `gorm:"column:room_number;type:varchar(20);not null;index:ix_rentals_floor_room,priority:2" json:"room_number"`
	TenantName string          `gorm:"column:tenant_name;type:varchar(50);not null" json:"tenant_name"`
	Deposit    decimal.Decimal `gorm:"column:deposit;type:numeric(10,2);not null;default:0" json:"deposit"`

	MonthlyRent      decimal.Decimal `gorm:"column:monthly_rent;type:numeric(10,2);not null;default:0" json:"monthly_rent"`
	WaterFee         decimal.Decimal `gorm:"column:water_fee;type:numeric(10,2);not null;default:0" json:"water_fee"`
	ElectricityFee   decimal.Decimal `gorm:"column:electricity_fee;type:numeric(10,2);not null;default:0" json:"electricity_fee"`
	WaterUsage       decimal.Decimal `gorm:"column:water_usage;type:numeric(10,2);not null;default:0" json:"water_usage"`
	ElectricityUsage decimal.Decimal `gorm:"column:electricity_usage;type:numeric(10,2);not null;default:0" json:"electricity_usage"`
	UtilitiesFee     decimal.Decimal `gorm:"column:utilities_fee;type:numeric(10,2);not null;default:0" json:"utilities_fee"`
	TotalDue         decimal.Decimal `gorm:"column:total_due;type:numeric(10,2);not null;default:0" json:"total_due"`

	// 1=已缴费 2=未缴费
	PaymentStatus constants.PaymentStatus `gorm:"column:payment_status;not null;default:2;index:ix_rentals_floor_status,priority:2" json:"payment_status"`

	CheckInDate       *datatypes.Date `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate      *datatypes.Date `gorm:"column:check_out_date" json:"check_out_date"`
	ContractStartDate *datatypes.Date `gorm:"column:contract_start_date" json:"contract_start_date"`
	ContractEndDate   *datatypes.Date `gorm:"column:contract_end_date" json:"contract_end_date"`

	Remarks string `gorm:"column:remarks;type:text" json:"remarks"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RentalModel) TableName() string {
	return "rentals"
}
