package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"rentbook_backend/internals/constants"
)

// RentalRecordModel = kuitansi pembayaran. Append-only: tidak ada update/delete.
type RentalRecordModel struct {
	ID    uint            `gorm:"column:id;primaryKey" json:"id"`
	Floor constants.Floor `gorm:"column:floor;type:varchar(8);not null;index:ix_rental_records_floor_date,priority:1" json:"floor"`

	RoomNumber  string          `gorm:"column:room_number;type:varchar(20);not null" json:"room_number"`
	TenantName  string          `gorm:"column:tenant_name;type:varchar(50);not null" json:"tenant_name"`
	TotalRent   decimal.Decimal `gorm:"column:total_rent;type:numeric(10,2);not null" json:"total_rent"`
	PaymentDate datatypes.Date  `gorm:"column:payment_date;not null;index:ix_rental_records_floor_date,priority:2" json:"payment_date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RentalRecordModel) TableName() string {
	return "rental_records"
}
