package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"rentbook_backend/internals/constants"
)

// RentalInfoModel = catatan penghuni aktif (move-in) per kamar.
// Satu kamar satu baris per lantai; dijaga oleh pre-check di service.
type RentalInfoModel struct {
	ID    uint            `gorm:"column:id;primaryKey" json:"id"`
	Floor constants.Floor `gorm:"column:floor;type:varchar(8);not null;index:ix_rental_infos_floor_room,priority:1" json:"floor"`

	RoomNumber    string          `gorm:"column:room_number;type:varchar(20);not null;index:ix_rental_infos_floor_room,priority:2" json:"room_number"`
	TenantName    string          `gorm:"column:tenant_name;type:varchar(50);not null" json:"tenant_name"`
	Phone         string          `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Deposit       decimal.Decimal `gorm:"column:deposit;type:numeric(10,2);not null;default:0" json:"deposit"`
	OccupantCount int             `gorm:"column:occupant_count;not null;default:1" json:"occupant_count"`
	CheckInDate   *datatypes.Date `gorm:"column:check_in_date" json:"check_in_date"`

	// 1=已缴费 2=未缴费
	Status  constants.PaymentStatus `gorm:"column:rental_status;not null;default:2" json:"rental_status"`
	Remarks string                  `gorm:"column:remarks;type:text" json:"remarks"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RentalInfoModel) TableName() string {
	return "rental_infos"
}
