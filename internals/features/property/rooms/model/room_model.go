package model

import (
	"time"

	"github.com/shopspring/decimal"

	"rentbook_backend/internals/constants"
)

type RoomModel struct {
	ID    uint            `gorm:"column:id;primaryKey" json:"id"`
	Floor constants.Floor `gorm:"column:floor;type:varchar(8);not null;uniqueIndex:uq_rooms_floor_number,priority:1" json:"floor"`

	RoomNumber string          `gorm:"column:room_number;type:varchar(20);not null;uniqueIndex:uq_rooms_floor_number,priority:2" json:"room_number"`
	RoomType   string          `gorm:"column:room_type;type:varchar(50)" json:"room_type"`
	Deposit    decimal.Decimal `gorm:"column:deposit;type:numeric(10,2);not null;default:0" json:"deposit"`
	BaseRent   decimal.Decimal `gorm:"column:base_rent;type:numeric(10,2);not null;default:0" json:"base_rent"`

	// 1=空闲 2=已出租 3=维修中 4=停用
	Status constants.RoomStatus `gorm:"column:room_status;not null;default:1;index:ix_rooms_floor_status" json:"room_status"`

	WaterMeterNumber       string `gorm:"column:water_meter_number;type:varchar(50)" json:"water_meter_number"`
	ElectricityMeterNumber string `gorm:"column:electricity_meter_number;type:varchar(50)" json:"electricity_meter_number"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RoomModel) TableName() string {
	return "rooms"
}
