package model

import (
	"time"

	"rentbook_backend/internals/constants"
)

// ContactModel adalah buku alamat penyewa; tidak mengikat status kamar.
type ContactModel struct {
	ID    uint            `gorm:"column:id;primaryKey" json:"id"`
	Floor constants.Floor `gorm:"column:floor;type:varchar(8);not null;index:ix_contacts_floor_phone,priority:1" json:"floor"`

	Name   string `gorm:"column:name;type:varchar(50);not null" json:"name"`
	RoomID string `gorm:"column:room_id;type:varchar(20)" json:"room_id"` // nomor kamar (teks bebas)
	Phone  string `gorm:"column:phone;type:varchar(20);not null;index:ix_contacts_floor_phone,priority:2" json:"phone"`
	IDCard string `gorm:"column:id_card;type:varchar(18)" json:"id_card"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ContactModel) TableName() string {
	return "contacts"
}
