package model

import "time"

type AdminModel struct {
	ID           uint       `gorm:"column:id;primaryKey" json:"id"`
	AdminName    string     `gorm:"column:admin_name;type:varchar(50);not null;uniqueIndex" json:"admin_name"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}
