package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"rentbook_backend/internals/constants"
)

type ContractModel struct {
	ID    uint            `gorm:"column:id;primaryKey" json:"id"`
	Floor constants.Floor `gorm:"column:floor;type:varchar(8);not null;uniqueIndex:uq_contracts_floor_number,priority:1" json:"floor"`

	ContractNumber string `gorm:"column:contract_number;type:varchar(50);not null;uniqueIndex:uq_contracts_floor_number,priority:2" json:"contract_number"`
	RoomNumber     string `gorm:"column:room_number;type:varchar(20)" json:"room_number"`

	// Pihak
	TenantName    string `gorm:"column:tenant_name;type:varchar(50);not null" json:"tenant_name"`
	TenantPhone   string `gorm:"column:tenant_phone;type:varchar(20)" json:"tenant_phone"`
	TenantIDCard  string `gorm:"column:tenant_id_card;type:varchar(18)" json:"tenant_id_card"`
	LandlordName  string `gorm:"column:landlord_name;type:varchar(50)" json:"landlord_name"`
	LandlordPhone string `gorm:"column:landlord_phone;type:varchar(20)" json:"landlord_phone"`

	// Biaya
	MonthlyRent decimal.Decimal `gorm:"column:monthly_rent;type:numeric(10,2);not null;default:0" json:"monthly_rent"`
	Deposit     decimal.Decimal `gorm:"column:deposit;type:numeric(10,2);not null;default:0" json:"deposit"`

	// Periode
	ContractStartDate *datatypes.Date `gorm:"column:contract_start_date" json:"contract_start_date"`
	ContractEndDate   *datatypes.Date `gorm:"column:contract_end_date;index" json:"contract_end_date"`
	ContractDuration  int             `gorm:"column:contract_duration;not null;default:12" json:"contract_duration"` // bulan
	PaymentMethod     string          `gorm:"column:payment_method;type:varchar(20)" json:"payment_method"`
	RentDueDate       *datatypes.Date `gorm:"column:rent_due_date" json:"rent_due_date"`

	// 1=有效 2=失效
	Status            constants.ContractStatus    `gorm:"column:contract_status;not null;default:1" json:"contract_status"`
	UtilitiesIncluded constants.UtilitiesIncluded `gorm:"column:utilities_included;not null;default:2" json:"utilities_included"`

	// Tarif per kontrak: disimpan & dicetak, tidak dipakai untuk menghitung pemakaian.
	WaterRate       decimal.Decimal `gorm:"column:water_rate;type:numeric(10,2);not null;default:0" json:"water_rate"`
	ElectricityRate decimal.Decimal `gorm:"column:electricity_rate;type:numeric(10,2);not null;default:0" json:"electricity_rate"`

	ContractTerms    string `gorm:"column:contract_terms;type:text" json:"contract_terms"`
	SpecialAgreement string `gorm:"column:special_agreement;type:text" json:"special_agreement"`
	Remarks          string `gorm:"column:remarks;type:text" json:"remarks"`

	// created_at = tanggal tanda tangan
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ContractModel) TableName() string {
	return "contracts"
}
