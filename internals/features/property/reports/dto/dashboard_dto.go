package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"rentbook_backend/internals/constants"
	contractService "rentbook_backend/internals/features/property/contracts/service"
)

type Counts struct {
	TotalContacts    int64 `json:"total_contacts"`
	TotalRentals     int64 `json:"total_rentals"`
	TotalRecords     int64 `json:"total_records"`
	TotalRooms       int64 `json:"total_rooms"`
	RentedRooms      int64 `json:"rented_rooms"`
	VacantRooms      int64 `json:"vacant_rooms"`
	MaintenanceRooms int64 `json:"maintenance_rooms"`
	DisabledRooms    int64 `json:"disabled_rooms"`
}

type UnpaidRental struct {
	RoomNumber string          `json:"room_number"`
	TenantName string          `json:"tenant_name"`
	TotalDue   decimal.Decimal `json:"total_due"`
}

type MaintenanceReminder struct {
	RoomNumber string    `json:"room_number"`
	StatusText string    `json:"status_text"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type TodoItems struct {
	ExpiringContracts    []contractService.ExpiringContract `json:"expiring_contracts"`
	UnpaidRentals        []UnpaidRental                     `json:"unpaid_rentals"`
	MaintenanceReminders []MaintenanceReminder              `json:"maintenance_reminders"`
}

type Dashboard struct {
	Floor      constants.Floor `json:"floor"`
	FloorLabel string          `json:"floor_label"`
	Counts

	UnpaidRooms     int             `json:"unpaid_rooms"`
	UnpaidRentals   []UnpaidRental  `json:"unpaid_rentals"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	UtilitiesIncome decimal.Decimal `json:"utilities_income"`
	TodoItems       TodoItems       `json:"todo_items"`
	GeneratedAt     time.Time       `json:"generated_at"`
}
