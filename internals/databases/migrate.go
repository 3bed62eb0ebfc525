package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	contactModel "rentbook_backend/internals/features/property/contacts/model"
	contractModel "rentbook_backend/internals/features/property/contracts/model"
	rentalInfoModel "rentbook_backend/internals/features/property/rental_infos/model"
	recordModel "rentbook_backend/internals/features/property/rental_records/model"
	rentalModel "rentbook_backend/internals/features/property/rentals/model"
	roomModel "rentbook_backend/internals/features/property/rooms/model"
	authModel "rentbook_backend/internals/features/users/auth/model"
)

// Models: semua tabel yang dikelola AutoMigrate.
func Models() []any {
	return []any{
		&roomModel.RoomModel{},
		&contactModel.ContactModel{},
		&rentalInfoModel.RentalInfoModel{},
		&rentalModel.RentalModel{},
		&recordModel.RentalRecordModel{},
		&contractModel.ContractModel{},
		&authModel.AdminModel{},
		&authModel.TokenBlacklist{},
	}
}

func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
