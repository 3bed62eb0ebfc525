// file: internals/features/property/reports/service/dashboard_service.go
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rentbook_backend/internals/constants"
	contactModel "rentbook_backend/internals/features/property/contacts/model"
	contractService "rentbook_backend/internals/features/property/contracts/service"
	recordModel "rentbook_backend/internals/features/property/rental_records/model"
	rentalModel "rentbook_backend/internals/features/property/rentals/model"
	"rentbook_backend/internals/features/property/reports/dto"
	roomModel "rentbook_backend/internals/features/property/rooms/model"
	roomService "rentbook_backend/internals/features/property/rooms/service"
	helper "rentbook_backend/internals/helpers"
	"rentbook_backend/internals/helpers/dbtime"
)

const (
	maintenanceCandidates = 3
	maintenanceWindowDays = 7
)

// DashboardService: agregat read-only, dihitung ulang setiap request.
type DashboardService struct {
	DB        *gorm.DB
	Clock     dbtime.Clock
	Rooms     *roomService.RoomService
	Contracts *contractService.ContractService
}

func NewDashboardService(db *gorm.DB, clock dbtime.Clock) *DashboardService {
	return &DashboardService{
		DB:        db,
		Clock:     clock,
		Rooms:     roomService.NewRoomService(db),
		Contracts: contractService.NewContractService(db, clock),
	}
}

func count(db *gorm.DB, m any, floor constants.Floor) (int64, error) {
	var n int64
	err := db.Model(m).Where("floor = ?", floor).Count(&n).Error
	return n, err
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return helper.Money(total)
}

func (s *DashboardService) counts(db *gorm.DB, floor constants.Floor) (dto.Counts, error) {
	var out dto.Counts
	var err error
	if out.TotalContacts, err = count(db, &contactModel.ContactModel{}, floor); err != nil {
		return out, err
	}
	if out.TotalRentals, err = count(db, &rentalModel.RentalModel{}, floor); err != nil {
		return out, err
	}
	if out.TotalRecords, err = count(db, &recordModel.RentalRecordModel{}, floor); err != nil {
		return out, err
	}
	return out, nil
}

func (s *DashboardService) unpaid(db *gorm.DB, floor constants.Floor) ([]dto.UnpaidRental, error) {
	var rows []rentalModel.RentalModel
	err := db.Select("id", "room_number", "tenant_name", "total_due").
		Where("floor = ? AND payment_status = ?", floor, constants.PaymentUnpaid).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnpaidRental, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.UnpaidRental{RoomNumber: r.RoomNumber, TenantName: r.TenantName, TotalDue: r.TotalDue})
	}
	return out, nil
}

// monthlyIncome: jumlah kuitansi dengan payment_date di bulan kalender berjalan.
func (s *DashboardService) monthlyIncome(db *gorm.DB, floor constants.Floor) (decimal.Decimal, error) {
	now := s.Clock.Now()
	start, end := helper.MonthRange(now.Year(), now.Month(), time.UTC)

	var amounts []decimal.Decimal
	err := db.Model(&recordModel.RentalRecordModel{}).
		Where("floor = ? AND payment_date >= ? AND payment_date < ?", floor, start, end).
		Pluck("total_rent", &amounts).Error
	if err != nil {
		return decimal.Zero, err
	}
	return sum(amounts), nil
}

// utilitiesIncome: utilities_fee dari semua Rental yang saat ini lunas (tanpa filter bulan).
func (s *DashboardService) utilitiesIncome(db *gorm.DB, floor constants.Floor) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	err := db.Model(&rentalModel.RentalModel{}).
		Where("floor = ? AND payment_status = ?", floor, constants.PaymentPaid).
		Pluck("utilities_fee", &amounts).Error
	if err != nil {
		return decimal.Zero, err
	}
	return sum(amounts), nil
}

// maintenance: maksimal 3 kandidat (空闲/已出租), disaring updated_at >= today-7.
func (s *DashboardService) maintenance(db *gorm.DB, floor constants.Floor) ([]dto.MaintenanceReminder, error) {
	var rooms []roomModel.RoomModel
	err := db.Where("floor = ? AND room_status IN ?", floor, []constants.RoomStatus{constants.RoomVacant, constants.RoomOccupied}).
		Order("id ASC").
		Limit(maintenanceCandidates).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	loc := dbtime.Location(s.Clock)
	since := time.Time(dbtime.Today(s.Clock)).AddDate(0, 0, -maintenanceWindowDays)
	out := make([]dto.MaintenanceReminder, 0, len(rooms))
	for _, r := range rooms {
		if r.UpdatedAt.IsZero() || time.Time(helper.DateOf(r.UpdatedAt.In(loc))).Before(since) {
			continue
		}
		text := "维修完成"
		if r.Status == constants.RoomOccupied {
			text = "维修完成并已出租"
		}
		out = append(out, dto.MaintenanceReminder{RoomNumber: r.RoomNumber, StatusText: text, UpdatedAt: r.UpdatedAt})
	}
	return out, nil
}

// Dashboard merangkum satu lantai.
func (s *DashboardService) Dashboard(ctx context.Context, floor constants.Floor) (*dto.Dashboard, error) {
	db := s.DB.WithContext(ctx)

	counts, err := s.counts(db, floor)
	if err != nil {
		return nil, helper.Storage("查询失败", err)
	}
	rooms, err := s.Rooms.Stats(ctx, floor)
	if err != nil {
		return nil, err
	}
	counts.TotalRooms = rooms.Total
	counts.RentedRooms = rooms.Occupied
	counts.VacantRooms = rooms.Available
	counts.MaintenanceRooms = rooms.Maintenance
	counts.DisabledRooms = rooms.Disabled

	unpaid, err := s.unpaid(db, floor)
	if err != nil {
		return nil, helper.Storage("查询失败", err)
	}
	monthly, err := s.monthlyIncome(db, floor)
	if err != nil {
		return nil, helper.Storage("查询失败", err)
	}
	utilities, err := s.utilitiesIncome(db, floor)
	if err != nil {
		return nil, helper.Storage("查询失败", err)
	}
	expiring, err := s.Contracts.Expiring(ctx, floor)
	if err != nil {
		return nil, err
	}
	reminders, err := s.maintenance(db, floor)
	if err != nil {
		return nil, helper.Storage("查询失败", err)
	}

	return &dto.Dashboard{
		Floor:           floor,
		FloorLabel:      floor.Policy().Label,
		Counts:          counts,
		UnpaidRooms:     len(unpaid),
		UnpaidRentals:   unpaid,
		MonthlyIncome:   monthly,
		UtilitiesIncome: utilities,
		TodoItems: dto.TodoItems{
			ExpiringContracts:    expiring,
			UnpaidRentals:        unpaid,
			MaintenanceReminders: reminders,
		},
		GeneratedAt: s.Clock.Now(),
	}, nil
}

// Overview: dashboard semua lantai, urutan AllFloors.
func (s *DashboardService) Overview(ctx context.Context) ([]dto.Dashboard, error) {
	out := make([]dto.Dashboard, 0, len(constants.AllFloors))
	for _, f := range constants.AllFloors {
		d, err := s.Dashboard(ctx, f)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

