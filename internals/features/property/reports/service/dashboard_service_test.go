package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/databases/dbtest"
	contactModel "rentbook_backend/internals/features/property/contacts/model"
	contractDto "rentbook_backend/internals/features/property/contracts/dto"
	recordModel "rentbook_backend/internals/features/property/rental_records/model"
	rentalModel "rentbook_backend/internals/features/property/rentals/model"
	roomModel "rentbook_backend/internals/features/property/rooms/model"
	helper "rentbook_backend/internals/helpers"
	"rentbook_backend/internals/helpers/dbtime"
)

var now = time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	old, nw := constants.FloorOld, constants.FloorNew

	rooms := []roomModel.RoomModel{
		{Floor: old, RoomNumber: "501", Status: constants.RoomVacant, UpdatedAt: day(2024, 3, 10)},
		{Floor: old, RoomNumber: "502", Status: constants.RoomOccupied, UpdatedAt: day(2024, 3, 1)},
		{Floor: old, RoomNumber: "503", Status: constants.RoomOccupied, UpdatedAt: day(2024, 3, 14)},
		{Floor: old, RoomNumber: "504", Status: constants.RoomVacant, UpdatedAt: day(2024, 3, 15)},
		{Floor: old, RoomNumber: "505", Status: constants.RoomUnderMaintenance, UpdatedAt: day(2024, 3, 15)},
		{Floor: old, RoomNumber: "506", Status: constants.RoomDisabled, UpdatedAt: day(2024, 3, 15)},
		{Floor: nw, RoomNumber: "601", Status: constants.RoomVacant, UpdatedAt: day(2024, 3, 15)},
	}
	require.NoError(t, db.Create(&rooms).Error)

	rentals := []rentalModel.RentalModel{
		{Floor: old, RoomNumber: "501", TenantName: "张三", TotalDue: dec("1100"), UtilitiesFee: dec("100"), PaymentStatus: constants.PaymentUnpaid},
		{Floor: old, RoomNumber: "503", TenantName: "李四", TotalDue: dec("1250.25"), UtilitiesFee: dec("50.25"), PaymentStatus: constants.PaymentPaid},
		{Floor: nw, RoomNumber: "601", TenantName: "王五", TotalDue: dec("2000"), UtilitiesFee: dec("999"), PaymentStatus: constants.PaymentPaid},
	}
	require.NoError(t, db.Create(&rentals).Error)

	records := []recordModel.RentalRecordModel{
		{Floor: old, RoomNumber: "503", TenantName: "李四", TotalRent: dec("1000"), PaymentDate: helper.DateOf(day(2024, 3, 1))},
		{Floor: old, RoomNumber: "503", TenantName: "李四", TotalRent: dec("500.50"), PaymentDate: helper.DateOf(day(2024, 3, 15))},
		{Floor: old, RoomNumber: "503", TenantName: "李四", TotalRent: dec("700"), PaymentDate: helper.DateOf(day(2024, 2, 29))},
		{Floor: nw, RoomNumber: "601", TenantName: "王五", TotalRent: dec("300"), PaymentDate: helper.DateOf(day(2024, 3, 5))},
	}
	require.NoError(t, db.Create(&records).Error)

	contacts := []contactModel.ContactModel{
		{Floor: old, Name: "张三", Phone: "13800000001"},
		{Floor: old, Name: "李四", Phone: "13800000002"},
	}
	require.NoError(t, db.Create(&contacts).Error)
}

func TestDashboardAggregates(t *testing.T) {
	clock := dbtime.FixedClock{At: now}
	db := dbtest.New(t, clock)
	seed(t, db)
	svc := NewDashboardService(db, clock)
	ctx := context.Background()

	_, err := svc.Contracts.Create(ctx, constants.FloorOld, contractDto.ContractCreateRequest{
		ContractNumber: "HT-001", RoomNumber: "503", TenantName: "李四", EndDate: "2024-04-01",
	})
	require.NoError(t, err)

	d, err := svc.Dashboard(ctx, constants.FloorOld)
	require.NoError(t, err)

	assert.Equal(t, "五楼", d.FloorLabel)
	assert.EqualValues(t, 2, d.TotalContacts)
	assert.EqualValues(t, 2, d.TotalRentals)
	assert.EqualValues(t, 3, d.TotalRecords)
	assert.EqualValues(t, 6, d.TotalRooms)
	assert.EqualValues(t, 2, d.RentedRooms)
	assert.EqualValues(t, 2, d.VacantRooms)
	assert.EqualValues(t, 1, d.MaintenanceRooms)
	assert.EqualValues(t, 1, d.DisabledRooms)

	require.Len(t, d.UnpaidRentals, 1)
	assert.Equal(t, 1, d.UnpaidRooms)
	assert.Equal(t, "501", d.UnpaidRentals[0].RoomNumber)
	assert.True(t, d.UnpaidRentals[0].TotalDue.Equal(dec("1100")))

	assert.True(t, d.MonthlyIncome.Equal(dec("1500.50")), d.MonthlyIncome.String())
	assert.True(t, d.UtilitiesIncome.Equal(dec("50.25")), d.UtilitiesIncome.String())

	require.Len(t, d.TodoItems.ExpiringContracts, 1)
	assert.Equal(t, 17, d.TodoItems.ExpiringContracts[0].DaysLeft)

	// kandidat: 501, 502, 503 (limit 3); 502 terlalu lama
	require.Len(t, d.TodoItems.MaintenanceReminders, 2)
	assert.Equal(t, "501", d.TodoItems.MaintenanceReminders[0].RoomNumber)
	assert.Equal(t, "维修完成", d.TodoItems.MaintenanceReminders[0].StatusText)
	assert.Equal(t, "503", d.TodoItems.MaintenanceReminders[1].RoomNumber)
	assert.Equal(t, "维修完成并已出租", d.TodoItems.MaintenanceReminders[1].StatusText)
}

func TestOverviewCoversBothFloors(t *testing.T) {
	clock := dbtime.FixedClock{At: now}
	db := dbtest.New(t, clock)
	seed(t, db)
	svc := NewDashboardService(db, clock)

	floors, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Len(t, floors, 2)
	assert.Equal(t, constants.FloorOld, floors[0].Floor)
	assert.Equal(t, constants.FloorNew, floors[1].Floor)
	assert.Equal(t, "六楼", floors[1].FloorLabel)
	assert.True(t, floors[1].MonthlyIncome.Equal(dec("300")))
	assert.True(t, floors[1].UtilitiesIncome.Equal(dec("999")))
	assert.Empty(t, floors[1].UnpaidRentals)
}

func TestDashboardEmptyFloor(t *testing.T) {
	clock := dbtime.FixedClock{At: now}
	svc := NewDashboardService(dbtest.New(t, clock), clock)

	d, err := svc.Dashboard(context.Background(), constants.FloorNew)
	require.NoError(t, err)
	assert.Zero(t, d.TotalRooms)
	assert.True(t, d.MonthlyIncome.IsZero())
	assert.NotNil(t, d.TodoItems.ExpiringContracts)
	assert.NotNil(t, d.TodoItems.MaintenanceReminders)
}
