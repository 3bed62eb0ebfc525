package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/databases/dbtest"
	rentalInfoModel "rentbook_backend/internals/features/property/rental_infos/model"
	recordModel "rentbook_backend/internals/features/property/rental_records/model"
	"rentbook_backend/internals/features/property/rentals/dto"
	"rentbook_backend/internals/features/property/rentals/model"
	helper "rentbook_backend/internals/helpers"
	"rentbook_backend/internals/helpers/dbtime"
)

var testNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func newService(t *testing.T) (*BillingService, *gorm.DB) {
	t.Helper()
	clock := dbtime.FixedClock{At: testNow}
	db := dbtest.New(t, clock)
	return NewBillingService(db, DefaultRates(), clock), db
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleRequest(room string) dto.RentalRequest {
	return dto.RentalRequest{
		RoomNumber:     room,
		TenantName:     "张三",
		Deposit:        dec("1000"),
		MonthlyRent:    dec("1000"),
		WaterFee:       dec("35"),
		ElectricityFee: dec("12"),
		UtilitiesFee:   dec("47"),
		CheckInDate:    "2024-03-01",
	}
}

func TestUsage(t *testing.T) {
	assert.True(t, Usage(dec("35"), dec("3.5")).Equal(dec("10")))
	assert.True(t, Usage(dec("12"), dec("1.2")).Equal(dec("10")))
	assert.True(t, Usage(dec("10"), dec("3")).Equal(dec("3.33")))
	assert.True(t, Usage(decimal.Zero, dec("3.5")).IsZero())
	assert.True(t, Usage(dec("5"), decimal.Zero).IsZero())
}

func TestCreateDerivesUsageAndTotal(t *testing.T) {
	svc, _ := newService(t)

	row, err := svc.Create(context.Background(), constants.FloorOld, sampleRequest("501"))
	require.NoError(t, err)

	assert.True(t, row.WaterUsage.Equal(dec("10")), row.WaterUsage.String())
	assert.True(t, row.ElectricityUsage.Equal(dec("10")), row.ElectricityUsage.String())
	assert.True(t, row.TotalDue.Equal(dec("1047")), row.TotalDue.String())
	assert.Equal(t, constants.PaymentUnpaid, row.PaymentStatus)
	assert.Equal(t, "2024-03-01", helper.FormatDate(row.CheckInDate))
	assert.Nil(t, row.CheckOutDate)
}

func TestCreateRejectsDuplicateRoomPerFloor(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, constants.FloorOld, sampleRequest("501"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, constants.FloorOld, sampleRequest("501"))
	require.ErrorIs(t, err, ErrDuplicateBilling)

	// lantai lain punya namespace sendiri
	_, err = svc.Create(ctx, constants.FloorNew, sampleRequest("501"))
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&model.RentalModel{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	in := sampleRequest("")
	_, err := svc.Create(ctx, constants.FloorOld, in)
	assert.True(t, helper.IsKind(err, helper.KindValidation))

	in = sampleRequest("502")
	in.MonthlyRent = dec("-1")
	_, err = svc.Create(ctx, constants.FloorOld, in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "金额不能为负数")

	in = sampleRequest("502")
	in.ContractEndDate = "2024/12/01"
	_, err = svc.Create(ctx, constants.FloorOld, in)
	require.ErrorIs(t, err, helper.Validation(helper.CodeInvalidDateFormat, ""))

	bad := 3
	in = sampleRequest("502")
	in.PaymentStatus = &bad
	_, err = svc.Create(ctx, constants.FloorOld, in)
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateKeepsPaymentStatusAndChecksRoom(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, constants.FloorNew, sampleRequest("601"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, constants.FloorNew, sampleRequest("602"))
	require.NoError(t, err)

	in := sampleRequest("602")
	_, err = svc.Update(ctx, constants.FloorNew, a.ID, in)
	require.ErrorIs(t, err, ErrDuplicateBilling)
	assert.Contains(t, err.Error(), "该房号已有其他租房管理")

	paid := int(constants.PaymentPaid)
	in = sampleRequest("601")
	in.PaymentStatus = &paid
	in.MonthlyRent = dec("1200")
	in.UtilitiesFee = dec("0")
	out, err := svc.Update(ctx, constants.FloorNew, a.ID, in)
	require.NoError(t, err)
	assert.True(t, out.TotalDue.Equal(dec("1200")))
	assert.Equal(t, constants.PaymentUnpaid, out.PaymentStatus)

	_, err = svc.Update(ctx, constants.FloorOld, a.ID, in)
	require.ErrorIs(t, err, ErrRentalNotFound)
}

func seedOccupancy(t *testing.T, db *gorm.DB, floor constants.Floor, room string) {
	t.Helper()
	require.NoError(t, db.Create(&rentalInfoModel.RentalInfoModel{
		Floor:         floor,
		RoomNumber:    room,
		TenantName:    "张三",
		OccupantCount: 1,
		Status:        constants.PaymentUnpaid,
	}).Error)
}

func TestMarkPaidOldFloorKeepsOccupancyUnpaid(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	seedOccupancy(t, db, constants.FloorOld, "501")

	row, err := svc.Create(ctx, constants.FloorOld, sampleRequest("501"))
	require.NoError(t, err)

	res, err := svc.MarkPaid(ctx, constants.FloorOld, row.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentPaid, res.Rental.PaymentStatus)
	assert.False(t, res.OccupancyPaid)

	var rec recordModel.RentalRecordModel
	require.NoError(t, db.Where("floor = ? AND room_number = ?", constants.FloorOld, "501").First(&rec).Error)
	assert.True(t, rec.TotalRent.Equal(dec("1047")))
	assert.Equal(t, "2024-03-15", helper.FormatDate(&rec.PaymentDate))

	var info rentalInfoModel.RentalInfoModel
	require.NoError(t, db.Where("floor = ? AND room_number = ?", constants.FloorOld, "501").First(&info).Error)
	assert.Equal(t, constants.PaymentUnpaid, info.Status)
}

func TestMarkPaidNewFloorMirrorsOccupancy(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	seedOccupancy(t, db, constants.FloorNew, "601")

	row, err := svc.Create(ctx, constants.FloorNew, sampleRequest("601"))
	require.NoError(t, err)

	res, err := svc.MarkPaid(ctx, constants.FloorNew, row.ID)
	require.NoError(t, err)
	assert.True(t, res.OccupancyPaid)

	var info rentalInfoModel.RentalInfoModel
	require.NoError(t, db.Where("floor = ? AND room_number = ?", constants.FloorNew, "601").First(&info).Error)
	assert.Equal(t, constants.PaymentPaid, info.Status)
}

func TestMarkPaidTwiceIsRejected(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	row, err := svc.Create(ctx, constants.FloorOld, sampleRequest("501"))
	require.NoError(t, err)

	_, err = svc.MarkPaid(ctx, constants.FloorOld, row.ID)
	require.NoError(t, err)
	_, err = svc.MarkPaid(ctx, constants.FloorOld, row.ID)
	require.ErrorIs(t, err, ErrAlreadyPaid)

	var n int64
	require.NoError(t, db.Model(&recordModel.RentalRecordModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	_, err = svc.MarkPaid(ctx, constants.FloorOld, 9999)
	require.ErrorIs(t, err, ErrRentalNotFound)
}

func TestDeleteLeavesReceipts(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	row, err := svc.Create(ctx, constants.FloorOld, sampleRequest("501"))
	require.NoError(t, err)
	_, err = svc.MarkPaid(ctx, constants.FloorOld, row.ID)
	require.NoError(t, err)

	_, err = svc.Delete(ctx, constants.FloorOld, row.ID)
	require.NoError(t, err)

	_, err = svc.Get(ctx, constants.FloorOld, row.ID)
	require.ErrorIs(t, err, ErrRentalNotFound)

	var n int64
	require.NoError(t, db.Model(&recordModel.RentalRecordModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestListFiltersByMonth(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	for _, room := range []string{"501", "502", "503"} {
		_, err := svc.Create(ctx, constants.FloorOld, sampleRequest(room))
		require.NoError(t, err)
	}
	older := time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&model.RentalModel{}).
		Where("room_number = ?", "503").
		UpdateColumn("created_at", older).Error)

	all, err := svc.List(ctx, constants.FloorOld, dto.RentalListQuery{}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.Total)
	assert.Equal(t, "502", all.Rows[0].RoomNumber)
	assert.Equal(t, "503", all.Rows[2].RoomNumber)
	assert.True(t, older.Equal(all.EarliestDate), all.EarliestDate.String())

	march, err := svc.List(ctx, constants.FloorOld, dto.RentalListQuery{Year: 2024, Month: 3}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, march.Total)

	page, err := svc.List(ctx, constants.FloorOld, dto.RentalListQuery{}, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page.Rows, 1)

	empty, err := svc.List(ctx, constants.FloorNew, dto.RentalListQuery{}, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, empty.Rows)
	assert.True(t, testNow.Equal(empty.EarliestDate))
}

// failInsert menggagalkan INSERT ke tabel tertentu sebelum query dijalankan.
func failInsert(t *testing.T, db *gorm.DB, table string) {
	t.Helper()
	require.NoError(t, db.Callback().Create().Before("gorm:create").
		Register("test:fail_insert_"+table, func(tx *gorm.DB) {
			if tx.Statement.Table == table {
				_ = tx.AddError(errors.New("boom"))
			}
		}))
}

func failUpdate(t *testing.T, db *gorm.DB, table string) {
	t.Helper()
	require.NoError(t, db.Callback().Update().Before("gorm:update").
		Register("test:fail_update_"+table, func(tx *gorm.DB) {
			if tx.Statement.Table == table {
				_ = tx.AddError(errors.New("boom"))
			}
		}))
}

func assertNothingPaid(t *testing.T, db *gorm.DB, floor constants.Floor, rentalID uint, room string) {
	t.Helper()
	var rental model.RentalModel
	require.NoError(t, db.First(&rental, rentalID).Error)
	assert.Equal(t, constants.PaymentUnpaid, rental.PaymentStatus)

	var n int64
	require.NoError(t, db.Model(&recordModel.RentalRecordModel{}).Count(&n).Error)
	assert.Zero(t, n)

	var info rentalInfoModel.RentalInfoModel
	require.NoError(t, db.Where("floor = ? AND room_number = ?", floor, room).First(&info).Error)
	assert.Equal(t, constants.PaymentUnpaid, info.Status)
}

func TestMarkPaidRollsBackWhenReceiptInsertFails(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	seedOccupancy(t, db, constants.FloorNew, "601")

	row, err := svc.Create(ctx, constants.FloorNew, sampleRequest("601"))
	require.NoError(t, err)

	failInsert(t, db, recordModel.RentalRecordModel{}.TableName())

	_, err = svc.MarkPaid(ctx, constants.FloorNew, row.ID)
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.KindStorage))
	assertNothingPaid(t, db, constants.FloorNew, row.ID, "601")
}

func TestMarkPaidRollsBackWhenOccupancyMirrorFails(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	seedOccupancy(t, db, constants.FloorNew, "602")

	row, err := svc.Create(ctx, constants.FloorNew, sampleRequest("602"))
	require.NoError(t, err)

	// langkah terakhir gagal: status dan kuitansi yang sudah ditulis ikut batal
	failUpdate(t, db, rentalInfoModel.RentalInfoModel{}.TableName())

	_, err = svc.MarkPaid(ctx, constants.FloorNew, row.ID)
	require.Error(t, err)
	assertNothingPaid(t, db, constants.FloorNew, row.ID, "602")
}
