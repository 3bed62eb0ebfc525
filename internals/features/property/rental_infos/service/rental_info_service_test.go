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
	"rentbook_backend/internals/features/property/rental_infos/dto"
	"rentbook_backend/internals/features/property/rental_infos/model"
	rentalModel "rentbook_backend/internals/features/property/rentals/model"
	roomModel "rentbook_backend/internals/features/property/rooms/model"
	helper "rentbook_backend/internals/helpers"
	"rentbook_backend/internals/helpers/dbtime"
)

var now = time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*OccupancyService, *gorm.DB) {
	t.Helper()
	clock := dbtime.FixedClock{At: now}
	db := dbtest.New(t, clock)
	return NewOccupancyService(db, clock), db
}

func seedRoom(t *testing.T, db *gorm.DB, floor constants.Floor, number string) roomModel.RoomModel {
	t.Helper()
	room := roomModel.RoomModel{Floor: floor, RoomNumber: number, Status: constants.RoomVacant}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func roomStatus(t *testing.T, db *gorm.DB, id uint) constants.RoomStatus {
	t.Helper()
	var room roomModel.RoomModel
	require.NoError(t, db.First(&room, id).Error)
	return room.Status
}

func infoReq(room, tenant, phone string) dto.RentalInfoRequest {
	return dto.RentalInfoRequest{
		RoomNumber:    room,
		TenantName:    tenant,
		Phone:         phone,
		Deposit:       decimal.NewFromInt(1000),
		OccupantCount: 2,
		CheckInDate:   "2024-05-01",
	}
}

func TestCreateMarksRoomOccupied(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	room := seedRoom(t, db, constants.FloorOld, "501")

	row, err := svc.Create(ctx, constants.FloorOld, infoReq("501", "张三", "13800000001"))
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentUnpaid, row.Status)
	assert.Equal(t, "2024-05-01", helper.FormatDate(row.CheckInDate))
	assert.Equal(t, constants.RoomOccupied, roomStatus(t, db, room.ID))

	_, err = svc.Create(ctx, constants.FloorOld, infoReq("501", "李四", "13800000002"))
	require.ErrorIs(t, err, ErrDuplicateOccupancy)

	// kamar tidak terdaftar tetap boleh
	_, err = svc.Create(ctx, constants.FloorOld, infoReq("599", "王五", ""))
	require.NoError(t, err)
}

func TestCreateRejectsBadDateBeforeWriting(t *testing.T) {
	svc, db := setup(t)
	room := seedRoom(t, db, constants.FloorNew, "601")

	in := infoReq("601", "张三", "")
	in.CheckInDate = "01-05-2024"
	_, err := svc.Create(context.Background(), constants.FloorNew, in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "入住日期格式不正确")

	var n int64
	require.NoError(t, db.Model(&model.RentalInfoModel{}).Count(&n).Error)
	assert.Zero(t, n)
	assert.Equal(t, constants.RoomVacant, roomStatus(t, db, room.ID))
}

func TestUpdateRechecksRoom(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, constants.FloorOld, infoReq("501", "张三", ""))
	require.NoError(t, err)
	_, err = svc.Create(ctx, constants.FloorOld, infoReq("502", "李四", ""))
	require.NoError(t, err)

	_, err = svc.Update(ctx, constants.FloorOld, a.ID, infoReq("502", "张三", ""))
	require.ErrorIs(t, err, ErrDuplicateOccupancy)
	assert.Contains(t, err.Error(), "该房号已有其他租房信息")

	paid := int(constants.PaymentPaid)
	in := infoReq("503", "张三", "13900000000")
	in.Status = &paid
	out, err := svc.Update(ctx, constants.FloorOld, a.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "503", out.RoomNumber)
	assert.Equal(t, constants.PaymentPaid, out.Status)
}

func TestDeleteAndCheckoutBlockedByRental(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	room := seedRoom(t, db, constants.FloorOld, "501")

	info, err := svc.Create(ctx, constants.FloorOld, infoReq("501", "张三", ""))
	require.NoError(t, err)
	require.NoError(t, db.Create(&rentalModel.RentalModel{
		Floor:         constants.FloorOld,
		RoomNumber:    "501",
		TenantName:    "张三",
		PaymentStatus: constants.PaymentUnpaid,
	}).Error)

	_, err = svc.Delete(ctx, constants.FloorOld, info.ID)
	require.ErrorIs(t, err, ErrHasBilling)

	_, err = svc.Checkout(ctx, constants.FloorOld, info.ID)
	require.ErrorIs(t, err, ErrOpenBillingCycle)
	assert.Equal(t, constants.RoomOccupied, roomStatus(t, db, room.ID))

	require.NoError(t, db.Where("room_number = ?", "501").Delete(&rentalModel.RentalModel{}).Error)

	out, err := svc.Checkout(ctx, constants.FloorOld, info.ID)
	require.NoError(t, err)
	assert.Equal(t, "501", out.RoomNumber)
	assert.Equal(t, constants.RoomVacant, roomStatus(t, db, room.ID))

	_, err = svc.Get(ctx, constants.FloorOld, info.ID)
	require.ErrorIs(t, err, ErrRentalInfoNotFound)
}

func TestDeleteKeepsRoomStatus(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	room := seedRoom(t, db, constants.FloorNew, "601")

	info, err := svc.Create(ctx, constants.FloorNew, infoReq("601", "张三", ""))
	require.NoError(t, err)
	_, err = svc.Delete(ctx, constants.FloorNew, info.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomOccupied, roomStatus(t, db, room.ID))
}

func TestSearch(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	paid := int(constants.PaymentPaid)
	a := infoReq("501", "张三", "13800000001")
	a.Status = &paid
	_, err := svc.Create(ctx, constants.FloorOld, a)
	require.NoError(t, err)
	_, err = svc.Create(ctx, constants.FloorOld, infoReq("502", "李四", "13900000002"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, constants.FloorNew, infoReq("601", "张三丰", "13800000003"))
	require.NoError(t, err)

	rows, err := svc.Search(ctx, constants.FloorOld, dto.SearchQuery{Q: "138"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "501", rows[0].RoomNumber)

	rows, err = svc.Search(ctx, constants.FloorOld, dto.SearchQuery{Status: "unpaid"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "502", rows[0].RoomNumber)

	rows, err = svc.Search(ctx, constants.FloorOld, dto.SearchQuery{Q: "50", Status: "all"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, total, err := svc.List(ctx, constants.FloorNew, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "张三丰", rows[0].TenantName)
}

func TestCreateRollsBackWhenRoomUpdateFails(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	room := seedRoom(t, db, constants.FloorOld, "505")

	require.NoError(t, db.Callback().Update().Before("gorm:update").
		Register("test:fail_room_update", func(tx *gorm.DB) {
			if tx.Statement.Table == (roomModel.RoomModel{}).TableName() {
				_ = tx.AddError(errors.New("boom"))
			}
		}))

	_, err := svc.Create(ctx, constants.FloorOld, infoReq("505", "王五", "13800000005"))
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.KindStorage))

	var n int64
	require.NoError(t, db.Model(&model.RentalInfoModel{}).Where("room_number = ?", "505").Count(&n).Error)
	assert.Zero(t, n)
	assert.Equal(t, constants.RoomVacant, roomStatus(t, db, room.ID))
}
