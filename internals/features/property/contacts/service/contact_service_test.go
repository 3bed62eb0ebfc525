package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/databases/dbtest"
	"rentbook_backend/internals/features/property/contacts/dto"
	rentalModel "rentbook_backend/internals/features/property/rentals/model"
	helper "rentbook_backend/internals/helpers"
	"rentbook_backend/internals/helpers/dbtime"
)

func newService(t *testing.T) *ContactService {
	t.Helper()
	return NewContactService(dbtest.New(t, dbtime.FixedClock{At: time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)}))
}

func TestCreateContactRejectsDuplicatePhone(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, constants.FloorOld, dto.ContactRequest{Name: "张三", Phone: " 13800000001 "})
	require.NoError(t, err)

	_, err = svc.Create(ctx, constants.FloorOld, dto.ContactRequest{Name: "李四", Phone: "13800000001"})
	require.ErrorIs(t, err, ErrDuplicatePhone)

	_, err = svc.Create(ctx, constants.FloorNew, dto.ContactRequest{Name: "李四", Phone: "13800000001"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, constants.FloorOld, dto.ContactRequest{Name: "", Phone: "1"})
	assert.True(t, helper.IsKind(err, helper.KindValidation))
}

func TestUpdateContactPhoneRecheckFollowsFloorPolicy(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, floor := range constants.AllFloors {
		_, err := svc.Create(ctx, floor, dto.ContactRequest{Name: "张三", Phone: "111"})
		require.NoError(t, err)
		b, err := svc.Create(ctx, floor, dto.ContactRequest{Name: "李四", Phone: "222"})
		require.NoError(t, err)

		_, err = svc.Update(ctx, floor, b.ID, dto.ContactRequest{Name: "李四", Phone: "111"})
		if floor.Policy().RecheckContactPhoneOnUpdate {
			require.ErrorIs(t, err, ErrDuplicatePhone, floor)
		} else {
			require.NoError(t, err, floor)
		}
	}
}

func TestDeleteContactBlockedByRental(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, constants.FloorOld, dto.ContactRequest{Name: "张三", Phone: "111", RoomID: "501"})
	require.NoError(t, err)
	require.NoError(t, svc.DB.Create(&rentalModel.RentalModel{
		Floor: constants.FloorOld, RoomNumber: "501", TenantName: "张三", MonthlyRent: decimal.NewFromInt(1000),
	}).Error)

	_, err = svc.Delete(ctx, constants.FloorOld, c.ID)
	require.ErrorIs(t, err, ErrContactInUse)

	free, err := svc.Create(ctx, constants.FloorOld, dto.ContactRequest{Name: "李四", Phone: "222"})
	require.NoError(t, err)
	_, err = svc.Delete(ctx, constants.FloorOld, free.ID)
	require.NoError(t, err)

	_, err = svc.Get(ctx, constants.FloorOld, free.ID)
	require.ErrorIs(t, err, ErrContactNotFound)
}

func TestListContactsSearch(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, in := range []dto.ContactRequest{
		{Name: "张三", Phone: "13800000001"},
		{Name: "张四", Phone: "13900000002"},
		{Name: "王五", Phone: "13800000003"},
	} {
		_, err := svc.Create(ctx, constants.FloorOld, in)
		require.NoError(t, err)
	}

	rows, total, err := svc.List(ctx, constants.FloorOld, "张", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)

	rows, total, err = svc.List(ctx, constants.FloorOld, "138", 0, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "张三", rows[0].Name)
}
