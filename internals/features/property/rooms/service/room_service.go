// file: internals/features/property/rooms/service/room_service.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rentbook_backend/internals/constants"
	rentalService "rentbook_backend/internals/features/property/rentals/service"
	"rentbook_backend/internals/features/property/rooms/dto"
	"rentbook_backend/internals/features/property/rooms/model"
	helper "rentbook_backend/internals/helpers"
)

var (
	ErrDuplicateRoom     = helper.Conflict(helper.CodeDuplicateRoom, "房号已存在")
	ErrRoomNotFound      = helper.NotFound("房间不存在")
	ErrRoomHasBilling    = helper.Conflict(helper.CodeRoomHasBillingHistory, "该房间有租赁记录，无法删除")
	ErrInvalidRoomStatus = helper.Validation(helper.CodeInvalidStatus, "房间状态无效")
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func roomNumberTaken(tx *gorm.DB, floor constants.Floor, roomNumber string, exceptID uint) (bool, error) {
	q := tx.Model(&model.RoomModel{}).Where("floor = ? AND room_number = ?", floor, roomNumber)
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RoomService) find(tx *gorm.DB, floor constants.Floor, id uint) (*model.RoomModel, error) {
	var row model.RoomModel
	if err := tx.Where("floor = ? AND id = ?", floor, id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, helper.Storage("查询失败", err)
	}
	return &row, nil
}

func validateRoom(in dto.RoomRequest) error {
	if err := helper.ValidateStruct(in, "房号不能为空"); err != nil {
		return err
	}
	if err := helper.RequireNonNegative(in.Amounts()); err != nil {
		return err
	}
	if in.Status != nil && !constants.RoomStatus(*in.Status).Valid() {
		return ErrInvalidRoomStatus
	}
	return nil
}

func (s *RoomService) Create(ctx context.Context, floor constants.Floor, in dto.RoomRequest) (*model.RoomModel, error) {
	if err := validateRoom(in); err != nil {
		return nil, err
	}
	row := model.RoomModel{
		Floor:                  floor,
		RoomNumber:             in.RoomNumber,
		RoomType:               in.RoomType,
		Deposit:                helper.Money(in.Deposit),
		BaseRent:               helper.Money(in.BaseRent),
		Status:                 constants.RoomVacant,
		WaterMeterNumber:       in.WaterMeterNumber,
		ElectricityMeterNumber: in.ElectricityMeterNumber,
	}
	if in.Status != nil {
		row.Status = constants.RoomStatus(*in.Status)
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := roomNumberTaken(tx, floor, row.RoomNumber, 0)
		if err != nil {
			return helper.Storage("添加失败", err)
		}
		if taken {
			return ErrDuplicateRoom
		}
		return helper.MapWriteError(tx.Create(&row).Error, ErrDuplicateRoom, "添加失败")
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *RoomService) Get(ctx context.Context, floor constants.Floor, id uint) (*model.RoomModel, error) {
	return s.find(s.DB.WithContext(ctx), floor, id)
}

func (s *RoomService) Update(ctx context.Context, floor constants.Floor, id uint, in dto.RoomRequest) (*model.RoomModel, error) {
	if err := validateRoom(in); err != nil {
		return nil, err
	}
	var out *model.RoomModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.find(tx, floor, id)
		if err != nil {
			return err
		}
		if in.RoomNumber != row.RoomNumber {
			taken, err := roomNumberTaken(tx, floor, in.RoomNumber, row.ID)
			if err != nil {
				return helper.Storage("更新失败", err)
			}
			if taken {
				return ErrDuplicateRoom
			}
		}

		row.RoomNumber = in.RoomNumber
		row.RoomType = in.RoomType
		row.Deposit = helper.Money(in.Deposit)
		row.BaseRent = helper.Money(in.BaseRent)
		row.WaterMeterNumber = in.WaterMeterNumber
		row.ElectricityMeterNumber = in.ElectricityMeterNumber
		if in.Status != nil {
			row.Status = constants.RoomStatus(*in.Status)
		}
		if err := tx.Save(row).Error; err != nil {
			return helper.MapWriteError(err, ErrDuplicateRoom, "更新失败")
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete ditolak selama masih ada Rental untuk nomor kamar ini.
func (s *RoomService) Delete(ctx context.Context, floor constants.Floor, id uint) (*model.RoomModel, error) {
	var out *model.RoomModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.find(tx, floor, id)
		if err != nil {
			return err
		}
		busy, err := rentalService.ExistsForRoom(tx, floor, row.RoomNumber)
		if err != nil {
			return helper.Storage("删除失败", err)
		}
		if busy {
			return ErrRoomHasBilling
		}
		if err := tx.Delete(row).Error; err != nil {
			return helper.Storage("删除失败", err)
		}
		out = row
		return nil
	})
	return out, err
}

// List urut id; status 0 = semua.
func (s *RoomService) List(ctx context.Context, floor constants.Floor, status constants.RoomStatus, offset, limit int) ([]model.RoomModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.RoomModel{}).Where("floor = ?", floor)
	if status != 0 {
		if !status.Valid() {
			return nil, 0, ErrInvalidRoomStatus
		}
		q = q.Where("room_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, helper.Storage("查询失败", err)
	}
	var rows []model.RoomModel
	find := q.Order("id ASC")
	if limit > 0 {
		find = find.Offset(offset).Limit(limit)
	}
	if err := find.Find(&rows).Error; err != nil {
		return nil, 0, helper.Storage("查询失败", err)
	}
	return rows, total, nil
}

// Available: kamar kosong (空闲), urut nomor kamar.
func (s *RoomService) Available(ctx context.Context, floor constants.Floor) ([]model.RoomModel, error) {
	var rows []model.RoomModel
	err := s.DB.WithContext(ctx).
		Where("floor = ? AND room_status = ?", floor, constants.RoomVacant).
		Order("room_number ASC").
		Find(&rows).Error
	if err != nil {
		return nil, helper.Storage("查询失败", err)
	}
	return rows, nil
}

func (s *RoomService) Stats(ctx context.Context, floor constants.Floor) (*dto.RoomStats, error) {
	type bucket struct {
		Status constants.RoomStatus
		N      int64
	}
	var buckets []bucket
	err := s.DB.WithContext(ctx).Model(&model.RoomModel{}).
		Select("room_status AS status, COUNT(*) AS n").
		Where("floor = ?", floor).
		Group("room_status").
		Scan(&buckets).Error
	if err != nil {
		return nil, helper.Storage("查询失败", err)
	}

	out := &dto.RoomStats{}
	for _, b := range buckets {
		out.Total += b.N
		switch b.Status {
		case constants.RoomVacant:
			out.Available = b.N
		case constants.RoomOccupied:
			out.Occupied = b.N
		case constants.RoomUnderMaintenance:
			out.Maintenance = b.N
		case constants.RoomDisabled:
			out.Disabled = b.N
		}
	}
	return out, nil
}

// Rented: kamar 已出租 yang punya RentalInfo di lantai yang sama.
func (s *RoomService) Rented(ctx context.Context, floor constants.Floor) ([]dto.RentedRoomRow, error) {
	var rows []dto.RentedRoomRow
	err := s.DB.WithContext(ctx).
		Table("rooms AS r").
		Select(`r.id, r.room_number, r.room_type, r.base_rent, r.deposit,
			ri.tenant_name, ri.phone AS tenant_phone, ri.deposit AS rental_deposit, ri.check_in_date`).
		Joins("JOIN rental_infos AS ri ON ri.floor = r.floor AND ri.room_number = r.room_number").
		Where("r.floor = ? AND r.room_status = ?", floor, constants.RoomOccupied).
		Order("r.room_number ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, helper.Storage("获取已出租房间失败", err)
	}
	return rows, nil
}
