// file: internals/features/property/rental_infos/service/rental_info_service.go
package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/features/property/rental_infos/dto"
	"rentbook_backend/internals/features/property/rental_infos/model"
	rentalService "rentbook_backend/internals/features/property/rentals/service"
	roomModel "rentbook_backend/internals/features/property/rooms/model"
	helper "rentbook_backend/internals/helpers"
	"rentbook_backend/internals/helpers/dbtime"
)

var (
	ErrDuplicateOccupancy = helper.Conflict(helper.CodeDuplicateOccupancy, "该房号已有租房信息")
	ErrRentalInfoNotFound = helper.NotFound("租房信息不存在")
	ErrHasBilling         = helper.Conflict(helper.CodeRoomHasBillingHistory, "该房间有租赁记录，无法删除")
	ErrOpenBillingCycle   = helper.Conflict(helper.CodeOpenBillingCycle, "该房号仍有未结租赁记录，无法退房")
	ErrInvalidStatus      = helper.Validation(helper.CodeInvalidStatus, "缴费状态无效")
)

// OccupancyService = RentalInfo + sinkronisasi status kamar.
type OccupancyService struct {
	DB    *gorm.DB
	Clock dbtime.Clock
}

func NewOccupancyService(db *gorm.DB, clock dbtime.Clock) *OccupancyService {
	return &OccupancyService{DB: db, Clock: clock}
}

func occupancyExists(tx *gorm.DB, floor constants.Floor, roomNumber string, exceptID uint) (bool, error) {
	q := tx.Model(&model.RentalInfoModel{}).Where("floor = ? AND room_number = ?", floor, roomNumber)
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *OccupancyService) find(tx *gorm.DB, floor constants.Floor, id uint) (*model.RentalInfoModel, error) {
	var row model.RentalInfoModel
	if err := tx.Where("floor = ? AND id = ?", floor, id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRentalInfoNotFound
		}
		return nil, helper.Storage("查询失败", err)
	}
	return &row, nil
}

func apply(row *model.RentalInfoModel, in dto.RentalInfoRequest) error {
	if err := helper.ValidateStruct(in, "房号和租客姓名不能为空"); err != nil {
		return err
	}
	if err := helper.RequireNonNegative(map[string]decimal.Decimal{"deposit": in.Deposit}); err != nil {
		return err
	}
	checkIn, err := helper.ParseDate(in.CheckInDate, "入住日期")
	if err != nil {
		return err
	}
	if in.Status != nil {
		st := constants.PaymentStatus(*in.Status)
		if !st.Valid() {
			return ErrInvalidStatus
		}
		row.Status = st
	}

	row.RoomNumber = in.RoomNumber
	row.TenantName = in.TenantName
	row.Phone = in.Phone
	row.Deposit = helper.Money(in.Deposit)
	row.OccupantCount = in.OccupantCount
	if row.OccupantCount == 0 {
		row.OccupantCount = 1
	}
	row.CheckInDate = checkIn
	row.Remarks = in.Remarks
	return nil
}

// setRoomStatus mengubah status kamar bernomor sama (bila ada).
func (s *OccupancyService) setRoomStatus(tx *gorm.DB, floor constants.Floor, roomNumber string, status constants.RoomStatus) error {
	return tx.Model(&roomModel.RoomModel{}).
		Where("floor = ? AND room_number = ?", floor, roomNumber).
		Updates(map[string]any{
			"room_status": status,
			"updated_at":  s.Clock.Now(),
		}).Error
}

// Create: insert RentalInfo dan kamar terkait → 已出租, satu transaksi.
func (s *OccupancyService) Create(ctx context.Context, floor constants.Floor, in dto.RentalInfoRequest) (*model.RentalInfoModel, error) {
	row := model.RentalInfoModel{Floor: floor, Status: constants.PaymentUnpaid}
	if err := apply(&row, in); err != nil {
		return nil, err
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := occupancyExists(tx, floor, row.RoomNumber, 0)
		if err != nil {
			return helper.Storage("添加失败", err)
		}
		if exists {
			return ErrDuplicateOccupancy
		}
		if err := tx.Create(&row).Error; err != nil {
			return helper.MapWriteError(err, ErrDuplicateOccupancy, "添加失败")
		}
		if err := s.setRoomStatus(tx, floor, row.RoomNumber, constants.RoomOccupied); err != nil {
			return helper.Storage("添加失败", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *OccupancyService) Get(ctx context.Context, floor constants.Floor, id uint) (*model.RentalInfoModel, error) {
	return s.find(s.DB.WithContext(ctx), floor, id)
}

// Update tidak menyentuh status kamar.
func (s *OccupancyService) Update(ctx context.Context, floor constants.Floor, id uint, in dto.RentalInfoRequest) (*model.RentalInfoModel, error) {
	var out *model.RentalInfoModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.find(tx, floor, id)
		if err != nil {
			return err
		}
		prevRoom := row.RoomNumber
		if err := apply(row, in); err != nil {
			return err
		}
		if row.RoomNumber != prevRoom {
			exists, err := occupancyExists(tx, floor, row.RoomNumber, row.ID)
			if err != nil {
				return helper.Storage("更新失败", err)
			}
			if exists {
				return ErrDuplicateOccupancy.WithMessage("该房号已有其他租房信息")
			}
		}
		if err := tx.Save(row).Error; err != nil {
			return helper.MapWriteError(err, ErrDuplicateOccupancy, "更新失败")
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete: ditolak bila masih ada Rental. Status kamar tidak dikembalikan.
func (s *OccupancyService) Delete(ctx context.Context, floor constants.Floor, id uint) (*model.RentalInfoModel, error) {
	var out *model.RentalInfoModel
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
			return ErrHasBilling
		}
		if err := tx.Delete(row).Error; err != nil {
			return helper.Storage("删除失败", err)
		}
		out = row
		return nil
	})
	return out, err
}

// Checkout: hapus RentalInfo dan kamar kembali 空闲.
// Satu-satunya jalur yang mengembalikan kamar ke status kosong.
func (s *OccupancyService) Checkout(ctx context.Context, floor constants.Floor, id uint) (*model.RentalInfoModel, error) {
	var out *model.RentalInfoModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.find(tx, floor, id)
		if err != nil {
			return err
		}
		busy, err := rentalService.ExistsForRoom(tx, floor, row.RoomNumber)
		if err != nil {
			return helper.Storage("退房失败", err)
		}
		if busy {
			return ErrOpenBillingCycle
		}
		if err := tx.Delete(row).Error; err != nil {
			return helper.Storage("退房失败", err)
		}
		if err := s.setRoomStatus(tx, floor, row.RoomNumber, constants.RoomVacant); err != nil {
			return helper.Storage("退房失败", err)
		}
		out = row
		return nil
	})
	return out, err
}

func (s *OccupancyService) List(ctx context.Context, floor constants.Floor, offset, limit int) ([]model.RentalInfoModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.RentalInfoModel{}).Where("floor = ?", floor)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, helper.Storage("查询失败", err)
	}
	var rows []model.RentalInfoModel
	find := q.Order("id ASC")
	if limit > 0 {
		find = find.Offset(offset).Limit(limit)
	}
	if err := find.Find(&rows).Error; err != nil {
		return nil, 0, helper.Storage("查询失败", err)
	}
	return rows, total, nil
}

// Search tanpa pagination; total = jumlah baris hasil.
func (s *OccupancyService) Search(ctx context.Context, floor constants.Floor, q dto.SearchQuery) ([]model.RentalInfoModel, error) {
	q.Normalize()
	db := s.DB.WithContext(ctx).Where("floor = ?", floor)
	if q.Q != "" {
		like := "%" + q.Q + "%"
		db = db.Where("room_number LIKE ? OR tenant_name LIKE ? OR phone LIKE ?", like, like, like)
	}
	if st := q.PaymentFilter(); st != 0 {
		db = db.Where("rental_status = ?", st)
	}
	var rows []model.RentalInfoModel
	if err := db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, helper.Storage("搜索失败", err)
	}
	return rows, nil
}
