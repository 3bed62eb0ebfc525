// file: internals/features/property/contacts/service/contact_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/features/property/contacts/dto"
	"rentbook_backend/internals/features/property/contacts/model"
	rentalService "rentbook_backend/internals/features/property/rentals/service"
	helper "rentbook_backend/internals/helpers"
)

var (
	ErrDuplicatePhone  = helper.Conflict(helper.CodeDuplicatePhone, "电话号码已存在")
	ErrContactNotFound = helper.NotFound("联系人不存在")
	ErrContactInUse    = helper.Conflict(helper.CodeRoomHasBillingHistory, "该联系人房间有租赁记录，无法删除")
)

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

func phoneTaken(tx *gorm.DB, floor constants.Floor, phone string, exceptID uint) (bool, error) {
	q := tx.Model(&model.ContactModel{}).Where("floor = ? AND phone = ?", floor, phone)
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *ContactService) find(tx *gorm.DB, floor constants.Floor, id uint) (*model.ContactModel, error) {
	var row model.ContactModel
	if err := tx.Where("floor = ? AND id = ?", floor, id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, helper.Storage("获取联系人信息失败", err)
	}
	return &row, nil
}

func (s *ContactService) Create(ctx context.Context, floor constants.Floor, in dto.ContactRequest) (*model.ContactModel, error) {
	in.Normalize()
	if err := helper.ValidateStruct(in, "姓名和电话不能为空"); err != nil {
		return nil, err
	}
	row := model.ContactModel{
		Floor:  floor,
		Name:   in.Name,
		RoomID: in.RoomID,
		Phone:  in.Phone,
		IDCard: in.IDCard,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := phoneTaken(tx, floor, row.Phone, 0)
		if err != nil {
			return helper.Storage("添加失败", err)
		}
		if taken {
			return ErrDuplicatePhone
		}
		return helper.MapWriteError(tx.Create(&row).Error, nil, "添加失败")
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *ContactService) Get(ctx context.Context, floor constants.Floor, id uint) (*model.ContactModel, error) {
	return s.find(s.DB.WithContext(ctx), floor, id)
}

// Update: cek ulang telepon hanya bila policy lantai memintanya.
func (s *ContactService) Update(ctx context.Context, floor constants.Floor, id uint, in dto.ContactRequest) (*model.ContactModel, error) {
	in.Normalize()
	if err := helper.ValidateStruct(in, "姓名和电话不能为空"); err != nil {
		return nil, err
	}
	var out *model.ContactModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.find(tx, floor, id)
		if err != nil {
			return err
		}
		if floor.Policy().RecheckContactPhoneOnUpdate && in.Phone != row.Phone {
			taken, err := phoneTaken(tx, floor, in.Phone, row.ID)
			if err != nil {
				return helper.Storage("更新失败", err)
			}
			if taken {
				return ErrDuplicatePhone
			}
		}
		row.Name = in.Name
		row.RoomID = in.RoomID
		row.Phone = in.Phone
		row.IDCard = in.IDCard
		if err := tx.Save(row).Error; err != nil {
			return helper.Storage("更新失败", err)
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete ditolak selama ada Rental untuk kamar yang dirujuk kontak.
func (s *ContactService) Delete(ctx context.Context, floor constants.Floor, id uint) (*model.ContactModel, error) {
	var out *model.ContactModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.find(tx, floor, id)
		if err != nil {
			return err
		}
		if row.RoomID != "" {
			busy, err := rentalService.ExistsForRoom(tx, floor, row.RoomID)
			if err != nil {
				return helper.Storage("删除失败", err)
			}
			if busy {
				return ErrContactInUse
			}
		}
		if err := tx.Delete(row).Error; err != nil {
			return helper.Storage("删除失败", err)
		}
		out = row
		return nil
	})
	return out, err
}

// List urut id; q (opsional) LIKE ke nama atau telepon.
func (s *ContactService) List(ctx context.Context, floor constants.Floor, search string, offset, limit int) ([]model.ContactModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.ContactModel{}).Where("floor = ?", floor)
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR phone LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, helper.Storage("查询失败", err)
	}
	var rows []model.ContactModel
	find := q.Order("id ASC")
	if limit > 0 {
		find = find.Offset(offset).Limit(limit)
	}
	if err := find.Find(&rows).Error; err != nil {
		return nil, 0, helper.Storage("查询失败", err)
	}
	return rows, total, nil
}
