// file: internals/features/users/admins/service/admin_service.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rentbook_backend/internals/features/users/admins/dto"
	authHelper "rentbook_backend/internals/features/users/auth/helper"
	authModel "rentbook_backend/internals/features/users/auth/model"
	authRepo "rentbook_backend/internals/features/users/auth/repository"
	authService "rentbook_backend/internals/features/users/auth/service"
	helper "rentbook_backend/internals/helpers"
)

var (
	ErrDuplicateAdmin = helper.Conflict(helper.CodeDuplicateAdmin, "用户名已存在")
	ErrAdminNotFound  = helper.NotFound("管理员不存在")
	ErrLastAdmin      = helper.Conflict(helper.CodeLastAdmin, "系统至少需要保留一个管理员账户")
	ErrEmptyAdmin     = helper.InvalidInput("用户名和密码不能为空")
)

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

func (s *AdminService) find(tx *gorm.DB, id uint) (*authModel.AdminModel, error) {
	var row authModel.AdminModel
	if err := tx.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, helper.Storage("获取失败", err)
	}
	return &row, nil
}

func (s *AdminService) List(ctx context.Context) ([]authModel.AdminModel, error) {
	var rows []authModel.AdminModel
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, helper.Storage("查询失败", err)
	}
	return rows, nil
}

func (s *AdminService) Get(ctx context.Context, id uint) (*authModel.AdminModel, error) {
	return s.find(s.DB.WithContext(ctx), id)
}

// Create dipakai API, CLI `admin create`, dan seed.
func (s *AdminService) Create(ctx context.Context, in dto.AdminCreateRequest) (*authModel.AdminModel, error) {
	in.Normalize()
	if in.AdminName == "" || in.Password == "" {
		return nil, ErrEmptyAdmin
	}
	if err := authHelper.ValidateCredentials(in.AdminName, in.Password); err != nil {
		return nil, err
	}
	hash, err := authService.HashPassword(in.Password)
	if err != nil {
		return nil, helper.Storage("创建失败", err)
	}

	row := authModel.AdminModel{AdminName: in.AdminName, PasswordHash: hash}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := authRepo.IsAdminNameTaken(tx, row.AdminName, 0)
		if err != nil {
			return helper.Storage("创建失败", err)
		}
		if taken {
			return ErrDuplicateAdmin
		}
		return helper.MapWriteError(tx.Create(&row).Error, ErrDuplicateAdmin, "创建失败")
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *AdminService) Update(ctx context.Context, id uint, in dto.AdminUpdateRequest) (*authModel.AdminModel, error) {
	in.Normalize()
	if in.AdminName == "" {
		return nil, helper.InvalidInput("用户名不能为空")
	}
	if err := authHelper.ValidateAdminName(in.AdminName); err != nil {
		return nil, err
	}
	var hash string
	if in.Password != "" {
		if err := authHelper.ValidatePassword(in.Password); err != nil {
			return nil, err
		}
		h, err := authService.HashPassword(in.Password)
		if err != nil {
			return nil, helper.Storage("更新失败", err)
		}
		hash = h
	}

	var out *authModel.AdminModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.find(tx, id)
		if err != nil {
			return err
		}
		taken, err := authRepo.IsAdminNameTaken(tx, in.AdminName, row.ID)
		if err != nil {
			return helper.Storage("更新失败", err)
		}
		if taken {
			return ErrDuplicateAdmin
		}
		row.AdminName = in.AdminName
		if hash != "" {
			row.PasswordHash = hash
		}
		if err := tx.Save(row).Error; err != nil {
			return helper.MapWriteError(err, ErrDuplicateAdmin, "更新失败")
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete: admin terakhir tidak boleh dihapus.
func (s *AdminService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		total, err := authRepo.CountAdmins(tx)
		if err != nil {
			return helper.Storage("删除失败", err)
		}
		if total <= 1 {
			return ErrLastAdmin
		}
		row, err := s.find(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(row).Error; err != nil {
			return helper.Storage("删除失败", err)
		}
		return nil
	})
}
