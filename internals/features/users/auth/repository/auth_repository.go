// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "rentbook_backend/internals/features/users/auth/model"
)

/* ====================== ADMIN ====================== */

func FindAdminByName(ctx context.Context, db *gorm.DB, name string) (*authModel.AdminModel, error) {
	var admin authModel.AdminModel
	if err := db.WithContext(ctx).Where("admin_name = ?", name).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func FindAdminByID(ctx context.Context, db *gorm.DB, id uint) (*authModel.AdminModel, error) {
	var admin authModel.AdminModel
	if err := db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func TouchLastLogin(ctx context.Context, db *gorm.DB, id uint, at time.Time) error {
	return db.WithContext(ctx).Model(&authModel.AdminModel{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

func IsAdminNameTaken(tx *gorm.DB, name string, exceptID uint) (bool, error) {
	q := tx.Model(&authModel.AdminModel{}).Where("admin_name = ?", name)
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func CountAdmins(tx *gorm.DB) (int64, error) {
	var n int64
	err := tx.Model(&authModel.AdminModel{}).Count(&n).Error
	return n, err
}

/* ====================== BLACKLIST TOKEN ====================== */

// BlacklistToken idempotent: jti yang sama tidak dobel.
func BlacklistToken(ctx context.Context, db *gorm.DB, jti string, expiredAt time.Time) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&authModel.TokenBlacklist{Token: jti, ExpiredAt: expiredAt}).Error
}

func IsBlacklisted(ctx context.Context, db *gorm.DB, jti string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&authModel.TokenBlacklist{}).
		Where("token = ?", jti).
		Count(&n).Error
	return n > 0, err
}

// CleanupExpiredBlacklist menghapus permanen baris yang expired_at < before.
func CleanupExpiredBlacklist(ctx context.Context, db *gorm.DB, before time.Time) (int64, error) {
	res := db.WithContext(ctx).Unscoped().
		Where("expired_at < ?", before).
		Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
