// file: internals/features/property/rental_records/service/record_service.go
package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/features/property/rental_records/dto"
	"rentbook_backend/internals/features/property/rental_records/model"
	helper "rentbook_backend/internals/helpers"
)

var ErrRecordNotFound = helper.NotFound("缴费记录不存在")

// RecordService hanya baca. Kuitansi dibuat oleh mark_paid.
type RecordService struct {
	DB *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{DB: db}
}

type ListResult struct {
	Rows  []model.RentalRecordModel
	Total int64
}

func (s *RecordService) Get(ctx context.Context, floor constants.Floor, id uint) (*model.RentalRecordModel, error) {
	var row model.RentalRecordModel
	err := s.DB.WithContext(ctx).Where("floor = ? AND id = ?", floor, id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, helper.Storage("查询失败", err)
	}
	return &row, nil
}

func (s *RecordService) scoped(ctx context.Context, floor constants.Floor, q dto.RecordListQuery) *gorm.DB {
	db := s.DB.WithContext(ctx).Model(&model.RentalRecordModel{}).Where("floor = ?", floor)
	if q.HasMonth() {
		// kolom date disimpan tengah malam UTC
		start, end := helper.MonthRange(q.Year, time.Month(q.Month), time.UTC)
		db = db.Where("payment_date >= ? AND payment_date < ?", start, end)
	}
	return db
}

// List: payment_date terbaru dulu. limit <= 0 berarti semua baris.
func (s *RecordService) List(ctx context.Context, floor constants.Floor, q dto.RecordListQuery, offset, limit int) (*ListResult, error) {
	res := &ListResult{}
	if err := s.scoped(ctx, floor, q).Count(&res.Total).Error; err != nil {
		return nil, helper.Storage("查询失败", err)
	}
	find := s.scoped(ctx, floor, q).Order("payment_date DESC").Order("id DESC")
	if limit > 0 {
		find = find.Offset(offset).Limit(limit)
	}
	if err := find.Find(&res.Rows).Error; err != nil {
		return nil, helper.Storage("查询失败", err)
	}
	return res, nil
}
