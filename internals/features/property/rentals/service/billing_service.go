// file: internals/features/property/rentals/service/billing_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rentbook_backend/internals/constants"
	rentalInfoModel "rentbook_backend/internals/features/property/rental_infos/model"
	recordModel "rentbook_backend/internals/features/property/rental_records/model"
	"rentbook_backend/internals/features/property/rentals/dto"
	"rentbook_backend/internals/features/property/rentals/model"
	helper "rentbook_backend/internals/helpers"
	"rentbook_backend/internals/helpers/dbtime"
)

var (
	ErrDuplicateBilling = helper.Conflict(helper.CodeDuplicateBilling, "该房号已有租房记录")
	ErrRentalNotFound   = helper.NotFound("租房记录不存在")
	ErrInvalidStatus    = helper.Validation(helper.CodeInvalidStatus, "缴费状态无效")
	ErrAlreadyPaid      = helper.Validation(helper.CodeInvalidStatus, "该记录已缴费")
)

// =========================
// Rates
// =========================

// Rates: harga satuan air & listrik untuk menurunkan pemakaian dari biaya.
type Rates struct {
	Water       decimal.Decimal
	Electricity decimal.Decimal
}

func DefaultRates() Rates {
	return Rates{
		Water:       decimal.RequireFromString("3.5"),
		Electricity: decimal.RequireFromString("1.2"),
	}
}

// Usage = fee / rate bila fee > 0, selain itu 0. Dibulatkan 2 desimal.
func Usage(fee, rate decimal.Decimal) decimal.Decimal {
	if !fee.IsPositive() || !rate.IsPositive() {
		return decimal.Zero
	}
	return helper.Money(fee.Div(rate))
}

// TotalDue = monthly_rent + utilities_fee.
func TotalDue(monthlyRent, utilitiesFee decimal.Decimal) decimal.Decimal {
	return helper.Money(monthlyRent.Add(utilitiesFee))
}

// =========================
// Service
// =========================

type BillingService struct {
	DB    *gorm.DB
	Rates Rates
	Clock dbtime.Clock
}

func NewBillingService(db *gorm.DB, rates Rates, clock dbtime.Clock) *BillingService {
	return &BillingService{DB: db, Rates: rates, Clock: clock}
}

type MarkPaidResult struct {
	Rental        model.RentalModel
	Record        recordModel.RentalRecordModel
	OccupancyPaid bool // RentalInfo ikut ditandai lunas
}

// apply memvalidasi input lalu menulis semua field yang bisa diubah + turunan.
func (s *BillingService) apply(row *model.RentalModel, in dto.RentalRequest) error {
	if err := helper.ValidateStruct(in, "房号和租客姓名不能为空"); err != nil {
		return err
	}
	if err := helper.RequireNonNegative(in.Amounts()); err != nil {
		return err
	}

	checkIn, err := helper.ParseDate(in.CheckInDate, "入住日期")
	if err != nil {
		return err
	}
	checkOut, err := helper.ParseDate(in.CheckOutDate, "退房日期")
	if err != nil {
		return err
	}
	contractStart, err := helper.ParseDate(in.ContractStartDate, "合同开始日期")
	if err != nil {
		return err
	}
	contractEnd, err := helper.ParseDate(in.ContractEndDate, "合同结束日期")
	if err != nil {
		return err
	}

	row.RoomNumber = in.RoomNumber
	row.TenantName = in.TenantName
	row.Deposit = helper.Money(in.Deposit)
	row.MonthlyRent = helper.Money(in.MonthlyRent)
	row.WaterFee = helper.Money(in.WaterFee)
	row.ElectricityFee = helper.Money(in.ElectricityFee)
	row.UtilitiesFee = helper.Money(in.UtilitiesFee)
	row.WaterUsage = Usage(row.WaterFee, s.Rates.Water)
	row.ElectricityUsage = Usage(row.ElectricityFee, s.Rates.Electricity)
	row.TotalDue = TotalDue(row.MonthlyRent, row.UtilitiesFee)
	row.CheckInDate = checkIn
	row.CheckOutDate = checkOut
	row.ContractStartDate = contractStart
	row.ContractEndDate = contractEnd
	row.Remarks = in.Remarks
	return nil
}

func rentalExists(tx *gorm.DB, floor constants.Floor, roomNumber string, exceptID uint) (bool, error) {
	q := tx.Model(&model.RentalModel{}).Where("floor = ? AND room_number = ?", floor, roomNumber)
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// ExistsForRoom dipakai fitur lain untuk guard delete.
func ExistsForRoom(tx *gorm.DB, floor constants.Floor, roomNumber string) (bool, error) {
	return rentalExists(tx, floor, roomNumber, 0)
}

func (s *BillingService) find(tx *gorm.DB, floor constants.Floor, id uint) (*model.RentalModel, error) {
	var row model.RentalModel
	if err := tx.Where("floor = ? AND id = ?", floor, id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, helper.Storage("查询失败", err)
	}
	return &row, nil
}

// =========================
// Operations
// =========================

func (s *BillingService) Create(ctx context.Context, floor constants.Floor, in dto.RentalRequest) (*model.RentalModel, error) {
	row := model.RentalModel{Floor: floor, PaymentStatus: constants.PaymentUnpaid}
	if err := s.apply(&row, in); err != nil {
		return nil, err
	}
	if in.PaymentStatus != nil {
		st := constants.PaymentStatus(*in.PaymentStatus)
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
		row.PaymentStatus = st
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := rentalExists(tx, floor, row.RoomNumber, 0)
		if err != nil {
			return helper.Storage("添加失败", err)
		}
		if exists {
			return ErrDuplicateBilling
		}
		return helper.MapWriteError(tx.Create(&row).Error, ErrDuplicateBilling, "添加失败")
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *BillingService) Get(ctx context.Context, floor constants.Floor, id uint) (*model.RentalModel, error) {
	return s.find(s.DB.WithContext(ctx), floor, id)
}

// Update menimpa semua field yang bisa diubah. payment_status tidak ikut:
// status hanya berpindah lewat MarkPaid.
func (s *BillingService) Update(ctx context.Context, floor constants.Floor, id uint, in dto.RentalRequest) (*model.RentalModel, error) {
	var out *model.RentalModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.find(tx, floor, id)
		if err != nil {
			return err
		}
		prevRoom := row.RoomNumber
		if err := s.apply(row, in); err != nil {
			return err
		}
		if row.RoomNumber != prevRoom {
			exists, err := rentalExists(tx, floor, row.RoomNumber, row.ID)
			if err != nil {
				return helper.Storage("更新失败", err)
			}
			if exists {
				return ErrDuplicateBilling.WithMessage("该房号已有其他租房管理")
			}
		}
		if err := tx.Save(row).Error; err != nil {
			return helper.MapWriteError(err, ErrDuplicateBilling, "更新失败")
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkPaid: Unpaid → Paid + satu kuitansi, atomik.
// RentalInfo ikut lunas hanya bila policy lantai mengizinkan.
func (s *BillingService) MarkPaid(ctx context.Context, floor constants.Floor, id uint) (*MarkPaidResult, error) {
	var res MarkPaidResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.find(tx, floor, id)
		if err != nil {
			return err
		}
		if row.PaymentStatus == constants.PaymentPaid {
			return ErrAlreadyPaid
		}

		now := s.Clock.Now()
		if err := tx.Model(row).Updates(map[string]any{
			"payment_status": constants.PaymentPaid,
			"updated_at":     now,
		}).Error; err != nil {
			return helper.Storage("标记失败", err)
		}
		row.PaymentStatus = constants.PaymentPaid
		row.UpdatedAt = now

		rec := recordModel.RentalRecordModel{
			Floor:       floor,
			RoomNumber:  row.RoomNumber,
			TenantName:  row.TenantName,
			TotalRent:   row.TotalDue,
			PaymentDate: dbtime.Today(s.Clock),
		}
		if err := tx.Create(&rec).Error; err != nil {
			return helper.Storage("标记失败", err)
		}

		if floor.Policy().MirrorOccupancyOnPaid {
			upd := tx.Model(&rentalInfoModel.RentalInfoModel{}).
				Where("floor = ? AND room_number = ?", floor, row.RoomNumber).
				Updates(map[string]any{
					"rental_status": constants.PaymentPaid,
					"updated_at":    now,
				})
			if upd.Error != nil {
				return helper.Storage("标记失败", upd.Error)
			}
			res.OccupancyPaid = upd.RowsAffected > 0
		}

		res.Rental = *row
		res.Record = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Delete tanpa syarat; kuitansi tetap, status kamar/RentalInfo tidak dikembalikan.
func (s *BillingService) Delete(ctx context.Context, floor constants.Floor, id uint) (*model.RentalModel, error) {
	var out *model.RentalModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.find(tx, floor, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(row).Error; err != nil {
			return helper.Storage("删除失败", err)
		}
		out = row
		return nil
	})
	return out, err
}

// =========================
// Listing
// =========================

type ListResult struct {
	Rows         []model.RentalModel
	Total        int64
	EarliestDate time.Time
}

// scoped: filter lantai + (opsional) bulan created_at.
func (s *BillingService) scoped(ctx context.Context, floor constants.Floor, q dto.RentalListQuery) *gorm.DB {
	db := s.DB.WithContext(ctx).Model(&model.RentalModel{}).Where("floor = ?", floor)
	if q.HasMonth() {
		start, end := helper.MonthRange(q.Year, time.Month(q.Month), dbtime.Location(s.Clock))
		db = db.Where("created_at >= ? AND created_at < ?", start, end)
	}
	return db
}

// List: terbaru dulu. limit <= 0 berarti semua baris (dipakai export).
func (s *BillingService) List(ctx context.Context, floor constants.Floor, q dto.RentalListQuery, offset, limit int) (*ListResult, error) {
	res := &ListResult{}
	if err := s.scoped(ctx, floor, q).Count(&res.Total).Error; err != nil {
		return nil, helper.Storage("查询失败", err)
	}

	find := s.scoped(ctx, floor, q).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		find = find.Offset(offset).Limit(limit)
	}
	if err := find.Find(&res.Rows).Error; err != nil {
		return nil, helper.Storage("查询失败", err)
	}

	var earliest model.RentalModel
	err := s.DB.WithContext(ctx).Where("floor = ?", floor).Order("created_at ASC").Take(&earliest).Error
	switch {
	case err == nil:
		res.EarliestDate = earliest.CreatedAt
	case errors.Is(err, gorm.ErrRecordNotFound):
		res.EarliestDate = s.Clock.Now()
	default:
		return nil, helper.Storage("查询失败", err)
	}
	return res, nil
}
