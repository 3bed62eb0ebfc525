// file: internals/features/property/contracts/service/contract_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/features/property/contracts/dto"
	"rentbook_backend/internals/features/property/contracts/model"
	helper "rentbook_backend/internals/helpers"
	"rentbook_backend/internals/helpers/dbtime"
)

var (
	ErrDuplicateContract = helper.Conflict(helper.CodeDuplicateContract, "合同编号已存在")
	ErrContractNotFound  = helper.NotFound("合同不存在")
	ErrInvalidStatus     = helper.Validation(helper.CodeInvalidStatus, "合同状态无效")
	ErrInvalidUtilities  = helper.Validation(helper.CodeInvalidStatus, "水电费选项无效")
	ErrInvalidDuration   = helper.InvalidInput("合同期限无效")
)

// Kontrak aktif dengan sisa hari <= ExpiringWindowDays dianggap akan habis.
const ExpiringWindowDays = 30

type ContractService struct {
	DB    *gorm.DB
	Clock dbtime.Clock
}

func NewContractService(db *gorm.DB, clock dbtime.Clock) *ContractService {
	return &ContractService{DB: db, Clock: clock}
}

func (s *ContractService) find(tx *gorm.DB, floor constants.Floor, id uint) (*model.ContractModel, error) {
	var row model.ContractModel
	if err := tx.Where("floor = ? AND id = ?", floor, id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, helper.Storage("查询失败", err)
	}
	return &row, nil
}

func numberTaken(tx *gorm.DB, floor constants.Floor, number string, exceptID uint) (bool, error) {
	q := tx.Model(&model.ContractModel{}).Where("floor = ? AND contract_number = ?", floor, number)
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// =========================
// Operations
// =========================

func (s *ContractService) Create(ctx context.Context, floor constants.Floor, in dto.ContractCreateRequest) (*model.ContractModel, error) {
	in.ContractNumber = strings.TrimSpace(in.ContractNumber)
	if err := helper.ValidateStruct(in, "合同编号和租客姓名不能为空"); err != nil {
		return nil, err
	}
	if err := helper.RequireNonNegative(in.Amounts()); err != nil {
		return nil, err
	}

	signDate, err := helper.ParseDate(in.SignDate, "签约日期")
	if err != nil {
		return nil, err
	}
	startDate, err := helper.ParseDate(in.StartDate, "租期开始日期")
	if err != nil {
		return nil, err
	}
	endDate, err := helper.ParseDate(in.EndDate, "租期结束日期")
	if err != nil {
		return nil, err
	}

	row := model.ContractModel{
		Floor:             floor,
		ContractNumber:    in.ContractNumber,
		RoomNumber:        in.RoomNumber,
		TenantName:        in.TenantName,
		TenantPhone:       in.TenantPhone,
		TenantIDCard:      in.TenantIDCard,
		LandlordName:      in.LandlordName,
		LandlordPhone:     in.LandlordPhone,
		MonthlyRent:       helper.Money(in.MonthlyRent),
		Deposit:           helper.Money(in.Deposit),
		ContractStartDate: startDate,
		ContractEndDate:   endDate,
		ContractDuration:  constants.DefaultContractDuration,
		PaymentMethod:     constants.DefaultPaymentMethod,
		RentDueDate:       startDate,
		Status:            constants.ContractActive,
		UtilitiesIncluded: constants.UtilitiesIncludedNo,
		WaterRate:         helper.Money(in.WaterRate),
		ElectricityRate:   helper.Money(in.ElectricityRate),
		Remarks:           in.Notes,
	}
	if v := strings.TrimSpace(in.PaymentCycle); v != "" {
		row.PaymentMethod = v
	}
	if in.ContractDuration != nil {
		if *in.ContractDuration < 0 {
			return nil, ErrInvalidDuration
		}
		row.ContractDuration = *in.ContractDuration
	}
	if in.IncludeUtilities != nil {
		u := constants.UtilitiesIncluded(*in.IncludeUtilities)
		if !u.Valid() {
			return nil, ErrInvalidUtilities
		}
		row.UtilitiesIncluded = u
	}
	// created_at = tanggal tanda tangan; kosong → autoCreateTime
	if signDate != nil {
		row.CreatedAt = time.Time(*signDate)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := numberTaken(tx, floor, row.ContractNumber, 0)
		if err != nil {
			return helper.Storage("创建失败", err)
		}
		if taken {
			return ErrDuplicateContract
		}
		return helper.MapWriteError(tx.Create(&row).Error, ErrDuplicateContract, "创建失败")
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *ContractService) Get(ctx context.Context, floor constants.Floor, id uint) (*model.ContractModel, error) {
	return s.find(s.DB.WithContext(ctx), floor, id)
}

// Update menimpa seluruh kolom; nomor kontrak dicek ulang hanya bila berubah.
func (s *ContractService) Update(ctx context.Context, floor constants.Floor, id uint, in dto.ContractUpdateRequest) (*model.ContractModel, error) {
	in.ContractNumber = strings.TrimSpace(in.ContractNumber)
	if err := helper.ValidateStruct(in, "合同编号和租客姓名不能为空"); err != nil {
		return nil, err
	}
	if err := helper.RequireNonNegative(in.Amounts()); err != nil {
		return nil, err
	}
	startDate, err := helper.ParseDate(in.ContractStartDate, "合同开始日期")
	if err != nil {
		return nil, err
	}
	endDate, err := helper.ParseDate(in.ContractEndDate, "合同结束日期")
	if err != nil {
		return nil, err
	}
	dueDate, err := helper.ParseDate(in.RentDueDate, "租金到期日期")
	if err != nil {
		return nil, err
	}
	status := constants.ContractStatus(in.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	utilities := constants.UtilitiesIncluded(in.UtilitiesIncluded)
	if !utilities.Valid() {
		return nil, ErrInvalidUtilities
	}

	var out *model.ContractModel
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.find(tx, floor, id)
		if err != nil {
			return err
		}
		if in.ContractNumber != row.ContractNumber {
			taken, err := numberTaken(tx, floor, in.ContractNumber, row.ID)
			if err != nil {
				return helper.Storage("更新失败", err)
			}
			if taken {
				return ErrDuplicateContract
			}
		}

		row.ContractNumber = in.ContractNumber
		row.RoomNumber = in.RoomNumber
		row.TenantName = in.TenantName
		row.TenantPhone = in.TenantPhone
		row.TenantIDCard = in.TenantIDCard
		row.LandlordName = in.LandlordName
		row.LandlordPhone = in.LandlordPhone
		row.MonthlyRent = helper.Money(in.MonthlyRent)
		row.Deposit = helper.Money(in.Deposit)
		row.ContractStartDate = startDate
		row.ContractEndDate = endDate
		row.ContractDuration = in.ContractDuration
		row.PaymentMethod = in.PaymentMethod
		row.RentDueDate = dueDate
		row.Status = status
		row.UtilitiesIncluded = utilities
		row.WaterRate = helper.Money(in.WaterRate)
		row.ElectricityRate = helper.Money(in.ElectricityRate)
		row.ContractTerms = in.ContractTerms
		row.SpecialAgreement = in.SpecialAgreement
		row.Remarks = in.Remarks

		if err := tx.Save(row).Error; err != nil {
			return helper.MapWriteError(err, ErrDuplicateContract, "更新失败")
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ContractService) Delete(ctx context.Context, floor constants.Floor, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.find(tx, floor, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(row).Error; err != nil {
			return helper.Storage("删除失败", err)
		}
		return nil
	})
}

func (s *ContractService) List(ctx context.Context, floor constants.Floor, offset, limit int) ([]model.ContractModel, int64, error) {
	db := s.DB.WithContext(ctx).Model(&model.ContractModel{}).Where("floor = ?", floor)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, helper.Storage("查询失败", err)
	}
	var rows []model.ContractModel
	q := db.Order("id ASC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, helper.Storage("查询失败", err)
	}
	return rows, total, nil
}

// Bucket mengelompokkan satu kontrak relatif terhadap today.
func Bucket(status constants.ContractStatus, end *datatypes.Date, today datatypes.Date) string {
	if status != constants.ContractActive {
		return "expired"
	}
	if end == nil {
		return "active"
	}
	days := helper.DaysBetween(today, *end)
	switch {
	case days > ExpiringWindowDays:
		return "active"
	case days > 0:
		return "expiring"
	default:
		return "expired"
	}
}

func (s *ContractService) Stats(ctx context.Context, floor constants.Floor) (dto.ContractStats, error) {
	var rows []model.ContractModel
	err := s.DB.WithContext(ctx).
		Select("id", "contract_status", "contract_end_date").
		Where("floor = ?", floor).
		Find(&rows).Error
	if err != nil {
		return dto.ContractStats{}, helper.Storage("查询失败", err)
	}

	today := dbtime.Today(s.Clock)
	st := dto.ContractStats{Total: len(rows)}
	for _, r := range rows {
		switch Bucket(r.Status, r.ContractEndDate, today) {
		case "active":
			st.Active++
		case "expiring":
			st.Expiring++
		default:
			st.Expired++
		}
	}
	return st, nil
}

// ExpiringContract = satu baris pengingat dashboard.
type ExpiringContract struct {
	RoomNumber string `json:"room_number"`
	TenantName string `json:"tenant_name"`
	EndDate    string `json:"end_date"`
	DaysLeft   int    `json:"days_left"`
}

// Expiring: kontrak aktif dengan end date di [today, today+30]. Urutan = urutan query.
func (s *ContractService) Expiring(ctx context.Context, floor constants.Floor) ([]ExpiringContract, error) {
	today := dbtime.Today(s.Clock)
	limit := datatypes.Date(time.Time(today).AddDate(0, 0, ExpiringWindowDays))

	var rows []model.ContractModel
	err := s.DB.WithContext(ctx).
		Where("floor = ? AND contract_status = ?", floor, constants.ContractActive).
		Where("contract_end_date >= ? AND contract_end_date <= ?", today, limit).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, helper.Storage("查询失败", err)
	}

	out := make([]ExpiringContract, 0, len(rows))
	for _, r := range rows {
		out = append(out, ExpiringContract{
			RoomNumber: r.RoomNumber,
			TenantName: r.TenantName,
			EndDate:    helper.FormatDate(r.ContractEndDate),
			DaysLeft:   helper.DaysBetween(today, *r.ContractEndDate),
		})
	}
	return out, nil
}
