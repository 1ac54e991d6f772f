package gormrepo

import (
	"context"
	"errors"
	"time"

	"medipay/internal/domain/entities"
	"medipay/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommissionSettingRepo struct{ db *gorm.DB }

var _ interfaces.ICommissionSettingRepository = (*CommissionSettingRepo)(nil)

func NewCommissionSettingRepo(db *gorm.DB) *CommissionSettingRepo {
	return &CommissionSettingRepo{db: db}
}

func (r *CommissionSettingRepo) GetActive(ctx context.Context) (entities.CommissionSetting, error) {
	var m commissionSettingModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", entities.ActiveCommissionSettingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.CommissionSetting{}, nil
	}
	if err != nil {
		return entities.CommissionSetting{}, err
	}
	return m.toEntity(), nil
}

func (r *CommissionSettingRepo) CreateIfAbsent(ctx context.Context, s entities.CommissionSetting) (entities.CommissionSetting, error) {
	m := commissionSettingModel{
		ID:          entities.ActiveCommissionSettingID,
		Percentage:  s.Percentage,
		Active:      s.Active,
		Description: s.Description,
		CreatedAt:   s.CreatedAt.UTC(),
		UpdatedAt:   s.UpdatedAt.UTC(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error
	if err != nil {
		return entities.CommissionSetting{}, err
	}
	return r.GetActive(ctx)
}

// Upsert is a single INSERT ... ON CONFLICT statement, so concurrent readers
// see either the old or the new row.
func (r *CommissionSettingRepo) Upsert(ctx context.Context, percentage decimal.Decimal, at time.Time) (entities.CommissionSetting, error) {
	m := commissionSettingModel{
		ID:          entities.ActiveCommissionSettingID,
		Percentage:  percentage,
		Active:      true,
		Description: "Platform commission",
		CreatedAt:   at.UTC(),
		UpdatedAt:   at.UTC(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"commission_percentage", "is_active", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return entities.CommissionSetting{}, err
	}
	return r.GetActive(ctx)
}
