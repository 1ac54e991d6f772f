package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"medipay/internal/domain/access"
	"medipay/internal/domain/entities"
	"medipay/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// ICommissionSettingsUseCase is the commission config store: the only place
// split calculations read their rate from.
//
//   - GET /payments/commission-settings => GetActive()
//   - PUT /payments/commission-settings => Update()

type ICommissionSettingsUseCase interface {
	GetActive(ctx context.Context) (entities.CommissionSetting, error)
	Update(ctx context.Context, actor access.Actor, percentage decimal.Decimal) (entities.CommissionSetting, error)
}

type CommissionSettingsUseCase struct {
	repo interfaces.ICommissionSettingRepository
	now  func() time.Time
}

var _ ICommissionSettingsUseCase = (*CommissionSettingsUseCase)(nil)

func NewCommissionSettingsUseCase(repo interfaces.ICommissionSettingRepository) *CommissionSettingsUseCase {
	return &CommissionSettingsUseCase{repo: repo, now: utcNow}
}

// GetActive returns the active setting, persisting the 10% default the first
// time it is read.
func (u *CommissionSettingsUseCase) GetActive(ctx context.Context) (entities.CommissionSetting, error) {
	if u.repo == nil {
		return entities.CommissionSetting{}, errors.New("commission repository not configured")
	}
	s, err := u.repo.GetActive(ctx)
	if err != nil {
		return entities.CommissionSetting{}, err
	}
	if s.ID != "" {
		return s, nil
	}

	log.Printf("[commission][usecase] no active setting; creating default percentage=%s", entities.DefaultCommissionPercentage)
	return u.repo.CreateIfAbsent(ctx, entities.NewDefaultCommissionSetting(u.now()))
}

// Update changes the rate for orders created from now on. Existing payments
// keep the split they were created with.
func (u *CommissionSettingsUseCase) Update(ctx context.Context, actor access.Actor, percentage decimal.Decimal) (entities.CommissionSetting, error) {
	if err := access.AuthorizeRole(actor, access.CapManageCommission); err != nil {
		return entities.CommissionSetting{}, err
	}
	if err := entities.ValidatePercentage(percentage); err != nil {
		return entities.CommissionSetting{}, err
	}

	updated, err := u.repo.Upsert(ctx, percentage, u.now())
	if err != nil {
		log.Printf("[commission][usecase] upsert failed percentage=%s err=%v", percentage, err)
		return entities.CommissionSetting{}, err
	}
	log.Printf("[commission][usecase] updated percentage=%s actor_id=%s", updated.Percentage, actor.ID)
	return updated, nil
}
