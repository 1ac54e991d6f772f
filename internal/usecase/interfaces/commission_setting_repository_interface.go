package interfaces

//go:generate mockgen -source=commission_setting_repository_interface.go -destination=mocks/mock_commission_setting_repository_interface.go -package=mock_interfaces

import (
	"context"
	"time"

	"medipay/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ICommissionSettingRepository owns the single active commission row.
//
// GetActive returns a zero CommissionSetting when the row does not exist yet.
// CreateIfAbsent inserts s unless a row exists and returns whichever row is
// stored afterwards. Upsert replaces the percentage in a single write.

type ICommissionSettingRepository interface {
	GetActive(ctx context.Context) (entities.CommissionSetting, error)
	CreateIfAbsent(ctx context.Context, s entities.CommissionSetting) (entities.CommissionSetting, error)
	Upsert(ctx context.Context, percentage decimal.Decimal, at time.Time) (entities.CommissionSetting, error)
}
