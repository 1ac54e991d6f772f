package response

import (
	"time"

	"medipay/internal/domain/entities"
)

type CommissionSettingResponse struct {
	Message              string    `json:"message,omitempty"`
	CommissionPercentage float64   `json:"commission_percentage"`
	Description          string    `json:"description"`
	IsActive             bool      `json:"is_active"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromCommissionSetting(s entities.CommissionSetting) CommissionSettingResponse {
	return CommissionSettingResponse{
		CommissionPercentage: s.Percentage.InexactFloat64(),
		Description:          s.Description,
		IsActive:             s.Active,
		UpdatedAt:            s.UpdatedAt,
	}
}
