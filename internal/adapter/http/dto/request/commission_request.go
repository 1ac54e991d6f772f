package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrMissingPercentage = errors.New("commission percentage is required")

// UpdateCommissionRequest is the payload of PUT /payments/commission-settings.
// `commission_percentage` may also arrive as a query parameter.
type UpdateCommissionRequest struct {
	Percentage           *decimal.Decimal `json:"percentage"`
	CommissionPercentage *decimal.Decimal `json:"commission_percentage"`
}

func (r UpdateCommissionRequest) Resolve(query string) (decimal.Decimal, error) {
	switch {
	case r.Percentage != nil:
		return *r.Percentage, nil
	case r.CommissionPercentage != nil:
		return *r.CommissionPercentage, nil
	}
	if q := strings.TrimSpace(query); q != "" {
		p, err := decimal.NewFromString(q)
		if err != nil {
			return decimal.Zero, ErrMissingPercentage
		}
		return p, nil
	}
	return decimal.Zero, ErrMissingPercentage
}
