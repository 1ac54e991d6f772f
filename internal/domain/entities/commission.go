package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidPercentage = errors.New("invalid commission percentage")
)

const (
	// ActiveCommissionSettingID is the key of the single commission row.
	ActiveCommissionSettingID = "active"
	moneyPlaces               = 2
)

var (
	DefaultCommissionPercentage = decimal.NewFromInt(10)
	hundred                     = decimal.NewFromInt(100)
)

// CommissionSetting holds the commission percentage used to split new orders.
//
// Storage model: a single row keyed by ActiveCommissionSettingID, updated in place.
type CommissionSetting struct {
	ID          string          `json:"id"`
	Percentage  decimal.Decimal `json:"commission_percentage"`
	Active      bool            `json:"is_active"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewDefaultCommissionSetting(now time.Time) CommissionSetting {
	return CommissionSetting{
		ID:          ActiveCommissionSettingID,
		Percentage:  DefaultCommissionPercentage,
		Active:      true,
		Description: "Default platform commission",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CommissionSplit is the division of a payment between the platform operator
// and the hospital.
type CommissionSplit struct {
	AdminCommission      decimal.Decimal `json:"admin_commission"`
	HospitalPayout       decimal.Decimal `json:"hospital_payout"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
}

// ValidatePercentage accepts 0..100 with at most two decimal places, the
// precision the setting is stored with.
func ValidatePercentage(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return ErrInvalidPercentage
	}
	if !percent.Equal(percent.Truncate(moneyPlaces)) {
		return ErrInvalidPercentage
	}
	return nil
}

// ValidateAmount rejects non-positive amounts and amounts finer than the
// currency's minor unit.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(moneyPlaces)) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateTotal checks an appointment total. Zero means the total is not known
// yet.
func ValidateTotal(total decimal.Decimal) error {
	if total.IsZero() {
		return nil
	}
	return ValidateAmount(total)
}

// SplitPayment computes the operator commission rounded half-up to 2 places and
// derives the hospital payout by subtraction, so the two always sum to total.
func SplitPayment(total, percent decimal.Decimal) (CommissionSplit, error) {
	if err := ValidateAmount(total); err != nil {
		return CommissionSplit{}, err
	}
	if err := ValidatePercentage(percent); err != nil {
		return CommissionSplit{}, err
	}

	commission := total.Mul(percent).Div(hundred).Round(moneyPlaces)
	return CommissionSplit{
		AdminCommission:      commission,
		HospitalPayout:       total.Sub(commission),
		CommissionPercentage: percent,
	}, nil
}

// ToMinorUnits converts an amount to paise.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(moneyPlaces).Round(0).IntPart()
}
