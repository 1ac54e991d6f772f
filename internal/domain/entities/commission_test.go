package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSplitPayment(t *testing.T) {
	cases := []struct {
		name       string
		total      string
		percent    string
		commission string
		payout     string
	}{
		{name: "ten percent", total: "1000.00", percent: "10", commission: "100.00", payout: "900.00"},
		{name: "five hundred", total: "500.00", percent: "10", commission: "50.00", payout: "450.00"},
		{name: "rounds half up", total: "0.05", percent: "10", commission: "0.01", payout: "0.04"},
		{name: "fractional percent", total: "999.99", percent: "12.5", commission: "125.00", payout: "874.99"},
		{name: "zero percent", total: "250.00", percent: "0", commission: "0", payout: "250.00"},
		{name: "hundred percent", total: "250.00", percent: "100", commission: "250.00", payout: "0"},
		{name: "odd cents", total: "33.33", percent: "33.33", commission: "11.11", payout: "22.22"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := SplitPayment(d(tc.total), d(tc.percent))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !s.AdminCommission.Equal(d(tc.commission)) || !s.HospitalPayout.Equal(d(tc.payout)) {
				t.Fatalf("expected %s/%s, got %s/%s", tc.commission, tc.payout, s.AdminCommission, s.HospitalPayout)
			}
			if !s.AdminCommission.Add(s.HospitalPayout).Equal(d(tc.total)) {
				t.Fatalf("split does not sum to total")
			}
			if !s.CommissionPercentage.Equal(d(tc.percent)) {
				t.Fatalf("percentage not carried")
			}
		})
	}
}

func TestSplitPayment_SumInvariant(t *testing.T) {
	for cents := int64(1); cents <= 5000; cents += 37 {
		total := decimal.New(cents, -2)
		for _, p := range []string{"0", "0.01", "7.5", "10", "15", "33.33", "99.99", "100"} {
			s, err := SplitPayment(total, d(p))
			if err != nil {
				t.Fatalf("unexpected error for %s @ %s: %v", total, p, err)
			}
			if !s.AdminCommission.Add(s.HospitalPayout).Equal(total) {
				t.Fatalf("sum mismatch for %s @ %s", total, p)
			}
			if !s.AdminCommission.Equal(s.AdminCommission.Round(2)) {
				t.Fatalf("commission has more than 2 places: %s", s.AdminCommission)
			}
			if s.AdminCommission.IsNegative() || s.HospitalPayout.IsNegative() {
				t.Fatalf("negative share for %s @ %s", total, p)
			}
		}
	}
}

func TestSplitPayment_Errors(t *testing.T) {
	for _, tc := range []struct {
		total, percent string
		want           error
	}{
		{"0", "10", ErrInvalidAmount},
		{"-10", "10", ErrInvalidAmount},
		{"10.005", "10", ErrInvalidAmount},
		{"10", "-1", ErrInvalidPercentage},
		{"10", "100.01", ErrInvalidPercentage},
		{"10", "12.345", ErrInvalidPercentage},
	} {
		if _, err := SplitPayment(d(tc.total), d(tc.percent)); !errors.Is(err, tc.want) {
			t.Fatalf("SplitPayment(%s, %s): expected %v, got %v", tc.total, tc.percent, tc.want, err)
		}
	}
}

func TestValidatePercentage(t *testing.T) {
	for _, p := range []string{"0", "0.01", "12.5", "12.34", "100", "100.00"} {
		if err := ValidatePercentage(d(p)); err != nil {
			t.Fatalf("expected %s to be accepted, got %v", p, err)
		}
	}
	for _, p := range []string{"12.345", "0.001", "99.999", "-0.01", "100.001"} {
		if err := ValidatePercentage(d(p)); !errors.Is(err, ErrInvalidPercentage) {
			t.Fatalf("expected %s to be rejected, got %v", p, err)
		}
	}
}

func TestValidateTotal(t *testing.T) {
	for _, v := range []string{"0", "0.01", "100.00", "100.5"} {
		if err := ValidateTotal(d(v)); err != nil {
			t.Fatalf("expected %s to be accepted, got %v", v, err)
		}
	}
	for _, v := range []string{"-1", "100.005", "0.001"} {
		if err := ValidateTotal(d(v)); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected %s to be rejected, got %v", v, err)
		}
	}
}

func TestToMinorUnits(t *testing.T) {
	if got := ToMinorUnits(d("500.00")); got != 50000 {
		t.Fatalf("expected 50000, got %d", got)
	}
	if got := ToMinorUnits(d("0.01")); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}
