package response

import (
	"testing"
	"time"

	"medipay/internal/domain/entities"
	"medipay/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromAppointment(t *testing.T) {
	now := time.Now().UTC()
	a := entities.Appointment{
		ID:          "a1",
		PatientID:   "p1",
		HospitalID:  "h1",
		Service:     "X-ray",
		ScheduledAt: now,
		Status:      entities.AppointmentStatusConfirmed,
		TotalAmount: decimal.RequireFromString("500.00"),
		PaidAmount:  decimal.RequireFromString("200.00"),
	}

	res := FromAppointment(a)
	if res.Status != "CONFIRMED" || res.PaidAmount != 200 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.TotalAmount == nil || *res.TotalAmount != 500 || res.OutstandingAmount == nil || *res.OutstandingAmount != 300 {
		t.Fatalf("unexpected totals: %+v", res)
	}

	a.TotalAmount = decimal.Zero
	if res := FromAppointment(a); res.TotalAmount != nil || res.OutstandingAmount != nil {
		t.Fatalf("expected no total when unknown, got %+v", res)
	}
}

func TestFromOrderResult(t *testing.T) {
	split := entities.CommissionSplit{
		AdminCommission:      decimal.RequireFromString("50.00"),
		HospitalPayout:       decimal.RequireFromString("450.00"),
		CommissionPercentage: decimal.NewFromInt(10),
	}

	full := FromOrderResult(usecase.OrderResult{PaymentID: "p1", OrderID: "o1", Kind: entities.PaymentKindFull, Amount: decimal.RequireFromString("500.00"), Currency: "INR", Split: split})
	if full.Amount != 500 || full.PartialAmount != nil || full.RemainingAmount != nil {
		t.Fatalf("unexpected full order: %+v", full)
	}
	if full.CommissionSplit.AdminCommission != 50 || full.CommissionSplit.HospitalPayout != 450 || full.CommissionSplit.CommissionPercentage != 10 {
		t.Fatalf("unexpected split: %+v", full.CommissionSplit)
	}

	partial := FromOrderResult(usecase.OrderResult{Kind: entities.PaymentKindPartial, Amount: decimal.RequireFromString("200.00"), RemainingAmount: decimal.RequireFromString("300.00"), Split: split})
	if partial.PartialAmount == nil || *partial.PartialAmount != 200 || partial.RemainingAmount == nil || *partial.RemainingAmount != 300 {
		t.Fatalf("unexpected partial order: %+v", partial)
	}
}

func TestFromRevenue(t *testing.T) {
	res := FromRevenue(usecase.RevenueReport{
		Period:      usecase.RevenuePeriodYear,
		Granularity: usecase.GranularityMonth,
		Buckets: []usecase.RevenueBucket{
			{Label: "2030-01", Revenue: decimal.RequireFromString("1800"), Commission: decimal.RequireFromString("230"), PaymentCount: 4},
		},
		TotalRevenue:    decimal.RequireFromString("1800"),
		TotalCommission: decimal.RequireFromString("230"),
		TotalPayments:   4,
	})
	if res.Period != "year" || res.Granularity != "month" || len(res.Data) != 1 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Data[0].Date != "2030-01" || res.Data[0].Revenue != 1800 || res.Summary.TotalPayments != 4 {
		t.Fatalf("unexpected data: %+v", res)
	}
}

func TestFromDashboard_EmptyListsRenderAsArrays(t *testing.T) {
	res := FromDashboard(usecase.Dashboard{})
	if res.RecentActivity.RecentAppointments == nil || res.RecentActivity.RecentPayments == nil {
		t.Fatalf("expected empty slices, got %+v", res.RecentActivity)
	}
}
