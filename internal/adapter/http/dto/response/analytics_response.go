package response

import (
	"time"

	"medipay/internal/usecase"
)

type DashboardOverview struct {
	TotalHospitals    int `json:"total_hospitals"`
	ApprovedHospitals int `json:"approved_hospitals"`
	PendingHospitals  int `json:"pending_hospitals"`
	TotalAppointments int `json:"total_appointments"`
	TotalPayments     int `json:"total_payments"`
	PendingEnquiries  int `json:"pending_enquiries"`
}

type DashboardFinancials struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCommission float64 `json:"total_commission"`
	HospitalPayouts float64 `json:"hospital_payouts"`
}

type RecentAppointment struct {
	ID              string    `json:"id"`
	PatientName     string    `json:"patient_name"`
	HospitalName    string    `json:"hospital_name"`
	Service         string    `json:"service_name"`
	AppointmentDate time.Time `json:"appointment_date"`
	Status          string    `json:"status"`
}

type RecentPayment struct {
	ID              string    `json:"id"`
	AppointmentID   string    `json:"appointment_id"`
	TotalAmount     float64   `json:"total_amount"`
	AdminCommission float64   `json:"admin_commission"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type RecentActivity struct {
	RecentAppointments []RecentAppointment `json:"recent_appointments"`
	RecentPayments     []RecentPayment     `json:"recent_payments"`
}

type DashboardResponse struct {
	Overview       DashboardOverview   `json:"overview"`
	Financials     DashboardFinancials `json:"financials"`
	RecentActivity RecentActivity      `json:"recent_activity"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	res := DashboardResponse{
		Overview: DashboardOverview{
			TotalHospitals:    d.TotalHospitals,
			ApprovedHospitals: d.ApprovedHospitals,
			PendingHospitals:  d.PendingHospitals,
			TotalAppointments: d.TotalAppointments,
			TotalPayments:     d.SuccessfulPayments,
			PendingEnquiries:  d.PendingEnquiries,
		},
		Financials: DashboardFinancials{
			TotalRevenue:    d.TotalRevenue.InexactFloat64(),
			TotalCommission: d.TotalCommission.InexactFloat64(),
			HospitalPayouts: d.HospitalPayouts.InexactFloat64(),
		},
		RecentActivity: RecentActivity{
			RecentAppointments: make([]RecentAppointment, 0, len(d.RecentAppointments)),
			RecentPayments:     make([]RecentPayment, 0, len(d.RecentPayments)),
		},
	}
	for _, a := range d.RecentAppointments {
		res.RecentActivity.RecentAppointments = append(res.RecentActivity.RecentAppointments, RecentAppointment{
			ID:              a.Appointment.ID,
			PatientName:     a.PatientName,
			HospitalName:    a.HospitalName,
			Service:         a.Appointment.Service,
			AppointmentDate: a.Appointment.ScheduledAt,
			Status:          string(a.Appointment.Status),
		})
	}
	for _, p := range d.RecentPayments {
		res.RecentActivity.RecentPayments = append(res.RecentActivity.RecentPayments, RecentPayment{
			ID:              p.ID,
			AppointmentID:   p.AppointmentID,
			TotalAmount:     p.TotalAmount.InexactFloat64(),
			AdminCommission: p.AdminCommission.InexactFloat64(),
			Status:          string(p.Status),
			CreatedAt:       p.CreatedAt,
		})
	}
	return res
}

type TrackingSummary struct {
	TotalPayments       int     `json:"total_payments"`
	TotalAmount         float64 `json:"total_amount"`
	TotalCommission     float64 `json:"total_commission"`
	TotalHospitalPayout float64 `json:"total_hospital_payout"`
	CommissionRate      float64 `json:"commission_rate"`
}

type TrackedPaymentResponse struct {
	ID                   string    `json:"id"`
	AppointmentID        string    `json:"appointment_id"`
	HospitalID           string    `json:"hospital_id"`
	HospitalName         string    `json:"hospital_name"`
	PatientName          string    `json:"patient_name"`
	TotalAmount          float64   `json:"total_amount"`
	AdminCommission      float64   `json:"admin_commission"`
	HospitalPayout       float64   `json:"hospital_payout"`
	CommissionPercentage float64   `json:"commission_percentage"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
}

type TrackingResponse struct {
	Summary  TrackingSummary          `json:"summary"`
	Payments []TrackedPaymentResponse `json:"payments"`
}

func FromTracking(t usecase.PaymentTracking) TrackingResponse {
	res := TrackingResponse{
		Summary: TrackingSummary{
			TotalPayments:       t.TotalPayments,
			TotalAmount:         t.TotalAmount.InexactFloat64(),
			TotalCommission:     t.TotalCommission.InexactFloat64(),
			TotalHospitalPayout: t.TotalHospitalPayout.InexactFloat64(),
			CommissionRate:      t.CommissionRate.InexactFloat64(),
		},
		Payments: make([]TrackedPaymentResponse, 0, len(t.Payments)),
	}
	for _, tp := range t.Payments {
		res.Payments = append(res.Payments, TrackedPaymentResponse{
			ID:                   tp.Payment.ID,
			AppointmentID:        tp.Payment.AppointmentID,
			HospitalID:           tp.HospitalID,
			HospitalName:         tp.HospitalName,
			PatientName:          tp.PatientName,
			TotalAmount:          tp.Payment.TotalAmount.InexactFloat64(),
			AdminCommission:      tp.Payment.AdminCommission.InexactFloat64(),
			HospitalPayout:       tp.Payment.HospitalPayout.InexactFloat64(),
			CommissionPercentage: tp.CommissionPercentage.InexactFloat64(),
			Status:               string(tp.Payment.Status),
			CreatedAt:            tp.Payment.CreatedAt,
		})
	}
	return res
}

type HospitalPerformanceResponse struct {
	HospitalID        string  `json:"hospital_id"`
	HospitalName      string  `json:"hospital_name"`
	City              string  `json:"city"`
	AppointmentsCount int     `json:"total_appointments"`
	TotalRevenue      float64 `json:"total_revenue"`
	CommissionEarned  float64 `json:"commission_earned"`
	HospitalPayout    float64 `json:"hospital_payout"`
}

type PerformanceSummary struct {
	TotalHospitals  int     `json:"total_hospitals"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCommission float64 `json:"total_commission"`
}

type PerformanceResponse struct {
	Hospitals []HospitalPerformanceResponse `json:"hospitals"`
	Summary   PerformanceSummary            `json:"summary"`
}

func FromPerformance(r usecase.HospitalPerformanceReport) PerformanceResponse {
	res := PerformanceResponse{
		Hospitals: make([]HospitalPerformanceResponse, 0, len(r.Hospitals)),
		Summary: PerformanceSummary{
			TotalHospitals:  r.TotalHospitals,
			TotalRevenue:    r.TotalRevenue.InexactFloat64(),
			TotalCommission: r.TotalCommission.InexactFloat64(),
		},
	}
	for _, h := range r.Hospitals {
		res.Hospitals = append(res.Hospitals, HospitalPerformanceResponse{
			HospitalID:        h.HospitalID,
			HospitalName:      h.HospitalName,
			City:              h.City,
			AppointmentsCount: h.AppointmentsCount,
			TotalRevenue:      h.TotalRevenue.InexactFloat64(),
			CommissionEarned:  h.CommissionEarned.InexactFloat64(),
			HospitalPayout:    h.HospitalPayout.InexactFloat64(),
		})
	}
	return res
}

type RevenuePoint struct {
	Date         string  `json:"date"`
	Revenue      float64 `json:"revenue"`
	Commission   float64 `json:"commission"`
	PaymentCount int     `json:"payment_count"`
}

type RevenueSummary struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCommission float64 `json:"total_commission"`
	TotalPayments   int     `json:"total_payments"`
}

type RevenueResponse struct {
	Period      string         `json:"period"`
	Granularity string         `json:"granularity"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	Data        []RevenuePoint `json:"data"`
	Summary     RevenueSummary `json:"summary"`
}

func FromRevenue(r usecase.RevenueReport) RevenueResponse {
	res := RevenueResponse{
		Period:      string(r.Period),
		Granularity: string(r.Granularity),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Data:        make([]RevenuePoint, 0, len(r.Buckets)),
		Summary: RevenueSummary{
			TotalRevenue:    r.TotalRevenue.InexactFloat64(),
			TotalCommission: r.TotalCommission.InexactFloat64(),
			TotalPayments:   r.TotalPayments,
		},
	}
	for _, b := range r.Buckets {
		res.Data = append(res.Data, RevenuePoint{
			Date:         b.Label,
			Revenue:      b.Revenue.InexactFloat64(),
			Commission:   b.Commission.InexactFloat64(),
			PaymentCount: b.PaymentCount,
		})
	}
	return res
}
