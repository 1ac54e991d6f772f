package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"medipay/internal/domain/access"
	"medipay/internal/domain/entities"
	"medipay/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPeriod    = errors.New("invalid analytics period")
	ErrInvalidDateRange = errors.New("invalid date range")
)

const recentActivityLimit = 5

type RevenuePeriod string

const (
	RevenuePeriodWeek  RevenuePeriod = "week"
	RevenuePeriodMonth RevenuePeriod = "month"
	RevenuePeriodYear  RevenuePeriod = "year"
)

type BucketGranularity string

const (
	GranularityDay   BucketGranularity = "day"
	GranularityMonth BucketGranularity = "month"
)

var periodWindows = map[RevenuePeriod]struct {
	days        int
	granularity BucketGranularity
}{
	RevenuePeriodWeek:  {days: 7, granularity: GranularityDay},
	RevenuePeriodMonth: {days: 30, granularity: GranularityDay},
	RevenuePeriodYear:  {days: 365, granularity: GranularityMonth},
}

// IAnalyticsUseCase is the read-only revenue reporting surface for admins.
// Only SUCCESS payments count as revenue.
//
//   - GET /admin/dashboard => Dashboard()
//   - GET /admin/payments/tracking => PaymentTracking()
//   - GET /admin/hospitals/performance => HospitalPerformance()
//   - GET /admin/analytics/revenue => RevenueByPeriod()

type IAnalyticsUseCase interface {
	Dashboard(ctx context.Context, actor access.Actor) (Dashboard, error)
	PaymentTracking(ctx context.Context, actor access.Actor, q TrackingQuery) (PaymentTracking, error)
	HospitalPerformance(ctx context.Context, actor access.Actor) (HospitalPerformanceReport, error)
	RevenueByPeriod(ctx context.Context, actor access.Actor, period RevenuePeriod) (RevenueReport, error)
}

type Dashboard struct {
	TotalHospitals     int
	ApprovedHospitals  int
	PendingHospitals   int
	TotalAppointments  int
	SuccessfulPayments int
	PendingEnquiries   int
	TotalRevenue       decimal.Decimal
	TotalCommission    decimal.Decimal
	HospitalPayouts    decimal.Decimal
	RecentAppointments []AppointmentActivity
	RecentPayments     []entities.Payment
}

type AppointmentActivity struct {
	Appointment  entities.Appointment
	PatientName  string
	HospitalName string
}

// TrackingQuery filters the payment tracking report. Dates accept YYYY-MM-DD,
// YYYY-MM-DDTHH:MM:SS (analytics zone) or RFC 3339; a date-only EndDate covers
// that whole day. Empty fields are not applied.
type TrackingQuery struct {
	StartDate  string
	EndDate    string
	HospitalID string
}

type TrackedPayment struct {
	Payment              entities.Payment
	HospitalID           string
	HospitalName         string
	PatientName          string
	CommissionPercentage decimal.Decimal
}

type PaymentTracking struct {
	Payments            []TrackedPayment
	TotalPayments       int
	TotalAmount         decimal.Decimal
	TotalCommission     decimal.Decimal
	TotalHospitalPayout decimal.Decimal
	CommissionRate      decimal.Decimal
}

type HospitalPerformance struct {
	HospitalID        string
	HospitalName      string
	City              string
	AppointmentsCount int
	TotalRevenue      decimal.Decimal
	CommissionEarned  decimal.Decimal
	HospitalPayout    decimal.Decimal
}

type HospitalPerformanceReport struct {
	Hospitals       []HospitalPerformance
	TotalHospitals  int
	TotalRevenue    decimal.Decimal
	TotalCommission decimal.Decimal
}

type RevenueBucket struct {
	Label        string
	Start        time.Time
	Revenue      decimal.Decimal
	Commission   decimal.Decimal
	PaymentCount int
}

type RevenueReport struct {
	Period          RevenuePeriod
	Granularity     BucketGranularity
	StartDate       time.Time
	EndDate         time.Time
	Buckets         []RevenueBucket
	TotalRevenue    decimal.Decimal
	TotalCommission decimal.Decimal
	TotalPayments   int
}

type AnalyticsUseCase struct {
	payments     interfaces.IPaymentRepository
	appointments interfaces.IAppointmentRepository
	directory    interfaces.IDirectory
	loc          *time.Location
	now          func() time.Time
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

// NewAnalyticsUseCase builds the aggregator. Calendar buckets and date filters
// are evaluated in loc; nil means UTC.
func NewAnalyticsUseCase(payments interfaces.IPaymentRepository, appointments interfaces.IAppointmentRepository, directory interfaces.IDirectory, loc *time.Location) *AnalyticsUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsUseCase{payments: payments, appointments: appointments, directory: directory, loc: loc, now: utcNow}
}

func (u *AnalyticsUseCase) Dashboard(ctx context.Context, actor access.Actor) (Dashboard, error) {
	if err := access.AuthorizeRole(actor, access.CapViewAnalytics); err != nil {
		return Dashboard{}, err
	}

	hospitals, err := u.directory.ListHospitals(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	appointments, err := u.appointments.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	succeeded, err := u.payments.ListByStatus(ctx, entities.PaymentStatusSuccess, time.Time{}, time.Time{})
	if err != nil {
		return Dashboard{}, err
	}
	enquiries, err := u.directory.CountPendingEnquiries(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{
		TotalHospitals:     len(hospitals),
		TotalAppointments:  len(appointments),
		SuccessfulPayments: len(succeeded),
		PendingEnquiries:   enquiries,
		TotalRevenue:       decimal.Zero,
		TotalCommission:    decimal.Zero,
	}
	for _, h := range hospitals {
		if h.Approved {
			d.ApprovedHospitals++
		}
	}
	d.PendingHospitals = d.TotalHospitals - d.ApprovedHospitals

	for _, p := range succeeded {
		d.TotalRevenue = d.TotalRevenue.Add(p.TotalAmount)
		d.TotalCommission = d.TotalCommission.Add(p.AdminCommission)
	}
	// Payouts are re-derived from the totals rather than summed per row.
	d.HospitalPayouts = d.TotalRevenue.Sub(d.TotalCommission)

	sort.SliceStable(appointments, func(i, j int) bool { return appointments[i].CreatedAt.After(appointments[j].CreatedAt) })
	names := u.newNameResolver(hospitals)
	for i := 0; i < len(appointments) && i < recentActivityLimit; i++ {
		a := appointments[i]
		d.RecentAppointments = append(d.RecentAppointments, AppointmentActivity{
			Appointment:  a,
			PatientName:  names.patient(ctx, a.PatientID),
			HospitalName: names.hospital(a.HospitalID),
		})
	}

	sortPaymentsNewestFirst(succeeded)
	if len(succeeded) > recentActivityLimit {
		succeeded = succeeded[:recentActivityLimit]
	}
	d.RecentPayments = succeeded

	log.Printf("[analytics][usecase] dashboard hospitals=%d appointments=%d payments=%d revenue=%s",
		d.TotalHospitals, d.TotalAppointments, d.SuccessfulPayments, d.TotalRevenue)
	return d, nil
}

func (u *AnalyticsUseCase) PaymentTracking(ctx context.Context, actor access.Actor, q TrackingQuery) (PaymentTracking, error) {
	if err := access.AuthorizeRole(actor, access.CapViewAnalytics); err != nil {
		return PaymentTracking{}, err
	}

	from, err := u.parseBound(q.StartDate, false)
	if err != nil {
		return PaymentTracking{}, err
	}
	to, err := u.parseBound(q.EndDate, true)
	if err != nil {
		return PaymentTracking{}, err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return PaymentTracking{}, ErrInvalidDateRange
	}

	succeeded, err := u.payments.ListByStatus(ctx, entities.PaymentStatusSuccess, from, to)
	if err != nil {
		return PaymentTracking{}, err
	}
	appointments, err := u.appointmentIndex(ctx)
	if err != nil {
		return PaymentTracking{}, err
	}
	hospitals, err := u.directory.ListHospitals(ctx)
	if err != nil {
		return PaymentTracking{}, err
	}
	names := u.newNameResolver(hospitals)
	hospitalID := strings.TrimSpace(q.HospitalID)

	sortPaymentsNewestFirst(succeeded)
	res := PaymentTracking{
		TotalAmount:         decimal.Zero,
		TotalCommission:     decimal.Zero,
		TotalHospitalPayout: decimal.Zero,
		CommissionRate:      decimal.Zero,
	}
	for _, p := range succeeded {
		a := appointments[p.AppointmentID]
		if hospitalID != "" && a.HospitalID != hospitalID {
			continue
		}
		row := TrackedPayment{
			Payment:              p,
			HospitalID:           a.HospitalID,
			HospitalName:         unknownDirectoryDisplayName,
			PatientName:          unknownDirectoryDisplayName,
			CommissionPercentage: p.EffectiveCommissionPercentage(),
		}
		if a.ID != "" {
			row.HospitalName = names.hospital(a.HospitalID)
			row.PatientName = names.patient(ctx, a.PatientID)
		}
		res.Payments = append(res.Payments, row)
		res.TotalAmount = res.TotalAmount.Add(p.TotalAmount)
		res.TotalCommission = res.TotalCommission.Add(p.AdminCommission)
		res.TotalHospitalPayout = res.TotalHospitalPayout.Add(p.HospitalPayout)
	}
	res.TotalPayments = len(res.Payments)
	if res.TotalAmount.IsPositive() {
		res.CommissionRate = res.TotalCommission.Div(res.TotalAmount).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return res, nil
}

func (u *AnalyticsUseCase) HospitalPerformance(ctx context.Context, actor access.Actor) (HospitalPerformanceReport, error) {
	if err := access.AuthorizeRole(actor, access.CapViewAnalytics); err != nil {
		return HospitalPerformanceReport{}, err
	}

	hospitals, err := u.directory.ListHospitals(ctx)
	if err != nil {
		return HospitalPerformanceReport{}, err
	}
	appointments, err := u.appointmentIndex(ctx)
	if err != nil {
		return HospitalPerformanceReport{}, err
	}
	succeeded, err := u.payments.ListByStatus(ctx, entities.PaymentStatusSuccess, time.Time{}, time.Time{})
	if err != nil {
		return HospitalPerformanceReport{}, err
	}

	approved := make([]entities.Hospital, 0, len(hospitals))
	for _, h := range hospitals {
		if h.Approved {
			approved = append(approved, h)
		}
	}
	sort.SliceStable(approved, func(i, j int) bool {
		if !approved[i].CreatedAt.Equal(approved[j].CreatedAt) {
			return approved[i].CreatedAt.Before(approved[j].CreatedAt)
		}
		return approved[i].ID < approved[j].ID
	})

	byHospital := make(map[string]*HospitalPerformance, len(approved))
	rows := make([]HospitalPerformance, len(approved))
	for i, h := range approved {
		rows[i] = HospitalPerformance{
			HospitalID:       h.ID,
			HospitalName:     h.Name,
			City:             h.City,
			TotalRevenue:     decimal.Zero,
			CommissionEarned: decimal.Zero,
		}
		byHospital[h.ID] = &rows[i]
	}
	for _, a := range appointments {
		if row, ok := byHospital[a.HospitalID]; ok {
			row.AppointmentsCount++
		}
	}
	for _, p := range succeeded {
		row, ok := byHospital[appointments[p.AppointmentID].HospitalID]
		if !ok {
			continue
		}
		row.TotalRevenue = row.TotalRevenue.Add(p.TotalAmount)
		row.CommissionEarned = row.CommissionEarned.Add(p.AdminCommission)
	}

	report := HospitalPerformanceReport{TotalHospitals: len(rows), TotalRevenue: decimal.Zero, TotalCommission: decimal.Zero}
	for i := range rows {
		rows[i].HospitalPayout = rows[i].TotalRevenue.Sub(rows[i].CommissionEarned)
		report.TotalRevenue = report.TotalRevenue.Add(rows[i].TotalRevenue)
		report.TotalCommission = report.TotalCommission.Add(rows[i].CommissionEarned)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalRevenue.GreaterThan(rows[j].TotalRevenue) })
	report.Hospitals = rows
	return report, nil
}

// RevenueByPeriod buckets SUCCESS payments created in [now-N days, now].
// Every calendar day (week, month) or calendar month (year) the window touches
// gets exactly one bucket, zero-filled when it has no payments.
func (u *AnalyticsUseCase) RevenueByPeriod(ctx context.Context, actor access.Actor, period RevenuePeriod) (RevenueReport, error) {
	if err := access.AuthorizeRole(actor, access.CapViewAnalytics); err != nil {
		return RevenueReport{}, err
	}
	period = RevenuePeriod(strings.ToLower(strings.TrimSpace(string(period))))
	window, ok := periodWindows[period]
	if !ok {
		return RevenueReport{}, ErrInvalidPeriod
	}

	end := u.now().In(u.loc)
	start := end.AddDate(0, 0, -window.days)

	succeeded, err := u.payments.ListByStatus(ctx, entities.PaymentStatusSuccess, start, end)
	if err != nil {
		return RevenueReport{}, err
	}

	report := RevenueReport{
		Period:          period,
		Granularity:     window.granularity,
		StartDate:       start,
		EndDate:         end,
		TotalRevenue:    decimal.Zero,
		TotalCommission: decimal.Zero,
	}

	index := make(map[string]int)
	last := truncateTo(end, window.granularity)
	for cursor := truncateTo(start, window.granularity); !cursor.After(last); cursor = advance(cursor, window.granularity) {
		label := bucketLabel(cursor, window.granularity)
		index[label] = len(report.Buckets)
		report.Buckets = append(report.Buckets, RevenueBucket{Label: label, Start: cursor, Revenue: decimal.Zero, Commission: decimal.Zero})
	}

	for _, p := range succeeded {
		created := p.CreatedAt.In(u.loc)
		if created.Before(start) || created.After(end) {
			continue
		}
		i, ok := index[bucketLabel(created, window.granularity)]
		if !ok {
			continue
		}
		b := &report.Buckets[i]
		b.Revenue = b.Revenue.Add(p.TotalAmount)
		b.Commission = b.Commission.Add(p.AdminCommission)
		b.PaymentCount++
		report.TotalRevenue = report.TotalRevenue.Add(p.TotalAmount)
		report.TotalCommission = report.TotalCommission.Add(p.AdminCommission)
		report.TotalPayments++
	}

	log.Printf("[analytics][usecase] revenue period=%s buckets=%d payments=%d revenue=%s",
		period, len(report.Buckets), report.TotalPayments, report.TotalRevenue)
	return report, nil
}

func (u *AnalyticsUseCase) appointmentIndex(ctx context.Context) (map[string]entities.Appointment, error) {
	list, err := u.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]entities.Appointment, len(list))
	for _, a := range list {
		idx[a.ID] = a
	}
	return idx, nil
}

var trackingLayouts = []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05"}

func (u *AnalyticsUseCase) parseBound(raw string, endOfDay bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, raw, u.loc); err == nil {
		if endOfDay {
			return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
		}
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	for _, layout := range trackingLayouts {
		if t, err := time.ParseInLocation(layout, raw, u.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateRange
}

// nameResolver looks directory names up once per report.
type nameResolver struct {
	directory interfaces.IDirectory
	hospitals map[string]string
	patients  map[string]string
}

func (u *AnalyticsUseCase) newNameResolver(hospitals []entities.Hospital) *nameResolver {
	r := &nameResolver{directory: u.directory, hospitals: make(map[string]string, len(hospitals)), patients: map[string]string{}}
	for _, h := range hospitals {
		r.hospitals[h.ID] = h.Name
	}
	return r
}

func (r *nameResolver) hospital(id string) string {
	if name := r.hospitals[id]; name != "" {
		return name
	}
	return unknownDirectoryDisplayName
}

func (r *nameResolver) patient(ctx context.Context, id string) string {
	if name, ok := r.patients[id]; ok {
		return name
	}
	name := unknownDirectoryDisplayName
	if user, err := r.directory.GetUser(ctx, id); err != nil {
		log.Printf("[analytics][usecase] patient lookup failed patient_id=%s err=%v", id, err)
	} else if user.Name != "" {
		name = user.Name
	}
	r.patients[id] = name
	return name
}

func sortPaymentsNewestFirst(payments []entities.Payment) {
	sort.SliceStable(payments, func(i, j int) bool { return payments[i].CreatedAt.After(payments[j].CreatedAt) })
}

func truncateTo(t time.Time, g BucketGranularity) time.Time {
	if g == GranularityMonth {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func advance(t time.Time, g BucketGranularity) time.Time {
	if g == GranularityMonth {
		return t.AddDate(0, 1, 0)
	}
	return t.AddDate(0, 0, 1)
}

func bucketLabel(t time.Time, g BucketGranularity) string {
	if g == GranularityMonth {
		return t.Format("2006-01")
	}
	return t.Format(time.DateOnly)
}
