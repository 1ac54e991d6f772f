package request

// TrackingQuery binds the filters of GET /admin/payments/tracking.
type TrackingQuery struct {
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	HospitalID string `form:"hospital_id"`
}

// RevenueQuery binds GET /admin/analytics/revenue. Period defaults to month.
type RevenueQuery struct {
	Period string `form:"period"`
}

func (q RevenueQuery) ResolvePeriod() string {
	if q.Period == "" {
		return "month"
	}
	return q.Period
}
