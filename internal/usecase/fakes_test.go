package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"medipay/internal/domain/access"
	"medipay/internal/domain/entities"
	"medipay/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	adminActor    = access.Actor{ID: "admin-1", Role: entities.UserRoleAdmin}
	patientActor  = access.Actor{ID: "patient-1", Role: entities.UserRolePatient}
	otherPatient  = access.Actor{ID: "patient-2", Role: entities.UserRolePatient}
	hospitalActor = access.Actor{ID: "owner-1", Role: entities.UserRoleHospital}
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// memStore keeps appointments and payments together so that Settle can
// commit both under one lock, like the real transactional stores.
type memStore struct {
	mu           sync.Mutex
	appointments map[string]entities.Appointment
	payments     map[string]entities.Payment
	settleErr    error
}

func newMemStore() *memStore {
	return &memStore{appointments: map[string]entities.Appointment{}, payments: map[string]entities.Payment{}}
}

type memAppointments struct{ s *memStore }

type memPayments struct{ s *memStore }

func (m memAppointments) Create(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.appointments[a.ID]; ok {
		return entities.Appointment{}, interfaces.ErrConditionFailed
	}
	m.s.appointments[a.ID] = a
	return a, nil
}

func (m memAppointments) GetByID(_ context.Context, id string) (entities.Appointment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.s.appointments[id], nil
}

func (m memAppointments) Update(_ context.Context, a entities.Appointment, expectedVersion int64) (entities.Appointment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	cur, ok := m.s.appointments[a.ID]
	if !ok || cur.Version != expectedVersion {
		return entities.Appointment{}, interfaces.ErrConditionFailed
	}
	a.Version = expectedVersion + 1
	m.s.appointments[a.ID] = a
	return a, nil
}

func (m memAppointments) List(_ context.Context) ([]entities.Appointment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	out := make([]entities.Appointment, 0, len(m.s.appointments))
	for _, a := range m.s.appointments {
		out = append(out, a)
	}
	return out, nil
}

func (m memPayments) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.payments[p.ID] = p
	return p, nil
}

func (m memPayments) GetByID(_ context.Context, id string) (entities.Payment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.s.payments[id], nil
}

func (m memPayments) GetByOrderID(_ context.Context, orderID string) (entities.Payment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, p := range m.s.payments {
		if p.GatewayOrderID == orderID {
			return p, nil
		}
	}
	return entities.Payment{}, nil
}

func (m memPayments) ListByAppointmentID(_ context.Context, appointmentID string) ([]entities.Payment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []entities.Payment
	for _, p := range m.s.payments {
		if p.AppointmentID == appointmentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m memPayments) ListByStatus(_ context.Context, status entities.PaymentStatus, from, to time.Time) ([]entities.Payment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []entities.Payment
	for _, p := range m.s.payments {
		if p.Status != status {
			continue
		}
		if !from.IsZero() && p.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && p.CreatedAt.After(to) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m memPayments) Settle(_ context.Context, s interfaces.Settlement) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.settleErr != nil {
		return m.s.settleErr
	}
	cur, ok := m.s.payments[s.Payment.ID]
	if !ok || cur.Status != entities.PaymentStatusPending {
		return interfaces.ErrConditionFailed
	}
	appt, ok := m.s.appointments[s.Appointment.ID]
	if !ok || appt.Version != s.ExpectedAppointmentVersion {
		return interfaces.ErrConditionFailed
	}
	m.s.payments[s.Payment.ID] = s.Payment
	m.s.appointments[s.Appointment.ID] = s.Appointment
	return nil
}

func (m memPayments) MarkFailed(_ context.Context, id, reason string, at time.Time) (entities.Payment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	p, ok := m.s.payments[id]
	if !ok || p.Status != entities.PaymentStatusPending {
		return entities.Payment{}, interfaces.ErrConditionFailed
	}
	p.Status = entities.PaymentStatusFailed
	p.FailureReason = reason
	p.UpdatedAt = at
	m.s.payments[id] = p
	return p, nil
}

type memCommission struct {
	mu sync.Mutex
	s  entities.CommissionSetting
}

func (m *memCommission) GetActive(_ context.Context) (entities.CommissionSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s, nil
}

func (m *memCommission) CreateIfAbsent(_ context.Context, s entities.CommissionSetting) (entities.CommissionSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.s.ID == "" {
		m.s = s
	}
	return m.s, nil
}

func (m *memCommission) Upsert(_ context.Context, percentage decimal.Decimal, at time.Time) (entities.CommissionSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.s.ID == "" {
		m.s = entities.NewDefaultCommissionSetting(at)
	}
	m.s.Percentage = percentage
	m.s.UpdatedAt = at
	return m.s, nil
}

type memDirectory struct {
	hospitals map[string]entities.Hospital
	users     map[string]entities.User
	enquiries int
}

func newMemDirectory() *memDirectory {
	return &memDirectory{
		hospitals: map[string]entities.Hospital{
			"hosp-1": {ID: "hosp-1", Name: "Apollo", City: "Chennai", Approved: true, OwnerID: "owner-1", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			"hosp-2": {ID: "hosp-2", Name: "Fortis", City: "Delhi", Approved: true, OwnerID: "owner-2", CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
			"hosp-3": {ID: "hosp-3", Name: "Pending Care", City: "Pune", Approved: false, OwnerID: "owner-3", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
		users: map[string]entities.User{
			"patient-1": {ID: "patient-1", Name: "Asha", Role: entities.UserRolePatient, Active: true},
			"patient-2": {ID: "patient-2", Name: "Ravi", Role: entities.UserRolePatient, Active: true},
		},
		enquiries: 2,
	}
}

func (d *memDirectory) GetHospital(_ context.Context, id string) (entities.Hospital, error) {
	return d.hospitals[id], nil
}

func (d *memDirectory) GetUser(_ context.Context, id string) (entities.User, error) {
	return d.users[id], nil
}

func (d *memDirectory) ListHospitals(_ context.Context) ([]entities.Hospital, error) {
	out := make([]entities.Hospital, 0, len(d.hospitals))
	for _, h := range d.hospitals {
		out = append(out, h)
	}
	return out, nil
}

func (d *memDirectory) CountPendingEnquiries(_ context.Context) (int, error) {
	return d.enquiries, nil
}

// stubGateway issues sequential order ids and accepts "sig:<order>|<payment>".
type stubGateway struct {
	mu        sync.Mutex
	n         int
	createErr error
	delay     time.Duration
	requests  []interfaces.GatewayOrderRequest
}

func stubSignature(orderID, paymentID string) string {
	return "sig:" + orderID + "|" + paymentID
}

func (g *stubGateway) CreateOrder(ctx context.Context, req interfaces.GatewayOrderRequest) (interfaces.GatewayOrder, error) {
	if g.delay > 0 {
		select {
		case <-ctx.Done():
			return interfaces.GatewayOrder{}, ctx.Err()
		case <-time.After(g.delay):
		}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return interfaces.GatewayOrder{}, g.createErr
	}
	g.n++
	g.requests = append(g.requests, req)
	return interfaces.GatewayOrder{OrderID: fmt.Sprintf("order_%d", g.n), Status: "created", Raw: []byte(`{}`)}, nil
}

func (g *stubGateway) VerifySignature(_ context.Context, orderID, paymentID, signature string) (bool, error) {
	return signature == stubSignature(orderID, paymentID), nil
}

type recordingEvents struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (r *recordingEvents) PublishJSON(_ context.Context, key string, _ any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, key)
	return r.err
}

func (r *recordingEvents) published(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, k := range r.keys {
		if k == key {
			n++
		}
	}
	return n
}

var errStore = errors.New("store unavailable")

// billingFixture wires the use cases over the in-memory store.
type billingFixture struct {
	store        *memStore
	directory    *memDirectory
	commissionDB *memCommission
	gateway      *stubGateway
	events       *recordingEvents
	appointments *AppointmentUseCase
	commission   *CommissionSettingsUseCase
	payments     *PaymentUseCase
	analytics    *AnalyticsUseCase
}

func newBillingFixture() *billingFixture {
	f := &billingFixture{
		store:        newMemStore(),
		directory:    newMemDirectory(),
		commissionDB: &memCommission{},
		gateway:      &stubGateway{},
		events:       &recordingEvents{},
	}
	appts := memAppointments{s: f.store}
	pays := memPayments{s: f.store}
	f.appointments = NewAppointmentUseCase(appts, f.directory, f.events)
	f.commission = NewCommissionSettingsUseCase(f.commissionDB)
	f.payments = NewPaymentUseCase(pays, appts, f.directory, f.commission, f.gateway, PaymentOptions{Events: f.events})
	f.analytics = NewAnalyticsUseCase(pays, appts, f.directory, time.UTC)
	return f
}

func (f *billingFixture) book(total string) entities.Appointment {
	a, err := f.appointments.Book(context.Background(), patientActor, BookAppointmentInput{
		PatientID:   patientActor.ID,
		HospitalID:  "hosp-1",
		Service:     "Cardiology consult",
		ScheduledAt: time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC),
		TotalAmount: dec(total),
	})
	if err != nil {
		panic(err)
	}
	return a
}
