package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"medipay/internal/domain/access"
	"medipay/internal/domain/entities"
	"medipay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrInvalidPaymentID         = errors.New("invalid payment id")
	ErrInvalidVerification      = errors.New("invalid verification payload")
	ErrSignatureInvalid         = errors.New("payment signature verification failed")
	ErrAlreadyVerified          = errors.New("payment already verified")
	ErrPaymentNotPending        = errors.New("payment is no longer pending")
	ErrVerificationInProgress   = errors.New("payment verification already in progress")
	ErrPaymentGatewayFailure    = errors.New("payment gateway error")
	ErrPaymentGatewayNotSet     = errors.New("payment gateway not configured")
	ErrAppointmentNotPayable    = errors.New("appointment does not accept payments")
	ErrAppointmentTotalUnknown  = errors.New("appointment has no known total amount")
	ErrAmountExceedsOutstanding = errors.New("payment exceeds the outstanding appointment balance")
	ErrInvalidExpiryThreshold   = errors.New("invalid pending payment expiry threshold")
	defaultGatewayTimeout       = 10 * time.Second
	defaultVerificationLockTTL  = 30 * time.Second
	receiptMaxLength            = 40
	unknownDirectoryDisplayName = "Unknown"
)

var tracer = otel.Tracer("medipay/usecase")

// IPaymentUseCase orchestrates gateway orders, partial payments and payment
// verification.
//
//   - POST /payments/create-order => CreateOrder()
//   - POST /payments/initiate-partial => InitiatePartial()
//   - POST /payments/verify => Verify()
//   - GET /payments/{id}, /payments/status/{id} => GetByID()
//   - GET /payments/appointment/{id} => GetLatestByAppointmentID()

type IPaymentUseCase interface {
	CreateOrder(ctx context.Context, actor access.Actor, appointmentID string, amount decimal.Decimal) (OrderResult, error)
	InitiatePartial(ctx context.Context, actor access.Actor, appointmentID string, partialAmount decimal.Decimal) (OrderResult, error)
	Verify(ctx context.Context, actor access.Actor, in VerifyPaymentInput) (VerificationResult, error)
	GetByID(ctx context.Context, actor access.Actor, id string) (entities.Payment, error)
	GetLatestByAppointmentID(ctx context.Context, actor access.Actor, appointmentID string) (entities.Payment, error)
	ExpireStalePending(ctx context.Context, actor access.Actor, olderThan time.Duration) (int, error)
}

// OrderResult is returned to the caller once a gateway order is open.
// RemainingAmount is only meaningful for partial payments and is not persisted.
type OrderResult struct {
	PaymentID       string
	AppointmentID   string
	OrderID         string
	Kind            entities.PaymentKind
	Amount          decimal.Decimal
	Currency        string
	Split           entities.CommissionSplit
	RemainingAmount decimal.Decimal
}

type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

type VerificationResult struct {
	Payment              entities.Payment
	Appointment          entities.Appointment
	CommissionPercentage decimal.Decimal
}

// PaymentOptions carries the optional collaborators of the orchestrator.
// Zero values fall back to defaults; nil Events/Lock disable those features.
type PaymentOptions struct {
	GatewayTimeout      time.Duration
	VerificationLockTTL time.Duration
	Events              interfaces.IEventPublisher
	Lock                interfaces.IVerificationLock
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	appointments interfaces.IAppointmentRepository
	directory    interfaces.IDirectory
	commission   ICommissionSettingsUseCase
	gateway      interfaces.IPaymentGateway
	events       interfaces.IEventPublisher
	lock         interfaces.IVerificationLock

	gatewayTimeout time.Duration
	lockTTL        time.Duration
	now            func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	appointments interfaces.IAppointmentRepository,
	directory interfaces.IDirectory,
	commission ICommissionSettingsUseCase,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
) *PaymentUseCase {
	u := &PaymentUseCase{
		repo:           repo,
		appointments:   appointments,
		directory:      directory,
		commission:     commission,
		gateway:        gateway,
		events:         opts.Events,
		lock:           opts.Lock,
		gatewayTimeout: opts.GatewayTimeout,
		lockTTL:        opts.VerificationLockTTL,
		now:            utcNow,
	}
	if u.gatewayTimeout <= 0 {
		u.gatewayTimeout = defaultGatewayTimeout
	}
	if u.lockTTL <= 0 {
		u.lockTTL = defaultVerificationLockTTL
	}
	return u
}

func (u *PaymentUseCase) CreateOrder(ctx context.Context, actor access.Actor, appointmentID string, amount decimal.Decimal) (OrderResult, error) {
	return u.openOrder(ctx, actor, appointmentID, amount, entities.PaymentKindFull)
}

func (u *PaymentUseCase) InitiatePartial(ctx context.Context, actor access.Actor, appointmentID string, partialAmount decimal.Decimal) (OrderResult, error) {
	return u.openOrder(ctx, actor, appointmentID, partialAmount, entities.PaymentKindPartial)
}

func (u *PaymentUseCase) openOrder(ctx context.Context, actor access.Actor, appointmentID string, amount decimal.Decimal, kind entities.PaymentKind) (res OrderResult, err error) {
	ctx, span := tracer.Start(ctx, "PaymentUseCase.openOrder", trace.WithAttributes(
		attribute.String("appointment.id", appointmentID),
		attribute.String("payment.kind", string(kind)),
	))
	defer func() { endSpan(span, err) }()

	appointmentID = strings.TrimSpace(appointmentID)
	log.Printf("[payment][usecase] create-order start appointment_id=%s kind=%s amount=%s", appointmentID, kind, amount)
	if appointmentID == "" {
		return OrderResult{}, ErrInvalidAppointmentID
	}

	appt, err := u.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading appointment appointment_id=%s err=%v", appointmentID, err)
		return OrderResult{}, err
	}
	if appt.ID == "" {
		log.Printf("[payment][usecase] appointment not found appointment_id=%s", appointmentID)
		return OrderResult{}, ErrAppointmentNotFound
	}
	if err := entities.ValidateAmount(amount); err != nil {
		log.Printf("[payment][usecase] invalid amount appointment_id=%s amount=%s", appointmentID, amount)
		return OrderResult{}, err
	}
	if err := access.Authorize(actor, access.CapPayAppointment, appt.PatientID); err != nil {
		return OrderResult{}, err
	}
	if !appt.Status.Payable() {
		log.Printf("[payment][usecase] appointment not payable appointment_id=%s status=%s", appointmentID, appt.Status)
		return OrderResult{}, ErrAppointmentNotPayable
	}
	if kind == entities.PaymentKindPartial && !appt.HasTotal() {
		return OrderResult{}, ErrAppointmentTotalUnknown
	}
	if appt.HasTotal() && amount.GreaterThan(appt.OutstandingAmount()) {
		log.Printf("[payment][usecase] amount exceeds outstanding appointment_id=%s amount=%s outstanding=%s", appointmentID, amount, appt.OutstandingAmount())
		return OrderResult{}, entities.ErrInvalidAmount
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured appointment_id=%s", appointmentID)
		return OrderResult{}, ErrPaymentGatewayNotSet
	}

	setting, err := u.commission.GetActive(ctx)
	if err != nil {
		log.Printf("[payment][usecase] failed loading commission setting err=%v", err)
		return OrderResult{}, err
	}
	split, err := entities.SplitPayment(amount, setting.Percentage)
	if err != nil {
		return OrderResult{}, err
	}
	log.Printf("[payment][usecase] split computed appointment_id=%s commission=%s payout=%s percentage=%s",
		appointmentID, split.AdminCommission, split.HospitalPayout, split.CommissionPercentage)

	remaining := decimal.Zero
	if appt.HasTotal() {
		remaining = appt.OutstandingAmount().Sub(amount)
	}

	req := interfaces.GatewayOrderRequest{
		AmountMinorUnits: entities.ToMinorUnits(amount),
		Currency:         entities.CurrencyINR,
		Receipt:          receiptFor(appt.ID, kind),
		Metadata:         u.orderMetadata(ctx, appt, kind, remaining),
	}

	gctx, cancel := context.WithTimeout(ctx, u.gatewayTimeout)
	order, err := u.gateway.CreateOrder(gctx, req)
	cancel()
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed appointment_id=%s err=%v", appointmentID, err)
		return OrderResult{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailure, err)
	}
	if strings.TrimSpace(order.OrderID) == "" {
		log.Printf("[payment][usecase] payment gateway returned empty order id appointment_id=%s", appointmentID)
		return OrderResult{}, fmt.Errorf("%w: empty order id", ErrPaymentGatewayFailure)
	}
	log.Printf("[payment][usecase] payment gateway success appointment_id=%s order_id=%s provider_status=%s", appointmentID, order.OrderID, order.Status)

	now := u.now()
	p := entities.Payment{
		ID:                   uuid.NewString(),
		AppointmentID:        appt.ID,
		Kind:                 kind,
		Currency:             entities.CurrencyINR,
		GatewayOrderID:       order.OrderID,
		TotalAmount:          amount,
		AdminCommission:      split.AdminCommission,
		HospitalPayout:       split.HospitalPayout,
		CommissionPercentage: split.CommissionPercentage,
		Status:               entities.PaymentStatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
		GatewayOrderPayload:  order.Raw,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed appointment_id=%s order_id=%s err=%v", appointmentID, order.OrderID, err)
		return OrderResult{}, err
	}
	log.Printf("[payment][usecase] create-order success appointment_id=%s payment_id=%s order_id=%s", appointmentID, created.ID, created.GatewayOrderID)

	return OrderResult{
		PaymentID:       created.ID,
		AppointmentID:   created.AppointmentID,
		OrderID:         created.GatewayOrderID,
		Kind:            kind,
		Amount:          created.TotalAmount,
		Currency:        created.Currency,
		Split:           created.Split(),
		RemainingAmount: remaining,
	}, nil
}

// Verify settles a payment once the gateway signature checks out. The payment
// write and the appointment confirmation commit together; a repeated callback
// for a settled order returns ErrAlreadyVerified and books nothing. A payment
// that would push paid_amount past the known total is left PENDING and
// rejected with ErrAmountExceedsOutstanding.
func (u *PaymentUseCase) Verify(ctx context.Context, actor access.Actor, in VerifyPaymentInput) (res VerificationResult, err error) {
	ctx, span := tracer.Start(ctx, "PaymentUseCase.Verify", trace.WithAttributes(attribute.String("payment.order_id", in.OrderID)))
	defer func() { endSpan(span, err) }()

	if err := access.AuthorizeRole(actor, access.CapVerifyPayment); err != nil {
		return VerificationResult{}, err
	}

	in.OrderID = strings.TrimSpace(in.OrderID)
	in.PaymentID = strings.TrimSpace(in.PaymentID)
	in.Signature = strings.TrimSpace(in.Signature)
	log.Printf("[payment][usecase] verify start order_id=%s payment_id=%s", in.OrderID, in.PaymentID)
	if in.OrderID == "" || in.PaymentID == "" || in.Signature == "" {
		return VerificationResult{}, ErrInvalidVerification
	}
	if u.gateway == nil {
		return VerificationResult{}, ErrPaymentGatewayNotSet
	}

	gctx, cancel := context.WithTimeout(ctx, u.gatewayTimeout)
	valid, err := u.gateway.VerifySignature(gctx, in.OrderID, in.PaymentID, in.Signature)
	cancel()
	if err != nil {
		log.Printf("[payment][usecase] signature check failed order_id=%s err=%v", in.OrderID, err)
		return VerificationResult{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailure, err)
	}
	if !valid {
		log.Printf("[payment][audit] rejected payment signature order_id=%s payment_id=%s", in.OrderID, in.PaymentID)
		return VerificationResult{}, ErrSignatureInvalid
	}

	p, err := u.loadByOrderID(ctx, in.OrderID)
	if err != nil {
		return VerificationResult{}, err
	}
	if err := settleable(p); err != nil {
		log.Printf("[payment][usecase] verify rejected order_id=%s status=%s", in.OrderID, p.Status)
		return VerificationResult{}, err
	}

	if u.lock != nil {
		key := "verify:" + in.OrderID
		acquired, lerr := u.lock.Acquire(ctx, key, u.lockTTL)
		switch {
		case lerr != nil:
			// The conditional settlement still guards the write.
			log.Printf("[payment][usecase] verification lock unavailable order_id=%s err=%v", in.OrderID, lerr)
		case !acquired:
			log.Printf("[payment][usecase] verification already in progress order_id=%s", in.OrderID)
			return VerificationResult{}, ErrVerificationInProgress
		default:
			defer func() {
				if rerr := u.lock.Release(context.WithoutCancel(ctx), key); rerr != nil {
					log.Printf("[payment][usecase] verification lock release failed order_id=%s err=%v", in.OrderID, rerr)
				}
			}()
		}
	}

	for attempt := 1; ; attempt++ {
		appt, err := u.appointments.GetByID(ctx, p.AppointmentID)
		if err != nil {
			return VerificationResult{}, err
		}
		if appt.ID == "" {
			log.Printf("[payment][usecase] payment references missing appointment payment_id=%s appointment_id=%s", p.ID, p.AppointmentID)
			return VerificationResult{}, ErrAppointmentNotFound
		}
		// The version condition on Settle makes this check hold against
		// settlements committed after the read.
		if appt.HasTotal() && appt.PaidAmount.Add(p.TotalAmount).GreaterThan(appt.TotalAmount) {
			log.Printf("[payment][usecase] payment exceeds outstanding; refund review required order_id=%s payment_id=%s amount=%s paid=%s total=%s",
				in.OrderID, p.ID, p.TotalAmount, appt.PaidAmount, appt.TotalAmount)
			return VerificationResult{}, ErrAmountExceedsOutstanding
		}

		now := u.now()
		settled := p
		settled.Status = entities.PaymentStatusSuccess
		settled.GatewayPaymentID = in.PaymentID
		settled.GatewaySignature = in.Signature
		settled.UpdatedAt = now

		next := appt.ApplySettlement(p.TotalAmount, now)
		next.Version = appt.Version + 1

		err = u.repo.Settle(ctx, interfaces.Settlement{Payment: settled, Appointment: next, ExpectedAppointmentVersion: appt.Version})
		if err == nil {
			if appt.Status != entities.AppointmentStatusBooked && appt.Status != entities.AppointmentStatusConfirmed {
				log.Printf("[payment][usecase] payment settled for appointment in status=%s; refund review required appointment_id=%s payment_id=%s", appt.Status, appt.ID, p.ID)
			}
			log.Printf("[payment][usecase] verify success order_id=%s payment_id=%s appointment_id=%s appointment_status=%s", in.OrderID, p.ID, next.ID, next.Status)
			publish(ctx, u.events, EventPaymentSucceeded, paymentEvent(EventPaymentSucceeded, settled, now))
			return VerificationResult{
				Payment:              settled,
				Appointment:          next,
				CommissionPercentage: settled.EffectiveCommissionPercentage(),
			}, nil
		}
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			log.Printf("[payment][usecase] settlement failed order_id=%s err=%v", in.OrderID, err)
			return VerificationResult{}, err
		}

		log.Printf("[payment][usecase] concurrent settlement detected order_id=%s attempt=%d", in.OrderID, attempt)
		if p, err = u.loadByOrderID(ctx, in.OrderID); err != nil {
			return VerificationResult{}, err
		}
		if err := settleable(p); err != nil {
			return VerificationResult{}, err
		}
		if attempt >= maxTransitionAttempts {
			return VerificationResult{}, interfaces.ErrConditionFailed
		}
	}
}

func (u *PaymentUseCase) GetByID(ctx context.Context, actor access.Actor, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if err := u.authorizeView(ctx, actor, p.AppointmentID); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (u *PaymentUseCase) GetLatestByAppointmentID(ctx context.Context, actor access.Actor, appointmentID string) (entities.Payment, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return entities.Payment{}, ErrInvalidAppointmentID
	}
	if err := u.authorizeView(ctx, actor, appointmentID); err != nil {
		return entities.Payment{}, err
	}

	payments, err := u.repo.ListByAppointmentID(ctx, appointmentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(payments) == 0 {
		return entities.Payment{}, ErrPaymentNotFound
	}
	latest := payments[0]
	for _, p := range payments[1:] {
		if p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	return latest, nil
}

// ExpireStalePending marks PENDING payments created before now-olderThan as
// FAILED. Payments settled concurrently are skipped.
func (u *PaymentUseCase) ExpireStalePending(ctx context.Context, actor access.Actor, olderThan time.Duration) (int, error) {
	if err := access.AuthorizeRole(actor, access.CapExpirePendingPayment); err != nil {
		return 0, err
	}
	if olderThan <= 0 {
		return 0, ErrInvalidExpiryThreshold
	}

	now := u.now()
	cutoff := now.Add(-olderThan)
	stale, err := u.repo.ListByStatus(ctx, entities.PaymentStatusPending, time.Time{}, cutoff)
	if err != nil {
		return 0, err
	}
	sort.SliceStable(stale, func(i, j int) bool { return stale[i].CreatedAt.Before(stale[j].CreatedAt) })

	expired := 0
	for _, p := range stale {
		failed, err := u.repo.MarkFailed(ctx, p.ID, entities.FailureReasonExpired, now)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Printf("[payment][reaper] payment no longer pending payment_id=%s", p.ID)
			continue
		}
		if err != nil {
			return expired, err
		}
		expired++
		publish(ctx, u.events, EventPaymentFailed, paymentEvent(EventPaymentFailed, failed, now))
	}
	log.Printf("[payment][reaper] expired=%d candidates=%d cutoff=%s", expired, len(stale), cutoff.Format(time.RFC3339))
	return expired, nil
}

func (u *PaymentUseCase) authorizeView(ctx context.Context, actor access.Actor, appointmentID string) error {
	appt, err := u.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt.ID == "" {
		// Only admins may read payments whose appointment cannot be resolved.
		return access.Authorize(actor, access.CapViewPayment, "")
	}
	owner, err := appointmentOwner(ctx, u.directory, actor, appt)
	if err != nil {
		return err
	}
	return access.Authorize(actor, access.CapViewPayment, owner)
}

func (u *PaymentUseCase) loadByOrderID(ctx context.Context, orderID string) (entities.Payment, error) {
	p, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		log.Printf("[payment][usecase] payment not found order_id=%s", orderID)
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// orderMetadata carries patient and hospital context to the gateway. Names
// are resolved through the directory; lookup failures fall back to a
// placeholder because they must not block the payment.
func (u *PaymentUseCase) orderMetadata(ctx context.Context, appt entities.Appointment, kind entities.PaymentKind, remaining decimal.Decimal) map[string]string {
	md := map[string]string{
		"appointment_id": appt.ID,
		"kind":           string(kind),
		"patient_name":   unknownDirectoryDisplayName,
		"hospital_name":  unknownDirectoryDisplayName,
	}
	if kind == entities.PaymentKindPartial {
		md["remaining_amount"] = remaining.StringFixed(2)
	}
	if u.directory == nil {
		return md
	}
	if h, err := u.directory.GetHospital(ctx, appt.HospitalID); err != nil {
		log.Printf("[payment][usecase] hospital lookup failed hospital_id=%s err=%v", appt.HospitalID, err)
	} else if h.Name != "" {
		md["hospital_name"] = h.Name
	}
	if p, err := u.directory.GetUser(ctx, appt.PatientID); err != nil {
		log.Printf("[payment][usecase] patient lookup failed patient_id=%s err=%v", appt.PatientID, err)
	} else if p.Name != "" {
		md["patient_name"] = p.Name
	}
	return md
}

func settleable(p entities.Payment) error {
	switch p.Status {
	case entities.PaymentStatusPending:
		return nil
	case entities.PaymentStatusSuccess:
		return ErrAlreadyVerified
	default:
		return ErrPaymentNotPending
	}
}

// receiptFor derives the gateway receipt from the appointment id. Gateways cap
// receipts at 40 characters, so the uuid dashes are dropped.
func receiptFor(appointmentID string, kind entities.PaymentKind) string {
	prefix := "rcpt_"
	if kind == entities.PaymentKindPartial {
		prefix = "prcpt_"
	}
	r := prefix + strings.ReplaceAll(appointmentID, "-", "")
	if len(r) > receiptMaxLength {
		r = r[:receiptMaxLength]
	}
	return r
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
