package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"medipay/internal/domain/access"
	"medipay/internal/domain/entities"
	"medipay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrHospitalNotFound      = errors.New("hospital not found or not approved")
	ErrPatientNotFound       = errors.New("patient not found")
	ErrAlreadyCancelled      = errors.New("appointment already cancelled")
	ErrInvalidAppointmentID  = errors.New("invalid appointment id")
	ErrInvalidAppointmentReq = errors.New("invalid appointment request")
)

// maxTransitionAttempts bounds the re-read/re-check loop run when a
// conditional write loses against a concurrent request.
const maxTransitionAttempts = 3

// IAppointmentUseCase exposes the appointment lifecycle.
//
//   - POST /appointments => Book()
//   - PUT /appointments/{id}/cancel => Cancel()
//   - PUT /appointments/{id}/complete => Complete()

type IAppointmentUseCase interface {
	Book(ctx context.Context, actor access.Actor, in BookAppointmentInput) (entities.Appointment, error)
	Cancel(ctx context.Context, actor access.Actor, id string) (entities.Appointment, error)
	Complete(ctx context.Context, actor access.Actor, id string) (entities.Appointment, error)
	GetByID(ctx context.Context, actor access.Actor, id string) (entities.Appointment, error)
}

type BookAppointmentInput struct {
	PatientID   string
	HospitalID  string
	Service     string
	ScheduledAt time.Time
	TotalAmount decimal.Decimal
}

type AppointmentUseCase struct {
	repo      interfaces.IAppointmentRepository
	directory interfaces.IDirectory
	events    interfaces.IEventPublisher
	now       func() time.Time
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(repo interfaces.IAppointmentRepository, directory interfaces.IDirectory, events interfaces.IEventPublisher) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, directory: directory, events: events, now: utcNow}
}

func (u *AppointmentUseCase) Book(ctx context.Context, actor access.Actor, in BookAppointmentInput) (entities.Appointment, error) {
	in.PatientID = strings.TrimSpace(in.PatientID)
	in.HospitalID = strings.TrimSpace(in.HospitalID)
	in.Service = strings.TrimSpace(in.Service)
	log.Printf("[appointment][usecase] book start patient_id=%s hospital_id=%s", in.PatientID, in.HospitalID)

	if in.PatientID == "" || in.HospitalID == "" || in.Service == "" || in.ScheduledAt.IsZero() {
		return entities.Appointment{}, ErrInvalidAppointmentReq
	}
	if err := entities.ValidateTotal(in.TotalAmount); err != nil {
		return entities.Appointment{}, err
	}
	if err := access.Authorize(actor, access.CapBookAppointment, in.PatientID); err != nil {
		return entities.Appointment{}, err
	}

	hospital, err := u.directory.GetHospital(ctx, in.HospitalID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if hospital.ID == "" || !hospital.Approved {
		log.Printf("[appointment][usecase] hospital not found or not approved hospital_id=%s", in.HospitalID)
		return entities.Appointment{}, ErrHospitalNotFound
	}

	patient, err := u.directory.GetUser(ctx, in.PatientID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if patient.ID == "" || patient.Role != entities.UserRolePatient || !patient.Active {
		log.Printf("[appointment][usecase] patient not found patient_id=%s", in.PatientID)
		return entities.Appointment{}, ErrPatientNotFound
	}

	now := u.now()
	a := entities.Appointment{
		ID:          uuid.NewString(),
		PatientID:   in.PatientID,
		HospitalID:  in.HospitalID,
		Service:     in.Service,
		ScheduledAt: in.ScheduledAt.UTC(),
		Status:      entities.AppointmentStatusBooked,
		TotalAmount: in.TotalAmount,
		PaidAmount:  decimal.Zero,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		log.Printf("[appointment][usecase] repository create failed appointment_id=%s err=%v", a.ID, err)
		return entities.Appointment{}, err
	}
	log.Printf("[appointment][usecase] book success appointment_id=%s", created.ID)

	publish(ctx, u.events, EventAppointmentBooked, appointmentEvent(EventAppointmentBooked, created, now))
	return created, nil
}

func (u *AppointmentUseCase) Cancel(ctx context.Context, actor access.Actor, id string) (entities.Appointment, error) {
	log.Printf("[appointment][usecase] cancel start appointment_id=%s", id)
	updated, err := u.transition(ctx, actor, id, access.CapCancelAppointment, entities.AppointmentStatusCancelled)
	if err != nil {
		log.Printf("[appointment][usecase] cancel failed appointment_id=%s err=%v", id, err)
		return entities.Appointment{}, err
	}
	publish(ctx, u.events, EventAppointmentCancelled, appointmentEvent(EventAppointmentCancelled, updated, updated.UpdatedAt))
	return updated, nil
}

func (u *AppointmentUseCase) Complete(ctx context.Context, actor access.Actor, id string) (entities.Appointment, error) {
	log.Printf("[appointment][usecase] complete start appointment_id=%s", id)
	updated, err := u.transition(ctx, actor, id, access.CapCompleteAppointment, entities.AppointmentStatusCompleted)
	if err != nil {
		log.Printf("[appointment][usecase] complete failed appointment_id=%s err=%v", id, err)
		return entities.Appointment{}, err
	}
	publish(ctx, u.events, EventAppointmentCompleted, appointmentEvent(EventAppointmentCompleted, updated, updated.UpdatedAt))
	return updated, nil
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, actor access.Actor, id string) (entities.Appointment, error) {
	a, err := u.load(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	owner, err := appointmentOwner(ctx, u.directory, actor, a)
	if err != nil {
		return entities.Appointment{}, err
	}
	if err := access.Authorize(actor, access.CapViewAppointment, owner); err != nil {
		return entities.Appointment{}, err
	}
	return a, nil
}

// transition moves the appointment to next with a version-conditioned write.
// When the write loses a race the appointment is re-read and the checks run
// again, so concurrent cancels end with one success and one ErrAlreadyCancelled.
func (u *AppointmentUseCase) transition(ctx context.Context, actor access.Actor, id string, capability access.Capability, next entities.AppointmentStatus) (entities.Appointment, error) {
	a, err := u.load(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	owner, err := appointmentOwner(ctx, u.directory, actor, a)
	if err != nil {
		return entities.Appointment{}, err
	}
	if err := access.Authorize(actor, capability, owner); err != nil {
		return entities.Appointment{}, err
	}

	for attempt := 1; ; attempt++ {
		if next == entities.AppointmentStatusCancelled && a.Status == entities.AppointmentStatusCancelled {
			return entities.Appointment{}, ErrAlreadyCancelled
		}
		moved, err := a.Transition(next, u.now())
		if err != nil {
			return entities.Appointment{}, err
		}

		updated, err := u.repo.Update(ctx, moved, a.Version)
		if err == nil {
			log.Printf("[appointment][usecase] transition success appointment_id=%s from=%s to=%s", a.ID, a.Status, next)
			return updated, nil
		}
		if !errors.Is(err, interfaces.ErrConditionFailed) || attempt >= maxTransitionAttempts {
			return entities.Appointment{}, err
		}

		log.Printf("[appointment][usecase] concurrent update detected appointment_id=%s attempt=%d", a.ID, attempt)
		if a, err = u.load(ctx, id); err != nil {
			return entities.Appointment{}, err
		}
	}
}

func (u *AppointmentUseCase) load(ctx context.Context, id string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

// appointmentOwner resolves which user owns the appointment from the point of
// view of the actor: the hospital's owner for hospital accounts, the patient
// otherwise.
func appointmentOwner(ctx context.Context, directory interfaces.IDirectory, actor access.Actor, a entities.Appointment) (string, error) {
	if actor.Role != entities.UserRoleHospital {
		return a.PatientID, nil
	}
	h, err := directory.GetHospital(ctx, a.HospitalID)
	if err != nil {
		return "", err
	}
	return h.OwnerID, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
