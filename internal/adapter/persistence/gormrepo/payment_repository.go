package gormrepo

import (
	"context"
	"errors"
	"time"

	"medipay/internal/domain/entities"
	"medipay/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepo struct{ db *gorm.DB }

var _ interfaces.IPaymentRepository = (*PaymentRepo)(nil)

func NewPaymentRepo(db *gorm.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	m := toPaymentModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Payment{}, err
	}
	return m.toEntity(), nil
}

func (r *PaymentRepo) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *PaymentRepo) GetByOrderID(ctx context.Context, orderID string) (entities.Payment, error) {
	return r.first(ctx, "gateway_order_id = ?", orderID)
}

func (r *PaymentRepo) ListByAppointmentID(ctx context.Context, appointmentID string) ([]entities.Payment, error) {
	return r.find(r.db.WithContext(ctx).Where("appointment_id = ?", appointmentID))
}

func (r *PaymentRepo) ListByStatus(ctx context.Context, status entities.PaymentStatus, from, to time.Time) ([]entities.Payment, error) {
	q := r.db.WithContext(ctx).Where("status = ?", string(status))
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from.UTC())
	}
	if !to.IsZero() {
		q = q.Where("created_at <= ?", to.UTC())
	}
	return r.find(q)
}

// Settle locks the payment and appointment rows, re-checks both conditions
// and writes the two rows in the same transaction.
func (r *PaymentRepo) Settle(ctx context.Context, s interfaces.Settlement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pm paymentModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&pm, "id = ?", s.Payment.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return interfaces.ErrConditionFailed
		}
		if err != nil {
			return err
		}
		if pm.Status != string(entities.PaymentStatusPending) {
			return interfaces.ErrConditionFailed
		}

		var am appointmentModel
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&am, "id = ?", s.Appointment.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return interfaces.ErrConditionFailed
		}
		if err != nil {
			return err
		}
		if am.Version != s.ExpectedAppointmentVersion {
			return interfaces.ErrConditionFailed
		}

		res := tx.Model(&paymentModel{}).
			Where("id = ? AND status = ?", s.Payment.ID, string(entities.PaymentStatusPending)).
			Updates(map[string]any{
				"status":             string(s.Payment.Status),
				"gateway_payment_id": s.Payment.GatewayPaymentID,
				"gateway_signature":  s.Payment.GatewaySignature,
				"updated_at":         s.Payment.UpdatedAt.UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrConditionFailed
		}

		appt := s.Appointment
		appt.Version = s.ExpectedAppointmentVersion + 1
		return updateAppointment(tx, appt, s.ExpectedAppointmentVersion)
	})
}

func (r *PaymentRepo) MarkFailed(ctx context.Context, id, reason string, at time.Time) (entities.Payment, error) {
	res := r.db.WithContext(ctx).Model(&paymentModel{}).
		Where("id = ? AND status = ?", id, string(entities.PaymentStatusPending)).
		Updates(map[string]any{
			"status":         string(entities.PaymentStatusFailed),
			"failure_reason": reason,
			"updated_at":     at.UTC(),
		})
	if res.Error != nil {
		return entities.Payment{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Payment{}, interfaces.ErrConditionFailed
	}
	return r.GetByID(ctx, id)
}

func (r *PaymentRepo) first(ctx context.Context, query string, arg any) (entities.Payment, error) {
	var m paymentModel
	err := r.db.WithContext(ctx).First(&m, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return m.toEntity(), nil
}

func (r *PaymentRepo) find(q *gorm.DB) ([]entities.Payment, error) {
	var rows []paymentModel
	if err := q.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}
