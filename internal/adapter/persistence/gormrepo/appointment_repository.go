package gormrepo

import (
	"context"
	"errors"

	"medipay/internal/domain/entities"
	"medipay/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type AppointmentRepo struct{ db *gorm.DB }

var _ interfaces.IAppointmentRepository = (*AppointmentRepo)(nil)

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

func (r *AppointmentRepo) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	m := toAppointmentModel(a)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Appointment{}, err
	}
	return m.toEntity(), nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	var m appointmentModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Appointment{}, nil
	}
	if err != nil {
		return entities.Appointment{}, err
	}
	return m.toEntity(), nil
}

// Update is a compare-and-set on the version column.
func (r *AppointmentRepo) Update(ctx context.Context, a entities.Appointment, expectedVersion int64) (entities.Appointment, error) {
	a.Version = expectedVersion + 1
	if err := updateAppointment(r.db.WithContext(ctx), a, expectedVersion); err != nil {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentRepo) List(ctx context.Context) ([]entities.Appointment, error) {
	var rows []appointmentModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Appointment, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func updateAppointment(tx *gorm.DB, a entities.Appointment, expectedVersion int64) error {
	res := tx.Model(&appointmentModel{}).
		Where("id = ? AND version = ?", a.ID, expectedVersion).
		Updates(map[string]any{
			"status":       string(a.Status),
			"total_amount": a.TotalAmount,
			"paid_amount":  a.PaidAmount,
			"version":      a.Version,
			"updated_at":   a.UpdatedAt.UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return interfaces.ErrConditionFailed
	}
	return nil
}
