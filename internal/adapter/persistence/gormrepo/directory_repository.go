package gormrepo

import (
	"context"
	"errors"

	"medipay/internal/domain/entities"
	"medipay/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// DirectoryRepo reads the hospitals, users and contacts tables.
type DirectoryRepo struct{ db *gorm.DB }

var _ interfaces.IDirectory = (*DirectoryRepo)(nil)

func NewDirectoryRepo(db *gorm.DB) *DirectoryRepo {
	return &DirectoryRepo{db: db}
}

func (r *DirectoryRepo) GetHospital(ctx context.Context, id string) (entities.Hospital, error) {
	var m hospitalModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Hospital{}, nil
	}
	if err != nil {
		return entities.Hospital{}, err
	}
	return m.toEntity(), nil
}

func (r *DirectoryRepo) GetUser(ctx context.Context, id string) (entities.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return entities.User{ID: m.ID, Name: m.Name, Email: m.Email, Role: entities.UserRole(m.Role), Active: m.Active}, nil
}

func (r *DirectoryRepo) ListHospitals(ctx context.Context) ([]entities.Hospital, error) {
	var rows []hospitalModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Hospital, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *DirectoryRepo) CountPendingEnquiries(ctx context.Context) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&contactModel{}).
		Where("status = ?", string(entities.ContactStatusPending)).
		Count(&n).Error
	return int(n), err
}
