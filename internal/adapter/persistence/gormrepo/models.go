// Package gormrepo implements the billing repositories on a relational store
// through gorm (PostgreSQL in production, SQLite for local runs and tests).
package gormrepo

import (
	"time"

	"medipay/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type appointmentModel struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)"`
	PatientID   string          `gorm:"type:varchar(64);index;not null"`
	HospitalID  string          `gorm:"type:varchar(64);index;not null"`
	Service     string          `gorm:"type:varchar(255);not null"`
	ScheduledAt time.Time       `gorm:"not null"`
	Status      string          `gorm:"type:varchar(16);index;not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	PaidAmount  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Version     int64           `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"autoCreateTime:false;index"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime:false"`
}

func (appointmentModel) TableName() string { return "appointments" }

type paymentModel struct {
	ID                   string          `gorm:"primaryKey;type:varchar(36)"`
	AppointmentID        string          `gorm:"type:varchar(36);index;not null"`
	Kind                 string          `gorm:"type:varchar(16);not null"`
	Currency             string          `gorm:"type:varchar(3);not null"`
	GatewayOrderID       string          `gorm:"type:varchar(64);uniqueIndex;not null"`
	GatewayPaymentID     string          `gorm:"type:varchar(64)"`
	GatewaySignature     string          `gorm:"type:varchar(255)"`
	TotalAmount          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	AdminCommission      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	HospitalPayout       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CommissionPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Status               string          `gorm:"type:varchar(16);index:idx_payments_status_created,priority:1;not null"`
	FailureReason        string          `gorm:"type:varchar(64)"`
	GatewayOrderPayload  string          `gorm:"type:text"`
	CreatedAt            time.Time       `gorm:"autoCreateTime:false;index:idx_payments_status_created,priority:2"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime:false"`
}

func (paymentModel) TableName() string { return "payments" }

type commissionSettingModel struct {
	ID          string          `gorm:"primaryKey;type:varchar(16)"`
	Percentage  decimal.Decimal `gorm:"column:commission_percentage;type:numeric(5,2);not null"`
	Active      bool            `gorm:"column:is_active;not null"`
	Description string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime:false"`
}

func (commissionSettingModel) TableName() string { return "commission_settings" }

// Directory tables are owned by other services; they are only read here.

type hospitalModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	City      string
	Approved  bool `gorm:"column:is_approved"`
	OwnerID   string
	CreatedAt time.Time
}

func (hospitalModel) TableName() string { return "hospitals" }

type userModel struct {
	ID     string `gorm:"primaryKey"`
	Name   string
	Email  string
	Role   string
	Active bool `gorm:"column:is_active"`
}

func (userModel) TableName() string { return "users" }

type contactModel struct {
	ID     string `gorm:"primaryKey"`
	Status string
}

func (contactModel) TableName() string { return "contacts" }

// Migrate creates or updates the tables owned by the billing service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&appointmentModel{}, &paymentModel{}, &commissionSettingModel{})
}

func toAppointmentModel(a entities.Appointment) appointmentModel {
	return appointmentModel{
		ID:          a.ID,
		PatientID:   a.PatientID,
		HospitalID:  a.HospitalID,
		Service:     a.Service,
		ScheduledAt: a.ScheduledAt.UTC(),
		Status:      string(a.Status),
		TotalAmount: a.TotalAmount,
		PaidAmount:  a.PaidAmount,
		Version:     a.Version,
		CreatedAt:   a.CreatedAt.UTC(),
		UpdatedAt:   a.UpdatedAt.UTC(),
	}
}

func (m appointmentModel) toEntity() entities.Appointment {
	return entities.Appointment{
		ID:          m.ID,
		PatientID:   m.PatientID,
		HospitalID:  m.HospitalID,
		Service:     m.Service,
		ScheduledAt: m.ScheduledAt.UTC(),
		Status:      entities.AppointmentStatus(m.Status),
		TotalAmount: m.TotalAmount,
		PaidAmount:  m.PaidAmount,
		Version:     m.Version,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func toPaymentModel(p entities.Payment) paymentModel {
	return paymentModel{
		ID:                   p.ID,
		AppointmentID:        p.AppointmentID,
		Kind:                 string(p.Kind),
		Currency:             p.Currency,
		GatewayOrderID:       p.GatewayOrderID,
		GatewayPaymentID:     p.GatewayPaymentID,
		GatewaySignature:     p.GatewaySignature,
		TotalAmount:          p.TotalAmount,
		AdminCommission:      p.AdminCommission,
		HospitalPayout:       p.HospitalPayout,
		CommissionPercentage: p.CommissionPercentage,
		Status:               string(p.Status),
		FailureReason:        p.FailureReason,
		GatewayOrderPayload:  string(p.GatewayOrderPayload),
		CreatedAt:            p.CreatedAt.UTC(),
		UpdatedAt:            p.UpdatedAt.UTC(),
	}
}

func (m paymentModel) toEntity() entities.Payment {
	p := entities.Payment{
		ID:                   m.ID,
		AppointmentID:        m.AppointmentID,
		Kind:                 entities.PaymentKind(m.Kind),
		Currency:             m.Currency,
		GatewayOrderID:       m.GatewayOrderID,
		GatewayPaymentID:     m.GatewayPaymentID,
		GatewaySignature:     m.GatewaySignature,
		TotalAmount:          m.TotalAmount,
		AdminCommission:      m.AdminCommission,
		HospitalPayout:       m.HospitalPayout,
		CommissionPercentage: m.CommissionPercentage,
		Status:               entities.PaymentStatus(m.Status),
		FailureReason:        m.FailureReason,
		CreatedAt:            m.CreatedAt.UTC(),
		UpdatedAt:            m.UpdatedAt.UTC(),
	}
	if m.GatewayOrderPayload != "" {
		p.GatewayOrderPayload = []byte(m.GatewayOrderPayload)
	}
	return p
}

func (m commissionSettingModel) toEntity() entities.CommissionSetting {
	return entities.CommissionSetting{
		ID:          m.ID,
		Percentage:  m.Percentage,
		Active:      m.Active,
		Description: m.Description,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func (m hospitalModel) toEntity() entities.Hospital {
	return entities.Hospital{
		ID:        m.ID,
		Name:      m.Name,
		City:      m.City,
		Approved:  m.Approved,
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt.UTC(),
	}
}
