package entities

import "time"

// Directory records are owned by the registration and hospital directory
// services. The billing service only reads them.

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleHospital UserRole = "hospital"
	UserRolePatient  UserRole = "patient"
)

type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	Active bool     `json:"is_active"`
}

type Hospital struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Approved  bool      `json:"is_approved"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactStatus string

const (
	ContactStatusPending  ContactStatus = "PENDING"
	ContactStatusResolved ContactStatus = "RESOLVED"
	ContactStatusClosed   ContactStatus = "CLOSED"
)
