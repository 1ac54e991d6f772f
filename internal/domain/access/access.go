// Package access holds the authorization policy of the billing service.
//
// Every operation declares one Capability. A capability grants some roles
// unconditionally and others only when the actor owns the resource the
// operation touches; admins hold every capability.
package access

import (
	"errors"

	"medipay/internal/domain/entities"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

type Capability string

const (
	CapBookAppointment      Capability = "appointment:book"
	CapViewAppointment      Capability = "appointment:view"
	CapCancelAppointment    Capability = "appointment:cancel"
	CapCompleteAppointment  Capability = "appointment:complete"
	CapPayAppointment       Capability = "payment:create"
	CapVerifyPayment        Capability = "payment:verify"
	CapViewPayment          Capability = "payment:view"
	CapViewCommission       Capability = "commission:view"
	CapManageCommission     Capability = "commission:manage"
	CapViewAnalytics        Capability = "analytics:view"
	CapExpirePendingPayment Capability = "payment:expire"
)

type rule struct {
	anyRoles   []entities.UserRole
	ownerRoles []entities.UserRole
}

var policy = map[Capability]rule{
	CapBookAppointment:      {ownerRoles: []entities.UserRole{entities.UserRolePatient}},
	CapViewAppointment:      {ownerRoles: []entities.UserRole{entities.UserRolePatient, entities.UserRoleHospital}},
	CapCancelAppointment:    {ownerRoles: []entities.UserRole{entities.UserRolePatient}},
	CapCompleteAppointment:  {ownerRoles: []entities.UserRole{entities.UserRoleHospital}},
	CapPayAppointment:       {ownerRoles: []entities.UserRole{entities.UserRolePatient}},
	CapVerifyPayment:        {anyRoles: []entities.UserRole{entities.UserRolePatient, entities.UserRoleHospital}},
	CapViewPayment:          {ownerRoles: []entities.UserRole{entities.UserRolePatient, entities.UserRoleHospital}},
	CapViewCommission:       {anyRoles: []entities.UserRole{entities.UserRolePatient, entities.UserRoleHospital}},
	CapManageCommission:     {},
	CapViewAnalytics:        {},
	CapExpirePendingPayment: {},
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   string
	Role entities.UserRole
}

// System is used by background jobs and the operator CLI.
var System = Actor{ID: "system", Role: entities.UserRoleAdmin}

func (a Actor) IsZero() bool {
	return a.ID == "" && a.Role == ""
}

// Authorize checks capability for actor against the owner of the resource. ownerID
// may be empty for capabilities that carry no owner; owner-scoped roles are
// then refused.
func Authorize(actor Actor, capability Capability, ownerID string) error {
	if actor.IsZero() {
		return ErrUnauthenticated
	}
	if actor.Role == entities.UserRoleAdmin {
		return nil
	}
	r, ok := policy[capability]
	if !ok {
		return ErrForbidden
	}
	if hasRole(r.anyRoles, actor.Role) {
		return nil
	}
	if ownerID != "" && actor.ID == ownerID && hasRole(r.ownerRoles, actor.Role) {
		return nil
	}
	return ErrForbidden
}

// AuthorizeRole checks capabilities that do not depend on a resource owner.
func AuthorizeRole(actor Actor, capability Capability) error {
	return Authorize(actor, capability, "")
}

func hasRole(roles []entities.UserRole, role entities.UserRole) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
