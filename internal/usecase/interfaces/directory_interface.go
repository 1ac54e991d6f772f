package interfaces

//go:generate mockgen -source=directory_interface.go -destination=mocks/mock_directory_interface.go -package=mock_interfaces

import (
	"context"

	"medipay/internal/domain/entities"
)

// IDirectory reads the hospital, user and enquiry records owned by other
// services. Lookups return a zero value when nothing matches.
type IDirectory interface {
	GetHospital(ctx context.Context, id string) (entities.Hospital, error)
	GetUser(ctx context.Context, id string) (entities.User, error)
	ListHospitals(ctx context.Context) ([]entities.Hospital, error)
	CountPendingEnquiries(ctx context.Context) (int, error)
}
