package cache

import (
	"context"
	"log"
	"time"

	"medipay/internal/domain/entities"
	"medipay/internal/usecase/interfaces"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedDirectory keeps recently read hospitals and users in memory. Only
// hits are cached; a record that does not exist yet is looked up again on the
// next call. Enquiry counts always go to the store.
type CachedDirectory struct {
	next      interfaces.IDirectory
	hospitals *expirable.LRU[string, entities.Hospital]
	users     *expirable.LRU[string, entities.User]
}

var _ interfaces.IDirectory = (*CachedDirectory)(nil)

func NewCachedDirectory(next interfaces.IDirectory, size int, ttl time.Duration) *CachedDirectory {
	log.Printf("[cache][directory] enabled size=%d ttl=%s", size, ttl)
	return &CachedDirectory{
		next:      next,
		hospitals: expirable.NewLRU[string, entities.Hospital](size, nil, ttl),
		users:     expirable.NewLRU[string, entities.User](size, nil, ttl),
	}
}

func (d *CachedDirectory) GetHospital(ctx context.Context, id string) (entities.Hospital, error) {
	if h, ok := d.hospitals.Get(id); ok {
		return h, nil
	}
	h, err := d.next.GetHospital(ctx, id)
	if err != nil {
		return entities.Hospital{}, err
	}
	if h.ID != "" {
		d.hospitals.Add(h.ID, h)
	}
	return h, nil
}

func (d *CachedDirectory) GetUser(ctx context.Context, id string) (entities.User, error) {
	if u, ok := d.users.Get(id); ok {
		return u, nil
	}
	u, err := d.next.GetUser(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if u.ID != "" {
		d.users.Add(u.ID, u)
	}
	return u, nil
}

// ListHospitals always reads through and refreshes the per-id entries.
func (d *CachedDirectory) ListHospitals(ctx context.Context) ([]entities.Hospital, error) {
	list, err := d.next.ListHospitals(ctx)
	if err != nil {
		return nil, err
	}
	for _, h := range list {
		d.hospitals.Add(h.ID, h)
	}
	return list, nil
}

func (d *CachedDirectory) CountPendingEnquiries(ctx context.Context) (int, error) {
	return d.next.CountPendingEnquiries(ctx)
}
