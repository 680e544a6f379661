package memory

import (
	"context"

	domain "github.com/BruksfildServices01/salon-admin/internal/domain/service"
	"github.com/BruksfildServices01/salon-admin/internal/idgen"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

type ServiceRepository struct {
	store *Store[models.Service]
	now   timezone.Clock
	newID idgen.Func
}

func NewServiceRepository(now timezone.Clock, newID idgen.Func) *ServiceRepository {
	return &ServiceRepository{
		store: NewStore(
			func(s models.Service) string { return s.ID },
			models.Service.Clone,
		),
		now:   now,
		newID: newID,
	}
}

func (r *ServiceRepository) List(ctx context.Context) ([]models.Service, error) {
	return r.store.All(), nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	s, ok := r.store.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s models.Service) (*models.Service, error) {
	now := r.now()
	created, updated := now, now
	s.ID = r.newID()
	s.CreatedAt = &created
	s.UpdatedAt = &updated

	out := r.store.Put(s)
	return &out, nil
}

func (r *ServiceRepository) Update(ctx context.Context, id string, p domain.Patch) (*models.Service, error) {
	s, ok, _ := r.store.Mutate(id, func(s *models.Service) error {
		p.Apply(s, r.now())
		return nil
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Remove(id), nil
}

func (r *ServiceRepository) ToggleActive(ctx context.Context, id string) (*models.Service, error) {
	s, ok, _ := r.store.Mutate(id, func(s *models.Service) error {
		now := r.now()
		s.IsActive = !s.IsActive
		s.UpdatedAt = &now
		return nil
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *ServiceRepository) Import(ctx context.Context, ss ...models.Service) error {
	for _, s := range ss {
		r.store.Put(s)
	}
	return nil
}

var _ domain.Repository = (*ServiceRepository)(nil)
