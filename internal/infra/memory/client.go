package memory

import (
	"context"

	domain "github.com/BruksfildServices01/salon-admin/internal/domain/client"
	"github.com/BruksfildServices01/salon-admin/internal/idgen"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

type ClientRepository struct {
	store *Store[models.Client]
	now   timezone.Clock
	newID idgen.Func
}

func NewClientRepository(now timezone.Clock, newID idgen.Func) *ClientRepository {
	return &ClientRepository{
		store: NewStore(
			func(c models.Client) string { return c.ID },
			models.Client.Clone,
		),
		now:   now,
		newID: newID,
	}
}

func (r *ClientRepository) List(ctx context.Context) ([]models.Client, error) {
	return r.store.All(), nil
}

func (r *ClientRepository) ListActive(ctx context.Context) ([]models.Client, error) {
	return r.store.Filter(func(c models.Client) bool { return c.IsActive }), nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	c, ok := r.store.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *ClientRepository) Create(ctx context.Context, c models.Client) (*models.Client, error) {
	domain.PrepareNew(&c, r.newID(), r.now())
	created := r.store.Put(c)
	return &created, nil
}

func (r *ClientRepository) Update(ctx context.Context, id string, p domain.Patch) (*models.Client, error) {
	c, ok, _ := r.store.Mutate(id, func(c *models.Client) error {
		p.Apply(c)
		return nil
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Remove(id), nil
}

func (r *ClientRepository) ToggleActive(ctx context.Context, id string) (*models.Client, error) {
	c, ok, _ := r.store.Mutate(id, func(c *models.Client) error {
		c.IsActive = !c.IsActive
		return nil
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *ClientRepository) Import(ctx context.Context, cs ...models.Client) error {
	for _, c := range cs {
		r.store.Put(c)
	}
	return nil
}

var _ domain.Repository = (*ClientRepository)(nil)
