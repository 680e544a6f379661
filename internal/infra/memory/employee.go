package memory

import (
	"context"

	domain "github.com/BruksfildServices01/salon-admin/internal/domain/employee"
	"github.com/BruksfildServices01/salon-admin/internal/idgen"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

type EmployeeRepository struct {
	store *Store[models.Employee]
	newID idgen.Func
}

func NewEmployeeRepository(newID idgen.Func) *EmployeeRepository {
	return &EmployeeRepository{
		store: NewStore(
			func(e models.Employee) string { return e.ID },
			models.Employee.Clone,
		),
		newID: newID,
	}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	return r.store.All(), nil
}

func (r *EmployeeRepository) ListActive(ctx context.Context) ([]models.Employee, error) {
	return r.store.Filter(func(e models.Employee) bool { return e.IsActive }), nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	e, ok := r.store.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e models.Employee) (*models.Employee, error) {
	e.ID = r.newID()
	created := r.store.Put(e)
	return &created, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id string, p domain.Patch) (*models.Employee, error) {
	e, ok, _ := r.store.Mutate(id, func(e *models.Employee) error {
		p.Apply(e)
		return nil
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Remove(id), nil
}

func (r *EmployeeRepository) ToggleActive(ctx context.Context, id string) (*models.Employee, error) {
	e, ok, _ := r.store.Mutate(id, func(e *models.Employee) error {
		e.IsActive = !e.IsActive
		return nil
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (r *EmployeeRepository) Import(ctx context.Context, es ...models.Employee) error {
	for _, e := range es {
		r.store.Put(e)
	}
	return nil
}

var _ domain.Repository = (*EmployeeRepository)(nil)
