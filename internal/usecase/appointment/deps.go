package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/salon-admin/internal/domain/client"
	"github.com/BruksfildServices01/salon-admin/internal/domain/employee"
	"github.com/BruksfildServices01/salon-admin/internal/domain/service"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

// Catalog resolves the records an appointment points at.
type Catalog struct {
	Clients   client.Repository
	Employees employee.Repository
	Services  service.Repository
}

// lookup returns nil when the record does not exist, so appointments may
// keep pointing at deleted records.
func lookup[T any](ctx context.Context, id string, notFound error, get func(context.Context, string) (*T, error)) (*T, error) {
	if id == "" {
		return nil, nil
	}
	v, err := get(ctx, id)
	if errors.Is(err, notFound) {
		return nil, nil
	}
	return v, err
}

func (c Catalog) client(ctx context.Context, id string) (*models.Client, error) {
	return lookup(ctx, id, client.ErrNotFound, c.Clients.GetByID)
}

func (c Catalog) employee(ctx context.Context, id string) (*models.Employee, error) {
	return lookup(ctx, id, employee.ErrNotFound, c.Employees.GetByID)
}

func (c Catalog) service(ctx context.Context, id string) (*models.Service, error) {
	return lookup(ctx, id, service.ErrNotFound, c.Services.GetByID)
}
