package memory

import (
	"context"

	domain "github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/idgen"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

type AppointmentRepository struct {
	store *Store[models.Appointment]
	now   timezone.Clock
	newID idgen.Func
}

func NewAppointmentRepository(now timezone.Clock, newID idgen.Func) *AppointmentRepository {
	return &AppointmentRepository{
		store: NewStore(
			func(a models.Appointment) string { return a.ID },
			models.Appointment.Clone,
		),
		now:   now,
		newID: newID,
	}
}

func (r *AppointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	return r.store.All(), nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ap, ok := r.store.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ap, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, ap models.Appointment) (*models.Appointment, error) {
	ap.ID = r.newID()
	ap.CreatedAt = r.now()
	ap.UpdatedAt = nil
	if ap.Status == "" {
		ap.Status = string(domain.InitialStatus())
	}

	created := r.store.Put(ap)
	return &created, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id string, p domain.Patch) (*models.Appointment, error) {
	ap, ok, _ := r.store.Mutate(id, func(ap *models.Appointment) error {
		p.Apply(ap, r.now())
		return nil
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ap, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, s domain.Status) (*models.Appointment, error) {
	ap, ok, err := r.store.Mutate(id, func(ap *models.Appointment) error {
		return domain.SetStatus(ap, s, r.now())
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Remove(id), nil
}

func (r *AppointmentRepository) Import(ctx context.Context, aps ...models.Appointment) error {
	for _, ap := range aps {
		r.store.Put(ap)
	}
	return nil
}

var _ domain.Repository = (*AppointmentRepository)(nil)
