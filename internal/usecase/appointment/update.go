package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/audit"
	domain "github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

type UpdateAppointment struct {
	repo    domain.Repository
	catalog Catalog
	audit   *audit.Dispatcher
	loc     *time.Location
}

func NewUpdateAppointment(
	repo domain.Repository,
	catalog Catalog,
	audit *audit.Dispatcher,
	loc *time.Location,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:    repo,
		catalog: catalog,
		audit:   audit,
		loc:     loc,
	}
}

// Execute merges p. A new client or employee refreshes the name snapshot, a
// new service refreshes name and price, and a new service or start time
// recomputes the end time. Values set explicitly in p are kept.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	actor string,
	id string,
	p domain.Patch,
) (*models.Appointment, error) {

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Status != nil && !p.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	if p.StartTime != nil {
		if _, err := domain.ParseClock(*p.StartTime); err != nil {
			return nil, err
		}
	}
	if p.Date != nil {
		d := timezone.StartOfDay(*p.Date, uc.loc)
		p.Date = &d
	}

	if err := uc.derive(ctx, current, &p); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: updated.ID,
	})

	return updated, nil
}

func (uc *UpdateAppointment) derive(ctx context.Context, current *models.Appointment, p *domain.Patch) error {
	if p.ClientID != nil && p.ClientName == nil {
		c, err := uc.catalog.client(ctx, *p.ClientID)
		if err != nil {
			return err
		}
		if c != nil {
			name := c.FullName()
			p.ClientName = &name
		}
	}

	if p.EmployeeID != nil && p.EmployeeName == nil {
		e, err := uc.catalog.employee(ctx, *p.EmployeeID)
		if err != nil {
			return err
		}
		if e != nil {
			name := e.FullName()
			p.EmployeeName = &name
		}
	}

	if p.ServiceID == nil && p.StartTime == nil {
		return nil
	}

	serviceID := current.ServiceID
	if p.ServiceID != nil {
		serviceID = *p.ServiceID
	}
	s, err := uc.catalog.service(ctx, serviceID)
	if err != nil || s == nil {
		return err
	}

	if p.ServiceID != nil {
		if p.ServiceName == nil {
			p.ServiceName = &s.Name
		}
		if p.Price == nil {
			p.Price = &s.Price
		}
	}

	if p.EndTime == nil {
		start := current.StartTime
		if p.StartTime != nil {
			start = *p.StartTime
		}
		end, err := domain.EndTime(start, s.Duration)
		if err != nil {
			return err
		}
		p.EndTime = &end
	}
	return nil
}
