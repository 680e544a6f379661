package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/audit"
	domain "github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Actor string

	ClientID   string
	EmployeeID string
	ServiceID  string

	Date      time.Time
	StartTime string
	EndTime   string

	Status domain.Status
	Notes  string
	Price  int64
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	catalog Catalog
	audit   *audit.Dispatcher
	loc     *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	catalog Catalog,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		catalog: catalog,
		audit:   audit,
		loc:     loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Status and clock times
	// --------------------------------------------------
	status := in.Status
	if status == "" {
		status = domain.InitialStatus()
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if in.Date.IsZero() {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if _, err := domain.ParseClock(in.StartTime); err != nil {
		return nil, err
	}

	ap := models.Appointment{
		ClientID:   in.ClientID,
		EmployeeID: in.EmployeeID,
		ServiceID:  in.ServiceID,
		Date:       timezone.StartOfDay(in.Date, uc.loc),
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Status:     string(status),
		Notes:      in.Notes,
		Price:      in.Price,
	}

	// --------------------------------------------------
	// Name snapshots, price and end time from the catalog
	// --------------------------------------------------
	if err := fillFromCatalog(ctx, uc.catalog, &ap); err != nil {
		return nil, err
	}
	if ap.EndTime == "" {
		ap.EndTime = ap.StartTime
	}

	created, err := uc.repo.Create(ctx, ap)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: created.ID,
		Metadata: map[string]any{
			"client_id":  created.ClientID,
			"service_id": created.ServiceID,
			"date":       created.Date.Format("2006-01-02"),
			"start_time": created.StartTime,
		},
	})

	return created, nil
}

// fillFromCatalog copies names from the referenced records and, when the
// service exists, its price and the end time derived from its duration.
func fillFromCatalog(ctx context.Context, catalog Catalog, ap *models.Appointment) error {
	c, err := catalog.client(ctx, ap.ClientID)
	if err != nil {
		return err
	}
	if c != nil {
		ap.ClientName = c.FullName()
	}

	e, err := catalog.employee(ctx, ap.EmployeeID)
	if err != nil {
		return err
	}
	if e != nil {
		ap.EmployeeName = e.FullName()
	}

	s, err := catalog.service(ctx, ap.ServiceID)
	if err != nil {
		return err
	}
	if s != nil {
		ap.ServiceName = s.Name
		ap.Price = s.Price
		end, err := domain.EndTime(ap.StartTime, s.Duration)
		if err != nil {
			return err
		}
		ap.EndTime = end
	}
	return nil
}
