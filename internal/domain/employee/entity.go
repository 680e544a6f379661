package employee

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

var ErrNotFound = httperr.ErrBusiness("employee_not_found")

type Patch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	Position    *string
	Specialties *[]string
	IsActive    *bool
	HireDate    *time.Time
	PhotoURL    *string
	Schedule    *models.EmployeeSchedule
}

func (p Patch) Apply(e *models.Employee) {
	if p.FirstName != nil {
		e.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		e.LastName = *p.LastName
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Phone != nil {
		e.Phone = *p.Phone
	}
	if p.Position != nil {
		e.Position = *p.Position
	}
	if p.Specialties != nil {
		e.Specialties = append([]string{}, (*p.Specialties)...)
	}
	if p.IsActive != nil {
		e.IsActive = *p.IsActive
	}
	if p.HireDate != nil {
		e.HireDate = *p.HireDate
	}
	if p.PhotoURL != nil {
		e.PhotoURL = *p.PhotoURL
	}
	if p.Schedule != nil {
		e.Schedule = models.Employee{Schedule: *p.Schedule}.Clone().Schedule
	}
}

type Repository interface {
	List(ctx context.Context) ([]models.Employee, error)
	ListActive(ctx context.Context) ([]models.Employee, error)
	GetByID(ctx context.Context, id string) (*models.Employee, error)

	// Create assigns ID only.
	Create(ctx context.Context, e models.Employee) (*models.Employee, error)
	Update(ctx context.Context, id string, p Patch) (*models.Employee, error)
	Delete(ctx context.Context, id string) (bool, error)
	ToggleActive(ctx context.Context, id string) (*models.Employee, error)

	Import(ctx context.Context, es ...models.Employee) error
}
