package client

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

var ErrNotFound = httperr.ErrBusiness("client_not_found")

type Patch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	BirthDate    *time.Time
	Address      *string
	Notes        *string
	IsActive     *bool
	LastVisit    *time.Time
	TotalVisits  *int
	TotalSpent   *int64
	Preferences  *models.ClientPreferences
	RegisteredAt *time.Time
}

// Apply merges p onto c. Clients carry no update timestamp.
func (p Patch) Apply(c *models.Client) {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.BirthDate != nil {
		t := *p.BirthDate
		c.BirthDate = &t
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
	if p.LastVisit != nil {
		t := *p.LastVisit
		c.LastVisit = &t
	}
	if p.TotalVisits != nil {
		c.TotalVisits = *p.TotalVisits
	}
	if p.TotalSpent != nil {
		c.TotalSpent = *p.TotalSpent
	}
	if p.Preferences != nil {
		prefs := models.Client{Preferences: p.Preferences}.Clone().Preferences
		c.Preferences = prefs
	}
	if p.RegisteredAt != nil {
		c.RegisteredAt = *p.RegisteredAt
	}
}

// PrepareNew resets the generated fields of a client about to be created.
func PrepareNew(c *models.Client, id string, now time.Time) {
	c.ID = id
	c.RegisteredAt = now
	c.TotalVisits = 0
	c.TotalSpent = 0
}

type Repository interface {
	List(ctx context.Context) ([]models.Client, error)
	ListActive(ctx context.Context) ([]models.Client, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)

	// Create assigns ID and RegisteredAt and zeroes the visit counters.
	Create(ctx context.Context, c models.Client) (*models.Client, error)
	Update(ctx context.Context, id string, p Patch) (*models.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
	ToggleActive(ctx context.Context, id string) (*models.Client, error)

	Import(ctx context.Context, cs ...models.Client) error
}
