package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-admin/internal/models"
)

// Repository is the appointment store. Every method returns copies; callers
// never hold references into stored state.
type Repository interface {
	List(ctx context.Context) ([]models.Appointment, error)

	GetByID(ctx context.Context, id string) (*models.Appointment, error)

	// Create assigns ID and CreatedAt.
	Create(ctx context.Context, ap models.Appointment) (*models.Appointment, error)

	Update(ctx context.Context, id string, p Patch) (*models.Appointment, error)

	UpdateStatus(ctx context.Context, id string, s Status) (*models.Appointment, error)

	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id string) (bool, error)

	// Import stores records as given, ids and timestamps included.
	Import(ctx context.Context, aps ...models.Appointment) error
}
