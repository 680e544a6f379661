package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-admin/internal/audit"
	domain "github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actor string,
	id string,
	status domain.Status,
) (*models.Appointment, error) {

	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	ap, err := uc.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_" + string(status),
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
