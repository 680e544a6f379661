package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

type CancelAppointment struct {
	status *UpdateStatus
}

func NewCancelAppointment(status *UpdateStatus) *CancelAppointment {
	return &CancelAppointment{status: status}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor string,
	id string,
) (*models.Appointment, error) {
	return uc.status.Execute(ctx, actor, id, domain.StatusCancelled)
}
