package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

type CompleteAppointment struct {
	status *UpdateStatus
}

func NewCompleteAppointment(status *UpdateStatus) *CompleteAppointment {
	return &CompleteAppointment{status: status}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	actor string,
	id string,
) (*models.Appointment, error) {
	return uc.status.Execute(ctx, actor, id, domain.StatusCompleted)
}
