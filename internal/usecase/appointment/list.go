package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/query"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(repo domain.Repository, loc *time.Location) *ListAppointments {
	return &ListAppointments{repo: repo, loc: loc}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	f query.AppointmentFilter,
) ([]models.Appointment, error) {

	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.FilterAppointments(all, f, uc.loc), nil
}

type Upcoming struct {
	repo domain.Repository
	now  timezone.Clock
	loc  *time.Location
}

func NewUpcoming(repo domain.Repository, now timezone.Clock, loc *time.Location) *Upcoming {
	return &Upcoming{repo: repo, now: now, loc: loc}
}

// Execute returns the next open appointments. limit <= 0 returns all.
func (uc *Upcoming) Execute(ctx context.Context, limit int) ([]models.Appointment, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := query.Upcoming(all, uc.now(), uc.loc)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
