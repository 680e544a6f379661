package appointment

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/domain/employee"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

type GetAvailability struct {
	repo    domain.Repository
	catalog Catalog
	now     timezone.Clock
	loc     *time.Location
}

func NewGetAvailability(
	repo domain.Repository,
	catalog Catalog,
	now timezone.Clock,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{
		repo:    repo,
		catalog: catalog,
		now:     now,
		loc:     loc,
	}
}

type busy struct {
	start, end int
}

// Execute lists the free slots of one service length inside the employee's
// working hours on in.Date. Pending, confirmed and in-progress appointments
// block time; slots already past are skipped.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	svc, err := uc.catalog.Services.GetByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	emp, err := uc.catalog.Employees.GetByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}

	slots := []domain.TimeSlot{}
	if !emp.IsActive || svc.Duration <= 0 {
		return slots, nil
	}

	day := timezone.StartOfDay(in.Date, uc.loc)
	wh, ok := employee.DayFor(*emp, day)
	if !ok {
		return slots, nil
	}

	dayStart, err := domain.ParseClock(wh.StartTime)
	if err != nil {
		return slots, nil
	}
	dayEnd, err := domain.ParseClock(wh.EndTime)
	if err != nil {
		return slots, nil
	}

	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var taken []busy
	for _, ap := range all {
		if ap.EmployeeID != emp.ID || !domain.Blocks(domain.Status(ap.Status)) {
			continue
		}
		if !timezone.SameDay(ap.Date, day, uc.loc) {
			continue
		}
		s, err1 := domain.ParseClock(ap.StartTime)
		e, err2 := domain.ParseClock(ap.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		taken = append(taken, busy{start: s, end: e})
	}
	sort.Slice(taken, func(i, j int) bool { return taken[i].start < taken[j].start })

	earliest := dayStart
	now := uc.now().In(uc.loc)
	if timezone.SameDay(now, day, uc.loc) {
		earliest = max(earliest, now.Hour()*60+now.Minute())
	}

	apIdx := 0
	for cur := dayStart; cur+svc.Duration <= dayEnd; cur += svc.Duration {
		slotStart := cur
		slotEnd := cur + svc.Duration

		if slotStart < earliest {
			continue
		}

		// skip appointments that end before this slot
		for apIdx < len(taken) && taken[apIdx].end <= slotStart {
			apIdx++
		}

		conflict := false
		for i := apIdx; i < len(taken) && taken[i].start < slotEnd; i++ {
			if slotStart < taken[i].end && slotEnd > taken[i].start {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start: domain.FormatClock(slotStart),
				End:   domain.FormatClock(slotEnd),
			})
		}
	}

	return slots, nil
}
