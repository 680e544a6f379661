package seed

import (
	"math/rand/v2"
	"sort"
	"strconv"
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

const (
	pastDays   = 60
	futureDays = 7
)

// Appointment generation draws only from these subsets of the catalog.
var (
	bookingClients   = []string{"1", "2", "3", "5", "6", "8", "10", "12", "14", "16"}
	bookingEmployees = []string{"1", "2", "3", "4", "5"}
	bookingServices  = []string{"1", "2", "3", "6", "7", "10", "13", "15"}
)

type generator struct {
	rng *rand.Rand
	loc *time.Location

	clients   []models.Client
	employees []models.Employee
	services  []models.Service

	next int
	out  []models.Appointment
}

// Appointments builds the appointment history around now: pastDays days
// ending today plus futureDays days ahead. The same seed and day always give
// the same records. The result is ordered by date, newest first.
func Appointments(seed int64, now time.Time, loc *time.Location) []models.Appointment {
	g := &generator{
		rng:       rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x5a10)),
		loc:       loc,
		clients:   pick(Clients(loc), bookingClients, func(c models.Client) string { return c.ID }),
		employees: pick(Employees(loc), bookingEmployees, func(e models.Employee) string { return e.ID }),
		services:  pick(Services(), bookingServices, func(s models.Service) string { return s.ID }),
	}

	today := timezone.StartOfDay(now, loc)

	for daysAgo := 0; daysAgo < pastDays; daysAgo++ {
		day := today.AddDate(0, 0, -daysAgo)
		perDay := 3 + g.rng.IntN(3)
		for i := 0; i < perDay; i++ {
			ap := g.draw(day)
			ap.Status = string(g.pastStatus(daysAgo))
			ap.CreatedAt = day.Add(-time.Duration(g.rng.Float64() * float64(7*24*time.Hour)))
			g.out = append(g.out, ap)
		}
	}

	for daysAhead := 1; daysAhead <= futureDays; daysAhead++ {
		day := today.AddDate(0, 0, daysAhead)
		perDay := 2 + g.rng.IntN(4)
		for i := 0; i < perDay; i++ {
			ap := g.draw(day)
			ap.Status = string(appointment.StatusPending)
			if g.rng.Float64() < 0.7 {
				ap.Status = string(appointment.StatusConfirmed)
			}
			ap.CreatedAt = now
			g.out = append(g.out, ap)
		}
	}

	sort.SliceStable(g.out, func(i, j int) bool { return g.out[i].Date.After(g.out[j].Date) })
	return g.out
}

func (g *generator) draw(day time.Time) models.Appointment {
	c := g.clients[g.rng.IntN(len(g.clients))]
	e := g.employees[g.rng.IntN(len(g.employees))]
	s := g.services[g.rng.IntN(len(g.services))]

	start := (9 + g.rng.IntN(8)) * 60

	g.next++
	return models.Appointment{
		ID:           strconv.Itoa(g.next),
		ClientID:     c.ID,
		ClientName:   c.FullName(),
		EmployeeID:   e.ID,
		EmployeeName: e.FullName(),
		ServiceID:    s.ID,
		ServiceName:  s.Name,
		Date:         day,
		StartTime:    appointment.FormatClock(start),
		EndTime:      appointment.FormatClock(start + s.Duration),
		Price:        s.Price,
	}
}

func (g *generator) pastStatus(daysAgo int) appointment.Status {
	r := g.rng.Float64()
	switch {
	case daysAgo == 0:
		switch {
		case r < 0.4:
			return appointment.StatusCompleted
		case r < 0.6:
			return appointment.StatusInProgress
		case r < 0.8:
			return appointment.StatusConfirmed
		default:
			return appointment.StatusPending
		}
	case daysAgo < 7:
		if r < 0.9 {
			return appointment.StatusCompleted
		}
		return appointment.StatusCancelled
	default:
		if r < 0.95 {
			return appointment.StatusCompleted
		}
		return appointment.StatusCancelled
	}
}

func pick[T any](all []T, ids []string, id func(T) string) []T {
	byID := make(map[string]T, len(all))
	for _, v := range all {
		byID[id(v)] = v
	}
	out := make([]T, 0, len(ids))
	for _, want := range ids {
		if v, ok := byID[want]; ok {
			out = append(out, v)
		}
	}
	return out
}
