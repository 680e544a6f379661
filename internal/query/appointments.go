// Package query filters, searches and orders record snapshots. Every function
// is pure: inputs are never modified and results are new slices.
package query

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func AppointmentsByStatus(aps []models.Appointment, s appointment.Status) []models.Appointment {
	return filter(aps, func(ap models.Appointment) bool { return ap.Status == string(s) })
}

func AppointmentsByClient(aps []models.Appointment, clientID string) []models.Appointment {
	return filter(aps, func(ap models.Appointment) bool { return ap.ClientID == clientID })
}

func AppointmentsByEmployee(aps []models.Appointment, employeeID string) []models.Appointment {
	return filter(aps, func(ap models.Appointment) bool { return ap.EmployeeID == employeeID })
}

// AppointmentsOnDay keeps the appointments whose date falls on day's
// calendar date in loc.
func AppointmentsOnDay(aps []models.Appointment, day time.Time, loc *time.Location) []models.Appointment {
	return filter(aps, func(ap models.Appointment) bool { return timezone.SameDay(ap.Date, day, loc) })
}

// Upcoming keeps pending and confirmed appointments dated today or later,
// earliest first.
func Upcoming(aps []models.Appointment, now time.Time, loc *time.Location) []models.Appointment {
	today := timezone.StartOfDay(now, loc)
	out := filter(aps, func(ap models.Appointment) bool {
		return !ap.Date.Before(today) && appointment.IsOpen(appointment.Status(ap.Status))
	})

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// SearchAppointments matches the client, employee and service name snapshots.
func SearchAppointments(aps []models.Appointment, term string) []models.Appointment {
	m := newMatcher(term)
	if m.empty() {
		return filter(aps, func(models.Appointment) bool { return true })
	}
	return filter(aps, func(ap models.Appointment) bool {
		return m.fold(ap.ClientName) || m.fold(ap.EmployeeName) || m.fold(ap.ServiceName)
	})
}

// AppointmentFilter narrows an appointment listing. Zero fields match all.
type AppointmentFilter struct {
	Status     appointment.Status
	ClientID   string
	EmployeeID string
	Day        *time.Time
	Search     string
}

// FilterAppointments applies f and orders the result by date, newest first,
// then by start time.
func FilterAppointments(aps []models.Appointment, f AppointmentFilter, loc *time.Location) []models.Appointment {
	m := newMatcher(f.Search)
	out := filter(aps, func(ap models.Appointment) bool {
		if f.Status != "" && ap.Status != string(f.Status) {
			return false
		}
		if f.ClientID != "" && ap.ClientID != f.ClientID {
			return false
		}
		if f.EmployeeID != "" && ap.EmployeeID != f.EmployeeID {
			return false
		}
		if f.Day != nil && !timezone.SameDay(ap.Date, *f.Day, loc) {
			return false
		}
		if !m.empty() && !(m.fold(ap.ClientName) || m.fold(ap.EmployeeName) || m.fold(ap.ServiceName)) {
			return false
		}
		return true
	})

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}
