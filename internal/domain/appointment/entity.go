package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

var (
	ErrNotFound    = httperr.ErrBusiness("appointment_not_found")
	ErrInvalidTime = httperr.ErrBusiness("invalid_time")
)

// Patch carries the fields of an update. Nil fields are left untouched.
type Patch struct {
	ClientID     *string
	ClientName   *string
	EmployeeID   *string
	EmployeeName *string
	ServiceID    *string
	ServiceName  *string
	Date         *time.Time
	StartTime    *string
	EndTime      *string
	Status       *Status
	Notes        *string
	Price        *int64
}

// Apply merges p onto ap and stamps UpdatedAt.
func (p Patch) Apply(ap *models.Appointment, now time.Time) {
	if p.ClientID != nil {
		ap.ClientID = *p.ClientID
	}
	if p.ClientName != nil {
		ap.ClientName = *p.ClientName
	}
	if p.EmployeeID != nil {
		ap.EmployeeID = *p.EmployeeID
	}
	if p.EmployeeName != nil {
		ap.EmployeeName = *p.EmployeeName
	}
	if p.ServiceID != nil {
		ap.ServiceID = *p.ServiceID
	}
	if p.ServiceName != nil {
		ap.ServiceName = *p.ServiceName
	}
	if p.Date != nil {
		ap.Date = *p.Date
	}
	if p.StartTime != nil {
		ap.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		ap.EndTime = *p.EndTime
	}
	if p.Status != nil {
		ap.Status = string(*p.Status)
	}
	if p.Notes != nil {
		ap.Notes = *p.Notes
	}
	if p.Price != nil {
		ap.Price = *p.Price
	}
	ap.UpdatedAt = &now
}

// ===============================
// Domain Actions
// ===============================

// SetStatus moves ap to s and stamps UpdatedAt. Any transition is allowed.
func SetStatus(ap *models.Appointment, s Status, now time.Time) error {
	if !s.Valid() {
		return ErrInvalidStatus
	}
	ap.Status = string(s)
	ap.UpdatedAt = &now
	return nil
}

// ===============================
// Clock times ("HH:MM")
// ===============================

// ParseClock converts "HH:MM" into minutes after midnight.
func ParseClock(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, ErrInvalidTime
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes after midnight as "HH:MM". Values past 24h keep
// counting hours ("25:30") rather than wrapping to the next day.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// EndTime returns start plus the service duration, as "HH:MM".
func EndTime(start string, durationMin int) (string, error) {
	m, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	return FormatClock(m + durationMin), nil
}
