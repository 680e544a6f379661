package employee

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/models"
)

// WeekdayKey is the schedule key for t's weekday ("monday", ...).
func WeekdayKey(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// DayFor returns the schedule entry for the weekday of day. ok is false when
// the employee does not work that day or the entry is incomplete.
func DayFor(e models.Employee, day time.Time) (models.DaySchedule, bool) {
	ds, found := e.Schedule[WeekdayKey(day)]
	if !found || !ds.IsWorking || ds.StartTime == "" || ds.EndTime == "" {
		return models.DaySchedule{}, false
	}
	return ds, true
}

// IsWithinSchedule reports whether [start,end) minutes after midnight fits the
// employee's working hours on day.
func IsWithinSchedule(e models.Employee, day time.Time, start, end int) bool {
	ds, ok := DayFor(e, day)
	if !ok {
		return false
	}

	workStart, err := parseHM(ds.StartTime)
	if err != nil {
		return false
	}
	workEnd, err := parseHM(ds.EndTime)
	if err != nil {
		return false
	}

	return start >= workStart && end <= workEnd
}

// DefaultSchedule is Monday to Saturday, 09:00 to 18:00.
func DefaultSchedule() models.EmployeeSchedule {
	s := models.EmployeeSchedule{}
	for _, d := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		s[d] = models.DaySchedule{IsWorking: true, StartTime: "09:00", EndTime: "18:00"}
	}
	s["sunday"] = models.DaySchedule{IsWorking: false}
	return s
}

func parseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidWeekday reports whether key names a weekday.
func ValidWeekday(key string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == key {
			return true
		}
	}
	return false
}
