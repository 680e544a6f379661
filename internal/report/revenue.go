// Package report aggregates record snapshots into dashboard and report
// figures. Only completed appointments count toward revenue.
package report

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/format"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

func completed(ap models.Appointment) bool {
	return ap.Status == string(appointment.StatusCompleted)
}

type DayRevenue struct {
	Date   time.Time `json:"date"`
	Label  string    `json:"label"`
	Amount int64     `json:"amount"`
}

// DailyRevenue returns one bucket per day in days, in the order given.
// Days without completed appointments get a zero amount.
func DailyRevenue(aps []models.Appointment, days []time.Time, loc *time.Location) []DayRevenue {
	out := make([]DayRevenue, 0, len(days))
	for _, d := range days {
		d = timezone.StartOfDay(d, loc)
		var amount int64
		for _, ap := range aps {
			if completed(ap) && timezone.SameDay(ap.Date, d, loc) {
				amount += ap.Price
			}
		}
		out = append(out, DayRevenue{Date: d, Label: format.ShortDay(d), Amount: amount})
	}
	return out
}

// LastDays lists the n calendar days ending today, oldest first.
func LastDays(now time.Time, n int, loc *time.Location) []time.Time {
	if n <= 0 {
		return []time.Time{}
	}
	today := timezone.StartOfDay(now, loc)
	out := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, today.AddDate(0, 0, -i))
	}
	return out
}

// RevenueGrowth is the percentage change of the last bucket over the one
// before it. A jump from zero counts as 100%.
func RevenueGrowth(buckets []DayRevenue) float64 {
	if len(buckets) < 2 {
		return 0
	}
	prev := buckets[len(buckets)-2].Amount
	last := buckets[len(buckets)-1].Amount
	if prev == 0 {
		if last > 0 {
			return 100
		}
		return 0
	}
	return float64(last-prev) / float64(prev) * 100
}

type MonthRevenue struct {
	Month        time.Time `json:"month"`
	Label        string    `json:"label"`
	Revenue      int64     `json:"revenue"`
	Appointments int       `json:"appointments"`
}

// MonthlyRevenue returns one bucket per calendar month for the n months
// ending with now's month, oldest first.
func MonthlyRevenue(aps []models.Appointment, now time.Time, n int, loc *time.Location) []MonthRevenue {
	if n <= 0 {
		return []MonthRevenue{}
	}
	first := timezone.StartOfMonth(now, loc)
	out := make([]MonthRevenue, 0, n)
	for i := n - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		bucket := MonthRevenue{Month: m, Label: format.MonthYear(m)}
		for _, ap := range aps {
			if completed(ap) && timezone.SameMonth(ap.Date, m, loc) {
				bucket.Revenue += ap.Price
				bucket.Appointments++
			}
		}
		out = append(out, bucket)
	}
	return out
}

type TopService struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Revenue int64  `json:"revenue"`
}

// TopServices groups completed appointments by service name and orders them
// by count. Equal counts keep first-appearance order. limit <= 0 keeps all.
func TopServices(aps []models.Appointment, limit int) []TopService {
	index := map[string]int{}
	out := make([]TopService, 0)
	for _, ap := range aps {
		if !completed(ap) {
			continue
		}
		i, ok := index[ap.ServiceName]
		if !ok {
			i = len(out)
			index[ap.ServiceName] = i
			out = append(out, TopService{Name: ap.ServiceName})
		}
		out[i].Count++
		out[i].Revenue += ap.Price
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return truncate(out, limit)
}

type Totals struct {
	Revenue       int64   `json:"revenue"`
	Completed     int     `json:"completed"`
	AverageTicket float64 `json:"average_ticket"`
}

func ComputeTotals(aps []models.Appointment) Totals {
	var t Totals
	for _, ap := range aps {
		if completed(ap) {
			t.Revenue += ap.Price
			t.Completed++
		}
	}
	if t.Completed > 0 {
		t.AverageTicket = float64(t.Revenue) / float64(t.Completed)
	}
	return t
}

func truncate[T any](in []T, limit int) []T {
	if limit > 0 && len(in) > limit {
		return in[:limit]
	}
	return in
}

func percent(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
