package report

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

type EmployeePerformanceRow struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Revenue        int64   `json:"revenue"`
	CompletionRate float64 `json:"completion_rate"`
}

// EmployeePerformance reports every employee, highest revenue first.
func EmployeePerformance(es []models.Employee, aps []models.Appointment) []EmployeePerformanceRow {
	out := make([]EmployeePerformanceRow, 0, len(es))
	for _, e := range es {
		row := EmployeePerformanceRow{ID: e.ID, Name: e.FullName()}
		for _, ap := range aps {
			if ap.EmployeeID != e.ID {
				continue
			}
			row.Total++
			if completed(ap) {
				row.Completed++
				row.Revenue += ap.Price
			}
		}
		row.CompletionRate = percent(int64(row.Completed), int64(row.Total))
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out
}

type ServiceReportRow struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Appointments int     `json:"appointments"`
	Revenue      int64   `json:"revenue"`
	AveragePrice float64 `json:"average_price"`
}

// ServiceReports reports every service, highest revenue first.
func ServiceReports(ss []models.Service, aps []models.Appointment) []ServiceReportRow {
	out := make([]ServiceReportRow, 0, len(ss))
	for _, s := range ss {
		row := ServiceReportRow{ID: s.ID, Name: s.Name}
		for _, ap := range aps {
			if ap.ServiceID == s.ID && completed(ap) {
				row.Appointments++
				row.Revenue += ap.Price
			}
		}
		if row.Appointments > 0 {
			row.AveragePrice = float64(row.Revenue) / float64(row.Appointments)
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out
}

type TopClient struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Visits int    `json:"visits"`
	Spent  int64  `json:"spent"`
}

type ClientReport struct {
	Total        int         `json:"total"`
	Active       int         `json:"active"`
	NewThisMonth int         `json:"new_this_month"`
	TopClients   []TopClient `json:"top_clients"`
}

const topClientsLimit = 10

func ClientSummary(cs []models.Client, now time.Time, loc *time.Location) ClientReport {
	monthStart := timezone.StartOfMonth(now, loc)
	r := ClientReport{Total: len(cs)}

	for _, c := range cs {
		if c.IsActive {
			r.Active++
		}
		if !c.RegisteredAt.Before(monthStart) {
			r.NewThisMonth++
		}
	}

	sorted := append([]models.Client(nil), cs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].TotalSpent > sorted[j].TotalSpent })

	r.TopClients = make([]TopClient, 0, topClientsLimit)
	for _, c := range truncate(sorted, topClientsLimit) {
		r.TopClients = append(r.TopClients, TopClient{
			ID:     c.ID,
			Name:   c.FullName(),
			Visits: c.TotalVisits,
			Spent:  c.TotalSpent,
		})
	}
	return r
}

type CategoryRevenue struct {
	Category   string  `json:"category"`
	Revenue    int64   `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

// RevenueByCategory resolves each completed appointment's category through
// its service. Appointments whose service no longer exists are skipped.
func RevenueByCategory(ss []models.Service, aps []models.Appointment) []CategoryRevenue {
	category := make(map[string]string, len(ss))
	for _, s := range ss {
		category[s.ID] = s.Category
	}

	index := map[string]int{}
	out := make([]CategoryRevenue, 0)
	var total int64
	for _, ap := range aps {
		if !completed(ap) {
			continue
		}
		cat, ok := category[ap.ServiceID]
		if !ok {
			continue
		}
		i, seen := index[cat]
		if !seen {
			i = len(out)
			index[cat] = i
			out = append(out, CategoryRevenue{Category: cat})
		}
		out[i].Revenue += ap.Price
		total += ap.Price
	}

	for i := range out {
		out[i].Percentage = percent(out[i].Revenue, total)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out
}

type StatusCount struct {
	Status     appointment.Status     `json:"status"`
	Info       appointment.StatusInfo `json:"info"`
	Count      int                    `json:"count"`
	Percentage float64                `json:"percentage"`
}

// StatusDistribution counts appointments per status, listing only statuses
// that occur, in canonical status order. Records with an unknown status get no
// row but still count toward the percentage denominator.
func StatusDistribution(aps []models.Appointment) []StatusCount {
	counts := map[appointment.Status]int{}
	for _, ap := range aps {
		counts[appointment.Status(ap.Status)]++
	}

	total := int64(len(aps))
	out := make([]StatusCount, 0, len(counts))
	for _, s := range appointment.AllStatuses {
		n, ok := counts[s]
		if !ok {
			continue
		}
		out = append(out, StatusCount{
			Status:     s,
			Info:       appointment.Info(s),
			Count:      n,
			Percentage: percent(int64(n), total),
		})
	}
	return out
}
