package report

import (
	"context"
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/domain/client"
	"github.com/BruksfildServices01/salon-admin/internal/domain/employee"
	"github.com/BruksfildServices01/salon-admin/internal/domain/service"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/query"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

// Service reads fresh snapshots from the stores on every call.
type Service struct {
	appointments appointment.Repository
	clients      client.Repository
	employees    employee.Repository
	services     service.Repository

	now timezone.Clock
	loc *time.Location
}

func NewService(
	appointments appointment.Repository,
	clients client.Repository,
	employees employee.Repository,
	services service.Repository,
	now timezone.Clock,
	loc *time.Location,
) *Service {
	return &Service{
		appointments: appointments,
		clients:      clients,
		employees:    employees,
		services:     services,
		now:          now,
		loc:          loc,
	}
}

// ======================================================
// DASHBOARD
// ======================================================

type DashboardStats struct {
	TodayAppointments   int   `json:"today_appointments"`
	TodayRevenue        int64 `json:"today_revenue"`
	MonthRevenue        int64 `json:"month_revenue"`
	ActiveClients       int   `json:"active_clients"`
	PendingAppointments int   `json:"pending_appointments"`
	CompletedToday      int   `json:"completed_today"`
}

func (s *Service) DashboardStats(ctx context.Context) (DashboardStats, error) {
	aps, err := s.appointments.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	active, err := s.clients.ListActive(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	now := s.now()
	var st DashboardStats
	for _, ap := range aps {
		status := appointment.Status(ap.Status)
		if timezone.SameDay(ap.Date, now, s.loc) {
			st.TodayAppointments++
			if completed(ap) {
				st.TodayRevenue += ap.Price
				st.CompletedToday++
			}
		}
		if completed(ap) && timezone.SameMonth(ap.Date, now, s.loc) {
			st.MonthRevenue += ap.Price
		}
		if appointment.IsOpen(status) {
			st.PendingAppointments++
		}
	}
	st.ActiveClients = len(active)
	return st, nil
}

func (s *Service) RevenueLastDays(ctx context.Context, n int) ([]DayRevenue, error) {
	aps, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	return DailyRevenue(aps, LastDays(s.now(), n, s.loc), s.loc), nil
}

func (s *Service) TopServices(ctx context.Context, limit int) ([]TopService, error) {
	aps, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	return TopServices(aps, limit), nil
}

func (s *Service) Upcoming(ctx context.Context, limit int) ([]models.Appointment, error) {
	aps, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	return truncate(query.Upcoming(aps, s.now(), s.loc), limit), nil
}

// RecentClients lists the latest registrations first.
func (s *Service) RecentClients(ctx context.Context, limit int) ([]models.Client, error) {
	cs, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].RegisteredAt.After(cs[j].RegisteredAt) })
	return truncate(cs, limit), nil
}

type Dashboard struct {
	Stats         DashboardStats       `json:"stats"`
	Revenue       []DayRevenue         `json:"revenue"`
	RevenueGrowth float64              `json:"revenue_growth"`
	TopServices   []TopService         `json:"top_services"`
	Upcoming      []models.Appointment `json:"upcoming"`
	RecentClients []models.Client      `json:"recent_clients"`
}

const (
	dashboardDays  = 7
	dashboardLimit = 5
)

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	var (
		d   Dashboard
		err error
	)
	if d.Stats, err = s.DashboardStats(ctx); err != nil {
		return nil, err
	}
	if d.Revenue, err = s.RevenueLastDays(ctx, dashboardDays); err != nil {
		return nil, err
	}
	d.RevenueGrowth = RevenueGrowth(d.Revenue)
	if d.TopServices, err = s.TopServices(ctx, dashboardLimit); err != nil {
		return nil, err
	}
	if d.Upcoming, err = s.Upcoming(ctx, dashboardLimit); err != nil {
		return nil, err
	}
	if d.RecentClients, err = s.RecentClients(ctx, dashboardLimit); err != nil {
		return nil, err
	}
	return &d, nil
}

// ======================================================
// REPORTS
// ======================================================

func (s *Service) MonthlyRevenue(ctx context.Context, months int) ([]MonthRevenue, error) {
	aps, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlyRevenue(aps, s.now(), months, s.loc), nil
}

func (s *Service) EmployeePerformance(ctx context.Context) ([]EmployeePerformanceRow, error) {
	es, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	aps, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	return EmployeePerformance(es, aps), nil
}

func (s *Service) ServiceReports(ctx context.Context) ([]ServiceReportRow, error) {
	ss, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	aps, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	return ServiceReports(ss, aps), nil
}

func (s *Service) ClientSummary(ctx context.Context) (ClientReport, error) {
	cs, err := s.clients.List(ctx)
	if err != nil {
		return ClientReport{}, err
	}
	return ClientSummary(cs, s.now(), s.loc), nil
}

func (s *Service) RevenueByCategory(ctx context.Context) ([]CategoryRevenue, error) {
	ss, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	aps, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	return RevenueByCategory(ss, aps), nil
}

func (s *Service) StatusDistribution(ctx context.Context) ([]StatusCount, error) {
	aps, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	return StatusDistribution(aps), nil
}

func (s *Service) Totals(ctx context.Context) (Totals, error) {
	aps, err := s.appointments.List(ctx)
	if err != nil {
		return Totals{}, err
	}
	return ComputeTotals(aps), nil
}

type Full struct {
	MonthlyRevenue      []MonthRevenue           `json:"monthly_revenue"`
	EmployeePerformance []EmployeePerformanceRow `json:"employee_performance"`
	Services            []ServiceReportRow       `json:"services"`
	Clients             ClientReport             `json:"clients"`
	Categories          []CategoryRevenue        `json:"categories"`
	Status              []StatusCount            `json:"status"`
	Totals              Totals                   `json:"totals"`
}

const defaultMonths = 6

func (s *Service) Full(ctx context.Context) (*Full, error) {
	var (
		f   Full
		err error
	)
	if f.MonthlyRevenue, err = s.MonthlyRevenue(ctx, defaultMonths); err != nil {
		return nil, err
	}
	if f.EmployeePerformance, err = s.EmployeePerformance(ctx); err != nil {
		return nil, err
	}
	if f.Services, err = s.ServiceReports(ctx); err != nil {
		return nil, err
	}
	if f.Clients, err = s.ClientSummary(ctx); err != nil {
		return nil, err
	}
	if f.Categories, err = s.RevenueByCategory(ctx); err != nil {
		return nil, err
	}
	if f.Status, err = s.StatusDistribution(ctx); err != nil {
		return nil, err
	}
	if f.Totals, err = s.Totals(ctx); err != nil {
		return nil, err
	}
	return &f, nil
}
