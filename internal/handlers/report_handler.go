package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/dto"
	"github.com/BruksfildServices01/salon-admin/internal/format"
	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/httpresp"
	"github.com/BruksfildServices01/salon-admin/internal/report"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

const maxReportMonths = 24

type ReportHandler struct {
	reports *report.Service
	now     timezone.Clock
	loc     *time.Location
}

func NewReportHandler(reports *report.Service, now timezone.Clock, loc *time.Location) *ReportHandler {
	return &ReportHandler{reports: reports, now: now, loc: loc}
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.reports.Dashboard(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": d.Stats,
		"stats_display": gin.H{
			"today_revenue": format.Currency(d.Stats.TodayRevenue),
			"month_revenue": format.Currency(d.Stats.MonthRevenue),
		},
		"revenue":        d.Revenue,
		"revenue_growth": d.RevenueGrowth,
		"top_services":   d.TopServices,
		"upcoming":       dto.Appointments(d.Upcoming, h.loc),
		"recent_clients": dto.Clients(d.RecentClients, h.now(), h.loc),
		"generated_at":   format.DateTime(h.now().In(h.loc)),
	})
}

// ======================================================
// REPORTS
// ======================================================

func (h *ReportHandler) All(c *gin.Context) {
	f, err := h.reports.Full(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, f)
}

// MonthlyRevenue takes months (1..24, default 6).
func (h *ReportHandler) MonthlyRevenue(c *gin.Context) {
	months := queryInt(c, "months", 6)
	if months < 1 || months > maxReportMonths {
		httperr.BadRequest(c, "invalid_months", "Número de meses inválido.")
		return
	}

	rows, err := h.reports.MonthlyRevenue(c.Request.Context(), months)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *ReportHandler) Employees(c *gin.Context) {
	rows, err := h.reports.EmployeePerformance(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *ReportHandler) Services(c *gin.Context) {
	rows, err := h.reports.ServiceReports(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *ReportHandler) Clients(c *gin.Context) {
	summary, err := h.reports.ClientSummary(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, summary)
}

func (h *ReportHandler) Categories(c *gin.Context) {
	rows, err := h.reports.RevenueByCategory(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *ReportHandler) Status(c *gin.Context) {
	rows, err := h.reports.StatusDistribution(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *ReportHandler) Totals(c *gin.Context) {
	t, err := h.reports.Totals(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totals":          t,
		"revenue_display": format.Currency(t.Revenue),
	})
}
