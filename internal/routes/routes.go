package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/app"
	"github.com/BruksfildServices01/salon-admin/internal/handlers"
	"github.com/BruksfildServices01/salon-admin/internal/middleware"
	"github.com/BruksfildServices01/salon-admin/internal/validators"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	cfg := a.Config

	validators.Register()

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg, a.Now)

	appointmentHandler := handlers.NewAppointmentHandler(a.Appointments, a.AppointmentUC, a.Audit, a.Loc)
	clientHandler := handlers.NewClientHandler(a.Clients, a.Appointments, a.Audit, a.Now, a.Loc)
	employeeHandler := handlers.NewEmployeeHandler(
		a.Employees,
		a.Appointments,
		a.AppointmentUC.Availability,
		a.Photos,
		a.Audit,
		a.Now,
		a.Loc,
	)
	workingHoursHandler := handlers.NewWorkingHoursHandler(a.Employees, a.Audit)
	serviceHandler := handlers.NewServiceHandler(a.Services, a.Audit)
	reportHandler := handlers.NewReportHandler(a.Reports, a.Now, a.Loc)
	auditLogsHandler := handlers.NewAuditLogsHandler(a.AuditStore)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")

	api.POST("/auth/login", authHandler.Login)

	secured := api.Group("/")
	if cfg.AuthEnabled() {
		secured.Use(middleware.AuthMiddleware(cfg))
	}

	secured.GET("/me", authHandler.Me)

	// ------------------------------
	// APPOINTMENTS
	// ------------------------------
	aps := secured.Group("/appointments")
	{
		aps.GET("", appointmentHandler.List)
		aps.POST("", appointmentHandler.Create)
		aps.GET("/upcoming", appointmentHandler.Upcoming)
		aps.GET("/calendar", appointmentHandler.Calendar)
		aps.GET("/status-info", appointmentHandler.StatusInfo)
		aps.GET("/:id", appointmentHandler.Get)
		aps.PATCH("/:id", appointmentHandler.Update)
		aps.DELETE("/:id", appointmentHandler.Delete)
		aps.PATCH("/:id/status", appointmentHandler.UpdateStatus)
		aps.PATCH("/:id/cancel", appointmentHandler.Cancel)
		aps.PATCH("/:id/complete", appointmentHandler.Complete)
	}

	// ------------------------------
	// CLIENTS
	// ------------------------------
	clients := secured.Group("/clients")
	{
		clients.GET("", clientHandler.List)
		clients.POST("", clientHandler.Create)
		clients.GET("/:id", clientHandler.Get)
		clients.PATCH("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
		clients.PATCH("/:id/toggle", clientHandler.Toggle)
		clients.GET("/:id/appointments", clientHandler.Appointments)
	}

	// ------------------------------
	// EMPLOYEES
	// ------------------------------
	employees := secured.Group("/employees")
	{
		employees.GET("", employeeHandler.List)
		employees.POST("", employeeHandler.Create)
		employees.GET("/:id", employeeHandler.Get)
		employees.PATCH("/:id", employeeHandler.Update)
		employees.DELETE("/:id", employeeHandler.Delete)
		employees.PATCH("/:id/toggle", employeeHandler.Toggle)
		employees.GET("/:id/appointments", employeeHandler.Appointments)
		employees.GET("/:id/availability", employeeHandler.Availability)
		employees.POST("/:id/photo", employeeHandler.Photo)
		employees.GET("/:id/schedule", workingHoursHandler.Get)
		employees.PUT("/:id/schedule", workingHoursHandler.Update)
	}

	// ------------------------------
	// SERVICES
	// ------------------------------
	services := secured.Group("/services")
	{
		services.GET("", serviceHandler.List)
		services.POST("", serviceHandler.Create)
		services.GET("/categories", serviceHandler.Categories)
		services.GET("/:id", serviceHandler.Get)
		services.PATCH("/:id", serviceHandler.Update)
		services.DELETE("/:id", serviceHandler.Delete)
		services.PATCH("/:id/toggle", serviceHandler.Toggle)
	}

	// ------------------------------
	// DASHBOARD / REPORTS
	// ------------------------------
	secured.GET("/dashboard", reportHandler.Dashboard)

	reports := secured.Group("/reports")
	{
		reports.GET("", reportHandler.All)
		reports.GET("/monthly-revenue", reportHandler.MonthlyRevenue)
		reports.GET("/employees", reportHandler.Employees)
		reports.GET("/services", reportHandler.Services)
		reports.GET("/clients", reportHandler.Clients)
		reports.GET("/categories", reportHandler.Categories)
		reports.GET("/status", reportHandler.Status)
		reports.GET("/totals", reportHandler.Totals)
	}

	secured.GET("/audit-logs", auditLogsHandler.List)
}
