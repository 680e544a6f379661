package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/domain/service"
	"github.com/BruksfildServices01/salon-admin/internal/format"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

type EmployeeDTO struct {
	models.Employee

	FullName        string `json:"full_name"`
	HireDateDisplay string `json:"hire_date_display"`
	YearsOfService  int    `json:"years_of_service"`
}

func Employee(e models.Employee, now time.Time, loc *time.Location) EmployeeDTO {
	return EmployeeDTO{
		Employee:        e,
		FullName:        format.FullName(e.FirstName, e.LastName),
		HireDateDisplay: format.LongDate(e.HireDate.In(loc)),
		YearsOfService:  format.YearsOfService(e.HireDate, now),
	}
}

func Employees(es []models.Employee, now time.Time, loc *time.Location) []EmployeeDTO {
	out := make([]EmployeeDTO, 0, len(es))
	for _, e := range es {
		out = append(out, Employee(e, now, loc))
	}
	return out
}

type ServiceDTO struct {
	models.Service

	PriceDisplay    string `json:"price_display"`
	DurationDisplay string `json:"duration_display"`
	CategoryIcon    string `json:"category_icon"`
}

func Service(s models.Service) ServiceDTO {
	return ServiceDTO{
		Service:         s,
		PriceDisplay:    format.Currency(s.Price),
		DurationDisplay: format.Duration(s.Duration),
		CategoryIcon:    service.CategoryIcon(s.Category),
	}
}

func Services(ss []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(ss))
	for _, s := range ss {
		out = append(out, Service(s))
	}
	return out
}
