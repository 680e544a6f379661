package dto

import (
	"time"

	domain "github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/format"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

type AppointmentDTO struct {
	models.Appointment

	DateDisplay  string            `json:"date_display"`
	TimeRange    string            `json:"time_range"`
	PriceDisplay string            `json:"price_display"`
	StatusInfo   domain.StatusInfo `json:"status_info"`
}

func Appointment(ap models.Appointment, loc *time.Location) AppointmentDTO {
	return AppointmentDTO{
		Appointment:  ap,
		DateDisplay:  format.WeekdayDate(ap.Date.In(loc)),
		TimeRange:    ap.StartTime + " - " + ap.EndTime,
		PriceDisplay: format.Currency(ap.Price),
		StatusInfo:   domain.Info(domain.Status(ap.Status)),
	}
}

func Appointments(aps []models.Appointment, loc *time.Location) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, Appointment(ap, loc))
	}
	return out
}
