package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/format"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

type ClientDTO struct {
	models.Client

	FullName          string `json:"full_name"`
	TotalSpentDisplay string `json:"total_spent_display"`
	ClientSince       string `json:"client_since"`
	LastVisitDisplay  string `json:"last_visit_display,omitempty"`
}

func Client(c models.Client, now time.Time, loc *time.Location) ClientDTO {
	out := ClientDTO{
		Client:            c,
		FullName:          format.FullName(c.FirstName, c.LastName),
		TotalSpentDisplay: format.Currency(c.TotalSpent),
		ClientSince:       format.ClientSince(c.RegisteredAt, now),
	}
	if c.LastVisit != nil {
		out.LastVisitDisplay = format.ShortDate(c.LastVisit.In(loc))
	}
	return out
}

func Clients(cs []models.Client, now time.Time, loc *time.Location) []ClientDTO {
	out := make([]ClientDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, Client(c, now, loc))
	}
	return out
}
