package models

import "time"

// Client is a salon customer. TotalVisits and TotalSpent are running counters
// maintained by whoever edits the client; they are never recomputed from the
// appointment history.
type Client struct {
	ID        string     `gorm:"primaryKey;size:64" json:"id"`
	FirstName string     `gorm:"size:100;not null" json:"first_name"`
	LastName  string     `gorm:"size:100" json:"last_name"`
	Email     string     `gorm:"size:100" json:"email"`
	Phone     string     `gorm:"size:20" json:"phone"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Address   string     `gorm:"size:255" json:"address,omitempty"`
	Notes     string     `gorm:"type:text" json:"notes,omitempty"`
	IsActive  bool       `json:"is_active"`

	RegisteredAt time.Time  `json:"registered_at"`
	LastVisit    *time.Time `json:"last_visit,omitempty"`
	TotalVisits  int        `json:"total_visits"`
	TotalSpent   int64      `json:"total_spent"`

	Preferences *ClientPreferences `gorm:"serializer:json" json:"preferences,omitempty"`

	Seq int64 `gorm:"index" json:"-"`
}

type ClientPreferences struct {
	PreferredEmployee string   `json:"preferred_employee,omitempty"`
	PreferredServices []string `json:"preferred_services,omitempty"`
	Allergies         []string `json:"allergies,omitempty"`
	Notes             string   `json:"notes,omitempty"`
}

func (Client) TableName() string {
	return "clients"
}

func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

func (c Client) Clone() Client {
	c.BirthDate = cloneTime(c.BirthDate)
	c.LastVisit = cloneTime(c.LastVisit)
	if c.Preferences != nil {
		p := *c.Preferences
		p.PreferredServices = cloneStrings(p.PreferredServices)
		p.Allergies = cloneStrings(p.Allergies)
		c.Preferences = &p
	}
	return c
}
