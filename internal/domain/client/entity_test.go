package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-admin/internal/models"
)

func TestPatchApply(t *testing.T) {
	original := models.Client{
		ID:          "1",
		FirstName:   "Laura",
		LastName:    "Pérez",
		Email:       "laura.perez@email.com",
		Phone:       "3101234567",
		IsActive:    true,
		TotalVisits: 24,
		TotalSpent:  1250000,
	}

	c := original
	email := "laura@salon.co"
	Patch{Email: &email}.Apply(&c)

	assert.Equal(t, "laura@salon.co", c.Email)
	c.Email = original.Email
	assert.Equal(t, original, c)
}

func TestPatchApplyCopiesPreferences(t *testing.T) {
	prefs := &models.ClientPreferences{PreferredServices: []string{"1", "2"}}
	var c models.Client
	Patch{Preferences: prefs}.Apply(&c)

	prefs.PreferredServices[0] = "9"
	assert.Equal(t, []string{"1", "2"}, c.Preferences.PreferredServices)
}

func TestPrepareNew(t *testing.T) {
	now := time.Date(2024, 10, 15, 9, 0, 0, 0, time.UTC)
	c := models.Client{FirstName: "Ana", TotalVisits: 7, TotalSpent: 100}

	PrepareNew(&c, "abc", now)

	assert.Equal(t, "abc", c.ID)
	assert.Equal(t, now, c.RegisteredAt)
	assert.Zero(t, c.TotalVisits)
	assert.Zero(t, c.TotalSpent)
	assert.Equal(t, "Ana", c.FirstName)
}
