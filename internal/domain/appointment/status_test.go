package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/models"
)

func TestParseStatus(t *testing.T) {
	for _, s := range AllStatuses {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("archived")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestIsOpenAndBlocks(t *testing.T) {
	tests := []struct {
		status Status
		open   bool
		blocks bool
	}{
		{StatusPending, true, true},
		{StatusConfirmed, true, true},
		{StatusInProgress, false, true},
		{StatusCompleted, false, false},
		{StatusCancelled, false, false},
		{StatusNoShow, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.open, IsOpen(tt.status))
			assert.Equal(t, tt.blocks, Blocks(tt.status))
		})
	}
}

func TestInfo(t *testing.T) {
	assert.Equal(t, "Completada", Info(StatusCompleted).Label)
	assert.Equal(t, "#ef4444", Info(StatusCancelled).Color)
	assert.Equal(t, "weird", Info(Status("weird")).Label)
	assert.Len(t, AllInfo(), len(AllStatuses))
}

func TestSetStatus(t *testing.T) {
	now := time.Date(2024, 10, 15, 10, 0, 0, 0, time.UTC)
	ap := models.Appointment{Status: string(StatusCompleted)}

	// Any transition is accepted, including leaving a terminal status.
	require.NoError(t, SetStatus(&ap, StatusPending, now))
	assert.Equal(t, "pending", ap.Status)
	require.NotNil(t, ap.UpdatedAt)
	assert.Equal(t, now, *ap.UpdatedAt)

	assert.Error(t, SetStatus(&ap, Status("nope"), now))
	assert.Equal(t, "pending", ap.Status)
}
