package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewIsUniqueAndTimeOrdered(t *testing.T) {
	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 500; i++ {
		id := New()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true

		parsed, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())

		if prev != "" {
			assert.Greater(t, id, prev)
		}
		prev = id
	}
}
