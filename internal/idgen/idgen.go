// Package idgen hands out record identifiers. Ids are UUIDv7 strings, so they
// sort by creation time.
package idgen

import "github.com/google/uuid"

// Func produces a new unique id.
type Func func() string

func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
