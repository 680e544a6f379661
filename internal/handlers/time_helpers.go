package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

var errInvalidDate = httperr.ErrBusiness("invalid_date")

// parseDate reads "YYYY-MM-DD" as local midnight in the salon timezone.
func parseDate(loc *time.Location, s string) (time.Time, error) {
	t, err := timezone.ParseDate(s, loc)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

// parseOptionalDate is parseDate for pointer fields of partial updates.
func parseOptionalDate(loc *time.Location, s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDate(loc, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// queryInt returns the integer query parameter key, or def when it is
// missing or malformed.
func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}
