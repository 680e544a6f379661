package validators

import (
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-admin/internal/domain/employee"
)

var (
	clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,18}[0-9]$`)
)

// IsClock reports whether s is a 24h "HH:MM" time.
func IsClock(s string) bool {
	return clockRe.MatchString(s)
}

// IsDate reports whether s looks like "YYYY-MM-DD".
func IsDate(s string) bool {
	return dateRe.MatchString(s)
}

// IsPhone accepts digits with optional leading "+" and inner spaces or dashes.
func IsPhone(s string) bool {
	return phoneRe.MatchString(strings.TrimSpace(s))
}

var once sync.Once

// Register adds the salon tags to gin's binding validator:
// clock, date, phone, status and weekday.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("clock", stringRule(IsClock))
		_ = v.RegisterValidation("date", stringRule(IsDate))
		_ = v.RegisterValidation("phone", stringRule(IsPhone))
		_ = v.RegisterValidation("status", stringRule(func(s string) bool {
			return appointment.Status(s).Valid()
		}))
		_ = v.RegisterValidation("weekday", stringRule(employee.ValidWeekday))
	})
}

func stringRule(fn func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	}
}
