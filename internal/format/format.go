// Package format renders values for display in Spanish (Colombia).
package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Spanish grouping: "." for thousands.
var printer = message.NewPrinter(language.Spanish)

// Currency renders whole pesos: 25000 -> "$ 25.000".
func Currency(amount int64) string {
	if amount < 0 {
		return "-$ " + printer.Sprintf("%d", -amount)
	}
	return "$ " + printer.Sprintf("%d", amount)
}

// Duration renders minutes as "1h 30min", "2h" or "45min".
func Duration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dmin", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dmin", m)
	}
}

func FullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day
)

// ClientSince renders the time since registration as "5 meses" or "2 años".
// Months are 30 days long.
func ClientSince(registeredAt, now time.Time) string {
	months := int(now.Sub(registeredAt) / month)
	if months < 0 {
		months = 0
	}
	if months < 12 {
		return plural(months, "mes", "meses")
	}
	return plural(months/12, "año", "años")
}

// YearsOfService counts whole 365-day years since hire.
func YearsOfService(hireDate, now time.Time) int {
	years := int(now.Sub(hireDate) / year)
	if years < 0 {
		return 0
	}
	return years
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
