package format

import (
	"fmt"
	"time"
)

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var shortMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sept", "oct", "nov", "dic",
}

var shortWeekdays = [...]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}

// LongDate: "15 de octubre de 2024".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}

// ShortDate: "15 oct 2024".
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), shortMonths[t.Month()-1], t.Year())
}

// ShortDay: "15 oct".
func ShortDay(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), shortMonths[t.Month()-1])
}

// MonthYear: "oct 2024".
func MonthYear(t time.Time) string {
	return fmt.Sprintf("%s %d", shortMonths[t.Month()-1], t.Year())
}

// WeekdayDate: "mar, 15 oct 2024".
func WeekdayDate(t time.Time) string {
	return shortWeekdays[t.Weekday()] + ", " + ShortDate(t)
}

// DateTime: "15 oct, 09:30".
func DateTime(t time.Time) string {
	return fmt.Sprintf("%s, %02d:%02d", ShortDay(t), t.Hour(), t.Minute())
}
