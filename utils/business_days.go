package utils

import (
	"slices"
	"time"

	"mealforecast/models"
)

// WeekdayIndex returns 0 for Monday through 6 for Sunday.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return WeekdayIndex(t) >= 5
}

// BusinessDaysBefore returns the n most recent weekdays strictly before date,
// most recent first. Public holidays count as business days.
func BusinessDaysBefore(date time.Time, n int) []time.Time {
	if n <= 0 {
		return []time.Time{}
	}

	days := make([]time.Time, 0, n)
	current := date.AddDate(0, 0, -1)
	for len(days) < n {
		if WeekdayIndex(current) < 5 {
			days = append(days, current)
		}
		current = current.AddDate(0, 0, -1)
	}
	return days
}

// BusinessDays returns the lookback days for date in chronological order,
// labelled with labelFn.
func BusinessDays(date time.Time, n int, labelFn func(time.Time) string) []models.BusinessDay {
	dates := BusinessDaysBefore(date, n)
	slices.Reverse(dates)

	days := make([]models.BusinessDay, 0, len(dates))
	for _, d := range dates {
		day := models.BusinessDay{
			Date:         d,
			ISODate:      d.Format(models.DateLayout),
			WeekdayIndex: WeekdayIndex(d),
		}
		if labelFn != nil {
			day.Label = labelFn(d)
		}
		days = append(days, day)
	}
	return days
}

// ParseDate parses a YYYY-MM-DD date at UTC midnight.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(models.DateLayout, value)
}

// Today returns the current date at UTC midnight in the local calendar.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
