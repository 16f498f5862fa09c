package models

import "time"

type Category string

const (
	CategoryOverdue    Category = "overdue"
	CategoryUrgentHour Category = "urgent_hour"
	CategoryUrgentDay  Category = "urgent_day"
	CategoryNormal     Category = "normal"
)

const (
	UrgentHourWindow = time.Hour
	UrgentDayWindow  = 24 * time.Hour
)

// Classify buckets the time left until dueAt. Both windows include their
// upper bound: exactly one hour left is CategoryUrgentHour and exactly one
// day left is CategoryUrgentDay.
func Classify(dueAt, now time.Time) Category {
	left := dueAt.Sub(now)
	switch {
	case left < 0:
		return CategoryOverdue
	case left <= UrgentHourWindow:
		return CategoryUrgentHour
	case left <= UrgentDayWindow:
		return CategoryUrgentDay
	default:
		return CategoryNormal
	}
}
