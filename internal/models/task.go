package models

import "time"

type Task struct {
	ID          string
	Title       string
	Description string
	DueAt       time.Time
}

// ClassifiedTask is a task paired with the urgency it had at the moment
// of the query. It is never stored.
type ClassifiedTask struct {
	Task
	Category Category
}
