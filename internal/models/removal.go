package models

import "time"

const (
	RemovalKindTask = "task"
	RemovalKindNote = "note"
)

// RemovalPrompt is the fixed copy shown before a destructive action.
type RemovalPrompt struct {
	Title   string
	Message string
	Confirm string
	Cancel  string
}

var (
	TaskRemovalPrompt = RemovalPrompt{
		Title:   "Delete task",
		Message: "Have you completed this task?",
		Confirm: "Yes",
		Cancel:  "No",
	}
	NoteRemovalPrompt = RemovalPrompt{
		Title:   "Are you sure?",
		Message: "Do you want to delete this note?",
		Confirm: "Yes",
		Cancel:  "No",
	}
)

type RemovalRequest struct {
	Token     string
	Kind      string
	TargetID  string
	Prompt    RemovalPrompt
	ExpiresAt time.Time
}

type RemovalResult struct {
	Kind     string
	TargetID string
	// Removed is false when the target was already gone at confirmation time.
	Removed bool
}
