package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-planner/internal/models"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrNoteNotFound    = errors.New("note not found")
	ErrRemovalNotFound = errors.New("removal request not found")
	ErrRemovalExpired  = errors.New("removal request expired")
)

type TaskService interface {
	// CreateTask adds a task to the store.
	//
	// A zero DueAt means the task is due now. It returns a
	// *store.ValidationError if the title or the description
	// is blank, in which case the store is not changed.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// GetTasks returns every task ordered by due time, each
	// classified against the current time.
	GetTasks(ctx context.Context) []models.ClassifiedTask

	// GetTask returns a single classified task or ErrTaskNotFound.
	GetTask(ctx context.Context, taskID string) (*models.ClassifiedTask, error)
}

type NoteService interface {
	// CreateNote adds a note. It returns a *store.ValidationError
	// if the title or the detail is blank.
	CreateNote(ctx context.Context, params CreateNoteParams) (*models.Note, error)

	// GetNotes returns every note in the order they were created.
	GetNotes(ctx context.Context) []models.Note

	// GetNote returns a single note or ErrNoteNotFound.
	GetNote(ctx context.Context, noteID string) (*models.Note, error)
}

// RemovalService gates every deletion behind an explicit confirmation.
//
// A request produces a pending token and leaves the stores untouched.
// Only ConfirmRemoval deletes anything; CancelRemoval and expiry just
// drop the token.
type RemovalService interface {
	// RequestTaskRemoval returns a pending request for the given
	// task or ErrTaskNotFound if there is no such task.
	RequestTaskRemoval(ctx context.Context, taskID string) (*models.RemovalRequest, error)

	// RequestNoteRemoval returns a pending request for the given
	// note or ErrNoteNotFound if there is no such note.
	RequestNoteRemoval(ctx context.Context, noteID string) (*models.RemovalRequest, error)

	// ConfirmRemoval consumes the token and removes its target.
	//
	// It returns ErrRemovalNotFound for an unknown or already used
	// token and ErrRemovalExpired if the token outlived its TTL.
	ConfirmRemoval(ctx context.Context, token string) (*models.RemovalResult, error)

	// CancelRemoval drops the token without touching the stores.
	CancelRemoval(ctx context.Context, token string) error
}

type ClockService interface {
	// Now returns the current reading of the home screen clock.
	Now() models.ClockReading

	// Location is the zone the clock is displayed in. Dates and
	// times picked against the clock are interpreted in it.
	Location() *time.Location

	// Watch emits a reading on every tick until ctx is done,
	// then closes the channel.
	Watch(ctx context.Context) <-chan models.ClockReading
}

type CreateTaskParams struct {
	Title       string
	Description string
	DueAt       time.Time
}

type CreateNoteParams struct {
	Title  string
	Detail string
	Image  *string
}

// loggerFrom prefers the request scoped logger stored in ctx.
func loggerFrom(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return fallback
}
