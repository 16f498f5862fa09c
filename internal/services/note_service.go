package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-planner/internal/models"
	"github.com/adanyl0v/go-planner/internal/store"
)

type noteServiceImpl struct {
	logger zerolog.Logger
	notes  *store.NoteStore
}

func NewNoteService(logger zerolog.Logger, notes *store.NoteStore) NoteService {
	return &noteServiceImpl{
		logger: logger,
		notes:  notes,
	}
}

func (s *noteServiceImpl) CreateNote(ctx context.Context, params CreateNoteParams) (*models.Note, error) {
	logger := loggerFrom(ctx, &s.logger)

	note, err := s.notes.Add(params.Title, params.Detail, params.Image)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("rejected note")
		return nil, err
	}

	logger.Info().
		Str("note_id", note.ID).
		Bool("has_image", note.Image != nil).
		Msg("created note")
	return &note, nil
}

func (s *noteServiceImpl) GetNotes(ctx context.Context) []models.Note {
	notes := s.notes.List()
	loggerFrom(ctx, &s.logger).Debug().
		Int("count", len(notes)).
		Msg("selected notes")
	return notes
}

func (s *noteServiceImpl) GetNote(ctx context.Context, noteID string) (*models.Note, error) {
	note, ok := s.notes.Get(noteID)
	if !ok {
		loggerFrom(ctx, &s.logger).Warn().
			Str("note_id", noteID).
			Msg("note not found")
		return nil, ErrNoteNotFound
	}
	return &note, nil
}
