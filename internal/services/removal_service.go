package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-planner/internal/models"
	"github.com/adanyl0v/go-planner/internal/store"
)

type removalServiceImpl struct {
	logger zerolog.Logger
	clock  clockwork.Clock
	ttl    time.Duration
	tasks  *store.TaskStore
	notes  *store.NoteStore

	mu      sync.Mutex
	pending map[string]models.RemovalRequest
}

func NewRemovalService(
	logger zerolog.Logger,
	clock clockwork.Clock,
	ttl time.Duration,
	tasks *store.TaskStore,
	notes *store.NoteStore,
) RemovalService {
	return &removalServiceImpl{
		logger:  logger,
		clock:   clock,
		ttl:     ttl,
		tasks:   tasks,
		notes:   notes,
		pending: make(map[string]models.RemovalRequest),
	}
}

func (s *removalServiceImpl) RequestTaskRemoval(ctx context.Context, taskID string) (*models.RemovalRequest, error) {
	if _, ok := s.tasks.Get(taskID); !ok {
		loggerFrom(ctx, &s.logger).Warn().
			Str("task_id", taskID).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}
	return s.request(ctx, models.RemovalKindTask, taskID, models.TaskRemovalPrompt), nil
}

func (s *removalServiceImpl) RequestNoteRemoval(ctx context.Context, noteID string) (*models.RemovalRequest, error) {
	if _, ok := s.notes.Get(noteID); !ok {
		loggerFrom(ctx, &s.logger).Warn().
			Str("note_id", noteID).
			Msg("note not found")
		return nil, ErrNoteNotFound
	}
	return s.request(ctx, models.RemovalKindNote, noteID, models.NoteRemovalPrompt), nil
}

func (s *removalServiceImpl) request(
	ctx context.Context,
	kind string,
	targetID string,
	prompt models.RemovalPrompt,
) *models.RemovalRequest {
	now := s.clock.Now()
	req := models.RemovalRequest{
		Token:     uuid.NewString(),
		Kind:      kind,
		TargetID:  targetID,
		Prompt:    prompt,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.pruneLocked(now)
	s.pending[req.Token] = req
	s.mu.Unlock()

	loggerFrom(ctx, &s.logger).Info().
		Str("token", req.Token).
		Str("kind", kind).
		Str("target_id", targetID).
		Time("expires_at", req.ExpiresAt).
		Msg("requested removal")
	return &req
}

func (s *removalServiceImpl) ConfirmRemoval(ctx context.Context, token string) (*models.RemovalResult, error) {
	logger := loggerFrom(ctx, &s.logger)

	req, err := s.take(token)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("token", token).
			Msg("failed to confirm removal")
		return nil, err
	}

	result := &models.RemovalResult{
		Kind:     req.Kind,
		TargetID: req.TargetID,
	}
	switch req.Kind {
	case models.RemovalKindTask:
		result.Removed = s.tasks.Remove(req.TargetID)
	case models.RemovalKindNote:
		result.Removed = s.notes.Remove(req.TargetID)
	}
	if !result.Removed {
		logger.Warn().
			Str("kind", req.Kind).
			Str("target_id", req.TargetID).
			Msg("removal target already gone")
	}

	logger.Info().
		Str("token", token).
		Str("kind", req.Kind).
		Str("target_id", req.TargetID).
		Bool("removed", result.Removed).
		Msg("confirmed removal")
	return result, nil
}

func (s *removalServiceImpl) CancelRemoval(ctx context.Context, token string) error {
	logger := loggerFrom(ctx, &s.logger)

	req, err := s.take(token)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("token", token).
			Msg("failed to cancel removal")
		return err
	}

	logger.Info().
		Str("token", token).
		Str("kind", req.Kind).
		Str("target_id", req.TargetID).
		Msg("cancelled removal")
	return nil
}

// take removes the token from the pending set. An expired token is
// dropped as well, so a second attempt reports ErrRemovalNotFound.
func (s *removalServiceImpl) take(token string) (models.RemovalRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.pending[token]
	if !ok {
		return models.RemovalRequest{}, ErrRemovalNotFound
	}
	delete(s.pending, token)

	if s.clock.Now().After(req.ExpiresAt) {
		return models.RemovalRequest{}, ErrRemovalExpired
	}
	return req, nil
}

// pruneLocked must be called with mu held.
func (s *removalServiceImpl) pruneLocked(now time.Time) {
	for token, req := range s.pending {
		if now.After(req.ExpiresAt) {
			delete(s.pending, token)
		}
	}
}
