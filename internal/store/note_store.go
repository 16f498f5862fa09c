package store

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/adanyl0v/go-planner/internal/models"
)

// NoteStore keeps notes in insertion order.
type NoteStore struct {
	mu    sync.RWMutex
	notes []models.Note
}

func NewNoteStore() *NoteStore {
	return &NoteStore{}
}

func (s *NoteStore) Add(title, detail string, image *string) (models.Note, error) {
	err := requireText(
		textField{"title", title},
		textField{"detail", detail},
	)
	if err != nil {
		return models.Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note := models.Note{
		ID:     s.newID(),
		Title:  title,
		Detail: detail,
	}
	if image != nil {
		uri := *image
		note.Image = &uri
	}
	s.notes = append(s.notes, note)
	return note, nil
}

func (s *NoteStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	return true
}

func (s *NoteStore) Get(id string) (models.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Note{}, false
	}
	return s.notes[i], true
}

func (s *NoteStore) List() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notes)
}

func (s *NoteStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

func (s *NoteStore) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n models.Note) bool {
		return n.ID == id
	})
}

func (s *NoteStore) newID() string {
	for {
		id := uuid.NewString()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}
