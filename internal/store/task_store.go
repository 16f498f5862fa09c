package store

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/adanyl0v/go-planner/internal/models"
)

// TaskStore keeps tasks ordered by due time. Ties keep insertion order.
type TaskStore struct {
	mu    sync.RWMutex
	clock clockwork.Clock
	tasks []models.Task
}

func NewTaskStore(clock clockwork.Clock) *TaskStore {
	return &TaskStore{clock: clock}
}

// Add validates title and description, then inserts a task with a fresh
// ID. A zero dueAt means "now". The store is left untouched on error.
func (s *TaskStore) Add(title, description string, dueAt time.Time) (models.Task, error) {
	err := requireText(
		textField{"title", title},
		textField{"description", description},
	)
	if err != nil {
		return models.Task{}, err
	}
	if dueAt.IsZero() {
		dueAt = s.clock.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		DueAt:       dueAt,
	}
	s.tasks = append(s.tasks, task)
	slices.SortStableFunc(s.tasks, func(a, b models.Task) int {
		return a.DueAt.Compare(b.DueAt)
	})
	return task, nil
}

// Remove deletes the task with the given ID and reports whether it existed.
// The order of the remaining tasks is kept as is.
func (s *TaskStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return true
}

func (s *TaskStore) Get(id string) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i], true
}

func (s *TaskStore) List() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

func (s *TaskStore) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool {
		return t.ID == id
	})
}

// newID must be called with mu held.
func (s *TaskStore) newID() string {
	for {
		id := uuid.NewString()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}
