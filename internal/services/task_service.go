package services

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-planner/internal/models"
	"github.com/adanyl0v/go-planner/internal/store"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	clock  clockwork.Clock
	tasks  *store.TaskStore
}

func NewTaskService(
	logger zerolog.Logger,
	clock clockwork.Clock,
	tasks *store.TaskStore,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		clock:  clock,
		tasks:  tasks,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	logger := loggerFrom(ctx, &s.logger)

	task, err := s.tasks.Add(params.Title, params.Description, params.DueAt)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("rejected task")
		return nil, err
	}
	logger.Debug().
		Str("task_id", task.ID).
		Time("due_at", task.DueAt).
		Int("count", s.tasks.Len()).
		Msg("inserted task")

	logger.Info().
		Str("task_id", task.ID).
		Msg("created task")
	return &task, nil
}

func (s *taskServiceImpl) GetTasks(ctx context.Context) []models.ClassifiedTask {
	now := s.clock.Now()
	tasks := s.tasks.List()

	classified := make([]models.ClassifiedTask, len(tasks))
	for i, task := range tasks {
		classified[i] = models.ClassifiedTask{
			Task:     task,
			Category: models.Classify(task.DueAt, now),
		}
	}

	loggerFrom(ctx, &s.logger).Debug().
		Int("count", len(classified)).
		Msg("selected tasks")
	return classified
}

func (s *taskServiceImpl) GetTask(ctx context.Context, taskID string) (*models.ClassifiedTask, error) {
	logger := loggerFrom(ctx, &s.logger)

	task, ok := s.tasks.Get(taskID)
	if !ok {
		logger.Warn().
			Str("task_id", taskID).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}
	logger.Debug().
		Str("task_id", taskID).
		Msg("selected task")

	return &models.ClassifiedTask{
		Task:     task,
		Category: models.Classify(task.DueAt, s.clock.Now()),
	}, nil
}
