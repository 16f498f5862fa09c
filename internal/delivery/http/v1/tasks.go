package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-planner/internal/models"
	"github.com/adanyl0v/go-planner/internal/services"
)

const (
	dueDateLayout = "2006-01-02"
	dueTimeLayout = "15:04"
)

var (
	errConflictingDue = errors.New("due_at cannot be combined with due_date or due_time")
	errZeroDue        = errors.New("due_at must not be the zero time")
)

type getTaskResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueAt       time.Time       `json:"due_at"`
	Category    models.Category `json:"category"`
}

func newGetTaskResponse(task *models.ClassifiedTask) getTaskResponse {
	return getTaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueAt:       task.DueAt,
		Category:    task.Category,
	}
}

type createTaskRequest struct {
	Title       string     `json:"title" binding:"max=255"`
	Description string     `json:"description" binding:"max=2048"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	DueDate     string     `json:"due_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	DueTime     string     `json:"due_time,omitempty" binding:"omitempty,datetime=15:04"`
}

// dueAt merges the date and time pickers onto the current time as shown by
// the home clock, so now must already be in the clock's location. A zero
// result lets the store default the task to now.
func (r createTaskRequest) dueAt(now time.Time) (time.Time, error) {
	if r.DueAt != nil {
		if r.DueDate != "" || r.DueTime != "" {
			return time.Time{}, errConflictingDue
		}
		if r.DueAt.IsZero() {
			return time.Time{}, errZeroDue
		}
		return *r.DueAt, nil
	}
	if r.DueDate == "" && r.DueTime == "" {
		return time.Time{}, nil
	}

	draft := services.NewDueDraft(now)
	if r.DueDate != "" {
		date, err := time.Parse(dueDateLayout, r.DueDate)
		if err != nil {
			return time.Time{}, err
		}
		draft.SetDate(date.Date())
	}
	if r.DueTime != "" {
		tod, err := time.Parse(dueTimeLayout, r.DueTime)
		if err != nil {
			return time.Time{}, err
		}
		draft.SetTimeOfDay(tod.Hour(), tod.Minute())
	}
	return draft.Time(), nil
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.requestLogger(c).Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBindingError(err))
		return
	}

	now := h.clock.Now().In(h.home.Location())
	dueAt, err := req.dueAt(now)
	if err != nil {
		h.requestLogger(c).Error().
			Err(err).
			Msg("failed to resolve due time")
		abort(c, newBadRequestError(err.Error()))
		return
	}

	task, err := h.tasks.CreateTask(ctx, services.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		DueAt:       dueAt,
	})
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusCreated, newGetTaskResponse(&models.ClassifiedTask{
		Task:     *task,
		Category: models.Classify(task.DueAt, now),
	}))
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	tasks := h.tasks.GetTasks(c.Request.Context())

	response := make([]getTaskResponse, len(tasks))
	for i := range tasks {
		response[i] = newGetTaskResponse(&tasks[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		h.requestLogger(c).Error().Msg("no task id provided")
		abort(c, newBadRequestError(errMissingPathParam.Error()))
		return
	}

	task, err := h.tasks.GetTask(c.Request.Context(), taskID)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}
	c.JSON(http.StatusOK, newGetTaskResponse(task))
}

func (h *handlerImpl) HandleRequestTaskRemoval(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		h.requestLogger(c).Error().Msg("no task id provided")
		abort(c, newBadRequestError(errMissingPathParam.Error()))
		return
	}

	req, err := h.removals.RequestTaskRemoval(c.Request.Context(), taskID)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}
	c.JSON(http.StatusCreated, newRemovalRequestResponse(req))
}
