package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-planner/internal/models"
)

func TestHandleCreateTask(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodPost, "/api/v1/tasks", gin.H{
		"title":       "Pay rent",
		"description": "Transfer before noon",
		"due_at":      baseTime.Add(45 * time.Minute).Format(time.RFC3339),
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decode[getTaskResponse](t, rec)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Pay rent", resp.Title)
	assert.Equal(t, "Transfer before noon", resp.Description)
	assert.True(t, resp.DueAt.Equal(baseTime.Add(45*time.Minute)))
	assert.Equal(t, models.CategoryUrgentHour, resp.Category)
	assert.Equal(t, 1, s.tasks.Len())
}

func TestHandleCreateTask_DueSelection(t *testing.T) {
	tests := []struct {
		name     string
		body     gin.H
		wantDue  time.Time
		category models.Category
	}{
		{
			name:     "defaults to now",
			body:     gin.H{},
			wantDue:  baseTime,
			category: models.CategoryUrgentHour,
		},
		{
			name:     "date and time",
			body:     gin.H{"due_date": "2024-03-11", "due_time": "18:00"},
			wantDue:  time.Date(2024, time.March, 11, 18, 0, 0, 0, time.UTC),
			category: models.CategoryNormal,
		},
		{
			name:     "time only keeps today",
			body:     gin.H{"due_time": "10:00"},
			wantDue:  time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC),
			category: models.CategoryUrgentHour,
		},
		{
			name:     "date only keeps current time",
			body:     gin.H{"due_date": "2024-03-11"},
			wantDue:  time.Date(2024, time.March, 11, 9, 30, 0, 0, time.UTC),
			category: models.CategoryUrgentDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, nil)
			tt.body["title"] = "t"
			tt.body["description"] = "d"

			rec := s.do(t, http.MethodPost, "/api/v1/tasks", tt.body)

			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			resp := decode[getTaskResponse](t, rec)
			assert.True(t, resp.DueAt.Equal(tt.wantDue), "got %s", resp.DueAt)
			assert.Equal(t, tt.category, resp.Category)
		})
	}
}

func TestHandleCreateTask_DueSelectionInHomeZone(t *testing.T) {
	istanbul := time.FixedZone("TRT", 3*60*60)

	tests := []struct {
		name     string
		body     gin.H
		wantDue  time.Time
		category models.Category
	}{
		{
			name:     "time only is read on the home clock",
			body:     gin.H{"due_time": "13:00"},
			wantDue:  time.Date(2024, time.March, 10, 13, 0, 0, 0, istanbul),
			category: models.CategoryUrgentHour,
		},
		{
			name:     "date only keeps the home time of day",
			body:     gin.H{"due_date": "2024-03-11"},
			wantDue:  time.Date(2024, time.March, 11, 12, 30, 0, 0, istanbul),
			category: models.CategoryUrgentDay,
		},
		{
			name:     "date and time",
			body:     gin.H{"due_date": "2024-03-10", "due_time": "09:00"},
			wantDue:  time.Date(2024, time.March, 10, 6, 0, 0, 0, time.UTC),
			category: models.CategoryOverdue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServerWith(t, testServerOptions{
				logger:   zerolog.Nop(),
				location: istanbul,
			})

			rec := s.do(t, http.MethodGet, "/api/v1/home", nil)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "12:30:00", decode[clockResponse](t, rec).Time)

			tt.body["title"] = "t"
			tt.body["description"] = "d"
			rec = s.do(t, http.MethodPost, "/api/v1/tasks", tt.body)

			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			resp := decode[getTaskResponse](t, rec)
			assert.True(t, resp.DueAt.Equal(tt.wantDue), "got %s", resp.DueAt)
			assert.Equal(t, tt.category, resp.Category)
		})
	}
}

func TestHandleCreateTask_LogsRequestID(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServerWith(t, testServerOptions{
		logger: zerolog.New(&logs),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var found bool
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		if strings.Contains(line, "failed to bind json") {
			found = true
			assert.Contains(t, line, `"request_id":"req-42"`)
		}
	}
	assert.True(t, found, logs.String())
}

func TestHandleCreateTask_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		body    gin.H
		code    int
		message string
	}{
		{
			name:    "blank title",
			body:    gin.H{"title": "  ", "description": "d"},
			code:    http.StatusUnprocessableEntity,
			message: "required field missing: title",
		},
		{
			name:    "missing both",
			body:    gin.H{},
			code:    http.StatusUnprocessableEntity,
			message: "required field missing: title, description",
		},
		{
			name:    "bad date format",
			body:    gin.H{"title": "t", "description": "d", "due_date": "10.03.2024"},
			code:    http.StatusBadRequest,
			message: "due_date must match 2006-01-02",
		},
		{
			name:    "zero due_at",
			body:    gin.H{"title": "t", "description": "d", "due_at": "0001-01-01T00:00:00Z"},
			code:    http.StatusBadRequest,
			message: errZeroDue.Error(),
		},
		{
			name:    "conflicting due fields",
			body:    gin.H{"title": "t", "description": "d", "due_at": baseTime.Format(time.RFC3339), "due_time": "10:00"},
			code:    http.StatusBadRequest,
			message: errConflictingDue.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, nil)

			rec := s.do(t, http.MethodPost, "/api/v1/tasks", tt.body)

			require.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.message, decode[errorBody](t, rec).Error)
			assert.Equal(t, 0, s.tasks.Len())
		})
	}
}

func TestHandleGetTasks(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]getTaskResponse](t, rec))

	_, err := s.tasks.Add("B", "in two days", baseTime.Add(48*time.Hour))
	require.NoError(t, err)
	_, err = s.tasks.Add("A", "in half an hour", baseTime.Add(30*time.Minute))
	require.NoError(t, err)
	_, err = s.tasks.Add("C", "yesterday", baseTime.Add(-24*time.Hour))
	require.NoError(t, err)

	rec = s.do(t, http.MethodGet, "/api/v1/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[[]getTaskResponse](t, rec)
	require.Len(t, resp, 3)
	assert.Equal(t, []string{"C", "A", "B"}, []string{resp[0].Title, resp[1].Title, resp[2].Title})
	assert.Equal(t, []models.Category{
		models.CategoryOverdue,
		models.CategoryUrgentHour,
		models.CategoryNormal,
	}, []models.Category{resp[0].Category, resp[1].Category, resp[2].Category})
}

func TestHandleGetTask(t *testing.T) {
	s := newTestServer(t, nil)
	task, err := s.tasks.Add("t", "d", baseTime.Add(5*time.Hour))
	require.NoError(t, err)

	rec := s.do(t, http.MethodGet, "/api/v1/tasks/"+task.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[getTaskResponse](t, rec)
	assert.Equal(t, task.ID, resp.ID)
	assert.Equal(t, models.CategoryUrgentDay, resp.Category)

	rec = s.do(t, http.MethodGet, "/api/v1/tasks/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "task not found", decode[errorBody](t, rec).Error)
}
