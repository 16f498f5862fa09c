package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-planner/internal/models"
	"github.com/adanyl0v/go-planner/internal/services"
	"github.com/adanyl0v/go-planner/internal/store"
)

var baseTime = time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)

const testRemovalTTL = 5 * time.Minute

type testServer struct {
	router *gin.Engine
	clock  *clockwork.FakeClock
	tasks  *store.TaskStore
	notes  *store.NoteStore
}

type testServerOptions struct {
	logger       zerolog.Logger
	location     *time.Location
	clockService services.ClockService
}

func newTestServer(t *testing.T, clockService services.ClockService) *testServer {
	t.Helper()
	return newTestServerWith(t, testServerOptions{
		logger:       zerolog.Nop(),
		clockService: clockService,
	})
}

func newTestServerWith(t *testing.T, opts testServerOptions) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := opts.logger
	clock := clockwork.NewFakeClockAt(baseTime)
	tasks := store.NewTaskStore(clock)
	notes := store.NewNoteStore()

	clockService := opts.clockService
	if clockService == nil {
		location := opts.location
		if location == nil {
			location = time.UTC
		}
		clockService = services.NewClockService(clock, location, time.Second, "Planner")
	}

	h := New(
		logger,
		clock,
		services.NewTaskService(logger, clock, tasks),
		services.NewNoteService(logger, notes),
		services.NewRemovalService(logger, clock, testRemovalTTL, tasks, notes),
		clockService,
	)

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), h)

	return &testServer{
		router: router,
		clock:  clock,
		tasks:  tasks,
		notes:  notes,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

type errorBody struct {
	Error string `json:"error"`
}

// stubClockService replays fixed readings.
type stubClockService struct {
	now      models.ClockReading
	readings []models.ClockReading
}

func (s stubClockService) Now() models.ClockReading {
	return s.now
}

func (s stubClockService) Location() *time.Location {
	return time.UTC
}

func (s stubClockService) Watch(context.Context) <-chan models.ClockReading {
	ch := make(chan models.ClockReading, len(s.readings))
	for _, r := range s.readings {
		ch <- r
	}
	close(ch)
	return ch
}

// streamRecorder adds the CloseNotifier gin's Stream relies on.
type streamRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newStreamRecorder() *streamRecorder {
	return &streamRecorder{
		ResponseRecorder: httptest.NewRecorder(),
		closed:           make(chan bool, 1),
	}
}

func (r *streamRecorder) CloseNotify() <-chan bool {
	return r.closed
}
