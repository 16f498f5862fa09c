package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-planner/internal/services"
)

type Handler interface {
	HandleRequestLogger(c *gin.Context)

	HandleGetHome(c *gin.Context)
	HandleStreamClock(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleRequestTaskRemoval(c *gin.Context)

	HandleCreateNote(c *gin.Context)
	HandleGetNotes(c *gin.Context)
	HandleGetNote(c *gin.Context)
	HandleRequestNoteRemoval(c *gin.Context)

	HandleConfirmRemoval(c *gin.Context)
	HandleCancelRemoval(c *gin.Context)
}

type handlerImpl struct {
	logger   zerolog.Logger
	clock    clockwork.Clock
	tasks    services.TaskService
	notes    services.NoteService
	removals services.RemovalService
	home     services.ClockService
}

func New(
	logger zerolog.Logger,
	clock clockwork.Clock,
	taskService services.TaskService,
	noteService services.NoteService,
	removalService services.RemovalService,
	clockService services.ClockService,
) Handler {
	return &handlerImpl{
		logger:   logger,
		clock:    clock,
		tasks:    taskService,
		notes:    noteService,
		removals: removalService,
		home:     clockService,
	}
}

// RegisterRoutes mounts every v1 endpoint on router.
func RegisterRoutes(router gin.IRouter, h Handler) {
	configureValidator()
	router.Use(h.HandleRequestLogger)

	home := router.Group("/home")
	home.GET("", h.HandleGetHome)
	home.GET("/clock", h.HandleStreamClock)

	tasks := router.Group("/tasks")
	tasks.GET("", h.HandleGetTasks)
	tasks.POST("", h.HandleCreateTask)
	tasks.GET("/:id", h.HandleGetTask)
	tasks.POST("/:id/removal", h.HandleRequestTaskRemoval)

	notes := router.Group("/notes")
	notes.GET("", h.HandleGetNotes)
	notes.POST("", h.HandleCreateNote)
	notes.GET("/:id", h.HandleGetNote)
	notes.POST("/:id/removal", h.HandleRequestNoteRemoval)

	removals := router.Group("/removals")
	removals.POST("/:token/confirm", h.HandleConfirmRemoval)
	removals.POST("/:token/cancel", h.HandleCancelRemoval)
}
