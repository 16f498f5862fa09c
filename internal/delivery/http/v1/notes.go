package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-planner/internal/models"
	"github.com/adanyl0v/go-planner/internal/services"
)

type getNoteResponse struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Detail string  `json:"detail"`
	Image  *string `json:"image"`
}

func newGetNoteResponse(note *models.Note) getNoteResponse {
	return getNoteResponse{
		ID:     note.ID,
		Title:  note.Title,
		Detail: note.Detail,
		Image:  note.Image,
	}
}

type createNoteRequest struct {
	Title  string  `json:"title" binding:"max=255"`
	Detail string  `json:"detail" binding:"max=4096"`
	Image  *string `json:"image,omitempty" binding:"omitempty,uri"`
}

func (h *handlerImpl) HandleCreateNote(c *gin.Context) {
	var req createNoteRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.requestLogger(c).Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBindingError(err))
		return
	}

	note, err := h.notes.CreateNote(c.Request.Context(), services.CreateNoteParams{
		Title:  req.Title,
		Detail: req.Detail,
		Image:  req.Image,
	})
	if err != nil {
		abort(c, newServiceError(err))
		return
	}
	c.JSON(http.StatusCreated, newGetNoteResponse(note))
}

func (h *handlerImpl) HandleGetNotes(c *gin.Context) {
	notes := h.notes.GetNotes(c.Request.Context())

	response := make([]getNoteResponse, len(notes))
	for i := range notes {
		response[i] = newGetNoteResponse(&notes[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetNote(c *gin.Context) {
	noteID := c.Param("id")
	if noteID == "" {
		h.requestLogger(c).Error().Msg("no note id provided")
		abort(c, newBadRequestError(errMissingPathParam.Error()))
		return
	}

	note, err := h.notes.GetNote(c.Request.Context(), noteID)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}
	c.JSON(http.StatusOK, newGetNoteResponse(note))
}

func (h *handlerImpl) HandleRequestNoteRemoval(c *gin.Context) {
	noteID := c.Param("id")
	if noteID == "" {
		h.requestLogger(c).Error().Msg("no note id provided")
		abort(c, newBadRequestError(errMissingPathParam.Error()))
		return
	}

	req, err := h.removals.RequestNoteRemoval(c.Request.Context(), noteID)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}
	c.JSON(http.StatusCreated, newRemovalRequestResponse(req))
}
