package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-planner/internal/models"
)

type removalPromptResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Confirm string `json:"confirm"`
	Cancel  string `json:"cancel"`
}

type removalRequestResponse struct {
	Token     string                `json:"token"`
	Kind      string                `json:"kind"`
	TargetID  string                `json:"target_id"`
	Prompt    removalPromptResponse `json:"prompt"`
	ExpiresAt time.Time             `json:"expires_at"`
}

func newRemovalRequestResponse(req *models.RemovalRequest) removalRequestResponse {
	return removalRequestResponse{
		Token:    req.Token,
		Kind:     req.Kind,
		TargetID: req.TargetID,
		Prompt: removalPromptResponse{
			Title:   req.Prompt.Title,
			Message: req.Prompt.Message,
			Confirm: req.Prompt.Confirm,
			Cancel:  req.Prompt.Cancel,
		},
		ExpiresAt: req.ExpiresAt,
	}
}

type removalResultResponse struct {
	Kind     string `json:"kind"`
	TargetID string `json:"target_id"`
	Removed  bool   `json:"removed"`
}

func (h *handlerImpl) HandleConfirmRemoval(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		h.requestLogger(c).Error().Msg("no removal token provided")
		abort(c, newBadRequestError(errMissingPathParam.Error()))
		return
	}

	result, err := h.removals.ConfirmRemoval(c.Request.Context(), token)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}
	c.JSON(http.StatusOK, removalResultResponse{
		Kind:     result.Kind,
		TargetID: result.TargetID,
		Removed:  result.Removed,
	})
}

func (h *handlerImpl) HandleCancelRemoval(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		h.requestLogger(c).Error().Msg("no removal token provided")
		abort(c, newBadRequestError(errMissingPathParam.Error()))
		return
	}

	err := h.removals.CancelRemoval(c.Request.Context(), token)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
