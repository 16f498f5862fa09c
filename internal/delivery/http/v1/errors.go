package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/adanyl0v/go-planner/internal/services"
	"github.com/adanyl0v/go-planner/internal/store"
)

var (
	errInvalidRequestBody = errors.New("invalid request body")
	errMissingPathParam   = errors.New("missing path parameter")
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

func newGoneError(message string) apiError {
	return newAPIError(http.StatusGone, message)
}

func newUnprocessableEntityError(message string) apiError {
	return newAPIError(http.StatusUnprocessableEntity, message)
}

// newBindingError describes the first failed binding tag of every field,
// e.g. "due_date must match 2006-01-02".
func newBindingError(err error) apiError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return newBadRequestError(errInvalidRequestBody.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must match %s", field, fe.Param()))
		case "uri":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid uri", field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", field, fe.Tag()))
		}
	}
	return newBadRequestError(strings.Join(msgs, "; "))
}

// newServiceError maps domain errors onto HTTP statuses.
func newServiceError(err error) apiError {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		return newUnprocessableEntityError(verr.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		return newNotFoundError(services.ErrTaskNotFound.Error())
	case errors.Is(err, services.ErrNoteNotFound):
		return newNotFoundError(services.ErrNoteNotFound.Error())
	case errors.Is(err, services.ErrRemovalNotFound):
		return newNotFoundError(services.ErrRemovalNotFound.Error())
	case errors.Is(err, services.ErrRemovalExpired):
		return newGoneError(services.ErrRemovalExpired.Error())
	default:
		return newStatusTextError(http.StatusInternalServerError)
	}
}
