package v1

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-planner/internal/models"
)

type clockResponse struct {
	Name string    `json:"name"`
	Time string    `json:"time"`
	Now  time.Time `json:"now"`
}

func newClockResponse(r models.ClockReading) clockResponse {
	return clockResponse{
		Name: r.DisplayName,
		Time: r.Time,
		Now:  r.Now,
	}
}

func (h *handlerImpl) HandleGetHome(c *gin.Context) {
	c.JSON(http.StatusOK, newClockResponse(h.home.Now()))
}

// HandleStreamClock sends a "tick" server-sent event on every clock tick
// until the client goes away.
func (h *handlerImpl) HandleStreamClock(c *gin.Context) {
	readings := h.home.Watch(c.Request.Context())

	c.Header("Cache-Control", "no-cache")
	c.SSEvent("tick", newClockResponse(h.home.Now()))
	c.Stream(func(w io.Writer) bool {
		reading, ok := <-readings
		if !ok {
			return false
		}
		c.SSEvent("tick", newClockResponse(reading))
		return true
	})
}
