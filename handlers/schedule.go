package handlers

import (
	"errors"
	"net/http"

	"eventscheduler/models"
	"eventscheduler/services/scheduler"
	"eventscheduler/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ScheduleHandler struct {
	Service scheduler.SchedulerService
}

func NewScheduleHandler(service scheduler.SchedulerService) *ScheduleHandler {
	return &ScheduleHandler{Service: service}
}

// ScheduleEventsHandler accepts a JSON array of events and returns them sorted,
// together with the conflicts found between neighbours.
func (h *ScheduleHandler) ScheduleEventsHandler(c *gin.Context) {
	logger := utils.RequestLogger(c)

	var events []models.EventRequest
	if err := c.ShouldBindJSON(&events); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	resp, err := h.Service.ProcessEvents(c.Request.Context(), events)
	if err != nil {
		var malformed *scheduler.MalformedTimeError
		var invalidRange *scheduler.InvalidRangeError
		switch {
		case errors.As(err, &malformed):
			utils.JSONError(c, http.StatusBadRequest, "malformed time", err.Error())
		case errors.As(err, &invalidRange):
			utils.JSONError(c, http.StatusUnprocessableEntity, "invalid time range", err.Error())
		default:
			logger.Error("Failed to schedule events", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to schedule events", err.Error())
		}
		return
	}

	logger.Info("Scheduled events",
		zap.Int("events", len(resp.SortedEvents)),
		zap.Int("conflicts", len(resp.Conflicts)),
	)
	c.JSON(http.StatusOK, resp)
}
