// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers passed to the router.
type HandlerBundle struct {
	// Scheduling endpoints
	ScheduleEventsHandler gin.HandlerFunc

	// Operational endpoints
	HealthHandler gin.HandlerFunc
}
