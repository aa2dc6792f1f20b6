package handlers

import (
	"net/http"

	"eventscheduler/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last snapshot taken by the health monitor.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
