package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/hosung77/spring-plus/internal/config"
)

// GET /health
func Health(c *gin.Context) {
	status := gin.H{"status": "ok"}
	if err := intconfig.EnsureDB(); err != nil {
		status["status"] = "degraded"
		status["db"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	status["db"] = "up"
	c.JSON(http.StatusOK, status)
}
