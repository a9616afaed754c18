package handlers

import (
	"net/http"

	"soulsync/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and the last dependency snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"message":      "Hi, I'm Panda",
		"dependencies": utils.GetHealthStatus(),
	})
}
