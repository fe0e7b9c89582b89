package handler

import (
	"context"
	"net/http"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	if err := utils.PingMongo(ctx); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status": status,
		"uptime": time.Since(startedAt).Round(time.Second).String(),
	})
}
