package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Health returns a JSON health check response. Checks DB connectivity;
// never exposes credentials or internals.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		message := "ok"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			status = http.StatusServiceUnavailable
			message = "database unreachable"
		}

		c.JSON(status, gin.H{
			"success":   status == http.StatusOK,
			"message":   message,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
