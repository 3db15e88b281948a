package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ridersapp/pkg/logger"
)

// RequestLogger logs each request with method, path, status, latency and
// client IP, picking the log level from the response status.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if shouldSkipLog(path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		}

		if ua := c.Request.UserAgent(); ua != "" && len(ua) < 200 {
			fields = append(fields, zap.String("user_agent", ua))
		}

		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			logger.L().Error("server_error", fields...)
		case status == 404:
			logger.L().Info("request", fields...)
		case status >= 400:
			logger.L().Warn("client_error", fields...)
		case c.Request.Method != "GET" || latency > 500*time.Millisecond:
			logger.L().Info("request", fields...)
		default:
			logger.L().Debug("request", fields...)
		}
	}
}

func shouldSkipLog(path string) bool {
	if strings.HasPrefix(path, "/health") || path == "/favicon.ico" {
		return true
	}
	if strings.HasPrefix(path, "/uploads/") || strings.HasPrefix(path, "/swagger/") {
		return true
	}
	return false
}
