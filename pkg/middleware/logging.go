package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kkcy/ticketcare/pkg/logger"
)

// RequestLogger logs each request with latency and status fields
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if query != "" {
			fields = append(fields, zap.String("query", query))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			log.WithContext(c.Request.Context()).Error("request completed", fields...)
		case c.Writer.Status() >= 400:
			log.WithContext(c.Request.Context()).Warn("request completed", fields...)
		default:
			log.WithContext(c.Request.Context()).Info("request completed", fields...)
		}
	}
}
