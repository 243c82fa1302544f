package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventcms_backend/internal/logger"
	"eventcms_backend/internal/response"
)

// Recovery converts panics into the standard failure envelope instead of
// gin's bare empty 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.CtxError(c.Request.Context(), "Panic recovered",
			slog.Any("panic", recovered),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)
		response.AbortWithError(c, http.StatusInternalServerError, "Internal server error", nil)
	})
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []any{
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("duration", time.Since(start)),
			slog.Int("size_bytes", c.Writer.Size()),
		}
		ctx := c.Request.Context()
		switch {
		case c.Writer.Status() >= 500:
			logger.CtxError(ctx, "HTTP Server Error", fields...)
		case c.Writer.Status() >= 400:
			logger.CtxWarn(ctx, "HTTP Client Error", fields...)
		default:
			logger.CtxInfo(ctx, "HTTP Request", fields...)
		}
	}
}

// DB places the shared *gorm.DB handle on every request context so
// handlers stay free of global state.
func DB(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(DBKey, db)
		c.Next()
	}
}

func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}
