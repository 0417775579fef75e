package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-Id"

	// Context keys shared with the handlers.
	KeyRequestID = "request_id"
	KeyUserID    = "user_id"
)

// RequestID reuses an incoming X-Request-Id or generates a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(KeyRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		user := c.GetString(KeyUserID)
		if user == "" {
			user = "-"
		}
		entry := log.WithFields(log.Fields{
			"request_id": c.GetString(KeyRequestID),
			"user":       user,
		})
		msg := "%s %s -> %d in %dms"
		args := []any{c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Milliseconds()}
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Errorf(msg, args...)
			return
		}
		entry.Infof(msg, args...)
	}
}

// CORS allows cross-origin calls from origin ("*" for any) and answers
// preflight requests directly.
func CORS(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-Id")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Expose-Headers", RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Recovery turns a panic into a logged 500 with the usual error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.WithField("request_id", c.GetString(KeyRequestID)).
			Errorf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
	})
}

// Instrument records request count and latency per route template.
func Instrument(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(path, strconv.Itoa(c.Writer.Status()), c.Request.Method, time.Since(start).Seconds())
	}
}
