package common

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Package common provides small, shared helpers used across handlers.
// KISS: tiny functions, no shared mutable state.

// Actions understood by the POST endpoints. Anything else is a no-op.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// UserID resolves the user_id query parameter, falling back to def when it is
// absent, and records it on the context for request logging.
func UserID(c *gin.Context, def string) string {
	id := c.DefaultQuery("user_id", def)
	c.Set(middleware.KeyUserID, id)
	return id
}

// BadRequest answers 400 with the handlers' error shape.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": message})
}

// MissingField answers 400 naming the absent field.
func MissingField(c *gin.Context, field string) {
	BadRequest(c, "missing field: "+field)
}

// Field is a body member decoded lazily, once the action says it is needed.
// A nil Field means the key was absent; an explicit null is kept as "null".
type Field = json.RawMessage

// Present reports whether the key appeared in the body, null included.
func Present(f Field) bool {
	return len(f) > 0
}

// IsNull reports whether the key was sent as an explicit null.
func IsNull(f Field) bool {
	return bytes.Equal(bytes.TrimSpace(f), []byte("null"))
}

// String decodes f as a JSON string. Absent, null and non-string values fail.
func String(f Field) (string, bool) {
	if !Present(f) || IsNull(f) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(f, &s); err != nil {
		return "", false
	}
	return s, true
}

// Object decodes f as a JSON object into a map. Absent, null and non-object
// values fail.
func Object(f Field) (map[string]any, bool) {
	if !Present(f) || IsNull(f) {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(f, &m); err != nil {
		return nil, false
	}
	return m, true
}

// Value decodes f as any JSON value; an explicit null yields nil.
func Value(f Field) (any, bool) {
	if !Present(f) {
		return nil, false
	}
	var v any
	if err := json.Unmarshal(f, &v); err != nil {
		return nil, false
	}
	return v, true
}
