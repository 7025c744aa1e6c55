package logger

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"carebase-backend/internal/auth"
)

// Logger wraps logrus for structured logging with request context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// FromRequest returns a logger carrying the request id and, when the
// request is authenticated, the acting user and company.
func FromRequest(c *gin.Context) *Logger {
	l := New()
	if requestID := c.GetString("request_id"); requestID != "" {
		l.Entry = l.Entry.WithField("request_id", requestID)
	}
	if actor, ok := auth.ActorFromContext(c); ok {
		l.Entry = l.Entry.WithFields(logrus.Fields{
			"actor_id":   actor.UserID,
			"company_id": actor.CompanyID,
			"role":       actor.Role,
		})
	}
	return l
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}
