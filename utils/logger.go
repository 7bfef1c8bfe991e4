package utils

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key the tracing middleware stores the id under.
const RequestIDKey = "request_id"

var Logger = logrus.New()

// InitLogger configures the shared logger. format is "json" or "text".
func InitLogger(level, format string) {
	Logger.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Logger.SetLevel(parsed)

	if strings.EqualFold(format, "json") {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// WithContext returns a log entry tagged with the request id carried by ctx, if any.
// A *gin.Context resolves string keys through its Keys map.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(Logger)
	if ctx == nil {
		return entry
	}
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		entry = entry.WithField(RequestIDKey, id)
	}
	return entry
}
