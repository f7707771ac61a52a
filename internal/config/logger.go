package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Init configures the process-wide logger.
func Init() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(lvl)
	}
}

// WithContext returns a logger carrying the request id, when one is set.
func WithContext(ctx context.Context) logrus.FieldLogger {
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return logrus.WithField("request_id", reqID)
	}
	return logrus.StandardLogger()
}
