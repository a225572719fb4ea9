package logging

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

type logDataKey struct{}

// GetLogData returns the request's LogData, or nil when the middleware did
// not run.
func GetLogData(ctx context.Context) *LogData {
	ld, _ := ctx.Value(logDataKey{}).(*LogData)
	return ld
}

// HumaMiddleware attaches a fresh LogData to each request context and emits
// the collected fields once the handler chain finishes.
func HumaMiddleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(logger)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		logData.Log().Info("Request.Complete")
	}
}
