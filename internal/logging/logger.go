package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

type Logger struct {
	*slog.Logger
}

func BuildLogger() *Logger {
	return BuildLoggerWithOutput(os.Stdout, slog.LevelDebug)
}

// BuildLoggerWithOutput is used by the CLI, which logs to stderr so decoded text on stdout stays clean
func BuildLoggerWithOutput(w io.Writer, level slog.Level) *Logger {
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
	return &logger
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	logger := BuildLogger()
	return &Logger{Logger: logger.With("path", ctx.Request.URL.Path, "client_ip", ctx.ClientIP())}
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}
