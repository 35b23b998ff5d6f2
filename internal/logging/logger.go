package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

var (
	level = new(slog.LevelVar)

	output io.Writer = os.Stdout
)

type Logger struct {
	*slog.Logger
}

// SetLevel changes the minimum level of every logger built from now on, and of the ones already built
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetOutput redirects loggers built from now on
func SetOutput(w io.Writer) {
	output = w
}

func BuildLogger() *Logger {
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))}
	return &logger
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	logger := BuildLogger()
	return &Logger{Logger: logger.With("path", ctx.Request.URL.Path)}
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}
