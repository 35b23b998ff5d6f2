package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	previous := output
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(previous)
		SetLevel(slog.LevelInfo)
	})
	return &buf
}

func TestBuildLoggerFromCtx(t *testing.T) {
	buf := captureOutput(t)
	SetLevel(slog.LevelDebug)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("POST", "/api/v1/encode/bmp", nil)

	BuildLoggerFromCtx(ctx).WithError(errors.New("boom")).Debug("Processing request")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("Log line is not JSON: %s (%q)", err, buf.String())
	}
	if line["path"] != "/api/v1/encode/bmp" || line["error"] != "boom" || line["msg"] != "Processing request" {
		t.Errorf("Unexpected log line %v", line)
	}
}

func TestSetLevelFiltersMessages(t *testing.T) {
	buf := captureOutput(t)
	SetLevel(slog.LevelWarn)

	logger := BuildLogger()
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected info message to be filtered, got %q", buf.String())
	}
	logger.Warn("shown")
	if buf.Len() == 0 {
		t.Errorf("Expected warn message to be written")
	}
}
