package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestPrettyLoggerRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	logger := PrettyLogger(&out, termenv.Ascii, slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("restore cursor visibility", "err", "broken pipe")

	got := out.String()
	if strings.Contains(got, "hidden") {
		t.Fatalf("expected info record to be filtered, got %q", got)
	}
	if !strings.Contains(got, "restore cursor visibility") || !strings.Contains(got, "broken pipe") {
		t.Fatalf("expected warn record with attrs, got %q", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("expected no color for ascii profile, got %q", got)
	}
}
