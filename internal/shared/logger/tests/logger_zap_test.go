package tests

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/IvanChernomyrdin/bytebite/internal/shared/logger"
)

func TestNewFileLogger_CreatesLogFileAndWrites(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "http.log")

	l := logger.NewFileLogger(logPath, "info")
	l.Info("test message")
	// закрываем буферы zap
	_ = l.Sync()

	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(b)

	if !regexp.MustCompile(`\btest message\b`).MatchString(s) {
		t.Fatalf("expected log to contain message, got: %q", s)
	}

	// проверяем формат времени: "HH:MM:SS DD.MM.YYYY"
	timeRe := regexp.MustCompile(`\b\d{2}:\d{2}:\d{2} \d{2}\.\d{2}\.\d{4}\b`)
	if !timeRe.MatchString(s) {
		t.Fatalf("expected custom time format (HH:MM:SS DD.MM.YYYY), got: %q", s)
	}
}

func TestNewFileLogger_LevelFiltersDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "http.log")

	l := logger.NewFileLogger(logPath, "warn")
	l.Info("hidden info")
	l.Warn("visible warn")
	_ = l.Sync()

	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(b)
	if regexp.MustCompile(`hidden info`).MatchString(s) {
		t.Fatalf("info line must be filtered at warn level, got: %q", s)
	}
	if !regexp.MustCompile(`visible warn`).MatchString(s) {
		t.Fatalf("expected warn line, got: %q", s)
	}
}

func TestHTTPLogger_LogRequest_WritesStructuredFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "http.log")

	l := logger.NewFileLogger(logPath, "info")
	l.LogRequest("POST", "/verify-password", 401, 20, 158.5463, "req-1")
	_ = l.Sync()

	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(b)

	mustContain := []string{
		"HTTP request",
		"method", "POST",
		"uri", "/verify-password",
		"status", "401",
		"response_size", "20",
		"duration_ms",
		"request_id", "req-1",
	}
	for _, sub := range mustContain {
		if !regexp.MustCompile(regexp.QuoteMeta(sub)).MatchString(s) {
			t.Fatalf("expected log to contain %q, got: %q", sub, s)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		"WARN":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
		"info":   zapcore.InfoLevel,
		"":       zapcore.InfoLevel,
		"banana": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := logger.ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}
