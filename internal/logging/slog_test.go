package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func newTestLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON log record: %v (%q)", err, buf.String())
	}
	return rec
}

func TestSlogLogger_Levels(t *testing.T) {
	cases := []struct {
		name  string
		log   func(l *SlogLogger)
		level string
	}{
		{"debug", func(l *SlogLogger) { l.Debug(context.Background(), "m") }, "DEBUG"},
		{"info", func(l *SlogLogger) { l.Info(context.Background(), "m") }, "INFO"},
		{"warn", func(l *SlogLogger) { l.Warn(context.Background(), "m") }, "WARN"},
		{"error", func(l *SlogLogger) { l.Error(context.Background(), "m") }, "ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, buf := newTestLogger()
			tc.log(l)
			rec := lastRecord(t, buf)
			if rec["level"] != tc.level {
				t.Fatalf("want level %s, got %v", tc.level, rec["level"])
			}
			if rec["msg"] != "m" {
				t.Fatalf("want msg %q, got %v", "m", rec["msg"])
			}
		})
	}
}

func TestSlogLogger_WithAddsFields(t *testing.T) {
	l, buf := newTestLogger()
	child := l.With("module", "test")
	child.Info(context.Background(), "hello")

	rec := lastRecord(t, buf)
	if rec["module"] != "test" {
		t.Fatalf("expected module field from With, got %v", rec["module"])
	}
}
