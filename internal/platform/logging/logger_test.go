package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerWritesFieldsAndMirror(t *testing.T) {
	core, logs := observer.New(LevelInfo)
	logger := FromZap(zap.New(core))

	var mirrored []string
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		mirrored = append(mirrored, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.InfoContext(context.Background(), "team created", "team_id", int64(7), "country", "Perú")
	logger.Debug("dropped below level")
	logger.Warn("report refresh slow")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["team_id"] != int64(7) || fields["country"] != "Perú" {
		t.Fatalf("unexpected fields: %+v", fields)
	}

	if len(mirrored) != 2 || mirrored[0] != "info:team created" || mirrored[1] != "warn:report refresh slow" {
		t.Fatalf("unexpected mirrored records: %+v", mirrored)
	}
}

func TestWithAddsFields(t *testing.T) {
	core, logs := observer.New(LevelInfo)
	logger := FromZap(zap.New(core)).With("component", "reports")

	logger.Info("rebuild finished")

	entries := logs.All()
	if len(entries) != 1 || entries[0].ContextMap()["component"] != "reports" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestInfoContextAddsTraceIDs(t *testing.T) {
	core, logs := observer.New(LevelInfo)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "match recorded", "match_id", int64(3))

	fields := logs.All()[0].ContextMap()
	if fields["trace_id"] != traceID.String() || fields["span_id"] != spanID.String() {
		t.Fatalf("expected trace fields, got %+v", fields)
	}
}

func TestNewJSONEncodesErrorsUnderKey(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSON(&buf, LevelInfo)

	logger.Warn("logo upload failed", "error", errors.New("disk full"), "team_id", int64(9))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "WARN" || entry["msg"] != "logo upload failed" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry["error"] != "disk full" || entry["team_id"] != float64(9) {
		t.Fatalf("unexpected fields: %+v", entry)
	}
	if caller, _ := entry["caller"].(string); !strings.HasPrefix(caller, "logging/logger_test.go") {
		t.Fatalf("expected caller at the call site, got %q", caller)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":    LevelDebug,
		" WARNING": LevelWarn,
		"error":    LevelError,
		"verbose":  LevelInfo,
		"":         LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("ignored")
	if err := logger.Sync(); err != nil {
		t.Fatalf("nil sync: %v", err)
	}
}
