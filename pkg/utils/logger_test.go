package utils

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerJSON(t *testing.T) {
	var a, b bytes.Buffer
	log := newLogger(false, zapcore.AddSync(&a), zapcore.AddSync(&b))

	log.Debug("hidden")
	log.Info("Seat reserved", zap.String("seat_id", "A1"))

	for name, buf := range map[string]*bytes.Buffer{"first": &a, "second": &b} {
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 1 {
			t.Fatalf("%s sink got %d lines: %q", name, len(lines), buf.String())
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
			t.Fatalf("%s sink: %v", name, err)
		}
		if entry["msg"] != "Seat reserved" || entry["seat_id"] != "A1" || entry["level"] != "info" {
			t.Fatalf("%s sink entry = %v", name, entry)
		}
		if _, ok := entry["timestamp"]; !ok {
			t.Fatalf("%s sink entry has no timestamp: %v", name, entry)
		}
	}
}

func TestNewLoggerDebugConsole(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(true, zapcore.AddSync(&buf))

	log.Debug("Hall availability loaded", zap.Int("available_count", 3))

	out := buf.String()
	if !strings.Contains(out, "DEBUG") || !strings.Contains(out, "Hall availability loaded") {
		t.Fatalf("console output = %q", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("debug output should not be JSON: %q", out)
	}
}

func TestRotatingFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs", "nested")

	file, err := rotatingFile(dir)
	if err != nil {
		t.Fatalf("rotatingFile: %v", err)
	}
	if file.Filename != filepath.Join(dir, "seat-booking.log") {
		t.Fatalf("filename = %s", file.Filename)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("log dir not created: %v", err)
	}
}
