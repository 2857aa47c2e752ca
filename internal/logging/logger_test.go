package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("exercise", "sum"), "exercise", "sum"},
		{"Int", Int("retries", 3), "retries", 3},
		{"Int64", Int64("total", -150), "total", int64(-150)},
		{"Uint64", Uint64("area", 1500), "area", uint64(1500)},
		{"Float64", Float64("celsius", 37.5), "celsius", 37.5},
		{"Duration", Duration("elapsed", time.Second), "elapsed", time.Second},
		{"Err nil", Err(nil), "error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.key)
			}
			if tt.field.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.value)
			}
		})
	}
}

func TestNewLogger_IncludesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "fib")

	logger.Info("computed", Uint64("n", 10), Int64("value", 55))

	output := buf.String()
	for _, want := range []string{`"component":"fib"`, "computed", `"n":10`, `"value":55`} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestZerologAdapter_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "temp")

	logger.Error("read failed", errors.New("unexpected EOF"), String("field", "temperature"))

	output := buf.String()
	for _, want := range []string{"read failed", "unexpected EOF", "temperature", `"level":"error"`} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestZerologAdapter_DebugRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	NewZerologAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel)).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug entry should be filtered at info level, got: %s", buf.String())
	}

	NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel)).Debug("shown", String("k", "v"))
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug entry missing, got: %s", buf.String())
	}
}

func TestZerologAdapter_PrintfPrintln(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Printf("fib(%d) = %d", 10, 55)
	logger.Println("rect", "holds")

	output := buf.String()
	if !strings.Contains(output, "fib(10) = 55") {
		t.Errorf("Printf should format message, got: %s", output)
	}
	if !strings.Contains(output, "rect holds") {
		t.Errorf("Println should join arguments, got: %s", output)
	}
}

func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"bool field", Field{Key: "holds", Value: true}, "true"},
		{"error field", Field{Key: "cause", Value: errors.New("oops")}, "oops"},
		{"struct field", Field{Key: "rect", Value: struct{ W int }{W: 30}}, "30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("entry", tt.field)
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, buf.String())
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel(" DEBUG ")
	if err != nil || lvl != zerolog.DebugLevel {
		t.Errorf("ParseLevel(DEBUG) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel should reject unknown levels")
	}
}

func TestLoggerInterface(t *testing.T) {
	var _ Logger = (*ZerologAdapter)(nil)
}
