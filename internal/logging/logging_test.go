package logging

import (
	"errors"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNopLogger(t *testing.T) {
	l := Nop().With(String("component", "test"))
	l.Info("hello", Int("n", 1), Err(errors.New("boom")))
	_ = l.Sync()
}

func TestNewDevelopment(t *testing.T) {
	l, err := New(Config{Level: "debug", Development: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Debug("dev logger works", Bool("ok", true))
}
