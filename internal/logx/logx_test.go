package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, "debug").With(String("component", "hud"))
	log.Info("notification created", Int("skill", 2), Err(errors.New("boom")))

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if got["message"] != "notification created" {
		t.Fatalf("unexpected message: %v", got["message"])
	}
	if got["component"] != "hud" || got["skill"] != float64(2) || got["err"] != "boom" {
		t.Fatalf("unexpected fields: %v", got)
	}
	if _, ok := got["caller"]; !ok {
		t.Fatalf("expected caller field: %v", got)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, "warn")
	log.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
	if log.Enabled(LevelInfo) {
		t.Fatal("expected info disabled")
	}
	log.Warn("kept")
	if buf.Len() == 0 {
		t.Fatal("expected warn to be written")
	}
}

func TestZeroLoggerIsNoop(t *testing.T) {
	var log Logger
	if !log.IsZero() {
		t.Fatal("expected zero logger")
	}
	log.Error("nothing happens")
	if Nop().IsZero() {
		t.Fatal("Nop must not report zero")
	}
}

func TestParseLevel(t *testing.T) {
	if got := ParseLevel("WARNING", LevelInfo); got != LevelWarn {
		t.Fatalf("expected warn, got %v", got)
	}
	if got := ParseLevel("bogus", LevelInfo); got != LevelInfo {
		t.Fatalf("expected default, got %v", got)
	}
}
