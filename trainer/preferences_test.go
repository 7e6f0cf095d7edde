package trainer_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/otoate/scaledegree/trainer"
)

func TestDefaultPreferences(t *testing.T) {
	p := trainer.LoadPreferences(t.TempDir())
	if p.YmlError != nil {
		t.Fatalf("unexpected error %v", p.YmlError)
	}
	if p.Language != "en" || p.Playback.SampleRate != 44100 {
		t.Errorf("unexpected defaults %+v", p)
	}
	if p.ToneDuration() != 1500*time.Millisecond || p.Gap() != time.Second || p.AnswerToneDuration() != time.Second {
		t.Errorf("unexpected durations %v %v %v", p.ToneDuration(), p.Gap(), p.AnswerToneDuration())
	}
	if p.SlogLevel() != slog.LevelInfo {
		t.Errorf("expected info level, got %v", p.SlogLevel())
	}
}

func TestCustomPreferences(t *testing.T) {
	dir := t.TempDir()
	yml := "language: ja\nloglevel: debug\nplayback:\n  gapms: 500\nmidi:\n  input: Keystation\n"
	if err := os.WriteFile(filepath.Join(dir, "preferences.yml"), []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}
	p := trainer.LoadPreferences(dir)
	if p.YmlError != nil {
		t.Fatalf("unexpected error %v", p.YmlError)
	}
	if p.Language != "ja" || p.MIDI.Input != "Keystation" {
		t.Errorf("custom values not applied: %+v", p)
	}
	if p.Gap() != 500*time.Millisecond {
		t.Errorf("expected gap 500ms, got %v", p.Gap())
	}
	if p.ToneDuration() != 1500*time.Millisecond {
		t.Errorf("unset values should keep their defaults, got tone %v", p.ToneDuration())
	}
	if p.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", p.SlogLevel())
	}
}

func TestMalformedPreferences(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "preferences.yml"), []byte("volume: 11\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if p := trainer.LoadPreferences(dir); p.YmlError == nil {
		t.Errorf("expected an error for an unknown field")
	}
}

func TestSlogLevelFallback(t *testing.T) {
	if l := (trainer.Preferences{LogLevel: "loud"}).SlogLevel(); l != slog.LevelInfo {
		t.Errorf("expected info for an unknown level, got %v", l)
	}
}
