package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	s := Default()
	if s.MoveSpeed != 180 || s.BoostSpeed != 300 {
		t.Fatalf("speeds = %f/%f, want 180/300", s.MoveSpeed, s.BoostSpeed)
	}
	if s.BarWidth != 50 {
		t.Fatalf("bar_width = %f, want 50", s.BarWidth)
	}
	if s.LabelOffsetY != -30 || s.BarOffsetY != -44 {
		t.Fatalf("offsets = %f/%f, want -30/-44", s.LabelOffsetY, s.BarOffsetY)
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if s != Default() {
		t.Fatalf("missing file changed the defaults")
	}
}

func TestLoadOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	if err := os.WriteFile(path, []byte("move_speed: 240\nflash_frames: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.MoveSpeed != 240 || s.FlashFrames != 20 {
		t.Fatalf("overrides not applied: %f/%d", s.MoveSpeed, s.FlashFrames)
	}
	if s.BoostSpeed != 300 {
		t.Fatalf("untouched field lost its default: %f", s.BoostSpeed)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("move_speed: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("malformed yaml must error")
	}
}

func TestTuningMapping(t *testing.T) {
	s := Default()
	tun := s.Tuning()
	if tun.MoveSpeed != s.MoveSpeed || tun.BoostSpeed != s.BoostSpeed {
		t.Fatalf("speed mapping wrong")
	}
	if tun.FlashFrames != s.FlashFrames || tun.TweenFrames != s.TweenFrames {
		t.Fatalf("frame mapping wrong")
	}
	if tun.BarWidth != s.BarWidth || tun.BarOffsetY != s.BarOffsetY {
		t.Fatalf("bar mapping wrong")
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "arena.yaml")
	if err := os.WriteFile(path, []byte("move_speed: 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Unrelated files are filtered out.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Fatalf("event for %s, want %s", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no watch event within 2s")
	}

	select {
	case got := <-w.Events:
		t.Fatalf("unexpected extra event: %s", got)
	case <-time.After(200 * time.Millisecond):
	}
}
