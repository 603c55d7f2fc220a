package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load on a missing file must not error, got %v", err)
	}

	want := Default()
	if *cfg != *want {
		t.Errorf("Load = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("engine:\n  tick_rate: 120\nplayer:\n  move_speed: 8.5\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Engine.TickRate != 120 {
		t.Errorf("TickRate = %v, want 120", cfg.Engine.TickRate)
	}
	if cfg.Player.MoveSpeed != 8.5 {
		t.Errorf("MoveSpeed = %v, want 8.5", cfg.Player.MoveSpeed)
	}
	// Untouched sections keep their defaults.
	if cfg.Animation.CrossfadeMillis != 250 {
		t.Errorf("CrossfadeMillis = %v, want default 250", cfg.Animation.CrossfadeMillis)
	}
	if cfg.Camera.BackDistance != 300 || cfg.Camera.Height != 200 {
		t.Errorf("camera offsets = (%v, %v), want defaults (300, 200)", cfg.Camera.BackDistance, cfg.Camera.Height)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("engine: [not: a: mapping"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load on malformed YAML must error")
	}
}

func TestWatchFiresOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("player:\n  move_speed: 5\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 1)
	if err := Watch(ctx, path, func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(path, []byte("player:\n  move_speed: 9\n"), 0o644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Player.MoveSpeed != 9 {
			t.Errorf("reloaded MoveSpeed = %v, want 9", cfg.Player.MoveSpeed)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not fire within 5s of the file changing")
	}
}
