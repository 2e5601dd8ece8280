package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultsMatchEmbeddedYAML(t *testing.T) {
	// The embedded YAML and the hardcoded defaults must agree, otherwise
	// behavior depends on which fallback path was taken.
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	want := Default()
	if cfg.Board != want.Board {
		t.Errorf("embedded board config %+v differs from Default() %+v", cfg.Board, want.Board)
	}
	if cfg.Game != want.Game {
		t.Errorf("embedded game config %+v differs from Default() %+v", cfg.Game, want.Game)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := []byte("board:\n  width: 400\n  height: 200\n  block: 10\ngame:\n  tick_rate: 15\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Board.Width != 400 || cfg.Board.Height != 200 || cfg.Board.Block != 10 {
		t.Errorf("board = %+v, expected 400x200 block 10", cfg.Board)
	}
	if cfg.Game.TickRate != 15 {
		t.Errorf("tick_rate = %d, expected 15", cfg.Game.TickRate)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board-only.yaml")

	// A file that sets only the board must not zero out the pacing, or the
	// tick loop would divide by a zero tick rate.
	content := []byte("board:\n  width: 400\n  height: 200\n  block: 10\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Board.Width != 400 || cfg.Board.Height != 200 || cfg.Board.Block != 10 {
		t.Errorf("board = %+v, expected 400x200 block 10", cfg.Board)
	}
	if want := Default().Game.TickRate; cfg.Game.TickRate != want {
		t.Errorf("tick_rate = %d, expected default %d", cfg.Game.TickRate, want)
	}
}

func TestLoadRejectsNonPositiveTickRate(t *testing.T) {
	for _, rate := range []string{"0", "-5"} {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad-rate.yaml")
		content := []byte("game:\n  tick_rate: " + rate + "\n")
		if err := os.WriteFile(path, content, 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := Load(path); err == nil {
			t.Errorf("tick_rate %s should be rejected", rate)
		}
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("a missing user-provided config path should be an error")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("board: ["), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("a malformed user-provided config should be an error")
	}
}

func TestDefaultBoardIsWellFormed(t *testing.T) {
	cfg := Default()
	if cfg.Board.Width%cfg.Board.Block != 0 || cfg.Board.Height%cfg.Board.Block != 0 {
		t.Errorf("default block %d does not divide board %dx%d", cfg.Board.Block, cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Game.TickRate <= 0 {
		t.Errorf("default tick rate %d must be positive", cfg.Game.TickRate)
	}
}
