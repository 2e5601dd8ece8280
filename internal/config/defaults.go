package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultYAML returns the embedded default configuration file. It is what
// Load falls back to when no user config exists, and a handy template for
// users writing their own.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
