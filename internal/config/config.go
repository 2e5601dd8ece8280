// Package config provides YAML-based configuration loading for the game.
package config

import "fmt"

// Config contains all tunable parameters for a snake session.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Game  GameConfig  `yaml:"game"`
}

// BoardConfig defines the playing field geometry. Dimensions are
// pixel-equivalent units divided into square cells of edge Block; every
// entity position is a multiple of Block.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Block  int `yaml:"block"`
}

// GameConfig defines loop pacing.
type GameConfig struct {
	TickRate int `yaml:"tick_rate"` // Simulation ticks per second
}

// Validate rejects pacing values the tick loop cannot run with. Board
// geometry is validated separately when the game is constructed.
func (c Config) Validate() error {
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Game.TickRate)
	}
	return nil
}

// Default returns the built-in configuration: the classic 1000x600 board
// with 20-unit cells at 30 ticks per second.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  1000,
			Height: 600,
			Block:  20,
		},
		Game: GameConfig{
			TickRate: 30,
		},
	}
}
