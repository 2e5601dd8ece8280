package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkarpov/gridsnake/internal/config"
	"github.com/dkarpov/gridsnake/internal/core"
	"github.com/dkarpov/gridsnake/internal/platform/tui"
	"github.com/dkarpov/gridsnake/internal/snake"
)

var (
	flagWidth  int
	flagHeight int
	flagFPS    int
	flagSeed   int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD - Steer the snake
  P           - Pause
  R           - Restart (after game over)
  Q/Esc       - Quit

The board is measured in pixel-equivalent units split into cells of the
configured block size. Board flags override the config file. The default
1000x600 board needs roughly a 52x34 terminal; on a standard 80x24 window
pass a smaller board, e.g. --width 800 --height 400.

Examples:
  gridsnake play
  gridsnake play --width 800 --height 400
  gridsnake play --config ./my-board.yaml --fps 20`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in units (default from config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in units (default from config)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Ticks per second (default from config)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// CLI flags win over the config file
	if flagWidth > 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Board.Height = flagHeight
	}
	if flagFPS > 0 {
		cfg.Game.TickRate = flagFPS
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := snake.New(snake.Config{
		Width:  cfg.Board.Width,
		Height: cfg.Board.Height,
		Block:  cfg.Board.Block,
		Seed:   seed,
	})
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		log.Warn("cannot detect terminal size, assuming 80x24", "error", termErr)
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Game.TickRate,
		Seed:     seed,
	}

	if err := tui.Run(game, runtime); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
