// gridsnake is a classic grid snake game for the terminal.
//
// Usage:
//
//	gridsnake play     - Play in the current terminal
//	gridsnake serve    - Start an SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a YAML config file (board geometry, tick rate)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Snake in your terminal",
	Long: `gridsnake is a terminal snake game: steer the snake with the arrow
keys, eat fruit to grow, avoid the walls and your own tail.

Examples:
  gridsnake play
  gridsnake play --width 800 --height 400
  gridsnake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
