package tui

import (
	"fmt"

	"github.com/dkarpov/gridsnake/internal/core"
	"github.com/dkarpov/gridsnake/internal/snake"
)

// HUD occupies the top rows: score line plus separator.
const hudHeight = 2

// drawGame renders the full frame into the screen buffer: HUD, board border,
// snake, fruit, and any state overlay. It only reads game state, never
// mutates it.
func drawGame(dst *core.Screen, g *snake.Game, paused bool) {
	dst.Clear()

	drawHUD(dst, g)

	cols, rows := g.GridSize()
	boxW := cols + 2
	boxH := rows + 2
	if dst.Width() < boxW || dst.Height() < boxH+hudHeight {
		drawOverlay(dst, "Window too small", "Resize, or lower --width/--height")
		return
	}

	// Center the board below the HUD
	offX := (dst.Width() - boxW) / 2
	offY := hudHeight + (dst.Height()-hudHeight-boxH)/2

	dst.DrawBox(core.NewRect(offX, offY, boxW, boxH), core.ColorGray)

	block := g.Block()
	if fruit, ok := g.Fruit(); ok {
		dst.SetColor(offX+1+fruit.X/block, offY+1+fruit.Y/block, '●', core.ColorBrightRed)
	}

	for i, seg := range g.Body() {
		sx := offX + 1 + seg.X/block
		sy := offY + 1 + seg.Y/block
		if i == 0 {
			dst.SetColor(sx, sy, 'O', core.ColorBrightGreen)
		} else {
			dst.SetColor(sx, sy, 'o', core.ColorGreen)
		}
	}

	switch {
	case !g.Alive():
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d, press R to restart", g.Score()))
	case paused:
		drawOverlay(dst, "Paused", "Press P to continue")
	}
}

// drawHUD draws the score line and a separator across the top.
func drawHUD(dst *core.Screen, g *snake.Game) {
	dst.DrawTextCentered(0, fmt.Sprintf("Score: %d", g.Score()))
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawOverlay draws a centered two-line message box on top of the frame.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
