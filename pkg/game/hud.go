package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/golangdaddy/circuit/pkg/ui"
)

var (
	hudText    = color.RGBA{255, 255, 255, 255}
	hudHint    = color.RGBA{255, 255, 0, 255}
	hudWarning = color.RGBA{255, 80, 80, 255}
	hudPanel   = color.RGBA{20, 20, 30, 160}
)

// drawHUD renders speed, lap count and lap times
func (gs *GameplayScreen) drawHUD(screen *ebiten.Image) {
	timer := gs.session.Timer()

	lines := []string{
		fmt.Sprintf("Speed: %d km/h", int(gs.session.Car().SignedSpeed()*gs.cfg.SpeedScale)),
		fmt.Sprintf("Laps Completed: %d", timer.Laps()),
	}
	if cur, ok := timer.Current(); ok {
		lines = append(lines, fmt.Sprintf("Current Lap: %.2f s", cur.Seconds()))
	}
	if last, ok := timer.Last(); ok {
		lines = append(lines, fmt.Sprintf("Last Lap Time: %.2f s", last.Seconds()))
	}
	if best, ok := timer.Best(); ok {
		lines = append(lines, fmt.Sprintf("Best Lap Time: %.2f s", best.Seconds()))
	}

	// Panel behind the text
	panel := ebiten.NewImage(240, 30*len(lines)+10)
	panel.Fill(hudPanel)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(5, 5)
	screen.DrawImage(panel, op)

	for i, l := range lines {
		ui.DrawText(screen, l, 10, 10+30*float64(i), 20, hudText)
	}

	if !gs.lastTick.OnTrack {
		ui.DrawTextCentered(screen, "OFF TRACK", float64(gs.cfg.ScreenWidth)/2, 20, 24, hudWarning)
	}

	ui.DrawText(screen, "Controls: Arrow Keys / WASD to drive | ESC to quit", 10, float64(gs.cfg.ScreenHeight)-30, 16, hudHint)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.0f", ebiten.ActualTPS()), gs.cfg.ScreenWidth-70, gs.cfg.ScreenHeight-20)
}
