package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TitleScreen shows the game name over a dimmed preview of the circuit
type TitleScreen struct {
	startTime      time.Time
	backdrop       *ebiten.Image
	onStartPressed func() // Callback when user presses to start
	onQuit         func()
}

// NewTitleScreen creates a new title screen. backdrop may be nil.
func NewTitleScreen(backdrop *ebiten.Image, onStartPressed, onQuit func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		backdrop:       backdrop,
		onStartPressed: onStartPressed,
		onQuit:         onQuit,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if ts.onQuit != nil {
			ts.onQuit()
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	screen.Fill(color.RGBA{15, 20, 35, 255})
	if ts.backdrop != nil {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.Scale(0.3, 0.3, 0.3, 1)
		screen.DrawImage(ts.backdrop, op)
	}

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulsing title
	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	brightness := math.Min(1.0+0.2*math.Sin(elapsed*1.5), 1.0)
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	DrawTextCentered(screen, "CIRCUIT", centerX, centerY-40, 96*pulse, titleColor)
	DrawTextCentered(screen, "Time Attack", centerX, centerY+80, 32, color.RGBA{180, 180, 200, 255})

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		DrawTextCentered(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-120, 24, color.RGBA{150, 200, 255, 255})
	}
	DrawTextCentered(screen, "ESC to quit", centerX, float64(height)-80, 16, color.RGBA{120, 120, 140, 255})

	drawDecorativeLines(screen, width, height)
}

// drawDecorativeLines draws the rules above and below the title block
func drawDecorativeLines(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{50, 60, 80, 100}
	line := ebiten.NewImage(width, 2)
	line.Fill(lineColor)

	for _, y := range []float64{float64(height) / 6, float64(height) * 5 / 6} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, y)
		screen.DrawImage(line, op)
	}
}
