package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/race"
	"github.com/golangdaddy/circuit/pkg/vehicle"
)

// GameplayScreen represents the main driving gameplay
type GameplayScreen struct {
	cfg        config.Config
	session    *race.Session
	trackImage *ebiten.Image
	carSprite  *ebiten.Image
	lastTick   race.Tick
	onQuit     func() // Callback when the player quits
}

// NewGameplayScreen creates a new gameplay screen around a ready session
func NewGameplayScreen(cfg config.Config, session *race.Session, onQuit func()) *GameplayScreen {
	return &GameplayScreen{
		cfg:        cfg,
		session:    session,
		trackImage: ebiten.NewImageFromImage(session.Surface()),
		carSprite:  ebiten.NewImageFromImage(vehicle.Sprite(cfg.Tuning)),
		lastTick:   race.Tick{OnTrack: true},
		onQuit:     onQuit,
	}
}

// readControls polls the keyboard. Arrow keys and WASD both drive.
func readControls() vehicle.Controls {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return vehicle.Controls{
		Accelerate: pressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Brake:      pressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:       pressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:      pressed(ebiten.KeyArrowRight, ebiten.KeyD),
	}
}

// Update handles gameplay logic
func (gs *GameplayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if gs.onQuit != nil {
			gs.onQuit()
		}
		return nil
	}

	gs.lastTick = gs.session.Step(readControls())
	return nil
}

// Draw renders the gameplay screen
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	screen.Fill(gs.cfg.Palette.Grass)
	screen.DrawImage(gs.trackImage, nil)

	gs.drawCar(screen)
	gs.drawHUD(screen)
}

// drawCar renders the player's car rotated about its centre
func (gs *GameplayScreen) drawCar(screen *ebiten.Image) {
	car := gs.session.Car()
	pos := car.Position()
	w := float64(gs.carSprite.Bounds().Dx())
	h := float64(gs.carSprite.Bounds().Dy())

	// Screen rotation is clockwise, heading is counter-clockwise
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(-car.Heading() * math.Pi / 180)
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(gs.carSprite, op)
}
