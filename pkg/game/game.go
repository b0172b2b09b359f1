package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/laps"
	"github.com/golangdaddy/circuit/pkg/race"
	"github.com/golangdaddy/circuit/pkg/ui"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	cfg           config.Config
	currentScreen Screen
	quit          bool
}

// NewGame creates a new game instance. The race is built up front so that
// a broken configuration fails before the window opens.
func NewGame(cfg config.Config) (*Game, error) {
	session, err := race.New(cfg, laps.SystemClock)
	if err != nil {
		return nil, fmt.Errorf("creating race: %w", err)
	}

	game := &Game{cfg: cfg}
	gameplay := NewGameplayScreen(cfg, session, game.requestQuit)

	// Initialize with title screen
	game.currentScreen = ui.NewTitleScreen(gameplay.trackImage, func() {
		log.Printf("Race started")
		game.currentScreen = gameplay
	}, game.requestQuit)

	return game, nil
}

func (g *Game) requestQuit() {
	g.quit = true
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		if err := g.currentScreen.Update(); err != nil {
			return err
		}
	}
	if g.quit {
		log.Printf("Quit requested")
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
