//go:build ebiten

package app

import (
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/HanzPo/gameoflife/internal/camera"
	"github.com/HanzPo/gameoflife/internal/render"
	"github.com/HanzPo/gameoflife/internal/sim"
	"github.com/HanzPo/gameoflife/internal/storage"
	"github.com/HanzPo/gameoflife/internal/ui"
	"github.com/HanzPo/gameoflife/pkg/life"
	"github.com/HanzPo/gameoflife/pkg/token"
)

const (
	// clickThreshold is the pointer travel, in pixels, beyond which a
	// gesture counts as a pan and the release no longer toggles a cell.
	clickThreshold = 4.0

	// wheelScale converts wheel ticks into pixel deltas.
	wheelScale = 20.0

	// delayStep is the speed change per arrow-key press.
	delayStep = 20 * time.Millisecond
)

// Game routes ebiten input into the core commands and draws the board. It
// implements ebiten.Game.
type Game struct {
	ctrl    *sim.Controller
	cam     camera.Camera
	painter *render.CellPainter
	hud     *ui.HUD
	cfg     *Config

	width, height int
	showGrid      bool
	showHUD       bool

	dragging   bool
	dragTravel float64
	lastX      int
	lastY      int
}

// New constructs a Game around an initialized controller.
func New(ctrl *sim.Controller, cfg *Config) *Game {
	return &Game{
		ctrl:     ctrl,
		cam:      camera.New(),
		painter:  render.NewCellPainter(),
		hud:      ui.NewHUD(),
		cfg:      cfg,
		showGrid: true,
		showHUD:  true,
	}
}

// Update handles per-frame input and advances the simulation schedule.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.handleKeys()
	g.handlePointer()
	g.handleWheel()

	g.ctrl.Update()
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.ctrl.Running() {
			g.ctrl.Pause()
		} else {
			g.ctrl.Play()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.Clear()
		g.persistSeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.cam.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.ToggleHelp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.ctrl.SetDelay(g.ctrl.Delay() - delayStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.ctrl.SetDelay(g.ctrl.Delay() + delayStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		// Printing the token is the manual-copy fallback; there is no
		// clipboard on this surface.
		log.Printf("share token: %s", token.Encode(g.ctrl.Cells().Cells()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		if err := storage.Export(g.cfg.Export, g.ctrl.Cells()); err != nil {
			log.Printf("export: %v", err)
		}
	}

	names := life.PatternNames()
	for i, key := range []ebiten.Key{
		ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
	} {
		if i >= len(names) {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			// Presets land relative to the camera anchor so the shape
			// appears where the user is looking.
			g.ctrl.Load(life.Translate(life.Patterns[names[i]], g.cam.Row, g.cam.Col))
			g.persistSeed()
		}
	}
}

// handlePointer implements the exclusive drag gesture: once pointer travel
// passes the click threshold the gesture pans the camera, and the release no
// longer toggles a cell.
func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.dragTravel = 0
		g.lastX, g.lastY = x, y
		return
	}
	if !g.dragging {
		return
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		dx := float64(x - g.lastX)
		dy := float64(y - g.lastY)
		g.lastX, g.lastY = x, y
		if dx == 0 && dy == 0 {
			return
		}
		g.dragTravel += math.Abs(dx) + math.Abs(dy)
		if g.dragTravel > clickThreshold {
			g.cam.PanByPixels(dx, dy)
		}
		return
	}

	// Released.
	g.dragging = false
	if g.dragTravel <= clickThreshold && !g.ctrl.Running() {
		g.ctrl.Toggle(g.cam.ScreenToWorld(float64(x), float64(y)))
		if g.ctrl.Generation() == 0 {
			g.persistSeed()
		}
	}
}

func (g *Game) handleWheel() {
	wx, wy := ebiten.Wheel()
	if wx == 0 && wy == 0 {
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		x, y := ebiten.CursorPosition()
		g.cam.ZoomAt(float64(x), float64(y), -wy*wheelScale)
		return
	}
	g.cam.PanByWheel(wx*wheelScale, wy*wheelScale)
}

// persistSeed writes the generation-0 snapshot; failures are logged and
// otherwise swallowed so persistence can never stall the interactive path.
func (g *Game) persistSeed() {
	if err := storage.SaveSeed(g.cfg.StatePath, g.ctrl.Seed()); err != nil {
		log.Printf("seed save: %v", err)
	}
}

// Draw renders the board and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.ctrl.Cells(), g.cam, g.showGrid)
	if g.showHUD {
		g.hud.Draw(screen, ui.Stats{
			Generation: g.ctrl.Generation(),
			Population: g.ctrl.Population(),
			CellSize:   g.cam.CellSize,
			Delay:      g.ctrl.Delay(),
			Running:    g.ctrl.Running(),
		})
	}
}

// Layout matches the logical viewport to the OS window so pointer
// coordinates and pixels stay one-to-one.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
