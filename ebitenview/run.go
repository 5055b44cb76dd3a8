package ebitenview

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/treeview"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ShowFPS    bool
	ClearColor treeview.Color
	// ScreenshotDir enables F12 screenshots into this directory.
	ScreenshotDir string
}

// FrameFunc builds one frame. Returning an error stops Run with it.
type FrameFunc func(ui *treeview.Ui) error

// Run opens a window and calls frame once per tick until the window is
// closed or frame fails. ctx.Font must be a *TTFFont.
func Run(ctx *treeview.Context, frame FrameFunc, cfg RunConfig) error {
	font, ok := ctx.Font.(*TTFFont)
	if !ok {
		return errors.New("ebitenview: context font must be a *TTFFont")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{
		ctx:      ctx,
		frame:    frame,
		cfg:      cfg,
		renderer: NewRenderer(font),
		w:        cfg.Width,
		h:        cfg.Height,
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitenview: run: %w", err)
	}
	return nil
}

type game struct {
	ctx      *treeview.Context
	frame    FrameFunc
	cfg      RunConfig
	renderer *Renderer
	out      treeview.Output
	w, h     int

	screenshot bool
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	screen := treeview.Rect{Width: float64(g.w), Height: float64(g.h)}
	ui := g.ctx.BeginFrame(PollInput(), screen, dt)
	err := g.frame(ui)
	g.out = g.ctx.EndFrame()
	ApplyCursor(g.out)

	if g.cfg.ScreenshotDir != "" && inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshot = true
	}
	return err
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.NRGBA())
	g.renderer.Draw(screen, g.out.Shapes)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), g.w-90, 0)
	}
	if g.screenshot {
		g.screenshot = false
		if _, err := SaveScreenshot(screen, g.cfg.ScreenshotDir, g.cfg.Title); err != nil {
			slog.Warn("ebitenview: screenshot failed", "dir", g.cfg.ScreenshotDir, "err", err)
		}
	}
}

func (g *game) Layout(w, h int) (int, int) {
	g.w, g.h = w, h
	return w, h
}
