package termview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/treeview"
)

// FrameFunc builds one frame. Returning an error stops Run with it.
type FrameFunc func(ui *treeview.Ui) error

// ErrQuit is returned by Run when the user pressed Ctrl-C.
var ErrQuit = errors.New("termview: quit")

// Config configures Run.
type Config struct {
	// FPS bounds the redraw rate. Zero means 30.
	FPS        int
	Background treeview.Color
}

// Run drives frames on screen until ctx is done, frame fails, or Ctrl-C is
// pressed. It initialises and finalises screen itself.
func Run(ctx context.Context, tctx *treeview.Context, screen tcell.Screen, frame FrameFunc, cfg Config) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("termview: init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	fps := cfg.FPS
	if fps <= 0 {
		fps = 30
	}
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	var input InputState
	raster := Rasterizer{Background: cfg.Background}
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if key, isKey := ev.(*tcell.EventKey); isKey && key.Key() == tcell.KeyCtrlC {
				return ErrQuit
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			input.HandleEvent(ev)
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			out, err := Step(tctx, screen, &input, dt, frame)
			if err != nil {
				return err
			}
			raster.Draw(screen, out.Shapes)
			screen.Show()
		}
	}
}

// Step runs a single frame over the whole screen.
func Step(tctx *treeview.Context, screen tcell.Screen, input *InputState, dt float64, frame FrameFunc) (treeview.Output, error) {
	w, h := screen.Size()
	area := treeview.Rect{Width: float64(w) * CellSize.X, Height: float64(h) * CellSize.Y}
	ui := tctx.BeginFrame(input.Frame(), area, dt)
	err := frame(ui)
	return tctx.EndFrame(), err
}
