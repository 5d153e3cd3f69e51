package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.err != nil {
		return e.err
	}
	if e.ctx.Err() != nil {
		return ebiten.Termination
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.logger.Info("window opened", "width", w, "height", h)
	}

	now := time.Now().UnixMilli()
	for _, code := range e.keyDowns(now) {
		if err := e.session.KeyDown(code); err != nil {
			e.err = err
			return err
		}
	}

	e.updateTitle()
	return nil
}

// keyDowns returns the key codes with a key-down event this tick: fresh
// presses plus auto-repeats of keys held past the initial delay
func (e *EbitenRenderer) keyDowns(now int64) []string {
	e.keys = inpututil.AppendPressedKeys(e.keys[:0])

	held := make([]string, 0, len(e.keys))
	var downs []string
	for _, k := range e.keys {
		code := k.String()
		held = append(held, code)
		if e.repeater.ShouldFire(code, inpututil.IsKeyJustPressed(k), now) {
			downs = append(downs, code)
		}
	}
	e.repeater.Retain(held)
	return downs
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}
