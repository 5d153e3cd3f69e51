// Package loop drives the per-frame cycle: prepare the engine's buffers,
// rebuild memory views over them and composite the frame.
package loop

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"glyphgrid/pkg/engine/handle"
	"glyphgrid/pkg/engine/memview"
	"glyphgrid/pkg/game/compositor"
)

// Host is a display target that also owns the frame cadence
type Host interface {
	compositor.Surface

	// Present makes the composited frame visible
	Present() error

	// NextFrame blocks until the next display frame is due or ctx is done
	NextFrame(ctx context.Context) error
}

// Scheduler runs one engine render cycle per display frame. It is single
// threaded: Step and the input router must be called from one goroutine.
type Scheduler struct {
	engine handle.Engine
	view   handle.View
	comp   *compositor.Compositor
	logger *log.Logger
	frames uint64
}

// New creates a scheduler for engine e rendering view through comp
func New(e handle.Engine, view handle.View, comp *compositor.Compositor, logger *log.Logger) *Scheduler {
	return &Scheduler{
		engine: e,
		view:   view,
		comp:   comp,
		logger: logger,
	}
}

// Frames returns the number of frames composited so far
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Step renders a single frame onto surface. Views are derived from pointers
// queried after this frame's prepare call and are dropped when Step returns.
// On error nothing has been drawn for the frame.
func (s *Scheduler) Step(surface compositor.Surface) error {
	if err := s.engine.PrepareRender(); err != nil {
		return fmt.Errorf("frame %d: prepare render: %w", s.frames, err)
	}

	views, err := memview.Query(s.engine, s.view)
	if err != nil {
		s.logger.Error("aborting frame", "frame", s.frames, "err", err)
		return fmt.Errorf("frame %d: %w", s.frames, err)
	}

	s.comp.Compose(surface, views)
	s.frames++
	return nil
}

// Run steps, presents and waits for the next frame until ctx is cancelled
// or a frame fails. It returns ctx.Err() on cancellation.
func (s *Scheduler) Run(ctx context.Context, host Host) error {
	s.logger.Info("render loop started", "view", s.view, "tile_px", s.comp.TilePx())
	defer func() {
		s.logger.Info("render loop stopped", "frames", s.frames)
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Step(host); err != nil {
			return err
		}
		if err := host.Present(); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}
		if err := host.NextFrame(ctx); err != nil {
			return err
		}
	}
}
