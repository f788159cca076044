package main

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/vrpong/internal/application/replay"
)

// stopper is the part of the game the host controls need
type stopper interface {
	Stop()
}

// closer is the part of the renderer the host controls need
type closer interface {
	Close()
}

// hostControls is the overlay handling keys that belong to the host
// rather than to a scene: ESC quits, F5 saves the recording. In replay
// mode it quits once the trace is exhausted.
type hostControls struct {
	game   stopper
	host   closer
	logger *slog.Logger

	recorder       *replay.Recorder
	recordFilename string
	replayer       *replay.Replayer

	quitOnce sync.Once
}

// Update implements render.Overlay
func (c *hostControls) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		c.quit()
		return nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		c.saveRecording()
	}

	if c.replayer != nil && c.replayer.Done() {
		c.logger.Info("replay finished", "frames", c.replayer.TotalFrames(), "mismatches", c.replayer.Mismatches())
		c.quit()
	}
	return nil
}

// Draw implements render.Overlay
func (c *hostControls) Draw(screen *ebiten.Image) {
	switch {
	case c.replayer != nil:
		ebitenutil.DebugPrint(screen, fmt.Sprintf("REPLAY %d/%d | ESC: Quit", c.replayer.CurrentFrame(), c.replayer.TotalFrames()))
	case c.recorder != nil:
		ebitenutil.DebugPrint(screen, fmt.Sprintf("REC %d | F5: Save | ESC: Quit", c.recorder.FrameCount()))
	default:
		ebitenutil.DebugPrint(screen, "ENTER: Enter VR | ESC: Quit")
	}
}

// quit stops the game and then the host loop
func (c *hostControls) quit() {
	c.quitOnce.Do(func() {
		if c.game != nil {
			c.game.Stop()
		}
		if c.host != nil {
			c.host.Close()
		}
	})
}

// interrupt ends the host loop from outside it. The game is stopped by
// quit once RunGame has returned, so scene teardown never overlaps Draw.
func (c *hostControls) interrupt() {
	if c.host != nil {
		c.host.Close()
	}
}

// saveRecording saves the current recording to file
func (c *hostControls) saveRecording() {
	if c.recorder == nil {
		return
	}

	filename := c.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := c.recorder.Save(filename); err != nil {
		if errors.Is(err, replay.ErrEmptyTrace) {
			c.logger.Debug("nothing recorded")
			return
		}
		c.logger.Error("failed to save recording", "err", err)
		return
	}
	c.logger.Info("recording saved", "file", filename, "frames", c.recorder.FrameCount())
}
