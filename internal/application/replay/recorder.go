package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/vrpong/internal/application/state"
)

var ErrEmptyTrace = errors.New("no frames to save")

// Recorder collects the delta and phase of every frame
type Recorder struct {
	trace     Trace
	recording bool
}

// NewRecorder creates a recorder that starts recording immediately
func NewRecorder() *Recorder {
	return &Recorder{
		trace: Trace{
			Version:   Version,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameRecord, 0, 72*60), // about a minute at 72fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame
func (r *Recorder) RecordFrame(dt float64, phase state.GamePhase) {
	if !r.recording {
		return
	}
	r.trace.Frames = append(r.trace.Frames, FrameRecord{
		F:     len(r.trace.Frames),
		DT:    dt,
		Phase: phase,
	})
}

// Save writes the trace to a file
func (r *Recorder) Save(filename string) error {
	if len(r.trace.Frames) == 0 {
		return ErrEmptyTrace
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.trace); err != nil {
		return fmt.Errorf("failed to encode trace: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.trace.Frames)
}

// Trace returns the recorded trace
func (r *Recorder) Trace() Trace {
	return r.trace
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("trace_%s.json", time.Now().Format("20060102_150405"))
}
