package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/vrpong/internal/application/state"
)

// Replayer feeds recorded deltas back as a frame clock and checks that
// the replayed run goes through the same phases.
type Replayer struct {
	trace      Trace
	frame      int
	mismatches int
}

// NewReplayer creates a new replayer from a trace
func NewReplayer(trace Trace) *Replayer {
	return &Replayer{trace: trace}
}

// LoadTrace loads a trace from a file
func LoadTrace(filename string) (*Trace, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var trace Trace
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&trace); err != nil {
		return nil, fmt.Errorf("failed to decode trace: %w", err)
	}
	if trace.Version != Version {
		return nil, fmt.Errorf("unsupported trace version %q", trace.Version)
	}

	return &trace, nil
}

// Delta returns the recorded delta of the current frame and advances.
// Past the end it returns 0.
func (r *Replayer) Delta() float64 {
	if r.frame >= len(r.trace.Frames) {
		return 0
	}
	dt := r.trace.Frames[r.frame].DT
	r.frame++
	return dt
}

// RecordFrame compares the live phase with the recorded one for the frame
// whose delta was just handed out.
func (r *Replayer) RecordFrame(_ float64, phase state.GamePhase) {
	i := r.frame - 1
	if i < 0 || i >= len(r.trace.Frames) {
		return
	}
	if r.trace.Frames[i].Phase != phase {
		r.mismatches++
	}
}

// Done reports whether every recorded frame was played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.trace.Frames)
}

// Mismatches returns how many frames ran in a different phase than recorded
func (r *Replayer) Mismatches() int {
	return r.mismatches
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.trace.Frames)
}

// Reset rewinds the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.mismatches = 0
}

// CreateTestTrace creates a trace of fixed-step frames in one phase
func CreateTestTrace(frames int, dt float64, phase state.GamePhase) Trace {
	trace := Trace{
		Version: Version,
		Frames:  make([]FrameRecord, frames),
	}
	for i := 0; i < frames; i++ {
		trace.Frames[i] = FrameRecord{F: i, DT: dt, Phase: phase}
	}
	return trace
}
