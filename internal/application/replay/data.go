// Package replay records the frame clock of a run and plays it back, so a
// paddle simulation can be reproduced frame for frame.
package replay

import "github.com/younwookim/vrpong/internal/application/state"

// Version of the trace file format
const Version = "1.0"

// FrameRecord is one frame of a trace
type FrameRecord struct {
	F     int             `json:"f"`  // Frame number
	DT    float64         `json:"dt"` // Elapsed seconds
	Phase state.GamePhase `json:"phase"`
}

// Trace contains everything needed to replay a run
type Trace struct {
	Version   string        `json:"version"`
	StartTime string        `json:"startTime"`
	Frames    []FrameRecord `json:"frames"`
}
