package game

import "github.com/younwookim/vrpong/internal/application/state"

// Trigger is an event that may move the game to another phase
type Trigger int

const (
	// TriggerUnsupported fires when the capability check fails
	TriggerUnsupported Trigger = iota
	// TriggerSessionGranted fires when the user accepted an immersive session
	TriggerSessionGranted
	// TriggerScoreReached fires when a score reaches the maximum
	TriggerScoreReached
)

func (t Trigger) String() string {
	switch t {
	case TriggerUnsupported:
		return "Unsupported"
	case TriggerSessionGranted:
		return "SessionGranted"
	case TriggerScoreReached:
		return "ScoreReached"
	default:
		return "Unknown"
	}
}

type edge struct {
	from    state.GamePhase
	trigger Trigger
}

var transitions = map[edge]state.GamePhase{
	{state.PhasePromptForSession, TriggerUnsupported}:    state.PhaseUnsupported,
	{state.PhasePromptForSession, TriggerSessionGranted}: state.PhasePlaying,
	{state.PhasePlaying, TriggerScoreReached}:            state.PhaseGameOver,
}

// Transition looks up the phase reached from `from` on trigger t.
// ok is false when the pair is not in the table; the phase must then stay.
func Transition(from state.GamePhase, t Trigger) (state.GamePhase, bool) {
	to, ok := transitions[edge{from, t}]
	if !ok {
		return from, false
	}
	return to, true
}

// PhaseChanged reports whether the active scene must be rebuilt
func PhaseChanged(prev, cur state.GamePhase) bool {
	return prev != cur
}

// SceneKind names the scene variant presenting a phase
type SceneKind int

const (
	SceneMenu SceneKind = iota
	SceneDemo
)

func (k SceneKind) String() string {
	if k == SceneDemo {
		return "demo"
	}
	return "menu"
}

// SceneFor maps a phase to its scene. Only Playing runs the demo; every
// other phase falls back to the menu.
func SceneFor(p state.GamePhase) SceneKind {
	if p == state.PhasePlaying {
		return SceneDemo
	}
	return SceneMenu
}
