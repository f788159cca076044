package state

import (
	"errors"
	"fmt"
)

// GamePhase is the top-level mode of the application.
// Exactly one phase is active at a time and it decides which scene runs.
type GamePhase int

const (
	PhaseUnsupported GamePhase = iota
	PhasePromptForSession
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns the string representation of the game phase
func (p GamePhase) String() string {
	switch p {
	case PhaseUnsupported:
		return "Unsupported"
	case PhasePromptForSession:
		return "PromptForSession"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is one of the declared phases.
func (p GamePhase) Valid() bool {
	return p >= PhaseUnsupported && p <= PhaseGameOver
}

// MarshalText writes the phase by name
func (p GamePhase) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: phase %d", ErrInvalidState, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText parses a phase name written by MarshalText
func (p *GamePhase) UnmarshalText(text []byte) error {
	for q := PhaseUnsupported; q <= PhaseGameOver; q++ {
		if q.String() == string(text) {
			*p = q
			return nil
		}
	}
	return fmt.Errorf("%w: unknown phase %q", ErrInvalidState, text)
}

// DefaultMaxScore is the win threshold used when the config leaves it unset.
const DefaultMaxScore = 5

var ErrInvalidState = errors.New("invalid game state")

// GameState is the shared value passed into and out of every scene update.
// Scenes return a modified copy; the orchestrator keeps the latest one.
type GameState struct {
	Phase       GamePhase
	PlayerScore int
	EnemyScore  int
	MaxScore    int
}

// New returns the initial state: waiting for a session, no points scored.
func New(maxScore int) GameState {
	if maxScore <= 0 {
		maxScore = DefaultMaxScore
	}
	return GameState{
		Phase:    PhasePromptForSession,
		MaxScore: maxScore,
	}
}

// ScoreReached reports whether either side has reached the win threshold.
func (s GameState) ScoreReached() bool {
	return s.PlayerScore >= s.MaxScore || s.EnemyScore >= s.MaxScore
}

// WithPhase returns a copy of s in phase p.
func (s GameState) WithPhase(p GamePhase) GameState {
	s.Phase = p
	return s
}

// Validate checks the GameState invariants.
func (s GameState) Validate() error {
	if !s.Phase.Valid() {
		return fmt.Errorf("%w: unknown phase %d", ErrInvalidState, int(s.Phase))
	}
	if s.MaxScore <= 0 {
		return fmt.Errorf("%w: max score must be positive, got %d", ErrInvalidState, s.MaxScore)
	}
	if s.PlayerScore < 0 || s.EnemyScore < 0 {
		return fmt.Errorf("%w: negative score %d/%d", ErrInvalidState, s.PlayerScore, s.EnemyScore)
	}
	// Scores are capped once game-over logic has run.
	if s.Phase == PhaseGameOver && (s.PlayerScore > s.MaxScore || s.EnemyScore > s.MaxScore) {
		return fmt.Errorf("%w: score above max %d", ErrInvalidState, s.MaxScore)
	}
	return nil
}
