package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/younwookim/vrpong/internal/infrastructure/logging"
)

// Manager wraps a Platform and enforces the session rules:
// gesture-gated requests, one live session, idempotent end.
type Manager struct {
	platform Platform
	logger   *slog.Logger

	mu            sync.Mutex
	gestureSeq    uint64
	activeGesture uint64
	active        Session
	pending       bool
}

// NewManager creates a session manager on top of the platform
func NewManager(platform Platform, logger *slog.Logger) *Manager {
	return &Manager{
		platform: platform,
		logger:   logging.OrDiscard(logger),
	}
}

// Gesture marks a user interaction in progress. It is only valid
// between BeginGesture and End on the Manager that created it.
type Gesture struct {
	id uint64
	m  *Manager
}

// BeginGesture opens a gesture. Call it from the click handler itself
// and End it when the handler returns.
func (m *Manager) BeginGesture() *Gesture {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gestureSeq++
	m.activeGesture = m.gestureSeq
	return &Gesture{id: m.gestureSeq, m: m}
}

// End closes the gesture. Safe to call more than once.
func (g *Gesture) End() {
	if g == nil || g.m == nil {
		return
	}
	g.m.mu.Lock()
	defer g.m.mu.Unlock()

	if g.m.activeGesture == g.id {
		g.m.activeGesture = 0
	}
}

// IsSupported queries the platform. It never fails: platform errors are
// logged and reported as unsupported.
func (m *Manager) IsSupported(ctx context.Context, mode Mode) bool {
	if m.platform == nil {
		return false
	}
	ok, err := m.platform.IsSessionSupported(ctx, mode)
	if err != nil {
		m.logger.Warn("capability query failed", "mode", mode, "err", err)
		return false
	}
	return ok
}

// RequestSession asks the platform for a session. The gesture is checked
// before anything else; the platform call itself runs on its own goroutine
// and its outcome is sent once on the returned channel.
func (m *Manager) RequestSession(ctx context.Context, g *Gesture, mode Mode, opts Options) <-chan Result {
	out := make(chan Result, 1)

	if err := m.reserve(g); err != nil {
		m.logger.Warn("session request rejected", "mode", mode, "err", err)
		out <- Result{Err: err}
		close(out)
		return out
	}

	go func() {
		defer close(out)

		s, err := m.platform.RequestSession(ctx, mode, opts)

		m.mu.Lock()
		m.pending = false
		if err == nil {
			m.active = s
		}
		m.mu.Unlock()

		if err != nil {
			if !errors.Is(err, ErrSessionDenied) {
				err = fmt.Errorf("%w: %w", ErrSessionDenied, err)
			}
			m.logger.Info("session request denied", "mode", mode, "err", err)
			out <- Result{Err: err}
			return
		}

		m.logger.Info("session started", "mode", mode, "session", s.ID(), "features", s.EnabledFeatures())
		out <- Result{Session: s}
	}()

	return out
}

func (m *Manager) reserve(g *Gesture) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if g == nil || g.m != m || g.id == 0 || g.id != m.activeGesture {
		return ErrNoUserGesture
	}
	if m.platform == nil {
		return fmt.Errorf("%w: no platform", ErrUnsupportedCapability)
	}
	if m.active != nil || m.pending {
		return fmt.Errorf("%w: device busy", ErrSessionDenied)
	}
	m.pending = true
	return nil
}

// EndSession ends s and forgets it if it is the active session.
// A nil session is a no-op.
func (m *Manager) EndSession(s Session) {
	if s == nil {
		return
	}

	m.mu.Lock()
	if m.active == s {
		m.active = nil
	}
	m.mu.Unlock()

	if err := s.End(); err != nil {
		m.logger.Warn("failed to end session", "session", s.ID(), "err", err)
		return
	}
	m.logger.Info("session ended", "session", s.ID())
}

// Active returns the live session, or nil
func (m *Manager) Active() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}
