// Package xrsim is a simulated XR platform for desktop runs and tests.
// It answers capability queries, waits out a configurable consent delay
// and hands out sessions that render side by side in the window.
package xrsim

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/younwookim/vrpong/internal/application/session"
	"github.com/younwookim/vrpong/internal/infrastructure/logging"
)

// Options configures the simulated device
type Options struct {
	Supported bool          // immersive-vr available at all
	Deny      bool          // the user declines every request
	Latency   time.Duration // consent delay before a request resolves
	Features  []string      // optional features the device can enable
	Logger    *slog.Logger
}

// Platform implements session.Platform
type Platform struct {
	opts   Options
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// New creates a simulated platform
func New(opts Options) *Platform {
	return &Platform{
		opts:     opts,
		logger:   logging.OrDiscard(opts.Logger),
		sessions: make(map[string]*Session),
	}
}

// IsSessionSupported implements session.Platform. Inline sessions are
// always available; immersive ones only when Supported is set.
func (p *Platform) IsSessionSupported(ctx context.Context, mode session.Mode) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	switch mode {
	case session.ModeInline:
		return true, nil
	case session.ModeImmersiveVR:
		return p.opts.Supported, nil
	default:
		return false, nil
	}
}

// RequestSession implements session.Platform. It blocks for the consent
// delay or until ctx is done.
func (p *Platform) RequestSession(ctx context.Context, mode session.Mode, opts session.Options) (session.Session, error) {
	ok, err := p.IsSessionSupported(ctx, mode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", session.ErrUnsupportedCapability, mode)
	}

	for _, f := range opts.OptionalFeatures {
		if !slices.Contains(p.opts.Features, f) {
			return nil, fmt.Errorf("%w: feature %q rejected", session.ErrSessionDenied, f)
		}
	}

	if p.opts.Latency > 0 {
		timer := time.NewTimer(p.opts.Latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if p.opts.Deny {
		return nil, fmt.Errorf("%w: user declined", session.ErrSessionDenied)
	}

	s := &Session{
		id:       uuid.NewString(),
		mode:     mode,
		features: slices.Clone(opts.OptionalFeatures),
		platform: p,
	}

	p.mu.Lock()
	p.sessions[s.id] = s
	p.mu.Unlock()

	p.logger.Debug("simulated session granted", "session", s.id, "mode", mode)
	return s, nil
}

// ActiveSessions returns the number of sessions not yet ended
func (p *Platform) ActiveSessions() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sessions)
}

func (p *Platform) release(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.sessions, id)
}

// Session implements session.Session
type Session struct {
	id       string
	mode     session.Mode
	features []string
	platform *Platform

	once sync.Once
}

func (s *Session) ID() string                { return s.id }
func (s *Session) Mode() session.Mode        { return s.mode }
func (s *Session) EnabledFeatures() []string { return slices.Clone(s.features) }

// End releases the session. Later calls do nothing.
func (s *Session) End() error {
	s.once.Do(func() {
		s.platform.release(s.id)
		s.platform.logger.Debug("simulated session ended", "session", s.id)
	})
	return nil
}
