// Package session owns immersive-session acquisition.
//
// A session can only be requested while a user gesture is in progress:
// the interaction widget opens a Gesture in its click handler and the
// Manager rejects requests made outside of one.
package session

import (
	"context"
	"errors"
)

// Mode is the kind of session requested from the platform
type Mode string

const (
	ModeImmersiveVR Mode = "immersive-vr"
	ModeInline      Mode = "inline"
)

// Optional features understood by the platform layer
const (
	FeatureLocalFloor   = "local-floor"
	FeatureBoundedFloor = "bounded-floor"
	FeatureHandTracking = "hand-tracking"
)

var (
	// ErrUnsupportedCapability means the platform cannot provide the mode at all.
	ErrUnsupportedCapability = errors.New("immersive session not supported")
	// ErrSessionDenied means the user declined, the device is busy, or
	// the platform rejected the requested features. The user may retry.
	ErrSessionDenied = errors.New("session denied")
	// ErrNoUserGesture means the request was made outside a click handler.
	ErrNoUserGesture = errors.New("session request outside user gesture")
)

// Session is an opaque handle to a live immersive display session.
type Session interface {
	ID() string
	Mode() Mode
	EnabledFeatures() []string
	// End releases the session. Calling it more than once is a no-op.
	End() error
}

// Options are passed through to the platform on request
type Options struct {
	OptionalFeatures []string
}

// Platform is the capability/session service of the host device.
type Platform interface {
	IsSessionSupported(ctx context.Context, mode Mode) (bool, error)
	RequestSession(ctx context.Context, mode Mode, opts Options) (Session, error)
}

// Result is delivered once per RequestSession call
type Result struct {
	Session Session
	Err     error
}
