package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/vrpong/internal/application/session"
)

type stubPlatform struct{}

func (stubPlatform) IsSessionSupported(context.Context, session.Mode) (bool, error) {
	return true, nil
}

func (stubPlatform) RequestSession(context.Context, session.Mode, session.Options) (session.Session, error) {
	return nil, session.ErrSessionDenied
}

func newPrompt(t *testing.T) (*Prompt, *session.Manager) {
	t.Helper()
	face, err := LoadFace(DefaultFontSize)
	require.NoError(t, err)

	m := session.NewManager(stubPlatform{}, nil)
	return New(m, face), m
}

func TestPrompt_Initial(t *testing.T) {
	p, _ := newPrompt(t)

	assert.Equal(t, LabelEnterVR, p.Label())
	assert.True(t, p.Enabled())
	assert.True(t, p.Visible())
}

func TestPrompt_ClickRunsHandlerInsideGesture(t *testing.T) {
	p, m := newPrompt(t)

	var (
		calls   int
		gesture *session.Gesture
		during  session.Result
	)
	p.OnReadyClicked(func(g *session.Gesture) {
		calls++
		gesture = g
		assert.Equal(t, LabelLoading, p.Label())
		assert.False(t, p.Enabled())
		during = <-m.RequestSession(context.Background(), g, session.ModeImmersiveVR, session.Options{})
	})

	p.Click()
	require.Equal(t, 1, calls)

	// the gesture was open while the handler ran
	assert.ErrorIs(t, during.Err, session.ErrSessionDenied)
	assert.NotErrorIs(t, during.Err, session.ErrNoUserGesture)

	// and is closed afterwards
	after := <-m.RequestSession(context.Background(), gesture, session.ModeImmersiveVR, session.Options{})
	assert.ErrorIs(t, after.Err, session.ErrNoUserGesture)
}

func TestPrompt_DisabledIgnoresClicks(t *testing.T) {
	p, _ := newPrompt(t)
	calls := 0
	p.OnReadyClicked(func(*session.Gesture) { calls++ })

	p.Click()
	p.Click()
	assert.Equal(t, 1, calls)

	p.SetLoaded()
	assert.Equal(t, LabelEnterVR, p.Label())
	assert.True(t, p.Enabled())

	p.Click()
	assert.Equal(t, 2, calls)
}

func TestPrompt_Unsupported(t *testing.T) {
	p, _ := newPrompt(t)
	calls := 0
	p.OnReadyClicked(func(*session.Gesture) { calls++ })

	p.SetUnsupported()
	p.Click()

	assert.Zero(t, calls)
	assert.Equal(t, LabelUnsupported, p.Label())
	assert.False(t, p.Enabled())
}

func TestPrompt_HiddenIgnoresClicks(t *testing.T) {
	p, _ := newPrompt(t)
	calls := 0
	p.OnReadyClicked(func(*session.Gesture) { calls++ })

	p.SetVisible(false)
	p.Click()
	assert.Zero(t, calls)
	assert.NoError(t, p.Update())

	p.SetVisible(true)
	p.Click()
	assert.Equal(t, 1, calls)
}

func TestPrompt_ClickWithoutHandler(t *testing.T) {
	p, _ := newPrompt(t)

	assert.NotPanics(t, p.Click)
	assert.Equal(t, LabelLoading, p.Label())
}
