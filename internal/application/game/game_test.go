package game

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/vrpong/internal/application/scene"
	"github.com/younwookim/vrpong/internal/application/scene/demo"
	"github.com/younwookim/vrpong/internal/application/scene/menu"
	"github.com/younwookim/vrpong/internal/application/session"
	"github.com/younwookim/vrpong/internal/application/state"
	"github.com/younwookim/vrpong/internal/infrastructure/config"
	"github.com/younwookim/vrpong/internal/infrastructure/render"
)

// mockScene is a test double for scene.Scene
type mockScene struct {
	phase         state.GamePhase
	initCalled    int
	updateCalled  int
	renderCalled  int
	destroyCalled int
	initErr       error
	renderErr     error
	update        func(gs state.GameState) state.GameState
}

func (m *mockScene) Init() error {
	m.initCalled++
	return m.initErr
}

func (m *mockScene) Update(dt float64, gs state.GameState) state.GameState {
	m.updateCalled++
	if m.update != nil {
		return m.update(gs)
	}
	return gs
}

func (m *mockScene) Render() error {
	m.renderCalled++
	return m.renderErr
}

func (m *mockScene) Destroy() {
	m.destroyCalled++
}

// sceneLog records every scene the game asks for
type sceneLog struct {
	scenes  []*mockScene
	prepare func(*mockScene)
}

func (l *sceneLog) factory(phase state.GamePhase, _ scene.Renderer, _ *render.Camera) scene.Scene {
	s := &mockScene{phase: phase}
	if l.prepare != nil {
		l.prepare(s)
	}
	l.scenes = append(l.scenes, s)
	return s
}

func (l *sceneLog) last() *mockScene {
	if len(l.scenes) == 0 {
		return nil
	}
	return l.scenes[len(l.scenes)-1]
}

type stubRenderer struct {
	mu       sync.Mutex
	loop     func() error
	session  session.Session
	width    int
	height   int
	onResize func(w, h int)
	renders  int
}

func (r *stubRenderer) Render(*render.Content, *render.Camera) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renders++
}

func (r *stubRenderer) SetAnimationLoop(fn func() error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loop = fn
}

func (r *stubRenderer) SetSession(s session.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = s
}

func (r *stubRenderer) SetSize(w, h int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = w, h
}

func (r *stubRenderer) OnResize(fn func(w, h int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onResize = fn
}

func (r *stubRenderer) installed() func() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loop
}

func (r *stubRenderer) attached() session.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}

// tick runs one host frame; false when no loop is installed
func (r *stubRenderer) tick() (bool, error) {
	loop := r.installed()
	if loop == nil {
		return false, nil
	}
	return true, loop()
}

type stubPrompt struct {
	mu          sync.Mutex
	handler     func(*session.Gesture)
	loaded      int
	unsupported int
	visible     bool
}

func (p *stubPrompt) OnReadyClicked(fn func(*session.Gesture)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handler = fn
}

func (p *stubPrompt) SetLoaded() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loaded++
}

func (p *stubPrompt) SetUnsupported() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unsupported++
}

func (p *stubPrompt) SetVisible(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = v
}

// click behaves like the real widget: the gesture is open only while the
// handler runs.
func (p *stubPrompt) click(m *session.Manager) {
	p.mu.Lock()
	h := p.handler
	p.mu.Unlock()
	if h == nil {
		return
	}
	g := m.BeginGesture()
	defer g.End()
	h(g)
}

func (p *stubPrompt) loadedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

type stubSession struct {
	mu    sync.Mutex
	ended int
}

func (s *stubSession) ID() string                { return "stub-session" }
func (s *stubSession) Mode() session.Mode        { return session.ModeImmersiveVR }
func (s *stubSession) EnabledFeatures() []string { return nil }
func (s *stubSession) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ended++
	return nil
}

func (s *stubSession) endCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}

type stubPlatform struct {
	supported    bool
	requestErr   error
	supportGate  chan struct{} // IsSessionSupported blocks until closed
	requestGate  chan struct{} // RequestSession blocks until closed
	supportEnter chan struct{}

	mu       sync.Mutex
	requests int
	sessions []*stubSession
}

func (p *stubPlatform) IsSessionSupported(ctx context.Context, _ session.Mode) (bool, error) {
	if p.supportEnter != nil {
		close(p.supportEnter)
	}
	if p.supportGate != nil {
		<-p.supportGate
	}
	return p.supported, nil
}

func (p *stubPlatform) RequestSession(ctx context.Context, _ session.Mode, _ session.Options) (session.Session, error) {
	p.mu.Lock()
	p.requests++
	p.mu.Unlock()

	if p.requestGate != nil {
		<-p.requestGate
	}
	if p.requestErr != nil {
		return nil, p.requestErr
	}

	s := &stubSession{}
	p.mu.Lock()
	p.sessions = append(p.sessions, s)
	p.mu.Unlock()
	return s, nil
}

func (p *stubPlatform) requestCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests
}

func (p *stubPlatform) lastSession() *stubSession {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.sessions) == 0 {
		return nil
	}
	return p.sessions[len(p.sessions)-1]
}

type fixture struct {
	game     *Game
	renderer *stubRenderer
	prompt   *stubPrompt
	platform *stubPlatform
	sessions *session.Manager
	scenes   *sceneLog
	logs     *bytes.Buffer
	factored int
}

func newFixture(t *testing.T, platform *stubPlatform) *fixture {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f := &fixture{
		renderer: &stubRenderer{},
		prompt:   &stubPrompt{},
		platform: platform,
		scenes:   &sceneLog{},
		logs:     logs,
	}
	f.sessions = session.NewManager(platform, logger)
	f.game = New(Options{
		NewRenderer: func(context.Context, int, int) (Renderer, error) {
			f.factored++
			return f.renderer, nil
		},
		Sessions: f.sessions,
		Prompt:   f.prompt,
		Display: &config.DisplayConfig{
			Window: config.WindowConfig{ScreenWidth: 960, ScreenHeight: 540},
			Camera: config.CameraConfig{FOV: 50, Near: 0.1, Far: 10, Position: config.Vec3Config{Y: 1.6, Z: 3}},
		},
		Rules: &config.RulesConfig{
			MaxScore: 5,
			Session:  config.SessionConfig{Mode: "immersive-vr", OptionalFeatures: []string{"local-floor"}},
		},
		Scenes: f.scenes.factory,
		Clock:  FixedClock(1.0 / 60),
		Logger: logger,
	})
	return f
}

// tickUntil runs frames until cond holds
func (f *fixture) tickUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not reached")
		}
		_, err := f.renderer.tick()
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}
}

func TestGame_StartInstallsLoop(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})

	f.game.Start(context.Background())
	require.True(t, f.game.Running())
	assert.Equal(t, 1, f.factored)
	assert.NotNil(t, f.renderer.installed())
	assert.NotNil(t, f.renderer.onResize)
	assert.Equal(t, state.PhasePromptForSession, f.game.Phase())
	assert.True(t, f.prompt.visible)

	ran, err := f.renderer.tick()
	require.True(t, ran)
	require.NoError(t, err)

	s := f.scenes.last()
	require.NotNil(t, s)
	assert.Equal(t, state.PhasePromptForSession, s.phase)
	assert.Equal(t, 1, s.initCalled)
	assert.Equal(t, 1, s.updateCalled)
	assert.Equal(t, 1, s.renderCalled)
}

func TestGame_FramesReuseSceneWhilePhaseIsStable(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})
	f.game.Start(context.Background())

	for i := 0; i < 5; i++ {
		_, err := f.renderer.tick()
		require.NoError(t, err)
	}

	require.Len(t, f.scenes.scenes, 1)
	s := f.scenes.last()
	assert.Equal(t, 1, s.initCalled)
	assert.Equal(t, 5, s.updateCalled)
	assert.Equal(t, 5, s.renderCalled)
}

func TestGame_StopBeforeStart(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})

	assert.NotPanics(t, f.game.Stop)
	f.game.Start(context.Background())

	assert.False(t, f.game.Running())
	assert.Zero(t, f.factored)
	assert.Nil(t, f.renderer.installed())
}

func TestGame_StopTwice(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})
	f.game.Start(context.Background())
	_, err := f.renderer.tick()
	require.NoError(t, err)

	f.game.Stop()
	s := f.scenes.last()
	assert.Equal(t, 1, s.destroyCalled)

	assert.NotPanics(t, f.game.Stop)
	assert.Equal(t, 1, s.destroyCalled)
	assert.False(t, f.game.Running())
	assert.Nil(t, f.renderer.installed())
}

func TestGame_StopDuringSetup(t *testing.T) {
	platform := &stubPlatform{
		supported:    true,
		supportGate:  make(chan struct{}),
		supportEnter: make(chan struct{}),
	}
	f := newFixture(t, platform)

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.game.Start(context.Background())
	}()

	<-platform.supportEnter
	f.game.Stop()
	close(platform.supportGate)
	<-done

	assert.False(t, f.game.Running())
	assert.Nil(t, f.renderer.installed())
	assert.Contains(t, f.logs.String(), "setup interrupted by stop")
}

func TestGame_Unsupported(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: false})

	f.game.Start(context.Background())
	require.True(t, f.game.Running())
	assert.Equal(t, state.PhaseUnsupported, f.game.Phase())
	assert.Equal(t, 1, f.prompt.unsupported)
	assert.Nil(t, f.prompt.handler)

	for i := 0; i < 3; i++ {
		_, err := f.renderer.tick()
		require.NoError(t, err)
	}
	f.prompt.click(f.sessions)

	assert.Zero(t, f.platform.requestCount())
	require.Len(t, f.scenes.scenes, 1)
	assert.Equal(t, state.PhaseUnsupported, f.scenes.last().phase)
}

func TestGame_SessionGranted(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})
	f.game.Start(context.Background())
	_, err := f.renderer.tick()
	require.NoError(t, err)
	loadedBefore := f.prompt.loadedCount()

	f.prompt.click(f.sessions)
	f.tickUntil(t, func() bool { return f.game.Phase() == state.PhasePlaying })

	assert.Equal(t, 1, f.platform.requestCount())
	require.NotNil(t, f.game.Session())
	assert.Same(t, f.game.Session(), f.renderer.attached())
	assert.False(t, f.prompt.visible)
	assert.Equal(t, loadedBefore+1, f.prompt.loadedCount())

	_, err = f.renderer.tick()
	require.NoError(t, err)

	require.Len(t, f.scenes.scenes, 2)
	first, second := f.scenes.scenes[0], f.scenes.scenes[1]
	assert.Equal(t, 1, first.destroyCalled)
	assert.Equal(t, state.PhasePlaying, second.phase)
	assert.Equal(t, 1, second.initCalled)
	assert.Equal(t, SceneDemo, SceneFor(second.phase))
}

func TestGame_SessionDenied(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true, requestErr: errors.New("user declined")})
	f.game.Start(context.Background())
	loadedBefore := f.prompt.loadedCount()

	f.prompt.click(f.sessions)
	f.tickUntil(t, func() bool { return f.prompt.loadedCount() > loadedBefore })

	assert.Equal(t, state.PhasePromptForSession, f.game.Phase())
	assert.Nil(t, f.game.Session())
	assert.Nil(t, f.renderer.attached())
	assert.Contains(t, f.logs.String(), "session request failed")

	// retry is allowed after a denial
	f.platform.requestErr = nil
	f.prompt.click(f.sessions)
	f.tickUntil(t, func() bool { return f.game.Phase() == state.PhasePlaying })
	assert.Equal(t, 2, f.platform.requestCount())
}

func TestGame_RequestWithoutGesture(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})
	f.game.Start(context.Background())
	loadedBefore := f.prompt.loadedCount()

	f.prompt.handler(nil)
	f.tickUntil(t, func() bool { return f.prompt.loadedCount() > loadedBefore })

	assert.Zero(t, f.platform.requestCount())
	assert.Equal(t, state.PhasePromptForSession, f.game.Phase())
}

func TestGame_StopEndsSession(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})
	f.game.Start(context.Background())

	f.prompt.click(f.sessions)
	f.tickUntil(t, func() bool { return f.game.Phase() == state.PhasePlaying })
	s := f.platform.lastSession()
	require.NotNil(t, s)

	f.game.Stop()

	assert.Equal(t, 1, s.endCount())
	assert.Nil(t, f.renderer.attached())
	assert.Nil(t, f.sessions.Active())
	assert.Nil(t, f.game.Session())
}

func TestGame_GrantAfterStopIsEnded(t *testing.T) {
	platform := &stubPlatform{supported: true, requestGate: make(chan struct{})}
	f := newFixture(t, platform)
	f.game.Start(context.Background())

	f.prompt.click(f.sessions)
	f.game.Stop()
	close(platform.requestGate)

	require.Eventually(t, func() bool {
		s := platform.lastSession()
		return s != nil && s.endCount() == 1
	}, 2*time.Second, time.Millisecond)
	assert.Nil(t, f.renderer.attached())
}

func TestGame_RendererFailure(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})
	f.game.newRenderer = func(context.Context, int, int) (Renderer, error) {
		return nil, errors.New("no gpu")
	}

	assert.NotPanics(t, func() { f.game.Start(context.Background()) })
	assert.False(t, f.game.Running())
	assert.Contains(t, f.logs.String(), "failed to start game")
	assert.Contains(t, f.logs.String(), "no gpu")

	// the failure already stopped the game
	assert.NotPanics(t, f.game.Stop)
}

func TestGame_SetupRejectsMissingConfig(t *testing.T) {
	g := New(Options{NewRenderer: func(context.Context, int, int) (Renderer, error) {
		return &stubRenderer{}, nil
	}})

	err := g.setup(context.Background())
	assert.ErrorIs(t, err, ErrSetupFailure)
}

func TestGame_MissingDemoConfigFailsStart(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})
	f.game = New(Options{
		NewRenderer: func(context.Context, int, int) (Renderer, error) { return f.renderer, nil },
		Sessions:    f.sessions,
		Prompt:      f.prompt,
		Display:     f.game.display,
		Rules:       f.game.rules,
		Logger:      f.game.logger,
	})

	assert.NotPanics(t, func() { f.game.Start(context.Background()) })
	assert.False(t, f.game.Running())
	assert.Nil(t, f.renderer.installed())
	assert.Contains(t, f.logs.String(), "no scene factory or demo configuration")
}

func TestGame_InvalidSceneStateIsRejected(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})
	f.scenes.prepare = func(s *mockScene) {
		s.update = func(gs state.GameState) state.GameState {
			gs.EnemyScore = -1
			return gs
		}
	}
	f.game.Start(context.Background())

	_, err := f.renderer.tick()
	assert.ErrorIs(t, err, state.ErrInvalidState)
	assert.Zero(t, f.game.State().EnemyScore, "the invalid state is not kept")
	assert.Zero(t, f.scenes.last().renderCalled)
	assert.Contains(t, f.logs.String(), "scene returned invalid state")
}

func TestGame_CanceledContext(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.game.Start(ctx)
	assert.False(t, f.game.Running())
	assert.Nil(t, f.renderer.installed())
}

func TestGame_SceneInitError(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})
	initErr := errors.New("broken content")
	f.scenes.prepare = func(s *mockScene) { s.initErr = initErr }
	f.game.Start(context.Background())

	_, err := f.renderer.tick()
	assert.ErrorIs(t, err, initErr)
	assert.Equal(t, 1, f.scenes.last().destroyCalled)
}

func TestGame_RenderErrorPropagates(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})
	renderErr := errors.New("lost context")
	f.scenes.prepare = func(s *mockScene) { s.renderErr = renderErr }
	f.game.Start(context.Background())

	_, err := f.renderer.tick()
	assert.ErrorIs(t, err, renderErr)
}

func TestGame_ScoreReachedEndsGame(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})
	f.scenes.prepare = func(s *mockScene) {
		if s.phase == state.PhasePlaying {
			s.update = func(gs state.GameState) state.GameState {
				gs.PlayerScore = gs.MaxScore
				return gs
			}
		}
	}
	f.game.Start(context.Background())

	f.prompt.click(f.sessions)
	f.tickUntil(t, func() bool { return f.game.Phase() == state.PhaseGameOver })
	require.Len(t, f.scenes.scenes, 2)
	assert.Equal(t, state.PhasePlaying, f.scenes.scenes[1].phase)

	_, err := f.renderer.tick()
	require.NoError(t, err)
	assert.Equal(t, state.PhaseGameOver, f.scenes.last().phase)
	assert.Equal(t, SceneMenu, SceneFor(f.scenes.last().phase))
}

func TestGame_HandleResize(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})

	// before Start there is nothing to resize
	assert.NotPanics(t, func() { f.game.HandleResize(800, 600) })

	f.game.Start(context.Background())
	f.renderer.onResize(1280, 640)

	assert.Equal(t, 1280, f.renderer.width)
	assert.Equal(t, 640, f.renderer.height)
	assert.InDelta(t, 2.0, f.game.camera.Aspect, 1e-9)

	f.game.HandleResize(0, 100)
	assert.InDelta(t, 2.0, f.game.camera.Aspect, 1e-9)
}

type frameLog struct {
	dts    []float64
	phases []state.GamePhase
}

func (l *frameLog) RecordFrame(dt float64, phase state.GamePhase) {
	l.dts = append(l.dts, dt)
	l.phases = append(l.phases, phase)
}

func TestGame_RecordsFrames(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})
	rec := &frameLog{}
	f.game.recorder = rec
	f.game.Start(context.Background())

	for i := 0; i < 3; i++ {
		_, err := f.renderer.tick()
		require.NoError(t, err)
	}

	assert.Equal(t, []float64{1.0 / 60, 1.0 / 60, 1.0 / 60}, rec.dts)
	assert.Equal(t, state.PhasePromptForSession, rec.phases[0])
}

func TestGame_NoFramesAfterStop(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})
	f.game.Start(context.Background())
	loop := f.renderer.installed()
	require.NotNil(t, loop)

	_, err := f.renderer.tick()
	require.NoError(t, err)
	f.game.Stop()

	// a stale reference to the loop does nothing
	require.NoError(t, loop())
	require.Len(t, f.scenes.scenes, 1)
	assert.Equal(t, 1, f.scenes.last().updateCalled)
}

func loadDemoConfig(t *testing.T) *config.DemoConfig {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadDemo()
	require.NoError(t, err)
	return cfg
}

func TestDefaultScenes(t *testing.T) {
	factory := DefaultScenes(loadDemoConfig(t))
	cam := render.NewCamera(50, 16.0/9, 0.1, 10, render.Vec3{Y: 1.6, Z: 3})

	tests := []struct {
		phase state.GamePhase
		demo  bool
		title string
	}{
		{phase: state.PhasePromptForSession, title: menu.DefaultTitle},
		{phase: state.PhaseUnsupported, title: menu.UnsupportedTitle},
		{phase: state.PhasePlaying, demo: true},
		{phase: state.PhaseGameOver, title: menu.DefaultTitle},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			s := factory(tt.phase, &stubRenderer{}, cam)
			if tt.demo {
				_, ok := s.(*demo.Scene)
				assert.True(t, ok, "got %T", s)
				return
			}
			m, ok := s.(*menu.Scene)
			require.True(t, ok, "got %T", s)
			assert.Equal(t, tt.title, m.Title())
		})
	}
}

func TestDefaultScenes_DemoStartsFresh(t *testing.T) {
	factory := DefaultScenes(loadDemoConfig(t))
	cam := render.NewCamera(50, 16.0/9, 0.1, 10, render.Vec3{Y: 1.6, Z: 3})

	first, ok := factory(state.PhasePlaying, &stubRenderer{}, cam).(*demo.Scene)
	require.True(t, ok)
	require.NoError(t, first.Init())
	for i := 0; i < 30; i++ {
		first.Update(1.0/60, state.New(5).WithPhase(state.PhasePlaying))
	}
	player, _ := first.Paddles()
	assert.Greater(t, player.Position, 0.0)
	first.Destroy()

	second, ok := factory(state.PhasePlaying, &stubRenderer{}, cam).(*demo.Scene)
	require.True(t, ok)
	require.NoError(t, second.Init())
	player, enemy := second.Paddles()
	assert.Zero(t, player.Position)
	assert.Zero(t, enemy.Position)
}

func TestGame_DefaultScenesFollowPhase(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: true})
	f.game.scenes = DefaultScenes(loadDemoConfig(t))
	f.game.Start(context.Background())

	_, err := f.renderer.tick()
	require.NoError(t, err)
	m, ok := f.game.current.(*menu.Scene)
	require.True(t, ok, "got %T", f.game.current)
	assert.Equal(t, menu.DefaultTitle, m.Title())

	f.prompt.click(f.sessions)
	f.tickUntil(t, func() bool { return f.game.Phase() == state.PhasePlaying })
	for i := 0; i < 10; i++ {
		_, err := f.renderer.tick()
		require.NoError(t, err)
	}

	d, ok := f.game.current.(*demo.Scene)
	require.True(t, ok, "got %T", f.game.current)
	player, enemy := d.Paddles()
	assert.Greater(t, player.Position, 0.0)
	assert.Less(t, enemy.Position, 0.0)
	assert.Nil(t, m.Content(), "menu content is released on the switch")
}

func TestGame_DefaultScenesUnsupported(t *testing.T) {
	f := newFixture(t, &stubPlatform{supported: false})
	f.game.scenes = DefaultScenes(loadDemoConfig(t))
	f.game.Start(context.Background())

	_, err := f.renderer.tick()
	require.NoError(t, err)
	m, ok := f.game.current.(*menu.Scene)
	require.True(t, ok, "got %T", f.game.current)
	assert.Equal(t, menu.UnsupportedTitle, m.Title())
}

func TestNew_NilLoggerIsSilent(t *testing.T) {
	g := New(Options{})
	require.NotNil(t, g.logger)
	assert.False(t, g.logger.Enabled(context.Background(), slog.LevelError))
}
