// Package game provides the orchestrator that owns the phase state, drives
// the frame loop and swaps the active scene when the phase changes.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/younwookim/vrpong/internal/application/scene"
	"github.com/younwookim/vrpong/internal/application/scene/demo"
	"github.com/younwookim/vrpong/internal/application/scene/menu"
	"github.com/younwookim/vrpong/internal/application/session"
	"github.com/younwookim/vrpong/internal/application/state"
	"github.com/younwookim/vrpong/internal/infrastructure/config"
	"github.com/younwookim/vrpong/internal/infrastructure/logging"
	"github.com/younwookim/vrpong/internal/infrastructure/render"
)

// ErrSetupFailure wraps anything that keeps Start from installing the loop.
var ErrSetupFailure = errors.New("game setup failed")

var errStopped = errors.New("stopped during setup")

// Renderer is the rendering service the game drives.
type Renderer interface {
	Render(content *render.Content, cam *render.Camera)
	// SetAnimationLoop installs the per-frame callback; nil removes it.
	SetAnimationLoop(fn func() error)
	// SetSession attaches a session for stereo output; nil detaches it.
	SetSession(s session.Session)
	SetSize(width, height int)
	OnResize(fn func(width, height int))
}

// RendererFactory acquires the renderer during Start.
type RendererFactory func(ctx context.Context, width, height int) (Renderer, error)

// Prompt is the interaction widget that lets the user enter VR.
type Prompt interface {
	// OnReadyClicked registers the click handler. The gesture is only
	// valid for the duration of the call.
	OnReadyClicked(fn func(g *session.Gesture))
	// SetLoaded re-enables the control after a session attempt.
	SetLoaded()
	SetUnsupported()
	SetVisible(visible bool)
}

// FrameRecorder observes every frame's delta and phase.
type FrameRecorder interface {
	RecordFrame(dt float64, phase state.GamePhase)
}

// SceneFactory builds the scene presenting a phase.
type SceneFactory func(phase state.GamePhase, r scene.Renderer, cam *render.Camera) scene.Scene

// DefaultScenes maps phases to the menu and demo scenes
func DefaultScenes(cfg *config.DemoConfig) SceneFactory {
	return func(phase state.GamePhase, r scene.Renderer, cam *render.Camera) scene.Scene {
		switch SceneFor(phase) {
		case SceneDemo:
			return demo.New(r, cam, cfg)
		default:
			title := menu.DefaultTitle
			if phase == state.PhaseUnsupported {
				title = menu.UnsupportedTitle
			}
			return menu.New(r, cam, cfg, title)
		}
	}
}

// Options configures a Game
type Options struct {
	NewRenderer RendererFactory
	Sessions    *session.Manager
	Prompt      Prompt
	Display     *config.DisplayConfig
	Rules       *config.RulesConfig
	Demo        *config.DemoConfig

	// Optional
	Scenes   SceneFactory
	Clock    Clock
	Recorder FrameRecorder
	Logger   *slog.Logger
}

// Game is the top-level driver. Start and Stop may be called from any
// goroutine; frames and prompt clicks arrive on the host's loop.
type Game struct {
	newRenderer RendererFactory
	sessions    *session.Manager
	prompt      Prompt
	display     *config.DisplayConfig
	rules       *config.RulesConfig
	scenes      SceneFactory
	clock       Clock
	recorder    FrameRecorder
	logger      *slog.Logger

	mu         sync.Mutex
	state      state.GameState
	scenePhase state.GamePhase
	current    scene.Scene
	renderer   Renderer
	camera     *render.Camera
	session    session.Session
	pending    <-chan session.Result
	ctx        context.Context
	cancel     context.CancelFunc
	started    bool
	running    bool
	stopped    bool
}

// New creates a game in the PromptForSession phase. Nothing is acquired
// until Start.
func New(opts Options) *Game {
	maxScore := state.DefaultMaxScore
	if opts.Rules != nil && opts.Rules.MaxScore > 0 {
		maxScore = opts.Rules.MaxScore
	}

	g := &Game{
		newRenderer: opts.NewRenderer,
		sessions:    opts.Sessions,
		prompt:      opts.Prompt,
		display:     opts.Display,
		rules:       opts.Rules,
		scenes:      opts.Scenes,
		clock:       opts.Clock,
		recorder:    opts.Recorder,
		logger:      opts.Logger,
		state:       state.New(maxScore),
	}
	if g.prompt == nil {
		g.prompt = nopPrompt{}
	}
	if g.scenes == nil && opts.Demo != nil {
		g.scenes = DefaultScenes(opts.Demo)
	}
	if g.clock == nil {
		g.clock = NewWallClock()
	}
	g.logger = logging.OrDiscard(g.logger)
	return g
}

// Start acquires the renderer and camera, checks VR support, wires the
// prompt and installs the frame loop. It never returns an error: a
// failure is logged and the game is stopped, so Running stays false.
func (g *Game) Start(ctx context.Context) {
	g.mu.Lock()
	if g.stopped || g.started {
		stopped := g.stopped
		g.mu.Unlock()
		g.logger.Warn("start ignored", "stopped", stopped)
		return
	}
	g.started = true
	g.ctx, g.cancel = context.WithCancel(ctx)
	ctx = g.ctx
	g.mu.Unlock()

	if err := g.setup(ctx); err != nil {
		if errors.Is(err, errStopped) {
			g.logger.Info("setup interrupted by stop")
			return
		}
		g.logger.Error("failed to start game", "err", err)
		g.Stop()
		return
	}
	g.logger.Info("game started", "phase", g.Phase())
}

func (g *Game) setup(ctx context.Context) error {
	if g.newRenderer == nil {
		return fmt.Errorf("%w: no renderer factory", ErrSetupFailure)
	}
	if g.display == nil || g.rules == nil {
		return fmt.Errorf("%w: missing configuration", ErrSetupFailure)
	}
	if g.sessions == nil {
		return fmt.Errorf("%w: no session manager", ErrSetupFailure)
	}
	if g.scenes == nil {
		return fmt.Errorf("%w: no scene factory or demo configuration", ErrSetupFailure)
	}

	w, h := g.display.Window.ScreenWidth, g.display.Window.ScreenHeight
	r, err := g.newRenderer(ctx, w, h)
	if err != nil {
		return fmt.Errorf("%w: renderer: %w", ErrSetupFailure, err)
	}
	if r == nil {
		return fmt.Errorf("%w: renderer factory returned nil", ErrSetupFailure)
	}

	cc := g.display.Camera
	cam := render.NewCamera(cc.FOV, float64(w)/float64(h), cc.Near, cc.Far,
		render.Vec3{X: cc.Position.X, Y: cc.Position.Y, Z: cc.Position.Z})

	g.mu.Lock()
	if g.stopped {
		g.mu.Unlock()
		return errStopped
	}
	g.renderer = r
	g.camera = cam
	g.mu.Unlock()

	mode := session.Mode(g.rules.Session.Mode)
	supported := g.sessions.IsSupported(ctx, mode)

	if err := ctx.Err(); err != nil {
		g.mu.Lock()
		stopped := g.stopped
		g.mu.Unlock()
		if stopped {
			return errStopped
		}
		return fmt.Errorf("%w: %w", ErrSetupFailure, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stopped {
		return errStopped
	}

	if supported {
		g.prompt.OnReadyClicked(g.handleReadyClicked)
		g.prompt.SetLoaded()
		g.prompt.SetVisible(true)
	} else {
		g.logger.Warn("immersive session not supported", "mode", mode, "err", session.ErrUnsupportedCapability)
		g.apply(TriggerUnsupported)
		g.prompt.SetUnsupported()
	}

	r.OnResize(g.HandleResize)
	r.SetAnimationLoop(g.frame)
	g.running = true
	return nil
}

// Stop ends any session, removes the frame loop and destroys the active
// scene. It is idempotent and safe before, during or after Start.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return
	}
	g.stopped = true
	g.running = false

	if g.cancel != nil {
		g.cancel()
	}
	if g.renderer != nil {
		g.renderer.SetAnimationLoop(nil)
		g.renderer.SetSession(nil)
	}
	if g.session != nil {
		g.sessions.EndSession(g.session)
		g.session = nil
	}
	if pending := g.pending; pending != nil {
		g.pending = nil
		go g.endLateGrant(pending)
	}
	if g.current != nil {
		g.current.Destroy()
		g.current = nil
	}

	g.logger.Info("game stopped")
}

// A request still in flight at Stop may be granted later.
func (g *Game) endLateGrant(pending <-chan session.Result) {
	for res := range pending {
		if res.Session != nil {
			g.logger.Info("ending session granted after stop", "session", res.Session.ID())
			g.sessions.EndSession(res.Session)
		}
	}
}

// Running reports whether the frame loop is installed
func (g *Game) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

// Phase returns the current phase
func (g *Game) Phase() state.GamePhase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Phase
}

// State returns a copy of the game state
func (g *Game) State() state.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Session returns the attached session, or nil
func (g *Game) Session() session.Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session
}

// HandleResize recomputes the camera aspect and the renderer size
func (g *Game) HandleResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.camera == nil || g.renderer == nil {
		return
	}
	g.camera.SetAspect(width, height)
	g.renderer.SetSize(width, height)
	g.logger.Debug("viewport resized", "width", width, "height", height)
}

// frame is the animation loop callback, called once per host frame.
func (g *Game) frame() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return nil
	}

	g.collectSession()

	dt := g.clock.Delta()
	if g.recorder != nil {
		g.recorder.RecordFrame(dt, g.state.Phase)
	}

	if g.current == nil || PhaseChanged(g.scenePhase, g.state.Phase) {
		if err := g.switchScene(g.state.Phase); err != nil {
			return err
		}
	}

	next := g.current.Update(dt, g.state)
	if err := next.Validate(); err != nil {
		g.logger.Error("scene returned invalid state", "scene", SceneFor(g.scenePhase), "err", err)
		return fmt.Errorf("update %s scene: %w", SceneFor(g.scenePhase), err)
	}
	g.state = next
	if g.state.ScoreReached() {
		g.apply(TriggerScoreReached)
	}

	return g.current.Render()
}

func (g *Game) switchScene(phase state.GamePhase) error {
	if g.current != nil {
		g.current.Destroy()
		g.current = nil
	}

	next := g.scenes(phase, g.renderer, g.camera)
	if err := next.Init(); err != nil {
		next.Destroy()
		return fmt.Errorf("init %s scene: %w", SceneFor(phase), err)
	}

	g.current = next
	g.scenePhase = phase
	g.logger.Debug("scene switched", "phase", phase, "scene", SceneFor(phase))
	return nil
}

// apply runs a trigger through the transition table. Callers hold mu.
func (g *Game) apply(t Trigger) bool {
	from := g.state.Phase
	to, ok := Transition(from, t)
	if !ok {
		return false
	}
	g.state = g.state.WithPhase(to)
	g.logger.Info("phase changed", "from", from, "to", to, "trigger", t)
	return true
}

// handleReadyClicked runs inside the prompt's click handler, so the
// gesture is still open when the request is made.
func (g *Game) handleReadyClicked(gesture *session.Gesture) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return
	}
	if g.state.Phase != state.PhasePromptForSession || g.pending != nil || g.session != nil {
		g.logger.Debug("session request ignored", "phase", g.state.Phase)
		g.prompt.SetLoaded()
		return
	}

	opts := session.Options{OptionalFeatures: g.rules.Session.OptionalFeatures}
	g.pending = g.sessions.RequestSession(g.ctx, gesture, session.Mode(g.rules.Session.Mode), opts)
}

// collectSession picks up a finished session request without blocking.
// Callers hold mu.
func (g *Game) collectSession() {
	if g.pending == nil {
		return
	}

	var (
		res session.Result
		ok  bool
	)
	select {
	case res, ok = <-g.pending:
	default:
		return
	}
	g.pending = nil
	defer g.prompt.SetLoaded()

	if !ok {
		return
	}
	if res.Err != nil {
		g.logger.Warn("session request failed", "err", res.Err)
		return
	}

	if !g.apply(TriggerSessionGranted) {
		g.logger.Warn("session granted outside prompt phase", "phase", g.state.Phase)
		g.sessions.EndSession(res.Session)
		return
	}
	g.session = res.Session
	g.renderer.SetSession(res.Session)
	g.prompt.SetVisible(false)
}

type nopPrompt struct{}

func (nopPrompt) OnReadyClicked(func(*session.Gesture)) {}
func (nopPrompt) SetLoaded()                            {}
func (nopPrompt) SetUnsupported()                       {}
func (nopPrompt) SetVisible(bool)                       {}
