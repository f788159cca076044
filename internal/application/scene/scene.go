// Package scene defines the Scene contract for the phase-bound screens.
//
// Each phase of the game (prompt, playing, unsupported, ...) is presented
// by one Scene. The orchestrator builds a fresh Scene whenever the phase
// changes and destroys the previous one, so a Scene never carries state
// across a destroy/recreate cycle.
package scene

import (
	"errors"

	"github.com/younwookim/vrpong/internal/application/state"
	"github.com/younwookim/vrpong/internal/infrastructure/render"
)

var (
	ErrNotInitialized     = errors.New("scene not initialized")
	ErrAlreadyInitialized = errors.New("scene already initialized")
)

// Renderer is the part of the rendering service a scene draws through.
type Renderer interface {
	Render(content *render.Content, cam *render.Camera)
}

// Scene is a self-contained simulation and presentation unit.
//
// Init must be called exactly once before Update or Render.
type Scene interface {
	// Init builds the scene's content.
	Init() error

	// Update advances the scene by dt seconds and returns the (possibly
	// modified) game state.
	Update(dt float64, gs state.GameState) state.GameState

	// Render submits the scene's content to the renderer.
	Render() error

	// Destroy releases the scene's content. Safe to call more than once.
	Destroy()
}

// Stage holds what every scene owns: its content, and the renderer and
// camera it draws with. Scenes embed it.
type Stage struct {
	renderer Renderer
	camera   *render.Camera
	content  *render.Content
}

// NewStage creates a stage that draws through r with cam
func NewStage(r Renderer, cam *render.Camera) Stage {
	return Stage{renderer: r, camera: cam}
}

// Mount installs the content built by Init. A second mount fails.
func (s *Stage) Mount(c *render.Content) error {
	if s.content != nil {
		return ErrAlreadyInitialized
	}
	s.content = c
	return nil
}

// Content returns the mounted content, nil before Init or after Destroy
func (s *Stage) Content() *render.Content {
	return s.content
}

// Initialized reports whether content is mounted
func (s *Stage) Initialized() bool {
	return s.content != nil
}

// Render implements Scene
func (s *Stage) Render() error {
	if s.content == nil {
		return ErrNotInitialized
	}
	s.renderer.Render(s.content, s.camera)
	return nil
}

// Destroy implements Scene
func (s *Stage) Destroy() {
	if s.content == nil {
		return
	}
	s.content.Dispose()
	s.content = nil
}
