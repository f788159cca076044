// Package menu is the idle scene shown while no game is running.
package menu

import (
	"fmt"

	"github.com/younwookim/vrpong/internal/application/scene"
	"github.com/younwookim/vrpong/internal/application/state"
	"github.com/younwookim/vrpong/internal/infrastructure/config"
	"github.com/younwookim/vrpong/internal/infrastructure/render"
)

const (
	DefaultTitle     = "VR Pong"
	UnsupportedTitle = "VR Pong - immersive VR not supported"
)

// floor extent in meters
const floorSize = 6.0

// Scene is a static passthrough: a floor, a background and a title.
type Scene struct {
	scene.Stage

	title  string
	colors config.ColorsConfig
	center render.Vec3
}

// New creates the menu scene. The arena center anchors the title.
func New(r scene.Renderer, cam *render.Camera, cfg *config.DemoConfig, title string) *Scene {
	if title == "" {
		title = DefaultTitle
	}
	return &Scene{
		Stage:  scene.NewStage(r, cam),
		title:  title,
		colors: cfg.Colors,
		center: render.Vec3{X: cfg.Arena.Center.X, Y: cfg.Arena.Center.Y, Z: cfg.Arena.Center.Z},
	}
}

// Title returns the text shown by the scene
func (s *Scene) Title() string {
	return s.title
}

// Init implements scene.Scene
func (s *Scene) Init() error {
	if s.Initialized() {
		return scene.ErrAlreadyInitialized
	}

	bg, err := config.ParseColor(s.colors.Background)
	if err != nil {
		return fmt.Errorf("menu background: %w", err)
	}
	floor, err := config.ParseColor(s.colors.Floor)
	if err != nil {
		return fmt.Errorf("menu floor: %w", err)
	}

	content := render.NewContent(bg)
	content.AddMesh(render.Mesh{
		Name:     "floor",
		Kind:     render.MeshPlane,
		Position: render.Vec3{X: s.center.X, Z: s.center.Z},
		Size:     render.Vec3{X: floorSize, Z: floorSize},
		Color:    floor,
	})
	content.AddLabel(render.Label{
		Name:     "title",
		Position: s.center,
		Text:     s.title,
	})
	return s.Mount(content)
}

// Update implements scene.Scene. The menu has no simulation.
func (s *Scene) Update(_ float64, gs state.GameState) state.GameState {
	return gs
}
