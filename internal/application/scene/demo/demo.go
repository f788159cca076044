// Package demo is the Pong demo scene: two paddles bouncing between the
// top and bottom of the arena.
package demo

import (
	"fmt"
	"image/color"

	"github.com/younwookim/vrpong/internal/application/scene"
	"github.com/younwookim/vrpong/internal/application/state"
	"github.com/younwookim/vrpong/internal/domain/entity"
	"github.com/younwookim/vrpong/internal/infrastructure/config"
	"github.com/younwookim/vrpong/internal/infrastructure/render"
)

const floorSize = 6.0

// Scene runs the paddle simulation.
type Scene struct {
	scene.Stage

	cfg    *config.DemoConfig
	center render.Vec3

	player *entity.Paddle
	enemy  *entity.Paddle

	playerMesh *render.Mesh
	enemyMesh  *render.Mesh
}

// New creates the demo scene. Nothing is built until Init.
func New(r scene.Renderer, cam *render.Camera, cfg *config.DemoConfig) *Scene {
	return &Scene{
		Stage:  scene.NewStage(r, cam),
		cfg:    cfg,
		center: render.Vec3{X: cfg.Arena.Center.X, Y: cfg.Arena.Center.Y, Z: cfg.Arena.Center.Z},
	}
}

// Init implements scene.Scene. Both paddles start vertically centered at
// symmetric horizontal offsets, the player moving up and the enemy down.
func (s *Scene) Init() error {
	if s.Initialized() {
		return scene.ErrAlreadyInitialized
	}

	colors, err := parseColors(s.cfg.Colors)
	if err != nil {
		return err
	}

	arena := entity.Arena{
		Width:        s.cfg.Arena.Width,
		Height:       s.cfg.Arena.Height,
		PaddleHeight: s.cfg.Paddle.Height,
	}
	half := arena.HalfRange()
	p := s.cfg.Paddle

	s.player = entity.NewPaddle(-p.OffsetX, entity.DirectionUp, p.Velocity, half)
	s.enemy = entity.NewPaddle(p.OffsetX, entity.DirectionDown, p.Velocity, half)

	content := render.NewContent(colors.background)
	content.AddMesh(render.Mesh{
		Name:     "floor",
		Kind:     render.MeshPlane,
		Position: render.Vec3{X: s.center.X, Z: s.center.Z},
		Size:     render.Vec3{X: floorSize, Z: floorSize},
		Color:    colors.floor,
	})
	// Thin backdrop behind the paddles
	content.AddMesh(render.Mesh{
		Name:     "arena",
		Kind:     render.MeshBox,
		Position: s.center.Sub(render.Vec3{Z: p.Depth}),
		Size:     render.Vec3{X: arena.Width, Y: arena.Height, Z: 0.01},
		Color:    colors.arena,
	})

	paddleSize := render.Vec3{X: p.Width, Y: p.Height, Z: p.Depth}
	s.playerMesh = content.AddMesh(render.Mesh{
		Name:     "player",
		Kind:     render.MeshBox,
		Position: s.paddlePosition(s.player),
		Size:     paddleSize,
		Color:    colors.player,
	})
	s.enemyMesh = content.AddMesh(render.Mesh{
		Name:     "enemy",
		Kind:     render.MeshBox,
		Position: s.paddlePosition(s.enemy),
		Size:     paddleSize,
		Color:    colors.enemy,
	})

	return s.Mount(content)
}

// Update implements scene.Scene. Scoring is not part of the demo, so the
// state comes back unchanged.
func (s *Scene) Update(dt float64, gs state.GameState) state.GameState {
	if !s.Initialized() {
		return gs
	}

	s.player.Step(dt)
	s.enemy.Step(dt)

	s.playerMesh.Position = s.paddlePosition(s.player)
	s.enemyMesh.Position = s.paddlePosition(s.enemy)

	return gs
}

// Destroy implements scene.Scene
func (s *Scene) Destroy() {
	s.Stage.Destroy()
	s.player, s.enemy = nil, nil
	s.playerMesh, s.enemyMesh = nil, nil
}

// Paddles returns the player and enemy paddles, nil before Init
func (s *Scene) Paddles() (player, enemy *entity.Paddle) {
	return s.player, s.enemy
}

func (s *Scene) paddlePosition(p *entity.Paddle) render.Vec3 {
	return s.center.Add(render.Vec3{X: p.X, Y: p.Position})
}

type palette struct {
	background, floor, arena, player, enemy color.RGBA
}

func parseColors(c config.ColorsConfig) (palette, error) {
	var (
		pal palette
		err error
	)
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", c.Background, &pal.background},
		{"floor", c.Floor, &pal.floor},
		{"arena", c.Arena, &pal.arena},
		{"player", c.Player, &pal.player},
		{"enemy", c.Enemy, &pal.enemy},
	}
	for _, f := range fields {
		if *f.dst, err = config.ParseColor(f.hex); err != nil {
			return palette{}, fmt.Errorf("demo %s color: %w", f.name, err)
		}
	}
	return pal, nil
}
