package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display *DisplayConfig
	Rules   *RulesConfig
	Demo    *DemoConfig
}

var ErrInvalidConfig = errors.New("invalid config")

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

func (l *Loader) load(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	var cfg DisplayConfig
	if err := l.load("display.json", &cfg); err != nil {
		return nil, err
	}
	if cfg.Window.ScreenWidth <= 0 || cfg.Window.ScreenHeight <= 0 {
		return nil, fmt.Errorf("%w: display.json: screen size %dx%d", ErrInvalidConfig, cfg.Window.ScreenWidth, cfg.Window.ScreenHeight)
	}
	if cfg.Camera.FOV <= 0 || cfg.Camera.FOV >= 180 {
		return nil, fmt.Errorf("%w: display.json: fov %v", ErrInvalidConfig, cfg.Camera.FOV)
	}
	if cfg.Camera.Near <= 0 || cfg.Camera.Far <= cfg.Camera.Near {
		return nil, fmt.Errorf("%w: display.json: near/far %v/%v", ErrInvalidConfig, cfg.Camera.Near, cfg.Camera.Far)
	}
	return &cfg, nil
}

// LoadRules loads game.json
func (l *Loader) LoadRules() (*RulesConfig, error) {
	var cfg RulesConfig
	if err := l.load("game.json", &cfg); err != nil {
		return nil, err
	}
	if cfg.MaxScore <= 0 {
		return nil, fmt.Errorf("%w: game.json: maxScore must be positive", ErrInvalidConfig)
	}
	if cfg.Session.Mode == "" {
		return nil, fmt.Errorf("%w: game.json: session mode is empty", ErrInvalidConfig)
	}
	return &cfg, nil
}

// LoadDemo loads demo.json
func (l *Loader) LoadDemo() (*DemoConfig, error) {
	var cfg DemoConfig
	if err := l.load("demo.json", &cfg); err != nil {
		return nil, err
	}
	if cfg.Arena.Height <= 0 || cfg.Paddle.Height <= 0 {
		return nil, fmt.Errorf("%w: demo.json: arena and paddle height must be positive", ErrInvalidConfig)
	}
	if cfg.Paddle.Velocity <= 0 {
		return nil, fmt.Errorf("%w: demo.json: paddle velocity must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}

// LoadAll loads display, rules and demo configurations
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	rules, err := l.LoadRules()
	if err != nil {
		return nil, err
	}

	demo, err := l.LoadDemo()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display: display,
		Rules:   rules,
		Demo:    demo,
	}, nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". An empty string is opaque black.
func ParseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{A: 0xff}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: color %q: %w", ErrInvalidConfig, s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
