package config

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	Window WindowConfig `json:"window"`
	Camera CameraConfig `json:"camera"`
	Stereo StereoConfig `json:"stereo"`
}

type WindowConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Framerate    int    `json:"framerate"`
	Resizable    bool   `json:"resizable"`
}

type CameraConfig struct {
	FOV      float64    `json:"fov"` // vertical, degrees
	Near     float64    `json:"near"`
	Far      float64    `json:"far"`
	Position Vec3Config `json:"position"`
}

type StereoConfig struct {
	EyeSeparation float64 `json:"eyeSeparation"` // meters
}

type Vec3Config struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// RulesConfig is the root config for game.json
type RulesConfig struct {
	MaxScore int           `json:"maxScore"`
	Session  SessionConfig `json:"session"`
}

type SessionConfig struct {
	Mode             string   `json:"mode"`
	OptionalFeatures []string `json:"optionalFeatures"`
}

// DemoConfig is the root config for demo.json
type DemoConfig struct {
	Arena  ArenaConfig  `json:"arena"`
	Paddle PaddleConfig `json:"paddle"`
	Colors ColorsConfig `json:"colors"`
}

type ArenaConfig struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Center Vec3Config `json:"center"` // world position of the arena center
}

type PaddleConfig struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Depth    float64 `json:"depth"`
	Velocity float64 `json:"velocity"` // units per second
	OffsetX  float64 `json:"offsetX"`  // distance of each paddle from the center
}

// ColorsConfig holds hex colors ("#rrggbb")
type ColorsConfig struct {
	Background string `json:"background"`
	Floor      string `json:"floor"`
	Player     string `json:"player"`
	Enemy      string `json:"enemy"`
	Arena      string `json:"arena"`
}
