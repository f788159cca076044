package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the process environment.
// They tune the host side (logging, simulated headset) and never the game rules.
type Env struct {
	LogLevel string `env:"VRPONG_LOG_LEVEL" envDefault:"info"`

	// Simulated XR platform
	XRSupported bool          `env:"VRPONG_XR_SUPPORTED" envDefault:"true"`
	XRDeny      bool          `env:"VRPONG_XR_DENY" envDefault:"false"`
	XRLatency   time.Duration `env:"VRPONG_XR_LATENCY" envDefault:"300ms"`
	XRFeatures  []string      `env:"VRPONG_XR_FEATURES" envSeparator:"," envDefault:"local-floor,bounded-floor"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env from the environment
func LoadEnv() (*Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return nil, err
	}
	return &e, nil
}
