package entity

// Direction is the vertical travel direction of a paddle
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

// Sign returns +1 for up and -1 for down
func (d Direction) Sign() float64 {
	if d == DirectionDown {
		return -1
	}
	return 1
}

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	if d == DirectionUp {
		return DirectionDown
	}
	return DirectionUp
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Paddle is a paddle bouncing between the top and bottom of the arena.
// Position is the vertical offset from the arena center.
type Paddle struct {
	X         float64 // horizontal offset from the arena center (fixed)
	Position  float64
	Direction Direction
	Velocity  float64 // units per second, always positive
	HalfRange float64 // reflection bound, see Arena.HalfRange
}

// NewPaddle creates a vertically centered paddle
func NewPaddle(x float64, dir Direction, velocity, halfRange float64) *Paddle {
	return &Paddle{
		X:         x,
		Direction: dir,
		Velocity:  velocity,
		HalfRange: halfRange,
	}
}

// Step advances the paddle by dt seconds.
//
// The direction is decided before moving: a paddle sitting on a bound
// reverses this frame, a paddle that only reaches the bound this frame
// stops on it and reverses on the next one. Clamping never flips.
func (p *Paddle) Step(dt float64) {
	switch {
	case p.Direction == DirectionUp && p.Position >= p.HalfRange:
		p.Direction = DirectionDown
	case p.Direction == DirectionDown && p.Position <= -p.HalfRange:
		p.Direction = DirectionUp
	}

	p.Position += p.Velocity * dt * p.Direction.Sign()
	p.Position = clamp(p.Position, -p.HalfRange, p.HalfRange)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
