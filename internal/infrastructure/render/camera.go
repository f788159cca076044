package render

import "math"

// Camera is a perspective camera looking straight down -Z.
type Camera struct {
	FOV      float64 // vertical field of view in degrees
	Aspect   float64
	Near     float64
	Far      float64
	Position Vec3

	focal float64 // 1/tan(fov/2), refreshed by UpdateProjection
}

// NewCamera creates a camera and computes its projection
func NewCamera(fov, aspect, near, far float64, pos Vec3) *Camera {
	c := &Camera{
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
		Position: pos,
	}
	c.UpdateProjection()
	return c
}

// UpdateProjection must be called after FOV or Aspect change.
func (c *Camera) UpdateProjection() {
	c.focal = 1 / math.Tan(c.FOV*math.Pi/360)
}

// SetAspect updates the aspect ratio from a viewport size
func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
	c.UpdateProjection()
}

// ForEye returns a copy shifted sideways for one eye of a stereo pair,
// sized for a viewport of the given dimensions.
func (c *Camera) ForEye(offsetX float64, width, height int) *Camera {
	eye := *c
	eye.Position.X += offsetX
	eye.SetAspect(width, height)
	return &eye
}

// Project maps a world point onto a viewport of w x h pixels.
// ok is false when the point is outside the near/far range.
func (c *Camera) Project(p Vec3, w, h float64) (x, y, depth float64, ok bool) {
	rel := p.Sub(c.Position)
	depth = -rel.Z
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}

	ndcX := rel.X * c.focal / (c.Aspect * depth)
	ndcY := rel.Y * c.focal / depth

	x = (ndcX + 1) / 2 * w
	y = (1 - ndcY) / 2 * h
	return x, y, depth, true
}

// ScreenSize converts a world-space length at depth to pixels
func (c *Camera) ScreenSize(length, depth, h float64) float64 {
	if depth <= 0 {
		return 0
	}
	return length * c.focal / depth * h / 2
}
