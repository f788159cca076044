// Package render is the rendering service: it owns the ebiten host loop,
// projects scene content through a camera, and switches between a flat
// view and side-by-side stereo when an immersive session is attached.
package render

import (
	"image/color"
	"sync"
)

// Vec3 is a point or extent in world space (meters, Y up, -Z forward)
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// MeshKind selects how a mesh is drawn
type MeshKind int

const (
	// MeshBox is drawn as its camera-facing side
	MeshBox MeshKind = iota
	// MeshPlane is a horizontal quad (floors)
	MeshPlane
)

// Mesh is a single drawable primitive. Scenes keep the pointer and move
// it between frames.
type Mesh struct {
	Name     string
	Kind     MeshKind
	Position Vec3 // center
	Size     Vec3
	Color    color.RGBA
	Visible  bool
}

// Label is debug text anchored at a world position
type Label struct {
	Name     string
	Position Vec3
	Text     string
}

// Content is the renderable handle a scene hands to the renderer.
// Dispose may run on another goroutine than the one drawing it.
type Content struct {
	Background color.RGBA

	mu       sync.RWMutex
	meshes   []*Mesh
	labels   []*Label
	disposed bool
}

// NewContent creates empty content with the given background
func NewContent(bg color.RGBA) *Content {
	return &Content{Background: bg}
}

// AddMesh adds a visible mesh and returns it
func (c *Content) AddMesh(m Mesh) *Mesh {
	m.Visible = true
	mesh := &m
	c.mu.Lock()
	c.meshes = append(c.meshes, mesh)
	c.mu.Unlock()
	return mesh
}

// AddLabel adds a label and returns it
func (c *Content) AddLabel(l Label) *Label {
	label := &l
	c.mu.Lock()
	c.labels = append(c.labels, label)
	c.mu.Unlock()
	return label
}

// Meshes returns a copy of the mesh list in insertion order
func (c *Content) Meshes() []*Mesh {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*Mesh(nil), c.meshes...)
}

// Labels returns a copy of the label list in insertion order
func (c *Content) Labels() []*Label {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*Label(nil), c.labels...)
}

// Mesh looks a mesh up by name
func (c *Content) Mesh(name string) (*Mesh, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.meshes {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Dispose releases everything the content holds. The renderer skips
// disposed content.
func (c *Content) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.meshes = nil
	c.labels = nil
	c.disposed = true
}

// Disposed reports whether Dispose was called
func (c *Content) Disposed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.disposed
}
