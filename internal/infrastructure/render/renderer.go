package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/vrpong/internal/application/session"
)

// DefaultEyeSeparation is the interpupillary distance used for stereo (meters)
const DefaultEyeSeparation = 0.064

var ErrInvalidSize = errors.New("invalid render size")

// Overlay is flat UI drawn on top of the 3D view (the session prompt).
// Overlays are updated before the frame loop runs so that input handlers
// fire inside the host's interaction callback.
type Overlay interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Options configures a Renderer
type Options struct {
	Width         int
	Height        int
	EyeSeparation float64
}

// Renderer implements ebiten.Game. ebiten is the host scheduler: each tick
// it calls Update, which runs the installed animation loop, and then Draw,
// which paints whatever the loop submitted through Render.
type Renderer struct {
	mu            sync.Mutex
	width         int
	height        int
	eyeSeparation float64
	loop          func() error
	session       session.Session
	content       *Content
	camera        *Camera
	overlays      []Overlay
	onResize      func(width, height int)
	closed        bool
	frames        uint64

	white *ebiten.Image
}

// New creates a renderer. It fails when the viewport size is unusable.
func New(opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	sep := opts.EyeSeparation
	if sep <= 0 {
		sep = DefaultEyeSeparation
	}
	return &Renderer{
		width:         opts.Width,
		height:        opts.Height,
		eyeSeparation: sep,
	}, nil
}

// SetAnimationLoop installs the per-frame callback. nil removes it; no
// further frames run after it returns.
func (r *Renderer) SetAnimationLoop(fn func() error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loop = fn
}

// SetSession attaches an immersive session (stereo output) or detaches it
// with nil (single flat view).
func (r *Renderer) SetSession(s session.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = s
}

// Stereo reports whether a session is attached
func (r *Renderer) Stereo() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session != nil
}

// SetSize sets the logical viewport size
func (r *Renderer) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width = width
	r.height = height
}

// Size returns the logical viewport size
func (r *Renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// OnResize registers the viewport resize handler
func (r *Renderer) OnResize(fn func(width, height int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onResize = fn
}

// AddOverlay appends a flat UI layer
func (r *Renderer) AddOverlay(o Overlay) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overlays = append(r.overlays, o)
}

// Render submits content to be drawn this frame with a snapshot of cam.
func (r *Renderer) Render(content *Content, cam *Camera) {
	var snapshot *Camera
	if cam != nil {
		c := *cam
		snapshot = &c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.content = content
	r.camera = snapshot
	r.frames++
}

// Frames returns the number of Render calls so far
func (r *Renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Close stops the host: the next Update returns ebiten.Termination.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.loop = nil
}

// Update implements ebiten.Game
func (r *Renderer) Update() error {
	r.mu.Lock()
	closed := r.closed
	overlays := append([]Overlay(nil), r.overlays...)
	r.mu.Unlock()

	if closed {
		return ebiten.Termination
	}

	for _, o := range overlays {
		if err := o.Update(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	loop := r.loop
	r.mu.Unlock()

	if loop == nil {
		return nil
	}
	return loop()
}

// Draw implements ebiten.Game
func (r *Renderer) Draw(screen *ebiten.Image) {
	r.mu.Lock()
	content := r.content
	cam := r.camera
	stereo := r.session != nil
	sep := r.eyeSeparation
	overlays := append([]Overlay(nil), r.overlays...)
	r.mu.Unlock()

	if content == nil || content.Disposed() || cam == nil {
		screen.Fill(color.Black)
	} else if stereo {
		b := screen.Bounds()
		half := b.Dx() / 2
		left := screen.SubImage(image.Rect(b.Min.X, b.Min.Y, b.Min.X+half, b.Max.Y)).(*ebiten.Image)
		right := screen.SubImage(image.Rect(b.Min.X+half, b.Min.Y, b.Max.X, b.Max.Y)).(*ebiten.Image)
		r.drawView(left, content, cam.ForEye(-sep/2, half, b.Dy()))
		r.drawView(right, content, cam.ForEye(sep/2, b.Dx()-half, b.Dy()))
	} else {
		r.drawView(screen, content, cam)
	}

	for _, o := range overlays {
		o.Draw(screen)
	}
}

// Layout implements ebiten.Game. A change of the outside size is the
// viewport resize signal.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	r.mu.Lock()
	changed := outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != r.width || outsideHeight != r.height)
	if changed {
		r.width = outsideWidth
		r.height = outsideHeight
	}
	w, h := r.width, r.height
	fn := r.onResize
	r.mu.Unlock()

	if changed && fn != nil {
		fn(w, h)
	}
	return w, h
}

type projectedMesh struct {
	mesh  *Mesh
	depth float64
}

func (r *Renderer) drawView(dst *ebiten.Image, content *Content, cam *Camera) {
	b := dst.Bounds()
	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	w, h := float64(b.Dx()), float64(b.Dy())

	dst.Fill(content.Background)

	// Painter's order: far to near
	all := content.Meshes()
	meshes := make([]projectedMesh, 0, len(all))
	for _, m := range all {
		if !m.Visible {
			continue
		}
		meshes = append(meshes, projectedMesh{mesh: m, depth: cam.Position.Z - m.Position.Z})
	}
	sort.SliceStable(meshes, func(i, j int) bool { return meshes[i].depth > meshes[j].depth })

	for _, pm := range meshes {
		switch pm.mesh.Kind {
		case MeshPlane:
			r.drawPlane(dst, pm.mesh, cam, ox, oy, w, h)
		default:
			drawBox(dst, pm.mesh, cam, ox, oy, w, h)
		}
	}

	for _, l := range content.Labels() {
		x, y, _, ok := cam.Project(l.Position, w, h)
		if !ok {
			continue
		}
		ebitenutil.DebugPrintAt(dst, l.Text, int(ox+x), int(oy+y))
	}
}

func drawBox(dst *ebiten.Image, m *Mesh, cam *Camera, ox, oy, w, h float64) {
	front := m.Position.Z + m.Size.Z/2
	x0, y0, _, ok0 := cam.Project(Vec3{m.Position.X - m.Size.X/2, m.Position.Y + m.Size.Y/2, front}, w, h)
	x1, y1, _, ok1 := cam.Project(Vec3{m.Position.X + m.Size.X/2, m.Position.Y - m.Size.Y/2, front}, w, h)
	if !ok0 || !ok1 {
		return
	}
	vector.DrawFilledRect(dst, float32(ox+x0), float32(oy+y0), float32(x1-x0), float32(y1-y0), m.Color, false)
}

func (r *Renderer) drawPlane(dst *ebiten.Image, m *Mesh, cam *Camera, ox, oy, w, h float64) {
	hx, hz := m.Size.X/2, m.Size.Z/2
	corners := [4]Vec3{
		{m.Position.X - hx, m.Position.Y, m.Position.Z - hz},
		{m.Position.X + hx, m.Position.Y, m.Position.Z - hz},
		{m.Position.X + hx, m.Position.Y, m.Position.Z + hz},
		{m.Position.X - hx, m.Position.Y, m.Position.Z + hz},
	}

	cr := float32(m.Color.R) / 255
	cg := float32(m.Color.G) / 255
	cb := float32(m.Color.B) / 255
	ca := float32(m.Color.A) / 255

	vertices := make([]ebiten.Vertex, 0, 4)
	for _, c := range corners {
		x, y, _, ok := cam.Project(c, w, h)
		if !ok {
			return
		}
		vertices = append(vertices, ebiten.Vertex{
			DstX:   float32(ox + x),
			DstY:   float32(oy + y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}

	dst.DrawTriangles(vertices, []uint16{0, 1, 2, 0, 2, 3}, r.whiteImage(), nil)
}

func (r *Renderer) whiteImage() *ebiten.Image {
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return r.white
}
