// Package prompt is the "Enter VR" button drawn over the view.
//
// A click disables the button and shows a loading label, then hands a
// freshly opened user gesture to the registered handler. The gesture is
// closed as soon as the handler returns, so a session can only be
// requested from inside the click.
package prompt

import (
	"image/color"
	"sync"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/vrpong/internal/application/session"
)

// Button labels
const (
	LabelEnterVR     = "Enter VR"
	LabelLoading     = "Loading..."
	LabelUnsupported = "VR Not Supported"
)

// GestureSource opens user gestures; *session.Manager implements it.
type GestureSource interface {
	BeginGesture() *session.Gesture
}

// Prompt implements the game's interaction widget and the renderer's
// overlay.
type Prompt struct {
	gestures GestureSource
	ui       *ebitenui.UI
	button   *widget.Button

	mu      sync.Mutex
	handler func(*session.Gesture)
	label   string
	enabled bool
	visible bool
}

// New builds the prompt centered near the bottom of the screen.
func New(gestures GestureSource, face text.Face) *Prompt {
	p := &Prompt{
		gestures: gestures,
		label:    LabelEnterVR,
		enabled:  true,
		visible:  true,
	}

	p.button = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
			widget.WidgetOpts.MinSize(200, 48),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(LabelEnterVR, face, &widget.ButtonTextColor{
			Idle:     color.White,
			Disabled: color.RGBA{0x99, 0x99, 0x99, 0xff},
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(12)),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			p.Click()
		}),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{Bottom: 40}),
		)),
	)
	root.AddChild(p.button)

	p.ui = &ebitenui.UI{Container: root}
	return p
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{0x00, 0x00, 0x00, 0x99}),
		Hover:    image.NewNineSliceColor(color.RGBA{0x00, 0x00, 0x00, 0xcc}),
		Pressed:  image.NewNineSliceColor(color.RGBA{0x20, 0x20, 0x20, 0xcc}),
		Disabled: image.NewNineSliceColor(color.RGBA{0x00, 0x00, 0x00, 0x55}),
	}
}

// OnReadyClicked registers the click handler
func (p *Prompt) OnReadyClicked(fn func(*session.Gesture)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handler = fn
}

// Click performs a click: the button switches to loading and the handler
// runs inside a user gesture. Clicks on a disabled button are ignored.
func (p *Prompt) Click() {
	p.mu.Lock()
	if !p.enabled || !p.visible {
		p.mu.Unlock()
		return
	}
	p.setLocked(LabelLoading, false)
	handler := p.handler
	p.mu.Unlock()

	if handler == nil {
		return
	}

	g := p.gestures.BeginGesture()
	defer g.End()
	handler(g)
}

// SetLoaded re-enables the button after a session attempt
func (p *Prompt) SetLoaded() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setLocked(LabelEnterVR, true)
}

// SetUnsupported disables the button for good
func (p *Prompt) SetUnsupported() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setLocked(LabelUnsupported, false)
}

// SetVisible shows or hides the prompt
func (p *Prompt) SetVisible(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = visible
}

func (p *Prompt) setLocked(label string, enabled bool) {
	p.label = label
	p.enabled = enabled
	p.button.Text().Label = label
	p.button.GetWidget().Disabled = !enabled
}

// Label returns the current button text
func (p *Prompt) Label() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.label
}

// Enabled reports whether the button accepts clicks
func (p *Prompt) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Visible reports whether the prompt is shown
func (p *Prompt) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// Update implements render.Overlay. Enter works like a click.
func (p *Prompt) Update() error {
	if !p.Visible() {
		return nil
	}
	p.ui.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		p.Click()
	}
	return nil
}

// Draw implements render.Overlay
func (p *Prompt) Draw(screen *ebiten.Image) {
	if !p.Visible() {
		return
	}
	p.ui.Draw(screen)
}
