// Package rendertest provides recording fakes of the render interfaces for
// tests that should not open a window.
package rendertest

import (
	"image"
	"image/color"

	"chosenoffset.com/avatarpal/internal/render"
)

// Character cell size used by MeasureText, matching the debug font.
const (
	CharWidth  = 6
	CharHeight = 13
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{} }
	}
}

// TextCall records a DrawText invocation.
type TextCall struct {
	Text  string
	X, Y  int
	Color color.Color
	Scale float64
}

// ShapeCall records a rect or circle invocation.
type ShapeCall struct {
	Kind                string // "rect", "circle", "stroke"
	X, Y, Width, Height float32
	Color               color.Color
}

// Renderer records every call made against it.
type Renderer struct {
	Texts  []TextCall
	Shapes []ShapeCall
}

// NewRenderer returns an empty recording renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Reset forgets all recorded calls.
func (r *Renderer) Reset() {
	r.Texts = nil
	r.Shapes = nil
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.Shapes = append(r.Shapes, ShapeCall{Kind: "rect", X: x, Y: y, Width: width, Height: height, Color: clr})
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Shapes = append(r.Shapes, ShapeCall{Kind: "circle", X: x, Y: y, Width: radius * 2, Height: radius * 2, Color: clr})
}

func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	r.Shapes = append(r.Shapes, ShapeCall{Kind: "stroke", X: x, Y: y, Width: radius * 2, Height: radius * 2, Color: clr})
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Texts = append(r.Texts, TextCall{Text: text, X: x, Y: y, Color: clr, Scale: scale})
}

// MeasureText uses a fixed cell size per byte so hit boxes are predictable.
func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	if scale <= 0 {
		scale = 1
	}
	return int(float64(len(text)*CharWidth) * scale), int(CharHeight * scale)
}

// FindText returns the first recorded text call with the given string.
func (r *Renderer) FindText(text string) (TextCall, bool) {
	for _, c := range r.Texts {
		if c.Text == text {
			return c, true
		}
	}
	return TextCall{}, false
}

// DrawCall records a DrawImage invocation on an Image.
type DrawCall struct {
	Src   render.Image
	TX    float64
	TY    float64
	Alpha float32
}

// Image is an in-memory render.Image that records draws onto it.
type Image struct {
	W, H     int
	Filled   color.Color
	Draws    []DrawCall
	Disposed bool
}

// NewImage creates a recording image of the given size.
func NewImage(width, height int) *Image {
	return &Image{W: width, H: height}
}

func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.W, i.H) }

func (i *Image) Size() (int, int) { return i.W, i.H }

func (i *Image) Fill(clr color.Color) { i.Filled = clr }

func (i *Image) Dispose() { i.Disposed = true }

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	call := DrawCall{Src: src, Alpha: 1}
	if opts != nil {
		call.Alpha = opts.Alpha
		if g, ok := opts.GeoM.(*GeoM); ok {
			call.TX, call.TY = g.TX, g.TY
		}
	}
	i.Draws = append(i.Draws, call)
}

// GeoM tracks translation only.
type GeoM struct {
	TX, TY float64
}

func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}

// Input is a scriptable render.InputManager.
type Input struct {
	X, Y        int
	Buttons     map[render.MouseButton]bool
	JustPressed map[render.Key]bool
}

// NewInput returns an input with no buttons held.
func NewInput() *Input {
	return &Input{
		Buttons:     make(map[render.MouseButton]bool),
		JustPressed: make(map[render.Key]bool),
	}
}

// MoveTo sets the cursor position.
func (in *Input) MoveTo(x, y int) {
	in.X, in.Y = x, y
}

// Press holds or releases the left button.
func (in *Input) Press(down bool) {
	in.Buttons[render.MouseButtonLeft] = down
}

func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.JustPressed[key] }

func (in *Input) GetCursorPosition() (int, int) { return in.X, in.Y }

func (in *Input) IsMouseButtonPressed(button render.MouseButton) bool { return in.Buttons[button] }

// Clock is a fixed render.Clock.
type Clock struct {
	Ticks int
	FPS   float64
}

func (c Clock) TPS() int { return c.Ticks }

func (c Clock) ActualFPS() float64 { return c.FPS }
