// Package avatar animates the character: it fades in and out on a timer and
// wanders toward random points inside the window.
package avatar

import (
	"image"
	"math"
	"math/rand"
	"time"

	"chosenoffset.com/avatarpal/internal/render"
)

// Motion and fade tuning.
const (
	FadeDuration    = 0.5   // seconds for a full 0..255 ramp
	Speed           = 120.0 // pixels per second
	MoveInterval    = 4.0   // seconds between new targets
	ArriveThreshold = 5.0   // pixels; closer than this the avatar stops
	MaxOpacity      = 255.0
)

// Point is a position in window pixels.
type Point struct {
	X, Y float64
}

// Avatar holds the image, its center position and the two timers that drive
// the fade and motion. All methods must be called from the loop goroutine.
type Avatar struct {
	img           render.Image
	width, height float64
	screenW       float64
	screenH       float64

	pos    Point // center
	target Point

	opacity   float64
	visible   bool
	fadeTimer float64
	moveTimer float64

	rng *rand.Rand
}

// Option configures an Avatar.
type Option func(*Avatar)

// WithRand sets the random source for target selection.
func WithRand(rng *rand.Rand) Option {
	return func(a *Avatar) {
		a.rng = rng
	}
}

// WithPosition sets the starting center; the default is the window center.
func WithPosition(x, y float64) Option {
	return func(a *Avatar) {
		a.pos = Point{X: x, Y: y}
	}
}

// New creates a hidden, fully transparent avatar.
func New(img render.Image, screenWidth, screenHeight int, opts ...Option) *Avatar {
	w, h := img.Size()
	a := &Avatar{
		img:     img,
		width:   float64(w),
		height:  float64(h),
		screenW: float64(screenWidth),
		screenH: float64(screenHeight),
		pos:     Point{X: float64(screenWidth) / 2, Y: float64(screenHeight) / 2},
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.clamp()
	a.target = a.pos
	return a
}

// Show starts fading in. Opacity changes on later updates.
func (a *Avatar) Show() {
	a.visible = true
	a.fadeTimer = 0
}

// Hide starts fading out. Opacity changes on later updates.
func (a *Avatar) Hide() {
	a.visible = false
	a.fadeTimer = 0
}

// Visible reports the fade direction, not whether anything is on screen.
func (a *Avatar) Visible() bool {
	return a.visible
}

// Opacity returns the current opacity in [0,255].
func (a *Avatar) Opacity() float64 {
	return a.opacity
}

// Position returns the center of the avatar.
func (a *Avatar) Position() Point {
	return a.pos
}

// Target returns the point the avatar is walking to.
func (a *Avatar) Target() Point {
	return a.target
}

// Bounds returns the on-screen rectangle of the image.
func (a *Avatar) Bounds() image.Rectangle {
	left, top := a.topLeft()
	return image.Rect(int(math.Round(left)), int(math.Round(top)),
		int(math.Round(left+a.width)), int(math.Round(top+a.height)))
}

// Contains reports whether (x, y) falls on the avatar's rectangle.
func (a *Avatar) Contains(x, y int) bool {
	left, top := a.topLeft()
	fx, fy := float64(x), float64(y)
	return fx >= left && fx < left+a.width && fy >= top && fy < top+a.height
}

func (a *Avatar) topLeft() (float64, float64) {
	return a.pos.X - a.width/2, a.pos.Y - a.height/2
}

// Resize changes the window bounds and pulls the avatar back inside.
func (a *Avatar) Resize(screenWidth, screenHeight int) {
	a.screenW = float64(screenWidth)
	a.screenH = float64(screenHeight)
	a.clamp()
	a.target = a.clampPoint(a.target)
}

// Update advances both the fade and the motion by dt seconds.
// showInterval and hideInterval are how long to stay fully shown or hidden.
func (a *Avatar) Update(dt, showInterval, hideInterval float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	a.updateFade(dt, showInterval, hideInterval)
	a.updateMotion(dt)
}

func (a *Avatar) updateFade(dt, showInterval, hideInterval float64) {
	a.fadeTimer += dt
	step := MaxOpacity * dt / FadeDuration

	if a.visible {
		if a.opacity < MaxOpacity {
			a.opacity = math.Min(MaxOpacity, a.opacity+step)
		} else if a.fadeTimer >= showInterval {
			a.Hide()
		}
		return
	}

	if a.opacity > 0 {
		a.opacity = math.Max(0, a.opacity-step)
	} else if a.fadeTimer >= hideInterval {
		a.Show()
	}
}

func (a *Avatar) updateMotion(dt float64) {
	a.moveTimer += dt
	if a.moveTimer >= MoveInterval {
		a.pickTarget()
		a.moveTimer = 0
	}

	dx := a.target.X - a.pos.X
	dy := a.target.Y - a.pos.Y
	dist := math.Hypot(dx, dy)
	if dist <= ArriveThreshold {
		return
	}

	// Never step past the target.
	step := math.Min(Speed*dt, dist)
	a.pos.X += dx / dist * step
	a.pos.Y += dy / dist * step
	a.clamp()
}

// pickTarget chooses a center so the whole image stays on screen.
func (a *Avatar) pickTarget() {
	a.target = Point{
		X: a.randomAxis(a.width, a.screenW),
		Y: a.randomAxis(a.height, a.screenH),
	}
}

func (a *Avatar) randomAxis(size, limit float64) float64 {
	lo, hi := size/2, limit-size/2
	if hi <= lo {
		return limit / 2
	}
	return lo + a.rng.Float64()*(hi-lo)
}

func (a *Avatar) clamp() {
	a.pos = a.clampPoint(a.pos)
}

// clampPoint keeps a center inside the window. An image larger than the
// window on an axis is centered on that axis.
func (a *Avatar) clampPoint(p Point) Point {
	return Point{
		X: clampAxis(p.X, a.width, a.screenW),
		Y: clampAxis(p.Y, a.height, a.screenH),
	}
}

func clampAxis(c, size, limit float64) float64 {
	lo, hi := size/2, limit-size/2
	if hi <= lo {
		return limit / 2
	}
	return math.Max(lo, math.Min(hi, c))
}

// Draw renders the image at the current opacity. Nothing is drawn when the
// avatar is fully transparent.
func (a *Avatar) Draw(dst render.Image) {
	if a.opacity <= 0 {
		return
	}
	left, top := a.topLeft()

	opts := render.NewDrawImageOptions()
	opts.Alpha = float32(a.opacity / MaxOpacity)
	opts.GeoM.Translate(left, top)
	dst.DrawImage(a.img, opts)
}

// Dispose releases the image. The avatar must not be drawn afterwards.
func (a *Avatar) Dispose() {
	a.img.Dispose()
}
