package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminate is returned from Game.Update to end the loop cleanly.
// Backends translate it to their own termination signal.
var ErrTerminate = errors.New("render: terminate")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// application logic.
type Renderer interface {
	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)

	// Text operations. The alpha channel of clr is honored.
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)

	// Resource management
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
// Nil options draw opaque at the origin. Alpha is always applied when the
// options are set, so a zero value draws nothing; use NewDrawImageOptions.
type DrawImageOptions struct {
	GeoM GeoM
	// Alpha multiplies the source alpha, in [0,1].
	Alpha float32
}

// NewDrawImageOptions returns opaque options with an identity GeoM.
func NewDrawImageOptions() *DrawImageOptions {
	return &DrawImageOptions{GeoM: NewGeoM(), Alpha: 1}
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// InputManager handles input from the user (keyboard, mouse).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the application reacts to
const (
	KeyEscape Key = iota
	KeyR          // Reload phrases
	KeyF          // Toggle FPS overlay
)

// MouseButton represents a mouse button.
type MouseButton int

// MouseButtonLeft is the only button the application reads.
const MouseButtonLeft MouseButton = 0

// ResourceLoader handles loading resources like images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the logic. It is called every tick (TPS times per second).
	// Returning ErrTerminate ends the loop without error.
	Update() error

	// Draw draws the screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Clock reports loop timing.
type Clock interface {
	// TPS returns the fixed number of Update calls per second.
	TPS() int
	// ActualFPS returns the measured frames per second.
	ActualFPS() float64
}

// Engine represents the engine that manages the loop and window.
type Engine interface {
	Clock

	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// SetTPS caps the number of Update calls per second.
	SetTPS(tps int)

	// RunGame runs the loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
