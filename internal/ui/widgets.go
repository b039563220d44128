package ui

import (
	"image"
	"image/color"

	"chosenoffset.com/avatarpal/internal/config"
	"chosenoffset.com/avatarpal/internal/render"
)

// Button is a labeled rectangle that fires its callback on click.
type Button struct {
	Rect    image.Rectangle
	Text    string
	OnClick func()

	hovered  bool
	renderer render.Renderer
}

// NewButton creates a button at (x, y) with the given size.
func NewButton(r render.Renderer, x, y, w, h int, text string, onClick func()) *Button {
	return &Button{
		Rect:     image.Rect(x, y, x+w, y+h),
		Text:     text,
		OnClick:  onClick,
		renderer: r,
	}
}

// Hovered reports whether the pointer is over the button.
func (b *Button) Hovered() bool {
	return b.hovered
}

func (b *Button) Draw(dst render.Image) {
	clr := config.ButtonColor
	if b.hovered {
		clr = config.ButtonHoverColor
	}
	b.renderer.FillRect(dst, float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()), clr)

	tw, th := b.renderer.MeasureText(b.Text, config.FontScale)
	tx := b.Rect.Min.X + (b.Rect.Dx()-tw)/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()-th)/2
	b.renderer.DrawText(dst, b.Text, tx, ty, config.ButtonTextColor, config.FontScale)
}

func (b *Button) HandleEvent(ev Event) {
	switch ev.Kind {
	case PointerMove:
		b.hovered = ev.Pos().In(b.Rect)
	case PointerDown:
		if ev.Pos().In(b.Rect) && b.OnClick != nil {
			b.OnClick()
		}
	}
}

// Label is static text.
type Label struct {
	X, Y  int
	Text  string
	Color color.Color

	renderer render.Renderer
}

// NewLabel creates a label with its top-left corner at (x, y).
func NewLabel(r render.Renderer, x, y int, text string) *Label {
	return &Label{X: x, Y: y, Text: text, Color: config.LabelTextColor, renderer: r}
}

func (l *Label) Draw(dst render.Image) {
	l.renderer.DrawText(dst, l.Text, l.X, l.Y, l.Color, config.FontScale)
}

// HandleEvent ignores all events.
func (l *Label) HandleEvent(Event) {}

// Slider is a horizontal track with a draggable round handle. The callback
// fires once, with the final value, when a drag ends.
type Slider struct {
	Track    image.Rectangle
	Min, Max float64
	OnChange func(float64)

	value    float64
	dragging bool
	renderer render.Renderer
}

// NewSlider creates a slider whose track starts at (x, y).
func NewSlider(r render.Renderer, x, y, length, height int, minVal, maxVal, start float64, onChange func(float64)) *Slider {
	s := &Slider{
		Track:    image.Rect(x, y, x+length, y+height),
		Min:      minVal,
		Max:      maxVal,
		OnChange: onChange,
		renderer: r,
	}
	s.SetValue(start)
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	return s.value
}

// SetValue moves the handle without firing the callback.
func (s *Slider) SetValue(v float64) {
	lo, hi := s.Min, s.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	s.value = v
}

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool {
	return s.dragging
}

func (s *Slider) radius() float64 {
	return float64(s.Track.Dy()) / 2
}

// HandleCenter returns where the handle is drawn.
func (s *Slider) HandleCenter() (float64, float64) {
	frac := 0.0
	if s.Max != s.Min {
		frac = (s.value - s.Min) / (s.Max - s.Min)
	}
	x := float64(s.Track.Min.X) + frac*float64(s.Track.Dx())
	y := float64(s.Track.Min.Y) + float64(s.Track.Dy())/2
	return x, y
}

func (s *Slider) Draw(dst render.Image) {
	s.renderer.FillRect(dst, float32(s.Track.Min.X), float32(s.Track.Min.Y),
		float32(s.Track.Dx()), float32(s.Track.Dy()), config.ButtonColor)

	clr := config.ButtonTextColor
	if s.dragging {
		clr = config.ButtonHoverColor
	}
	hx, hy := s.HandleCenter()
	s.renderer.FillCircle(dst, float32(hx), float32(hy), float32(s.radius()), clr)
	s.renderer.StrokeCircle(dst, float32(hx), float32(hy), float32(s.radius()), 1, config.ButtonHoverColor)
}

func (s *Slider) HandleEvent(ev Event) {
	switch ev.Kind {
	case PointerDown:
		hx, hy := s.HandleCenter()
		dx, dy := float64(ev.X)-hx, float64(ev.Y)-hy
		r := s.radius()
		if dx*dx+dy*dy <= r*r {
			s.dragging = true
		}
	case PointerMove:
		if !s.dragging {
			return
		}
		x := ev.X
		if x < s.Track.Min.X {
			x = s.Track.Min.X
		}
		if x > s.Track.Max.X {
			x = s.Track.Max.X
		}
		frac := 0.0
		if s.Track.Dx() > 0 {
			frac = float64(x-s.Track.Min.X) / float64(s.Track.Dx())
		}
		s.value = s.Min + frac*(s.Max-s.Min)
	case PointerUp:
		if !s.dragging {
			return
		}
		s.dragging = false
		if s.OnChange != nil {
			s.OnChange(s.value)
		}
	}
}

// LanguageMenu lays language codes out left to right and highlights the
// active one.
type LanguageMenu struct {
	X, Y     int
	OnSelect func(string)

	languages []string
	current   string
	renderer  render.Renderer
}

// NewLanguageMenu creates a menu starting at (x, y).
func NewLanguageMenu(r render.Renderer, x, y int, languages []string, current string, onSelect func(string)) *LanguageMenu {
	m := &LanguageMenu{X: x, Y: y, OnSelect: onSelect, current: current, renderer: r}
	m.SetLanguages(languages)
	return m
}

// SetLanguages replaces the listed codes, keeping the active one.
func (m *LanguageMenu) SetLanguages(languages []string) {
	m.languages = append([]string(nil), languages...)
}

// Languages returns the listed codes.
func (m *LanguageMenu) Languages() []string {
	return append([]string(nil), m.languages...)
}

// Current returns the highlighted code.
func (m *LanguageMenu) Current() string {
	return m.current
}

// SetCurrent highlights code without firing the callback.
func (m *LanguageMenu) SetCurrent(code string) {
	m.current = code
}

// ItemRects returns the hit box of each code, in display order.
func (m *LanguageMenu) ItemRects() []image.Rectangle {
	rects := make([]image.Rectangle, len(m.languages))
	x := m.X
	for i, code := range m.languages {
		w, h := m.renderer.MeasureText(code, config.FontScale)
		rects[i] = image.Rect(x, m.Y, x+w, m.Y+h)
		x += w + config.ButtonMargin
	}
	return rects
}

func (m *LanguageMenu) Draw(dst render.Image) {
	for i, r := range m.ItemRects() {
		code := m.languages[i]
		var clr color.Color = config.LabelTextColor
		if code == m.current {
			clr = config.ActiveLanguageColor
		}
		m.renderer.DrawText(dst, code, r.Min.X, r.Min.Y, clr, config.FontScale)
	}
}

func (m *LanguageMenu) HandleEvent(ev Event) {
	if ev.Kind != PointerDown {
		return
	}
	for i, r := range m.ItemRects() {
		if ev.Pos().In(r) {
			m.current = m.languages[i]
			if m.OnSelect != nil {
				m.OnSelect(m.current)
			}
			return
		}
	}
}
