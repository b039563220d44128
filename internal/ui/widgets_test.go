package ui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/avatarpal/internal/config"
	"chosenoffset.com/avatarpal/internal/render/rendertest"
)

func TestPollerEmitsEdges(t *testing.T) {
	in := rendertest.NewInput()
	p := NewPoller(in)

	in.MoveTo(10, 20)
	assert.Equal(t, []Event{{Kind: PointerMove, X: 10, Y: 20}}, p.Poll())
	assert.Empty(t, p.Poll(), "nothing changed")

	in.Press(true)
	assert.Equal(t, []Event{{Kind: PointerDown, X: 10, Y: 20}}, p.Poll())
	assert.Empty(t, p.Poll(), "holding the button is not a new press")

	in.MoveTo(30, 20)
	in.Press(false)
	assert.Equal(t, []Event{
		{Kind: PointerMove, X: 30, Y: 20},
		{Kind: PointerUp, X: 30, Y: 20},
	}, p.Poll())
}

func TestPollerFirstPollReportsPosition(t *testing.T) {
	in := rendertest.NewInput()
	p := NewPoller(in)

	events := p.Poll()
	require.Len(t, events, 1)
	assert.Equal(t, PointerMove, events[0].Kind)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "move", PointerMove.String())
	assert.Equal(t, "down", PointerDown.String())
	assert.Equal(t, "up", PointerUp.String())
	assert.Equal(t, "unknown", EventKind(99).String())
}

func TestButtonHoverAndClick(t *testing.T) {
	r := rendertest.NewRenderer()
	clicks := 0
	b := NewButton(r, 10, 10, 100, 30, "Go", func() { clicks++ })

	b.HandleEvent(Event{Kind: PointerMove, X: 50, Y: 20})
	assert.True(t, b.Hovered())
	b.HandleEvent(Event{Kind: PointerMove, X: 500, Y: 20})
	assert.False(t, b.Hovered())

	b.HandleEvent(Event{Kind: PointerDown, X: 500, Y: 20})
	assert.Equal(t, 0, clicks)
	b.HandleEvent(Event{Kind: PointerDown, X: 10, Y: 10})
	assert.Equal(t, 1, clicks)
	b.HandleEvent(Event{Kind: PointerUp, X: 10, Y: 10})
	assert.Equal(t, 1, clicks, "release does not click")
}

func TestButtonDrawUsesHoverColor(t *testing.T) {
	r := rendertest.NewRenderer()
	b := NewButton(r, 0, 0, 60, 30, "Go", nil)
	screen := rendertest.NewImage(100, 100)

	b.Draw(screen)
	require.Len(t, r.Shapes, 1)
	assert.Equal(t, config.ButtonColor, r.Shapes[0].Color)

	r.Reset()
	b.HandleEvent(Event{Kind: PointerMove, X: 5, Y: 5})
	b.HandleEvent(Event{Kind: PointerDown, X: 5, Y: 5})
	b.Draw(screen)
	assert.Equal(t, config.ButtonHoverColor, r.Shapes[0].Color)

	text, ok := r.FindText("Go")
	require.True(t, ok)
	assert.Equal(t, (60-12)/2, text.X, "label is centered")
}

func TestLabelDrawsTextAndIgnoresEvents(t *testing.T) {
	r := rendertest.NewRenderer()
	l := NewLabel(r, 5, 6, "v1")

	l.HandleEvent(Event{Kind: PointerDown, X: 5, Y: 6})
	l.Draw(rendertest.NewImage(10, 10))

	require.Len(t, r.Texts, 1)
	assert.Equal(t, rendertest.TextCall{Text: "v1", X: 5, Y: 6, Color: config.LabelTextColor, Scale: config.FontScale}, r.Texts[0])
}

func TestSliderDragToRightEdge(t *testing.T) {
	r := rendertest.NewRenderer()
	var got []float64
	s := NewSlider(r, 100, 50, 200, 20, 0.0, 1.0, 0.5, func(v float64) { got = append(got, v) })

	hx, hy := s.HandleCenter()
	require.Equal(t, 200.0, hx)
	require.Equal(t, 60.0, hy)

	s.HandleEvent(Event{Kind: PointerDown, X: 200, Y: 60})
	require.True(t, s.Dragging())

	s.HandleEvent(Event{Kind: PointerMove, X: 300, Y: 61})
	assert.Equal(t, 1.0, s.Value())
	assert.Empty(t, got, "callback waits for release")

	s.HandleEvent(Event{Kind: PointerUp, X: 300, Y: 61})
	assert.False(t, s.Dragging())
	assert.Equal(t, []float64{1.0}, got)
}

func TestSliderClampsToTrack(t *testing.T) {
	r := rendertest.NewRenderer()
	var last float64 = -1
	s := NewSlider(r, 100, 50, 200, 20, 0.0, 1.0, 0.5, func(v float64) { last = v })

	s.HandleEvent(Event{Kind: PointerDown, X: 205, Y: 55})
	s.HandleEvent(Event{Kind: PointerMove, X: 900, Y: 0})
	assert.Equal(t, 1.0, s.Value())
	s.HandleEvent(Event{Kind: PointerMove, X: -50, Y: 0})
	assert.Equal(t, 0.0, s.Value())
	s.HandleEvent(Event{Kind: PointerMove, X: 150, Y: 0})
	assert.InDelta(t, 0.25, s.Value(), 1e-9)

	s.HandleEvent(Event{Kind: PointerUp, X: 150, Y: 0})
	assert.InDelta(t, 0.25, last, 1e-9)
}

func TestSliderIgnoresPressOffHandle(t *testing.T) {
	r := rendertest.NewRenderer()
	calls := 0
	s := NewSlider(r, 100, 50, 200, 20, 0.0, 1.0, 0.5, func(float64) { calls++ })

	s.HandleEvent(Event{Kind: PointerDown, X: 120, Y: 60})
	assert.False(t, s.Dragging())

	s.HandleEvent(Event{Kind: PointerMove, X: 300, Y: 60})
	assert.Equal(t, 0.5, s.Value())

	s.HandleEvent(Event{Kind: PointerUp, X: 300, Y: 60})
	assert.Equal(t, 0, calls)
}

func TestSliderStartIsClamped(t *testing.T) {
	s := NewSlider(rendertest.NewRenderer(), 0, 0, 100, 10, 0.0, 1.0, 7, nil)
	assert.Equal(t, 1.0, s.Value())
}

func TestLanguageMenuLayout(t *testing.T) {
	r := rendertest.NewRenderer()
	m := NewLanguageMenu(r, 15, 15, []string{"en", "fr", "ru"}, "fr", nil)

	assert.Equal(t, []image.Rectangle{
		image.Rect(15, 15, 27, 28),
		image.Rect(37, 15, 49, 28),
		image.Rect(59, 15, 71, 28),
	}, m.ItemRects())

	m.Draw(rendertest.NewImage(100, 100))
	require.Len(t, r.Texts, 3)
	assert.Equal(t, config.LabelTextColor, r.Texts[0].Color)
	assert.Equal(t, config.ActiveLanguageColor, r.Texts[1].Color)
	assert.Equal(t, config.LabelTextColor, r.Texts[2].Color)
}

func TestLanguageMenuSelect(t *testing.T) {
	r := rendertest.NewRenderer()
	var picked []string
	m := NewLanguageMenu(r, 15, 15, []string{"en", "fr", "ru"}, "en", func(code string) {
		picked = append(picked, code)
	})

	m.HandleEvent(Event{Kind: PointerDown, X: 60, Y: 20})
	assert.Equal(t, "ru", m.Current())

	m.HandleEvent(Event{Kind: PointerDown, X: 30, Y: 20}) // gap between en and fr
	m.HandleEvent(Event{Kind: PointerMove, X: 40, Y: 20})
	m.HandleEvent(Event{Kind: PointerUp, X: 40, Y: 20})
	assert.Equal(t, "ru", m.Current())

	assert.Equal(t, []string{"ru"}, picked)
}

func TestLanguageMenuSetLanguagesCopies(t *testing.T) {
	langs := []string{"en", "fr"}
	m := NewLanguageMenu(rendertest.NewRenderer(), 0, 0, langs, "en", nil)
	langs[0] = "zz"

	assert.Equal(t, []string{"en", "fr"}, m.Languages())
}
