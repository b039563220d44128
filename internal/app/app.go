// Package app ties the avatar, the phrases and the control panel into the
// per-tick loop the engine drives.
package app

import (
	"fmt"
	"image/color"

	"github.com/rs/zerolog"

	"chosenoffset.com/avatarpal/internal/avatar"
	"chosenoffset.com/avatarpal/internal/config"
	"chosenoffset.com/avatarpal/internal/phrases"
	"chosenoffset.com/avatarpal/internal/render"
	"chosenoffset.com/avatarpal/internal/ui"
)

// Speaker plays the clip for a picked phrase.
type Speaker interface {
	Speak(lang string, index int) error
	SetVolume(v float64)
}

// ChangeSource reports edits to the phrase file without blocking.
type ChangeSource interface {
	Changed() bool
}

// bubbleGap is the space between the phrase text and the avatar's head.
const bubbleGap = 10

// Game implements render.Game for the whole application.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	cfg      *config.Config
	phrases  *phrases.Manager
	avatar   *avatar.Avatar
	panel    *ui.UI
	poller   *ui.Poller
	renderer render.Renderer
	input    render.InputManager
	clock    render.Clock
	voice    Speaker
	changes  ChangeSource
	log      zerolog.Logger

	lastPhrase string
	showFPS    bool
}

// New creates the game. Voice and change source are optional and set with
// their setters.
func New(r render.Renderer, input render.InputManager, clock render.Clock, cfg *config.Config,
	pm *phrases.Manager, av *avatar.Avatar, panel *ui.UI, log zerolog.Logger) *Game {
	return &Game{
		ScreenWidth:  config.WindowWidth,
		ScreenHeight: config.WindowHeight,
		cfg:          cfg,
		phrases:      pm,
		avatar:       av,
		panel:        panel,
		poller:       ui.NewPoller(input),
		renderer:     r,
		input:        input,
		clock:        clock,
		log:          log,
		showFPS:      config.ShowFPS,
	}
}

// SetSpeaker sets the voice used when a phrase is picked.
func (g *Game) SetSpeaker(s Speaker) {
	g.voice = s
}

// SetChangeSource enables reloading the phrases when the file changes.
func (g *Game) SetChangeSource(c ChangeSource) {
	g.changes = c
}

// LastPhrase returns the text currently shown above the avatar.
func (g *Game) LastPhrase() string {
	return g.lastPhrase
}

// dt returns the fixed tick length in seconds.
func (g *Game) dt() float64 {
	tps := config.TPS
	if g.clock != nil && g.clock.TPS() > 0 {
		tps = g.clock.TPS()
	}
	return 1.0 / float64(tps)
}

// Update handles input, advances the avatar and keeps the phrase in sync.
func (g *Game) Update() error {
	if g.input.IsKeyJustPressed(render.KeyEscape) {
		g.log.Info().Msg("Quit requested")
		return render.ErrTerminate
	}
	if g.input.IsKeyJustPressed(render.KeyF) {
		g.showFPS = !g.showFPS
	}

	reload := g.input.IsKeyJustPressed(render.KeyR)
	if g.changes != nil && g.changes.Changed() {
		reload = true
	}
	if reload {
		g.reloadPhrases()
	}

	for _, ev := range g.poller.Poll() {
		if ev.Kind == ui.PointerDown && g.avatar.Opacity() > 0 && g.avatar.Contains(ev.X, ev.Y) {
			g.speak()
		}
		g.panel.HandleEvent(ev)
	}

	g.avatar.Update(g.dt(), g.cfg.ShowInterval, g.cfg.HideInterval)

	// The phrase goes away with the avatar.
	if g.avatar.Opacity() == 0 {
		g.lastPhrase = ""
	}
	return nil
}

func (g *Game) speak() {
	p, ok := g.phrases.Pick(g.cfg.Language)
	if !ok {
		return
	}
	g.lastPhrase = p.Text
	if g.voice == nil {
		return
	}
	if err := g.voice.Speak(p.Lang, p.Index); err != nil {
		g.log.Warn().Err(err).Str("lang", p.Lang).Int("index", p.Index).Msg("Failed to play phrase")
	}
}

func (g *Game) reloadPhrases() {
	if err := g.phrases.Reload(); err != nil {
		g.log.Warn().Err(err).Msg("Phrase reload failed, keeping previous phrases")
		return
	}
	g.panel.RefreshLanguages()
}

// Draw renders background, avatar, panel, phrase and FPS, in that order.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(config.BackgroundColor)
	g.avatar.Draw(screen)
	g.panel.Draw(screen)

	if g.lastPhrase != "" && g.avatar.Opacity() > 0 {
		g.drawPhrase(screen)
	}

	if g.showFPS && g.clock != nil {
		label := fmt.Sprintf("FPS: %d", int(g.clock.ActualFPS()))
		w, h := g.renderer.MeasureText(label, config.FontScale)
		g.renderer.DrawText(screen, label, g.ScreenWidth-w-config.UIPadding, g.ScreenHeight-h-5,
			config.LabelTextColor, config.FontScale)
	}
}

// drawPhrase centers the text above the avatar, faded with it.
func (g *Game) drawPhrase(screen render.Image) {
	w, h := g.renderer.MeasureText(g.lastPhrase, config.FontScale)
	b := g.avatar.Bounds()
	x := b.Min.X + b.Dx()/2 - w/2
	y := b.Min.Y - bubbleGap - h

	base := config.LabelTextColor
	clr := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(g.avatar.Opacity())}
	g.renderer.DrawText(screen, g.lastPhrase, x, y, clr, config.FontScale)
}

// Layout keeps a fixed logical size; the engine scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
