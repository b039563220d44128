package ui

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"chosenoffset.com/avatarpal/internal/config"
	"chosenoffset.com/avatarpal/internal/render"
)

// LanguageLister supplies the codes shown in the language menu.
type LanguageLister interface {
	ListLanguages() []string
}

// Toggler is the part of the avatar the toggle button drives.
type Toggler interface {
	Visible() bool
	Show()
	Hide()
}

// VolumeSink receives volume changes as they are committed.
type VolumeSink interface {
	SetVolume(v float64)
}

// UI owns the control panel widgets and dispatches to them in registration
// order. Later components draw on top.
type UI struct {
	cfg    *config.Config
	langs  LanguageLister
	avatar Toggler
	volume VolumeSink
	log    zerolog.Logger

	components []Component

	LanguageMenu *LanguageMenu
	ToggleButton *Button
	VolumeSlider *Slider
	VersionLabel *Label
}

// New builds the control panel for a window of the given size.
func New(r render.Renderer, cfg *config.Config, langs LanguageLister, avatar Toggler, log zerolog.Logger, width, height int) *UI {
	u := &UI{
		cfg:    cfg,
		langs:  langs,
		avatar: avatar,
		log:    log,
	}

	u.LanguageMenu = NewLanguageMenu(r, config.UIPadding, config.UIPadding,
		langs.ListLanguages(), cfg.Language, u.onLanguageChange)
	u.Add(u.LanguageMenu)

	btnX := width - config.ButtonWidth - config.UIPadding
	btnY := config.UIPadding
	u.ToggleButton = NewButton(r, btnX, btnY, config.ButtonWidth, config.ButtonHeight,
		"Toggle Avatar", u.onToggleAvatar)
	u.Add(u.ToggleButton)

	sliderY := btnY + config.ButtonHeight + config.ButtonMargin
	u.VolumeSlider = NewSlider(r, btnX, sliderY, config.ButtonWidth, config.ButtonHeight/2,
		0.0, 1.0, cfg.Volume, u.onVolumeChange)
	u.Add(u.VolumeSlider)

	_, th := r.MeasureText("v", config.FontScale)
	u.VersionLabel = NewLabel(r, config.UIPadding, height-th-config.UIPadding,
		fmt.Sprintf("v%s", config.AppVersion))
	u.Add(u.VersionLabel)

	return u
}

// Add registers a component after the existing ones.
func (u *UI) Add(c Component) {
	u.components = append(u.components, c)
}

// Components returns the registered components in order.
func (u *UI) Components() []Component {
	return append([]Component(nil), u.components...)
}

// SetVolumeSink routes committed volume changes to v as well as the config.
func (u *UI) SetVolumeSink(v VolumeSink) {
	u.volume = v
}

// RefreshLanguages reloads the menu entries, e.g. after the phrase file changed.
func (u *UI) RefreshLanguages() {
	u.LanguageMenu.SetLanguages(u.langs.ListLanguages())
	u.LanguageMenu.SetCurrent(u.cfg.Language)
}

// Draw draws every component in registration order.
func (u *UI) Draw(dst render.Image) {
	for _, c := range u.components {
		c.Draw(dst)
	}
}

// HandleEvent passes ev to every component in registration order.
func (u *UI) HandleEvent(ev Event) {
	for _, c := range u.components {
		c.HandleEvent(ev)
	}
}

func (u *UI) onLanguageChange(code string) {
	err := u.cfg.SetLanguage(code, u.langs.ListLanguages())
	switch {
	case err == nil:
		u.log.Info().Str("lang", code).Msg("Language changed")
	case errors.Is(err, config.ErrUnknownLanguage), errors.Is(err, config.ErrEmptyLanguage):
		u.log.Warn().Err(err).Str("lang", code).Msg("Rejected language change")
		u.LanguageMenu.SetCurrent(u.cfg.Language)
	default:
		u.log.Error().Err(err).Str("lang", code).Msg("Failed to change language")
		u.LanguageMenu.SetCurrent(u.cfg.Language)
	}
}

func (u *UI) onToggleAvatar() {
	if u.avatar.Visible() {
		u.avatar.Hide()
	} else {
		u.avatar.Show()
	}
	u.log.Debug().Bool("visible", u.avatar.Visible()).Msg("Avatar toggled")
}

func (u *UI) onVolumeChange(v float64) {
	if err := u.cfg.SetVolume(v); err != nil {
		if errors.Is(err, config.ErrVolumeRange) {
			u.log.Warn().Err(err).Msg("Rejected volume change")
		} else {
			u.log.Error().Err(err).Msg("Failed to change volume")
		}
		u.VolumeSlider.SetValue(u.cfg.Volume)
		return
	}
	if u.volume != nil {
		u.volume.SetVolume(u.cfg.Volume)
	}
	u.log.Info().Float64("volume", u.cfg.Volume).Msg("Volume changed")
}
