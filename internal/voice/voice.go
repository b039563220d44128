// Package voice plays the recorded clip that belongs to a phrase.
//
// Clips live under <dir>/<lang>/<n>.<ext>, where n is the 1-based position of
// the phrase in its language list and ext is wav, ogg or mp3. A phrase without
// a clip is shown as text only.
package voice

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/rs/zerolog"
)

// SampleRate of the shared audio context.
const SampleRate = 44100

// ErrNoClip is returned by ClipPath when no file exists for a phrase.
var ErrNoClip = errors.New("no voice clip")

// Extensions are tried in this order.
var Extensions = []string{".wav", ".ogg", ".mp3"}

// Voice owns at most one playing clip; starting a new one stops the old.
type Voice struct {
	ctx     *audio.Context
	dir     string
	volume  float64
	current *audio.Player
	log     zerolog.Logger
}

// New creates a Voice. A nil context makes Speak resolve clips without
// playing them, which is what tests and muted builds use.
func New(ctx *audio.Context, dir string, volume float64, log zerolog.Logger) *Voice {
	return &Voice{
		ctx:    ctx,
		dir:    dir,
		volume: clamp(volume),
		log:    log,
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Volume returns the current playback volume.
func (v *Voice) Volume() float64 {
	return v.volume
}

// SetVolume changes the volume, including for a clip already playing.
func (v *Voice) SetVolume(volume float64) {
	v.volume = clamp(volume)
	if v.current != nil {
		v.current.SetVolume(v.volume)
	}
}

// ClipPath finds the clip for the phrase at index (zero-based) in lang.
func (v *Voice) ClipPath(lang string, index int) (string, error) {
	if lang == "" || index < 0 {
		return "", ErrNoClip
	}
	base := filepath.Join(v.dir, lang, strconv.Itoa(index+1))
	for _, ext := range Extensions {
		path := base + ext
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s/%d", ErrNoClip, lang, index+1)
}

// Speak starts the clip for a phrase. A missing clip is not an error.
func (v *Voice) Speak(lang string, index int) error {
	path, err := v.ClipPath(lang, index)
	if err != nil {
		v.log.Debug().Str("lang", lang).Int("index", index).Msg("No voice clip for phrase")
		return nil
	}
	if v.ctx == nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read clip %s: %w", path, err)
	}
	stream, err := decode(filepath.Ext(path), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode clip %s: %w", path, err)
	}

	player, err := v.ctx.NewPlayer(stream)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}

	v.Stop()
	player.SetVolume(v.volume)
	player.Play()
	v.current = player
	v.log.Debug().Str("clip", path).Float64("volume", v.volume).Msg("Playing voice clip")
	return nil
}

// Playing reports whether a clip is currently audible.
func (v *Voice) Playing() bool {
	return v.current != nil && v.current.IsPlaying()
}

// Stop halts and releases the current clip.
func (v *Voice) Stop() {
	if v.current == nil {
		return
	}
	v.current.Pause()
	if err := v.current.Close(); err != nil {
		v.log.Warn().Err(err).Msg("Failed to close voice player")
	}
	v.current = nil
}

func decode(ext string, r io.ReadSeeker) (io.ReadSeeker, error) {
	switch ext {
	case ".wav":
		return wav.DecodeWithSampleRate(SampleRate, r)
	case ".ogg":
		return vorbis.DecodeWithSampleRate(SampleRate, r)
	case ".mp3":
		return mp3.DecodeWithSampleRate(SampleRate, r)
	default:
		return nil, fmt.Errorf("unsupported clip format %q", ext)
	}
}
