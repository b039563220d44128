package placeholders

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAvatarShape(t *testing.T) {
	img := CreateAvatar(64)

	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 64, img.Bounds().Dy())

	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A, "corner is transparent")
	assert.Equal(t, uint8(0), img.RGBAAt(63, 63).A, "corner is transparent")
	assert.Equal(t, uint8(255), img.RGBAAt(32, 32).A, "face is opaque")
}

func TestCreateCircle(t *testing.T) {
	fill := color.RGBA{10, 20, 30, 255}
	outline := color.RGBA{200, 0, 0, 255}
	img := CreateCircle(32, fill, outline)

	assert.Equal(t, fill, img.RGBAAt(16, 16))
	assert.Equal(t, outline, img.RGBAAt(16, 1))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
}

func TestGenerateAvatar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets", "avatar.png")

	written, err := GenerateAvatar(path, false)
	require.NoError(t, err)
	assert.True(t, written)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, AvatarSize, cfg.Width)
	assert.Equal(t, AvatarSize, cfg.Height)

	written, err = GenerateAvatar(path, false)
	require.NoError(t, err)
	assert.False(t, written, "existing file is kept")

	written, err = GenerateAvatar(path, true)
	require.NoError(t, err)
	assert.True(t, written)
}

func TestDarkenLighten(t *testing.T) {
	c := color.RGBA{100, 200, 50, 255}

	assert.Equal(t, color.RGBA{50, 100, 25, 255}, Darken(c, 0.5))
	assert.Equal(t, color.RGBA{177, 227, 152, 255}, Lighten(c, 0.5))
}
