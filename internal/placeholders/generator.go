// Package placeholders draws stand-in artwork so the app runs before real
// assets exist.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// AvatarSize is the edge length of the generated avatar in pixels.
const AvatarSize = 128

// supersample is how much larger the face is drawn before scaling down.
const supersample = 4

// ColorPalette defines colors for the placeholder avatar.
var ColorPalette = struct {
	Skin    color.RGBA
	Outline color.RGBA
	Eye     color.RGBA
	Mouth   color.RGBA
	Cheek   color.RGBA
}{
	Skin:    color.RGBA{255, 214, 90, 255},
	Outline: color.RGBA{120, 80, 20, 255},
	Eye:     color.RGBA{40, 30, 20, 255},
	Mouth:   color.RGBA{150, 40, 40, 255},
	Cheek:   color.RGBA{255, 150, 120, 255},
}

// CreateCircle creates a filled circle with a one-pixel outline on a
// transparent square of the given size.
func CreateCircle(size int, fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Make background transparent
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	center := size / 2
	radius := size/2 - 2
	fillDisc(img, center, center, radius+1, outlineColor)
	fillDisc(img, center, center, radius, fillColor)
	return img
}

func fillDisc(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// CreateAvatar draws a smiling face of the given size. The face is drawn at
// a larger size and scaled down so its edges are smooth.
func CreateAvatar(size int) *image.RGBA {
	big := size * supersample
	face := CreateCircle(big, ColorPalette.Skin, Darken(ColorPalette.Outline, 0.9))

	// Thicker outline so it survives the downscale.
	c := big / 2
	r := big/2 - 2
	for w := 1; w < supersample*2; w++ {
		ring(face, c, c, r-w, ColorPalette.Outline)
	}

	eyeY := c - big/8
	eyeDX := big / 6
	eyeR := big / 16
	fillDisc(face, c-eyeDX, eyeY, eyeR, ColorPalette.Eye)
	fillDisc(face, c+eyeDX, eyeY, eyeR, ColorPalette.Eye)
	fillDisc(face, c-eyeDX+eyeR/3, eyeY-eyeR/3, eyeR/3, Lighten(ColorPalette.Eye, 0.95))
	fillDisc(face, c+eyeDX+eyeR/3, eyeY-eyeR/3, eyeR/3, Lighten(ColorPalette.Eye, 0.95))

	cheekR := big / 14
	fillDisc(face, c-eyeDX-big/20, c+big/12, cheekR, ColorPalette.Cheek)
	fillDisc(face, c+eyeDX+big/20, c+big/12, cheekR, ColorPalette.Cheek)

	// Smile: the lower half of a ring.
	smileR := big / 4
	thickness := supersample * 3
	for y := c; y <= c+smileR; y++ {
		for x := c - smileR; x <= c+smileR; x++ {
			dx, dy := x-c, y-c
			d := dx*dx + dy*dy
			if d <= smileR*smileR && d >= (smileR-thickness)*(smileR-thickness) {
				face.SetRGBA(x, y, ColorPalette.Mouth)
			}
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(out, out.Bounds(), face, face.Bounds(), xdraw.Src, nil)
	return out
}

func ring(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	outer := (r + 1) * (r + 1)
	inner := r * r
	for y := cy - r - 1; y <= cy+r+1; y++ {
		for x := cx - r - 1; x <= cx+r+1; x++ {
			dx, dy := x-cx, y-cy
			d := dx*dx + dy*dy
			if d <= outer && d > inner {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// SavePNG saves an image to a PNG file, creating parent directories.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}

// GenerateAvatar writes the placeholder avatar to path unless a file is
// already there. It reports whether a file was written.
func GenerateAvatar(path string, overwrite bool) (bool, error) {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}
	if err := SavePNG(CreateAvatar(AvatarSize), path); err != nil {
		return false, err
	}
	return true, nil
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
