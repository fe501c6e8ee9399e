package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngImage(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestProcessLogoScalesDownWideImages(t *testing.T) {
	out, err := ProcessLogo(pngImage(t, 1024, 400))
	require.NoError(t, err)
	require.NotEmpty(t, out)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, MaxLogoWidth, cfg.Width)
	assert.Equal(t, 200, cfg.Height, "aspect ratio is preserved")
}

func TestProcessLogoKeepsSmallImages(t *testing.T) {
	out, err := ProcessLogo(pngImage(t, 300, 120))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 120, cfg.Height)
}

func TestProcessLogoRejectsGarbage(t *testing.T) {
	_, err := ProcessLogo(strings.NewReader("not an image"))
	assert.Error(t, err)
}
