package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestResizeImageShrinks(t *testing.T) {
	data, contentType, err := ResizeImage(bytes.NewReader(pngOf(t, 400, 200)), 100)
	require.NoError(t, err)
	require.Equal(t, "image/webp", contentType)

	cfg, err := webp.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestResizeImageDoesNotUpscale(t *testing.T) {
	data, _, err := ResizeImage(bytes.NewReader(pngOf(t, 40, 20)), 300)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
}

func TestResizeImageRejectsGarbage(t *testing.T) {
	_, _, err := ResizeImage(bytes.NewReader([]byte("not an image")), 100)
	assert.Error(t, err)
}

func TestResizeImageRejectsOversizedDimensions(t *testing.T) {
	// A uniform image compresses to a few KB whatever its size.
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, MaxImageDimension+1, 8))))

	_, _, err := ResizeImage(bytes.NewReader(buf.Bytes()), 100)
	assert.ErrorIs(t, err, ErrImageTooLarge)

	buf.Reset()
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, MaxImageDimension+1))))
	_, _, err = ResizeImage(bytes.NewReader(buf.Bytes()), 100)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}
