package utils

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"io"

	"shopfront/pkg/logger"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// MaxImageDimension bounds both sides of a source image. Larger images are
// rejected before their pixels are decoded.
const MaxImageDimension = 4096

var ErrImageTooLarge = errors.New("image exceeds size limit")

// ResizeImage shrinks an image to at most maxWidth pixels wide, keeping the
// aspect ratio, and encodes it as WebP. Images are never upscaled. If WebP
// encoding fails the result is JPEG.
func ResizeImage(r io.Reader, maxWidth int) ([]byte, string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, "", err
	}
	if cfg.Width > MaxImageDimension || cfg.Height > MaxImageDimension {
		return nil, "", fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", err
	}

	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer

	// Quality 85, lossy.
	err = webp.Encode(&buf, img, &webp.Options{
		Lossless: false,
		Quality:  85,
	})
	if err != nil {
		logger.Get().Warn().Err(err).Msg("WebP encoding failed, falling back to JPEG")
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/jpeg", nil
	}

	return buf.Bytes(), "image/webp", nil
}
