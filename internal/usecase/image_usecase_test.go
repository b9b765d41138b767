package usecase

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImages struct {
	data  []byte
	calls atomic.Int32
	urls  []string
}

func (f *fakeImages) FetchImage(ctx context.Context, url string) ([]byte, error) {
	f.calls.Add(1)
	f.urls = append(f.urls, url)
	return f.data, nil
}

func encodedPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestThumbnail(t *testing.T) {
	images := &fakeImages{data: encodedPNG(t, 800, 400)}
	catalog := NewCatalogUsecase(&fakeCatalog{products: testProducts}, testCache(t), testConfig())
	uc := NewImageUsecase(catalog, images, testCache(t), testConfig())

	thumb, err := uc.Thumbnail(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, thumb.Data)
	assert.Contains(t, []string{"image/webp", "image/jpeg"}, thumb.ContentType)
	assert.Equal(t, []string{"img/2"}, images.urls)

	_, err = uc.Thumbnail(context.Background(), 2, DefaultThumbnailWidth)
	require.NoError(t, err)
	assert.EqualValues(t, 1, images.calls.Load(), "same width is cached")

	_, err = uc.Thumbnail(context.Background(), 2, 5000)
	require.NoError(t, err)
	assert.EqualValues(t, 2, images.calls.Load(), "oversized width is clamped to a new size")
}

func TestThumbnailUnknownProduct(t *testing.T) {
	images := &fakeImages{data: encodedPNG(t, 10, 10)}
	catalog := NewCatalogUsecase(&fakeCatalog{products: testProducts}, testCache(t), testConfig())
	uc := NewImageUsecase(catalog, images, testCache(t), testConfig())

	_, err := uc.Thumbnail(context.Background(), 99, 100)
	assert.Error(t, err)
	assert.Zero(t, images.calls.Load())
}
