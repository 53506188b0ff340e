package storage

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestProcessPassesSmallImageThrough(t *testing.T) {
	p := NewImageProcessor()
	original := pngBytes(t, 100, 80)

	out, contentType, err := p.Process(original)
	require.NoError(t, err)

	assert.Equal(t, original, out)
	assert.Equal(t, "image/png", contentType)
}

func TestProcessDownscalesOversizedImage(t *testing.T) {
	p := NewImageProcessor()

	out, contentType, err := p.Process(pngBytes(t, 2000, 500))
	require.NoError(t, err)

	assert.Equal(t, "image/jpeg", contentType)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.LessOrEqual(t, cfg.Width, p.MaxDimension)
	assert.LessOrEqual(t, cfg.Height, p.MaxDimension)
}

func TestProcessRejectsNonImageData(t *testing.T) {
	p := NewImageProcessor()

	_, _, err := p.Process([]byte("these bytes are not an image"))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestProcessRejectsEmptyInput(t *testing.T) {
	_, _, err := NewImageProcessor().Process(nil)
	assert.ErrorIs(t, err, ErrInvalidImage)
}
