package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// ErrInvalidImage is returned when uploaded bytes do not decode as a
// supported image format.
var ErrInvalidImage = errors.New("invalid image data")

const (
	// Longer edge of a stored profile picture never exceeds this.
	defaultMaxDimension = 512
	defaultJPEGQuality  = 85
)

// ImageProcessor validates profile picture uploads and downscales oversized
// ones before they reach the blob store.
type ImageProcessor struct {
	MaxDimension int
	JPEGQuality  int
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{
		MaxDimension: defaultMaxDimension,
		JPEGQuality:  defaultJPEGQuality,
	}
}

// Process validates the upload and returns the bytes to store plus their
// content type. Images already within bounds pass through untouched; larger
// ones are fitted into MaxDimension and re-encoded as JPEG.
func (p *ImageProcessor) Process(data []byte) ([]byte, string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", ErrInvalidImage
	}

	if cfg.Width <= p.MaxDimension && cfg.Height <= p.MaxDimension {
		return data, contentTypeFor(format), nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", ErrInvalidImage
	}

	resized := imaging.Fit(img, p.MaxDimension, p.MaxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.JPEGQuality}); err != nil {
		return nil, "", fmt.Errorf("encode resized image: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

func contentTypeFor(format string) string {
	switch format {
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
