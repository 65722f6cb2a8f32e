package imaging

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

const (
	// MaxWidth is the largest width stored for report photos
	MaxWidth = 1600
	// MaxHeight is the largest height stored for report photos
	MaxHeight = 1600

	jpegQuality = 85
)

// Processor validates and downscales uploaded report photos
type Processor struct{}

// NewProcessor creates a new image processor
func NewProcessor() *Processor {
	return &Processor{}
}

// Process decodes the image, downscales it to fit within MaxWidth x MaxHeight
// and re-encodes it as JPEG. Returns the processed bytes.
func (p *Processor) Process(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxWidth || bounds.Dy() > MaxHeight {
		img = imaging.Fit(img, MaxWidth, MaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}
