// Package imageprep normalizes captured photos into a predictable upload
// payload: downscaled to a target width and re-encoded as JPEG at a fixed
// quality, so uploads stay small on unreliable mobile networks.
package imageprep

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log/slog"

	"golang.org/x/image/draw"
)

// Prepared is a normalized image ready for upload.
type Prepared struct {
	Data   []byte
	Width  int
	Height int
	// SourceURI identifies where the raw photo came from (file path or
	// camera handle). Carried through so the results surface can show the
	// photo alongside the analysis.
	SourceURI string
}

// Preparer downsizes and re-encodes raw photos. The zero value is not
// usable; construct with New.
type Preparer struct {
	MaxWidth int
	Quality  int
}

// New returns a Preparer with the given target width and JPEG quality.
func New(maxWidth, quality int) *Preparer {
	return &Preparer{MaxWidth: maxWidth, Quality: quality}
}

// Prepare decodes raw image bytes, scales them down to MaxWidth preserving
// aspect ratio (images already narrower are not upscaled), and re-encodes as
// JPEG. The transform is deterministic: the same input and settings always
// produce the same output. A source that cannot be decoded fails the whole
// attempt; there are no partial results.
func (p *Preparer) Prepare(raw []byte, sourceURI string) (*Prepared, error) {
	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image has invalid dimensions %dx%d", width, height)
	}

	out := src
	if width > p.MaxWidth {
		scaledHeight := height * p.MaxWidth / width
		if scaledHeight < 1 {
			scaledHeight = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, p.MaxWidth, scaledHeight))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		out = dst
		width, height = p.MaxWidth, scaledHeight
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: p.Quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	slog.Debug("Image prepared",
		"source_format", format,
		"width", width,
		"height", height,
		"bytes", buf.Len())

	return &Prepared{
		Data:      buf.Bytes(),
		Width:     width,
		Height:    height,
		SourceURI: sourceURI,
	}, nil
}
