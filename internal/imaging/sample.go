package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/ycbcr-tools-mcp/internal/ycbcr"
)

// ErrNotYCbCr is returned when an image stores no YCbCr samples to read.
var ErrNotYCbCr = errors.New("image does not store YCbCr samples")

// neutralChroma is the Cb/Cr value of a single-component (grayscale) JFIF image.
const neutralChroma = 128

// SampleResult is the YCbCr value stored at one pixel.
type SampleResult struct {
	X    int     `json:"x"`
	Y    int     `json:"y"`
	Luma float64 `json:"luma"` // Y channel (0-255)
	Cb   float64 `json:"cb"`   // Blue-difference chroma (0-255)
	Cr   float64 `json:"cr"`   // Red-difference chroma (0-255)
	Text string  `json:"text"` // Debug rendering, e.g. "YCbCr(Y=16, Cb=128, Cr=128)"

	color ycbcr.Color
}

// Color returns the sample as a ycbcr.Color.
func (r *SampleResult) Color() ycbcr.Color {
	return r.color
}

func newSampleResult(x, y int, c ycbcr.Color) *SampleResult {
	return &SampleResult{
		X:     x,
		Y:     y,
		Luma:  c.Y(),
		Cb:    c.Cb(),
		Cr:    c.Cr(),
		Text:  c.String(),
		color: c,
	}
}

// SampleYCbCr reads the YCbCr value stored at a pixel coordinate.
//
// Parameters:
//   - img: The source image. Typically a decoded JPEG.
//   - x, y: Pixel coordinate (0-based, origin at top-left).
//
// Returns:
//   - *SampleResult: The stored Y, Cb and Cr channels.
//   - error: Non-nil if (x, y) is outside the image bounds, or wrapping
//     ErrNotYCbCr if the image keeps its pixels in another color model.
//
// # Supported Images
//
//   - *image.YCbCr and *image.NYCbCrA: read from the Y, Cb and Cr planes,
//     honoring chroma subsampling.
//   - *image.Gray: the JFIF single-component case. Y is the gray level and
//     Cb = Cr = 128.
//   - Any other image whose At() returns a color.YCbCr.
//
// No RGB to YCbCr conversion is performed.
func SampleYCbCr(img image.Image, x, y int) (*SampleResult, error) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	var c ycbcr.Color
	switch m := img.(type) {
	case *image.YCbCr:
		c = ycbcr.FromYCbCr(m.YCbCrAt(x, y))
	case *image.NYCbCrA:
		c = ycbcr.FromYCbCr(m.YCbCrAt(x, y))
	case *image.Gray:
		c = ycbcr.New(float64(m.GrayAt(x, y).Y), neutralChroma, neutralChroma)
	default:
		stored, ok := img.At(x, y).(color.YCbCr)
		if !ok {
			return nil, fmt.Errorf("%w (color model %T)", ErrNotYCbCr, img)
		}
		c = ycbcr.FromYCbCr(stored)
	}

	return newSampleResult(x, y, c), nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledSample combines a sample with its optional label.
type LabeledSample struct {
	Label  string       `json:"label,omitempty"`
	Sample SampleResult `json:"sample"`
}

// MultiSampleResult contains samples from multiple points, in input order.
type MultiSampleResult struct {
	Samples []LabeledSample `json:"samples"`

	// Distinct is the number of different YCbCr values among the samples.
	Distinct int `json:"distinct"`
}

// SampleYCbCrMulti reads the YCbCr values at several coordinates in one call.
//
// On error no partial results are returned.
func SampleYCbCrMulti(img image.Image, points []LabeledPoint) (*MultiSampleResult, error) {
	samples := make([]LabeledSample, 0, len(points))
	seen := make(map[ycbcr.Color]struct{}, len(points))

	for _, p := range points {
		s, err := SampleYCbCr(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		seen[s.Color()] = struct{}{}
		samples = append(samples, LabeledSample{Label: p.Label, Sample: *s})
	}

	return &MultiSampleResult{Samples: samples, Distinct: len(seen)}, nil
}
