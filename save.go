package turtle

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// lowContrastThreshold is the smallest luminance range, as a fraction of
// full scale, that does not count as low contrast.
const lowContrastThreshold = 0.05

// SaveOption configures Grid.Save.
type SaveOption func(*saveOptions)

type saveOptions struct {
	checkContrast bool
	failOnFlat    bool
}

// WithCheckContrast logs a warning when the image is uniformly flat.
func WithCheckContrast() SaveOption {
	return func(o *saveOptions) {
		o.checkContrast = true
	}
}

// WithFailOnLowContrast makes Save return ErrLowContrast, without writing
// the file, when the image is uniformly flat.
func WithFailOnLowContrast() SaveOption {
	return func(o *saveOptions) {
		o.checkContrast = true
		o.failOnFlat = true
	}
}

type encodeFunc func(w io.Writer, m image.Image) error

// encoders maps lower-case file extensions to image encoders.
var encoders = map[string]encodeFunc{
	".png":  png.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
	".bmp":  bmp.Encode,
}

func encodeTIFF(w io.Writer, m image.Image) error {
	return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
}

// Save encodes the grid to path. The format follows the file extension:
// .png, .tif/.tiff or .bmp. Other extensions fail with ErrFormat.
func (g *Grid[T]) Save(path string, opts ...SaveOption) (err error) {
	var o saveOptions
	for _, opt := range opts {
		opt(&o)
	}

	ext := strings.ToLower(filepath.Ext(path))
	encode, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFormat, ext)
	}

	img, err := g.Image()
	if err != nil {
		return err
	}

	if o.checkContrast && isLowContrast(img) {
		if o.failOnFlat {
			return fmt.Errorf("%w: %s", ErrLowContrast, path)
		}
		Logger().Warn("turtle: saving low contrast image", "path", path)
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("turtle: save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("turtle: save %s: %w", path, cerr)
		}
	}()

	if err := encode(f, img); err != nil {
		return fmt.Errorf("turtle: encode %s: %w", path, err)
	}
	Logger().Debug("turtle: saved", "path", path, "bounds", img.Bounds().String())
	return nil
}

// isLowContrast reports whether the luminance range of img is below
// lowContrastThreshold of full scale.
func isLowContrast(img image.Image) bool {
	b := img.Bounds()
	if b.Empty() {
		return true
	}
	lo, hi := uint16(0xffff), uint16(0)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y
			lo, hi = min(lo, v), max(hi, v)
		}
	}
	return float64(hi-lo) < lowContrastThreshold*0xffff
}
