// Package imagesink persists rendered spectrograms, choosing the encoder
// from the destination file extension.
package imagesink

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// FileMode is the permission set of saved images.
const FileMode os.FileMode = 0o644

// ErrUnsupportedFormat matches every [*FormatError].
var ErrUnsupportedFormat = errors.New("imagesink: unsupported image format")

// FormatError reports an extension no encoder is registered for.
type FormatError struct {
	Ext string
}

func (e *FormatError) Error() string {
	if e.Ext == "" {
		return "imagesink: unsupported image format: missing file extension"
	}
	return fmt.Sprintf("imagesink: unsupported image format %q", e.Ext)
}

// Is makes errors.Is(err, ErrUnsupportedFormat) hold.
func (e *FormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

type encodeFunc func(io.Writer, image.Image) error

var encoders = map[string]encodeFunc{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".gif":  encodeGIF,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, m image.Image) error {
	return jpeg.Encode(w, m, &jpeg.Options{Quality: 95})
}

func encodeTIFF(w io.Writer, m image.Image) error {
	return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
}

// encodeGIF maps onto a 256-level gray palette so grayscale input is stored
// without dithering.
func encodeGIF(w io.Writer, m image.Image) error {
	pal := make(color.Palette, 256)
	for i := range pal {
		pal[i] = color.Gray{Y: uint8(i)}
	}
	pm := image.NewPaletted(m.Bounds(), pal)
	draw.Draw(pm, pm.Rect, m, m.Bounds().Min, draw.Src)
	return gif.Encode(w, pm, &gif.Options{NumColors: len(pal)})
}

// Extensions lists the supported extensions in sorted order.
func Extensions() []string {
	out := make([]string, 0, len(encoders))
	for ext := range encoders {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

func lookup(path string) (encodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, &FormatError{Ext: ext}
	}
	return enc, nil
}

// Supported returns nil when path has an extension Save can encode.
func Supported(path string) error {
	_, err := lookup(path)
	return err
}

// Encode writes img to w in the format implied by name's extension.
func Encode(w io.Writer, name string, img image.Image) error {
	enc, err := lookup(name)
	if err != nil {
		return err
	}
	if err := enc(w, img); err != nil {
		return fmt.Errorf("imagesink: encode %s: %w", name, err)
	}
	return nil
}

// Save encodes img to path.
//
// The format is checked before anything is created. The image is written
// to a temporary file in the destination directory and renamed into place,
// so a failed encode never leaves a partial file at path.
func Save(path string, img image.Image) (err error) {
	enc, err := lookup(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("imagesink: create %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = enc(tmp, img); err != nil {
		return fmt.Errorf("imagesink: encode %s: %w", path, err)
	}
	if err = tmp.Chmod(FileMode); err != nil {
		return fmt.Errorf("imagesink: chmod %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("imagesink: close %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("imagesink: rename into %s: %w", path, err)
	}
	return nil
}
