package imagesink

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func gradient(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x*37 + y*11) % 256)})
		}
	}
	return img
}

func TestSaveLosslessFormatsRoundTrip(t *testing.T) {
	src := gradient(13, 7)
	for _, ext := range []string{".png", ".PNG", ".bmp", ".tif", ".tiff", ".gif"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out"+ext)
			require.NoError(t, Save(path, src))

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			got, _, err := image.Decode(f)
			require.NoError(t, err)
			require.Equal(t, src.Bounds(), got.Bounds())
			for y := 0; y < 7; y++ {
				for x := 0; x < 13; x++ {
					want := src.GrayAt(x, y).Y
					g := color.GrayModel.Convert(got.At(x, y)).(color.Gray).Y
					require.Equal(t, want, g, "pixel (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestSaveJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpeg")
	require.NoError(t, Save(path, gradient(16, 16)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 16, cfg.Width)
}

func TestSaveUnsupportedCreatesNothing(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.webp", "noext"} {
		err := Save(filepath.Join(dir, name), gradient(2, 2))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)

		var fe *FormatError
		require.ErrorAs(t, err, &fe)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveMissingDirectory(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "nope", "out.png"), gradient(2, 2))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEncodeToWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "x.bmp", gradient(3, 3)))
	_, err := bmp.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, Encode(&buf, "x.tif", gradient(3, 3)))
	_, err = tiff.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
}

func TestSupportedAndExtensions(t *testing.T) {
	assert.NoError(t, Supported("a/b/c.Png"))
	assert.ErrorIs(t, Supported("c.svg"), ErrUnsupportedFormat)
	assert.Contains(t, Extensions(), ".tiff")
	assert.Len(t, Extensions(), 7)
}

func TestSaveFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, Save(path, gradient(4, 4)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, FileMode, info.Mode().Perm())
}
