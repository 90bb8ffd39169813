package figures

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	return img
}

func writeFile(t *testing.T, path string, encode func(f *os.File) error) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, encode(f))
}

func TestAvailable(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, FiguresDir, "Indices_Primitive1.png"), func(f *os.File) error {
		return png.Encode(f, testImage(4, 4))
	})
	writeFile(t, filepath.Join(src, FiguresDir, "Indices_Primitive0.bmp"), func(f *os.File) error {
		return bmp.Encode(f, testImage(4, 4))
	})
	writeFile(t, filepath.Join(src, FiguresDir, "notes.txt"), func(f *os.File) error {
		_, err := f.WriteString("x")
		return err
	})

	names, err := Available(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"Indices_Primitive0", "Indices_Primitive1"}, names)

	names, err = Available(filepath.Join(src, "missing"))
	assert.NoError(t, err)
	assert.Empty(t, names)
	names, err = Available("")
	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestCopyFigures(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(src, FiguresDir, "Indices_Primitive0.bmp"), func(f *os.File) error {
		return bmp.Encode(f, testImage(8, 8))
	})

	written, err := CopyFigures(src, dst, []string{"Indices_Primitive0", "Indices_Primitive1"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dst, FiguresDir, "Indices_Primitive0.png")}, written)

	img, err := Decode(written[0])
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
}

func TestSampleImages(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(src, SampleImagesDir, "Mesh_Primitives_00.png"), func(f *os.File) error {
		return png.Encode(f, testImage(40, 20))
	})

	written, err := SampleImages(src, dst, []string{"Mesh_Primitives_00", "Mesh_Primitives_01"}, 10)
	require.NoError(t, err)
	require.Len(t, written, 2)

	thumb, err := Decode(filepath.Join(dst, FiguresDir, ThumbnailsDir, "Mesh_Primitives_00.png"))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 5), thumb.Bounds())

	sample, err := Decode(filepath.Join(dst, FiguresDir, SampleImagesDir, "Mesh_Primitives_00.png"))
	require.NoError(t, err)
	assert.Equal(t, 40, sample.Bounds().Dx())
}

func TestScale(t *testing.T) {
	img := testImage(10, 10)
	assert.Same(t, img, Scale(img, 10))
	assert.Same(t, img, Scale(img, 0))
	assert.Equal(t, image.Rect(0, 0, 5, 5), Scale(img, 5).Bounds())
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Decode(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))
	_, err = Decode(bad)
	assert.Error(t, err)
}
