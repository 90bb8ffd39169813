// Package figures copies the explanatory figures and sample images of a
// group next to its models, and scales sample images into thumbnails.
package figures

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/blezek/tga"
	_ "github.com/oov/psd"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/stevk/glTF-Asset-Generator/logger"
)

// Source directory layout.
const (
	FiguresDir      = "Figures"
	SampleImagesDir = "SampleImages"
	ThumbnailsDir   = "Thumbnails"
)

const DefaultThumbnailWidth = 72

var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tga", ".psd"}

func supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Decode reads any supported image format.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil && strings.ToLower(filepath.Ext(path)) == ".tga" {
		// tga has no magic number to register
		if _, serr := f.Seek(0, io.SeekStart); serr != nil {
			return nil, serr
		}
		img, err = tga.Decode(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return img, nil
}

// Find returns the image called name in dir, whatever its extension.
func Find(dir, name string) (string, bool) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Available lists the figure names found in srcDir/Figures. A missing
// directory has no figures.
func Available(srcDir string) ([]string, error) {
	if srcDir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(filepath.Join(srcDir, FiguresDir))
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "list figures")
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && supported(e.Name()) {
			names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
		}
	}
	sort.Strings(names)
	return names, nil
}

// Scale resizes img to width, keeping its aspect ratio.
func Scale(img image.Image, width int) image.Image {
	rect := img.Bounds()
	if width <= 0 || rect.Dx() == 0 || rect.Dx() == width {
		return img
	}
	height := rect.Dy() * width / rect.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, rect, draw.Over, nil)
	return dst
}

func writePNG(path string, img image.Image) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

// CopyFigures writes every named figure of srcDir/Figures as
// dstDir/Figures/<name>.png. Missing figures are logged and skipped.
func CopyFigures(srcDir, dstDir string, names []string) ([]string, error) {
	var written []string
	for _, name := range names {
		src, ok := Find(filepath.Join(srcDir, FiguresDir), name)
		if !ok {
			logger.Log.Warn("figure missing", zap.String("figure", name))
			continue
		}
		img, err := Decode(src)
		if err != nil {
			return written, err
		}
		dst := filepath.Join(dstDir, FiguresDir, name+".png")
		if err := writePNG(dst, img); err != nil {
			return written, errors.Wrapf(err, "write %s", dst)
		}
		written = append(written, dst)
	}
	return written, nil
}

// SampleImages copies the sample image of every model found in
// srcDir/SampleImages to dstDir/Figures/SampleImages and writes a thumbnail
// of it to dstDir/Figures/Thumbnails. Models without a sample image are
// skipped.
func SampleImages(srcDir, dstDir string, models []string, width int) ([]string, error) {
	if width <= 0 {
		width = DefaultThumbnailWidth
	}
	var written []string
	for _, name := range models {
		src, ok := Find(filepath.Join(srcDir, SampleImagesDir), name)
		if !ok {
			logger.Log.Debug("no sample image", zap.String("model", name))
			continue
		}
		img, err := Decode(src)
		if err != nil {
			return written, err
		}
		sample := filepath.Join(dstDir, FiguresDir, SampleImagesDir, name+".png")
		thumb := filepath.Join(dstDir, FiguresDir, ThumbnailsDir, name+".png")
		if err := writePNG(sample, img); err != nil {
			return written, errors.Wrapf(err, "write %s", sample)
		}
		if err := writePNG(thumb, Scale(img, width)); err != nil {
			return written, errors.Wrapf(err, "write %s", thumb)
		}
		written = append(written, sample, thumb)
	}
	return written, nil
}
