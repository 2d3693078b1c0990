// Package imagefile reads canvas backgrounds from disk and writes rasterized
// canvases back as PNG or JPEG, chosen by file extension.
package imagefile

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

var (
	// ErrUnsupportedFormat is returned by Save for an extension other than
	// .png, .jpg or .jpeg. Nothing is written.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrWriteFailure wraps I/O errors from Save.
	ErrWriteFailure = errors.New("failed to write image")
	// ErrUnreadableImage wraps errors from Load.
	ErrUnreadableImage = errors.New("failed to read image")
)

// JPEGQuality is used for every JPEG written by Save.
const JPEGQuality = 95

// FileMode is the permission of files created by Save.
const FileMode os.FileMode = 0o644

type format int

const (
	formatUnknown format = iota
	formatPNG
	formatJPEG
)

var extensions = map[string]format{
	".png":  formatPNG,
	".jpg":  formatJPEG,
	".jpeg": formatJPEG,
}

// Extensions lists the file extensions Save understands.
func Extensions() []string {
	return []string{".png", ".jpg", ".jpeg"}
}

// Supported reports whether Save can write path.
func Supported(path string) bool {
	return formatOf(path) != formatUnknown
}

func formatOf(path string) format {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// Load decodes the PNG or JPEG image at path.
func Load(path string) (image.Image, error) {
	img, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrUnreadableImage, path, err)
	}
	return img, nil
}

// Save writes img to path, encoded by the extension of path. The image is
// flattened onto opaque white first. The file is written next to path under a
// temporary name and renamed into place, so a failed save leaves any existing
// file untouched.
func Save(img image.Image, path string) error {
	f := formatOf(path)
	if f == formatUnknown {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteFailure, path, err)
	}
	tmpPath := tmp.Name()
	err = tmp.Close()
	if err == nil {
		err = os.Chmod(tmpPath, fileMode(path))
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w %s: %w", ErrWriteFailure, path, err)
	}

	flat := Flatten(img)
	switch f {
	case formatPNG:
		err = gg.SavePNG(tmpPath, flat)
	case formatJPEG:
		err = gg.SaveJPG(tmpPath, flat, JPEGQuality)
	}
	if err == nil {
		err = os.Rename(tmpPath, path)
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w %s: %w", ErrWriteFailure, path, err)
	}
	return nil
}

// fileMode keeps the permissions of an existing file at path. New files get
// FileMode.
func fileMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return FileMode
}

// Flatten composites img over opaque white into a new zero-origin image.
func Flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	xdraw.Copy(out, image.Point{}, img, b, xdraw.Over, nil)
	return out
}
