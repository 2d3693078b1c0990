package imagefile

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if x < 8 {
				c = color.RGBA{R: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestSupported(t *testing.T) {
	tests := map[string]bool{
		"a.png":       true,
		"a.PNG":       true,
		"dir/b.jpg":   true,
		"c.JPEG":      true,
		"d.gif":       false,
		"noextension": false,
		"e.png.txt":   false,
	}
	for path, want := range tests {
		if got := Supported(path); got != want {
			t.Errorf("Supported(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestSavePNGRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := Save(testImage(), path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Fatalf("bounds = %v, want 16x8", b)
	}
	r, g, b, a := img.At(2, 2).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("pixel (2,2) = %v,%v,%v,%v, want red", r, g, b, a)
	}
}

func TestSaveJPEG(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.jpg", "out.jpeg"} {
		path := filepath.Join(dir, name)
		if err := Save(testImage(), path); err != nil {
			t.Fatalf("Save(%s) error = %v", name, err)
		}
		img, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", name, err)
		}
		r, g, _, _ := img.At(2, 2).RGBA()
		if r < 0xe000 || g > 0x2000 {
			t.Errorf("%s pixel (2,2) = r %x g %x, want close to red", name, r, g)
		}
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bmp")
	err := Save(testImage(), path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Save() error = %v, want ErrUnsupportedFormat", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("unsupported save left %d files behind", len(entries))
	}
}

func TestSaveWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	err := Save(testImage(), path)
	if !errors.Is(err, ErrWriteFailure) {
		t.Fatalf("Save() error = %v, want ErrWriteFailure", err)
	}
}

func TestSaveKeepsOldFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	if err := Save(testImage(), path); err != nil {
		t.Fatal(err)
	}
	before, _ := os.ReadFile(path)

	if err := Save(testImage(), filepath.Join(dir, "out.tiff")); err == nil {
		t.Fatal("expected an error")
	}
	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Error("existing file changed")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestSaveFileMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	if err := Save(testImage(), path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != FileMode {
		t.Errorf("new file mode = %v, want %v", got, FileMode)
	}

	private := filepath.Join(dir, "private.jpg")
	if err := os.WriteFile(private, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := Save(testImage(), private); err != nil {
		t.Fatal(err)
	}
	if info, err = os.Stat(private); err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Errorf("overwritten file mode = %v, want 0600 kept", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{filepath.Join(dir, "absent.png"), garbage} {
		if _, err := Load(path); !errors.Is(err, ErrUnreadableImage) {
			t.Errorf("Load(%s) error = %v, want ErrUnreadableImage", filepath.Base(path), err)
		}
	}
}

func TestFlatten(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 7, 7))
	img.SetRGBA(5, 5, color.RGBA{R: 255, A: 255})
	flat := Flatten(img)
	if flat.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", flat.Bounds())
	}
	if got := flat.RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("opaque pixel = %v", got)
	}
	if got := flat.RGBAAt(1, 1); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("transparent pixel = %v, want white", got)
	}
}
