package shape

import (
	"image"
	"image/color"
	"testing"

	"github.com/fogleman/gg"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func newWhite(w, h int) (*image.RGBA, *gg.Context) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	dc := gg.NewContextForRGBA(img)
	dc.SetColor(color.White)
	dc.Clear()
	return img, dc
}

func TestRectBounds(t *testing.T) {
	tests := []struct {
		r          Rect
		x, y, w, h float64
	}{
		{Rect{X: 10, Y: 10, W: 5, H: 6}, 10, 10, 5, 6},
		{Rect{X: 10, Y: 10, W: -5, H: 6}, 5, 10, 5, 6},
		{Rect{X: 10, Y: 10, W: 5, H: -6}, 10, 4, 5, 6},
		{Rect{X: 10, Y: 10, W: -5, H: -6}, 5, 4, 5, 6},
	}
	for _, tt := range tests {
		x, y, w, h := tt.r.Bounds()
		if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
			t.Errorf("%+v.Bounds() = %v,%v,%v,%v, want %v,%v,%v,%v", tt.r, x, y, w, h, tt.x, tt.y, tt.w, tt.h)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 50, Y: 50, W: -20, H: -20}
	if !r.Contains(Pt(40, 40)) {
		t.Error("point inside a negatively sized rect not contained")
	}
	if r.Contains(Pt(55, 40)) {
		t.Error("point outside contained")
	}
}

func TestNewZeroExtent(t *testing.T) {
	p := Pt(3, 4)
	for k := KindPath; k <= KindSelection; k++ {
		prim := New(k, p)
		if prim.Kind != k {
			t.Errorf("New(%v).Kind = %v", k, prim.Kind)
		}
	}
	if got := New(KindPath, p).Path; len(got) != 1 || got[0] != p {
		t.Errorf("path = %v, want [%v]", got, p)
	}
	if got := New(KindLine, p).Line; got.Start != p || got.End != p {
		t.Errorf("line = %v", got)
	}
	if got := New(KindCircle, p).Circle; got.Center != p || got.Radius != 0 {
		t.Errorf("circle = %v", got)
	}
}

func TestKindString(t *testing.T) {
	if KindEllipse.String() != "ellipse" {
		t.Errorf("KindEllipse.String() = %q", KindEllipse.String())
	}
	if Kind(42).String() != "Kind(42)" {
		t.Errorf("Kind(42).String() = %q", Kind(42).String())
	}
}

func TestCloneCopiesPath(t *testing.T) {
	prim := New(KindPath, Pt(0, 0))
	prim.DragTo(Pt(1, 1))
	c := prim.Clone()
	c.Path[0] = Pt(9, 9)
	c.DragTo(Pt(2, 2))
	if prim.Path[0] != Pt(0, 0) || len(prim.Path) != 2 {
		t.Errorf("clone shares path with its source: %v", prim.Path)
	}
}

func TestDrawFilledRect(t *testing.T) {
	img, dc := newWhite(50, 50)
	prim := NewFilledRect(30, 30, -20, -20, red)
	prim.Draw(dc)

	if got := img.RGBAAt(15, 15); got != red {
		t.Errorf("inside pixel = %v, want red", got)
	}
	if got := img.RGBAAt(5, 5); got != white {
		t.Errorf("outside pixel = %v, want white", got)
	}
}

func TestDrawStrokeOnly(t *testing.T) {
	img, dc := newWhite(50, 50)
	prim := New(KindRect, Pt(10, 10))
	prim.DragTo(Pt(40, 40))
	prim.Style = Style{Stroke: red, Fill: color.Transparent, Width: 4}
	prim.Draw(dc)

	if got := img.RGBAAt(10, 25); got != red {
		t.Errorf("edge pixel = %v, want red", got)
	}
	if got := img.RGBAAt(25, 25); got != white {
		t.Errorf("center pixel = %v, want white", got)
	}
}

func TestDrawCircleAndEllipse(t *testing.T) {
	img, dc := newWhite(100, 100)
	c := New(KindCircle, Pt(25, 25))
	c.DragTo(Pt(25, 40))
	c.Style = Style{Fill: red}
	c.Draw(dc)

	e := New(KindEllipse, Pt(70, 70))
	e.DragTo(Pt(90, 75))
	e.Style = Style{Fill: red}
	e.Draw(dc)

	if got := img.RGBAAt(25, 25); got != red {
		t.Errorf("circle center = %v, want red", got)
	}
	if got := img.RGBAAt(85, 70); got != red {
		t.Errorf("ellipse interior = %v, want red", got)
	}
	if got := img.RGBAAt(70, 79); got != white {
		t.Errorf("outside ellipse = %v, want white", got)
	}
}

func TestDrawPathAndLine(t *testing.T) {
	img, dc := newWhite(60, 60)
	path := New(KindPath, Pt(5, 10))
	path.DragTo(Pt(55, 10))
	path.Style = Style{Stroke: red, Width: 4}
	path.Draw(dc)

	line := New(KindLine, Pt(30, 20))
	line.DragTo(Pt(30, 55))
	line.Style = Style{Stroke: red, Width: 4}
	line.Draw(dc)

	if got := img.RGBAAt(30, 10); got != red {
		t.Errorf("path pixel = %v, want red", got)
	}
	if got := img.RGBAAt(30, 40); got != red {
		t.Errorf("line pixel = %v, want red", got)
	}
}

func TestDegenerateDrawsNothing(t *testing.T) {
	img, dc := newWhite(20, 20)
	for k := KindPath; k <= KindText; k++ {
		prim := New(k, Pt(10, 10))
		prim.Style = Style{Stroke: red, Fill: red, Width: 5}
		prim.Draw(dc)
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if got := img.RGBAAt(x, y); got != white {
				t.Fatalf("pixel (%d,%d) = %v after drawing zero-extent shapes", x, y, got)
			}
		}
	}
}

func TestDrawText(t *testing.T) {
	img, dc := newWhite(200, 60)
	prim := NewText(Pt(10, 45), "Hello", 40)
	prim.Style = Style{Stroke: red, Fill: color.Transparent, Width: 1}
	prim.Draw(dc)

	marked := false
	for y := 0; y < 60 && !marked; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y) != white {
				marked = true
				break
			}
		}
	}
	if !marked {
		t.Error("text left no mark")
	}
}

func TestFaceCached(t *testing.T) {
	a, err := Face(12)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Face(12)
	if a != b {
		t.Error("Face(12) built twice")
	}
}

func TestSelectionDrawsCapturedOnly(t *testing.T) {
	img, dc := newWhite(40, 40)
	sel := New(KindSelection, Pt(5, 5))
	sel.DragTo(Pt(30, 30))
	sel.Draw(dc)
	if got := img.RGBAAt(5, 5); got != white {
		t.Errorf("empty selection painted %v", got)
	}

	patch := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range patch.Pix {
		patch.Pix[i] = 255
		if i%4 == 1 || i%4 == 2 {
			patch.Pix[i] = 0
		}
	}
	sel.Rect.Image = patch
	sel.Draw(dc)
	if got := img.RGBAAt(6, 6); got != red {
		t.Errorf("captured pixel = %v, want red at the inner corner", got)
	}
	if got := img.RGBAAt(5, 5); got != white {
		t.Errorf("border pixel = %v, want white", got)
	}
}
