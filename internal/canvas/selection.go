package canvas

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"paint/internal/shape"
)

// selection is the rectangle used to capture a part of the canvas and move it
// around. Its marquee node lives in the display list while it is visible.
type selection struct {
	node  *shape.Primitive
	held  bool
	moved bool
	// grab is the pointer offset from the anchor while held.
	grab shape.Point
}

func newSelection() *selection {
	return &selection{node: shape.New(shape.KindSelection, shape.Point{})}
}

// reset starts a new, empty selection anchored at p.
func (s *selection) reset(p shape.Point) {
	s.node.Rect = shape.Rect{X: p.X, Y: p.Y}
	s.moved = false
}

// empty drops the captured content.
func (s *selection) empty() {
	s.node.Rect.Image = nil
}

func (s *selection) captured() image.Image {
	return s.node.Rect.Image
}

func (s *selection) contains(p shape.Point) bool {
	return s.node.Rect.Contains(p)
}

func (s *selection) grabAt(p shape.Point) {
	s.grab = p.Sub(shape.Pt(s.node.Rect.X, s.node.Rect.Y))
	s.held = true
}

func (s *selection) moveTo(p shape.Point) {
	s.moved = true
	s.node.Rect.X = p.X - s.grab.X
	s.node.Rect.Y = p.Y - s.grab.Y
}

func (s *selection) release() {
	s.held = false
}

// inner returns the pixel rectangle inside the 1 pixel border.
func (s *selection) inner() image.Rectangle {
	x, y, w, h := s.node.Rect.Bounds()
	x0, y0 := int(x)+1, int(y)+1
	iw, ih := int(w)-2, int(h)-2
	if iw <= 0 || ih <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(x0, y0, x0+iw, y0+ih)
}

// capture snapshots the pixels of src inside the border. Pixels outside src
// stay transparent. It reports false for degenerate selections.
func (s *selection) capture(src image.Image) bool {
	r := s.inner()
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return false
	}
	if !r.Overlaps(src.Bounds()) {
		return false
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Copy(dst, image.Point{}, src, r, xdraw.Src, nil)
	s.node.Rect.Image = dst
	return true
}

// content returns the captured snapshot as a permanent rectangle placed where
// the selection currently shows it, or nil when nothing was captured.
func (s *selection) content() *shape.Primitive {
	img := s.captured()
	if img == nil {
		return nil
	}
	x, y, _, _ := s.node.Rect.Bounds()
	return shape.NewImageRect(float64(int(x)+1), float64(int(y)+1), img)
}

// SelectionState describes the selection region for callers outside the engine.
type SelectionState struct {
	// Visible is true while the marquee is part of the display list.
	Visible  bool
	Captured bool
	Held     bool
	Moved    bool
	// Bounds is the normalized marquee rectangle, border included.
	Bounds image.Rectangle
}
