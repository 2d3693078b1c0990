// Package shape holds the primitives a canvas display list is made of.
//
// A Primitive is a closed tagged variant: Kind selects which geometry field is
// meaningful, and every operation dispatches on Kind with a switch.
package shape

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Image returns p truncated to integer pixel coordinates.
func (p Point) Image() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

type Kind int

const (
	KindPath Kind = iota
	KindLine
	KindRect
	KindSquare
	KindCircle
	KindEllipse
	KindText
	// KindSelection is the live marquee of a selection region. It paints only
	// its captured snapshot, never its outline.
	KindSelection
)

var kindNames = [...]string{
	KindPath:      "path",
	KindLine:      "line",
	KindRect:      "rect",
	KindSquare:    "square",
	KindCircle:    "circle",
	KindEllipse:   "ellipse",
	KindText:      "text",
	KindSelection: "selection",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Style is shared by every kind. A nil or fully transparent color is not painted,
// and a Width of zero disables the stroke.
type Style struct {
	Stroke color.Color
	Fill   color.Color
	Width  float64
}

type Line struct {
	Start, End Point
}

// Rect is anchored at X,Y; W and H are signed so that dragging up or left of the
// anchor grows the rectangle that way.
type Rect struct {
	X, Y, W, H float64
	// Image, when set, is painted with its top-left corner at the normalized origin.
	Image image.Image
}

// Bounds returns the rectangle normalized to a top-left origin and
// non-negative extent.
func (r Rect) Bounds() (x, y, w, h float64) {
	x, y, w, h = r.X, r.Y, r.W, r.H
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return x, y, w, h
}

func (r Rect) Contains(p Point) bool {
	x, y, w, h := r.Bounds()
	return p.X >= x && p.X <= x+w && p.Y >= y && p.Y <= y+h
}

type Circle struct {
	Center Point
	Radius float64
}

type Ellipse struct {
	Center Point
	RX, RY float64
}

// Text is anchored on its baseline.
type Text struct {
	Pos   Point
	Value string
	Size  float64
}

type Primitive struct {
	Kind  Kind
	Style Style

	Path    []Point
	Line    Line
	Rect    Rect
	Circle  Circle
	Ellipse Ellipse
	Text    Text
}

// New returns a primitive of kind k with zero extent at p.
func New(k Kind, p Point) *Primitive {
	prim := &Primitive{Kind: k}
	switch k {
	case KindPath:
		prim.Path = []Point{p}
	case KindLine:
		prim.Line = Line{Start: p, End: p}
	case KindRect, KindSquare, KindSelection:
		prim.Rect = Rect{X: p.X, Y: p.Y}
	case KindCircle:
		prim.Circle = Circle{Center: p}
	case KindEllipse:
		prim.Ellipse = Ellipse{Center: p}
	case KindText:
		prim.Text = Text{Pos: p}
	}
	return prim
}

// NewText returns a text primitive showing value at p.
func NewText(p Point, value string, size float64) *Primitive {
	prim := New(KindText, p)
	prim.Text.Value = value
	prim.Text.Size = size
	return prim
}

// NewFilledRect returns an unstroked rectangle painted with fill.
func NewFilledRect(x, y, w, h float64, fill color.Color) *Primitive {
	return &Primitive{
		Kind:  KindRect,
		Style: Style{Fill: fill},
		Rect:  Rect{X: x, Y: y, W: w, H: h},
	}
}

// NewImageRect returns an unstroked rectangle showing img at x,y.
func NewImageRect(x, y float64, img image.Image) *Primitive {
	size := img.Bounds().Size()
	return &Primitive{
		Kind: KindRect,
		Rect: Rect{X: x, Y: y, W: float64(size.X), H: float64(size.Y), Image: img},
	}
}

// DragTo updates the primitive for a pointer that moved to p while the
// gesture that created it is still in progress.
func (prim *Primitive) DragTo(p Point) {
	switch prim.Kind {
	case KindPath:
		prim.Path = append(prim.Path, p)
	case KindLine:
		prim.Line.End = p
	case KindRect, KindSelection:
		prim.Rect.W = p.X - prim.Rect.X
		prim.Rect.H = p.Y - prim.Rect.Y
	case KindSquare:
		r := &prim.Rect
		r.H = p.Y - r.Y
		// Same sign quadrants share the height; otherwise flip it so the
		// square still opens toward the pointer.
		if (p.X >= r.X && p.Y >= r.Y) || (p.X < r.X && p.Y < r.Y) {
			r.W = p.Y - r.Y
		} else {
			r.W = r.Y - p.Y
		}
	case KindCircle:
		prim.Circle.Radius = prim.Circle.Center.Dist(p)
	case KindEllipse:
		prim.Ellipse.RX = math.Abs(p.X - prim.Ellipse.Center.X)
		prim.Ellipse.RY = math.Abs(p.Y - prim.Ellipse.Center.Y)
	case KindText:
		prim.Text.Pos = p
	}
}

// Clone returns a copy that shares no point slice with prim. Images are
// immutable once attached and are shared.
func (prim *Primitive) Clone() *Primitive {
	c := *prim
	if prim.Path != nil {
		c.Path = append([]Point(nil), prim.Path...)
	}
	return &c
}

func (prim *Primitive) String() string {
	switch prim.Kind {
	case KindPath:
		return fmt.Sprintf("path(%d points)", len(prim.Path))
	case KindLine:
		return fmt.Sprintf("line(%v,%v -> %v,%v)", prim.Line.Start.X, prim.Line.Start.Y, prim.Line.End.X, prim.Line.End.Y)
	case KindRect, KindSquare, KindSelection:
		return fmt.Sprintf("%s(x=%v,y=%v,w=%v,h=%v)", prim.Kind, prim.Rect.X, prim.Rect.Y, prim.Rect.W, prim.Rect.H)
	case KindCircle:
		return fmt.Sprintf("circle(%v,%v r=%v)", prim.Circle.Center.X, prim.Circle.Center.Y, prim.Circle.Radius)
	case KindEllipse:
		return fmt.Sprintf("ellipse(%v,%v rx=%v ry=%v)", prim.Ellipse.Center.X, prim.Ellipse.Center.Y, prim.Ellipse.RX, prim.Ellipse.RY)
	case KindText:
		return fmt.Sprintf("text(%q at %v,%v)", prim.Text.Value, prim.Text.Pos.X, prim.Text.Pos.Y)
	}
	return prim.Kind.String()
}
