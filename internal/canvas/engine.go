// Package canvas turns pointer gestures into an ordered display list of shapes
// with linear undo and redo.
//
// An Engine is driven by one event loop: it is not safe for concurrent use.
// Every gesture is a Press, zero or more Drag calls, then a Release.
package canvas

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"paint/internal/shape"
)

type Engine struct {
	cfg Config

	width, height int
	// list holds the display list; list[0] is the background.
	list   []*shape.Primitive
	undone []*shape.Primitive
	sel    *selection

	// active is the primitive created by the gesture in progress.
	active *shape.Primitive
	// latched is the text accepted by the text pen so far.
	latched string

	dirty    bool
	revision uint64

	colorSubs []colorSubscription
	nextSubID int
}

// New returns an engine with a blank white canvas of the default size.
func New(cfg Config) *Engine {
	e := &Engine{
		cfg:     cfg,
		sel:     newSelection(),
		latched: cfg.Text,
	}
	e.Reset()
	return e
}

func (e *Engine) Config() Config         { return e.cfg }
func (e *Engine) Mode() Mode             { return e.cfg.Mode }
func (e *Engine) Pen() Pen               { return e.cfg.Pen }
func (e *Engine) LineColor() color.Color { return e.cfg.LineColor }
func (e *Engine) FillColor() color.Color { return e.cfg.FillColor }
func (e *Engine) LineWidth() float64     { return e.cfg.LineWidth }
func (e *Engine) FontSize() float64      { return e.cfg.FontSize }
func (e *Engine) PendingText() string    { return e.cfg.Text }

func (e *Engine) SetPen(p Pen)               { e.cfg.Pen = p }
func (e *Engine) SetLineColor(c color.Color) { e.cfg.LineColor = c }
func (e *Engine) SetFillColor(c color.Color) { e.cfg.FillColor = c }
func (e *Engine) SetLineWidth(w float64)     { e.cfg.LineWidth = w }
func (e *Engine) SetFontSize(s float64)      { e.cfg.FontSize = s }
func (e *Engine) SetPendingText(s string)    { e.cfg.Text = s }

// SetMode switches the interaction mode. Leaving ModeSelect prints captured
// content onto the canvas and hides the marquee.
func (e *Engine) SetMode(m Mode) {
	e.cfg.Mode = m
	if m == ModeSelect {
		return
	}
	e.sel.release()
	if e.indexOf(e.sel.node) < 0 {
		return
	}
	if content := e.sel.content(); content != nil {
		e.list = append(e.list, content)
		e.sel.empty()
		Logger().Debug("selection flushed", "reason", "mode change")
	}
	e.remove(e.sel.node)
	e.revision++
}

// Size returns the canvas size in pixels.
func (e *Engine) Size() (width, height int) {
	return e.width, e.height
}

// Len returns the display list length, background included.
func (e *Engine) Len() int {
	return len(e.list)
}

// Primitives returns a copy of the display list.
func (e *Engine) Primitives() []*shape.Primitive {
	out := make([]*shape.Primitive, len(e.list))
	for i, prim := range e.list {
		out[i] = prim.Clone()
	}
	return out
}

func (e *Engine) Selection() SelectionState {
	x, y, w, h := e.sel.node.Rect.Bounds()
	return SelectionState{
		Visible:  e.indexOf(e.sel.node) >= 0,
		Captured: e.sel.captured() != nil,
		Held:     e.sel.held,
		Moved:    e.sel.moved,
		Bounds:   image.Rect(int(x), int(y), int(x+w), int(y+h)),
	}
}

func (e *Engine) CanUndo() bool {
	return len(e.list) > 1
}

func (e *Engine) CanRedo() bool {
	return len(e.undone) > 0
}

func (e *Engine) HasUnsavedChanges() bool {
	return e.dirty
}

// MarkSaved clears the unsaved changes flag after a successful save.
func (e *Engine) MarkSaved() {
	e.dirty = false
}

// Revision increases with every change to the display list or the gesture
// state. Callers that save asynchronously compare it before MarkSaved.
func (e *Engine) Revision() uint64 {
	return e.revision
}

// Undo moves the topmost primitive onto the redo stack. The background stays.
func (e *Engine) Undo() {
	if !e.CanUndo() {
		return
	}
	last := e.list[len(e.list)-1]
	e.list = e.list[:len(e.list)-1]
	e.undone = append(e.undone, last)
	if last == e.active {
		e.active = nil
	}
	if last == e.sel.node {
		e.sel.release()
	}
	e.dirty = true
	e.revision++
	Logger().Debug("undo", "primitive", last.String(), "remaining", len(e.list))
}

// Redo puts the most recently undone primitive back on top.
func (e *Engine) Redo() {
	if !e.CanRedo() {
		return
	}
	last := e.undone[len(e.undone)-1]
	e.undone = e.undone[:len(e.undone)-1]
	e.list = append(e.list, last)
	e.dirty = true
	e.revision++
	Logger().Debug("redo", "primitive", last.String(), "remaining", len(e.undone))
}

// Reset clears the canvas to white at the default size.
func (e *Engine) Reset() {
	e.ResetWithSize(DefaultWidth, DefaultHeight)
}

// ResetWithSize clears the canvas to white at the given size.
func (e *Engine) ResetWithSize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	e.reset(width, height, shape.NewFilledRect(0, 0, float64(width), float64(height), color.White))
}

// LoadBackground clears the canvas and uses img as its background. The canvas
// takes the size of img.
func (e *Engine) LoadBackground(img image.Image) {
	b := img.Bounds()
	if b.Min != (image.Point{}) {
		rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Copy(rgba, image.Point{}, img, b, xdraw.Src, nil)
		img = rgba
	}
	size := img.Bounds().Size()
	e.reset(max(size.X, 1), max(size.Y, 1), shape.NewImageRect(0, 0, img))
}

func (e *Engine) reset(width, height int, background *shape.Primitive) {
	e.width, e.height = width, height
	e.list = []*shape.Primitive{background}
	e.undone = nil
	e.active = nil
	e.sel.empty()
	e.sel.release()
	e.dirty = false
	e.revision++
	Logger().Info("canvas reset", "width", width, "height", height)
}

// Press starts a gesture at p.
func (e *Engine) Press(p shape.Point) {
	e.active = nil
	switch e.cfg.Mode {
	case ModeSelect:
		e.pressSelect(p)
	case ModeEyedropper:
		e.pick(p)
	default:
		e.pressDraw(p)
	}

	// Any press counts as an edit and ends the redo history.
	e.dirty = true
	e.undone = nil
	e.revision++
}

func (e *Engine) pressSelect(p shape.Point) {
	idx := e.indexOf(e.sel.node)
	if idx < 0 {
		// An undone marquee takes its snapshot with it.
		e.sel.release()
		e.sel.empty()
	} else if e.sel.contains(p) {
		e.sel.grabAt(p)
	}

	if e.sel.held {
		if !e.sel.moved {
			// Leave blank canvas behind the content about to move.
			x, y, w, h := e.sel.node.Rect.Bounds()
			e.insert(idx, shape.NewFilledRect(x, y, w, h, color.White))
		}
		return
	}

	if content := e.sel.content(); content != nil {
		e.remove(e.sel.node)
		e.list = append(e.list, content)
		Logger().Debug("selection flushed", "reason", "new selection")
	} else if idx >= 0 {
		e.remove(e.sel.node)
	}
	e.sel.reset(p)
}

func (e *Engine) pick(p shape.Point) {
	img := e.render(false)
	pt := p.Image()
	if !pt.In(img.Bounds()) {
		Logger().Debug("eyedropper outside canvas", "x", p.X, "y", p.Y)
		return
	}
	c := img.RGBAAt(pt.X, pt.Y)
	e.cfg.LineColor = c
	Logger().Debug("color picked", "x", pt.X, "y", pt.Y, "color", c)
	e.notifyColorPicked(c)
}

func (e *Engine) pressDraw(p shape.Point) {
	if e.cfg.Mode == ModeDraw && e.cfg.Pen == PenText && e.latched == "" {
		e.latched = e.cfg.Text
		return
	}

	pen := e.cfg.Pen
	if e.cfg.Mode == ModeErase {
		pen = PenFreehand
	}

	prim := shape.New(pen.kind(), p)
	switch {
	case e.cfg.Mode == ModeErase:
		prim.Style = shape.Style{Stroke: color.White, Fill: color.Transparent, Width: e.cfg.LineWidth * eraserScale}
	case pen == PenText:
		prim.Text.Value = e.cfg.Text
		prim.Text.Size = e.cfg.FontSize
		prim.Style = shape.Style{Stroke: e.cfg.LineColor, Fill: e.cfg.FillColor, Width: 1}
	case pen == PenFreehand:
		prim.Style = shape.Style{Stroke: e.cfg.LineColor, Fill: color.Transparent, Width: e.cfg.LineWidth}
	default:
		prim.Style = shape.Style{Stroke: e.cfg.LineColor, Fill: e.cfg.FillColor, Width: e.cfg.LineWidth}
	}

	e.list = append(e.list, prim)
	e.active = prim
	Logger().Debug("shape started", "kind", prim.Kind.String(), "x", p.X, "y", p.Y)
}

// Drag continues the gesture at p.
func (e *Engine) Drag(p shape.Point) {
	switch e.cfg.Mode {
	case ModeSelect:
		if e.sel.held {
			e.sel.moveTo(p)
			break
		}
		e.sel.node.DragTo(p)
		if e.indexOf(e.sel.node) < 0 {
			e.list = append(e.list, e.sel.node)
		}
	case ModeEyedropper:
		return
	default:
		if e.active == nil {
			return
		}
		e.active.DragTo(p)
	}
	e.revision++
}

// Release ends the gesture at p. In ModeSelect an uncaptured selection takes
// a snapshot of the canvas under it.
func (e *Engine) Release(p shape.Point) {
	e.active = nil
	if e.cfg.Mode != ModeSelect {
		return
	}
	e.sel.release()
	if e.sel.captured() != nil || e.indexOf(e.sel.node) < 0 {
		return
	}
	if e.sel.capture(e.render(false)) {
		e.revision++
		Logger().Debug("selection captured", "bounds", e.sel.inner().String())
	}
}

// Rasterize composites the display list into an image of the canvas size. A
// selection without captured content leaves no mark.
func (e *Engine) Rasterize() *image.RGBA {
	return e.render(false)
}

// Preview is Rasterize plus the dashed outline of the selection marquee.
func (e *Engine) Preview() *image.RGBA {
	return e.render(true)
}

func (e *Engine) render(marquee bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, e.width, e.height))
	dc := gg.NewContextForRGBA(img)
	for _, prim := range e.list {
		prim.Draw(dc)
	}
	if marquee && e.indexOf(e.sel.node) >= 0 {
		e.sel.node.DrawMarquee(dc)
	}
	return img
}

func (e *Engine) indexOf(prim *shape.Primitive) int {
	for i, p := range e.list {
		if p == prim {
			return i
		}
	}
	return -1
}

func (e *Engine) insert(i int, prim *shape.Primitive) {
	e.list = append(e.list, nil)
	copy(e.list[i+1:], e.list[i:])
	e.list[i] = prim
}

func (e *Engine) remove(prim *shape.Primitive) {
	if i := e.indexOf(prim); i >= 0 {
		e.list = append(e.list[:i], e.list[i+1:]...)
	}
}

func (p Pen) kind() shape.Kind {
	switch p {
	case PenLine:
		return shape.KindLine
	case PenRect:
		return shape.KindRect
	case PenSquare:
		return shape.KindSquare
	case PenCircle:
		return shape.KindCircle
	case PenEllipse:
		return shape.KindEllipse
	case PenText:
		return shape.KindText
	}
	return shape.KindPath
}
