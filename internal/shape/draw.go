package shape

import (
	"image/color"

	"github.com/fogleman/gg"
)

// Draw paints the primitive onto dc. Degenerate geometry paints nothing.
func (prim *Primitive) Draw(dc *gg.Context) {
	dc.Push()
	defer dc.Pop()

	switch prim.Kind {
	case KindPath:
		if len(prim.Path) < 2 {
			return
		}
		dc.MoveTo(prim.Path[0].X, prim.Path[0].Y)
		for _, p := range prim.Path[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.SetLineCapRound()
		dc.SetLineJoinRound()
		paint(dc, Style{Stroke: prim.Style.Stroke, Width: prim.Style.Width})
	case KindLine:
		if prim.Line.Start == prim.Line.End {
			return
		}
		dc.SetLineCapButt()
		dc.DrawLine(prim.Line.Start.X, prim.Line.Start.Y, prim.Line.End.X, prim.Line.End.Y)
		paint(dc, Style{Stroke: prim.Style.Stroke, Width: prim.Style.Width})
	case KindRect, KindSquare:
		x, y, w, h := prim.Rect.Bounds()
		if prim.Rect.Image != nil {
			dc.DrawImage(prim.Rect.Image, int(x), int(y))
		}
		if w == 0 || h == 0 {
			return
		}
		dc.DrawRectangle(x, y, w, h)
		paint(dc, prim.Style)
	case KindCircle:
		if prim.Circle.Radius <= 0 {
			return
		}
		dc.DrawCircle(prim.Circle.Center.X, prim.Circle.Center.Y, prim.Circle.Radius)
		paint(dc, prim.Style)
	case KindEllipse:
		if prim.Ellipse.RX <= 0 || prim.Ellipse.RY <= 0 {
			return
		}
		dc.DrawEllipse(prim.Ellipse.Center.X, prim.Ellipse.Center.Y, prim.Ellipse.RX, prim.Ellipse.RY)
		paint(dc, prim.Style)
	case KindText:
		drawText(dc, prim)
	case KindSelection:
		if prim.Rect.Image == nil {
			return
		}
		x, y, _, _ := prim.Rect.Bounds()
		dc.DrawImage(prim.Rect.Image, int(x)+1, int(y)+1)
	}
}

// DrawMarquee strokes the dashed outline of a selection. Other kinds are ignored.
func (prim *Primitive) DrawMarquee(dc *gg.Context) {
	if prim.Kind != KindSelection {
		return
	}
	x, y, w, h := prim.Rect.Bounds()
	if w == 0 && h == 0 {
		return
	}
	dc.Push()
	defer dc.Pop()
	dc.SetDash(2, 2)
	dc.SetLineCapButt()
	dc.DrawRectangle(x+0.5, y+0.5, w, h)
	paint(dc, Style{Stroke: color.Black, Width: 1})
}

func drawText(dc *gg.Context, prim *Primitive) {
	if prim.Text.Value == "" || prim.Text.Size <= 0 {
		return
	}
	face, err := Face(prim.Text.Size)
	if err != nil {
		return
	}
	c := prim.Style.Fill
	if !Visible(c) {
		c = prim.Style.Stroke
	}
	if !Visible(c) {
		return
	}
	dc.SetFontFace(face)
	dc.SetColor(c)
	dc.DrawString(prim.Text.Value, prim.Text.Pos.X, prim.Text.Pos.Y)
}

// paint fills then strokes the current path and clears it.
func paint(dc *gg.Context, s Style) {
	if Visible(s.Fill) {
		dc.SetColor(s.Fill)
		dc.FillPreserve()
	}
	if Visible(s.Stroke) && s.Width > 0 {
		dc.SetColor(s.Stroke)
		dc.SetLineWidth(s.Width)
		dc.StrokePreserve()
	}
	dc.ClearPath()
}

// Visible reports whether c would leave a mark.
func Visible(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a > 0
}
