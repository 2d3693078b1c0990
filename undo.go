package main

import (
	"fmt"
	"image/color"

	"paint/internal/canvas"
)

func (m *model) undo() {
	m.endGesture()
	if !m.doc.Engine.CanUndo() {
		m.errorMessage = "Nothing to undo"
		return
	}
	m.doc.Engine.Undo()
	m.successMessage = ""
}

func (m *model) redo() {
	m.endGesture()
	if !m.doc.Engine.CanRedo() {
		m.errorMessage = "Nothing to redo"
		return
	}
	m.doc.Engine.Redo()
	m.successMessage = ""
}

func (m *model) setMode(mode canvas.Mode) {
	m.endGesture()
	m.doc.Engine.SetMode(mode)
	m.successMessage = fmt.Sprintf("Mode: %s", mode)
}

func (m *model) setPen(pen canvas.Pen) {
	m.endGesture()
	m.doc.Engine.SetPen(pen)
	if m.doc.Engine.Mode() != canvas.ModeDraw {
		m.doc.Engine.SetMode(canvas.ModeDraw)
	}
	m.successMessage = fmt.Sprintf("Pen: %s", pen)
}

func (m *model) adjustLineWidth(delta float64) {
	w := min(max(m.doc.Engine.LineWidth()+delta, minLineWidth), maxLineWidth)
	m.doc.Engine.SetLineWidth(w)
	m.successMessage = fmt.Sprintf("Line width %.0f", w)
}

func (m *model) adjustFontSize(delta float64) {
	s := min(max(m.doc.Engine.FontSize()+delta, minFontSize), maxFontSize)
	m.doc.Engine.SetFontSize(s)
	m.successMessage = fmt.Sprintf("Font size %.0f", s)
}

func (m *model) cycleLineColor(step int) {
	m.lineColorIndex = cycle(m.lineColorIndex, step, len(palette))
	s := palette[m.lineColorIndex]
	m.doc.Engine.SetLineColor(s.color)
	m.successMessage = "Line color " + s.name
}

func (m *model) cycleFillColor(step int) {
	m.fillColorIndex = cycle(m.fillColorIndex, step, len(fillPalette))
	s := fillPalette[m.fillColorIndex]
	m.doc.Engine.SetFillColor(s.color)
	m.successMessage = "Fill color " + s.name
}

// cycle steps i around n entries. A negative i (a custom color) restarts at
// the first or last entry.
func cycle(i, step, n int) int {
	if i < 0 {
		if step > 0 {
			return 0
		}
		return n - 1
	}
	return ((i+step)%n + n) % n
}

func paletteIndex(list []swatch, c color.Color) int {
	want := hexOf(c)
	for i, s := range list {
		if hexOf(s.color) == want {
			return i
		}
	}
	return -1
}
