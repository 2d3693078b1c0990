package main

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"paint/internal/shape"
)

// viewport maps terminal cells onto canvas pixels. Each cell shows two canvas
// rows through a half block, so one cell covers scale x 2*scale pixels.
type viewport struct {
	cols, rows int
	scale      float64
}

func (m *model) viewport() viewport {
	cols := max(m.width, 1)
	rows := max(m.height-chromeRows, 1)
	w, h := m.doc.Engine.Size()
	scale := math.Max(float64(w)/float64(cols), float64(h)/float64(rows*2))
	return viewport{cols: cols, rows: rows, scale: scale}
}

// toCanvas returns the canvas point under the center of screen cell (x, y).
func (v viewport) toCanvas(x, y int) shape.Point {
	return shape.Pt((float64(x)+0.5)*v.scale, (float64(y-canvasTop)*2+1)*v.scale)
}

// pixels is the size of the downscaled canvas in half-block pixels.
func (v viewport) pixels(w, h int) (int, int) {
	pw := min(int(math.Ceil(float64(w)/v.scale)), v.cols)
	ph := min(int(math.Ceil(float64(h)/v.scale)), v.rows*2)
	return max(pw, 1), max(ph, 1)
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	p := m.viewport().toCanvas(msg.X, msg.Y)
	switch msg.Type {
	case tea.MouseLeft:
		if msg.Y < canvasTop || m.pointerDown {
			return
		}
		m.cursorVisible = false
		m.pointerPress(p)
	case tea.MouseMotion:
		if m.pointerDown {
			m.pointerDrag(p)
		}
	case tea.MouseRelease:
		if m.pointerDown {
			m.pointerRelease(p)
		}
	}
}

func (m *model) pointerPress(p shape.Point) {
	m.errorMessage = ""
	m.successMessage = ""
	m.pointerDown = true
	m.lastPoint = p
	m.doc.Engine.Press(p)
	if m.picked.fresh {
		m.picked.fresh = false
		m.lineColorIndex = paletteIndex(palette, m.picked.color)
		m.successMessage = "Picked " + swatchName(palette, m.picked.color)
	}
}

func (m *model) pointerDrag(p shape.Point) {
	m.lastPoint = p
	m.doc.Engine.Drag(p)
}

func (m *model) pointerRelease(p shape.Point) {
	m.pointerDown = false
	m.doc.Engine.Release(p)
}

// endGesture finishes a gesture left open by a mode change or a dialog.
func (m *model) endGesture() {
	if m.pointerDown {
		m.pointerRelease(m.lastPoint)
	}
}

// handleCursorMove moves the keyboard cursor. While the pen is down the move
// drags the current gesture.
func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
	m.cursorVisible = true
	if m.pointerDown {
		m.pointerDrag(m.viewport().toCanvas(m.cursorX, m.cursorY))
	}
}

// togglePen presses or releases at the keyboard cursor.
func (m *model) togglePen() {
	m.ensureCursorInBounds()
	m.cursorVisible = true
	p := m.viewport().toCanvas(m.cursorX, m.cursorY)
	if m.pointerDown {
		m.pointerRelease(p)
		return
	}
	m.pointerPress(p)
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 4
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	v := m.viewport()
	m.cursorX = min(max(m.cursorX, 0), v.cols-1)
	m.cursorY = min(max(m.cursorY, canvasTop), canvasTop+v.rows-1)
}
