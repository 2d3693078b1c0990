package canvas

import (
	"fmt"
	"image/color"
)

// Mode decides what a pointer gesture does.
type Mode int

const (
	ModeDraw Mode = iota
	ModeErase
	ModeSelect
	ModeEyedropper
)

func (m Mode) String() string {
	switch m {
	case ModeDraw:
		return "draw"
	case ModeErase:
		return "erase"
	case ModeSelect:
		return "select"
	case ModeEyedropper:
		return "eyedropper"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Pen is the shape drawn in ModeDraw. ModeErase always uses PenFreehand.
type Pen int

const (
	PenFreehand Pen = iota
	PenLine
	PenRect
	PenSquare
	PenCircle
	PenEllipse
	PenText
)

// Pens lists every pen in toolbar order.
var Pens = []Pen{PenFreehand, PenLine, PenRect, PenSquare, PenCircle, PenEllipse, PenText}

func (p Pen) String() string {
	switch p {
	case PenFreehand:
		return "freehand"
	case PenLine:
		return "line"
	case PenRect:
		return "rect"
	case PenSquare:
		return "square"
	case PenCircle:
		return "circle"
	case PenEllipse:
		return "ellipse"
	case PenText:
		return "text"
	}
	return fmt.Sprintf("Pen(%d)", int(p))
}

const (
	DefaultWidth    = 800
	DefaultHeight   = 800
	DefaultFontSize = 40

	// eraserScale multiplies the line width for eraser strokes.
	eraserScale = 5
)

// Config is the tool state read by the gesture handlers. The setters on Engine
// assign its fields without validation.
type Config struct {
	Mode      Mode
	Pen       Pen
	LineColor color.Color
	FillColor color.Color
	LineWidth float64
	FontSize  float64
	// Text is the string the text pen places.
	Text string
}

// DefaultConfig draws black freehand lines of width 1 with no fill.
func DefaultConfig() Config {
	return Config{
		Mode:      ModeDraw,
		Pen:       PenFreehand,
		LineColor: color.Black,
		FillColor: color.Transparent,
		LineWidth: 1,
		FontSize:  DefaultFontSize,
	}
}
