package main

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeTextInput
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSaveAs FileOperation = iota
	FileOpOpen
)

type ConfirmAction int

const (
	ConfirmUnsaved ConfirmAction = iota
	ConfirmOverwriteFile
)

// PendingAction is what runs once the unsaved changes prompt lets it through.
type PendingAction int

const (
	PendingNone PendingAction = iota
	PendingNew
	PendingOpen
	PendingQuit
)

const (
	canvasTop     = 1 // title bar above the canvas
	chromeRows    = 2 // title bar and status line
	minLineWidth  = 1
	maxLineWidth  = 64
	minFontSize   = 8
	maxFontSize   = 200
	fontSizeStep  = 4
	defaultSaveAs = "untitled.png"
)

type swatch struct {
	name  string
	color color.Color
}

// palette is cycled by the line and fill color keys. The fill palette starts
// with "none".
var palette = []swatch{
	{"black", mustHex("#000000")},
	{"white", mustHex("#ffffff")},
	{"red", mustHex("#e53935")},
	{"orange", mustHex("#fb8c00")},
	{"yellow", mustHex("#fdd835")},
	{"green", mustHex("#43a047")},
	{"blue", mustHex("#1e88e5")},
	{"purple", mustHex("#8e24aa")},
	{"gray", mustHex("#757575")},
}

var fillPalette = append([]swatch{{"none", color.Transparent}}, palette...)

func mustHex(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
