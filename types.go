package main

import (
	"image/color"

	"paint/internal/document"
	"paint/internal/shape"
)

type model struct {
	width  int
	height int
	doc    *document.Document
	config *Config

	mode       Mode
	help       bool
	helpScroll int

	// pointerDown is set between a press and its release, whether the
	// gesture came from the mouse or the keyboard cursor.
	pointerDown bool
	lastPoint   shape.Point

	cursorX       int
	cursorY       int
	cursorVisible bool

	input             string
	fileOp            FileOperation
	fileList          []string
	selectedFileIndex int
	confirmAction     ConfirmAction
	pending           PendingAction
	afterSave         PendingAction
	overwritePath     string

	lineColorIndex int
	fillColorIndex int

	picked         *pickedColor
	cancelPick     func()
	errorMessage   string
	successMessage string
}

// pickedColor is filled in by the eyedropper observer. It lives behind a
// pointer because bubbletea copies the model on every update.
type pickedColor struct {
	color color.Color
	fresh bool
}

// savedMsg reports the end of a save started by saveCmd.
type savedMsg struct {
	path  string
	stamp document.Stamp
	err   error
}
