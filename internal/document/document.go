// Package document ties a canvas engine to the image file it was opened from
// or last saved to.
package document

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"paint/internal/canvas"
	"paint/internal/imagefile"
)

// ErrNoLocation is returned by Save when the document has never been saved
// or opened; the caller should ask for a path and use SaveAs.
var ErrNoLocation = errors.New("document has no file location")

// PromptAnswer is the user's reply to the unsaved changes prompt.
type PromptAnswer int

const (
	AnswerYes PromptAnswer = iota
	AnswerNo
	AnswerCancel
)

type Document struct {
	Engine *canvas.Engine
	path   string
	// generation changes whenever the canvas is replaced by Clear or Open.
	generation uint64
}

// Stamp identifies the canvas state a snapshot was taken from.
type Stamp struct {
	generation uint64
	revision   uint64
}

func New(engine *canvas.Engine) *Document {
	return &Document{Engine: engine}
}

// Path returns the current file location, or "" for an untitled document.
func (d *Document) Path() string {
	return d.path
}

// Title is the base name of the file, with a trailing "*" when there are
// unsaved changes.
func (d *Document) Title() string {
	name := "untitled"
	if d.path != "" {
		name = filepath.Base(d.path)
	}
	if d.Engine.HasUnsavedChanges() {
		name += "*"
	}
	return name
}

// NeedsSavePrompt reports whether discarding the canvas would lose work.
func (d *Document) NeedsSavePrompt() bool {
	return d.Engine.HasUnsavedChanges()
}

// Clear starts a new blank canvas and forgets the file location.
func (d *Document) Clear() {
	d.Engine.Reset()
	d.path = ""
	d.generation++
}

// ClearWithSize is Clear with an explicit canvas size.
func (d *Document) ClearWithSize(width, height int) {
	d.Engine.ResetWithSize(width, height)
	d.path = ""
	d.generation++
}

// Open replaces the canvas with the image at path. On error the canvas is
// left as it was.
func (d *Document) Open(path string) error {
	img, err := imagefile.Load(path)
	if err != nil {
		canvas.Logger().Warn("open failed", "path", path, "err", err)
		return err
	}
	d.Engine.LoadBackground(img)
	d.path = path
	d.generation++
	canvas.Logger().Info("opened", "path", path)
	return nil
}

// Save writes the canvas to its current location.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoLocation
	}
	return d.SaveAs(d.path)
}

// SaveAs writes the canvas to path and makes path the current location.
func (d *Document) SaveAs(path string) error {
	img, stamp := d.Snapshot()
	return d.Commit(path, stamp, imagefile.Save(img, path))
}

// Snapshot rasterizes the canvas for a save that runs off the event loop. Pass
// the returned stamp to Commit together with the result of the write.
func (d *Document) Snapshot() (image.Image, Stamp) {
	return d.Engine.Rasterize(), Stamp{generation: d.generation, revision: d.Engine.Revision()}
}

// Commit records the outcome of writing a snapshot to path. The document
// moves to path only if the canvas was not cleared or replaced since the
// snapshot, and the unsaved changes flag is cleared only when nothing changed
// at all.
func (d *Document) Commit(path string, stamp Stamp, err error) error {
	if err != nil {
		canvas.Logger().Warn("save failed", "path", path, "err", err)
		return err
	}
	canvas.Logger().Info("saved", "path", path)
	if stamp.generation != d.generation {
		canvas.Logger().Debug("saved canvas was replaced", "path", path)
		return nil
	}
	d.path = path
	if d.Engine.Revision() == stamp.revision {
		d.Engine.MarkSaved()
	}
	return nil
}

// Resolve decides whether a pending discard of the canvas may go ahead after
// the user answered the save prompt. It saves on AnswerYes and returns
// ErrNoLocation when the document needs a path first.
func (d *Document) Resolve(answer PromptAnswer) (proceed bool, err error) {
	switch answer {
	case AnswerYes:
		if err := d.Save(); err != nil {
			return false, err
		}
		return true, nil
	case AnswerNo:
		return true, nil
	case AnswerCancel:
		return false, nil
	}
	return false, fmt.Errorf("unknown prompt answer %d", int(answer))
}
