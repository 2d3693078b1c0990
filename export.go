package main

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"paint/internal/canvas"
	"paint/internal/document"
	"paint/internal/imagefile"
)

// saveCmd rasterizes now and writes the file off the event loop.
func (m *model) saveCmd(path string) tea.Cmd {
	img, stamp := m.doc.Snapshot()
	return func() tea.Msg {
		return savedMsg{path: path, stamp: stamp, err: imagefile.Save(img, path)}
	}
}

// save writes to the current location, or asks for one first.
func (m *model) save() tea.Cmd {
	m.endGesture()
	if m.doc.Path() == "" {
		m.startFileInput(FileOpSaveAs)
		return nil
	}
	return m.saveCmd(m.doc.Path())
}

func (m *model) handleSaved(msg savedMsg) tea.Cmd {
	if err := m.doc.Commit(msg.path, msg.stamp, msg.err); err != nil {
		m.errorMessage = describeError(err)
		m.afterSave = PendingNone
		return nil
	}
	m.errorMessage = ""
	m.successMessage = "Saved " + filepath.Base(msg.path)
	next := m.afterSave
	m.afterSave = PendingNone
	return m.runPending(next)
}

func (m *model) startFileInput(op FileOperation) {
	m.endGesture()
	m.mode = ModeFileInput
	m.fileOp = op
	m.errorMessage = ""
	m.successMessage = ""
	m.input = ""
	m.scanImageFiles()
	if op == FileOpSaveAs {
		m.input = defaultSaveAs
		if p := m.doc.Path(); p != "" {
			m.input = filepath.Base(p)
		}
	}
}

// submitFile runs the file operation for the name typed or picked.
func (m *model) submitFile() tea.Cmd {
	name := strings.TrimSpace(m.input)
	if name == "" {
		m.errorMessage = "Please enter a filename"
		return nil
	}
	path := m.config.GetSavePath(name)

	switch m.fileOp {
	case FileOpOpen:
		if err := m.doc.Open(path); err != nil {
			m.errorMessage = describeError(err)
			return nil
		}
		m.syncPaletteIndexes()
		m.mode = ModeNormal
		m.successMessage = "Opened " + filepath.Base(path)
		return nil
	case FileOpSaveAs:
		if filepath.Ext(path) == "" {
			path += ".png"
		}
		if !imagefile.Supported(path) {
			m.errorMessage = "Unsupported format, use " + strings.Join(imagefile.Extensions(), " ")
			return nil
		}
		if path != m.doc.Path() {
			if _, err := os.Stat(path); err == nil {
				m.mode = ModeConfirm
				m.confirmAction = ConfirmOverwriteFile
				m.overwritePath = path
				return nil
			}
		}
		m.mode = ModeNormal
		return m.saveCmd(path)
	}
	return nil
}

// requestDiscard asks about unsaved changes before running action.
func (m *model) requestDiscard(action PendingAction) tea.Cmd {
	m.endGesture()
	if !m.doc.NeedsSavePrompt() {
		return m.runPending(action)
	}
	m.mode = ModeConfirm
	m.confirmAction = ConfirmUnsaved
	m.pending = action
	return nil
}

func (m *model) answerUnsaved(answer document.PromptAnswer) tea.Cmd {
	action := m.pending
	m.pending = PendingNone
	m.mode = ModeNormal

	proceed, err := m.doc.Resolve(answer)
	switch {
	case errors.Is(err, document.ErrNoLocation):
		m.afterSave = action
		m.startFileInput(FileOpSaveAs)
		return nil
	case err != nil:
		m.errorMessage = describeError(err)
		return nil
	case !proceed:
		return nil
	}
	return m.runPending(action)
}

func (m *model) runPending(action PendingAction) tea.Cmd {
	switch action {
	case PendingNew:
		m.doc.ClearWithSize(m.config.Width, m.config.Height)
		m.successMessage = "New canvas"
	case PendingOpen:
		m.startFileInput(FileOpOpen)
	case PendingQuit:
		return tea.Quit
	}
	return nil
}

func (m *model) syncPaletteIndexes() {
	m.lineColorIndex = paletteIndex(palette, m.doc.Engine.LineColor())
	m.fillColorIndex = paletteIndex(fillPalette, m.doc.Engine.FillColor())
}

// scanImageFiles lists the images in the save directory, or the working
// directory when none is configured.
func (m *model) scanImageFiles() {
	m.fileList = nil
	m.selectedFileIndex = -1

	dir := m.config.SaveDirectory
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return
		}
		dir = wd
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() && imagefile.Supported(entry.Name()) {
			m.fileList = append(m.fileList, entry.Name())
		}
	}
	sort.Strings(m.fileList)
}

// selectFile moves through the file list and copies the choice into the input.
func (m *model) selectFile(step int) {
	if len(m.fileList) == 0 {
		return
	}
	m.selectedFileIndex = cycle(m.selectedFileIndex, step, len(m.fileList))
	m.input = m.fileList[m.selectedFileIndex]
}

func describeError(err error) string {
	switch {
	case errors.Is(err, imagefile.ErrUnsupportedFormat):
		return "Unsupported image format"
	case errors.Is(err, imagefile.ErrUnreadableImage):
		return "Could not read image"
	case errors.Is(err, imagefile.ErrWriteFailure):
		return "Could not write file"
	case errors.Is(err, document.ErrNoLocation):
		return "No file name"
	}
	canvas.Logger().Error("unexpected error", "err", err)
	return err.Error()
}
