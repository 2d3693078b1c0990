package main

import (
	"image/color"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"paint/internal/canvas"
	"paint/internal/document"
)

func main() {
	config := loadConfig()
	if config.LogFile != "" {
		file, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		canvas.SetLogger(slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	m := initialModel(config)
	defer m.cancelPick()
	if len(os.Args) > 1 {
		if err := m.doc.Open(os.Args[1]); err != nil {
			m.errorMessage = describeError(err)
		}
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel(config *Config) model {
	engine := canvas.New(config.canvasConfig())
	engine.ResetWithSize(config.Width, config.Height)

	picked := &pickedColor{}
	cancel := engine.SubscribeColorPicked(func(c color.Color) {
		picked.color = c
		picked.fresh = true
	})

	m := model{
		doc:        document.New(engine),
		config:     config,
		mode:       ModeNormal,
		picked:     picked,
		cancelPick: cancel,
		cursorY:    canvasTop,
	}
	m.syncPaletteIndexes()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		if m.mode == ModeNormal && !m.help {
			m.handleMouse(msg)
		}
		return m, nil

	case savedMsg:
		cmd := m.handleSaved(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "j", "down":
				m.helpScroll++
			case "k", "up":
				m.helpScroll = max(m.helpScroll-1, 0)
			case "?", "esc", "q":
				m.help = false
				m.helpScroll = 0
			}
			return m, nil
		}

		switch m.mode {
		case ModeTextInput:
			return m.updateTextInput(msg)
		case ModeFileInput:
			return m.updateFileInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		cmd := m.requestDiscard(PendingQuit)
		return m, cmd
	case "ctrl+n":
		cmd := m.requestDiscard(PendingNew)
		return m, cmd
	case "ctrl+o":
		cmd := m.requestDiscard(PendingOpen)
		return m, cmd
	case "ctrl+s":
		cmd := m.save()
		return m, cmd
	case "ctrl+a":
		m.startFileInput(FileOpSaveAs)
		return m, nil
	case "?":
		m.help = true
		return m, nil
	case "esc":
		m.errorMessage = ""
		m.successMessage = ""
		m.cursorVisible = false
		return m, nil

	case "u", "ctrl+z":
		m.undo()
	case "U", "ctrl+y":
		m.redo()

	case "d":
		m.setMode(canvas.ModeDraw)
	case "e":
		m.setMode(canvas.ModeErase)
	case "s":
		m.setMode(canvas.ModeSelect)
	case "i":
		m.setMode(canvas.ModeEyedropper)
	case "1", "2", "3", "4", "5", "6", "7":
		m.setPen(canvas.Pens[key[0]-'1'])
	case "t":
		m.endGesture()
		m.mode = ModeTextInput
		m.input = m.doc.Engine.PendingText()

	case "+", "=":
		m.adjustLineWidth(1)
	case "-", "_":
		m.adjustLineWidth(-1)
	case "]":
		m.adjustFontSize(fontSizeStep)
	case "[":
		m.adjustFontSize(-fontSizeStep)
	case "c":
		m.cycleLineColor(1)
	case "C":
		m.cycleLineColor(-1)
	case "f":
		m.cycleFillColor(1)
	case "F":
		m.cycleFillColor(-1)

	case " ":
		m.togglePen()
	case "h", "j", "k", "l", "H", "J", "K", "L",
		"left", "right", "up", "down",
		"shift+left", "shift+right", "shift+up", "shift+down":
		m.handleCursorMove(key, m.getMoveSpeed(key))
	}
	return m, nil
}

func (m model) updateTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.input = ""
	case tea.KeyEnter:
		m.doc.Engine.SetPendingText(m.input)
		m.mode = ModeNormal
		m.successMessage = "Text set"
		m.input = ""
	case tea.KeyCtrlV:
		text, err := readClipboardText()
		if err != nil {
			m.errorMessage = "Clipboard unavailable"
			return m, nil
		}
		m.input += cleanClipboardText(text)
	default:
		m.editInput(msg)
	}
	return m, nil
}

func (m model) updateFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEscape:
		m.mode = ModeNormal
		m.input = ""
		m.errorMessage = ""
		m.afterSave = PendingNone
		return m, nil
	case msg.Type == tea.KeyEnter:
		cmd := m.submitFile()
		return m, cmd
	case msg.String() == "up":
		m.selectFile(-1)
	case msg.String() == "down":
		m.selectFile(1)
	default:
		m.editInput(msg)
	}
	return m, nil
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.confirmAction {
	case ConfirmUnsaved:
		switch key {
		case "y", "Y":
			cmd := m.answerUnsaved(document.AnswerYes)
			return m, cmd
		case "n", "N":
			cmd := m.answerUnsaved(document.AnswerNo)
			return m, cmd
		case "c", "C", "esc":
			cmd := m.answerUnsaved(document.AnswerCancel)
			return m, cmd
		}
	case ConfirmOverwriteFile:
		switch key {
		case "y", "Y":
			m.mode = ModeNormal
			path := m.overwritePath
			m.overwritePath = ""
			cmd := m.saveCmd(path)
			return m, cmd
		case "n", "N", "esc":
			m.mode = ModeFileInput
			m.overwritePath = ""
		}
	}
	return m, nil
}

// editInput applies typing and backspace to the input line.
func (m *model) editInput(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	case tea.KeySpace:
		m.input += " "
	case tea.KeyBackspace:
		if runes := []rune(m.input); len(runes) > 0 {
			m.input = string(runes[:len(runes)-1])
		}
	}
	m.errorMessage = ""
}
