package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"

	"paint/internal/canvas"
)

var (
	barStyle     = lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	hintStyle    = lipgloss.NewStyle().Faint(true)
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
)

func (m model) View() string {
	if m.width < 1 || m.height < 1 {
		return ""
	}
	if m.help {
		return m.helpView()
	}

	var result strings.Builder
	result.WriteString(m.titleBar())
	result.WriteString("\n")
	result.WriteString(m.canvasView())
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) titleBar() string {
	e := m.doc.Engine
	w, h := e.Size()
	title := fmt.Sprintf(" %s  %dx%d | %s | pen %s | width %.0f | font %.0f | line %s | fill %s ",
		m.doc.Title(), w, h, e.Mode(), e.Pen(), e.LineWidth(), e.FontSize(),
		swatchView(e.LineColor(), swatchName(palette, e.LineColor())),
		swatchView(e.FillColor(), swatchName(fillPalette, e.FillColor())))
	return barStyle.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(title)
}

func swatchView(c color.Color, name string) string {
	hex := hexOf(c)
	if hex == "" {
		return name
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Background(lipgloss.Color("236")).Render("██") +
		barStyle.Render(" "+name)
}

// canvasView draws the preview with half blocks: the foreground color is the
// upper pixel of a cell and the background color the lower one.
func (m model) canvasView() string {
	v := m.viewport()
	preview := m.doc.Engine.Preview()
	pw, ph := v.pixels(preview.Bounds().Dx(), preview.Bounds().Dy())
	small := image.NewRGBA(image.Rect(0, 0, pw, ph))
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), preview, preview.Bounds(), xdraw.Src, nil)

	lines := make([]string, v.rows)
	for row := 0; row < v.rows; row++ {
		var line strings.Builder
		var run strings.Builder
		runFg, runBg := "", ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle()
			if runFg != "" {
				style = style.Foreground(lipgloss.Color(runFg))
			}
			if runBg != "" {
				style = style.Background(lipgloss.Color(runBg))
			}
			line.WriteString(style.Render(run.String()))
			run.Reset()
		}

		for col := 0; col < v.cols; col++ {
			if m.cursorVisible && col == m.cursorX && row+canvasTop == m.cursorY {
				flush()
				line.WriteString(cursorStyle.Render("+"))
				continue
			}
			glyph, fg, bg := " ", "", ""
			if col < pw && 2*row < ph {
				glyph, fg = "▀", hexOf(small.RGBAAt(col, 2*row))
				if 2*row+1 < ph {
					bg = hexOf(small.RGBAAt(col, 2*row+1))
				}
			}
			if fg != runFg || bg != runBg {
				flush()
				runFg, runBg = fg, bg
			}
			run.WriteString(glyph)
		}
		flush()
		lines[row] = line.String()
	}
	return strings.Join(lines, "\n")
}

func (m model) statusLine() string {
	var status string
	switch m.mode {
	case ModeTextInput:
		status = promptStyle.Render("Text: ") + m.input + "█" +
			hintStyle.Render("  Enter=accept, Ctrl+V=paste, Esc=cancel")
	case ModeFileInput:
		op := "Save as"
		if m.fileOp == FileOpOpen {
			op = "Open"
		}
		status = promptStyle.Render(op+": ") + m.input + "█"
		if m.errorMessage != "" {
			status += "  " + errorStyle.Render(m.errorMessage)
		}
		hint := "Enter=confirm, Esc=cancel"
		if len(m.fileList) > 0 {
			hint = fmt.Sprintf("↑/↓=%d files, %s", len(m.fileList), hint)
		}
		status += hintStyle.Render("  " + hint)
	case ModeConfirm:
		switch m.confirmAction {
		case ConfirmUnsaved:
			status = promptStyle.Render(fmt.Sprintf("Save changes to %s? (y)es / (n)o / (c)ancel", m.doc.Title()))
		case ConfirmOverwriteFile:
			status = promptStyle.Render(fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.overwritePath))
		}
	default:
		status = m.normalStatus()
	}
	return lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(1).Render(status)
}

func (m model) normalStatus() string {
	e := m.doc.Engine
	parts := []string{}
	if e.Pen() == canvas.PenText && e.Mode() == canvas.ModeDraw {
		parts = append(parts, fmt.Sprintf("Text: %q", e.PendingText()))
	}
	if st := e.Selection(); e.Mode() == canvas.ModeSelect && st.Visible {
		parts = append(parts, fmt.Sprintf("Selection %dx%d", st.Bounds.Dx(), st.Bounds.Dy()))
	}
	if m.successMessage != "" {
		parts = append(parts, successStyle.Render(m.successMessage))
	}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render("ERROR: "+m.errorMessage))
	} else if m.successMessage == "" {
		parts = append(parts, hintStyle.Render("? for help | q to quit"))
	}
	return strings.Join(parts, " | ")
}

func (m model) helpView() string {
	helpLines := []string{
		"Paint Help",
		"==========",
		"",
		"Drawing:",
		"--------",
		"  Mouse drag       Draw with the current pen",
		"  h/j/k/l/arrows   Move the keyboard cursor (Shift for 4x)",
		"  Space            Put the pen down or lift it at the cursor",
		"",
		"Modes:",
		"------",
		"  d                Draw",
		"  e                Erase (freehand in white)",
		"  s                Select a region, then drag it to move it",
		"  i                Eyedropper, click to pick the line color",
		"",
		"Pens:",
		"-----",
		"  1                Freehand",
		"  2                Line",
		"  3                Rectangle",
		"  4                Square",
		"  5                Circle",
		"  6                Ellipse",
		"  7                Text, the first click accepts the text",
		"  t                Edit the pending text",
		"",
		"Style:",
		"------",
		"  +/-              Line width",
		"  ]/[              Font size",
		"  c/C              Next/previous line color",
		"  f/F              Next/previous fill color",
		"",
		"History:",
		"--------",
		"  u/Ctrl+Z         Undo",
		"  U/Ctrl+Y         Redo",
		"",
		"File Operations:",
		"----------------",
		"  Ctrl+N           New canvas",
		"  Ctrl+O           Open an image",
		"  Ctrl+S           Save",
		"  Ctrl+A           Save as (.png, .jpg, .jpeg)",
		"",
		"General:",
		"  Esc              Clear messages",
		"  ?                Toggle this help screen",
		"  q/Ctrl+C         Quit",
	}

	visibleHeight := max(m.height-1, 1)
	startLine := min(m.helpScroll, max(len(helpLines)-visibleHeight, 0))
	endLine := min(startLine+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[startLine:endLine], "\n")
	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result + "\n" + hintStyle.Render(statusLine)
}
