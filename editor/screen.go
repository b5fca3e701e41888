package editor

import (
	"fmt"
	"path/filepath"

	"tedit/layout"
)

// composeFrame paints one full frame into a Frame: the text area with the
// welcome banner on an empty buffer, the reverse-video status bar and the
// message bar, plus the on-screen cursor position.
func (e *Editor) composeFrame() *Frame {
	e.cursor.Scroll(e.buf)

	text, status, message := layout.SplitRows(e.cursor.ScreenCols, e.cursor.ScreenRows+2)
	frame := NewFrame(text.Width, text.Height+status.Height+message.Height)

	e.drawRows(frame, text)
	e.drawStatusBar(frame, status)
	e.drawMessageBar(frame, message)

	frame.CursorX = e.cursor.RenderX - e.cursor.ColOffset
	frame.CursorY = e.cursor.Y - e.cursor.RowOffset
	return frame
}

func (e *Editor) drawRows(frame *Frame, dims layout.Dimensions) {
	for i := 0; i < dims.Height; i++ {
		fileRow := i + e.cursor.RowOffset
		if fileRow >= e.buf.NumRows() {
			if e.buf.NumRows() == 0 && i == dims.Height/3 {
				frame.SetLine(dims.Origin.Y+i, welcomeLine(dims.Width), false)
			} else {
				frame.SetLine(dims.Origin.Y+i, []rune{'~'}, false)
			}
			continue
		}
		render := e.buf.Row(fileRow).Render
		start := min(e.cursor.ColOffset, len(render))
		end := min(start+dims.Width, len(render))
		frame.SetLine(dims.Origin.Y+i, render[start:end], false)
	}
}

// welcomeLine centers the banner in width columns behind a leading tilde.
func welcomeLine(width int) []rune {
	welcome := []rune("Editor for Juspay Round_B " + Version)
	if len(welcome) > width {
		welcome = welcome[:width]
	}
	padding := (width - len(welcome)) / 2
	line := make([]rune, 0, padding+len(welcome))
	if padding != 0 {
		line = append(line, '~')
		padding--
	}
	for i := 0; i < padding; i++ {
		line = append(line, ' ')
	}
	return append(line, welcome...)
}

func (e *Editor) drawStatusBar(frame *Frame, dims layout.Dimensions) {
	name := "[Unknown file]"
	if e.buf.Filename != "" {
		name = filepath.Base(e.buf.Filename)
	}
	modified := ""
	if e.buf.Dirty() > 0 {
		modified = "(modified)"
	}
	info := []rune(fmt.Sprintf("%s %s -- %d lines of code", name, modified, e.buf.NumRows()))
	lineInfo := []rune(fmt.Sprintf("%d/%d", e.cursor.Y+1, e.buf.NumRows()))

	infoLen := min(len(info), dims.Width)
	bar := make([]rune, 0, dims.Width)
	bar = append(bar, info[:infoLen]...)
	for i := infoLen; i < dims.Width; i++ {
		if dims.Width-i == len(lineInfo) {
			bar = append(bar, lineInfo...)
			break
		}
		bar = append(bar, ' ')
	}
	frame.SetLine(dims.Origin.Y, bar, true)
}

func (e *Editor) drawMessageBar(frame *Frame, dims layout.Dimensions) {
	msg := []rune(e.status.Message())
	if len(msg) > dims.Width {
		msg = msg[:dims.Width]
	}
	frame.SetLine(dims.Origin.Y, msg, false)
}

// RefreshScreen composes and presents one frame.
func (e *Editor) RefreshScreen() {
	e.composeFrame().Present(e.screen)
}
