package editor

import "github.com/gdamore/tcell/v2"

var (
	DefaultStyle = tcell.StyleDefault
	ReverseStyle = tcell.StyleDefault.Reverse(true)
)

// Line is one composed screen line. Reverse selects reverse-video, used by
// the status bar.
type Line struct {
	Text    []rune
	Reverse bool
}

// Frame is the render buffer: a full screen's worth of composed lines plus
// the cursor position, accumulated in memory and presented in one shot.
// Batching the frame this way avoids per-cell flicker.
type Frame struct {
	Width   int
	Lines   []Line
	CursorX int
	CursorY int
}

func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Lines: make([]Line, height)}
}

// SetLine fills screen line y. Text longer than the frame width is
// truncated at presentation time.
func (f *Frame) SetLine(y int, text []rune, reverse bool) {
	f.Lines[y] = Line{Text: text, Reverse: reverse}
}

// Present blits the whole frame onto the screen and shows it as one
// update. Short lines are padded with spaces to the frame width, which
// clears whatever the previous frame left there.
func (f *Frame) Present(s tcell.Screen) {
	s.HideCursor()
	for y, line := range f.Lines {
		style := DefaultStyle
		if line.Reverse {
			style = ReverseStyle
		}
		for x := 0; x < f.Width; x++ {
			ch := ' '
			if x < len(line.Text) {
				ch = line.Text[x]
			}
			s.SetContent(x, y, ch, nil, style)
		}
	}
	s.ShowCursor(f.CursorX, f.CursorY)
	s.Show()
}
