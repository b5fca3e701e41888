package editor

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ReadKey blocks until the next key event. Non-key events are absorbed
// here: a resize updates the viewport geometry and repaints, a file-change
// notice lands on the message bar, everything else is discarded.
func (e *Editor) ReadKey() (*tcell.EventKey, error) {
	for {
		switch ev := e.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return ev, nil
		case *tcell.EventResize:
			width, height := ev.Size()
			e.cursor.ScreenCols = width
			e.cursor.ScreenRows = max(height-2, 0)
			e.screen.Sync()
			e.RefreshScreen()
		case *eventFileChanged:
			e.noteFileChanged(ev)
			e.RefreshScreen()
		case nil:
			// screen was finalized under us
			return nil, errors.New("event stream closed")
		}
	}
}
