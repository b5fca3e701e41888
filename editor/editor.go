// Package editor ties the edit buffer, the viewport and the keymap into
// the keystroke-driven editing loop.
package editor

import (
	"fmt"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"

	"tedit/buffer"
)

const (
	Version = "1.0"

	// QuitTimes is how many extra Ctrl-Q presses it takes to abandon
	// unsaved changes.
	QuitTimes = 3
)

// Editor owns the whole session state. All mutation happens synchronously
// on the event loop; the file watcher goroutine only posts events back
// into the screen's queue.
type Editor struct {
	screen    tcell.Screen
	buf       *buffer.Buffer
	cursor    *CursorController
	status    StatusMessage
	quitTimes int

	watcher  *fsnotify.Watcher
	lastSave time.Time

	log *log.Logger
}

// New builds an Editor on an initialized screen. A non-empty path is
// loaded into the buffer; a load failure is fatal to startup.
func New(screen tcell.Screen, path string, logger *log.Logger) (*Editor, error) {
	e := &Editor{
		screen:    screen,
		buf:       buffer.NewBuffer(logger),
		quitTimes: QuitTimes,
		log:       logger,
	}

	if path != "" {
		if err := e.buf.LoadFile(path); err != nil {
			return nil, err
		}
		if err := e.watchFile(path); err != nil {
			logger.Printf("Could not watch %s: %v", path, err)
		}
	}

	width, height := screen.Size()
	e.cursor = NewCursorController(width, max(height-2, 0))
	e.status.Set("HELP: Ctrl-S to Save | Ctrl-Q to Quit ")
	return e, nil
}

// Run drives the frame/keypress loop until Ctrl-Q quits or an I/O error
// propagates. Each keypress produces exactly one frame before the next
// key is read.
func (e *Editor) Run() error {
	for {
		e.RefreshScreen()
		ev, err := e.ReadKey()
		if err != nil {
			return err
		}
		quit, err := e.processKeypress(ev)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Shutdown releases resources owned by the editor. Safe to call more than
// once; the screen itself is finalized by main.
func (e *Editor) Shutdown() {
	if e.watcher != nil {
		e.watcher.Close()
		e.watcher = nil
	}
}

// processKeypress dispatches one key event. It reports quit=true when the
// loop should exit; any returned error terminates the loop too.
func (e *Editor) processKeypress(ev *tcell.EventKey) (bool, error) {
	plain := ev.Modifiers() == tcell.ModNone
	// terminals report Shift for some printable runes
	shiftOnly := ev.Modifiers()&^tcell.ModShift == 0

	switch {
	case ev.Key() == tcell.KeyCtrlQ:
		if e.buf.Dirty() > 0 && e.quitTimes > 0 {
			e.status.Set(fmt.Sprintf(
				"WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.",
				e.quitTimes))
			e.quitTimes--
			return false, nil
		}
		return true, nil

	case ev.Key() == tcell.KeyCtrlS:
		if err := e.save(); err != nil {
			return false, err
		}

	case ev.Key() == tcell.KeyCtrlL:
		e.screen.Sync()

	case ev.Key() == tcell.KeyUp && plain:
		e.cursor.Move(Up, e.buf)
	case ev.Key() == tcell.KeyDown && plain:
		e.cursor.Move(Down, e.buf)
	case ev.Key() == tcell.KeyLeft && plain:
		e.cursor.Move(Left, e.buf)
	case ev.Key() == tcell.KeyRight && plain:
		e.cursor.Move(Right, e.buf)
	case ev.Key() == tcell.KeyHome && plain:
		e.cursor.Move(Home, e.buf)
	case ev.Key() == tcell.KeyEnd && plain:
		e.cursor.Move(End, e.buf)

	case ev.Key() == tcell.KeyPgUp && plain:
		e.pageMove(Up)
	case ev.Key() == tcell.KeyPgDn && plain:
		e.pageMove(Down)

	case ev.Key() == tcell.KeyEnter && plain:
		e.insertNewline()

	case ev.Key() == tcell.KeyDelete && plain:
		e.cursor.Move(Right, e.buf)
		e.deleteChar()
	case (ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2) && plain:
		e.deleteChar()

	case ev.Key() == tcell.KeyTab && shiftOnly:
		e.insertChar('\t')
	case ev.Key() == tcell.KeyRune && shiftOnly:
		e.insertChar(ev.Rune())
	}

	e.quitTimes = QuitTimes
	return false, nil
}

// pageMove jumps the cursor to the viewport edge and then walks a full
// screen of single-row moves, so scrolling goes through the normal path.
func (e *Editor) pageMove(dir Direction) {
	if dir == Up {
		e.cursor.Y = e.cursor.RowOffset
	} else {
		e.cursor.Y = min(e.cursor.RowOffset+e.cursor.ScreenRows-1, e.buf.NumRows())
	}
	for i := 0; i < e.cursor.ScreenRows; i++ {
		e.cursor.Move(dir, e.buf)
	}
}

func (e *Editor) insertChar(ch rune) {
	if e.cursor.Y == e.buf.NumRows() {
		e.buf.InsertRow(e.buf.NumRows(), "")
		e.buf.Touch()
	}
	e.buf.Row(e.cursor.Y).InsertChar(e.cursor.X, ch)
	e.cursor.X++
	e.buf.Touch()
}

func (e *Editor) insertNewline() {
	if e.cursor.X == 0 {
		e.buf.InsertRow(e.cursor.Y, "")
	} else {
		e.buf.SplitRow(e.cursor.Y, e.cursor.X)
	}
	e.cursor.X = 0
	e.cursor.Y++
	e.buf.Touch()
}

// deleteChar implements Backspace. At the start of a row it joins the row
// into its predecessor; on the past-last row or at the very start of the
// document it does nothing.
func (e *Editor) deleteChar() {
	if e.cursor.Y == e.buf.NumRows() {
		return
	}
	if e.cursor.Y == 0 && e.cursor.X == 0 {
		return
	}
	if e.cursor.X > 0 {
		e.buf.Row(e.cursor.Y).DeleteChar(e.cursor.X - 1)
		e.cursor.X--
	} else {
		e.cursor.X = len(e.buf.Row(e.cursor.Y - 1).Content)
		e.buf.JoinAdjacentRows(e.cursor.Y)
		e.cursor.Y--
	}
	e.buf.Touch()
}

// save runs Ctrl-S: prompt for a filename if the buffer has none, then
// write the buffer out. A prompt abort leaves the buffer untouched; a
// filesystem error propagates and ends the session.
func (e *Editor) save() error {
	if e.buf.Filename == "" {
		name, err := e.Prompt("Save as : %s (ESC to cancel)")
		if err != nil {
			return err
		}
		if name == "" {
			e.status.Set("Save Aborted")
			return nil
		}
		e.buf.Filename = name
	}

	n, err := e.buf.Save()
	if err != nil {
		return err
	}
	e.lastSave = time.Now()
	e.status.Set(fmt.Sprintf("%d bytes written to disk", n))
	if err := e.watchFile(e.buf.Filename); err != nil {
		e.log.Printf("Could not watch %s: %v", e.buf.Filename, err)
	}
	return nil
}
