package editor

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

// eventFileChanged is posted into the screen's event queue when another
// program writes the open file.
type eventFileChanged struct {
	tcell.EventTime
	name string
}

// watchFile (re)arms the fsnotify watcher on the open document. The
// goroutine only translates write events into screen events; all editor
// state stays owned by the main loop.
func (e *Editor) watchFile(path string) error {
	if e.watcher != nil {
		e.watcher.Close()
		e.watcher = nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return err
	}
	e.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) {
					changed := &eventFileChanged{name: filepath.Base(event.Name)}
					changed.SetEventNow()
					if err := e.screen.PostEvent(changed); err != nil {
						e.log.Printf("Could not deliver change notice for %s: %v", path, err)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				e.log.Printf("Watcher error on %s: %v", path, err)
			}
		}
	}()
	return nil
}

// noteFileChanged surfaces an external modification on the message bar.
// Events arriving within a second of our own save are the save itself.
func (e *Editor) noteFileChanged(ev *eventFileChanged) {
	if time.Since(e.lastSave) < time.Second {
		return
	}
	e.log.Printf("File %s changed on disk", ev.name)
	e.status.Set(fmt.Sprintf("WARNING!!! %s changed on disk", ev.name))
}
