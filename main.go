package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"tedit/editor"
)

var debugFlag = flag.Bool("debug", false, "write a debug log to app.log")

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()
	path := flag.Arg(0)
	logger := newLogger(*debugFlag)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tedit: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "tedit: %v\n", err)
		return 1
	}
	screen.SetStyle(editor.DefaultStyle)
	screen.Clear()

	ed, err := editor.New(screen, path, logger)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "tedit: %v\n", err)
		return 1
	}

	// Catch panics in a defer, restore the terminal, and re-raise them -
	// otherwise the program can die leaving the terminal in raw mode and
	// without any diagnostic trace.
	var runErr error
	func() {
		defer func() {
			maybePanic := recover()
			ed.Shutdown()
			screen.Fini()
			if maybePanic != nil {
				panic(maybePanic)
			}
		}()
		runErr = ed.Run()
	}()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "tedit: %v\n", runErr)
		return 1
	}
	return 0
}

func newLogger(debug bool) *log.Logger {
	if !debug {
		return log.New(io.Discard, "", 0)
	}
	file, err := os.OpenFile("app.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatal(err)
	}
	return log.New(file, "", log.LstdFlags|log.Lshortfile)
}
