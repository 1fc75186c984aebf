package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"time"
)

const pollInterval = 500 * time.Millisecond

// editor wires the document, the cursor controller and the two terminal
// collaborators into the read-only view loop.
type editor struct {
	term  terminal
	in    input
	doc   *document
	ctrl  *cursorController
	frame bytes.Buffer
}

// readKey blocks until the input collaborator has a key event, polling in
// bounded steps so the process stays responsive between keypresses.
func (e *editor) readKey() (keyEvent, error) {
	for {
		ready, err := e.in.poll(pollInterval)
		if err != nil {
			return keyEvent{}, err
		}
		if ready {
			return e.in.readKey()
		}
	}
}

// processKeypress dispatches one key event and reports whether the loop
// should keep running. Ctrl-Q quits; keys without a navigation meaning are
// ignored.
func (e *editor) processKeypress(ev keyEvent) bool {
	if ev.code == 'q' && ev.mods&modCtrl != 0 {
		return false
	}

	switch ev.code {
	case keyUp, keyDown, keyLeft, keyRight, keyHome, keyEnd:
		e.ctrl.moveCursor(ev.code, e.doc)
	case keyPageUp, keyPageDown:
		e.ctrl.pageMove(ev.code, e.doc)
	}
	return true
}

func (e *editor) loop() error {
	for {
		if err := e.refreshScreen(); err != nil {
			return err
		}
		ev, err := e.readKey()
		if err != nil {
			return err
		}
		if !e.processKeypress(ev) {
			return nil
		}
	}
}

func run() error {
	flag.Parse()
	if flag.NArg() > 1 {
		return fmt.Errorf("usage: pound [file]")
	}

	src := ""
	if path := flag.Arg(0); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		src = string(b)
	}

	term := newANSITerminal()
	restore, err := term.init()
	if err != nil {
		return err
	}
	defer restore()

	rows, cols, err := term.size()
	if err != nil {
		return err
	}

	e := &editor{
		term: term,
		in:   newStdinInput(),
		doc:  newDocument(src),
		ctrl: newCursorController(rows, cols),
	}
	return e.loop()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "pound:", err)
		os.Exit(1)
	}
}
