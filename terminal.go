package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// escape sequences making up a frame
const (
	escClearScreen = "\x1b[2J"
	escClearLine   = "\x1b[K"
	escCursorHome  = "\x1b[H"
	escCursorHide  = "\x1b[?25l"
	escCursorShow  = "\x1b[?25h"
)

func escCursorTo(x, y int) string {
	return fmt.Sprintf("\x1b[%d;%dH", y+1, x+1)
}

// terminal is the output collaborator. A frame handed to writeFrame must
// reach the screen as one unit so a redraw is never visible half done.
type terminal interface {
	init() (restore func(), err error)
	size() (rows, cols int, err error)
	writeFrame(frame []byte) error
}

// ansiTerminal drives the controlling terminal through stdout.
type ansiTerminal struct {
	in, out *os.File
}

func newANSITerminal() *ansiTerminal {
	return &ansiTerminal{in: os.Stdin, out: os.Stdout}
}

// init switches the terminal into raw mode. The returned restore drops raw
// mode and clears the screen; run defers it so it fires on every exit path,
// panics included.
func (t *ansiTerminal) init() (func(), error) {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	return func() {
		term.Restore(fd, prev)
		fmt.Fprint(t.out, escClearScreen+escCursorHome)
	}, nil
}

func (t *ansiTerminal) size() (int, int, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("window size: %w", err)
	}
	return rows, cols, nil
}

func (t *ansiTerminal) writeFrame(frame []byte) error {
	if _, err := t.out.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
