package main

import (
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"golang.org/x/sys/unix"
)

// keyCode is either the rune of a plain keypress or one of the synthetic
// codes below for keys that arrive as escape sequences.
type keyCode rune

const keyEsc keyCode = 27

const (
	keyUp keyCode = iota + 1000
	keyDown
	keyLeft
	keyRight
	keyHome
	keyEnd
	keyPageUp
	keyPageDown
	keyDelete
)

type keyModifier uint8

const (
	modCtrl keyModifier = 1 << iota
)

type keyEvent struct {
	code keyCode
	mods keyModifier
}

// input supplies key events to the loop. poll waits up to timeout for
// pending bytes so readKey never blocks indefinitely.
type input interface {
	poll(timeout time.Duration) (bool, error)
	readKey() (keyEvent, error)
}

// stdinInput reads raw-mode bytes from the process stdin.
type stdinInput struct {
	fd int
}

func newStdinInput() *stdinInput {
	return &stdinInput{fd: int(os.Stdin.Fd())}
}

func (s *stdinInput) poll(timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(s.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(timeout.Milliseconds()))
	if err == unix.EINTR {
		// interrupted by a signal, report no event and let the loop retry
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("poll stdin: %w", err)
	}
	return n > 0, nil
}

// readKey reads one keypress worth of bytes. An escape sequence arrives in
// the same read once poll reported input pending.
func (s *stdinInput) readKey() (keyEvent, error) {
	buf := make([]byte, 8)
	n, err := unix.Read(s.fd, buf)
	if err != nil {
		return keyEvent{}, fmt.Errorf("read stdin: %w", err)
	}
	if n == 0 {
		return keyEvent{}, io.EOF
	}
	return decodeKey(buf[:n]), nil
}

// decodeKey turns one read's bytes into a key event. Control bytes map to
// the corresponding letter with the Ctrl modifier set; unrecognized escape
// sequences collapse to a bare Esc.
func decodeKey(b []byte) keyEvent {
	if b[0] == 0x1b {
		if code, ok := decodeEscape(b); ok {
			return keyEvent{code: code}
		}
		return keyEvent{code: keyEsc}
	}

	r, _ := utf8.DecodeRune(b)
	if r < 0x20 {
		return keyEvent{code: keyCode(r | 0x60), mods: modCtrl}
	}
	return keyEvent{code: keyCode(r)}
}

func decodeEscape(b []byte) (keyCode, bool) {
	if len(b) < 3 {
		return 0, false
	}

	switch b[1] {
	case '[':
		switch c := b[2]; {
		case c >= '0' && c <= '9':
			if len(b) < 4 || b[3] != '~' {
				return 0, false
			}
			switch c {
			case '1', '7':
				return keyHome, true
			case '3':
				return keyDelete, true
			case '4', '8':
				return keyEnd, true
			case '5':
				return keyPageUp, true
			case '6':
				return keyPageDown, true
			}
		case c == 'A':
			return keyUp, true
		case c == 'B':
			return keyDown, true
		case c == 'C':
			return keyRight, true
		case c == 'D':
			return keyLeft, true
		case c == 'H':
			return keyHome, true
		case c == 'F':
			return keyEnd, true
		}
	case 'O':
		// application cursor mode variants
		switch b[2] {
		case 'H':
			return keyHome, true
		case 'F':
			return keyEnd, true
		}
	}
	return 0, false
}
