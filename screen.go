package main

import (
	"bytes"
	"strings"
)

const (
	editorName    = "Pound Editor"
	editorVersion = "3.0.0"
)

// drawRows writes every visible screen row into buf. Rows past the end of
// the document get a tilde marker; an empty document shows the version
// banner a third of the way down instead. Each row ends with a
// clear-to-end-of-line so stale content from the previous frame is wiped.
func (e *editor) drawRows(buf *bytes.Buffer) {
	c := e.ctrl
	for i := 0; i < c.screenRows; i++ {
		fileRow := i + c.rowOffset
		if fileRow >= e.doc.lineCount() {
			if e.doc.lineCount() == 0 && i == c.screenRows/3 {
				e.drawBanner(buf)
			} else {
				buf.WriteByte('~')
			}
		} else {
			render := []rune(e.doc.render(fileRow))
			if c.columnOffset < len(render) {
				end := min(len(render), c.columnOffset+c.screenColumns)
				buf.WriteString(string(render[c.columnOffset:end]))
			}
		}

		buf.WriteString(escClearLine)
		if i < c.screenRows-1 {
			buf.WriteString("\r\n")
		}
	}
}

// drawBanner centers the welcome line, truncated to the screen width. When
// any padding fits, the first cell keeps the tilde marker.
func (e *editor) drawBanner(buf *bytes.Buffer) {
	welcome := editorName + " --- Version " + editorVersion
	if len(welcome) > e.ctrl.screenColumns {
		welcome = welcome[:e.ctrl.screenColumns]
	}
	padding := (e.ctrl.screenColumns - len(welcome)) / 2
	if padding > 0 {
		buf.WriteByte('~')
		padding--
	}
	buf.WriteString(strings.Repeat(" ", padding))
	buf.WriteString(welcome)
}

// refreshScreen composes one full frame and hands it to the terminal as a
// single write: scroll, hide the cursor, repaint from the home position,
// park the cursor at its viewport-relative spot, show it again.
func (e *editor) refreshScreen() error {
	e.ctrl.scroll(e.doc)

	e.frame.Reset()
	e.frame.WriteString(escCursorHide)
	e.frame.WriteString(escCursorHome)
	e.drawRows(&e.frame)
	e.frame.WriteString(escCursorTo(e.ctrl.renderX-e.ctrl.columnOffset, e.ctrl.cursorY-e.ctrl.rowOffset))
	e.frame.WriteString(escCursorShow)
	return e.term.writeFrame(e.frame.Bytes())
}
