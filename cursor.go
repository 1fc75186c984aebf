package main

// cursorController owns the cursor position and the visible window.
// cursorX/cursorY address the document in logical coordinates, renderX is
// the display column of the cursor in the tab-expanded line, and the two
// offsets mark the top-left corner of the viewport.
type cursorController struct {
	cursorX, cursorY          int
	renderX                   int
	rowOffset, columnOffset   int
	screenRows, screenColumns int
}

func newCursorController(screenRows, screenColumns int) *cursorController {
	return &cursorController{screenRows: screenRows, screenColumns: screenColumns}
}

// moveCursor applies one navigation step. cursorY == lineCount is the valid
// past-the-last-line position, reached by moving down from the last row.
// After every step cursorX is clamped to the rendered length of the row the
// cursor landed on, so moving onto a shorter line never leaves it dangling.
func (c *cursorController) moveCursor(key keyCode, doc *document) {
	count := doc.lineCount()

	switch key {
	case keyUp:
		if c.cursorY > 0 {
			c.cursorY--
		}
	case keyDown:
		if c.cursorY < count {
			c.cursorY++
		}
	case keyLeft:
		if c.cursorX != 0 {
			c.cursorX--
		} else if c.cursorY > 0 {
			// wrap to the end of the previous line
			c.cursorY--
			c.cursorX = doc.rowAt(c.cursorY).renderLen
		}
	case keyRight:
		if c.cursorY < count {
			if c.cursorX < doc.rowAt(c.cursorY).renderLen {
				c.cursorX++
			} else {
				// wrap to the head of the next line
				c.cursorY++
				c.cursorX = 0
			}
		}
	case keyHome:
		c.cursorX = 0
	case keyEnd:
		if c.cursorY < count {
			c.cursorX = doc.rowAt(c.cursorY).renderLen
		}
	}

	rowLen := 0
	if c.cursorY < count {
		rowLen = doc.rowAt(c.cursorY).renderLen
	}
	c.cursorX = min(c.cursorX, rowLen)
}

// pageMove jumps the cursor to the edge of the current viewport, then
// replays single steps across a full screen so per-row clamping and
// wrapping still apply to the horizontal position.
func (c *cursorController) pageMove(key keyCode, doc *document) {
	step := keyUp
	if key == keyPageDown {
		step = keyDown
		c.cursorY = min(c.rowOffset+c.screenRows-1, doc.lineCount())
	} else {
		c.cursorY = c.rowOffset
	}
	for i := 0; i < c.screenRows; i++ {
		c.moveCursor(step, doc)
	}
}

// scroll recomputes renderX and slides the window the minimal distance
// that keeps the cursor inside it. Runs before every frame.
func (c *cursorController) scroll(doc *document) {
	c.renderX = 0
	if c.cursorY < doc.lineCount() {
		c.renderX = renderX(doc.rowAt(c.cursorY).chars, c.cursorX)
	}

	c.rowOffset = min(c.rowOffset, c.cursorY)
	if c.cursorY >= c.rowOffset+c.screenRows {
		c.rowOffset = c.cursorY - c.screenRows + 1
	}

	c.columnOffset = min(c.columnOffset, c.renderX)
	if c.renderX >= c.columnOffset+c.screenColumns {
		c.columnOffset = c.renderX - c.screenColumns + 1
	}
}

// renderX walks the raw line up to cursorX runes and returns the display
// column reached, mirroring renderRow's expansion but stopping at the
// cursor instead of the end of the line.
func renderX(chars string, cursorX int) int {
	x, n := 0, 0
	for _, r := range chars {
		if n >= cursorX {
			break
		}
		if r == '\t' {
			x += tabStop - x%tabStop
		} else {
			x += cellWidth(r)
		}
		n++
	}
	return x
}
