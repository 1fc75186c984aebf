package main

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const tabStop = 8

// row is one logical line of the loaded file. render is the display form
// with tabs expanded to spaces, derived once at load and cached together
// with its rune count.
type row struct {
	chars     string
	render    string
	renderLen int
}

// renderRow expands each tab to at least one space, padding until the
// output column is a multiple of tabStop. Every other rune is copied
// verbatim and advances the column by its terminal cell width.
func renderRow(chars string) string {
	sb := strings.Builder{}
	col := 0
	for _, r := range chars {
		if r == '\t' {
			n := tabStop - col%tabStop
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col += cellWidth(r)
	}
	return sb.String()
}

// cellWidth never reports zero so control and combining runes still occupy
// a cell on screen.
func cellWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// document holds the ordered logical lines of the file. It is built once
// and read-only afterwards.
type document struct {
	rows []*row
}

// newDocument splits src into logical lines and renders each. A trailing
// newline does not produce an extra empty line; a \r left over from CRLF
// endings is stripped. Empty source yields zero lines.
func newDocument(src string) *document {
	d := &document{}
	if src == "" {
		return d
	}
	for _, chars := range strings.Split(strings.TrimSuffix(src, "\n"), "\n") {
		chars = strings.TrimSuffix(chars, "\r")
		render := renderRow(chars)
		d.rows = append(d.rows, &row{
			chars:     chars,
			render:    render,
			renderLen: utf8.RuneCountInString(render),
		})
	}
	return d
}

func (d *document) lineCount() int {
	return len(d.rows)
}

// rowAt panics when at is out of range. Callers check lineCount first;
// an out-of-bounds row here is a bug in the cursor clamping, not a
// recoverable condition.
func (d *document) rowAt(at int) *row {
	return d.rows[at]
}

func (d *document) render(at int) string {
	return d.rows[at].render
}
