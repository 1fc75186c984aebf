package main

import (
	"strings"
	"testing"
)

func TestRenderRow(t *testing.T) {
	tests := []struct {
		chars string
		want  string
	}{
		{"", ""},
		{"hello", "hello"},
		{"ab\tc", "ab      c"},
		{"\t", "        "},
		{"\ta", "        a"},
		{"12345678\t", "12345678        "},
		{"a\tb\tc", "a       b       c"},
	}
	for _, tt := range tests {
		if got := renderRow(tt.chars); got != tt.want {
			t.Errorf("renderRow(%q) = %q, want %q", tt.chars, got, tt.want)
		}
	}
}

func TestRenderRowTabAlignment(t *testing.T) {
	for _, chars := range []string{"\t", "a\t", "abcdefg\t", "12345678\t", "\t\t", "x\ty\t"} {
		got := renderRow(chars)
		if strings.ContainsRune(got, '\t') {
			t.Errorf("renderRow(%q) left a tab in %q", chars, got)
		}
		if len(got) < len(chars) {
			t.Errorf("renderRow(%q) shrank to %q", chars, got)
		}
		// every input ends in a tab, so the final column is a tab stop
		if len(got)%tabStop != 0 {
			t.Errorf("renderRow(%q) = %q ends at column %d, not a multiple of %d", chars, got, len(got), tabStop)
		}
	}
}

func TestNewDocument(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"a\nb", []string{"a", "b"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		d := newDocument(tt.src)
		if d.lineCount() != len(tt.want) {
			t.Errorf("newDocument(%q) has %d lines, want %d", tt.src, d.lineCount(), len(tt.want))
			continue
		}
		for i, want := range tt.want {
			if d.rowAt(i).chars != want {
				t.Errorf("newDocument(%q) line %d = %q, want %q", tt.src, i, d.rowAt(i).chars, want)
			}
		}
	}
}

func TestDocumentRenderCached(t *testing.T) {
	d := newDocument("ab\tc\n")
	if got := d.render(0); got != "ab      c" {
		t.Errorf("render(0) = %q", got)
	}
	if got := d.rowAt(0).renderLen; got != 9 {
		t.Errorf("renderLen = %d, want 9", got)
	}
}

func TestRowAtOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("rowAt past lineCount did not panic")
		}
	}()
	newDocument("one\n").rowAt(1)
}
