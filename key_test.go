package main

import "testing"

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		in   string
		want keyEvent
	}{
		{"q", keyEvent{code: 'q'}},
		{"\x11", keyEvent{code: 'q', mods: modCtrl}},
		{"\x1b", keyEvent{code: keyEsc}},
		{"\x1b[A", keyEvent{code: keyUp}},
		{"\x1b[B", keyEvent{code: keyDown}},
		{"\x1b[C", keyEvent{code: keyRight}},
		{"\x1b[D", keyEvent{code: keyLeft}},
		{"\x1b[H", keyEvent{code: keyHome}},
		{"\x1b[F", keyEvent{code: keyEnd}},
		{"\x1bOH", keyEvent{code: keyHome}},
		{"\x1bOF", keyEvent{code: keyEnd}},
		{"\x1b[1~", keyEvent{code: keyHome}},
		{"\x1b[7~", keyEvent{code: keyHome}},
		{"\x1b[4~", keyEvent{code: keyEnd}},
		{"\x1b[8~", keyEvent{code: keyEnd}},
		{"\x1b[5~", keyEvent{code: keyPageUp}},
		{"\x1b[6~", keyEvent{code: keyPageDown}},
		{"\x1b[3~", keyEvent{code: keyDelete}},
		{"\x1b[Z", keyEvent{code: keyEsc}}, // unrecognized sequence
		{"あ", keyEvent{code: 'あ'}},
	}
	for _, tt := range tests {
		if got := decodeKey([]byte(tt.in)); got != tt.want {
			t.Errorf("decodeKey(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
