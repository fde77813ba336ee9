package model

import (
	"bytes"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	g := gridFromBlueprint(t,
		"O.",
		".O",
	)
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	r.Display(g)

	want := gridPosBlock + gridPosEmpty + "\n" + gridPosEmpty + gridPosBlock + "\n"
	if buf.String() != want {
		t.Fatalf("Display wrote %q, want %q", buf.String(), want)
	}
}

func TestTerminalRendererClear(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	r.Clear()
	if buf.String() != "\x1b[H\x1b[2J" {
		t.Fatalf("Clear wrote %q", buf.String())
	}
}
