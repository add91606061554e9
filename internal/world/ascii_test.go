package world

import (
	"strings"
	"testing"
)

func TestAsciiBorderWalls(t *testing.T) {
	level := New[struct{}, Unit](1, 1, 0.0)
	level.AddBorderWalls(Unit{})
	if got, want := level.Ascii(), "|=|\n"; got != want {
		t.Errorf("Ascii() = %q, want %q", got, want)
	}

	wide := New[struct{}, Unit](2, 1, 0.0)
	wide.AddBorderWalls(Unit{})
	// The interior vertical edge stays open, so the inner glyphs are blank.
	if got, want := wide.Ascii(), "|=  =|\n"; got != want {
		t.Errorf("Ascii() = %q, want %q", got, want)
	}
}

func TestAsciiShape(t *testing.T) {
	level := New[struct{}, Unit](7, 4, 0.0)
	out := level.Ascii()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Ascii() produced %d rows, want 4", len(lines))
	}
	for i, line := range lines {
		if len(line) != 3*7 {
			t.Errorf("row %d has %d characters, want %d", i, len(line), 3*7)
		}
	}
}

func TestAsciiSingleWallGlyphs(t *testing.T) {
	level := New[struct{}, Unit](3, 3, 0.0)
	wall := Unit{}
	level.SetWall(1, 1, Top, &wall)

	lines := strings.Split(level.Ascii(), "\n")
	// Row y=1, middle tile: top-only renders as '_'.
	if lines[1][4] != '_' {
		t.Errorf("tile (1,1) glyph = %q, want '_'", lines[1][4])
	}
	// The same edge seen from (1,2) is a bottom wall, rendered '-'.
	if lines[2][4] != '-' {
		t.Errorf("tile (1,2) glyph = %q, want '-'", lines[2][4])
	}
}

func TestAsciiVisible(t *testing.T) {
	level := New[struct{}, Unit](10, 10, 0.0)
	pos := Position{4, 4}
	vis := level.VisibleFrom(pos, 2)
	out := level.AsciiVisible(vis)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("AsciiVisible() produced %d rows, want 10", len(lines))
	}

	// Observer tile renders the marker.
	if got := lines[4][12:15]; got != " @ " {
		t.Errorf("observer cell = %q, want %q", got, " @ ")
	}
	// A far corner is outside the window and renders opaque.
	if got := lines[9][27:30]; got != "???" {
		t.Errorf("out-of-window cell = %q, want %q", got, "???")
	}
	// An adjacent open tile renders normal glyphs.
	if got := lines[4][15:18]; got != "   " {
		t.Errorf("visible open cell = %q, want blanks", got)
	}
}
