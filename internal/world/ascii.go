package world

import "strings"

// Ascii returns a plain-text dump of the level's walls, one line per row with
// three characters per tile: left wall, combined top/bottom glyph, right
// wall. Debugging aid only, not meant for round-trip parsing.
func (l *Level[F, W]) Ascii() string {
	var b strings.Builder
	for y := 0; y < l.depth; y++ {
		for x := 0; x < l.width; x++ {
			l.writeTile(&b, x, y)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// AsciiVisible is like Ascii but shades the dump with a visibility mask: the
// observer tile renders as " @ " and any tile outside the mask's window, or
// marked invisible, renders as "???".
func (l *Level[F, W]) AsciiVisible(vis *Visibility) string {
	origin := vis.Origin()
	var b strings.Builder
	for y := 0; y < l.depth; y++ {
		for x := 0; x < l.width; x++ {
			switch {
			case x == origin.X && y == origin.Y:
				b.WriteString(" @ ")
			case !vis.Visible(x, y):
				b.WriteString("???")
			default:
				l.writeTile(&b, x, y)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (l *Level[F, W]) writeTile(b *strings.Builder, x, y int) {
	if l.HasWall(x, y, Left) {
		b.WriteByte('|')
	} else {
		b.WriteByte(' ')
	}
	top := l.HasWall(x, y, Top)
	bottom := l.HasWall(x, y, Bottom)
	switch {
	case top && bottom:
		b.WriteByte('=')
	case top:
		// Text rows grow downward while y grows upward, so the glyphs for
		// top and bottom are swapped relative to the page.
		b.WriteByte('_')
	case bottom:
		b.WriteByte('-')
	default:
		b.WriteByte(' ')
	}
	if l.HasWall(x, y, Right) {
		b.WriteByte('|')
	} else {
		b.WriteByte(' ')
	}
}
