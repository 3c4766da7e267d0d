package core

import (
	"strings"
	"testing"
)

func TestNewScreenStartsBlank(t *testing.T) {
	s := NewScreen(48, 16)

	if s.Width() != 48 || s.Height() != 16 {
		t.Fatalf("dimensions = %dx%d, expected 48x16", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("new screen not blank at (%d, %d): %q color %d", x, y, cell.Rune, cell.Color)
			}
		}
	}
}

func TestScreenSetCellAndColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(4, 6, '▒', ColorYellow)
	cell := s.GetCell(4, 6)
	if cell.Rune != '▒' {
		t.Errorf("GetCell(4, 6).Rune = %q, expected '▒'", cell.Rune)
	}
	if cell.Color != ColorYellow {
		t.Errorf("GetCell(4, 6).Color = %d, expected ColorYellow", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(4, 6, '█')
	if got := s.GetCell(4, 6).Color; got != ColorDefault {
		t.Errorf("Set should reset color to default, got %d", got)
	}
}

func TestScreenOutOfBoundsIsSilent(t *testing.T) {
	s := NewScreen(10, 10)

	// Writes outside the buffer must not panic
	s.Set(-1, 0, '◆')
	s.Set(10, 0, '◆')
	s.SetCell(0, -1, '◆', ColorBrightCyan)
	s.SetCell(0, 10, '◆', ColorBrightCyan)

	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if got := s.GetCell(10, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out of bounds GetCell should be a blank cell, got %+v", got)
	}
}

func TestScreenClearResetsRunesAndColors(t *testing.T) {
	s := NewScreen(6, 6)
	s.Fill('░')
	s.SetCell(3, 3, '█', ColorBrightRed)

	s.Clear()

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("Clear left (%d, %d) as %q color %d", x, y, cell.Rune, cell.Color)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "depth: 3.5")
	if s.Row(1)[2:12] != "depth: 3.5" {
		t.Errorf("DrawText row = %q", s.Row(1))
	}

	// Clips at the right edge instead of wrapping
	s.DrawText(18, 0, "chasm")
	if s.Get(18, 0) != 'c' || s.Get(19, 0) != 'h' {
		t.Error("text should clip at the right boundary")
	}
	if s.Get(0, 1) == 'a' {
		t.Error("clipped text must not wrap to the next row")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 3)

	// Each rune occupies one column even when it encodes as several bytes.
	s.DrawText(0, 0, "░▒█◆∞")
	want := []rune{'░', '▒', '█', '◆', '∞'}
	for i, r := range want {
		if got := s.Get(i, 0); got != r {
			t.Errorf("cell %d = %q, expected %q", i, got, r)
		}
	}
	if s.Get(5, 0) != ' ' {
		t.Errorf("cell 5 = %q, expected blank after the text", s.Get(5, 0))
	}

	s.DrawTextColor(0, 1, "──", ColorGray)
	if s.Get(0, 1) != '─' || s.Get(1, 1) != '─' || s.Get(2, 1) != ' ' {
		t.Errorf("colored multibyte row = %q", s.Row(1))
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(11, 3)

	// Centering counts runes, not bytes: 5 runes in an 11-wide screen
	// start at column 3.
	s.DrawTextCentered(1, "░░░░░")
	if s.Get(2, 1) != ' ' || s.Get(3, 1) != '░' || s.Get(7, 1) != '░' || s.Get(8, 1) != ' ' {
		t.Errorf("centered multibyte row = %q", s.Row(1))
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColor(1, 1, "chip!", ColorBrightYellow)

	for i := range "chip!" {
		if got := s.GetCell(1+i, 1).Color; got != ColorBrightYellow {
			t.Errorf("cell %d color = %d, expected ColorBrightYellow", i, got)
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "PAUSED")

	x := (20 - len("PAUSED")) / 2
	if s.Row(2)[x:x+6] != "PAUSED" {
		t.Errorf("DrawTextCentered row = %q", s.Row(2))
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(12, 8)
	r := NewRect(2, 1, 7, 5)
	s.DrawRect(r, ' ')
	s.DrawBox(r)

	if s.Get(2, 1) != '┌' || s.Get(8, 1) != '┐' {
		t.Errorf("top corners = %q %q", s.Get(2, 1), s.Get(8, 1))
	}
	if s.Get(2, 5) != '└' || s.Get(8, 5) != '┘' {
		t.Errorf("bottom corners = %q %q", s.Get(2, 5), s.Get(8, 5))
	}
	for x := 3; x < 8; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 5) != '─' {
			t.Fatalf("horizontal edge broken at x=%d", x)
		}
	}
	for y := 2; y < 5; y++ {
		if s.Get(2, y) != '│' || s.Get(8, y) != '│' {
			t.Fatalf("vertical edge broken at y=%d", y)
		}
	}

	// Interior stays blank
	if s.Get(5, 3) != ' ' {
		t.Errorf("box interior should be blank, got %q", s.Get(5, 3))
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawHLine(1, 2, 6, '─')
	for x := 1; x < 7; x++ {
		if s.Get(x, 2) != '─' {
			t.Fatalf("DrawHLine missing at x=%d", x)
		}
	}

	s.DrawVLine(4, 3, 4, '▒')
	for y := 3; y < 7; y++ {
		if s.Get(4, y) != '▒' {
			t.Fatalf("DrawVLine missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "░░░░░")
	s.DrawTextColor(0, 1, "▒█▒█▒", ColorWhite)
	s.DrawText(0, 2, "░░░░░")

	// Colors are dropped, runes and row breaks kept
	want := "░░░░░\n▒█▒█▒\n░░░░░"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "deepest")
	s.DrawText(0, 7, "lost")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "deepest") {
		t.Errorf("shrinking lost top-left content, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "deepest") {
		t.Errorf("growing lost content, row 0 = %q", s.Row(0))
	}
	// The cropped row does not come back
	if strings.Contains(s.Row(7), "lost") {
		t.Errorf("cropped row reappeared: %q", s.Row(7))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "wall")

	row := s.Row(2)
	if !strings.HasPrefix(row, "wall") {
		t.Errorf("Row(2) = %q", row)
	}
	if len([]rune(row)) != 10 {
		t.Errorf("row rune length = %d, expected 10", len([]rune(row)))
	}

	if got := s.Row(-1); got != strings.Repeat(" ", 10) {
		t.Errorf("out of bounds row should be spaces, got %q", got)
	}
}
