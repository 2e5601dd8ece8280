package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("new screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(3, 4, '#', ColorGreen)
	cell := s.GetCell(3, 4)
	if cell.Rune != '#' {
		t.Errorf("GetCell rune = %q, expected '#'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell color = %d, expected green", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(3, 4, '#')
	if s.GetCell(3, 4).Color != ColorDefault {
		t.Error("Set should reset the color to default")
	}

	if s.GetCell(-1, -1).Rune != ' ' {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColor(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("Clear left %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 3, 'A')
	s.Set(9, 9, 'B')

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("size after shrink = %dx%d, expected 5x5", s.Width(), s.Height())
	}
	if s.Get(2, 3) != 'A' {
		t.Error("content inside new bounds should be preserved")
	}

	s.Resize(20, 20)
	if s.Get(2, 3) != 'A' {
		t.Error("content should survive growing")
	}
	if s.Get(9, 9) != ' ' {
		t.Error("content dropped by shrink should not reappear")
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText placed %q%q", s.Get(2, 1), s.Get(3, 1))
	}

	// Clipped at the right edge, no panic
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Error("DrawText should clip at the screen edge")
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")

	row := s.Row(0)
	if !strings.Contains(row, "abc") {
		t.Fatalf("row = %q, expected to contain \"abc\"", row)
	}
	if row[4] != 'a' {
		t.Errorf("text not centered: %q", row)
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 6, 4), ColorDefault)

	if s.Get(1, 1) != '┌' || s.Get(6, 1) != '┐' {
		t.Error("top corners missing")
	}
	if s.Get(1, 4) != '└' || s.Get(6, 4) != '┘' {
		t.Error("bottom corners missing")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("edges missing")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should stay untouched")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 1, "row1")

	if s.Row(1) != "row1" {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.Row(-1) != "    " {
		t.Error("out of bounds Row should return spaces")
	}
}
