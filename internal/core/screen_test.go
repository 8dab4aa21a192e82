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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
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
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '@', ColorBrightGreen)

	cell := s.GetCell(3, 4)
	if cell.Rune != '@' {
		t.Errorf("GetCell rune = %q, expected '@'", cell.Rune)
	}
	if cell.Color != ColorBrightGreen {
		t.Errorf("GetCell color = %d, expected %d", cell.Color, ColorBrightGreen)
	}

	// Plain Set resets the color
	s.Set(3, 4, '#')
	cell = s.GetCell(3, 4)
	if cell.Color != ColorDefault {
		t.Errorf("Set should reset color, got %d", cell.Color)
	}

	// Out of bounds GetCell returns a blank default cell
	oob := s.GetCell(-1, -1)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v, expected blank default", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some colored characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorBrightRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank default at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawLine(t *testing.T) {
	s := NewScreen(10, 10)

	// Horizontal line
	s.DrawLine(1, 2, 5, 2, '-', ColorDefault)
	for x := 1; x <= 5; x++ {
		if s.Get(x, 2) != '-' {
			t.Errorf("horizontal line missing at (%d, 2)", x)
		}
	}

	// Diagonal line hits both endpoints
	s.Clear()
	s.DrawLine(0, 0, 4, 4, '\\', ColorDefault)
	if s.Get(0, 0) != '\\' || s.Get(4, 4) != '\\' {
		t.Error("diagonal line should include both endpoints")
	}
	for i := 0; i <= 4; i++ {
		if s.Get(i, i) != '\\' {
			t.Errorf("diagonal line missing at (%d, %d)", i, i)
		}
	}

	// Single point
	s.Clear()
	s.DrawLine(3, 3, 3, 3, '*', ColorDefault)
	if s.Get(3, 3) != '*' {
		t.Error("degenerate line should draw its single point")
	}

	// Reversed endpoints draw the same cells
	s.Clear()
	s.DrawLine(4, 4, 0, 0, 'o', ColorDefault)
	for i := 0; i <= 4; i++ {
		if s.Get(i, i) != 'o' {
			t.Errorf("reversed diagonal missing at (%d, %d)", i, i)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'X')

	s.Resize(20, 8)
	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("Resize to (20, 8) got (%d, %d)", s.Width(), s.Height())
	}

	// New area is blank
	if s.Get(15, 6) != ' ' {
		t.Error("resized area should be blank")
	}

	// Resize to same size is a no-op
	s.Set(1, 1, 'Y')
	s.Resize(20, 8)
	if s.Get(1, 1) != 'Y' {
		t.Error("same-size Resize should not clear the buffer")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	expected := "a  \n  b"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}

	if !strings.Contains(s.Row(1), "b") {
		t.Errorf("Row(1) = %q, expected to contain 'b'", s.Row(1))
	}
	if s.Row(-1) != "   " {
		t.Errorf("out of range Row should be blank, got %q", s.Row(-1))
	}
}
