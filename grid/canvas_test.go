package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lixenwraith/gridframe/vmath"
)

func TestNewCanvasFillsWithDefault(t *testing.T) {
	def := VisualElement{Style: Plain, Background: Blue, Foreground: Yellow, Value: '~'}
	c := NewCanvas(vmath.XY(4, 3), def)

	if got := c.Dimension(); got != vmath.XY(4, 3) {
		t.Fatalf("Dimension() = %v, expected (4,3)", got)
	}
	if len(c.Cells()) != 12 {
		t.Fatalf("len(Cells()) = %d, expected width*height = 12", len(c.Cells()))
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			e, ok := c.Elem(vmath.XY(x, y))
			if !ok {
				t.Fatalf("Elem(%d,%d) reported absent for in-bounds coordinate", x, y)
			}
			if diff := cmp.Diff(def, e, cmpopts.EquateComparable(Color{})); diff != "" {
				t.Errorf("cell (%d,%d) mismatch (-want +got):\n%s", x, y, diff)
			}
		}
	}
}

func TestCanvasWriteThenRead(t *testing.T) {
	c := NewCanvas(vmath.XY(5, 5), DefaultElement())

	want := VisualElement{Style: Bold, Background: Red, Foreground: Cyan, Value: 'X'}
	pos := vmath.XY(2, 3)

	p := c.ElemMut(pos)
	if p == nil {
		t.Fatal("ElemMut returned nil for in-bounds coordinate")
	}
	*p = want

	got, ok := c.Elem(pos)
	if !ok {
		t.Fatal("Elem reported absent after write")
	}
	if got != want {
		t.Errorf("Elem(%v) = %+v, expected the just-written %+v", pos, got, want)
	}

	// Neighboring cell untouched
	if e, _ := c.Elem(vmath.XY(3, 3)); e != DefaultElement() {
		t.Errorf("neighbor cell changed: %+v", e)
	}
}

func TestCanvasOutOfBounds(t *testing.T) {
	c := NewCanvas(vmath.XY(3, 2), DefaultElement())

	outside := []vmath.Vec2{
		{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 3, Y: 0}, {X: 0, Y: 2},
		{X: -5, Y: -5}, {X: 100, Y: 100},
	}
	for _, pos := range outside {
		if _, ok := c.Elem(pos); ok {
			t.Errorf("Elem(%v) reported present for out-of-bounds coordinate", pos)
		}
		if c.ElemMut(pos) != nil {
			t.Errorf("ElemMut(%v) returned non-nil for out-of-bounds coordinate", pos)
		}
		if c.Contains(pos) {
			t.Errorf("Contains(%v) = true for out-of-bounds coordinate", pos)
		}
	}
}

func TestCanvasZeroArea(t *testing.T) {
	for _, dim := range []vmath.Vec2{{X: 0, Y: 0}, {X: 0, Y: 5}, {X: 5, Y: 0}} {
		c := NewCanvas(dim, DefaultElement())
		if len(c.Cells()) != 0 {
			t.Errorf("dim %v: len(Cells()) = %d, expected 0", dim, len(c.Cells()))
		}
		if _, ok := c.Elem(vmath.Zero()); ok {
			t.Errorf("dim %v: Elem(0,0) present on zero-area canvas", dim)
		}
		// No panic expected anywhere
		c.Clear()
		c.Fill(DefaultElement())
	}
}

func TestCanvasFillAndClear(t *testing.T) {
	c := NewCanvas(vmath.XY(4, 4), DefaultElement())

	e := VisualElement{Background: Green, Foreground: Black, Value: '#'}
	c.Fill(e)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got, _ := c.Elem(vmath.XY(x, y)); got != e {
				t.Fatalf("after Fill, cell (%d,%d) = %+v", x, y, got)
			}
		}
	}

	// Clear is equivalent to Fill(defaultElement)
	c.Clear()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got, _ := c.Elem(vmath.XY(x, y)); got != c.DefaultElement() {
				t.Fatalf("after Clear, cell (%d,%d) = %+v", x, y, got)
			}
		}
	}
}

func TestCanvasSetDefaultElementDoesNotRepaint(t *testing.T) {
	c := NewCanvas(vmath.XY(2, 2), DefaultElement())
	filled := VisualElement{Background: Magenta, Foreground: White, Value: '*'}
	c.Fill(filled)

	newDefault := VisualElement{Background: DarkGrey, Foreground: LightGrey, Value: '.'}
	c.SetDefaultElement(newDefault)

	// Changing the default must not retroactively repaint
	if got, _ := c.Elem(vmath.Zero()); got != filled {
		t.Fatalf("SetDefaultElement repainted existing cell: %+v", got)
	}

	c.Clear()
	if got, _ := c.Elem(vmath.Zero()); got != newDefault {
		t.Fatalf("Clear after SetDefaultElement painted %+v, expected new default", got)
	}
}

func TestColorCodes(t *testing.T) {
	// Wire-level contract: these codes must match exactly
	codes := []struct {
		color Color
		code  uint8
	}{
		{Black, 16},
		{White, 231},
		{Grey, 244},
		{DarkGrey, 238},
		{LightGrey, 250},
		{Red, 196},
		{Green, 46},
		{Blue, 21},
		{Cyan, 51},
		{Yellow, 226},
		{Magenta, 201},
	}
	for _, tt := range codes {
		if got := tt.color.Code(); got != tt.code {
			t.Errorf("%v.Code() = %d, expected %d", tt.color, got, tt.code)
		}
	}

	for _, n := range []uint8{0, 1, 15, 16, 128, 255} {
		if got := Xterm(n).Code(); got != n {
			t.Errorf("Xterm(%d).Code() = %d, expected pass-through", n, got)
		}
	}
}
