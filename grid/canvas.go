package grid

import (
	"github.com/lixenwraith/gridframe/vmath"
)

// Canvas is a flat row-major grid of cells sized to a display dimension.
// Invariant: len(cells) == dimension.X * dimension.Y at all times; cell
// (x,y) lives at y*width + x.
type Canvas struct {
	cells          []VisualElement
	dimension      vmath.Vec2
	defaultElement VisualElement
}

// NewCanvas allocates a canvas with every cell set to defaultElement.
// A zero-area dimension is legal: the canvas is valid and every
// coordinate query reports absent.
func NewCanvas(dimension vmath.Vec2, defaultElement VisualElement) *Canvas {
	c := &Canvas{
		cells:          make([]VisualElement, dimension.Area()),
		dimension:      dimension,
		defaultElement: defaultElement,
	}
	c.Fill(defaultElement)
	return c
}

// Dimension returns the canvas size
func (c *Canvas) Dimension() vmath.Vec2 {
	return c.dimension
}

// DefaultElement returns the element Clear paints with
func (c *Canvas) DefaultElement() VisualElement {
	return c.defaultElement
}

// SetDefaultElement changes the element Clear paints with.
// Existing cells are not repainted.
func (c *Canvas) SetDefaultElement(element VisualElement) {
	c.defaultElement = element
}

// Contains reports whether pos addresses a cell
func (c *Canvas) Contains(pos vmath.Vec2) bool {
	return pos.X >= 0 && pos.Y >= 0 &&
		pos.X < c.dimension.X &&
		pos.Y < c.dimension.Y
}

// Elem returns the cell at pos, or false when pos is out of bounds.
// Out-of-bounds access is never a panic; this is the safe-access contract.
func (c *Canvas) Elem(pos vmath.Vec2) (VisualElement, bool) {
	if !c.Contains(pos) {
		return VisualElement{}, false
	}
	return c.cells[pos.Y*c.dimension.X+pos.X], true
}

// ElemMut returns a pointer to the cell at pos for in-place mutation,
// or nil when pos is out of bounds. The pointer must not be retained
// across a resize.
func (c *Canvas) ElemMut(pos vmath.Vec2) *VisualElement {
	if !c.Contains(pos) {
		return nil
	}
	return &c.cells[pos.Y*c.dimension.X+pos.X]
}

// Fill overwrites every cell unconditionally. O(area).
func (c *Canvas) Fill(element VisualElement) {
	for i := range c.cells {
		c.cells[i] = element
	}
}

// Clear fills the canvas with its default element
func (c *Canvas) Clear() {
	c.Fill(c.defaultElement)
}

// Cells exposes the backing row-major slice for the render sweep
func (c *Canvas) Cells() []VisualElement {
	return c.cells
}
