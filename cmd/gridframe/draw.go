package main

import (
	"strings"

	"github.com/lixenwraith/gridframe/grid"
	"github.com/lixenwraith/gridframe/vmath"
)

// drawText writes a string horizontally starting at pos, clipping at the
// canvas edge
func drawText(c *grid.Canvas, pos vmath.Vec2, text string, fg grid.Color) {
	x := pos.X
	for _, r := range text {
		if p := c.ElemMut(vmath.XY(x, pos.Y)); p != nil {
			p.Value = r
			p.Foreground = fg
		}
		x++
	}
}

// drawBlock writes a multi-line string starting at pos
func drawBlock(c *grid.Canvas, pos vmath.Vec2, block string, fg grid.Color) {
	for i, line := range strings.Split(block, "\n") {
		drawText(c, vmath.XY(pos.X, pos.Y+i), line, fg)
	}
}

// putCell paints one cell, ignoring out-of-bounds positions
func putCell(c *grid.Canvas, pos vmath.Vec2, value rune, fg, bg grid.Color) {
	if p := c.ElemMut(pos); p != nil {
		p.Value = value
		p.Foreground = fg
		p.Background = bg
	}
}
