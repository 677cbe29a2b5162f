package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridframe/engine"
	"github.com/lixenwraith/gridframe/grid"
	"github.com/lixenwraith/gridframe/terminal"
	"github.com/lixenwraith/gridframe/vmath"
)

var lifeCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life (r reseeds, q quits)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLife()
	},
}

type lifeGame struct {
	alive map[vmath.Vec2]bool
	size  vmath.Vec2
}

func runLife() error {
	app, err := newApp()
	if err != nil {
		return err
	}

	g := &lifeGame{}
	g.seed(app.Window().Size())

	return app.Run(g.frame)
}

func (g *lifeGame) seed(size vmath.Vec2) {
	g.size = size
	g.alive = make(map[vmath.Vec2]bool)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if rand.Intn(4) == 0 {
				g.alive[vmath.XY(x, y)] = true
			}
		}
	}
}

func (g *lifeGame) frame(s *engine.State, w *grid.Window) {
	c := w.Canvas()
	size := c.Dimension()

	kb := s.Keyboard()
	if kb.PressedRune('q') || kb.Pressed(terminal.KeyEscape) || kb.Closed() {
		s.Stop()
		return
	}
	// Reseed on request or when the display was resized (the board is
	// sized to the canvas)
	if kb.PressedRune('r') || size != g.size {
		g.seed(size)
	}

	g.step()

	for pos := range g.alive {
		putCell(c, pos, 'O', grid.Green, c.DefaultElement().Background)
	}
	drawText(c, vmath.XY(2, 0), "life: r reseeds, q quits", grid.DarkGrey)
}

// step advances one generation with toroidal wrapping
func (g *lifeGame) step() {
	if g.size.Area() == 0 {
		return
	}

	counts := make(map[vmath.Vec2]int)
	for pos := range g.alive {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := vmath.XY(
					(pos.X+dx+g.size.X)%g.size.X,
					(pos.Y+dy+g.size.Y)%g.size.Y,
				)
				counts[n]++
			}
		}
	}

	next := make(map[vmath.Vec2]bool)
	for pos, n := range counts {
		if n == 3 || (n == 2 && g.alive[pos]) {
			next[pos] = true
		}
	}
	g.alive = next
}
