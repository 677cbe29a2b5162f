package main

import (
	"fmt"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridframe/engine"
	"github.com/lixenwraith/gridframe/grid"
	"github.com/lixenwraith/gridframe/terminal"
	"github.com/lixenwraith/gridframe/vmath"
)

const dtHistory = 240

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Live frame-time dashboard (q quits)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMonitor()
	},
}

type monitorView struct {
	samples []float64
}

func runMonitor() error {
	app, err := newApp()
	if err != nil {
		return err
	}

	v := &monitorView{samples: make([]float64, 0, dtHistory)}
	return app.Run(v.frame)
}

func (v *monitorView) frame(s *engine.State, w *grid.Window) {
	c := w.Canvas()
	size := c.Dimension()

	kb := s.Keyboard()
	if kb.PressedRune('q') || kb.Pressed(terminal.KeyEscape) || kb.Closed() {
		s.Stop()
		return
	}

	ms := float64(s.Dt()) / float64(time.Millisecond)
	v.samples = append(v.samples, ms)
	if len(v.samples) > dtHistory {
		v.samples = v.samples[len(v.samples)-dtHistory:]
	}

	drawText(c, vmath.XY(2, 0), "frame time (ms), q quits", grid.Grey)
	drawText(c, vmath.XY(2, 1),
		fmt.Sprintf("step %d  dt %5.2fms", s.Step(), ms), grid.White)

	if size.X < 16 || size.Y < 8 || len(v.samples) < 2 {
		return
	}

	width := size.X - 12
	window := v.samples
	if len(window) > width {
		window = window[len(window)-width:]
	}
	plot := asciigraph.Plot(window,
		asciigraph.Height(size.Y-5),
		asciigraph.Width(width),
	)
	drawBlock(c, vmath.XY(2, 3), plot, grid.Green)
}
