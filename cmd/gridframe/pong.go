package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridframe/engine"
	"github.com/lixenwraith/gridframe/grid"
	"github.com/lixenwraith/gridframe/storage"
	"github.com/lixenwraith/gridframe/terminal"
	"github.com/lixenwraith/gridframe/vmath"
)

const (
	paddleHeight = 4
	sampleRate   = beep.SampleRate(44100)
)

var pongCmd = &cobra.Command{
	Use:   "pong",
	Short: "Two-paddle ball game (w/s and arrow keys, q quits)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPong()
	},
}

type pongGame struct {
	leftY, rightY int
	ballX, ballY  int
	velX, velY    int
	rally         int
	audioReady    bool
}

func runPong() error {
	app, err := newApp()
	if err != nil {
		return err
	}

	g := &pongGame{velX: 1, velY: 1}
	size := app.Window().Size()
	g.reset(size)

	// Audio is optional; the game runs silent when the device is missing
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
		g.audioReady = true
	}

	if err := app.Run(g.frame); err != nil {
		return err
	}

	return saveScore("pong", g.rally)
}

func (g *pongGame) reset(size vmath.Vec2) {
	g.ballX, g.ballY = size.X/2, size.Y/2
	g.leftY = size.Y/2 - paddleHeight/2
	g.rightY = g.leftY
}

func (g *pongGame) frame(s *engine.State, w *grid.Window) {
	c := w.Canvas()
	size := c.Dimension()
	if size.Area() == 0 {
		return
	}

	kb := s.Keyboard()
	if kb.PressedRune('q') || kb.Pressed(terminal.KeyEscape) || kb.Closed() {
		s.Stop()
		return
	}
	if kb.PressedRune('w') && g.leftY > 0 {
		g.leftY--
	}
	if kb.PressedRune('s') && g.leftY+paddleHeight < size.Y {
		g.leftY++
	}
	if kb.Pressed(terminal.KeyUp) && g.rightY > 0 {
		g.rightY--
	}
	if kb.Pressed(terminal.KeyDown) && g.rightY+paddleHeight < size.Y {
		g.rightY++
	}

	g.ballX += g.velX
	g.ballY += g.velY

	if g.ballY <= 0 || g.ballY >= size.Y-1 {
		g.velY = -g.velY
	}
	if g.ballX == 1 && g.ballY >= g.leftY && g.ballY < g.leftY+paddleHeight {
		g.velX = -g.velX
		g.rally++
		g.blip()
	}
	if g.ballX == size.X-2 && g.ballY >= g.rightY && g.ballY < g.rightY+paddleHeight {
		g.velX = -g.velX
		g.rally++
		g.blip()
	}

	// Ball out: rally over, recenter
	if g.ballX < 0 || g.ballX >= size.X {
		g.reset(size)
	}

	for i := 0; i < paddleHeight; i++ {
		putCell(c, vmath.XY(0, g.leftY+i), '#', grid.Cyan, c.DefaultElement().Background)
		putCell(c, vmath.XY(size.X-1, g.rightY+i), '#', grid.Magenta, c.DefaultElement().Background)
	}
	putCell(c, vmath.XY(g.ballX, g.ballY), 'o', grid.Yellow, c.DefaultElement().Background)

	drawText(c, vmath.XY(2, 0), fmt.Sprintf("rally %d", g.rally), grid.Grey)
}

// blip plays a short sine tone on paddle hits
func (g *pongGame) blip() {
	if !g.audioReady {
		return
	}
	sine, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
}

// saveScore persists a finished run, best-effort when no db is configured
func saveScore(game string, score int) error {
	if flagDB == "" || score == 0 {
		return nil
	}
	store, err := storage.Open(flagDB)
	if err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	defer store.Close()

	if err := store.SaveScore(game, score); err != nil {
		return err
	}
	fmt.Printf("saved %s score: %d\n", game, score)
	return nil
}
