// gridframe is a demo launcher for the frame-buffer runtime.
//
// Usage:
//
//	gridframe pong      - Two-paddle ball game
//	gridframe life      - Conway's Game of Life
//	gridframe monitor   - Live frame-time dashboard
//	gridframe scores    - Show stored demo high scores
//
// Global flags:
//
//	--fps <rate>     - Override target frame rate
//	--config <path>  - Explicit runtime config file
//	--db <path>      - Score database path (default: ~/.gridframe/scores.db)
//	--log <path>     - Diagnostic log file (the tty belongs to the renderer)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridframe/config"
	"github.com/lixenwraith/gridframe/engine"
	"github.com/lixenwraith/gridframe/grid"
)

var (
	flagFPS    int
	flagConfig string
	flagDB     string
	flagLog    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridframe",
	Short: "Demos for the gridframe terminal frame-buffer runtime",
	Long: `gridframe runs small programs on the frame-buffer runtime: a styled
cell grid flushed to the terminal once per frame at a fixed rate.

Available commands:
  pong     - Two-paddle ball game
  life     - Conway's Game of Life
  monitor  - Live frame-time dashboard
  scores   - Show stored demo high scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "target frame rate (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "runtime config file")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "~/.gridframe/scores.db", "score database path")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "diagnostic log file")

	rootCmd.AddCommand(pongCmd)
	rootCmd.AddCommand(lifeCmd)
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(scoresCmd)
}

// engineConfig resolves the runtime config and flag overrides into an
// engine configuration plus the configured default element
func engineConfig() (engine.Config, grid.VisualElement, error) {
	rt, err := config.Load(flagConfig)
	if err != nil {
		return engine.Config{}, grid.VisualElement{}, err
	}

	cfg := engine.DefaultConfig()
	cfg.FPS = rt.FPS
	if flagFPS > 0 {
		cfg.FPS = flagFPS
	}
	cfg.Logger = newLogger()

	def := grid.DefaultElement()
	if fg, err := config.ParseColor(rt.DefaultForeground); err == nil {
		def.Foreground = fg
	}
	if bg, err := config.ParseColor(rt.DefaultBackground); err == nil {
		def.Background = bg
	}
	return cfg, def, nil
}

// newLogger opens the diagnostic file logger, nil when --log is unset
func newLogger() *log.Logger {
	if flagLog == "" {
		return nil
	}
	f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open log file: %v\n", err)
		return nil
	}
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridframe",
	})
}

// newApp builds an app with the resolved config and default element
func newApp() (*engine.App, error) {
	cfg, def, err := engineConfig()
	if err != nil {
		return nil, err
	}
	app := engine.NewAppConfig(cfg)
	app.Window().Canvas().SetDefaultElement(def)
	return app, nil
}
