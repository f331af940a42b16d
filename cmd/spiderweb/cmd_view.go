package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spiderweb/config"
	"github.com/katalvlaran/spiderweb/geom"
	"github.com/katalvlaran/spiderweb/internal/logging"
	"github.com/katalvlaran/spiderweb/render"
	"github.com/katalvlaran/spiderweb/web"
)

var viewCmd = &cobra.Command{
	Use:   "view <scenario.yaml>",
	Short: "Paint a scenario web in the terminal",
	Long: `view builds the scenario web and paints it. Each key press applies the
next scripted action; q or Esc quits.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func runView(_ *cobra.Command, args []string) error {
	s, err := config.Load(args[0])
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return view(screen, s)
}

// view runs the paint/key loop on an initialized screen.
func view(screen tcell.Screen, s config.Scenario) error {
	scene := render.NewScene()
	w, err := s.Build(
		web.WithRenderer(scene),
		web.WithVisible(true),
		web.WithLogger(logging.New("view")),
	)
	if err != nil {
		return err
	}
	paint := func() {
		cols, rows := screen.Size()
		lo, hi, ok := scene.Bounds()
		if !ok {
			lo, hi = geom.Pt(0, 0), geom.Pt(1, 1)
		}
		render.Paint(screen, scene, render.Fit(lo, hi, cols, rows))
	}

	next := 0
	paint()
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			paint()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
			if next < len(s.Actions) {
				_ = s.Actions[next].Apply(w)
				next++
				paint()
			}
		}
	}
}
