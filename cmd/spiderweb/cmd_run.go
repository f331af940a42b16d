package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spiderweb/config"
	"github.com/katalvlaran/spiderweb/diag"
	"github.com/katalvlaran/spiderweb/internal/logging"
	"github.com/katalvlaran/spiderweb/metrics"
	"github.com/katalvlaran/spiderweb/web"
)

var runFlags struct {
	metrics bool
	info    bool
}

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Build a scenario web and apply its action script",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	f := runCmd.Flags()
	f.BoolVar(&runFlags.metrics, "metrics", false, "Dump Prometheus metrics after the script")
	f.BoolVar(&runFlags.info, "info", false, "Print the web info report after the script")
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := config.Load(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	reg := metrics.NewRegistry()
	w, err := s.Build(
		web.WithDiagnostics(diag.NewWriter(out)),
		web.WithLogger(logging.New("web")),
		web.WithObserver(reg),
	)
	if err != nil {
		return err
	}

	for i, o := range config.Run(w, s.Actions) {
		status := "ok"
		if o.Err != nil {
			status = o.Err.Error()
		}
		fmt.Fprintf(out, "%2d %-24s strand=%d alive=%t bridges=%d favorite=%d  %s\n",
			i+1, o.Action, o.Strand, o.Alive, o.Bridges, o.Favorite, status)
	}
	if runFlags.info {
		fmt.Fprintln(out, w.Info())
	}
	if runFlags.metrics {
		return reg.WriteText(out)
	}
	return nil
}
