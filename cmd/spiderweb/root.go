package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spiderweb/internal/logging"
)

var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "spiderweb",
	Short: "Spider-web walk simulator",
	Long: `spiderweb simulates an agent walking a circular web of strands joined by
bridges. It solves the hop-count contest problem, runs scripted YAML
scenarios, paints webs in the terminal and searches for bridge puzzles.`,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := logging.ParseLevel(rootFlags.logLevel)
		if err != nil {
			return err
		}
		logging.Init(level, rootFlags.logFormat, cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(solveCmd, runCmd, viewCmd, puzzleCmd)
	rootCmd.Version = version
}

// openInput returns stdin when args is empty, else the named file.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(args[0])
}
