package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spiderweb/hopcount"
	"github.com/katalvlaran/spiderweb/internal/logging"
)

var solveFlags struct {
	zeroBased bool
}

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Print the minimum bridges to add per start strand",
	Long: `solve reads "n m s" followed by m lines "d t" (bridge at distance d joining
strand t and t+1) from the file or stdin, and prints for every strand the
least number of bridges to add so an outward walk from it ends on s.
Strands are 1-based unless --zero-based is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveFlags.zeroBased, "zero-based", false, "Strand numbers in the input start at 0")
}

func runSolve(cmd *cobra.Command, args []string) error {
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	p, err := hopcount.Read(in, solveFlags.zeroBased)
	if err != nil {
		return fmt.Errorf("read instance: %w", err)
	}
	logging.New("solve").Debug("instance read", "strands", p.Strands, "bridges", len(p.Specs))
	counts, err := p.Solve()
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	return hopcount.Write(cmd.OutOrStdout(), counts)
}
