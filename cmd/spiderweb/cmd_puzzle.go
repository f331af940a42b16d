package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spiderweb/hopcount"
	"github.com/katalvlaran/spiderweb/puzzle"
	"github.com/katalvlaran/spiderweb/web"
)

var puzzleFlags struct {
	strands  int
	favorite int
	start    int
	gap      int
	maxNodes int
	timeout  time.Duration
}

var puzzleCmd = &cobra.Command{
	Use:   "puzzle [file]",
	Short: "Find bridges that lead a walk from --start to the favorite strand",
	Long: `puzzle reads "d t" pairs (0-based strands) from the file or stdin and
searches for the fewest bridges to add so an outward walk from --start
ends on --favorite. The search is exponential and bounded by --max-nodes
and --timeout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPuzzle,
}

func init() {
	f := puzzleCmd.Flags()
	f.IntVar(&puzzleFlags.strands, "strands", 0, "Number of strands (required)")
	f.IntVar(&puzzleFlags.favorite, "favorite", 0, "Favorite strand, 0-based")
	f.IntVar(&puzzleFlags.start, "start", 0, "Start strand, 0-based")
	f.IntVar(&puzzleFlags.gap, "gap", puzzle.DefaultGap, "Distance between a candidate and its source bridge")
	f.IntVar(&puzzleFlags.maxNodes, "max-nodes", puzzle.DefaultMaxNodes, "Search node budget")
	f.DurationVar(&puzzleFlags.timeout, "timeout", time.Minute, "Search time limit")

	_ = puzzleCmd.MarkFlagRequired("strands")
}

func runPuzzle(cmd *cobra.Command, args []string) error {
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	specs, err := readPairs(in)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), puzzleFlags.timeout)
	defer cancel()

	w, found, err := puzzle.Simulate(
		puzzleFlags.strands, puzzleFlags.favorite, specs, puzzleFlags.start, nil,
		puzzle.WithGap(puzzleFlags.gap),
		puzzle.WithMaxNodes(puzzleFlags.maxNodes),
		puzzle.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d bridges added\n", len(found))
	for _, sp := range found {
		fmt.Fprintf(out, "  %d %d\n", sp.Distance, sp.Strand)
	}
	fmt.Fprintf(out, "walk from %d ends on %d\n", puzzleFlags.start, w.CurrentStrand())
	return nil
}

// readPairs parses whitespace-separated "d t" pairs until EOF.
func readPairs(r io.Reader) ([]web.Spec, error) {
	var specs []web.Spec
	for {
		var sp web.Spec
		n, err := fmt.Fscan(r, &sp.Distance, &sp.Strand)
		if n == 0 && errors.Is(err, io.EOF) {
			return specs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: pair %d: %v", hopcount.ErrMalformedInput, len(specs)+1, err)
		}
		specs = append(specs, sp)
	}
}
