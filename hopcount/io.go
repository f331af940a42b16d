package hopcount

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Read parses one contest instance. Strand numbers in the input are 1-based
// unless zeroBased is set; the returned Problem is always 0-based.
func Read(r io.Reader, zeroBased bool) (Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	nextInt := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("%w: missing %s", ErrMalformedInput, what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedInput, what, sc.Text())
		}
		return v, nil
	}

	shift := 1
	if zeroBased {
		shift = 0
	}

	var p Problem
	var m int
	var err error
	if p.Strands, err = nextInt("n"); err != nil {
		return Problem{}, err
	}
	if m, err = nextInt("m"); err != nil {
		return Problem{}, err
	}
	if m < 0 {
		return Problem{}, fmt.Errorf("%w: negative bridge count %d", ErrMalformedInput, m)
	}
	if p.Favorite, err = nextInt("s"); err != nil {
		return Problem{}, err
	}
	p.Favorite -= shift

	p.Specs = make([]Spec, 0, m)
	for i := 0; i < m; i++ {
		var s Spec
		if s.Distance, err = nextInt(fmt.Sprintf("d%d", i+1)); err != nil {
			return Problem{}, err
		}
		if s.Strand, err = nextInt(fmt.Sprintf("t%d", i+1)); err != nil {
			return Problem{}, err
		}
		s.Strand -= shift
		p.Specs = append(p.Specs, s)
	}
	return p, nil
}

// Solve runs the solver on p.
func (p Problem) Solve() ([]int, error) {
	return Solve(p.Strands, p.Favorite, p.Specs)
}

// Write prints counts on one line separated by spaces.
func Write(w io.Writer, counts []int) error {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = strconv.Itoa(c)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
