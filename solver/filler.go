// Package solver fills a crossword grid by treating it as a binary CSP:
// node consistency prunes length mismatches, AC-3 propagates the overlap
// constraints to a fixed point, and a chronological backtracking search
// with MRV/degree and least-constraining-value ordering finds a complete
// assignment.
package solver

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/pmarks/gridfill/crossword"
)

// ErrNoSolution is returned when no assignment satisfies the puzzle. It is
// a normal outcome, not a fault; callers distinguish it with errors.Is.
var ErrNoSolution = errors.New("no solution exists for this puzzle")

// A Filler holds all state for one solve: the immutable problem and the
// live domain mapping. It is not safe for concurrent use; create one
// Filler per solve.
type Filler struct {
	cw      *crossword.Crossword
	domains crossword.Domains
}

// NewFiller creates a solver context for cw, seeding every variable's
// domain with the full word list.
func NewFiller(cw *crossword.Crossword) *Filler {
	return &Filler{
		cw:      cw,
		domains: crossword.NewDomains(cw),
	}
}

// Domains exposes the live domain mapping, mainly for inspection after a
// propagation pass. Callers must not mutate it during a solve.
func (f *Filler) Domains() crossword.Domains {
	return f.domains
}

// Solve runs the full pipeline: node consistency, AC-3 over every arc,
// then backtracking search. It returns either a complete, consistent
// assignment or ErrNoSolution; never a partial assignment.
func (f *Filler) Solve() (crossword.Assignment, error) {
	f.EnforceNodeConsistency()
	if !f.AC3(nil) {
		log.Debug().Msg("arc consistency emptied a domain; puzzle is unsatisfiable")
		return nil, ErrNoSolution
	}
	asg := f.backtrack(crossword.Assignment{})
	if asg == nil {
		return nil, ErrNoSolution
	}
	return asg, nil
}
