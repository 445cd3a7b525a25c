package solver

import (
	"sort"

	"github.com/samber/lo"

	"github.com/pmarks/gridfill/crossword"
)

// Consistent reports whether a partial assignment violates no constraint:
// all assigned words are pairwise distinct (a global rule, not just among
// neighbors), every word fits its slot's length, and every assigned
// crossing pair agrees on the shared cell. Unassigned variables constrain
// nothing.
func (f *Filler) Consistent(asg crossword.Assignment) bool {
	seen := make(map[string]bool, len(asg))
	for v, w := range asg {
		if seen[w] {
			return false
		}
		seen[w] = true
		if len(w) != v.Length {
			return false
		}
		for _, n := range f.cw.Neighbors(v) {
			nw, ok := asg[n]
			if !ok {
				continue
			}
			ov, _ := f.cw.Overlap(v, n)
			if w[ov.A] != nw[ov.B] {
				return false
			}
		}
	}
	return true
}

// selectUnassignedVariable picks the next variable to branch on: fewest
// remaining candidates first (MRV), most neighbors on a tie (degree), and
// grid order (row, col, direction) on a further tie so that repeated
// solves branch identically.
func (f *Filler) selectUnassignedVariable(asg crossword.Assignment) crossword.Variable {
	var best crossword.Variable
	found := false
	for _, v := range f.cw.Variables {
		if _, assigned := asg[v]; assigned {
			continue
		}
		if !found {
			best, found = v, true
			continue
		}
		dv, db := len(f.domains[v]), len(f.domains[best])
		if dv < db || (dv == db && len(f.cw.Neighbors(v)) > len(f.cw.Neighbors(best))) {
			best = v
		}
	}
	return best
}

// orderDomainValues ranks v's candidates least-constraining first. The
// rank of a candidate is how many unassigned neighbors still have that
// same word in their domain: choosing it would foreclose the word for each
// of them. This membership count is a deliberate proxy, not a full
// lookahead simulating the removal's cascade. Equal ranks keep
// lexicographic word order so the search is reproducible.
func (f *Filler) orderDomainValues(v crossword.Variable, asg crossword.Assignment) []string {
	unassigned := lo.Filter(f.cw.Neighbors(v), func(n crossword.Variable, _ int) bool {
		_, assigned := asg[n]
		return !assigned
	})

	words := f.domains[v].Words()
	sort.Strings(words)

	rank := make(map[string]int, len(words))
	for _, w := range words {
		rank[w] = lo.CountBy(unassigned, func(n crossword.Variable) bool {
			_, inDomain := f.domains[n][w]
			return inDomain
		})
	}
	sort.SliceStable(words, func(a, b int) bool {
		return rank[words[a]] < rank[words[b]]
	})
	return words
}

// backtrack is a chronological depth-first search over the pruned domains.
// It mutates asg in place, undoing each trial on failure, and returns
// either a complete consistent assignment or nil. No propagation runs
// inside the loop; inference happened up front.
func (f *Filler) backtrack(asg crossword.Assignment) crossword.Assignment {
	if asg.Complete(f.cw.Variables) && f.Consistent(asg) {
		return asg
	}
	v := f.selectUnassignedVariable(asg)
	for _, word := range f.orderDomainValues(v, asg) {
		// A word already placed elsewhere can never work; skip it here
		// rather than discovering the clash deeper in the tree.
		if asg.Used(word) {
			continue
		}
		asg[v] = word
		if f.Consistent(asg) {
			if result := f.backtrack(asg); result != nil {
				return result
			}
		}
		delete(asg, v)
	}
	return nil
}
