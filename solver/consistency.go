package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/pmarks/gridfill/crossword"
)

// An Arc is an ordered pair of overlapping variables. AC3 revises X
// against Y; (X, Y) and (Y, X) are distinct arcs.
type Arc struct {
	X crossword.Variable
	Y crossword.Variable
}

// EnforceNodeConsistency removes from every domain the words whose length
// does not match the slot. It looks at no other variable, runs before arc
// consistency, and is idempotent.
func (f *Filler) EnforceNodeConsistency() {
	for v, ws := range f.domains {
		// Snapshot the keys; deleting from a map being ranged over is
		// allowed in Go but the snapshot keeps the discipline explicit.
		for _, w := range ws.Words() {
			if len(w) != v.Length {
				delete(ws, w)
			}
		}
	}
}

// Revise makes x arc-consistent with y: every word removed from x's domain
// has no partner in y's current domain matching the shared cell. Reports
// whether x's domain changed. Variables with no overlap need no revision.
func (f *Filler) Revise(x, y crossword.Variable) bool {
	ov, ok := f.cw.Overlap(x, y)
	if !ok {
		return false
	}
	revised := false
	for _, wx := range f.domains[x].Words() {
		supported := false
		for wy := range f.domains[y] {
			if wx[ov.A] == wy[ov.B] {
				supported = true
				break
			}
		}
		if !supported {
			delete(f.domains[x], wx)
			revised = true
		}
	}
	return revised
}

// AC3 enforces arc consistency over the whole problem with a FIFO
// worklist. A nil arcs argument seeds the worklist with every ordered
// overlapping pair. Returns false as soon as a revision empties a domain
// (the puzzle cannot be satisfied); true once the worklist drains.
//
// When x's domain shrinks, each arc (z, x) for a neighbor z other than y
// goes back on the worklist: z's consistency was established against the
// larger domain. Re-adding an arc already pending would only cost extra
// revisions, but the pending set avoids it.
func (f *Filler) AC3(arcs []Arc) bool {
	queue := arcs
	if queue == nil {
		for _, x := range f.cw.Variables {
			for _, y := range f.cw.Neighbors(x) {
				queue = append(queue, Arc{X: x, Y: y})
			}
		}
	}
	pending := make(map[Arc]bool, len(queue))
	for _, a := range queue {
		pending[a] = true
	}

	revisions := 0
	for len(queue) > 0 {
		arc := queue[0]
		queue = queue[1:]
		pending[arc] = false

		if !f.Revise(arc.X, arc.Y) {
			continue
		}
		revisions++
		if len(f.domains[arc.X]) == 0 {
			log.Debug().Str("variable", arc.X.String()).Msg("domain emptied during propagation")
			return false
		}
		for _, z := range f.cw.Neighbors(arc.X) {
			if z == arc.Y {
				continue
			}
			back := Arc{X: z, Y: arc.X}
			if !pending[back] {
				pending[back] = true
				queue = append(queue, back)
			}
		}
	}
	log.Debug().Int("revisions", revisions).Msg("arc consistency reached a fixed point")
	return true
}
