package crossword

// A WordSet is the set of candidate words still considered valid for one
// variable.
type WordSet map[string]struct{}

// Copy returns an independent copy of the set.
func (ws WordSet) Copy() WordSet {
	cp := make(WordSet, len(ws))
	for w := range ws {
		cp[w] = struct{}{}
	}
	return cp
}

// Words returns the set's contents as an unordered slice.
func (ws WordSet) Words() []string {
	words := make([]string, 0, len(ws))
	for w := range ws {
		words = append(words, w)
	}
	return words
}

// Domains maps every variable to its candidate word set. The consistency
// engine shrinks these sets in place; nothing ever adds a word back.
type Domains map[Variable]WordSet

// NewDomains gives every variable a fresh copy of the full word list.
func NewDomains(cw *Crossword) Domains {
	domains := make(Domains, len(cw.Variables))
	for _, v := range cw.Variables {
		ws := make(WordSet, len(cw.Words))
		for _, w := range cw.Words {
			ws[w] = struct{}{}
		}
		domains[v] = ws
	}
	return domains
}

// Copy deep-copies the domain mapping.
func (d Domains) Copy() Domains {
	cp := make(Domains, len(d))
	for v, ws := range d {
		cp[v] = ws.Copy()
	}
	return cp
}

// An Assignment is a partial mapping from variables to chosen words, grown
// and shrunk during search. A variable absent from the map is unassigned.
type Assignment map[Variable]string

// Complete reports whether every variable in vars is bound.
func (a Assignment) Complete(vars []Variable) bool {
	for _, v := range vars {
		if _, ok := a[v]; !ok {
			return false
		}
	}
	return true
}

// Used reports whether word is already assigned to some variable.
func (a Assignment) Used(word string) bool {
	for _, w := range a {
		if w == word {
			return true
		}
	}
	return false
}
