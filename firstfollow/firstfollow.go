// Package firstfollow computes the FIRST and FOLLOW sets of a grammar's
// symbols by the two fixed-point algorithms in
// original_source/src/first_and_follow.rs, translated onto canonlr's
// interned symbol.Symbol ids.
package firstfollow

import (
	"github.com/dekarrin/canonlr/grammar"
	"github.com/dekarrin/canonlr/symbol"
)

// Table holds the computed FIRST and FOLLOW sets for every symbol of a
// grammar. It is immutable once built and safe for concurrent reads (spec.md
// §5 "Concurrency Model": read-only data built once, shared freely
// afterward).
type Table struct {
	first  map[symbol.Symbol]symbol.Set
	follow map[symbol.Symbol]symbol.Set
}

// New computes FIRST and FOLLOW for every terminal and nonterminal of g.
func New(g *grammar.Grammar) *Table {
	first := computeFirst(g)
	follow := computeFollow(g, first)
	return &Table{first: first, follow: follow}
}

// First returns FIRST(s), or an empty set if s is unknown to the grammar
// this Table was built from.
func (t *Table) First(s symbol.Symbol) symbol.Set {
	if fs, ok := t.first[s]; ok {
		return fs
	}
	return symbol.NewSet()
}

// Follow returns FOLLOW(s), or an empty set if s is not a nonterminal of the
// grammar this Table was built from.
func (t *Table) Follow(s symbol.Symbol) symbol.Set {
	if fs, ok := t.follow[s]; ok {
		return fs
	}
	return symbol.NewSet()
}

// OfSequence returns FIRST(X1 X2 ... Xn) for the given symbol sequence: the
// union of FIRST(Xi) for each leading Xi until one is found whose FIRST set
// does not contain eps, plus eps itself if every Xi in the sequence can
// derive eps (including the empty sequence). This is the closure-building
// block spec.md §4.4 calls FIRST(β a) for a production suffix β followed by
// a lookahead terminal a.
func (t *Table) OfSequence(seq []symbol.Symbol, eps symbol.Symbol) symbol.Set {
	out := symbol.NewSet()
	allDeriveEps := true
	for _, x := range seq {
		fx := t.First(x)
		for _, s := range fx.Elements() {
			if s != eps {
				out.Add(s)
			}
		}
		if !fx.Has(eps) {
			allDeriveEps = false
			break
		}
	}
	if allDeriveEps {
		out.Add(eps)
	}
	return out
}

func computeFirst(g *grammar.Grammar) map[symbol.Symbol]symbol.Set {
	first := map[symbol.Symbol]symbol.Set{}

	for _, t := range g.Terminals() {
		s := symbol.NewSet()
		s.Add(t)
		first[t] = s
	}
	for _, nt := range g.Nonterminals() {
		first[nt] = symbol.NewSet()
	}

	eps := g.Table().Epsilon()

	changed := true
	for changed {
		changed = false
		for _, nt := range g.Nonterminals() {
			for _, p := range g.Productions(nt) {
				newItems := symbol.NewSet()
				for _, a := range p.RHS {
					fa, ok := first[a]
					if !ok {
						continue
					}
					for _, s := range fa.Elements() {
						newItems.Add(s)
					}
					if !fa.Has(eps) {
						newItems.Remove(eps)
						break
					}
				}
				if first[p.LHS].AddAll(newItems) {
					changed = true
				}
			}
		}
	}

	return first
}

func computeFollow(g *grammar.Grammar, first map[symbol.Symbol]symbol.Set) map[symbol.Symbol]symbol.Set {
	follow := map[symbol.Symbol]symbol.Set{}
	for _, nt := range g.Nonterminals() {
		follow[nt] = symbol.NewSet()
	}

	tbl := g.Table()
	follow[tbl.Goal()].Add(tbl.EOI())

	changed := true
	for changed {
		changed = false
		for _, nt := range g.Nonterminals() {
			for _, p := range g.Productions(nt) {
				tail := follow[nt].Copy()

				for i := len(p.RHS) - 1; i >= 0; i-- {
					b := p.RHS[i]
					if tbl.IsTerminal(b) {
						tail = symbol.NewSet()
						tail.Add(b)
						continue
					}

					if follow[b].AddAll(tail) {
						changed = true
					}

					fb, ok := first[b]
					if !ok {
						continue
					}
					if fb.Has(tbl.Epsilon()) {
						for _, x := range fb.Elements() {
							if x != tbl.Epsilon() {
								tail.Add(x)
							}
						}
					} else {
						tail = fb.Copy()
					}
				}
			}
		}
	}

	return follow
}
