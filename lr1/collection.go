package lr1

import (
	"github.com/dekarrin/canonlr/firstfollow"
	"github.com/dekarrin/canonlr/grammar"
	"github.com/dekarrin/canonlr/symbol"
)

// Closure computes the closure of items under g: repeatedly, for every item
// [A -> α·Xβ, a] where X is a nonterminal, every production X -> γ, and
// every terminal b in FIRST(βa), add [X -> ·γ, b], until no item is added.
// Grounded on canonical_collection.rs's closure().
func Closure(g *grammar.Grammar, ff *firstfollow.Table, items ItemSet) ItemSet {
	result := NewItemSet(items.Elements()...)
	tbl := g.Table()

	for {
		grew := false
		for _, it := range result.Elements() {
			unseen := it.SymbolsAfterDot()
			if len(unseen) == 0 {
				continue
			}
			x := unseen[0]
			if tbl.IsTerminal(x) {
				continue
			}

			suffix := append(append([]symbol.Symbol{}, unseen[1:]...), it.Lookahead)
			lookaheads := ff.OfSequence(suffix, tbl.Epsilon())
			lookaheads.Remove(tbl.Epsilon())

			for _, p := range g.Productions(x) {
				for _, b := range symbol.Sorted(lookaheads) {
					if result.Add(New(p, 0, b)) {
						grew = true
					}
				}
			}
		}
		if !grew {
			break
		}
	}

	return result
}

// GoTo computes the successor state reached from items on symbol s: every
// item whose symbol immediately after the dot is s has its dot advanced,
// and the result is closed. Grounded on canonical_collection.rs's go_to().
func GoTo(g *grammar.Grammar, ff *firstfollow.Table, items ItemSet, s symbol.Symbol) ItemSet {
	advanced := NewItemSet()
	for _, it := range items.Elements() {
		unseen := it.SymbolsAfterDot()
		if len(unseen) > 0 && unseen[0] == s {
			advanced.Add(it.Advance())
		}
	}
	return Closure(g, ff, advanced)
}

// Collection is the canonical collection of LR(1) item sets for a grammar:
// a dense 0-based numbering of states and the transition function between
// them. Grounded on canonical_collection.rs's CanonicalCollection.
type Collection struct {
	States      []ItemSet
	Transitions map[transitionKey]int

	keyToState map[string]int
}

type transitionKey struct {
	From int
	On   symbol.Symbol
}

// Transition returns the state reached from state `from` on symbol `on`, if
// any.
func (c *Collection) Transition(from int, on symbol.Symbol) (int, bool) {
	to, ok := c.Transitions[transitionKey{From: from, On: on}]
	return to, ok
}

// Build constructs the canonical collection of g's LR(1) item sets. State 0
// is always the closure of the single item [GOAL -> ·start, $].
func Build(g *grammar.Grammar, ff *firstfollow.Table) *Collection {
	tbl := g.Table()

	cc := &Collection{
		Transitions: map[transitionKey]int{},
		keyToState:  map[string]int{},
	}

	initial := NewItemSet(New(g.Augmented(), 0, tbl.EOI()))
	cc0 := Closure(g, ff, initial)
	cc.add(cc0)

	unprocessed := []int{0}
	for len(unprocessed) > 0 {
		var next []int
		for _, i := range unprocessed {
			set := cc.States[i]
			for _, it := range set.Elements() {
				unseen := it.SymbolsAfterDot()
				if len(unseen) == 0 {
					continue
				}
				x := unseen[0]

				target := GoTo(g, ff, set, x)
				j, isNew := cc.addIfNew(target)
				if isNew {
					next = append(next, j)
				}
				cc.recordTransition(i, x, j)
			}
		}
		unprocessed = next
	}

	return cc
}

func (c *Collection) add(set ItemSet) int {
	n := len(c.States)
	c.States = append(c.States, set)
	c.keyToState[set.Key()] = n
	return n
}

// addIfNew registers set if it is not already present, returning its state
// number and whether it was newly added.
func (c *Collection) addIfNew(set ItemSet) (int, bool) {
	k := set.Key()
	if n, ok := c.keyToState[k]; ok {
		return n, false
	}
	return c.add(set), true
}

func (c *Collection) recordTransition(from int, on symbol.Symbol, to int) {
	key := transitionKey{From: from, On: on}
	if existing, ok := c.Transitions[key]; ok {
		if existing != to {
			panic("lr1: conflicting transition recorded for the same (state, symbol) pair")
		}
		return
	}
	c.Transitions[key] = to
}
