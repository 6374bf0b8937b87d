package grammar

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/canonlr/symbol"
)

// Grammar is a symbol.Table, a designated start symbol, and the productions
// over it, grouped by LHS for O(1) lookup. It is constructed once, is
// immutable thereafter, and automatically carries the augmented production
// GOAL -> start_symbol (dot and lookahead live on the LR1Item that seeds the
// canonical collection, not on the production itself — see DESIGN.md's
// resolution of spec.md §9's augmentation Open Question).
type Grammar struct {
	tbl        *symbol.Table
	start      symbol.Symbol
	byLHS      map[symbol.Symbol][]Production
	lhsOrder   []symbol.Symbol
	augmented  Production
}

// NewGrammar builds a Grammar from tbl, a user start symbol, and the
// grammar's productions. tbl is moved into the Grammar: callers must not
// continue to mutate or share it afterward (spec.md §3, §9 "Ownership").
//
// NewGrammar panics if any symbol appearing as an LHS or within an RHS was
// not registered in tbl — this is a GrammarDefinitionError in spec.md §7,
// raised here as a panic because a Grammar built from a hand-assembled
// production list with an unregistered symbol is a programming error, not a
// runtime condition a caller recovers from.
func NewGrammar(tbl *symbol.Table, start symbol.Symbol, productions []Production) *Grammar {
	g := &Grammar{
		tbl:   tbl,
		start: start,
		byLHS: map[symbol.Symbol][]Production{},
	}

	for _, p := range productions {
		g.mustKnow(p.LHS)
		for _, s := range p.RHS {
			g.mustKnow(s)
		}
		g.add(p)
	}

	g.augmented = New(tbl.Goal(), []symbol.Symbol{start})
	g.add(g.augmented)

	return g
}

func (g *Grammar) mustKnow(s symbol.Symbol) {
	if _, ok := g.tbl.Label(s); !ok {
		panic(fmt.Sprintf("grammar references unregistered symbol %v", s))
	}
}

func (g *Grammar) add(p Production) {
	if _, seen := g.byLHS[p.LHS]; !seen {
		g.lhsOrder = append(g.lhsOrder, p.LHS)
	}
	g.byLHS[p.LHS] = append(g.byLHS[p.LHS], p)
}

// Table returns the symbol table this grammar was built over.
func (g *Grammar) Table() *symbol.Table { return g.tbl }

// StartSymbol returns the user-designated start symbol (not GOAL).
func (g *Grammar) StartSymbol() symbol.Symbol { return g.start }

// Augmented returns the synthesized GOAL -> start_symbol production.
func (g *Grammar) Augmented() Production { return g.augmented }

// Productions returns the productions with the given LHS, in insertion
// order, or nil if lhs has none.
func (g *Grammar) Productions(lhs symbol.Symbol) []Production {
	return g.byLHS[lhs]
}

// Terminals returns every terminal in the grammar's symbol table.
func (g *Grammar) Terminals() []symbol.Symbol { return g.tbl.Terminals() }

// Nonterminals returns every nonterminal in the grammar's symbol table.
func (g *Grammar) Nonterminals() []symbol.Symbol { return g.tbl.Nonterminals() }

// String renders the grammar's start symbol and every production, grouped by
// LHS in the order LHS symbols were first introduced, using rosed to wrap
// long RHS lists the way tunascript/syntax/ast.go wraps long text nodes.
func (g *Grammar) String() string {
	var sb strings.Builder
	sb.WriteString("grammar:\n")
	fmt.Fprintf(&sb, "  start symbol = %s\n", g.tbl.MustLabel(g.start))
	sb.WriteString("  productions =\n")
	for _, lhs := range g.lhsOrder {
		for _, p := range g.byLHS[lhs] {
			line := "    " + p.String(g.tbl)
			wrapped := rosed.Edit(line).Wrap(100).String()
			sb.WriteString(wrapped)
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
