// Package lr1 builds the canonical collection of LR(1) item sets for a
// grammar, grounded on original_source/src/lr1_item.rs and
// canonical_collection.rs, using the string-keyed set idiom from
// internal/ictiobus/grammar/item.go (an LR1Item here is compared and stored
// by a canonical string key rather than by direct struct equality, since its
// Production embeds a slice and so is not a comparable map key on its own).
package lr1

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dekarrin/canonlr/grammar"
	"github.com/dekarrin/canonlr/symbol"
)

// Item is an LR(1) item: a production, a dot position within its RHS, and a
// single lookahead terminal.
type Item struct {
	Production grammar.Production
	Dot        int
	Lookahead  symbol.Symbol
}

// New builds an Item. dot must be in [0, len(p.RHS)].
func New(p grammar.Production, dot int, lookahead symbol.Symbol) Item {
	return Item{Production: p, Dot: dot, Lookahead: lookahead}
}

// SymbolsAfterDot returns the RHS symbols from the dot to the end of the
// production, i.e. the part not yet matched.
func (it Item) SymbolsAfterDot() []symbol.Symbol {
	return it.Production.RHS[it.Dot:]
}

// IsTarget reports whether it is the completed augmenting item GOAL -> start.
// That it is "completed" (dot at the end) must be checked separately by the
// caller via SymbolsAfterDot; IsTarget only checks the production and
// lookahead, matching original_source/src/lr1_item.rs's is_target exactly.
func (it Item) IsTarget(tbl *symbol.Table) bool {
	return it.Production.LHS == tbl.Goal() && it.Lookahead == tbl.EOI()
}

// Advance returns the item with its dot moved one symbol to the right.
func (it Item) Advance() Item {
	return Item{Production: it.Production, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

// Less totally orders items by (production, dot, lookahead), the same field
// order as the Rust original's derived Ord, giving deterministic iteration
// over an ItemSet's Elements.
func (it Item) Less(o Item) bool {
	if !it.Production.Equal(o.Production) {
		return it.Production.Less(o.Production)
	}
	if it.Dot != o.Dot {
		return it.Dot < o.Dot
	}
	return it.Lookahead < o.Lookahead
}

// Key returns a canonical string encoding of it, suitable for use as a map
// key or for deduplicating items within an ItemSet.
func (it Item) Key() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(it.Production.LHS)))
	sb.WriteRune(':')
	for i, s := range it.Production.RHS {
		if i > 0 {
			sb.WriteRune(',')
		}
		sb.WriteString(strconv.Itoa(int(s)))
	}
	sb.WriteRune('@')
	sb.WriteString(strconv.Itoa(it.Dot))
	sb.WriteRune('/')
	sb.WriteString(strconv.Itoa(int(it.Lookahead)))
	return sb.String()
}

// String renders it using tbl's labels, as "[LHS -> X . Y, lookahead]".
func (it Item) String(tbl *symbol.Table) string {
	var sb strings.Builder
	sb.WriteRune('[')
	sb.WriteString(tbl.MustLabel(it.Production.LHS))
	sb.WriteString(" -> ")
	for i, s := range it.Production.RHS {
		if i == it.Dot {
			sb.WriteString(". ")
		}
		sb.WriteString(tbl.MustLabel(s))
		if i < len(it.Production.RHS)-1 {
			sb.WriteRune(' ')
		}
	}
	if it.Dot == len(it.Production.RHS) {
		sb.WriteString(" .")
	}
	fmt.Fprintf(&sb, ", %s]", tbl.MustLabel(it.Lookahead))
	return sb.String()
}
