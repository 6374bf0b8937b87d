// Package grammar holds Production and Grammar: the immutable description
// of a context-free grammar over a symbol.Table, grounded on
// original_source/src/production.rs and grammar.rs.
package grammar

import (
	"strings"

	"github.com/dekarrin/canonlr/symbol"
)

// Production is an immutable LHS/RHS pair: lhs must be a nonterminal; rhs is
// the ordered sequence of symbols it derives. An empty RHS is never
// represented as a zero-length slice — it is always the one-symbol sequence
// [ε] (see NewEpsilon).
type Production struct {
	LHS symbol.Symbol
	RHS []symbol.Symbol
}

// New builds a Production. Callers that want an epsilon production should
// pass the table's Epsilon() symbol as the sole RHS element, or use
// NewEpsilon.
func New(lhs symbol.Symbol, rhs []symbol.Symbol) Production {
	rhsCopy := make([]symbol.Symbol, len(rhs))
	copy(rhsCopy, rhs)
	return Production{LHS: lhs, RHS: rhsCopy}
}

// NewEpsilon builds the production lhs -> ε.
func NewEpsilon(lhs symbol.Symbol, eps symbol.Symbol) Production {
	return Production{LHS: lhs, RHS: []symbol.Symbol{eps}}
}

// IsEpsilon reports whether p's RHS is the single-symbol epsilon form.
func (p Production) IsEpsilon(eps symbol.Symbol) bool {
	return len(p.RHS) == 1 && p.RHS[0] == eps
}

// Less totally orders productions lexicographically by (LHS, RHS), giving
// deterministic iteration wherever productions are stored in a sorted
// structure (LR1Item ordering, in particular).
func (p Production) Less(o Production) bool {
	if p.LHS != o.LHS {
		return p.LHS < o.LHS
	}
	n := len(p.RHS)
	if len(o.RHS) < n {
		n = len(o.RHS)
	}
	for i := 0; i < n; i++ {
		if p.RHS[i] != o.RHS[i] {
			return p.RHS[i] < o.RHS[i]
		}
	}
	return len(p.RHS) < len(o.RHS)
}

// Equal reports whether p and o have the same LHS and RHS.
func (p Production) Equal(o Production) bool {
	if p.LHS != o.LHS || len(p.RHS) != len(o.RHS) {
		return false
	}
	for i := range p.RHS {
		if p.RHS[i] != o.RHS[i] {
			return false
		}
	}
	return true
}

// String renders p using tbl's labels, as "LHS -> X Y Z".
func (p Production) String(tbl *symbol.Table) string {
	var sb strings.Builder
	sb.WriteString(tbl.MustLabel(p.LHS))
	sb.WriteString(" -> ")
	for i, s := range p.RHS {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(tbl.MustLabel(s))
	}
	return sb.String()
}
