// Package symbol interns the terminal and nonterminal names of a grammar
// into small comparable ids, the way original_source/src/symbol.rs's
// SymbolDb does, translated into the struct-with-String()/Equal() idiom used
// throughout internal/ictiobus/grammar/item.go.
package symbol

import (
	"fmt"

	"github.com/dekarrin/canonlr/internal/util"
	"github.com/dekarrin/canonlr/lrerrors"
)

// Symbol is an opaque, copyable, totally ordered identifier for a terminal
// or nonterminal. Identity is by id, never by label.
type Symbol int

// String satisfies fmt.Stringer with the raw id; callers that want the
// label must go through a Table.
func (s Symbol) String() string {
	return fmt.Sprintf("sym(%d)", int(s))
}

// Kind classifies a Symbol as terminal or nonterminal.
type Kind int

const (
	Nonterminal Kind = iota
	Terminal
)

// Table interns symbol labels for a single grammar. A Table must not be
// shared between Grammars: it is moved into a Grammar at construction and is
// read-only thereafter (see grammar.NewGrammar).
type Table struct {
	next       int
	fromLabel  map[string]Symbol
	toLabel    map[Symbol]string
	kinds      map[Symbol]Kind
	order      []Symbol
	goal       Symbol
	eoi        Symbol
	epsilon    Symbol
}

// NewTable creates a table and pre-registers, in order, GOAL (nonterminal),
// $ (terminal), and ε (terminal). This fixed order gives GOAL/$/ε stable ids
// across runs of the same program, though the ids themselves are never
// meant to be observed outside this package.
func NewTable() *Table {
	t := &Table{
		fromLabel: map[string]Symbol{},
		toLabel:   map[Symbol]string{},
		kinds:     map[Symbol]Kind{},
	}
	t.goal = t.mustIntern("GOAL", Nonterminal)
	t.eoi = t.mustIntern("$", Terminal)
	t.epsilon = t.mustIntern("ε", Terminal)
	return t
}

func (t *Table) mustIntern(label string, k Kind) Symbol {
	s, err := t.intern(label, k)
	if err != nil {
		panic(err.Error())
	}
	return s
}

func (t *Table) intern(label string, k Kind) (Symbol, error) {
	if _, ok := t.fromLabel[label]; ok {
		return 0, lrerrors.DuplicateLabel(label)
	}
	s := Symbol(t.next)
	t.next++
	t.fromLabel[label] = s
	t.toLabel[s] = label
	t.kinds[s] = k
	t.order = append(t.order, s)
	return s, nil
}

// NewTerminal registers label as a new terminal symbol. It fails if label is
// already registered, including if it collides with a reserved label.
func (t *Table) NewTerminal(label string) (Symbol, error) {
	return t.intern(label, Terminal)
}

// NewNonterminal registers label as a new nonterminal symbol. It fails if
// label is already registered, including if it collides with a reserved
// label.
func (t *Table) NewNonterminal(label string) (Symbol, error) {
	return t.intern(label, Nonterminal)
}

// MustNewTerminal is NewTerminal but panics on error; useful for grammars
// built up in Go source where duplicate labels are a programmer error.
func (t *Table) MustNewTerminal(label string) Symbol {
	s, err := t.NewTerminal(label)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// MustNewNonterminal is NewNonterminal but panics on error.
func (t *Table) MustNewNonterminal(label string) Symbol {
	s, err := t.NewNonterminal(label)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// IsTerminal reports whether s was registered as a terminal.
func (t *Table) IsTerminal(s Symbol) bool {
	return t.kinds[s] == Terminal
}

// Epsilon returns the reserved ε terminal.
func (t *Table) Epsilon() Symbol { return t.epsilon }

// Goal returns the reserved GOAL nonterminal.
func (t *Table) Goal() Symbol { return t.goal }

// EOI returns the reserved $ (end-of-input) terminal.
func (t *Table) EOI() Symbol { return t.eoi }

// Label returns the registered label for s, if any.
func (t *Table) Label(s Symbol) (string, bool) {
	l, ok := t.toLabel[s]
	return l, ok
}

// MustLabel is Label but panics if s is not registered; intended for
// internal formatting code that only ever handles symbols it minted itself.
func (t *Table) MustLabel(s Symbol) string {
	l, ok := t.toLabel[s]
	if !ok {
		panic(fmt.Sprintf("symbol %v has no registered label", s))
	}
	return l
}

// Lookup resolves a label back to its Symbol, if registered.
func (t *Table) Lookup(label string) (Symbol, bool) {
	s, ok := t.fromLabel[label]
	return s, ok
}

// Terminals returns every registered terminal, in registration order.
func (t *Table) Terminals() []Symbol {
	return t.filter(Terminal)
}

// Nonterminals returns every registered nonterminal, in registration order.
func (t *Table) Nonterminals() []Symbol {
	return t.filter(Nonterminal)
}

func (t *Table) filter(k Kind) []Symbol {
	out := make([]Symbol, 0, len(t.order))
	for _, s := range t.order {
		if t.kinds[s] == k {
			out = append(out, s)
		}
	}
	return out
}

// Set is a symbol-keyed set, used throughout firstfollow and lr1 for
// FIRST/FOLLOW sets and lookahead accumulation.
type Set = util.Set[Symbol]

// NewSet returns an empty Set of Symbols.
func NewSet() Set { return util.NewSet[Symbol]() }

// Sorted returns the elements of s in ascending Symbol-id order, the
// deterministic order spec.md §4.4 requires when FIRST sets contribute
// terminals to a closure computation.
func Sorted(s Set) []Symbol {
	els := s.Elements()
	// insertion sort is fine: symbol sets here are always small (bounded by
	// the grammar's terminal/nonterminal count).
	for i := 1; i < len(els); i++ {
		for j := i; j > 0 && els[j] < els[j-1]; j-- {
			els[j], els[j-1] = els[j-1], els[j]
		}
	}
	return els
}
