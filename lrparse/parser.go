package lrparse

import (
	"fmt"

	"github.com/dekarrin/canonlr/grammar"
	"github.com/dekarrin/canonlr/internal/util"
	"github.com/dekarrin/canonlr/lrerrors"
	"github.com/dekarrin/canonlr/lrtable"
	"github.com/dekarrin/canonlr/symbol"
)

// Parser[T] drives lrtable.Tables over a stream of tokens of type T to
// build a Tree[T]. A Parser is immutable after construction and safe for
// concurrent reuse across independent Parse calls: all of Parse's mutable
// state (stacks) is local to the call, and the optional trace listener is
// only ever read, never written, once SetTraceListener returns.
type Parser[T any] struct {
	grammar  *grammar.Grammar
	tables   *lrtable.Tables
	classify func(T) symbol.Symbol
	trace    func(s string)
}

// New builds a Parser from a grammar, its already-derived tables, and a
// pure function mapping each token of type T to the terminal Symbol it
// represents. tables must have been built from g (or an Equal grammar); New
// does not re-derive or validate this.
func New[T any](g *grammar.Grammar, tables *lrtable.Tables, classify func(T) symbol.Symbol) *Parser[T] {
	return &Parser[T]{grammar: g, tables: tables, classify: classify}
}

// SetTraceListener installs fn to receive a line of text for every shift,
// reduce, and accept step of every subsequent Parse call, mirroring
// internal/ictiobus/parse/lr.go's RegisterTraceListener. A nil fn disables
// tracing.
func (p *Parser[T]) SetTraceListener(fn func(s string)) {
	p.trace = fn
}

func (p *Parser[T]) notifyTrace(format string, args ...any) {
	if p.trace != nil {
		p.trace(fmt.Sprintf(format, args...))
	}
}

// Parse runs the shift-reduce driver over tokens. Per spec.md §4.7, the
// caller must append an explicit end-of-input token whose classify result
// is the grammar's $ symbol; Parse does not append one itself, and returns
// lrerrors.UnexpectedEndOfInput if the stream runs out before an Accept
// action fires.
func (p *Parser[T]) Parse(tokens []T) (*Tree[T], error) {
	tbl := p.grammar.Table()

	stateStack := util.Stack[int]{Of: []int{0}}
	treeStack := util.Stack[*Tree[T]]{}

	pos := 0
	nextToken := func() (T, symbol.Symbol, bool) {
		if pos >= len(tokens) {
			var zero T
			return zero, 0, false
		}
		tok := tokens[pos]
		pos++
		return tok, p.classify(tok), true
	}

	tok, sym, ok := nextToken()
	if !ok {
		return nil, lrerrors.NewUnexpectedEndOfInput()
	}

	for {
		state := stateStack.Peek()

		action, found := p.tables.Action(state, sym)
		if !found {
			return nil, lrerrors.NewUnexpectedToken(uint32(state), tbl.MustLabel(sym), p.expectedLabels(state))
		}

		switch action.Type {
		case lrtable.Shift:
			p.notifyTrace("shift %s -> state %d", tbl.MustLabel(sym), action.State)
			treeStack.Push(newLeaf(sym, tok))
			stateStack.Push(action.State)

			tok, sym, ok = nextToken()
			if !ok {
				return nil, lrerrors.NewUnexpectedEndOfInput()
			}

		case lrtable.Reduce:
			rhs := effectiveRHS(action.Production, tbl.Epsilon())
			n := len(rhs)

			p.notifyTrace("reduce by %s", action.Production.String(tbl))

			children := make([]*Tree[T], n)
			for i := 0; i < n; i++ {
				stateStack.Pop()
				children[n-1-i] = treeStack.Pop()
			}

			node := newInterior(action.Production.LHS, children)
			treeStack.Push(node)

			top := stateStack.Peek()
			next, ok := p.tables.Goto(top, action.Production.LHS)
			if !ok {
				return nil, lrerrors.NewMissingGoto(uint32(top), tbl.MustLabel(action.Production.LHS))
			}
			stateStack.Push(next)

		case lrtable.Accept:
			p.notifyTrace("accept")
			if treeStack.Len() != 1 {
				return nil, fmt.Errorf("lrparse: accept reached with %d trees on the stack, want 1", treeStack.Len())
			}
			return treeStack.Peek(), nil
		}
	}
}

// effectiveRHS returns p's RHS with any epsilon symbols filtered out, per
// spec.md §4.7's Reduce step.
func effectiveRHS(p grammar.Production, eps symbol.Symbol) []symbol.Symbol {
	out := make([]symbol.Symbol, 0, len(p.RHS))
	for _, s := range p.RHS {
		if s != eps {
			out = append(out, s)
		}
	}
	return out
}

// expectedLabels builds the list of terminal labels, in symbol registration
// order, that would have been accepted in state, for use in an
// UnexpectedToken error's Expected field.
func (p *Parser[T]) expectedLabels(state int) []string {
	tbl := p.grammar.Table()
	var out []string
	for _, term := range tbl.Terminals() {
		if _, ok := p.tables.Action(state, term); ok {
			out = append(out, tbl.MustLabel(term))
		}
	}
	return out
}
