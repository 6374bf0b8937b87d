// Package lrparse implements the shift-reduce parser driver over a
// grammar's lrtable.Tables, grounded on original_source/src/parser.rs and
// parse_tree.rs, with the tree-dump rendering style of
// internal/ictiobus/types/tree.go and the trace-listener idiom of
// internal/ictiobus/parse/lr.go.
package lrparse

import (
	"fmt"
	"strings"

	"github.com/dekarrin/canonlr/symbol"
)

const (
	treeLevelEmpty   = "    "
	treeLevelOngoing = "│   "
	treeLevelLast    = "└── "
	treeLevelBranch  = "├── "
)

// Tree is a concrete parse tree node. Leaves carry the source token that
// produced them; interior nodes carry the nonterminal a reduce built them
// from and the subtrees reattached as children, left to right.
type Tree[T any] struct {
	Symbol   symbol.Symbol
	Token    T
	Terminal bool
	Children []*Tree[T]
}

func newLeaf[T any](sym symbol.Symbol, tok T) *Tree[T] {
	return &Tree[T]{Symbol: sym, Token: tok, Terminal: true}
}

func newInterior[T any](sym symbol.Symbol, children []*Tree[T]) *Tree[T] {
	return &Tree[T]{Symbol: sym, Children: children}
}

// Copy returns a deep copy of t.
func (t *Tree[T]) Copy() *Tree[T] {
	if t == nil {
		return nil
	}
	cp := &Tree[T]{Symbol: t.Symbol, Token: t.Token, Terminal: t.Terminal}
	if len(t.Children) > 0 {
		cp.Children = make([]*Tree[T], len(t.Children))
		for i, c := range t.Children {
			cp.Children[i] = c.Copy()
		}
	}
	return cp
}

// Equal reports whether t and o have the same shape and symbols. Token
// values are not compared unless T implements a notion of equality the
// caller applies themselves; this mirrors the teacher's ParseTree.Equal,
// which likewise only compares Source and structure, not payload identity.
func (t *Tree[T]) Equal(o *Tree[T]) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Symbol != o.Symbol || t.Terminal != o.Terminal || len(t.Children) != len(o.Children) {
		return false
	}
	for i := range t.Children {
		if !t.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// String renders t as an indented tree, labeling each node with tbl's label
// for its symbol, in the branch-glyph style of
// internal/ictiobus/types/tree.go's leveledStr.
func (t *Tree[T]) String(tbl *symbol.Table) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", t.label(tbl))
	for i, c := range t.Children {
		c.writeLeveled(&sb, tbl, "", i == len(t.Children)-1)
	}
	return sb.String()
}

func (t *Tree[T]) writeLeveled(sb *strings.Builder, tbl *symbol.Table, prefix string, last bool) {
	connector := treeLevelBranch
	childPrefix := prefix + treeLevelOngoing
	if last {
		connector = treeLevelLast
		childPrefix = prefix + treeLevelEmpty
	}
	fmt.Fprintf(sb, "%s%s%s\n", prefix, connector, t.label(tbl))

	for i, c := range t.Children {
		c.writeLeveled(sb, tbl, childPrefix, i == len(t.Children)-1)
	}
}

func (t *Tree[T]) label(tbl *symbol.Table) string {
	if t.Terminal {
		return fmt.Sprintf("%s (%v)", tbl.MustLabel(t.Symbol), t.Token)
	}
	return tbl.MustLabel(t.Symbol)
}
