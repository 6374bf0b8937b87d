package lr1

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/canonlr/firstfollow"
	"github.com/dekarrin/canonlr/grammar"
	"github.com/dekarrin/canonlr/symbol"
)

// buildListPair mirrors the dragon-book grammar used in
// original_source/src/canonical_collection.rs's closure_01/02/go_to_01
// tests.
func buildListPair(t *testing.T) (*grammar.Grammar, *firstfollow.Table, map[string]symbol.Symbol) {
	t.Helper()
	tbl := symbol.NewTable()
	list := tbl.MustNewNonterminal("list")
	pair := tbl.MustNewNonterminal("pair")
	lp := tbl.MustNewTerminal("(")
	rp := tbl.MustNewTerminal(")")

	g := grammar.NewGrammar(tbl, list, []grammar.Production{
		grammar.New(list, []symbol.Symbol{list, pair}),
		grammar.New(list, []symbol.Symbol{pair}),
		grammar.New(pair, []symbol.Symbol{lp, pair, rp}),
		grammar.New(pair, []symbol.Symbol{lp, rp}),
	})
	ff := firstfollow.New(g)

	return g, ff, map[string]symbol.Symbol{
		"list": list, "pair": pair, "(": lp, ")": rp,
	}
}

func TestClosure_InitialState(t *testing.T) {
	assert := assert.New(t)
	g, ff, syms := buildListPair(t)
	tbl := g.Table()

	initial := NewItemSet(New(g.Augmented(), 0, tbl.EOI()))
	result := Closure(g, ff, initial)

	list, pair, lp, rp := syms["list"], syms["pair"], syms["("], syms[")"]

	expect := []Item{
		New(g.Augmented(), 0, tbl.EOI()),
		New(grammar.New(list, []symbol.Symbol{list, pair}), 0, tbl.EOI()),
		New(grammar.New(list, []symbol.Symbol{list, pair}), 0, lp),
		New(grammar.New(list, []symbol.Symbol{pair}), 0, tbl.EOI()),
		New(grammar.New(list, []symbol.Symbol{pair}), 0, lp),
		New(grammar.New(pair, []symbol.Symbol{lp, pair, rp}), 0, tbl.EOI()),
		New(grammar.New(pair, []symbol.Symbol{lp, pair, rp}), 0, lp),
		New(grammar.New(pair, []symbol.Symbol{lp, rp}), 0, tbl.EOI()),
		New(grammar.New(pair, []symbol.Symbol{lp, rp}), 0, lp),
	}

	assert.Equal(len(expect), result.Len())
	for _, it := range expect {
		assert.True(result.Has(it), "closure missing %s", it.String(tbl))
	}
}

func TestGoTo_OnList(t *testing.T) {
	assert := assert.New(t)
	g, ff, syms := buildListPair(t)
	tbl := g.Table()
	list, pair, lp, rp := syms["list"], syms["pair"], syms["("], syms[")"]

	cc0 := Closure(g, ff, NewItemSet(New(g.Augmented(), 0, tbl.EOI())))
	result := GoTo(g, ff, cc0, list)

	expect := NewItemSet(
		New(g.Augmented(), 1, tbl.EOI()),
		New(grammar.New(list, []symbol.Symbol{list, pair}), 1, tbl.EOI()),
		New(grammar.New(list, []symbol.Symbol{list, pair}), 1, lp),
		New(grammar.New(pair, []symbol.Symbol{lp, pair, rp}), 0, tbl.EOI()),
		New(grammar.New(pair, []symbol.Symbol{lp, pair, rp}), 0, lp),
		New(grammar.New(pair, []symbol.Symbol{lp, rp}), 0, tbl.EOI()),
		New(grammar.New(pair, []symbol.Symbol{lp, rp}), 0, lp),
	)

	assert.Equal(expect.Len(), result.Len())
	for _, it := range expect.Elements() {
		assert.True(result.Has(it))
	}
}

func TestBuild_StateZeroIsInitialClosure(t *testing.T) {
	assert := assert.New(t)
	g, ff, _ := buildListPair(t)
	tbl := g.Table()

	cc := Build(g, ff)

	initial := Closure(g, ff, NewItemSet(New(g.Augmented(), 0, tbl.EOI())))
	assert.Equal(initial.Key(), cc.States[0].Key())
}

func TestBuild_TransitionsAreDeterministic(t *testing.T) {
	assert := assert.New(t)
	g, ff, _ := buildListPair(t)

	cc1 := Build(g, ff)
	cc2 := Build(g, ff)

	assert.Equal(len(cc1.States), len(cc2.States))
	for k, v := range cc1.Transitions {
		v2, ok := cc2.Transitions[k]
		assert.True(ok)
		assert.Equal(v, v2)
	}
}

func TestItem_SymbolsAfterDot(t *testing.T) {
	tbl := symbol.NewTable()
	s := tbl.MustNewNonterminal("s")
	a := tbl.MustNewTerminal("a")
	b := tbl.MustNewTerminal("b")
	c := tbl.MustNewTerminal("c")
	d := tbl.MustNewTerminal("d")
	e := tbl.MustNewTerminal("e")

	p := grammar.New(s, []symbol.Symbol{a, b, c, d, e})

	testCases := []struct {
		dot  int
		want []symbol.Symbol
	}{
		{0, []symbol.Symbol{a, b, c, d, e}},
		{1, []symbol.Symbol{b, c, d, e}},
		{2, []symbol.Symbol{c, d, e}},
		{3, []symbol.Symbol{d, e}},
		{4, []symbol.Symbol{e}},
		{5, []symbol.Symbol{}},
	}

	for _, tc := range testCases {
		item := New(p, tc.dot, e)
		got := item.SymbolsAfterDot()
		assert.Equal(t, tc.want, got)
	}
}

func TestItem_IsTarget(t *testing.T) {
	tbl := symbol.NewTable()
	a := tbl.MustNewTerminal("a")
	b := tbl.MustNewTerminal("b")

	testCases := []struct {
		name string
		item Item
		want bool
	}{
		{
			name: "goal production with eoi lookahead",
			item: New(grammar.New(tbl.Goal(), []symbol.Symbol{a}), 0, tbl.EOI()),
			want: true,
		},
		{
			name: "non-goal lhs",
			item: New(grammar.New(tbl.MustNewNonterminal("s"), []symbol.Symbol{a}), 0, tbl.EOI()),
			want: false,
		},
		{
			name: "goal production with non-eoi lookahead",
			item: New(grammar.New(tbl.Goal(), []symbol.Symbol{a}), 0, b),
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.item.IsTarget(tbl))
		})
	}
}
