package lrparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/canonlr/grammar"
	"github.com/dekarrin/canonlr/lrerrors"
	"github.com/dekarrin/canonlr/lrtable"
	"github.com/dekarrin/canonlr/symbol"
)

// token is a minimal token type carrying only the terminal label it stands
// for, letting tests build token streams from plain strings.
type token struct {
	label string
}

func toks(labels ...string) []token {
	out := make([]token, len(labels))
	for i, l := range labels {
		out[i] = token{label: l}
	}
	return out
}

func buildParensParser(t *testing.T) (*Parser[token], *symbol.Table) {
	t.Helper()
	tbl := symbol.NewTable()
	e := tbl.MustNewNonterminal("E")
	lp := tbl.MustNewTerminal("(")
	rp := tbl.MustNewTerminal(")")

	g := grammar.NewGrammar(tbl, e, []grammar.Production{
		grammar.New(e, []symbol.Symbol{lp, e, rp}),
		grammar.NewEpsilon(e, tbl.Epsilon()),
	})

	tables, err := lrtable.Build(g, nil)
	require.New(t).NoError(err)

	classify := func(tk token) symbol.Symbol {
		switch tk.label {
		case "(":
			return lp
		case ")":
			return rp
		case "$":
			return tbl.EOI()
		default:
			panic("unrecognized token: " + tk.label)
		}
	}

	return New(g, tables, classify), tbl
}

func TestParse_BalancedParens_EmptyInput(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	p, tbl := buildParensParser(t)
	tree, err := p.Parse(toks("$"))
	require.NoError(err)

	assert.Equal(tbl.MustLabel(tree.Symbol), "E")
	assert.False(tree.Terminal)
}

func TestParse_BalancedParens_Nested(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	p, tbl := buildParensParser(t)
	tree, err := p.Parse(toks("(", "(", ")", ")", "$"))
	require.NoError(err)

	assert.Equal("E", tbl.MustLabel(tree.Symbol))
	require.Len(tree.Children, 3)
	assert.Equal("(", tbl.MustLabel(tree.Children[0].Symbol))
	assert.Equal("E", tbl.MustLabel(tree.Children[1].Symbol))
	assert.Equal(")", tbl.MustLabel(tree.Children[2].Symbol))
}

func buildListPairParser(t *testing.T) (*Parser[token], *symbol.Table) {
	t.Helper()
	tbl := symbol.NewTable()
	list := tbl.MustNewNonterminal("List")
	pair := tbl.MustNewNonterminal("Pair")
	lp := tbl.MustNewTerminal("(")
	rp := tbl.MustNewTerminal(")")

	g := grammar.NewGrammar(tbl, list, []grammar.Production{
		grammar.New(list, []symbol.Symbol{list, pair}),
		grammar.New(list, []symbol.Symbol{pair}),
		grammar.New(pair, []symbol.Symbol{lp, pair, rp}),
		grammar.New(pair, []symbol.Symbol{lp, rp}),
	})

	tables, err := lrtable.Build(g, nil)
	require.New(t).NoError(err)

	classify := func(tk token) symbol.Symbol {
		switch tk.label {
		case "(":
			return lp
		case ")":
			return rp
		case "$":
			return tbl.EOI()
		default:
			panic("unrecognized token: " + tk.label)
		}
	}

	return New(g, tables, classify), tbl
}

func TestParse_ListPair_ListAndPairChildren(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	p, tbl := buildListPairParser(t)
	// ( ) ( ( ) ) $
	tree, err := p.Parse(toks("(", ")", "(", "(", ")", ")", "$"))
	require.NoError(err)

	assert.Equal("List", tbl.MustLabel(tree.Symbol))
	require.Len(tree.Children, 2)
	assert.Equal("List", tbl.MustLabel(tree.Children[0].Symbol))
	assert.Equal("Pair", tbl.MustLabel(tree.Children[1].Symbol))
}

func TestParse_UnexpectedToken(t *testing.T) {
	require := require.New(t)
	p, _ := buildParensParser(t)

	_, err := p.Parse(toks(")", "$"))
	require.Error(err)

	var parseErr *lrerrors.ParseError
	require.ErrorAs(err, &parseErr)
	require.Equal(lrerrors.UnexpectedToken, parseErr.Kind)
}

func TestParse_UnexpectedEndOfInput(t *testing.T) {
	require := require.New(t)
	p, _ := buildParensParser(t)

	_, err := p.Parse(nil)
	require.Error(err)

	var parseErr *lrerrors.ParseError
	require.ErrorAs(err, &parseErr)
	require.Equal(lrerrors.UnexpectedEndOfInput, parseErr.Kind)
}

func TestParse_TraceListenerInvoked(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	p, _ := buildParensParser(t)

	var lines []string
	p.SetTraceListener(func(s string) { lines = append(lines, s) })

	_, err := p.Parse(toks("(", ")", "$"))
	require.NoError(err)

	assert.NotEmpty(lines)
}
