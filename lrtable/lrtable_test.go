package lrtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/canonlr/grammar"
	"github.com/dekarrin/canonlr/lrerrors"
	"github.com/dekarrin/canonlr/symbol"
)

func buildParens(t *testing.T) *grammar.Grammar {
	t.Helper()
	tbl := symbol.NewTable()
	e := tbl.MustNewNonterminal("E")
	lp := tbl.MustNewTerminal("(")
	rp := tbl.MustNewTerminal(")")

	return grammar.NewGrammar(tbl, e, []grammar.Production{
		grammar.New(e, []symbol.Symbol{lp, e, rp}),
		grammar.NewEpsilon(e, tbl.Epsilon()),
	})
}

func TestBuild_AcceptActionExists(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	g := buildParens(t)
	tables, err := Build(g, nil)
	require.NoError(err)

	tbl := g.Table()
	accepting := false
	for s := 0; s < tables.NumStates(); s++ {
		if a, ok := tables.Action(s, tbl.EOI()); ok && a.Type == Accept {
			accepting = true
		}
	}
	assert.True(accepting)
}

// buildDanglingElse mirrors the dangling-else grammar in
// internal/demogrammars, used here directly (rather than importing that
// package, to keep lrtable's tests free of a dependency on cmd/
// canonlrdemo's bundled-grammar package).
func buildDanglingElse(t *testing.T) *grammar.Grammar {
	t.Helper()
	tbl := symbol.NewTable()
	stmt := tbl.MustNewNonterminal("Stmt")
	e := tbl.MustNewNonterminal("E")
	ifTok := tbl.MustNewTerminal("if")
	then := tbl.MustNewTerminal("then")
	elseTok := tbl.MustNewTerminal("else")
	other := tbl.MustNewTerminal("other")
	cond := tbl.MustNewTerminal("cond")

	return grammar.NewGrammar(tbl, stmt, []grammar.Production{
		grammar.New(stmt, []symbol.Symbol{ifTok, e, then, stmt}),
		grammar.New(stmt, []symbol.Symbol{ifTok, e, then, stmt, elseTok, stmt}),
		grammar.New(stmt, []symbol.Symbol{other}),
		grammar.New(e, []symbol.Symbol{cond}),
	})
}

func TestBuild_DanglingElse_OneShiftReduceDiagnostic(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	g := buildDanglingElse(t)

	var diags []Diagnostic
	tables, err := Build(g, func(d Diagnostic) { diags = append(diags, d) })
	require.NoError(err)
	require.NotNil(tables)

	assert.Len(diags, 1)
	assert.Equal(ShiftReduceResolvedAsShift, diags[0].Kind)
	assert.Equal(Shift, tables_mustShiftWon(t, tables, g, diags[0].State))
}

// tables_mustShiftWon looks up the ACTION cell on else in the state the
// dangling-else conflict occurred in and returns its resolved type, to
// confirm shift actually won the cell (not just that a diagnostic fired).
func tables_mustShiftWon(t *testing.T, tables *Tables, g *grammar.Grammar, state int) ActionType {
	t.Helper()
	tbl := g.Table()
	elseTok, ok := tbl.Lookup("else")
	require.New(t).True(ok)

	if a, ok := tables.Action(state, elseTok); ok {
		return a.Type
	}
	t.Fatal("no ACTION entry found on else terminal in the conflict state")
	return 0
}

// buildReduceReduceConflict builds a grammar with two distinct productions
// that reduce on the same lookahead in the same state: S -> A | B ; A -> a ;
// B -> a. Both A -> a and B -> a place a Reduce action in the same state on
// whatever terminal follows S, but FOLLOW(A) == FOLLOW(B) == FOLLOW(S), so
// after shifting "a" in state 0, the resulting state contains both
// [A -> a., $] and [B -> a., $]: an irreconcilable reduce/reduce conflict.
func buildReduceReduceConflict(t *testing.T) *grammar.Grammar {
	t.Helper()
	tbl := symbol.NewTable()
	s := tbl.MustNewNonterminal("S")
	a := tbl.MustNewNonterminal("A")
	b := tbl.MustNewNonterminal("B")
	term := tbl.MustNewTerminal("a")

	return grammar.NewGrammar(tbl, s, []grammar.Production{
		grammar.New(s, []symbol.Symbol{a}),
		grammar.New(s, []symbol.Symbol{b}),
		grammar.New(a, []symbol.Symbol{term}),
		grammar.New(b, []symbol.Symbol{term}),
	})
}

func TestBuild_ReduceReduceConflict_Fatal(t *testing.T) {
	require := require.New(t)
	g := buildReduceReduceConflict(t)

	_, err := Build(g, nil)
	require.Error(err)

	var conflictErr *lrerrors.TableConflictError
	require.ErrorAs(err, &conflictErr)
}

func TestBuild_TwiceYieldsIdenticalStringOutput(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g := buildParens(t)

	t1, err := Build(g, nil)
	require.NoError(err)
	t2, err := Build(g, nil)
	require.NoError(err)

	assert.Equal(t1.String(), t2.String())
}
