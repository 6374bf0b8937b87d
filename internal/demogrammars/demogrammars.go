// Package demogrammars builds the five bundled example grammars cmd/
// canonlrdemo exercises, grounded on the concrete end-to-end scenarios in
// spec.md's Testable Properties section: balanced parens, the list-of-atoms
// grammar, the dragon-book List/Pair grammar, the arithmetic-expression
// grammar, and a dangling-else grammar whose shift/reduce conflict is
// resolved deterministically toward shift.
package demogrammars

import (
	"github.com/dekarrin/canonlr/grammar"
	"github.com/dekarrin/canonlr/symbol"
)

// Named is a bundled grammar plus the whitespace-token classifier a demo
// input line is tokenized against.
type Named struct {
	Name     string
	Grammar  *grammar.Grammar
	Classify func(tok string) (symbol.Symbol, bool)
}

// All returns every bundled grammar, in a fixed order.
func All() []Named {
	return []Named{Parens(), ListOfAtoms(), ListPair(), Arithmetic(), DanglingElse()}
}

// Lookup finds a bundled grammar by name.
func Lookup(name string) (Named, bool) {
	for _, n := range All() {
		if n.Name == name {
			return n, true
		}
	}
	return Named{}, false
}

func classifyBy(tbl *symbol.Table, labels map[string]symbol.Symbol) func(string) (symbol.Symbol, bool) {
	return func(tok string) (symbol.Symbol, bool) {
		if tok == "$" {
			return tbl.EOI(), true
		}
		s, ok := labels[tok]
		return s, ok
	}
}

// Parens builds "E -> ( E ) | ε" (spec.md scenario 1).
func Parens() Named {
	tbl := symbol.NewTable()
	e := tbl.MustNewNonterminal("E")
	lp := tbl.MustNewTerminal("(")
	rp := tbl.MustNewTerminal(")")

	g := grammar.NewGrammar(tbl, e, []grammar.Production{
		grammar.New(e, []symbol.Symbol{lp, e, rp}),
		grammar.NewEpsilon(e, tbl.Epsilon()),
	})

	return Named{
		Name:    "parens",
		Grammar: g,
		Classify: classifyBy(tbl, map[string]symbol.Symbol{
			"(": lp, ")": rp,
		}),
	}
}

// ListOfAtoms builds "E1 -> id | E2 ; E2 -> ( E3 ) ; E3 -> E1 E3 | ε" (spec.md
// scenario 2).
func ListOfAtoms() Named {
	tbl := symbol.NewTable()
	e1 := tbl.MustNewNonterminal("E1")
	e2 := tbl.MustNewNonterminal("E2")
	e3 := tbl.MustNewNonterminal("E3")
	lp := tbl.MustNewTerminal("(")
	rp := tbl.MustNewTerminal(")")
	id := tbl.MustNewTerminal("id")

	g := grammar.NewGrammar(tbl, e1, []grammar.Production{
		grammar.New(e1, []symbol.Symbol{id}),
		grammar.New(e1, []symbol.Symbol{e2}),
		grammar.New(e2, []symbol.Symbol{lp, e3, rp}),
		grammar.New(e3, []symbol.Symbol{e1, e3}),
		grammar.NewEpsilon(e3, tbl.Epsilon()),
	})

	return Named{
		Name:    "list",
		Grammar: g,
		Classify: classifyBy(tbl, map[string]symbol.Symbol{
			"(": lp, ")": rp, "id": id,
		}),
	}
}

// ListPair builds the classic dragon-book "List -> List Pair | Pair ; Pair ->
// ( Pair ) | ( )" grammar (spec.md scenario 3).
func ListPair() Named {
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

	return Named{
		Name:    "listpair",
		Grammar: g,
		Classify: classifyBy(tbl, map[string]symbol.Symbol{
			"(": lp, ")": rp,
		}),
	}
}

// Arithmetic builds the standard left-associative expression grammar
// "E -> E + T | E - T | T ; T -> T * F | T / F | F ; F -> ( E ) | num | name"
// (spec.md scenario 4).
func Arithmetic() Named {
	tbl := symbol.NewTable()
	e := tbl.MustNewNonterminal("E")
	t := tbl.MustNewNonterminal("T")
	f := tbl.MustNewNonterminal("F")
	plus := tbl.MustNewTerminal("+")
	minus := tbl.MustNewTerminal("-")
	star := tbl.MustNewTerminal("*")
	slash := tbl.MustNewTerminal("/")
	lp := tbl.MustNewTerminal("(")
	rp := tbl.MustNewTerminal(")")
	num := tbl.MustNewTerminal("num")
	name := tbl.MustNewTerminal("name")

	g := grammar.NewGrammar(tbl, e, []grammar.Production{
		grammar.New(e, []symbol.Symbol{e, plus, t}),
		grammar.New(e, []symbol.Symbol{e, minus, t}),
		grammar.New(e, []symbol.Symbol{t}),
		grammar.New(t, []symbol.Symbol{t, star, f}),
		grammar.New(t, []symbol.Symbol{t, slash, f}),
		grammar.New(t, []symbol.Symbol{f}),
		grammar.New(f, []symbol.Symbol{lp, e, rp}),
		grammar.New(f, []symbol.Symbol{num}),
		grammar.New(f, []symbol.Symbol{name}),
	})

	return Named{
		Name:    "arith",
		Grammar: g,
		Classify: classifyBy(tbl, map[string]symbol.Symbol{
			"+": plus, "-": minus, "*": star, "/": slash,
			"(": lp, ")": rp, "num": num, "name": name,
		}),
	}
}

// DanglingElse builds "Stmt -> if E then Stmt | if E then Stmt else Stmt |
// other", the textbook grammar whose shift/reduce conflict spec.md scenario
// 5 requires to resolve toward shift (binding each else to its nearest if).
func DanglingElse() Named {
	tbl := symbol.NewTable()
	stmt := tbl.MustNewNonterminal("Stmt")
	e := tbl.MustNewNonterminal("E")
	ifTok := tbl.MustNewTerminal("if")
	then := tbl.MustNewTerminal("then")
	elseTok := tbl.MustNewTerminal("else")
	other := tbl.MustNewTerminal("other")
	cond := tbl.MustNewTerminal("cond")

	g := grammar.NewGrammar(tbl, stmt, []grammar.Production{
		grammar.New(stmt, []symbol.Symbol{ifTok, e, then, stmt}),
		grammar.New(stmt, []symbol.Symbol{ifTok, e, then, stmt, elseTok, stmt}),
		grammar.New(stmt, []symbol.Symbol{other}),
		grammar.New(e, []symbol.Symbol{cond}),
	})

	return Named{
		Name:    "dangling",
		Grammar: g,
		Classify: classifyBy(tbl, map[string]symbol.Symbol{
			"if": ifTok, "then": then, "else": elseTok, "other": other, "cond": cond,
		}),
	}
}
