// Package lrtable derives ACTION and GOTO tables from a grammar's canonical
// LR(1) collection, grounded on original_source/src/parse_tables.rs and
// action.rs, with the conflict-diagnostic plumbing modeled on
// internal/ictiobus/parse/lraction.go's LRAction/LRActionType and
// clr1.go's per-state conflict checking.
package lrtable

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/canonlr/firstfollow"
	"github.com/dekarrin/canonlr/grammar"
	"github.com/dekarrin/canonlr/lr1"
	"github.com/dekarrin/canonlr/lrerrors"
	"github.com/dekarrin/canonlr/symbol"
)

// ActionType distinguishes the three kinds of parser action.
type ActionType int

const (
	Shift ActionType = iota
	Reduce
	Accept
)

func (t ActionType) String() string {
	switch t {
	case Shift:
		return "Shift"
	case Reduce:
		return "Reduce"
	case Accept:
		return "Accept"
	default:
		return "UnknownActionType"
	}
}

// Action is a single ACTION-table cell value.
type Action struct {
	Type       ActionType
	State      int                 // valid when Type == Shift
	Production grammar.Production // valid when Type == Reduce
}

func (a Action) String(tbl *symbol.Table) string {
	switch a.Type {
	case Shift:
		return fmt.Sprintf("Shift(%d)", a.State)
	case Reduce:
		return fmt.Sprintf("Reduce(%s)", a.Production.String(tbl))
	case Accept:
		return "Accept"
	default:
		return "?"
	}
}

func (a Action) equal(o Action) bool {
	if a.Type != o.Type {
		return false
	}
	switch a.Type {
	case Shift:
		return a.State == o.State
	case Reduce:
		return a.Production.Equal(o.Production)
	default:
		return true
	}
}

// DiagnosticKind distinguishes the kinds of non-fatal table-construction
// diagnostics.
type DiagnosticKind int

const (
	// ShiftReduceResolvedAsShift means two items disagreed on a cell and
	// the shift action was kept, per spec.md §4.6's "shift wins" policy.
	ShiftReduceResolvedAsShift DiagnosticKind = iota
)

// Diagnostic describes a non-fatal event during table construction.
type Diagnostic struct {
	Kind      DiagnosticKind
	State     int
	Symbol    string
	Suppressed Action
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("shift/reduce conflict in state %d on %q resolved in favor of shift (discarded %s)",
		d.State, d.Symbol, d.Suppressed.Type)
}

// actionKey and gotoKey index the ACTION/GOTO maps.
type actionKey struct {
	State  int
	Symbol symbol.Symbol
}

// Tables holds the completed ACTION and GOTO tables for a grammar plus the
// number of states in the canonical collection they were derived from.
type Tables struct {
	grammar *grammar.Grammar
	action  map[actionKey]Action
	goto_   map[actionKey]int
	states  int
}

// NumStates returns the number of states in the underlying canonical
// collection.
func (t *Tables) NumStates() int { return t.states }

// Action returns the ACTION-table entry for (state, terminal), if any.
func (t *Tables) Action(state int, terminal symbol.Symbol) (Action, bool) {
	a, ok := t.action[actionKey{State: state, Symbol: terminal}]
	return a, ok
}

// Goto returns the GOTO-table entry for (state, nonterminal), if any.
func (t *Tables) Goto(state int, nonterminal symbol.Symbol) (int, bool) {
	s, ok := t.goto_[actionKey{State: state, Symbol: nonterminal}]
	return s, ok
}

// Build constructs a grammar's canonical LR(1) collection and derives its
// ACTION/GOTO tables. sink, if non-nil, receives one Diagnostic per
// shift/reduce conflict resolved in favor of shift; it is never called for
// fatal conflicts, which are returned as a *lrerrors.TableConflictError
// instead (spec.md §4.6).
func Build(g *grammar.Grammar, sink func(Diagnostic)) (*Tables, error) {
	ff := firstfollow.New(g)
	cc := lr1.Build(g, ff)
	return build(g, cc, sink)
}

func build(g *grammar.Grammar, cc *lr1.Collection, sink func(Diagnostic)) (*Tables, error) {
	tbl := g.Table()

	t := &Tables{
		grammar: g,
		action:  map[actionKey]Action{},
		goto_:   map[actionKey]int{},
		states:  len(cc.States),
	}

	for i, set := range cc.States {
		for _, it := range set.Elements() {
			unseen := it.SymbolsAfterDot()

			switch {
			case len(unseen) > 0 && unseen[0] != tbl.Epsilon():
				x := unseen[0]
				if j, ok := cc.Transition(i, x); ok && tbl.IsTerminal(x) {
					if err := t.addAction(i, x, Action{Type: Shift, State: j}, sink); err != nil {
						return nil, err
					}
				}

			case len(unseen) == 0 && it.IsTarget(tbl):
				if err := t.addAction(i, tbl.EOI(), Action{Type: Accept}, sink); err != nil {
					return nil, err
				}

			case len(unseen) == 0 || unseen[0] == tbl.Epsilon():
				action := Action{Type: Reduce, Production: it.Production}
				if err := t.addAction(i, it.Lookahead, action, sink); err != nil {
					return nil, err
				}

			default:
				panic("lrtable: unreachable item shape during table construction")
			}
		}

		for _, nt := range g.Nonterminals() {
			if j, ok := cc.Transition(i, nt); ok {
				if err := t.addGoto(i, nt, j); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

func (t *Tables) addAction(state int, sym symbol.Symbol, action Action, sink func(Diagnostic)) error {
	key := actionKey{State: state, Symbol: sym}
	existing, ok := t.action[key]
	if !ok {
		t.action[key] = action
		return nil
	}
	if existing.equal(action) {
		return nil
	}

	label := t.grammar.Table().MustLabel(sym)

	switch {
	case action.Type == Shift && existing.Type == Reduce:
		t.action[key] = action
		if sink != nil {
			sink(Diagnostic{Kind: ShiftReduceResolvedAsShift, State: state, Symbol: label, Suppressed: existing})
		}
		return nil
	case action.Type == Reduce && existing.Type == Shift:
		if sink != nil {
			sink(Diagnostic{Kind: ShiftReduceResolvedAsShift, State: state, Symbol: label, Suppressed: action})
		}
		return nil
	case action.Type == Reduce && existing.Type == Reduce:
		return lrerrors.ReduceReduceConflict(uint32(state), label,
			existing.Production.String(t.grammar.Table()), action.Production.String(t.grammar.Table()))
	case action.Type == Shift && existing.Type == Shift:
		return lrerrors.ShiftShiftConflict(uint32(state), label, uint32(existing.State), uint32(action.State))
	default:
		return fmt.Errorf("lrtable: unresolvable conflict in state %d on %q: %s vs %s",
			state, label, existing, action)
	}
}

func (t *Tables) addGoto(from int, nt symbol.Symbol, to int) error {
	key := actionKey{State: from, Symbol: nt}
	if existing, ok := t.goto_[key]; ok {
		if existing != to {
			return lrerrors.GotoConflict(uint32(from), t.grammar.Table().MustLabel(nt), uint32(existing), uint32(to))
		}
		return nil
	}
	t.goto_[key] = to
	return nil
}

// String renders the ACTION and GOTO tables at a default 80-column width,
// in the style of internal/ictiobus/parse/clr1.go's
// canonicalLR1Table.String().
func (t *Tables) String() string {
	return t.StringWidth(80)
}

// StringWidth is String with an explicit table width, so callers (like
// cmd/canonlrdemo's --width flag) can fit the dump to their terminal.
func (t *Tables) StringWidth(width int) string {
	tbl := t.grammar.Table()

	type actionRow struct {
		state  int
		symbol string
		action string
	}
	var actions []actionRow
	for k, v := range t.action {
		actions = append(actions, actionRow{k.State, tbl.MustLabel(k.Symbol), v.String(tbl)})
	}
	sort.Slice(actions, func(i, j int) bool {
		if actions[i].state != actions[j].state {
			return actions[i].state < actions[j].state
		}
		return actions[i].symbol < actions[j].symbol
	})

	actionData := [][]string{{"STATE", "SYMBOL", "ACTION"}}
	for _, r := range actions {
		actionData = append(actionData, []string{fmt.Sprint(r.state), r.symbol, r.action})
	}

	type gotoRow struct {
		state  int
		symbol string
		target int
	}
	var gotos []gotoRow
	for k, v := range t.goto_ {
		gotos = append(gotos, gotoRow{k.State, tbl.MustLabel(k.Symbol), v})
	}
	sort.Slice(gotos, func(i, j int) bool {
		if gotos[i].state != gotos[j].state {
			return gotos[i].state < gotos[j].state
		}
		return gotos[i].symbol < gotos[j].symbol
	})

	gotoData := [][]string{{"STATE", "NONTERMINAL", "TARGET"}}
	for _, r := range gotos {
		gotoData = append(gotoData, []string{fmt.Sprint(r.state), r.symbol, fmt.Sprint(r.target)})
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "parse tables (%d states)\n\n", t.states)
	sb.WriteString(rosed.Edit("").InsertTableOpts(0, actionData, width, rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}).String())
	sb.WriteString("\n\n")
	sb.WriteString(rosed.Edit("").InsertTableOpts(0, gotoData, width, rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}).String())
	sb.WriteRune('\n')
	return sb.String()
}
