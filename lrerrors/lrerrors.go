// Package lrerrors defines the structured error kinds raised during grammar
// construction, table construction, and parsing. It is grounded on tunaq's
// internal/tqerrors: struct error types built by constructor functions, each implementing Error() and Unwrap(), so callers can recover
// the specific kind with errors.As instead of string-matching.
package lrerrors

import (
	"fmt"

	"github.com/dekarrin/canonlr/internal/util"
)

// GrammarDefinitionError is raised while building a SymbolTable or Grammar:
// a duplicate label, or a production referencing a symbol that was never
// registered.
type GrammarDefinitionError struct {
	msg   string
	cause error
}

func (e *GrammarDefinitionError) Error() string { return e.msg }
func (e *GrammarDefinitionError) Unwrap() error { return e.cause }

// DuplicateLabel reports that label was already registered in the
// SymbolTable.
func DuplicateLabel(label string) error {
	return &GrammarDefinitionError{msg: fmt.Sprintf("symbol %q is already defined", label)}
}

// UnregisteredSymbol reports that a production referenced a symbol that was
// never interned by the SymbolTable it was built against.
func UnregisteredSymbol(label string) error {
	return &GrammarDefinitionError{msg: fmt.Sprintf("symbol %q is not registered in this grammar's symbol table", label)}
}

// TableConflictError is raised during ParseTables construction for a
// conflict that has no safe resolution: reduce/reduce, contradictory
// shift/shift, or contradictory GOTO entries. It is fatal for the grammar.
type TableConflictError struct {
	msg   string
	cause error
}

func (e *TableConflictError) Error() string { return e.msg }
func (e *TableConflictError) Unwrap() error { return e.cause }

// ReduceReduceConflict reports two productions that both want to reduce on
// the same (state, lookahead) cell.
func ReduceReduceConflict(state uint32, terminal string, first, second string) error {
	return &TableConflictError{msg: fmt.Sprintf(
		"reduce/reduce conflict in state %d on %q: %s vs %s", state, terminal, first, second,
	)}
}

// ShiftShiftConflict reports two items that disagree about which state to
// shift into on the same (state, terminal) cell; this indicates a corrupt
// canonical collection and must never occur for a correctly built one.
func ShiftShiftConflict(state uint32, terminal string, firstTarget, secondTarget uint32) error {
	return &TableConflictError{msg: fmt.Sprintf(
		"shift/shift conflict in state %d on %q: state %d vs state %d", state, terminal, firstTarget, secondTarget,
	)}
}

// GotoConflict reports two different GOTO targets recorded for the same
// (state, nonterminal) cell.
func GotoConflict(state uint32, nonterminal string, firstTarget, secondTarget uint32) error {
	return &TableConflictError{msg: fmt.Sprintf(
		"conflicting GOTO entries for state %d on %q: %d vs %d", state, nonterminal, firstTarget, secondTarget,
	)}
}

// ParseErrorKind distinguishes the ways Parser.Parse can fail.
type ParseErrorKind int

const (
	// UnexpectedToken means no ACTION entry exists for (state, symbol).
	UnexpectedToken ParseErrorKind = iota
	// MissingGoto means a reduce produced a (state, nonterminal) pair with
	// no GOTO entry.
	MissingGoto
	// UnexpectedEndOfInput means the token stream was exhausted before an
	// Accept action fired.
	UnexpectedEndOfInput
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case MissingGoto:
		return "MissingGoto"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	default:
		return "UnknownParseErrorKind"
	}
}

// ParseError is raised by Parser.Parse. It aborts the current parse only;
// the Parser instance that raised it remains valid and reusable.
type ParseError struct {
	Kind       ParseErrorKind
	State      uint32
	Symbol     string
	Expected   []string
	Nonterminal string
}

// Unwrap always returns nil: a ParseError is raised at the parser driver's
// boundary and never wraps a lower-level cause, but the method exists so
// callers can uniformly errors.As into any of this package's error kinds.
func (e *ParseError) Unwrap() error { return nil }

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		if len(e.Expected) > 0 {
			return fmt.Sprintf("unexpected token %q in state %d (expected one of: %s)",
				e.Symbol, e.State, joinOr(e.Expected))
		}
		return fmt.Sprintf("unexpected token %q in state %d", e.Symbol, e.State)
	case MissingGoto:
		return fmt.Sprintf("no GOTO entry for state %d on nonterminal %q", e.State, e.Nonterminal)
	case UnexpectedEndOfInput:
		return "unexpected end of input before an Accept action"
	default:
		return "unknown parse error"
	}
}

func joinOr(items []string) string {
	return util.MakeTextList(items, "or")
}

// NewUnexpectedToken builds a ParseError describing an ACTION-table miss.
func NewUnexpectedToken(state uint32, symbol string, expected []string) error {
	return &ParseError{Kind: UnexpectedToken, State: state, Symbol: symbol, Expected: expected}
}

// NewMissingGoto builds a ParseError describing a GOTO-table miss after a
// reduce.
func NewMissingGoto(state uint32, nonterminal string) error {
	return &ParseError{Kind: MissingGoto, State: state, Nonterminal: nonterminal}
}

// NewUnexpectedEndOfInput builds a ParseError for a token stream exhausted
// before Accept.
func NewUnexpectedEndOfInput() error {
	return &ParseError{Kind: UnexpectedEndOfInput}
}
