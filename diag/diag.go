// ==============================================================================================
// FILE: diag/diag.go
// ==============================================================================================
// PACKAGE: diag
// PURPOSE: The error taxonomy of FL. Every lexical, parse, and runtime failure is a
//          *Error carrying a Kind and the SourceLoc where it occurred, per §7 of
//          the language core specification. Nothing here recovers an error; diag only
//          builds and formats them.
// ==============================================================================================

package diag

import (
	"fmt"

	"github.com/pkg/errors"

	"foolang/token"
)

// Kind classifies an error by the layer that raised it and, within the runtime
// layer, by the nature of the failure. The set is closed and fixed by §7.
type Kind string

const (
	Lexical   Kind = "LexicalError"
	Parse     Kind = "ParseError"
	Name      Kind = "NameError"
	TypeErr   Kind = "TypeError"
	Arity     Kind = "ArityError"
	Domain    Kind = "DomainError"
	Bounds    Kind = "BoundsError"
	Import    Kind = "ImportError"
	FieldErr  Kind = "FieldError"
	Assertion Kind = "AssertionError" // implementation bugs, e.g. scope-stack underflow
)

// Error is the single error type produced by every FL component. It implements
// the standard error interface so it can be returned, wrapped, and compared like
// any other Go error, while still carrying the Kind/Loc pair diagnostics need.
type Error struct {
	Kind  Kind
	Loc   token.SourceLoc
	Msg   string
	Cause error // underlying error this was wrapped over, if any; nil for most Errors
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Msg, e.Loc)
}

// Unwrap exposes Cause to errors.Is/errors.As, and to pkg/errors.Cause for
// errors built through ImportErrWrap.
func (e *Error) Unwrap() error {
	return e.Cause
}

func New(kind Kind, loc token.SourceLoc, format string, args ...any) *Error {
	return &Error{Kind: kind, Loc: loc, Msg: fmt.Sprintf(format, args...)}
}

func Lex(loc token.SourceLoc, format string, args ...any) *Error {
	return New(Lexical, loc, format, args...)
}

func ParseErr(loc token.SourceLoc, format string, args ...any) *Error {
	return New(Parse, loc, format, args...)
}

func NameErr(loc token.SourceLoc, format string, args ...any) *Error {
	return New(Name, loc, format, args...)
}

func TypeError(loc token.SourceLoc, format string, args ...any) *Error {
	return New(TypeErr, loc, format, args...)
}

func ArityErr(loc token.SourceLoc, format string, args ...any) *Error {
	return New(Arity, loc, format, args...)
}

func DomainErr(loc token.SourceLoc, format string, args ...any) *Error {
	return New(Domain, loc, format, args...)
}

func BoundsErr(loc token.SourceLoc, format string, args ...any) *Error {
	return New(Bounds, loc, format, args...)
}

func ImportErr(loc token.SourceLoc, format string, args ...any) *Error {
	return New(Import, loc, format, args...)
}

// ImportErrWrap builds an ImportError over an underlying Go error (a failed
// read, a propagated os error), the way db47h-ngaro's vm.Run wraps a
// recovered runtime error with positional context via errors.Wrapf: the
// original error is kept as Cause while Msg carries the combined text.
func ImportErrWrap(loc token.SourceLoc, cause error, format string, args ...any) *Error {
	wrapped := errors.Wrapf(cause, format, args...)
	return &Error{Kind: Import, Loc: loc, Msg: wrapped.Error(), Cause: cause}
}

func FieldErrf(loc token.SourceLoc, format string, args ...any) *Error {
	return New(FieldErr, loc, format, args...)
}

// ----------------------------------------------------------------------------------------------
// Top-level formatting. §7 fixes three distinct message shapes depending on layer.
// ----------------------------------------------------------------------------------------------

// FormatLexical renders a lexer failure: "Lexical error at line <l>, column <c>: <msg>".
func FormatLexical(e *Error) string {
	return fmt.Sprintf("Lexical error at line %d, column %d: %s", e.Loc.Line, e.Loc.Column, e.Msg)
}

// FormatParse renders a parser failure: "Error at line <l>, column <c>: <msg>".
func FormatParse(e *Error) string {
	return fmt.Sprintf("Error at line %d, column %d: %s", e.Loc.Line, e.Loc.Column, e.Msg)
}

// FormatRuntime renders a runtime failure, citing the file it occurred in:
// "Runtime error in file '<f>' at line <l>, column <c>: <msg>".
func FormatRuntime(e *Error) string {
	return fmt.Sprintf("Runtime error in file '%s' at line %d, column %d: %s",
		e.Loc.File, e.Loc.Line, e.Loc.Column, e.Msg)
}

// Format picks the right presentation for e.Kind; Import/Name/Type/Arity/Domain/
// Bounds/Field/Assertion all present as runtime errors (they occur during evaluation).
func Format(e *Error) string {
	switch e.Kind {
	case Lexical:
		return FormatLexical(e)
	case Parse:
		return FormatParse(e)
	default:
		return FormatRuntime(e)
	}
}
