// Package parser provides the Iota recursive descent parser.
package parser

import (
	"errors"
	"fmt"

	"github.com/kolkov/iotac/internal/token"
)

// ErrorKind classifies parse failures.
type ErrorKind uint8

const (
	// LexError is a malformed token: unterminated literal, illegal character.
	LexError ErrorKind = iota + 1
	// SyntaxError is a well-formed token where the grammar does not allow it.
	SyntaxError
	// EndOfInput is the input ending while a construct is still open.
	EndOfInput
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "lexical error"
	case SyntaxError:
		return "syntax error"
	case EndOfInput:
		return "unexpected end of input"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Sentinel errors matched by errors.Is against a *ParseError of the
// corresponding kind.
var (
	ErrLex        = errors.New("lexical error")
	ErrSyntax     = errors.New("syntax error")
	ErrEndOfInput = errors.New("unexpected end of input")
)

// ParseError represents the error that stopped a parse.
// It implements the error interface and includes source position information.
type ParseError struct {
	Kind    ErrorKind
	Span    token.Span // Offending token
	Message string     // Human-readable error message
	Got     string     // Token that was found (optional)
	Want    string     // Construct that was expected (optional)
}

// Pos returns the position where the error occurred.
func (e *ParseError) Pos() token.Position {
	return e.Span.Start
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if e.Span.Start.IsValid() {
		return fmt.Sprintf("%s: %s", e.Span.Start, e.Message)
	}
	return e.Message
}

// Unwrap returns the sentinel error of the error's kind.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case LexError:
		return ErrLex
	case SyntaxError:
		return ErrSyntax
	case EndOfInput:
		return ErrEndOfInput
	}
	return nil
}

// errorf creates a SyntaxError at the given span with formatted message.
func errorf(span token.Span, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    SyntaxError,
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	}
}

// expectedError creates a ParseError for an unexpected token. Running out
// of input is reported as EndOfInput.
func expectedError(span token.Span, want, got string, atEOF bool) *ParseError {
	kind := SyntaxError
	if atEOF {
		kind = EndOfInput
	}
	return &ParseError{
		Kind:    kind,
		Span:    span,
		Message: fmt.Sprintf("expected %s, found %s", want, got),
		Want:    want,
		Got:     got,
	}
}

// lexError converts an ILLEGAL token's message into a ParseError.
func lexError(span token.Span, msg string) *ParseError {
	return &ParseError{Kind: LexError, Span: span, Message: msg}
}
