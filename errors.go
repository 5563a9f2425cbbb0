package iotac

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kolkov/iotac/internal/parser"
	"github.com/kolkov/iotac/internal/semantic"
)

// ErrorKind classifies a ParseError.
type ErrorKind = parser.ErrorKind

// Error kinds.
const (
	LexError    = parser.LexError    // Malformed token
	SyntaxError = parser.SyntaxError // Token not allowed by the grammar
	EndOfInput  = parser.EndOfInput  // Input ended inside a construct
)

// Sentinel errors for use with errors.Is.
var (
	ErrLex        = parser.ErrLex
	ErrSyntax     = parser.ErrSyntax
	ErrEndOfInput = parser.ErrEndOfInput
)

// ParseError represents a syntax error in Iota source code.
type ParseError struct {
	Kind     ErrorKind
	Filename string // Empty unless set in Config or Source
	Line     int    // 1-based line number
	Column   int    // 1-based column number

	// EndLine and EndColumn locate the byte after the offending token.
	// At end of input they equal Line and Column.
	EndLine   int
	EndColumn int

	Message string // Error description
}

func (e *ParseError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s: parse error at %d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Message)
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

// CheckError reports names declared twice in a file that parsed cleanly.
type CheckError struct {
	Errors []string // "position: message", in source order
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("check error: %s", strings.Join(e.Errors, "; "))
}

// convertParseError converts a parser error to the public type.
func convertParseError(err error) error {
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		return err
	}
	start, end := pe.Span.Start, pe.Span.End
	return &ParseError{
		Kind:      pe.Kind,
		Filename:  start.Filename,
		Line:      start.Line,
		Column:    start.Column,
		EndLine:   end.Line,
		EndColumn: end.Column,
		Message:   pe.Message,
	}
}

// convertCheckErrors converts semantic errors to the public type, or
// returns nil when there are none.
func convertCheckErrors(el semantic.ErrorList) error {
	if len(el) == 0 {
		return nil
	}
	msgs := make([]string, len(el))
	for i, e := range el {
		msgs[i] = e.Error()
	}
	return &CheckError{Errors: msgs}
}
