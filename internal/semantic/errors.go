// Package semantic provides declaration checks for parsed Iota files.
//
// The parser accepts any syntactically valid file. This package runs
// afterwards and reports names declared twice in the same scope:
//   - top-level declarations and import aliases
//   - struct fields, enum variants and error set variants
//   - function parameters
//   - names bound twice by one destructuring binding
//   - case branches that repeat an earlier pattern
package semantic

import (
	"fmt"
	"strings"

	"github.com/kolkov/iotac/internal/token"
)

// Error represents a semantic error with source location.
type Error struct {
	Pos     token.Position
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// ErrorList is a collection of semantic errors in source order.
type ErrorList []*Error

// Add appends an error to the list.
func (el *ErrorList) Add(pos token.Position, format string, args ...any) {
	*el = append(*el, &Error{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	})
}

// Err returns an error if the list is non-empty, nil otherwise.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

// Error implements the error interface for ErrorList.
func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		var sb strings.Builder
		sb.WriteString(el[0].Error())
		for _, e := range el[1:] {
			sb.WriteByte('\n')
			sb.WriteString(e.Error())
		}
		return sb.String()
	}
}

// Common error messages as constants for consistency.
const (
	errRedeclared      = "%s %q redeclared in this %s (previous declaration at %s)"
	errDuplicateBind   = "%q bound more than once in this binding"
	errDuplicateBranch = "duplicate case pattern %s (previous branch at %s)"
)
