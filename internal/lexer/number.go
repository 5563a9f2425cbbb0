package lexer

import (
	"fmt"

	"github.com/coregx/coregex"
)

var (
	// numberPattern is the full grammar of a numeric literal: decimal
	// digits without a leading zero, optionally followed by a fraction.
	numberPattern = mustCompile(`^(0|[1-9][0-9]*)(\.[0-9]+)?$`)

	// leadingZero matches integer parts such as 007.
	leadingZero = mustCompile(`^0[0-9]`)
)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("lexer: bad number pattern %q: %v", pattern, err))
	}
	return re
}

// checkNumber validates the text of a scanned number and returns an error
// message, or "" if the literal is well formed.
func checkNumber(text string) string {
	if numberPattern.MatchString(text) {
		return ""
	}
	if leadingZero.MatchString(text) {
		return fmt.Sprintf("number %s has a leading zero", text)
	}
	return fmt.Sprintf("malformed number %s", text)
}
