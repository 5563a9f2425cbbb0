package iotac

import (
	"fmt"
	"runtime"

	"github.com/kolkov/iotac/internal/ast"
	"github.com/kolkov/iotac/internal/parser"
)

// Config holds configuration options for parsing and printing.
type Config struct {
	// Filename is recorded in error positions (default: none).
	// ParseAll and ParseEach use each Source's name instead.
	Filename string

	// Dialect selects the surface syntax: "v1" or "v2" (default: "v2").
	// v2 allows braced literals without the backtick marker and bare
	// identifiers as case patterns.
	Dialect string

	// IndentWidth is the number of spaces per tree level in dumps
	// (default: 2).
	IndentWidth int

	// Workers bounds the number of sources parsed at once by ParseAll
	// and ParseEach (default: runtime.NumCPU()).
	Workers int
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Dialect == "" {
		c.Dialect = parser.DefaultDialect.Name
	}
	if c.IndentWidth <= 0 {
		c.IndentWidth = ast.DefaultIndent
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// resolve returns a copy of config with defaults applied, and the parser
// configuration it selects. A nil config selects all defaults.
func resolve(config *Config) (Config, parser.Config, error) {
	var c Config
	if config != nil {
		c = *config
	}
	c.applyDefaults()

	d, ok := parser.LookupDialect(c.Dialect)
	if !ok {
		return c, parser.Config{}, fmt.Errorf("iotac: unknown dialect %q", c.Dialect)
	}
	return c, parser.Config{Filename: c.Filename, Dialect: d}, nil
}
