// iotac - Iota parser front end
//
// Parses Iota source files and prints their syntax trees.
// Uses manual argument parsing to match the flag style of the other
// toolchain commands (supports -j4 style flags).
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/coregx/coregex"

	"github.com/kolkov/iotac"
)

// version is set by GoReleaser at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	shortUsage = "usage: iotac [-e expr | -s stmt] [--dialect v1|v2] [-j N] [--check] [file ...]"
	longUsage  = `Input:
  -e expr           parse expr as a single expression
  -s stmt           parse stmt as a single statement
  file ...          parse source files ("-" or none reads stdin)

Options:
  --dialect name    surface dialect: v1, v2 (default v2)
  -indent N         spaces per tree level (default 2)
  -j N              parse N files in parallel (default: number of CPUs)
  -run regexp       print only top-level declarations whose name matches
  --check           also report duplicate declarations
  -q                parse only, print no trees

Other:
  -h, --help        show this help message
  -version          show iotac version and exit
`
)

//nolint:gocyclo,funlen // CLI argument parsing is inherently complex
func main() {
	log.SetFlags(0)
	log.SetPrefix("iotac: ")

	var exprSrc, stmtSrc string
	var haveExpr, haveStmt bool
	var runPattern string
	dialect := ""
	indent := 0
	workers := 0
	check := false
	quiet := false

	var i int
	for i = 1; i < len(os.Args); i++ {
		// Stop on explicit end of args or first arg not prefixed with "-"
		arg := os.Args[i]
		if arg == "--" {
			i++
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}

		switch arg {
		case "-e":
			exprSrc, haveExpr = needArg(&i, arg), true
		case "-s":
			stmtSrc, haveStmt = needArg(&i, arg), true
		case "--dialect", "-dialect":
			dialect = needArg(&i, arg)
		case "-indent":
			indent = atoi(needArg(&i, arg), "indent width")
		case "-j":
			workers = atoi(needArg(&i, arg), "number of workers")
		case "-run":
			runPattern = needArg(&i, arg)
		case "--check", "-check":
			check = true
		case "-q":
			quiet = true
		case "-h", "--help":
			fmt.Printf("iotac %s - Iota parser\n\n%s\n\n%s", version, shortUsage, longUsage)
			os.Exit(0)
		case "-version", "--version":
			fmt.Printf("iotac version %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
			os.Exit(0)
		default:
			// Handle flags with no space: -j4, -indent4
			switch {
			case strings.HasPrefix(arg, "-j"):
				workers = atoi(arg[2:], "number of workers")
			case strings.HasPrefix(arg, "-indent"):
				indent = atoi(arg[7:], "indent width")
			case strings.HasPrefix(arg, "--dialect="):
				dialect = arg[len("--dialect="):]
			default:
				errorExitf("flag provided but not defined: %s", arg)
			}
		}
	}

	// Remaining args are input files
	files := os.Args[i:]
	if haveExpr && haveStmt {
		errorExitf("-e and -s are mutually exclusive")
	}
	if (haveExpr || haveStmt) && len(files) > 0 {
		errorExitf("-e and -s take no input files")
	}

	config := &iotac.Config{
		Dialect:     dialect,
		IndentWidth: indent,
		Workers:     workers,
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	if haveExpr || haveStmt {
		root, src := iotac.RootExpr, exprSrc
		if haveStmt {
			root, src = iotac.RootStmt, stmtSrc
		}
		out, err := iotac.Dump(src, root, config)
		if err != nil {
			stdout.Flush()
			errorExit(err)
		}
		if !quiet {
			stdout.WriteString(out)
		}
		return
	}

	var match func(string) bool
	if runPattern != "" {
		re, err := coregex.Compile(runPattern)
		if err != nil {
			errorExitf("invalid -run pattern %q: %v", runPattern, err)
		}
		match = re.MatchString
	}

	sources := readSources(files)
	results, err := iotac.ParseEach(context.Background(), sources, config)
	if err != nil {
		errorExit(err)
	}

	failed := false
	for _, r := range results {
		if r.Err != nil {
			log.Print(r.Err)
			failed = true
			continue
		}
		if check {
			if err := r.Tree.Check(); err != nil {
				for _, msg := range err.(*iotac.CheckError).Errors {
					log.Printf("%s", msg)
				}
				failed = true
			}
		}
		if quiet {
			continue
		}
		if match != nil {
			stdout.WriteString(r.Tree.DumpDecls(match))
		} else {
			stdout.WriteString(r.Tree.Dump())
		}
	}

	if failed {
		stdout.Flush()
		os.Exit(1)
	}
}

// readSources reads the named files, or stdin when there are none.
// Unreadable files are fatal.
func readSources(files []string) []iotac.Source {
	if len(files) == 0 {
		files = []string{"-"}
	}
	sources := make([]iotac.Source, 0, len(files))
	for _, f := range files {
		var content []byte
		var err error
		name := f
		if f == "-" {
			name = "<stdin>"
			content, err = io.ReadAll(os.Stdin)
		} else {
			content, err = os.ReadFile(f)
		}
		if err != nil {
			errorExitf("cannot read %s: %v", name, err)
		}
		sources = append(sources, iotac.Source{Name: name, Text: string(content)})
	}
	return sources
}

// needArg returns the argument following flag, advancing *i past it.
func needArg(i *int, flag string) string {
	if *i+1 >= len(os.Args) {
		errorExitf("flag needs an argument: %s", flag)
	}
	*i++
	return os.Args[*i]
}

func atoi(s, what string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		errorExitf("invalid %s: %s", what, s)
	}
	return n
}

// errorExitf logs formatted error message and exits with code 1
func errorExitf(format string, args ...any) {
	log.Fatalf(format, args...)
}

// errorExit logs error and exits with code 1
func errorExit(err error) {
	log.Fatal(err)
}
