package parser

// Dialect selects between grammar revisions of the language.
type Dialect struct {
	Name string

	// BareBracedLiterals accepts Name{...}, u32{...} and []T{...} without
	// the leading ` marker. Named literals stay disabled at the top level
	// of if, while and case headers, where the brace opens the body.
	BareBracedLiterals bool

	// BareCasePatterns accepts a lone identifier as a case pattern.
	// Otherwise such patterns must be scoped: ::north, Dir::north.
	BareCasePatterns bool
}

var (
	// V1 is the original grammar: braced literals need the ` marker and
	// case patterns are scoped.
	V1 = Dialect{Name: "v1"}

	// V2 is the current grammar.
	V2 = Dialect{Name: "v2", BareBracedLiterals: true, BareCasePatterns: true}
)

// DefaultDialect is used when a Config leaves the dialect unset.
var DefaultDialect = V2

// Dialects returns all known dialects, oldest first.
func Dialects() []Dialect {
	return []Dialect{V1, V2}
}

// LookupDialect returns the dialect with the given name.
func LookupDialect(name string) (Dialect, bool) {
	for _, d := range Dialects() {
		if d.Name == name {
			return d, true
		}
	}
	return Dialect{}, false
}
