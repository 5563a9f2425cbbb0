// Package token defines lexical tokens for Iota.
package token

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota // <illegal>
	EOF                  // EOF

	// Literals
	literalStart
	IDENT  // identifier
	NUMBER // number
	FLOAT  // float
	STRING // string
	CHAR   // char
	literalEnd

	// Operators and delimiters
	operatorStart
	ADD      // +
	SUB      // -
	MUL      // *
	DIV      // /
	MOD      // %
	AMP      // &
	PIPE     // |
	NOT      // !
	INCR     // ++
	DECR     // --
	ARROW    // ->
	BACKTICK // `

	ASSIGN     // =
	EQUALS     // ==
	NOT_EQUALS // !=

	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :
	SCOPE     // ::
	DOT       // .
	DOTDOT    // ..
	operatorEnd

	// Keywords
	keywordStart
	IMPORT // import
	LET    // let
	MUT    // mut
	FUN    // fun
	STRUCT // struct
	ENUM   // enum
	ERROR  // error
	IF     // if
	ELSE   // else
	WHILE  // while
	CASE   // case
	RETURN // return
	DEFER  // defer
	RO     // ro
	keywordEnd

	// Builtin types
	builtinStart
	S8   // s8
	U8   // u8
	S16  // s16
	U16  // u16
	S32  // s32
	U32  // u32
	S64  // s64
	U64  // u64
	F32  // f32
	F64  // f64
	BOOL // bool
	STR  // string
	ANY  // any
	builtinEnd
)

var names = [...]string{
	ILLEGAL: "<illegal>",
	EOF:     "EOF",

	IDENT:  "identifier",
	NUMBER: "number",
	FLOAT:  "float",
	STRING: "string",
	CHAR:   "char",

	ADD:      "+",
	SUB:      "-",
	MUL:      "*",
	DIV:      "/",
	MOD:      "%",
	AMP:      "&",
	PIPE:     "|",
	NOT:      "!",
	INCR:     "++",
	DECR:     "--",
	ARROW:    "->",
	BACKTICK: "`",

	ASSIGN:     "=",
	EQUALS:     "==",
	NOT_EQUALS: "!=",

	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LBRACKET:  "[",
	RBRACKET:  "]",
	COMMA:     ",",
	SEMICOLON: ";",
	COLON:     ":",
	SCOPE:     "::",
	DOT:       ".",
	DOTDOT:    "..",

	IMPORT: "import",
	LET:    "let",
	MUT:    "mut",
	FUN:    "fun",
	STRUCT: "struct",
	ENUM:   "enum",
	ERROR:  "error",
	IF:     "if",
	ELSE:   "else",
	WHILE:  "while",
	CASE:   "case",
	RETURN: "return",
	DEFER:  "defer",
	RO:     "ro",

	S8:   "s8",
	U8:   "u8",
	S16:  "s16",
	U16:  "u16",
	S32:  "s32",
	U32:  "u32",
	S64:  "s64",
	U64:  "u64",
	F32:  "f32",
	F64:  "f64",
	BOOL: "bool",
	STR:  "string",
	ANY:  "any",
}

// String returns the source spelling of operators, keywords and builtin
// types, and a descriptive name for the remaining tokens.
func (t Token) String() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "<unknown>"
}

// IsLiteral returns true if the token is a literal (identifier, number, string, char).
func (t Token) IsLiteral() bool {
	return t > literalStart && t < literalEnd
}

// IsOperator returns true if the token is an operator or delimiter.
func (t Token) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsKeyword returns true if the token is a keyword.
func (t Token) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsBuiltinType returns true if the token names a builtin type.
func (t Token) IsBuiltinType() bool {
	return t > builtinStart && t < builtinEnd
}

// keywords maps keyword and builtin type spellings to their token types.
var keywords map[string]Token

func init() {
	keywords = make(map[string]Token, int(builtinEnd-keywordStart))
	for t := keywordStart + 1; t < builtinEnd; t++ {
		if t == keywordEnd || t == builtinStart {
			continue
		}
		keywords[names[t]] = t
	}
}

// LookupIdent returns the token type for a given identifier.
// Returns a keyword or builtin type token if found, otherwise IDENT.
func LookupIdent(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
