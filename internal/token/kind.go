package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Placeholder represents an editor placeholder token (<#...#>).
	Placeholder

	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwFunc represents the 'func' keyword.
	KwFunc // func
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwThrows represents the 'throws' keyword.
	KwThrows // throws
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwGuard represents the 'guard' keyword.
	KwGuard // guard
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNil represents the 'nil' keyword.
	KwNil // nil

	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating point literal.
	FloatLit
	// StringLit represents a string literal.
	StringLit

	// Bang represents '!'.
	Bang // !
	// Question represents '?'.
	Question // ?
	// Dot represents '.'.
	Dot // .
	// Comma represents ','.
	Comma // ,
	// Colon represents ':'.
	Colon // :
	// Semicolon represents ';'.
	Semicolon // ;
	// Assign represents '='.
	Assign // =
	// Arrow represents '->'.
	Arrow // ->
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Amp represents '&'.
	Amp // &
	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// Lt represents '<'.
	Lt // <
	// Gt represents '>'.
	Gt // >
	// EqEq represents '=='.
	EqEq // ==
	// BangEq represents '!='.
	BangEq // !=
	// AndAnd represents '&&'.
	AndAnd // &&
	// OrOr represents '||'.
	OrOr // ||
	// QuestionQuestion represents '??'.
	QuestionQuestion // ??
	// At represents '@'.
	At // @
	// Underscore represents a lone '_'.
	Underscore // _
)

var kindNames = map[Kind]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Ident:            "Ident",
	Placeholder:      "Placeholder",
	KwTry:            "try",
	KwDo:             "do",
	KwCatch:          "catch",
	KwLet:            "let",
	KwVar:            "var",
	KwFunc:           "func",
	KwReturn:         "return",
	KwThrow:          "throw",
	KwThrows:         "throws",
	KwIf:             "if",
	KwElse:           "else",
	KwGuard:          "guard",
	KwTrue:           "true",
	KwFalse:          "false",
	KwNil:            "nil",
	IntLit:           "IntLit",
	FloatLit:         "FloatLit",
	StringLit:        "StringLit",
	Bang:             "!",
	Question:         "?",
	Dot:              ".",
	Comma:            ",",
	Colon:            ":",
	Semicolon:        ";",
	Assign:           "=",
	Arrow:            "->",
	LParen:           "(",
	RParen:           ")",
	LBrace:           "{",
	RBrace:           "}",
	LBracket:         "[",
	RBracket:         "]",
	Amp:              "&",
	Plus:             "+",
	Minus:            "-",
	Star:             "*",
	Slash:            "/",
	Percent:          "%",
	Lt:               "<",
	Gt:               ">",
	EqEq:             "==",
	BangEq:           "!=",
	AndAnd:           "&&",
	OrOr:             "||",
	QuestionQuestion: "??",
	At:               "@",
	Underscore:       "_",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}
