package token

var keywords = map[string]Kind{
	"try":    KwTry,
	"do":     KwDo,
	"catch":  KwCatch,
	"let":    KwLet,
	"var":    KwVar,
	"func":   KwFunc,
	"return": KwReturn,
	"throw":  KwThrow,
	"throws": KwThrows,
	"if":     KwIf,
	"else":   KwElse,
	"guard":  KwGuard,
	"true":   KwTrue,
	"false":  KwFalse,
	"nil":    KwNil,
}

// LookupKeyword returns the keyword kind for text, or Ident if text is not
// a keyword.
func LookupKeyword(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}
	return Ident
}
