package parser_test

import (
	"testing"

	"unforce/internal/lexer"
	"unforce/internal/parser"
	"unforce/internal/source"
	"unforce/internal/testkit"
)

func TestTokenAndSpanInvariants(t *testing.T) {
	sources := []string{
		"",
		"let a = try! fetch()\n",
		"do {\n    try run()\n} catch {\n    print(error)\n}\n",
		"// comment\nlet x = 1; let y = 2\n",
		"if weird { stuff(]\n",
		"\tlet tabbed = try! io.read()  // trailing\n",
	}
	for _, src := range sources {
		fs := source.NewFileSet()
		id := fs.AddVirtual("inv.swift", []byte(src))
		file := fs.Get(id)

		toks := lexer.Tokenize(file, lexer.Options{})
		if err := testkit.CheckTokenInvariants(toks, file); err != nil {
			t.Fatalf("source %q: %v", src, err)
		}

		parsed := parser.Parse(toks, parser.Options{})
		if err := testkit.CheckStmtSpans(parsed.Stmts, file); err != nil {
			t.Fatalf("source %q: %v", src, err)
		}
	}
}
