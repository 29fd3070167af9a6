package parser_test

import (
	"testing"

	"unforce/internal/lexer"
	"unforce/internal/parser"
	"unforce/internal/source"
	"unforce/internal/syntax"
)

func parseSource(t *testing.T, src string) *syntax.File {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.swift", []byte(src))
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{})
	return parser.Parse(toks, parser.Options{})
}

func TestRoundTripIsLossless(t *testing.T) {
	sources := []string{
		"let data = try! loader.fetch(from: url)\n",
		"do {\n    let x = try parse(s)\n} catch {\n    print(error)\n}\n",
		"// header\n\nfunc main() {\n\tlet a = 1 + 2\n}\n",
		"let v = try? decode(raw); process(v)\n",
		"x.y.z(1, label: \"two\", 3.0)  // trailing\n",
		"",
		"\n\n  // only trivia\n",
	}
	for _, src := range sources {
		file := parseSource(t, src)
		if got := file.Render(); got != src {
			t.Errorf("round trip changed source:\n in: %q\nout: %q", src, got)
		}
	}
}

func TestBindingWithForceTry(t *testing.T) {
	file := parseSource(t, "let data = try! load(path)\n")
	if len(file.Stmts) != 1 {
		t.Fatalf("stmt count = %d", len(file.Stmts))
	}
	b, ok := file.Stmts[0].(*syntax.Binding)
	if !ok {
		t.Fatalf("expected *Binding, got %T", file.Stmts[0])
	}
	try, ok := b.Value.(*syntax.Try)
	if !ok {
		t.Fatalf("expected *Try value, got %T", b.Value)
	}
	if try.Marker == nil || try.Marker.Text != "!" {
		t.Fatalf("marker = %v", try.Marker)
	}
	if _, ok := try.X.(*syntax.Call); !ok {
		t.Fatalf("try body: got %T", try.X)
	}
}

func TestMarkerRequiresAdjacency(t *testing.T) {
	// With a space between, '!' is not a try marker.
	file := parseSource(t, "let ok = try !flag\n")
	b, ok := file.Stmts[0].(*syntax.Binding)
	if !ok {
		// The '!flag' prefix form is outside the subset; Raw is also fine,
		// as long as the try was not parsed with a marker.
		if _, isRaw := file.Stmts[0].(*syntax.Raw); isRaw {
			return
		}
		t.Fatalf("got %T", file.Stmts[0])
	}
	if try, ok := b.Value.(*syntax.Try); ok && try.Marker != nil {
		t.Fatalf("detached '!' must not become a marker")
	}
}

func TestDoCatchStructure(t *testing.T) {
	src := "do {\n    try run()\n} catch {\n    handle()\n}\n"
	file := parseSource(t, src)
	dc, ok := file.Stmts[0].(*syntax.DoCatch)
	if !ok {
		t.Fatalf("expected *DoCatch, got %T", file.Stmts[0])
	}
	if len(dc.Body) != 1 || len(dc.Clauses) != 1 {
		t.Fatalf("body=%d clauses=%d", len(dc.Body), len(dc.Clauses))
	}
	if len(dc.Clauses[0].Body) != 1 {
		t.Fatalf("catch body = %d", len(dc.Clauses[0].Body))
	}
}

func TestCatchWithPatternFallsBackToRaw(t *testing.T) {
	src := "do {\n    try run()\n} catch let err {\n    handle(err)\n}\n"
	file := parseSource(t, src)
	if _, ok := file.Stmts[0].(*syntax.Raw); !ok {
		t.Fatalf("patterned catch must fall back to Raw, got %T", file.Stmts[0])
	}
	if got := file.Render(); got != src {
		t.Fatalf("raw fallback lost text:\n%q", got)
	}
}

func TestRawKeepsBracketPairsTogether(t *testing.T) {
	src := "func load() throws -> Data {\n    return try! read()\n}\nlet x = 1\n"
	file := parseSource(t, src)
	if len(file.Stmts) != 2 {
		t.Fatalf("stmt count = %d, want 2", len(file.Stmts))
	}
	if _, ok := file.Stmts[0].(*syntax.Raw); !ok {
		t.Fatalf("func decl: got %T", file.Stmts[0])
	}
	if _, ok := file.Stmts[1].(*syntax.Binding); !ok {
		t.Fatalf("binding after raw: got %T", file.Stmts[1])
	}
}

func TestSemicolonSeparatesStatements(t *testing.T) {
	file := parseSource(t, "let a = f(); let b = g()\n")
	if len(file.Stmts) != 2 {
		t.Fatalf("stmt count = %d, want 2", len(file.Stmts))
	}
	a, ok := file.Stmts[0].(*syntax.Binding)
	if !ok || a.Semi == nil {
		t.Fatalf("first stmt: %T semi=%v", file.Stmts[0], a != nil && a.Semi != nil)
	}
}

func TestOptionalTypeAnnotation(t *testing.T) {
	file := parseSource(t, "let img: UIImage? = try! decode(data)\n")
	b, ok := file.Stmts[0].(*syntax.Binding)
	if !ok {
		t.Fatalf("got %T", file.Stmts[0])
	}
	if b.Colon == nil || b.Type == nil {
		t.Fatalf("type annotation missing")
	}
	if _, ok := b.Type.(*syntax.Suffixed); !ok {
		t.Fatalf("optional type: got %T", b.Type)
	}
}

func TestExprStmtWithMemberChain(t *testing.T) {
	file := parseSource(t, "try! session.cache.flush()\n")
	es, ok := file.Stmts[0].(*syntax.ExprStmt)
	if !ok {
		t.Fatalf("got %T", file.Stmts[0])
	}
	try, ok := es.X.(*syntax.Try)
	if !ok || try.Marker == nil {
		t.Fatalf("expected force try, got %T", es.X)
	}
	call, ok := try.X.(*syntax.Call)
	if !ok {
		t.Fatalf("try body: %T", try.X)
	}
	if _, ok := call.Fn.(*syntax.Member); !ok {
		t.Fatalf("call target: %T", call.Fn)
	}
}
