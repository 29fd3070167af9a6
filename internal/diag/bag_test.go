package diag

import (
	"testing"

	"unforce/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagCapDropsOverflow(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 3; i++ {
		b.Add(Diagnostic{Severity: SevWarning, Code: LexUnknownChar})
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2", b.Len())
	}
	if b.Dropped() != 1 {
		t.Fatalf("dropped = %d, want 1", b.Dropped())
	}
}

func TestBagSortOrder(t *testing.T) {
	b := NewBag(0)
	b.Add(Diagnostic{Severity: SevInfo, Code: RefactorForceTry, Primary: span(1, 10, 14)})
	b.Add(Diagnostic{Severity: SevError, Code: SynUnclosedBrace, Primary: span(1, 10, 14)})
	b.Add(Diagnostic{Severity: SevWarning, Code: LexUnknownChar, Primary: span(1, 2, 3)})
	b.Add(Diagnostic{Severity: SevError, Code: LexUnterminatedString, Primary: span(0, 50, 51)})
	b.Sort()

	items := b.Items()
	if items[0].Primary.File != 0 {
		t.Fatalf("file order: got file %d first", items[0].Primary.File)
	}
	if items[1].Primary.Start != 2 {
		t.Fatalf("offset order: got start %d second", items[1].Primary.Start)
	}
	// Same span: higher severity first.
	if items[2].Severity != SevError || items[3].Severity != SevInfo {
		t.Fatalf("severity order: %v then %v", items[2].Severity, items[3].Severity)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(0)
	d := Diagnostic{Severity: SevInfo, Code: RefactorForceTry, Message: "m", Primary: span(1, 4, 8)}
	b.Add(d)
	b.Add(d)
	b.Add(Diagnostic{Severity: SevInfo, Code: RefactorForceTry, Message: "other", Primary: span(1, 4, 8)})
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("len after dedup = %d, want 2", b.Len())
	}
}

func TestMaterializeFixesRunsThunksOnce(t *testing.T) {
	calls := 0
	fixes := []Fix{
		{
			ID:    "a",
			Title: "lazy",
			Thunk: func(FixBuildContext) ([]TextEdit, error) {
				calls++
				return []TextEdit{{Span: span(1, 0, 4), NewText: "x"}}, nil
			},
		},
		{ID: "b", Title: "eager", Edits: []TextEdit{{Span: span(1, 5, 6), NewText: "y"}}},
	}
	out, err := MaterializeFixes(FixBuildContext{}, fixes)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if calls != 1 {
		t.Fatalf("thunk calls = %d, want 1", calls)
	}
	for _, f := range out {
		if f.Thunk != nil {
			t.Fatalf("fix %q kept its thunk", f.ID)
		}
		if len(f.Edits) != 1 {
			t.Fatalf("fix %q edits = %d, want 1", f.ID, len(f.Edits))
		}
	}
}

func TestReportBuilderEmits(t *testing.T) {
	bag := NewBag(0)
	ReportError(BagReporter{Bag: bag}, SynUnclosedBrace, span(1, 3, 4), "missing '}'").
		WithNote(span(1, 0, 1), "block opened here").
		Emit()
	if bag.Len() != 1 {
		t.Fatalf("len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != SynUnclosedBrace || len(d.Notes) != 1 {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
}
