package fix

import (
	"testing"

	"unforce/internal/diag"
	"unforce/internal/source"
)

func TestBuilderDefaults(t *testing.T) {
	span := source.Span{File: 1, Start: 0, End: 4}
	f := ReplaceSpan("replace", span, "try", "try!")

	if f.Kind != diag.FixKindQuickFix {
		t.Errorf("default kind = %v", f.Kind)
	}
	if f.Applicability != diag.FixApplicabilityAlwaysSafe {
		t.Errorf("default applicability = %v", f.Applicability)
	}
	if len(f.Edits) != 1 || f.Edits[0].OldText != "try!" {
		t.Fatalf("edits = %+v", f.Edits)
	}
}

func TestBuilderOptionsCompose(t *testing.T) {
	span := source.Span{File: 1, Start: 0, End: 0}
	var nilOpt Option
	f := InsertText("insert", span, "// ", "",
		nilOpt,
		WithID("custom-id"),
		Preferred(),
		WithRequiresAll(),
		WithKind(diag.FixKindSourceAction),
		WithApplicability(diag.FixApplicabilityManualReview),
	)

	if f.ID != "custom-id" || !f.IsPreferred || !f.RequiresAll {
		t.Fatalf("options not applied: %+v", f)
	}
	if f.Kind != diag.FixKindSourceAction || f.Applicability != diag.FixApplicabilityManualReview {
		t.Fatalf("overrides not applied: %+v", f)
	}
}

func TestDeleteSpanProducesEmptyReplacement(t *testing.T) {
	span := source.Span{File: 1, Start: 9, End: 10}
	f := DeleteSpan("remove", span, "!")
	if f.Edits[0].NewText != "" || f.Edits[0].OldText != "!" {
		t.Fatalf("edit = %+v", f.Edits[0])
	}
}
