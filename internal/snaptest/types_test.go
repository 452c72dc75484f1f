package snaptest

import "testing"

func TestReportCounts(t *testing.T) {
	r := Report{Results: []InteractionResult{
		{Outcome: Passed},
		{Outcome: Failed},
		{Outcome: Passed},
		{Outcome: Panicked},
	}}
	passed, failed, panicked := r.Counts()
	if passed != 2 || failed != 1 || panicked != 1 {
		t.Fatalf("got passed=%d failed=%d panicked=%d, want 2/1/1", passed, failed, panicked)
	}
	if r.Passed() {
		t.Fatal("expected Passed() to be false when any result is not Passed")
	}
}

func TestReportAllPassed(t *testing.T) {
	r := Report{Results: []InteractionResult{{Outcome: Passed}, {Outcome: Passed}}}
	if !r.Passed() {
		t.Fatal("expected Passed() to be true when every result is Passed")
	}
}

func TestMatchKindString(t *testing.T) {
	if TextOnly.String() != "text-only" || Precise.String() != "precise" {
		t.Fatalf("unexpected MatchKind strings: %q, %q", TextOnly, Precise)
	}
}
