package svgrender

import "testing"

func TestLineNumbererOff(t *testing.T) {
	n := newLineNumberer(LineNumbersOff)
	n.beginOutput()
	if _, ok := n.nextOutputLine(); ok {
		t.Fatal("expected ok=false when numbering is off")
	}
}

func TestLineNumbererEachOutputResets(t *testing.T) {
	n := newLineNumberer(LineNumbersEachOutput)
	n.beginOutput()
	num, ok := n.nextOutputLine()
	if !ok || num != 1 {
		t.Fatalf("expected first line numbered 1, got %d (ok=%v)", num, ok)
	}
	num, _ = n.nextOutputLine()
	if num != 2 {
		t.Fatalf("expected second line numbered 2, got %d", num)
	}
	n.beginOutput()
	num, _ = n.nextOutputLine()
	if num != 1 {
		t.Fatalf("expected counter reset to 1 on new output block, got %d", num)
	}
}

func TestLineNumbererContinuousOutputsDoesNotReset(t *testing.T) {
	n := newLineNumberer(LineNumbersContinuousOutputs)
	n.beginOutput()
	n.nextOutputLine()
	n.nextOutputLine()
	n.beginOutput()
	num, _ := n.nextOutputLine()
	if num != 3 {
		t.Fatalf("expected counter to continue across output blocks, got %d", num)
	}
}

func TestLineNumbererContinuousCountsInputToo(t *testing.T) {
	n := newLineNumberer(LineNumbersContinuous)
	n.countInput()
	n.beginOutput()
	num, _ := n.nextOutputLine()
	if num != 2 {
		t.Fatalf("expected input to advance the shared counter, got %d", num)
	}
}
