package snaptest

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/slowli/term-transcript/internal/transcript"
)

// unifiedDiff builds a human-readable mismatch block, grounded on the
// go-difflib unified-diff generator pack members reach for when comparing
// expected vs. actual CLI output.
func unifiedDiff(expected, actual string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// textDiff produces a TextOnly-mode diff over plain text only.
func textDiff(expected, actual transcript.Captured) (string, error) {
	return unifiedDiff(expected.Plain, actual.Plain)
}

// preciseDiff produces a Precise-mode diff over ANSI-re-rendered lines,
// so style mismatches (not just text mismatches) surface as diff hunks.
func preciseDiff(expected, actual transcript.Captured) (string, error) {
	return unifiedDiff(renderANSI(expected.Lines), renderANSI(actual.Lines))
}
