package render

import (
	"strings"
	"testing"

	"attest/internal/batch"
	"attest/internal/check"
)

func TestViolationPlain(t *testing.T) {
	v := &check.Violation{
		Label: "document d.json",
		Cause: "item at index 3 is invalid:\n  value 3.5 of type float64 is not an instance of string",
	}
	got := Violation(v, Options{})
	want := "document d.json violates its type specification\n" +
		"  item at index 3 is invalid:\n" +
		"    value 3.5 of type float64 is not an instance of string"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestReportAndSummary(t *testing.T) {
	results := []batch.Result{
		{Path: "a.json", OK: true},
		{Path: "b.json", OK: true, Cached: true},
		{Path: "c.json", Message: "document c.json violates its type specification"},
	}

	var report strings.Builder
	Report(&report, results, Options{})
	out := report.String()
	for _, want := range []string{"   OK a.json", "b.json (cached)", " FAIL c.json", "  document c.json"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report %q missing %q", out, want)
		}
	}

	var summary strings.Builder
	Summary(&summary, results, Options{})
	if got := summary.String(); got != "2 ok, 1 violations, 0 errors\n" {
		t.Fatalf("summary %q", got)
	}
}

func TestFitLineTruncates(t *testing.T) {
	if got := fitLine("abcdefghij", 8); got != "abcde..." {
		t.Fatalf("got %q", got)
	}
	if got := fitLine("short", 8); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := fitLine("anything goes", 0); got != "anything goes" {
		t.Fatalf("width 0 must not truncate, got %q", got)
	}
}
