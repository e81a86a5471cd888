package observ

import (
	"strings"
	"testing"
)

func TestTimerSummary(t *testing.T) {
	timer := NewTimer()
	load := timer.Start("load-spec")
	timer.Stop(load, 0)
	check := timer.Start("check")
	timer.Stop(check, 12)

	var b strings.Builder
	timer.WriteSummary(&b)
	out := b.String()

	for _, want := range []string{"timings:", "load-spec", "check", "(12 documents)", "total"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "(0 documents)") {
		t.Fatalf("zero-document phase must omit the count:\n%s", out)
	}
}

func TestTimerStopIgnoresBadHandle(t *testing.T) {
	timer := NewTimer()
	timer.Stop(0, 1)
	timer.Stop(-1, 1)

	var b strings.Builder
	timer.WriteSummary(&b)
	if !strings.Contains(b.String(), "total") {
		t.Fatalf("summary must still render: %q", b.String())
	}
}
