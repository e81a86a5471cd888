package observ

import (
	"fmt"
	"io"
	"time"
)

type phase struct {
	name  string
	start time.Time
	dur   time.Duration
	docs  int
}

// Timer measures the phases of a check run: loading the
// specification, checking documents, rendering the report. Phases are
// few and sequential, so the index handle returned by Start is enough
// to close one.
type Timer struct {
	phases []phase
}

func NewTimer() *Timer { return &Timer{} }

// Start opens a phase and returns its handle.
func (t *Timer) Start(name string) int {
	t.phases = append(t.phases, phase{name: name, start: time.Now()})
	return len(t.phases) - 1
}

// Stop closes a phase, recording how many documents it covered.
// Zero docs leaves the count off the summary line.
func (t *Timer) Stop(handle, docs int) {
	if handle < 0 || handle >= len(t.phases) {
		return
	}
	p := &t.phases[handle]
	p.dur = time.Since(p.start)
	p.docs = docs
}

// WriteSummary writes one line per phase with its duration and share
// of the total, then the total itself.
func (t *Timer) WriteSummary(w io.Writer) {
	var total time.Duration
	for _, p := range t.phases {
		total += p.dur
	}
	fmt.Fprintln(w, "timings:")
	for _, p := range t.phases {
		fmt.Fprintf(w, "  %-12s %9.2fms", p.name, millis(p.dur))
		if total > 0 {
			fmt.Fprintf(w, " %5.1f%%", 100*float64(p.dur)/float64(total))
		}
		if p.docs > 0 {
			fmt.Fprintf(w, "  (%d documents)", p.docs)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "  %-12s %9.2fms\n", "total", millis(total))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
