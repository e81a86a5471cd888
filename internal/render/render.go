// Package render turns check results into terminal output. Coloring
// and layout live here, after diagnosis completes; the diagnosis core
// itself emits plain strings.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"attest/internal/batch"
	"attest/internal/check"
)

// Options controls rendering.
type Options struct {
	Color bool
	Width int // 0 disables line truncation
}

var (
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	violationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	cachedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	causeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Violation renders one violation, header styled, cause lines
// indented.
func Violation(v *check.Violation, opts Options) string {
	header := "type specification violated"
	if v.Label != "" {
		header = v.Label + " violates its type specification"
	}
	if opts.Color {
		header = errorStyle.Render(header)
	}
	if v.Cause == "" {
		return header
	}
	var b strings.Builder
	b.WriteString(header)
	for _, line := range strings.Split(v.Cause, "\n") {
		b.WriteString("\n  ")
		line = fitLine(line, opts.Width)
		if opts.Color {
			line = causeStyle.Render(line)
		}
		b.WriteString(line)
	}
	return b.String()
}

// Report writes the outcome of a batch run, one line per document,
// violation causes indented beneath their document.
func Report(w io.Writer, results []batch.Result, opts Options) {
	for _, r := range results {
		fmt.Fprintf(w, "%s %s%s\n", statusTag(r, opts.Color), r.Path, cachedTag(r, opts.Color))
		if r.Err != nil {
			fmt.Fprintf(w, "  %s\n", fitLine(r.Err.Error(), opts.Width))
			continue
		}
		if r.Message == "" {
			continue
		}
		for _, line := range strings.Split(r.Message, "\n") {
			fmt.Fprintf(w, "  %s\n", fitLine(line, opts.Width))
		}
	}
}

// Summary writes the closing counts line for a batch run.
func Summary(w io.Writer, results []batch.Result, opts Options) {
	var ok, violated, failed int
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
		case r.OK:
			ok++
		default:
			violated++
		}
	}
	line := fmt.Sprintf("%d ok, %d violations, %d errors", ok, violated, failed)
	if opts.Color {
		switch {
		case failed > 0:
			line = errorStyle.Render(line)
		case violated > 0:
			line = violationStyle.Render(line)
		default:
			line = okStyle.Render(line)
		}
	}
	fmt.Fprintln(w, line)
}

func statusTag(r batch.Result, color bool) string {
	var tag string
	var style lipgloss.Style
	switch {
	case r.Err != nil:
		tag, style = "ERROR", errorStyle
	case r.OK:
		tag, style = "   OK", okStyle
	default:
		tag, style = " FAIL", violationStyle
	}
	if color {
		return style.Render(tag)
	}
	return tag
}

func cachedTag(r batch.Result, color bool) string {
	if !r.Cached {
		return ""
	}
	tag := " (cached)"
	if color {
		return cachedStyle.Render(tag)
	}
	return tag
}

// fitLine truncates a line to the display width. Text is NFC-folded
// first so combining sequences do not skew the width measurement.
func fitLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	line = norm.NFC.String(line)
	if runewidth.StringWidth(line) <= width {
		return line
	}
	if width <= 3 {
		return runewidth.Truncate(line, width, "")
	}
	// Truncate's width budget already covers the tail.
	return runewidth.Truncate(line, width, "...")
}
