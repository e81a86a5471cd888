package check

import "strings"

// Violation is the error returned when a subject fails its type
// specification. Cause carries the explanation produced by the
// diagnosis subsystem; Origin and Label identify the callable and the
// parameter or return value involved.
type Violation struct {
	Origin string
	Label  string
	Cause  string
}

func (v *Violation) Error() string {
	var b strings.Builder
	if v.Label != "" {
		b.WriteString(v.Label)
		b.WriteString(" ")
	}
	b.WriteString("violates its type specification")
	if v.Cause == "" {
		return b.String()
	}
	if strings.Contains(v.Cause, "\n") {
		b.WriteString(":\n  ")
		b.WriteString(strings.ReplaceAll(v.Cause, "\n", "\n  "))
	} else {
		b.WriteString(": ")
		b.WriteString(v.Cause)
	}
	return b.String()
}
