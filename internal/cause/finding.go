package cause

// Finding is the outcome of one diagnosis step. The zero value reports
// no cause: the subject satisfies the specification at this level,
// which is a legitimate answer during recursive elimination (union
// members, container elements) and must never be conflated with an
// error.
type Finding struct {
	Found bool
	Text  string
}

func found(text string) Finding {
	return Finding{Found: true, Text: text}
}
