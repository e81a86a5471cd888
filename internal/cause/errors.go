package cause

import "errors"

var (
	// ErrUnsupportedSign reports a tagged specification whose sign has
	// no registered diagnoser. The compiled check claimed the shape was
	// checkable, so this is a gap in the diagnoser catalog, not a user
	// error.
	ErrUnsupportedSign = errors.New("no diagnoser registered for specification sign")

	// ErrNoCause reports that every candidate at the top level came back
	// without a cause even though the compiled check failed. The check
	// and the diagnosis disagree, which is an internal inconsistency and
	// must never be shown to users as "no error".
	ErrNoCause = errors.New("violation detected but no cause found")
)
