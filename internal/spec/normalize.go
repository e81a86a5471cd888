package spec

import "fmt"

// maxDeferredDepth bounds thunk chains so a deferred specification that
// keeps resolving to another deferred specification cannot spin forever.
const maxDeferredDepth = 64

// Normalize rewrites a raw specification into a form the classifier
// handles directly: deferred nodes are resolved, Speccer values are
// replaced by the node they supply, and values that are not
// specifications at all are rejected. label prefixes error text.
//
// Normalize is idempotent: feeding its result back yields the same
// value.
func Normalize(raw Raw, label string) (Raw, error) {
	for depth := 0; depth <= maxDeferredDepth; depth++ {
		switch s := raw.(type) {
		case nil:
			return nil, fmt.Errorf("%w: %s<nil> given as specification", ErrNotASpec, label)
		case *Node:
			if s == nil {
				return nil, fmt.Errorf("%w: %snil specification node", ErrNotASpec, label)
			}
			if s.sign != SignDeferred {
				return s, nil
			}
			if s.thunk == nil {
				return nil, fmt.Errorf("%w: %sdeferred specification %q has no resolver", ErrMalformed, label, s.name)
			}
			raw = s.thunk()
		case Speccer:
			raw = s.Spec()
		default:
			// Bare reflect.Type, type tuples and everything else pass
			// through unchanged; the classifier decides their fate.
			return raw, nil
		}
	}
	return nil, fmt.Errorf("%w: %sdeferred specification did not resolve within %d steps",
		ErrMalformed, label, maxDeferredDepth)
}
