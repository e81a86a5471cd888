package cause

import (
	"fmt"

	"attest/internal/classify"
	"attest/internal/spec"
)

// diagnoser produces the cause for one specification-shape family.
type diagnoser func(*Context) (Finding, error)

// diagnosers is the sign dispatch table. Assembled once in init
// (the container diagnosers recurse through Diagnose, so a composite
// literal here would be an initialization cycle); a sign missing here
// is an internal inconsistency the dispatcher reports via
// ErrUnsupportedSign.
var diagnosers map[spec.Sign]diagnoser

func init() {
	diagnosers = map[spec.Sign]diagnoser{
		spec.SignUnion:    diagnoseUnion,
		spec.SignSequence: diagnoseSequence,
		spec.SignTuple:    diagnoseTuple,
		spec.SignMapping:  diagnoseMapping,
		spec.SignLiteral:  diagnoseLiteral,
	}
}

// Diagnose selects and runs the diagnoser for the context's
// specification. A zero Finding means the subject satisfies the
// specification at this level; callers trying candidates (union
// members, container elements) must move on to the next candidate
// rather than conclude the whole tree passes.
func (c *Context) Diagnose() (Finding, error) {
	switch c.cls.Family {
	case classify.FamilyIgnorable:
		// An ignorable specification matches everything and can never
		// be the cause of a failure.
		return Finding{}, nil
	case classify.FamilyUntagged:
		if len(c.cls.Types) > 0 {
			return diagnoseTypeTuple(c)
		}
		return diagnoseInstanceType(c)
	}

	// Tagged. Shapes with an origin type that were checked shallowly
	// (unparameterized, or not deep-checkable) are diagnosed by the
	// same plain kind test; no recursion into children.
	if kinds := classify.OriginKinds(c.cls.Sign); len(kinds) > 0 &&
		(len(c.cls.Children) == 0 || !classify.DeepCheckable(c.cls.Sign)) {
		return diagnoseShallowOrigin(c)
	}

	fn, ok := diagnosers[c.cls.Sign]
	if !ok {
		return Finding{}, fmt.Errorf("%w: %q (%s)", ErrUnsupportedSign, c.cls.SignLabel(), c.label)
	}
	return fn(c)
}
