// Package classify turns normalized specifications into a fixed
// classification the diagnosis dispatcher switches over: ignorable,
// tagged (sign plus children), or untagged (plain type or type tuple).
package classify

import (
	"fmt"
	"reflect"
	"sync"

	"attest/internal/spec"
)

// Family splits specifications into the three branches the dispatcher
// distinguishes.
type Family uint8

const (
	// FamilyIgnorable matches every value; it can never be a cause.
	FamilyIgnorable Family = iota
	// FamilyTagged carries a recognized sign and a child list.
	FamilyTagged
	// FamilyUntagged is a bare runtime type or a tuple of types.
	FamilyUntagged
)

func (f Family) String() string {
	switch f {
	case FamilyIgnorable:
		return "ignorable"
	case FamilyTagged:
		return "tagged"
	case FamilyUntagged:
		return "untagged"
	default:
		return fmt.Sprintf("Family(%d)", f)
	}
}

// Classified is the frozen classification of one specification object.
// Built once per distinct specification, then shared read-only.
type Classified struct {
	Family   Family
	Sign     spec.Sign
	Node     *spec.Node     // tagged only
	Children []spec.Raw     // tagged parameter list, possibly empty
	Type     reflect.Type   // untagged single type
	Types    []reflect.Type // untagged type tuple
}

// SignLabel names the classified shape for error text. Unsupported
// nodes report their raw identifier rather than the generic sign name.
func (c *Classified) SignLabel() string {
	if c.Sign == spec.SignUnsupported && c.Node != nil && c.Node.Name() != "" {
		return c.Node.Name()
	}
	return c.Sign.String()
}

// cache memoizes classifications per specification identity for the
// lifetime of the process. Unbounded on purpose: the universe of
// distinct specification objects a program defines is bounded, unlike
// its call volume. Redundant concurrent writes of the same
// classification are harmless.
var cache sync.Map // any -> *Classified

// Classify determines the family, sign and children of a normalized
// specification. The specification is never mutated. Malformed tagged
// specifications fail loudly; values that are not specifications at
// all are rejected with spec.ErrNotASpec.
func Classify(raw spec.Raw) (*Classified, error) {
	switch s := raw.(type) {
	case *spec.Node:
		if hit, ok := cache.Load(s); ok {
			return hit.(*Classified), nil
		}
		cls, err := classifyNode(s)
		if err != nil {
			return nil, err
		}
		cache.Store(s, cls)
		return cls, nil
	case reflect.Type:
		if hit, ok := cache.Load(s); ok {
			return hit.(*Classified), nil
		}
		cls := classifyType(s)
		cache.Store(s, cls)
		return cls, nil
	case []reflect.Type:
		// Slices have no usable identity; classification is cheap enough
		// to redo each time.
		return classifyTypeTuple(s)
	default:
		return nil, fmt.Errorf("%w: %T is neither a specification node, a type, nor a type tuple",
			spec.ErrNotASpec, raw)
	}
}

func classifyNode(n *spec.Node) (*Classified, error) {
	children := n.Children()
	switch n.Sign() {
	case spec.SignAny:
		return &Classified{Family: FamilyIgnorable, Sign: spec.SignAny, Node: n}, nil
	case spec.SignUnion:
		if len(children) == 0 {
			return nil, fmt.Errorf("%w: union with no members", spec.ErrMalformed)
		}
	case spec.SignSequence:
		if len(children) > 1 {
			return nil, fmt.Errorf("%w: sequence parameterized over %d specifications, want at most 1",
				spec.ErrMalformed, len(children))
		}
	case spec.SignMapping:
		if len(children) != 0 && len(children) != 2 {
			return nil, fmt.Errorf("%w: mapping parameterized over %d specifications, want 0 or 2",
				spec.ErrMalformed, len(children))
		}
	case spec.SignTuple:
		// Any arity is fine, including the empty tuple.
	case spec.SignLiteral:
		if len(n.Literals()) == 0 {
			return nil, fmt.Errorf("%w: literal set with no permitted values", spec.ErrMalformed)
		}
	case spec.SignDeferred:
		return nil, fmt.Errorf("%w: deferred specification %q reached the classifier unnormalized",
			spec.ErrMalformed, n.Name())
	case spec.SignUnsupported:
		// Classifies fine; the dispatcher raises when asked to diagnose.
	default:
		return nil, fmt.Errorf("%w: unrecognized sign %s", spec.ErrMalformed, n.Sign())
	}
	return &Classified{Family: FamilyTagged, Sign: n.Sign(), Node: n, Children: children}, nil
}

func classifyType(t reflect.Type) *Classified {
	// The empty interface imposes no constraint, exactly like spec.Any.
	if t.Kind() == reflect.Interface && t.NumMethod() == 0 {
		return &Classified{Family: FamilyIgnorable, Sign: spec.SignAny, Type: t}
	}
	return &Classified{Family: FamilyUntagged, Type: t}
}

func classifyTypeTuple(ts []reflect.Type) (*Classified, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("%w: empty type tuple", spec.ErrMalformed)
	}
	for i, t := range ts {
		if t == nil {
			return nil, fmt.Errorf("%w: type tuple slot %d is nil", spec.ErrMalformed, i)
		}
	}
	return &Classified{Family: FamilyUntagged, Types: ts}, nil
}
