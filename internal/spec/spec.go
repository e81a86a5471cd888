package spec

import (
	"fmt"
	"reflect"
)

// Sign enumerates all supported shape families of a specification.
type Sign uint8

const (
	// SignNone marks untagged specifications: a bare reflect.Type or a
	// tuple of types. These carry no Node at all.
	SignNone Sign = iota
	SignAny
	SignUnion
	SignSequence
	SignTuple
	SignMapping
	SignLiteral
	SignDeferred
	// SignUnsupported carries the raw identifier of a shape that has no
	// diagnoser. Spec documents with unrecognized kinds land here so the
	// failure reports the identifier instead of crashing.
	SignUnsupported
)

func (s Sign) String() string {
	switch s {
	case SignNone:
		return "none"
	case SignAny:
		return "any"
	case SignUnion:
		return "union"
	case SignSequence:
		return "sequence"
	case SignTuple:
		return "tuple"
	case SignMapping:
		return "mapping"
	case SignLiteral:
		return "literal"
	case SignDeferred:
		return "deferred"
	case SignUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("Sign(%d)", s)
	}
}

// Raw is the open domain of specification values accepted at API
// boundaries: a *Node, a reflect.Type (plain runtime type), a
// []reflect.Type (type-tuple union), or any value implementing Speccer.
type Raw = any

// Speccer lets foreign annotation types supply an equivalent supported
// specification. The normalizer rewrites such values before
// classification ever sees them.
type Speccer interface {
	Spec() *Node
}

// Node is an immutable tagged specification. Construct one via the
// package constructors; a Node is never modified after construction, so
// classification results may be cached per Node identity.
type Node struct {
	sign     Sign
	children []Raw
	literals []any
	thunk    func() Raw
	name     string
}

// Sign reports the node's shape family.
func (n *Node) Sign() Sign { return n.sign }

// Children returns the ordered child specifications the node is
// parameterized over. The returned slice is a copy.
func (n *Node) Children() []Raw {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]Raw, len(n.children))
	copy(out, n.children)
	return out
}

// Literals returns the permitted literal values of a literal-set node.
func (n *Node) Literals() []any {
	if len(n.literals) == 0 {
		return nil
	}
	out := make([]any, len(n.literals))
	copy(out, n.literals)
	return out
}

// Name returns the raw identifier of an unsupported node or the label
// of a deferred node.
func (n *Node) Name() string { return n.name }

var anyNode = &Node{sign: SignAny}

// Any returns the ignorable specification: it matches every value and
// can never be the cause of a violation. A single shared node is
// returned so the classification cache sees one identity.
func Any() *Node { return anyNode }

// Union returns a specification satisfied when any member is satisfied.
func Union(members ...Raw) *Node {
	return &Node{sign: SignUnion, children: members}
}

// SeqOf returns a specification for slices and arrays whose every
// element satisfies elem.
func SeqOf(elem Raw) *Node {
	return &Node{sign: SignSequence, children: []Raw{elem}}
}

// Sequence returns the unparameterized sequence specification: any
// slice or array, elements unchecked.
func Sequence() *Node { return &Node{sign: SignSequence} }

// TupleOf returns a fixed-arity specification: the subject must be a
// slice or array of exactly len(slots) elements, each satisfying the
// slot at its index.
func TupleOf(slots ...Raw) *Node {
	return &Node{sign: SignTuple, children: slots}
}

// MapOf returns a specification for maps whose keys satisfy key and
// values satisfy value.
func MapOf(key, value Raw) *Node {
	return &Node{sign: SignMapping, children: []Raw{key, value}}
}

// Mapping returns the unparameterized mapping specification: any map,
// entries unchecked.
func Mapping() *Node { return &Node{sign: SignMapping} }

// OneOf returns a specification satisfied only by values equal to one
// of the permitted literals.
func OneOf(literals ...any) *Node {
	return &Node{sign: SignLiteral, literals: literals}
}

// Defer returns a lazily resolved specification. The thunk runs during
// normalization, which makes self-referential specifications possible:
// the thunk may mention the node it builds. The name appears in error
// text when resolution fails.
func Defer(name string, thunk func() Raw) *Node {
	return &Node{sign: SignDeferred, name: name, thunk: thunk}
}

// Unsupported returns a node for a shape family this engine does not
// know. Diagnosing it fails loudly with the identifier embedded.
func Unsupported(name string) *Node {
	return &Node{sign: SignUnsupported, name: name}
}

// Of returns the reflect.Type for T, the usual way to spell a plain
// runtime-type specification.
func Of[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
