package classify

import (
	"reflect"

	"attest/internal/spec"
)

// originKinds maps each sign that admits a shallow runtime-kind test to
// the reflect kinds its origin accepts. Signs absent from the table
// (union, literal) have no origin and are always checked deeply.
var originKinds = map[spec.Sign][]reflect.Kind{
	spec.SignSequence: {reflect.Slice, reflect.Array},
	spec.SignMapping:  {reflect.Map},
}

// deepSigns lists signs whose diagnosers recurse into children.
var deepSigns = map[spec.Sign]bool{
	spec.SignUnion:    true,
	spec.SignSequence: true,
	spec.SignTuple:    true,
	spec.SignMapping:  true,
	spec.SignLiteral:  true,
}

// OriginKinds returns the reflect kinds a sign's origin test accepts,
// or nil when the sign has no origin type.
func OriginKinds(s spec.Sign) []reflect.Kind {
	return originKinds[s]
}

// DeepCheckable reports whether a sign's diagnoser recurses into the
// specification's children.
func DeepCheckable(s spec.Sign) bool {
	return deepSigns[s]
}
