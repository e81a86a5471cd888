package spec

import "errors"

var (
	// ErrNotASpec reports a value that is not a specification at all:
	// nil, or something that is neither a Node, a reflect.Type, a type
	// tuple, nor a Speccer.
	ErrNotASpec = errors.New("not a type specification")

	// ErrMalformed reports a specification that claims a shape but lacks
	// the structure the shape requires, e.g. a union with no members.
	// It signals a bug in the code that built the specification.
	ErrMalformed = errors.New("malformed type specification")
)
