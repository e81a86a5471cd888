package attest

import (
	"reflect"

	"attest/internal/check"
	"attest/internal/conf"
	"attest/internal/spec"
)

// Spec is the open domain of specification values: a node built by the
// constructors below, a reflect.Type, a []reflect.Type union, or any
// value implementing Speccer.
type Spec = spec.Raw

// Node is an immutable tagged specification.
type Node = spec.Node

// Speccer lets foreign annotation types supply an equivalent supported
// specification.
type Speccer = spec.Speccer

// Violation is the error returned when a value fails its
// specification.
type Violation = check.Violation

// Config carries engine settings; see DefaultConfig.
type Config = conf.Config

// Specification constructors. See the internal/spec package for the
// precise semantics of each shape.
var (
	Any         = spec.Any
	Union       = spec.Union
	SeqOf       = spec.SeqOf
	Sequence    = spec.Sequence
	TupleOf     = spec.TupleOf
	MapOf       = spec.MapOf
	Mapping     = spec.Mapping
	OneOf       = spec.OneOf
	Defer       = spec.Defer
	Unsupported = spec.Unsupported
)

// Of returns the reflect.Type for T.
func Of[T any]() reflect.Type { return spec.Of[T]() }

// DefaultConfig returns the engine defaults: exhaustive checking, 64
// levels of nesting, 64-rune value previews.
func DefaultConfig() *Config { return conf.Default() }

// Validate checks subject against s with the default configuration.
// It returns nil on success, a *Violation carrying a human-readable
// cause on failure, and a distinct internal error when the
// specification itself is broken.
func Validate(subject any, s Spec) error {
	return check.Check(subject, s, "", "value", nil)
}

// ValidateWith is Validate with explicit settings and labels. origin
// names the callable or document the check belongs to; label prefixes
// the explanation.
func ValidateWith(subject any, s Spec, origin, label string, cfg *Config) error {
	return check.Check(subject, s, origin, label, cfg)
}

// Wrap returns a function with the same signature as fn that validates
// arguments against in and return values against out, panicking with a
// *Violation on failure. Nil entries leave positions unchecked.
func Wrap(fn any, in, out []Spec) (any, error) {
	return check.Wrap(fn, in, out, nil)
}
