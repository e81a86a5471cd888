// Package attest validates arbitrary Go values against composable type
// specifications at runtime and, when a value fails, explains exactly
// which nested part of the value violated which nested part of the
// specification.
//
// A specification is built from the constructors in this package:
//
//	s := attest.MapOf(attest.Of[string](), attest.SeqOf(attest.Of[string]()))
//	err := attest.Validate(doc, s)
//
// On failure Validate returns a *Violation whose message names the
// failing index or key at every level of nesting:
//
//	document violates its type specification:
//	  value under key "tags" is invalid:
//	    item at index 3 is invalid:
//	      value 3.5 of type float64 is not an instance of string
//
// Plain reflect.Type values are specifications too, as are slices of
// them (an "any of these types" union). Self-referential
// specifications are built with Defer.
package attest
