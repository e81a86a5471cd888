package cause

import "reflect"

// IsInstance reports whether v is an instance of t: identical or
// assignable for concrete types, Implements for interface types. An
// untyped nil subject satisfies only interface types.
func IsInstance(v any, t reflect.Type) bool {
	if t == nil {
		return false
	}
	if v == nil {
		return t.Kind() == reflect.Interface
	}
	vt := reflect.TypeOf(v)
	if t.Kind() == reflect.Interface {
		return vt.Implements(t)
	}
	return vt == t || vt.AssignableTo(t)
}

// LiteralsEqual reports whether a subject equals a permitted literal.
// Deep equality, so composite literals work too.
func LiteralsEqual(subject, literal any) bool {
	return reflect.DeepEqual(subject, literal)
}

// typeName renders a type for explanation text.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// subjectTypeName renders the runtime type of a subject, tolerating
// untyped nil.
func subjectTypeName(v any) string {
	if v == nil {
		return "untyped nil"
	}
	return reflect.TypeOf(v).String()
}
