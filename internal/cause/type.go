package cause

import (
	"fmt"
	"reflect"
	"strings"

	"attest/internal/classify"
)

// diagnoseInstanceType handles untagged single-type specifications: a
// plain runtime-type membership test.
func diagnoseInstanceType(c *Context) (Finding, error) {
	t := c.cls.Type
	if IsInstance(c.subject, t) {
		return Finding{}, nil
	}
	if c.subject == nil {
		return found(fmt.Sprintf("untyped nil is not an instance of %s", typeName(t))), nil
	}
	return found(fmt.Sprintf("value %s of type %s is not an instance of %s",
		c.repr(c.subject), subjectTypeName(c.subject), typeName(t))), nil
}

// diagnoseTypeTuple handles untagged type-tuple unions: the subject
// must be an instance of at least one candidate; the explanation names
// every candidate.
func diagnoseTypeTuple(c *Context) (Finding, error) {
	for _, t := range c.cls.Types {
		if IsInstance(c.subject, t) {
			return Finding{}, nil
		}
	}
	names := make([]string, len(c.cls.Types))
	for i, t := range c.cls.Types {
		names[i] = typeName(t)
	}
	return found(fmt.Sprintf("value %s of type %s is not an instance of any of [%s]",
		c.repr(c.subject), subjectTypeName(c.subject), strings.Join(names, ", "))), nil
}

// diagnoseShallowOrigin handles tagged shapes that were checked by a
// plain runtime-kind test against the sign's origin, with no recursion
// into children.
func diagnoseShallowOrigin(c *Context) (Finding, error) {
	kinds := classify.OriginKinds(c.cls.Sign)
	v := reflect.ValueOf(c.subject)
	if v.IsValid() {
		for _, k := range kinds {
			if v.Kind() == k {
				return Finding{}, nil
			}
		}
	}
	return found(fmt.Sprintf("value %s of type %s is not a %s (want kind %s)",
		c.repr(c.subject), subjectTypeName(c.subject), c.cls.Sign, kindNames(kinds))), nil
}

func kindNames(kinds []reflect.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, " or ")
}
