package cause

import (
	"fmt"
	"reflect"

	"attest/internal/conf"
)

// diagnoseSequence locates the first failing element of a slice or
// array. In sampled mode the carried seed replays the exact indices
// the compiled check visited, so the reported element is the one that
// actually failed rather than a fresh (and possibly passing) sample.
func diagnoseSequence(c *Context) (Finding, error) {
	v := reflect.ValueOf(c.subject)
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return diagnoseShallowOrigin(c)
	}
	elem := c.cls.Children[0]

	indices := c.visitIndices(v.Len())
	for _, i := range indices {
		ec, err := c.descend(v.Index(i).Interface(), elem)
		if err != nil {
			return Finding{}, err
		}
		f, err := ec.Diagnose()
		if err != nil {
			return Finding{}, err
		}
		if f.Found {
			return found(fmt.Sprintf("item at index %d is invalid:\n%s%s", i, ec.Indent(), f.Text)), nil
		}
	}
	return Finding{}, nil
}

// diagnoseTuple checks arity first, then each slot against the child
// specification at its index. Unlike sequences, tuples have no shallow
// form: an empty tuple specification requires an empty subject.
func diagnoseTuple(c *Context) (Finding, error) {
	v := reflect.ValueOf(c.subject)
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return found(fmt.Sprintf("value %s of type %s is not a tuple (want kind slice or array)",
			c.repr(c.subject), subjectTypeName(c.subject))), nil
	}
	slots := c.cls.Children
	if v.Len() != len(slots) {
		return found(fmt.Sprintf("tuple length %d does not match specification arity %d",
			v.Len(), len(slots))), nil
	}
	for i, slot := range slots {
		sc, err := c.descend(v.Index(i).Interface(), slot)
		if err != nil {
			return Finding{}, err
		}
		f, err := sc.Diagnose()
		if err != nil {
			return Finding{}, err
		}
		if f.Found {
			return found(fmt.Sprintf("tuple slot at index %d is invalid:\n%s%s", i, sc.Indent(), f.Text)), nil
		}
	}
	return Finding{}, nil
}

// visitIndices yields element indices in check order: all of them
// exhaustively, or the seed-replayed sample.
func (c *Context) visitIndices(n int) []int {
	if c.cfg != nil && c.cfg.Mode == conf.ModeSampled && c.seed != nil {
		return SampleIndices(*c.seed, n, c.cfg.SampleSize)
	}
	return SampleIndices(0, n, 0)
}
