package cause

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"attest/internal/conf"
	"attest/internal/spec"
)

func mustContext(t *testing.T, subject any, raw spec.Raw) *Context {
	t.Helper()
	ctx, err := New(subject, raw, "test", "value", nil, nil)
	if err != nil {
		t.Fatalf("failed to build context: %v", err)
	}
	return ctx
}

func mustDiagnose(t *testing.T, ctx *Context) Finding {
	t.Helper()
	f, err := ctx.Diagnose()
	if err != nil {
		t.Fatalf("diagnose failed: %v", err)
	}
	return f
}

func TestIgnorableNeverHasCause(t *testing.T) {
	for _, raw := range []spec.Raw{spec.Any(), spec.Of[any]()} {
		f := mustDiagnose(t, mustContext(t, 42, raw))
		if f.Found {
			t.Fatalf("ignorable specification produced a cause: %q", f.Text)
		}
	}
}

func TestNoCauseSoundness(t *testing.T) {
	cases := []struct {
		name    string
		subject any
		raw     spec.Raw
	}{
		{"plain type", "hi", spec.Of[string]()},
		{"type tuple", 3, []reflect.Type{spec.Of[string](), spec.Of[int]()}},
		{"union", 3.5, spec.Union(spec.Of[int](), spec.Of[float64]())},
		{"sequence", []any{"a", "b"}, spec.SeqOf(spec.Of[string]())},
		{"shallow sequence", []int{1}, spec.Sequence()},
		{"tuple", []any{"a", 2.0}, spec.TupleOf(spec.Of[string](), spec.Of[float64]())},
		{"mapping", map[string]int{"a": 1}, spec.MapOf(spec.Of[string](), spec.Of[int]())},
		{"literal", "red", spec.OneOf("red", "green")},
	}
	for _, tc := range cases {
		f := mustDiagnose(t, mustContext(t, tc.subject, tc.raw))
		if f.Found {
			t.Fatalf("%s: satisfying subject produced a cause: %q", tc.name, f.Text)
		}
	}
}

func TestInstanceTypeCause(t *testing.T) {
	f := mustDiagnose(t, mustContext(t, 3.5, spec.Of[string]()))
	if !f.Found {
		t.Fatalf("expected a cause")
	}
	want := "value 3.5 of type float64 is not an instance of string"
	if f.Text != want {
		t.Fatalf("got %q, want %q", f.Text, want)
	}
}

func TestNilSubjectCause(t *testing.T) {
	f := mustDiagnose(t, mustContext(t, nil, spec.Of[int]()))
	if !f.Found || !strings.Contains(f.Text, "untyped nil") {
		t.Fatalf("expected untyped-nil cause, got %q", f.Text)
	}
}

func TestTypeTupleCauseNamesAllCandidates(t *testing.T) {
	tuple := []reflect.Type{spec.Of[int](), spec.Of[string]()}
	f := mustDiagnose(t, mustContext(t, 3.5, tuple))
	if !f.Found {
		t.Fatalf("expected a cause")
	}
	if !strings.Contains(f.Text, "int") || !strings.Contains(f.Text, "string") {
		t.Fatalf("explanation must name every candidate, got %q", f.Text)
	}
}

func TestUnionReportsFirstFailingMember(t *testing.T) {
	// Every member fails; the explanation reported must be the first
	// member's, identical to diagnosing that member directly.
	first := spec.SeqOf(spec.Of[string]())
	union := spec.Union(first, spec.Of[int]())
	subject := []any{1}

	direct := mustDiagnose(t, mustContext(t, subject, first))
	viaUnion := mustDiagnose(t, mustContext(t, subject, union))
	if !viaUnion.Found || viaUnion.Text != direct.Text {
		t.Fatalf("union explanation %q differs from direct %q", viaUnion.Text, direct.Text)
	}
}

func TestUnionSatisfiedPropagatesNoCause(t *testing.T) {
	cases := []struct {
		name    string
		subject any
	}{
		// One satisfied member suffices, regardless of its position:
		// a failing earlier member must not leak its explanation.
		{"first member satisfies", 1},
		{"later member satisfies", 3.5},
	}
	union := spec.Union(spec.Of[int](), spec.Of[float64]())
	for _, tc := range cases {
		f := mustDiagnose(t, mustContext(t, tc.subject, union))
		if f.Found {
			t.Fatalf("%s: satisfied union must report no cause, got %q", tc.name, f.Text)
		}
	}
}

func TestSequenceReportsFirstFailingIndex(t *testing.T) {
	// Elements 0-1 pass as ints, element 2 passes as a string; 3.5 is
	// the first element failing both union members and must be the one
	// named, not an earlier or later index.
	elem := spec.Union(spec.Of[int](), spec.Of[string]())
	subject := []any{1, 2, "x", 3.5}
	f := mustDiagnose(t, mustContext(t, subject, spec.SeqOf(elem)))
	if !f.Found {
		t.Fatalf("expected a cause")
	}
	want := "item at index 3 is invalid:\n  value 3.5 of type float64 is not an instance of int"
	if f.Text != want {
		t.Fatalf("got %q, want %q", f.Text, want)
	}
}

func TestShallowOriginCause(t *testing.T) {
	f := mustDiagnose(t, mustContext(t, 42, spec.Sequence()))
	if !f.Found {
		t.Fatalf("expected a cause")
	}
	if !strings.Contains(f.Text, "not a sequence") {
		t.Fatalf("got %q", f.Text)
	}
}

func TestTupleArityCause(t *testing.T) {
	f := mustDiagnose(t, mustContext(t, []any{"a"}, spec.TupleOf(spec.Of[string](), spec.Of[int]())))
	if !f.Found || !strings.Contains(f.Text, "length 1") || !strings.Contains(f.Text, "arity 2") {
		t.Fatalf("got %q", f.Text)
	}
}

func TestTupleSlotCause(t *testing.T) {
	f := mustDiagnose(t, mustContext(t, []any{"a", "b"}, spec.TupleOf(spec.Of[string](), spec.Of[int]())))
	if !f.Found || !strings.Contains(f.Text, "tuple slot at index 1") {
		t.Fatalf("got %q", f.Text)
	}
}

func TestMappingNamesKeyOrValue(t *testing.T) {
	m := spec.MapOf(spec.Of[string](), spec.Of[int]())

	f := mustDiagnose(t, mustContext(t, map[any]any{1: 2}, m))
	if !f.Found || !strings.Contains(f.Text, "key 1 is invalid") {
		t.Fatalf("expected key cause, got %q", f.Text)
	}

	f = mustDiagnose(t, mustContext(t, map[any]any{"a": "b"}, m))
	if !f.Found || !strings.Contains(f.Text, `value under key "a" is invalid`) {
		t.Fatalf("expected value cause, got %q", f.Text)
	}
}

func TestLiteralCauseListsPermittedValues(t *testing.T) {
	f := mustDiagnose(t, mustContext(t, "blue", spec.OneOf("red", "green")))
	if !f.Found {
		t.Fatalf("expected a cause")
	}
	want := `value "blue" is not one of the permitted literals ["red", "green"]`
	if f.Text != want {
		t.Fatalf("got %q, want %q", f.Text, want)
	}
}

func TestNestedExplanationIndents(t *testing.T) {
	inner := spec.SeqOf(spec.Of[string]())
	subject := []any{[]any{"ok", 7}}
	f := mustDiagnose(t, mustContext(t, subject, spec.SeqOf(inner)))
	if !f.Found {
		t.Fatalf("expected a cause")
	}
	want := "item at index 0 is invalid:\n" +
		"  item at index 1 is invalid:\n" +
		"    value 7 of type int is not an instance of string"
	if f.Text != want {
		t.Fatalf("got:\n%s\nwant:\n%s", f.Text, want)
	}
}

func TestUnsupportedSignFailsLoudly(t *testing.T) {
	ctx := mustContext(t, 42, spec.Unsupported("frobnicate"))
	_, err := ctx.Diagnose()
	if !errors.Is(err, ErrUnsupportedSign) {
		t.Fatalf("expected ErrUnsupportedSign, got %v", err)
	}
	if !strings.Contains(err.Error(), "frobnicate") {
		t.Fatalf("error must embed the sign identifier, got %q", err)
	}
}

func TestDerivationFieldIsolation(t *testing.T) {
	seed := uint64(7)
	ctx, err := New([]any{1}, spec.SeqOf(spec.Of[int]()), "origin", "label", &seed, conf.Default())
	if err != nil {
		t.Fatalf("failed to build context: %v", err)
	}
	d := ctx.WithSubject("other")
	if d.Subject() != "other" {
		t.Fatalf("subject override lost")
	}
	if d.Origin() != ctx.Origin() || d.Label() != ctx.Label() ||
		d.Indent() != ctx.Indent() || d.Seed() != ctx.Seed() || d.Config() != ctx.Config() {
		t.Fatalf("derivation changed a field other than subject")
	}
	if ctx.Subject().([]any)[0] != 1 {
		t.Fatalf("derivation mutated the parent context")
	}
}
