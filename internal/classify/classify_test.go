package classify

import (
	"errors"
	"reflect"
	"testing"

	"attest/internal/spec"
)

func TestClassifyAnyIsIgnorable(t *testing.T) {
	cls, err := Classify(spec.Any())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cls.Family != FamilyIgnorable {
		t.Fatalf("expected ignorable, got %v", cls.Family)
	}
}

func TestClassifyEmptyInterfaceIsIgnorable(t *testing.T) {
	cls, err := Classify(spec.Of[any]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cls.Family != FamilyIgnorable {
		t.Fatalf("the empty interface must classify as ignorable, got %v", cls.Family)
	}
}

func TestClassifyTaggedExtractsSignAndChildren(t *testing.T) {
	n := spec.Union(spec.Of[int](), spec.Of[string]())
	cls, err := Classify(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cls.Family != FamilyTagged || cls.Sign != spec.SignUnion {
		t.Fatalf("expected tagged union, got %v/%v", cls.Family, cls.Sign)
	}
	if len(cls.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(cls.Children))
	}
}

func TestClassifyUntaggedType(t *testing.T) {
	cls, err := Classify(spec.Of[int]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cls.Family != FamilyUntagged || cls.Type != spec.Of[int]() {
		t.Fatalf("expected untagged int, got %+v", cls)
	}
}

func TestClassifyTypeTuple(t *testing.T) {
	cls, err := Classify([]reflect.Type{spec.Of[int](), spec.Of[string]()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cls.Family != FamilyUntagged || len(cls.Types) != 2 {
		t.Fatalf("expected untagged type tuple, got %+v", cls)
	}
}

func TestClassifyCachesPerIdentity(t *testing.T) {
	n := spec.SeqOf(spec.Of[string]())
	first, err := Classify(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Classify(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("same node must yield the cached classification")
	}
	// Structurally identical but distinct nodes classify independently.
	other, err := Classify(spec.SeqOf(spec.Of[string]()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other == first {
		t.Fatalf("distinct nodes must not share cache entries")
	}
}

func TestClassifyMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  spec.Raw
	}{
		{"union without members", spec.Union()},
		{"literal without values", spec.OneOf()},
		{"empty type tuple", []reflect.Type{}},
		{"nil slot in type tuple", []reflect.Type{nil}},
		{"unnormalized deferred", spec.Defer("late", nil)},
	}
	for _, tc := range cases {
		if _, err := Classify(tc.raw); !errors.Is(err, spec.ErrMalformed) {
			t.Fatalf("%s: expected ErrMalformed, got %v", tc.name, err)
		}
	}
}

func TestClassifyRejectsNonSpecs(t *testing.T) {
	if _, err := Classify(42); !errors.Is(err, spec.ErrNotASpec) {
		t.Fatalf("expected ErrNotASpec, got %v", err)
	}
}

func TestClassifyUnsupportedSignLabel(t *testing.T) {
	cls, err := Classify(spec.Unsupported("frobnicate"))
	if err != nil {
		t.Fatalf("unsupported nodes must classify, got %v", err)
	}
	if cls.SignLabel() != "frobnicate" {
		t.Fatalf("expected raw identifier, got %q", cls.SignLabel())
	}
}

func TestOriginTables(t *testing.T) {
	if len(OriginKinds(spec.SignSequence)) == 0 {
		t.Fatalf("sequence must have origin kinds")
	}
	if len(OriginKinds(spec.SignUnion)) != 0 {
		t.Fatalf("union has no origin type")
	}
	if !DeepCheckable(spec.SignMapping) {
		t.Fatalf("mapping is deep-checkable")
	}
	if DeepCheckable(spec.SignUnsupported) {
		t.Fatalf("unsupported signs are not deep-checkable")
	}
}
