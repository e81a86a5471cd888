package check

import (
	"errors"
	"strings"
	"testing"

	"attest/internal/spec"
)

func greet(name any) string {
	return "hello " + name.(string)
}

func TestWrapPassesValidArguments(t *testing.T) {
	wrapped, err := Wrap(greet, []spec.Raw{spec.Of[string]()}, nil, nil)
	if err != nil {
		t.Fatalf("wrap failed: %v", err)
	}
	fn := wrapped.(func(any) string)
	if got := fn("world"); got != "hello world" {
		t.Fatalf("wrapped result %q", got)
	}
}

func TestWrapPanicsWithViolation(t *testing.T) {
	wrapped, err := Wrap(greet, []spec.Raw{spec.Of[string]()}, nil, nil)
	if err != nil {
		t.Fatalf("wrap failed: %v", err)
	}
	fn := wrapped.(func(any) string)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		var violation *Violation
		if !errors.As(err, &violation) {
			t.Fatalf("expected *Violation, got %v", err)
		}
		if !strings.Contains(violation.Label, "parameter #0 of") {
			t.Fatalf("label %q must name the parameter", violation.Label)
		}
	}()
	fn(42)
}

func TestWrapChecksReturnValues(t *testing.T) {
	lie := func() any { return 42 }
	wrapped, err := Wrap(lie, nil, []spec.Raw{spec.Of[string]()}, nil)
	if err != nil {
		t.Fatalf("wrap failed: %v", err)
	}
	fn := wrapped.(func() any)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic")
		}
		var violation *Violation
		if !errors.As(r.(error), &violation) {
			t.Fatalf("expected *Violation, got %v", r)
		}
		if !strings.Contains(violation.Label, "return value #0 of") {
			t.Fatalf("label %q must name the return value", violation.Label)
		}
	}()
	fn()
}

func TestWrapRejectsBadInputs(t *testing.T) {
	if _, err := Wrap(42, nil, nil, nil); err == nil {
		t.Fatalf("expected error for non-function")
	}
	if _, err := Wrap(greet, []spec.Raw{spec.Of[string](), spec.Of[int]()}, nil, nil); err == nil {
		t.Fatalf("expected error for arity mismatch")
	}
	variadic := func(vs ...int) {}
	if _, err := Wrap(variadic, nil, nil, nil); err == nil {
		t.Fatalf("expected error for variadic function")
	}
}

func TestIntrospectionHelpers(t *testing.T) {
	n, err := NumParams(greet)
	if err != nil || n != 1 {
		t.Fatalf("NumParams = %d, %v", n, err)
	}
	variadic, err := IsVariadic(func(...string) {})
	if err != nil || !variadic {
		t.Fatalf("IsVariadic = %v, %v", variadic, err)
	}
	if _, err := NumParams("nope"); err == nil {
		t.Fatalf("expected error for non-function")
	}
	if name := FuncName(greet); !strings.Contains(name, "greet") {
		t.Fatalf("FuncName = %q", name)
	}
}
