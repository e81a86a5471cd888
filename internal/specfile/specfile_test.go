package specfile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"attest/internal/spec"
)

func writeSpec(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return path
}

func TestLoadMappingSpec(t *testing.T) {
	path := writeSpec(t, `
version = 1

[spec]
kind = "mapping"

[spec.key]
kind = "type"
type = "string"

[spec.value]
kind = "union"

[[spec.value.members]]
kind = "type"
type = "number"

[[spec.value.members]]
kind = "sequence"

  [spec.value.members.elem]
  kind = "type"
  type = "string"
`)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	root, ok := doc.Root.(*spec.Node)
	if !ok || root.Sign() != spec.SignMapping {
		t.Fatalf("expected mapping root, got %v", doc.Root)
	}
	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("expected key and value children")
	}
	if children[0] != spec.Raw(spec.Of[string]()) {
		t.Fatalf("key spec is %v", children[0])
	}
	value, ok := children[1].(*spec.Node)
	if !ok || value.Sign() != spec.SignUnion || len(value.Children()) != 2 {
		t.Fatalf("value spec is %v", children[1])
	}
}

func TestLoadTypeTuple(t *testing.T) {
	path := writeSpec(t, `
[spec]
kind = "types"
types = ["string", "number"]
`)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	ts, ok := doc.Root.([]reflect.Type)
	if !ok || len(ts) != 2 {
		t.Fatalf("expected a type tuple, got %v", doc.Root)
	}
}

func TestLoadLiteralFoldsIntegers(t *testing.T) {
	path := writeSpec(t, `
[spec]
kind = "literal"
literals = [1, 2, 3]
`)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	n := doc.Root.(*spec.Node)
	for _, lit := range n.Literals() {
		if _, ok := lit.(float64); !ok {
			t.Fatalf("literal %v (%T) should be float64 to match JSON numbers", lit, lit)
		}
	}
}

func TestLoadUnknownKindBecomesUnsupported(t *testing.T) {
	path := writeSpec(t, `
[spec]
kind = "frobnicate"
`)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("unknown kinds must load, got %v", err)
	}
	n, ok := doc.Root.(*spec.Node)
	if !ok || n.Sign() != spec.SignUnsupported || n.Name() != "frobnicate" {
		t.Fatalf("expected unsupported node carrying the identifier, got %v", doc.Root)
	}
}

func TestLoadRejectsUnknownTypeName(t *testing.T) {
	path := writeSpec(t, `
[spec]
kind = "type"
type = "quux"
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown type name")
	}
}

func TestDigestChangesWithContent(t *testing.T) {
	a, err := Load(writeSpec(t, "[spec]\nkind = \"any\"\n"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	b, err := Load(writeSpec(t, "[spec]\nkind = \"sequence\"\n"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if a.Digest == b.Digest {
		t.Fatalf("different documents must digest differently")
	}
}
